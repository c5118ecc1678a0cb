package store

import (
	"fmt"
	"sort"
)

// Detection is one caller-supplied finding attached to an event.
type Detection struct {
	Type   string  `json:"type"`
	Masked *string `json:"masked"`
}

// Event is an audit record of a detection encounter.
type Event struct {
	ID                   int         `json:"id"`
	URL                  string      `json:"url"`
	Domain               string      `json:"domain"`
	ContentType          string      `json:"content_type"`
	DetectionType        string      `json:"detection_type"`
	Summary              string      `json:"summary"`
	Detections           []Detection `json:"detections"`
	GuardrailsDetections []string    `json:"guardrails_detections"`
	ContentHash          string      `json:"content_hash,omitempty"`
	Message              string      `json:"message,omitempty"`
	Status               string      `json:"status"`
	CreatedAt            string      `json:"created_at"`
	UpdatedAt            string      `json:"updated_at,omitempty"`
}

// ListParams selects and pages the event collection.
type ListParams struct {
	Page   int
	Limit  int
	Status string // empty matches all
}

// EventStore persists the event collection in a single JSON document.
type EventStore struct {
	col collection
}

// NewEventStore creates an EventStore over the given file path.
func NewEventStore(path string) *EventStore {
	return &EventStore{col: collection{path: path}}
}

// List returns one page of events sorted by created_at descending, plus the
// total count after status filtering but before pagination. Events without
// a created_at sort last.
func (s *EventStore) List(params ListParams) ([]Event, int, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()

	var events []Event
	if err := s.col.load(&events); err != nil {
		return nil, 0, fmt.Errorf("List: %w", err)
	}

	if params.Status != "" {
		filtered := events[:0]
		for _, e := range events {
			if e.Status == params.Status {
				filtered = append(filtered, e)
			}
		}
		events = filtered
	}

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].CreatedAt > events[j].CreatedAt
	})

	total := len(events)
	start := (params.Page - 1) * params.Limit
	if start < 0 {
		start = 0
	}
	if start >= total {
		return []Event{}, total, nil
	}
	end := start + params.Limit
	if end > total {
		end = total
	}
	return events[start:end], total, nil
}

// Get returns the event with the given id, or ErrNotFound.
func (s *EventStore) Get(id int) (*Event, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()

	var events []Event
	if err := s.col.load(&events); err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	for i := range events {
		if events[i].ID == id {
			return &events[i], nil
		}
	}
	return nil, ErrNotFound
}

// Create assigns the next sequential id, appends the event, and rewrites
// the collection. Ids are never reused: the next id is one past the highest
// id present.
func (s *EventStore) Create(e Event) (*Event, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()

	var events []Event
	if err := s.col.load(&events); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}

	maxID := 0
	for _, existing := range events {
		if existing.ID > maxID {
			maxID = existing.ID
		}
	}
	e.ID = maxID + 1

	events = append(events, e)
	if err := s.col.save(events); err != nil {
		return nil, fmt.Errorf("Create: %w", err)
	}
	return &e, nil
}

// UpdateStatus sets the status and updated_at of the event with the given
// id in place and rewrites the collection. Returns the updated event, or
// ErrNotFound.
func (s *EventStore) UpdateStatus(id int, status, updatedAt string) (*Event, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()

	var events []Event
	if err := s.col.load(&events); err != nil {
		return nil, fmt.Errorf("UpdateStatus: %w", err)
	}

	for i := range events {
		if events[i].ID == id {
			events[i].Status = status
			events[i].UpdatedAt = updatedAt
			if err := s.col.save(events); err != nil {
				return nil, fmt.Errorf("UpdateStatus: %w", err)
			}
			return &events[i], nil
		}
	}
	return nil, ErrNotFound
}

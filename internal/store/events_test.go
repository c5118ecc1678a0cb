package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testEventStore(t *testing.T) *EventStore {
	t.Helper()
	return NewEventStore(filepath.Join(t.TempDir(), "events.json"))
}

func seedEvents(t *testing.T, s *EventStore, n int) []Event {
	t.Helper()
	created := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		e, err := s.Create(Event{
			URL:       "https://example.com/page",
			Domain:    "example.com",
			Status:    "pending",
			CreatedAt: "2026-08-30T10:00:0" + string(rune('0'+i)) + ".000000",
		})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		created = append(created, *e)
	}
	return created
}

func TestEventStore_CreateAssignsSequentialIDs(t *testing.T) {
	s := testEventStore(t)
	events := seedEvents(t, s, 3)

	for i, e := range events {
		if e.ID != i+1 {
			t.Errorf("event %d: got id %d, want %d", i, e.ID, i+1)
		}
	}
}

func TestEventStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")

	first := NewEventStore(path)
	if _, err := first.Create(Event{Domain: "example.com", Status: "pending", CreatedAt: "2026-08-30T10:00:00.000000"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	second := NewEventStore(path)
	e, err := second.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if e.Domain != "example.com" {
		t.Errorf("got domain %q, want example.com", e.Domain)
	}

	// Ids continue past what is already on disk.
	e2, err := second.Create(Event{Status: "pending", CreatedAt: "2026-08-30T10:00:01.000000"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if e2.ID != 2 {
		t.Errorf("got id %d, want 2", e2.ID)
	}
}

func TestEventStore_GetNotFound(t *testing.T) {
	s := testEventStore(t)
	seedEvents(t, s, 1)

	if _, err := s.Get(99); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestEventStore_ListSortsNewestFirst(t *testing.T) {
	s := testEventStore(t)
	seedEvents(t, s, 5)

	items, total, err := s.List(ListParams{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 5 {
		t.Errorf("got total %d, want 5", total)
	}
	if len(items) != 2 {
		t.Fatalf("got %d items, want 2", len(items))
	}
	if items[0].ID != 5 || items[1].ID != 4 {
		t.Errorf("got ids %d,%d, want 5,4", items[0].ID, items[1].ID)
	}
}

func TestEventStore_ListPagesPastEnd(t *testing.T) {
	s := testEventStore(t)
	seedEvents(t, s, 3)

	items, total, err := s.List(ListParams{Page: 5, Limit: 2})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 3 {
		t.Errorf("got total %d, want 3", total)
	}
	if len(items) != 0 {
		t.Errorf("got %d items, want 0", len(items))
	}
}

func TestEventStore_ListFiltersByStatus(t *testing.T) {
	s := testEventStore(t)
	seedEvents(t, s, 3)
	if _, err := s.UpdateStatus(2, "approved", "2026-08-30T11:00:00.000000"); err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}

	items, total, err := s.List(ListParams{Page: 1, Limit: 50, Status: "approved"})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ID != 2 {
		t.Errorf("got total=%d items=%v, want only event 2", total, items)
	}
}

func TestEventStore_MissingTimestampSortsLast(t *testing.T) {
	s := testEventStore(t)
	if _, err := s.Create(Event{Status: "pending"}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if _, err := s.Create(Event{Status: "pending", CreatedAt: "2026-08-30T10:00:00.000000"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	items, _, err := s.List(ListParams{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if items[0].ID != 2 || items[1].ID != 1 {
		t.Errorf("expected stamped event first, got ids %d,%d", items[0].ID, items[1].ID)
	}
}

func TestEventStore_UpdateStatus(t *testing.T) {
	s := testEventStore(t)
	seedEvents(t, s, 1)

	e, err := s.UpdateStatus(1, "approved", "2026-08-30T12:00:00.000000")
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if e.Status != "approved" {
		t.Errorf("got status %q, want approved", e.Status)
	}
	if e.UpdatedAt == "" {
		t.Error("expected updated_at stamped")
	}

	// Persisted, not just returned.
	got, err := s.Get(1)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Status != "approved" {
		t.Errorf("persisted status %q, want approved", got.Status)
	}
}

func TestEventStore_UpdateStatusNotFound(t *testing.T) {
	s := testEventStore(t)

	if _, err := s.UpdateStatus(7, "rejected", "2026-08-30T12:00:00.000000"); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}
}

func TestEventStore_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "events.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := NewEventStore(path)
	if _, _, err := s.List(ListParams{Page: 1, Limit: 10}); !errors.Is(err, ErrCorrupt) {
		t.Errorf("got %v, want ErrCorrupt", err)
	}
}

package store

import "fmt"

// ApprovalStore persists the set of approved content hashes in a single
// JSON document. Membership is the only fact tracked; approval is not
// reversible through this store.
type ApprovalStore struct {
	col collection
}

// NewApprovalStore creates an ApprovalStore over the given file path.
func NewApprovalStore(path string) *ApprovalStore {
	return &ApprovalStore{col: collection{path: path}}
}

// List returns every approved hash in insertion order.
func (s *ApprovalStore) List() ([]string, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()

	hashes := []string{}
	if err := s.col.load(&hashes); err != nil {
		return nil, fmt.Errorf("List: %w", err)
	}
	return hashes, nil
}

// Contains reports whether hash is in the approval set.
func (s *ApprovalStore) Contains(hash string) (bool, error) {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()

	var hashes []string
	if err := s.col.load(&hashes); err != nil {
		return false, fmt.Errorf("Contains: %w", err)
	}
	for _, h := range hashes {
		if h == hash {
			return true, nil
		}
	}
	return false, nil
}

// Add inserts hash into the approval set. Adding a hash that is already
// present is a no-op.
func (s *ApprovalStore) Add(hash string) error {
	s.col.mu.Lock()
	defer s.col.mu.Unlock()

	var hashes []string
	if err := s.col.load(&hashes); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	for _, h := range hashes {
		if h == hash {
			return nil
		}
	}
	hashes = append(hashes, hash)
	if err := s.col.save(hashes); err != nil {
		return fmt.Errorf("Add: %w", err)
	}
	return nil
}

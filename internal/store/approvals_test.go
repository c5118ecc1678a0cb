package store

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func testApprovalStore(t *testing.T) *ApprovalStore {
	t.Helper()
	return NewApprovalStore(filepath.Join(t.TempDir(), "approvals.json"))
}

func TestApprovalStore_EmptyByDefault(t *testing.T) {
	s := testApprovalStore(t)

	hashes, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(hashes) != 0 {
		t.Errorf("expected empty set, got: %v", hashes)
	}
}

func TestApprovalStore_AddAndContains(t *testing.T) {
	s := testApprovalStore(t)

	if err := s.Add("abc"); err != nil {
		t.Fatalf("Add: %v", err)
	}

	ok, err := s.Contains("abc")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if !ok {
		t.Error("expected abc to be approved")
	}

	ok, err = s.Contains("def")
	if err != nil {
		t.Fatalf("Contains: %v", err)
	}
	if ok {
		t.Error("expected def to be absent")
	}
}

func TestApprovalStore_AddIsIdempotent(t *testing.T) {
	s := testApprovalStore(t)

	for i := 0; i < 3; i++ {
		if err := s.Add("abc"); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	hashes, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(hashes, []string{"abc"}) {
		t.Errorf("expected single entry, got: %v", hashes)
	}
}

func TestApprovalStore_ListPreservesInsertionOrder(t *testing.T) {
	s := testApprovalStore(t)

	for _, h := range []string{"zzz", "aaa", "mmm"} {
		if err := s.Add(h); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}

	hashes, err := s.List()
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if !reflect.DeepEqual(hashes, []string{"zzz", "aaa", "mmm"}) {
		t.Errorf("expected insertion order, got: %v", hashes)
	}
}

func TestApprovalStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "approvals.json")
	if err := os.WriteFile(path, []byte("]["), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	s := NewApprovalStore(path)
	if _, err := s.List(); !errors.Is(err, ErrCorrupt) {
		t.Errorf("got %v, want ErrCorrupt", err)
	}
}

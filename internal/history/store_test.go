package history

import (
	"testing"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestFreshStoreIsEmpty(t *testing.T) {
	s := newTestStore(t)

	names, err := s.Names()
	if err != nil {
		t.Fatalf("Names() failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("fresh store has %d names, want 0", len(names))
	}
}

func TestMarkAndNames(t *testing.T) {
	s := newTestStore(t)

	if err := s.Mark([]string{"ripgrep", "jq"}); err != nil {
		t.Fatalf("Mark() failed: %v", err)
	}

	names, err := s.Names()
	if err != nil {
		t.Fatalf("Names() failed: %v", err)
	}
	if len(names) != 2 {
		t.Fatalf("Names() size = %d, want 2", len(names))
	}
	for _, want := range []string{"ripgrep", "jq"} {
		if _, ok := names[want]; !ok {
			t.Errorf("expected %q in looked-up set", want)
		}
	}
}

func TestMarkIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Mark([]string{"ripgrep"}); err != nil {
		t.Fatalf("Mark() failed: %v", err)
	}
	if err := s.Mark([]string{"ripgrep"}); err != nil {
		t.Fatalf("second Mark() failed: %v", err)
	}

	records, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("List() size = %d, want 1", len(records))
	}
}

func TestListSortedWithTimestamps(t *testing.T) {
	s := newTestStore(t)

	if err := s.Mark([]string{"zsh", "bat"}); err != nil {
		t.Fatalf("Mark() failed: %v", err)
	}

	records, err := s.List()
	if err != nil {
		t.Fatalf("List() failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List() size = %d, want 2", len(records))
	}
	if records[0].Name != "bat" || records[1].Name != "zsh" {
		t.Errorf("List() order = [%s %s], want [bat zsh]", records[0].Name, records[1].Name)
	}
	for _, r := range records {
		if r.MarkedAt.IsZero() {
			t.Errorf("record %s has zero timestamp", r.Name)
		}
	}
}

func TestForget(t *testing.T) {
	s := newTestStore(t)

	if err := s.Mark([]string{"ripgrep", "jq"}); err != nil {
		t.Fatalf("Mark() failed: %v", err)
	}
	if err := s.Forget([]string{"ripgrep", "not-recorded"}); err != nil {
		t.Fatalf("Forget() failed: %v", err)
	}

	names, err := s.Names()
	if err != nil {
		t.Fatalf("Names() failed: %v", err)
	}
	if _, ok := names["ripgrep"]; ok {
		t.Error("ripgrep should have been forgotten")
	}
	if _, ok := names["jq"]; !ok {
		t.Error("jq should still be recorded")
	}
}

func TestClear(t *testing.T) {
	s := newTestStore(t)

	if err := s.Mark([]string{"a", "b", "c"}); err != nil {
		t.Fatalf("Mark() failed: %v", err)
	}

	n, err := s.Clear()
	if err != nil {
		t.Fatalf("Clear() failed: %v", err)
	}
	if n != 3 {
		t.Errorf("Clear() removed %d, want 3", n)
	}

	names, err := s.Names()
	if err != nil {
		t.Fatalf("Names() failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("store not empty after Clear(): %v", names)
	}
}

func TestOpenCreatesFile(t *testing.T) {
	path := t.TempDir() + "/seen.db"

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open(%s) failed: %v", path, err)
	}
	defer s.Close()

	// A brand new database behaves as an empty looked-up set.
	names, err := s.Names()
	if err != nil {
		t.Fatalf("Names() failed: %v", err)
	}
	if len(names) != 0 {
		t.Errorf("new database has %d names, want 0", len(names))
	}
}

package session

import (
	"testing"
	"time"
)

func TestRegistryReadMissing(t *testing.T) {
	r := NewRegistry()
	if _, err := r.Get(42); err != ErrNotFound {
		t.Fatalf("expected not found error, received %v", err)
	}
}

func TestRegistryCreateAndGet(t *testing.T) {
	r := NewRegistry()

	s := r.Create([]byte("snapshot"))
	if s.ID == 0 {
		t.Fatal("expected a nonzero session id")
	}
	if s.StartedAt.IsZero() {
		t.Fatal("expected a start timestamp")
	}

	got, err := r.Get(s.ID)
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if string(got.State) != "snapshot" {
		t.Fatalf("expected %q, actual %q", "snapshot", got.State)
	}
	if got.EndedAt != nil {
		t.Fatalf("fresh session must not have an end timestamp")
	}
}

func TestRegistryAssignsDistinctIDs(t *testing.T) {
	r := NewRegistry()
	a := r.Create(nil)
	b := r.Create(nil)
	if a.ID == b.ID {
		t.Fatalf("sessions share id %d", a.ID)
	}
}

func TestRegistryUpdate(t *testing.T) {
	r := NewRegistry()
	s := r.Create([]byte("before"))

	ended := time.Now().UTC()
	if err := r.Update(s.ID, []byte("after"), &ended); err != nil {
		t.Fatalf("failed to update session: %v", err)
	}

	got, err := r.Get(s.ID)
	if err != nil {
		t.Fatalf("failed to get session: %v", err)
	}
	if string(got.State) != "after" {
		t.Fatalf("expected %q, actual %q", "after", got.State)
	}
	if got.EndedAt == nil || !got.EndedAt.Equal(ended) {
		t.Fatalf("expected end timestamp %v, actual %v", ended, got.EndedAt)
	}

	if err := r.Update(999, nil, nil); err != ErrNotFound {
		t.Fatalf("expected not found error, received %v", err)
	}
}

func TestRegistryGetReturnsCopy(t *testing.T) {
	r := NewRegistry()
	s := r.Create([]byte("original"))

	got, err := r.Get(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	got.State[0] = 'X'

	again, err := r.Get(s.ID)
	if err != nil {
		t.Fatal(err)
	}
	if string(again.State) != "original" {
		t.Fatalf("registry state mutated through a returned copy: %q", again.State)
	}
}

func TestRegistryDeleteAndCount(t *testing.T) {
	r := NewRegistry()
	a := r.Create(nil)
	r.Create(nil)

	if count := r.Count(); count != 2 {
		t.Fatalf("have %d, want 2", count)
	}

	r.Delete(a.ID)
	r.Delete(12345) // missing ids are fine

	if count := r.Count(); count != 1 {
		t.Fatalf("have %d, want 1", count)
	}
	if _, err := r.Get(a.ID); err != ErrNotFound {
		t.Fatalf("expected not found error, received %v", err)
	}
}

package session

import (
	"testing"
	"time"
)

func TestMemoryStoreRoundTrip(t *testing.T) {
	m := newMemoryStore()

	if err := m.Write("sid-1", map[string]string{KeyCurrentSession: "abc"}, time.Minute); err != nil {
		t.Fatalf("write: %v", err)
	}

	got := m.Read("sid-1")
	if got[KeyCurrentSession] != "abc" {
		t.Errorf("expected current session abc, got %q", got[KeyCurrentSession])
	}
}

func TestMemoryStoreExpiry(t *testing.T) {
	m := newMemoryStore()

	if err := m.Write("sid-1", map[string]string{"k": "v"}, -time.Second); err != nil {
		t.Fatalf("write: %v", err)
	}
	if got := m.Read("sid-1"); len(got) != 0 {
		t.Errorf("expected expired record to read empty, got %v", got)
	}
}

func TestMemoryStoreDestroy(t *testing.T) {
	m := newMemoryStore()

	m.Write("sid-1", map[string]string{"k": "v"}, time.Minute) //nolint:errcheck
	if err := m.Destroy("sid-1"); err != nil {
		t.Fatalf("destroy: %v", err)
	}
	if got := m.Read("sid-1"); len(got) != 0 {
		t.Errorf("expected destroyed record to read empty, got %v", got)
	}
}

// Read hands out a copy, so callers cannot mutate the stored record.
func TestMemoryStoreReadCopies(t *testing.T) {
	m := newMemoryStore()

	m.Write("sid-1", map[string]string{"k": "v"}, time.Minute) //nolint:errcheck
	first := m.Read("sid-1")
	first["k"] = "mutated"

	if got := m.Read("sid-1"); got["k"] != "v" {
		t.Errorf("stored record was mutated through a read: %v", got)
	}
}

func TestMissingSessionReadsEmpty(t *testing.T) {
	m := newMemoryStore()
	if got := m.Read("nope"); got == nil || len(got) != 0 {
		t.Errorf("expected empty map for unknown id, got %v", got)
	}
}

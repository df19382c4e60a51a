package id

import (
	"testing"

	"github.com/google/uuid"
)

func TestNew_Format(t *testing.T) {
	s := New()
	if _, err := uuid.Parse(s); err != nil {
		t.Fatalf("New() = %q, not a uuid: %v", s, err)
	}
	if len(s) != 36 {
		t.Fatalf("length = %d, want 36", len(s))
	}
}

func TestNew_Unique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		s := New()
		if seen[s] {
			t.Fatalf("duplicate id %q", s)
		}
		seen[s] = true
	}
}

package ratelimit

import "testing"

func TestAllowPerKey(t *testing.T) {
	p := NewPerKey(0, 3)

	for i := 0; i < 3; i++ {
		if !p.Allow("alice") {
			t.Fatalf("attempt %d for alice must pass within burst", i+1)
		}
	}
	if p.Allow("alice") {
		t.Fatal("alice must be limited past the burst")
	}

	// Keys have independent buckets.
	if !p.Allow("bob") {
		t.Fatal("bob must not be affected by alice's bucket")
	}
}

func TestPrune(t *testing.T) {
	p := NewPerKey(0, 1)
	p.maxEntries = 2

	p.Allow("a")
	p.Allow("b")
	if !p.Allow("c") {
		t.Fatal("c must get a fresh bucket after prune")
	}
	if len(p.limiters) != 1 {
		t.Fatalf("expected pruned map with 1 entry, got %d", len(p.limiters))
	}
}

package cryptox

import "testing"

func TestMakeRandString_Length(t *testing.T) {
	s, err := MakeRandString(15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s) != 15 {
		t.Fatalf("expected length 15, got %d", len(s))
	}
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z':
		case r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		default:
			t.Fatalf("non-alphanumeric rune %q in %q", r, s)
		}
	}
}

func TestMakeRandString_InvalidLength(t *testing.T) {
	if _, err := MakeRandString(0); err == nil {
		t.Fatal("expected error for length 0")
	}
	if _, err := MakeRandString(-1); err == nil {
		t.Fatal("expected error for negative length")
	}
}

func TestMakeRandString_EntropyHint(t *testing.T) {
	a, err := MakeRandString(15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b, err := MakeRandString(15)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if a == b {
		t.Logf("warning: two MakeRandString(15) results are identical; extremely unlikely")
	}
}

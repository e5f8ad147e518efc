package steno

import "testing"

func mustStroke(t *testing.T, s string) Stroke {
	t.Helper()
	st, err := ParseStroke(s)
	if err != nil {
		t.Fatalf("ParseStroke(%q): %v", s, err)
	}
	return st
}

func TestSequenceStringJoinsWithSlash(t *testing.T) {
	seq := NewSequence(mustStroke(t, "TKPWOEG"), mustStroke(t, "EUPBG"))
	if got, want := seq.String(), "TKPWOEG/EUPBG"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSequenceStringSkipsEmptyStrokes(t *testing.T) {
	seq := NewSequence(mustStroke(t, "KAT"), Stroke{})
	if got, want := seq.String(), "KAT"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestSequenceLessByLengthThenLex(t *testing.T) {
	short := NewSequence(mustStroke(t, "KAT"))
	long := NewSequence(mustStroke(t, "KAT"), mustStroke(t, "-D"))
	if !short.Less(long) {
		t.Fatalf("expected shorter sequence to sort first")
	}
}

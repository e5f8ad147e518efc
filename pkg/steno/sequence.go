package steno

import "strings"

// Sequence is an ordered series of strokes typed one after another,
// comprising one dictionary translation.
type Sequence struct {
	strokes []Stroke
}

// NewSequence builds a sequence from the given strokes, in order.
func NewSequence(strokes ...Stroke) Sequence {
	cp := make([]Stroke, len(strokes))
	copy(cp, strokes)
	return Sequence{strokes: cp}
}

// Strokes returns the sequence's strokes, in order. The returned
// slice is owned by the caller.
func (seq Sequence) Strokes() []Stroke {
	cp := make([]Stroke, len(seq.strokes))
	copy(cp, seq.strokes)
	return cp
}

// Len returns the number of strokes in the sequence.
func (seq Sequence) Len() int { return len(seq.strokes) }

// At returns the stroke at position i.
func (seq Sequence) At(i int) Stroke { return seq.strokes[i] }

// AppendStroke returns a new sequence with stroke appended.
func (seq Sequence) AppendStroke(s Stroke) Sequence {
	next := make([]Stroke, len(seq.strokes)+1)
	copy(next, seq.strokes)
	next[len(seq.strokes)] = s
	return Sequence{strokes: next}
}

// WithStrokeAt returns a new sequence with the stroke at position i
// replaced.
func (seq Sequence) WithStrokeAt(i int, s Stroke) Sequence {
	next := make([]Stroke, len(seq.strokes))
	copy(next, seq.strokes)
	next[i] = s
	return Sequence{strokes: next}
}

// Equal reports whether two sequences contain the same strokes in the
// same order.
func (seq Sequence) Equal(other Sequence) bool {
	if len(seq.strokes) != len(other.strokes) {
		return false
	}
	for i := range seq.strokes {
		if !seq.strokes[i].Equal(other.strokes[i]) {
			return false
		}
	}
	return true
}

// Less implements sequence ordering: shorter sequences sort first;
// same-length sequences compare lexicographically by stroke.
func (seq Sequence) Less(other Sequence) bool {
	if len(seq.strokes) != len(other.strokes) {
		return len(seq.strokes) < len(other.strokes)
	}
	for i := range seq.strokes {
		if !seq.strokes[i].Equal(other.strokes[i]) {
			return seq.strokes[i].Less(other.strokes[i])
		}
	}
	return false
}

// String renders the sequence in printable form: non-empty strokes
// joined by '/'. Empty strokes are skipped.
func (seq Sequence) String() string {
	var parts []string
	for _, s := range seq.strokes {
		if s.IsEmpty() {
			continue
		}
		parts = append(parts, s.String())
	}
	return strings.Join(parts, "/")
}

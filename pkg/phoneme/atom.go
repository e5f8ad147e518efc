// Package phoneme defines the small shared vocabulary — phoneme
// regions and tagged atoms — used by both the syllabifier and the
// configuration/stroke-builder packages, so neither has to depend on
// the other just to talk about "this phoneme, in this position".
package phoneme

// Region identifies which part of a syllable an atom belongs to.
type Region int

const (
	Onset Region = iota
	Nucleus
	Coda
)

func (r Region) String() string {
	switch r {
	case Onset:
		return "onset"
	case Nucleus:
		return "nucleus"
	case Coda:
		return "coda"
	default:
		return "unknown"
	}
}

// Atom is one phoneme tagged with the syllable region it occupies.
// Two atoms are equal only if both the phoneme string and the region
// match — the same phoneme in onset vs. coda position is a distinct
// key into the cluster-to-keys index.
type Atom struct {
	Phoneme string
	Region  Region
}

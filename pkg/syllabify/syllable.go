package syllabify

import (
	"strings"

	"github.com/andrewhess/stenodict/pkg/phoneme"
)

// Syllable is an ordered sequence of onset/nucleus/coda atoms, with
// exactly one nucleus atom.
type Syllable struct {
	atoms []phoneme.Atom
}

// NewSyllable builds a syllable from its onset consonants, nucleus
// phoneme (empty if none), and coda consonants.
func NewSyllable(onset []string, nucleus string, coda []string) Syllable {
	atoms := make([]phoneme.Atom, 0, len(onset)+len(coda)+1)
	for _, p := range onset {
		atoms = append(atoms, phoneme.Atom{Phoneme: p, Region: phoneme.Onset})
	}
	if nucleus != "" {
		atoms = append(atoms, phoneme.Atom{Phoneme: nucleus, Region: phoneme.Nucleus})
	}
	for _, p := range coda {
		atoms = append(atoms, phoneme.Atom{Phoneme: p, Region: phoneme.Coda})
	}
	return Syllable{atoms: atoms}
}

// Atoms returns the syllable's atoms in order. The returned slice is
// owned by the caller.
func (s Syllable) Atoms() []phoneme.Atom {
	out := make([]phoneme.Atom, len(s.atoms))
	copy(out, s.atoms)
	return out
}

// String concatenates the syllable's phonemes in order, with no
// separator.
func (s Syllable) String() string {
	var sb strings.Builder
	for _, a := range s.atoms {
		sb.WriteString(a.Phoneme)
	}
	return sb.String()
}

// IsLastPhonemeS reports whether the syllable's final atom is the
// phoneme "s" — used by the postprocessor's disallow-F-for-final-/s/
// rule.
func (s Syllable) IsLastPhonemeS() bool {
	if len(s.atoms) == 0 {
		return false
	}
	return s.atoms[len(s.atoms)-1].Phoneme == "s"
}

func (s Syllable) onsetPhonemes() []string {
	var out []string
	for _, a := range s.atoms {
		if a.Region == phoneme.Onset {
			out = append(out, a.Phoneme)
		}
	}
	return out
}

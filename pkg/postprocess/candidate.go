// Package postprocess applies the configured per-sequence and
// whole-dictionary transformations to candidate stroke sequences:
// final-/s/ correction, stroke folding, vowel dropping, and homophone
// disambiguation.
package postprocess

import (
	"github.com/andrewhess/stenodict/pkg/steno"
	"github.com/andrewhess/stenodict/pkg/syllabify"
)

// Candidate pairs a candidate stroke sequence with the syllables it
// realizes. The disallow-final-s rule needs both: the stroke tells it
// which key spells the /s/ sound, the syllable tells it whether that
// sound is actually the coda's last phoneme.
type Candidate struct {
	Sequence  steno.Sequence
	Syllables []syllabify.Syllable
}

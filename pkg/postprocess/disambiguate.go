package postprocess

import (
	"github.com/andrewhess/stenodict/pkg/config"
	"github.com/andrewhess/stenodict/pkg/steno"
)

// Entry is one word's surviving candidate sequences, the unit the
// whole-dictionary postprocessing pass operates on.
type Entry struct {
	Word      string
	Sequences []steno.Sequence
}

// Disambiguate resolves homophone collisions across the whole
// dictionary: iterating entries (and, within an entry, its
// candidates) in order, it appends the configured disambiguator
// stroke to any candidate whose printable form has already been used,
// repeating until the result is unique.
func Disambiguate(d config.Disambiguator, entries []Entry) ([]Entry, error) {
	if !d.Enabled {
		return entries, nil
	}
	stroke, err := steno.ParseStroke(d.Stroke)
	if err != nil {
		return nil, err
	}

	used := make(map[string]bool)
	out := make([]Entry, len(entries))
	for i, e := range entries {
		newSeqs := make([]steno.Sequence, len(e.Sequences))
		for j, seq := range e.Sequences {
			for used[seq.String()] {
				seq = seq.AppendStroke(stroke)
			}
			used[seq.String()] = true
			newSeqs[j] = seq
		}
		out[i] = Entry{Word: e.Word, Sequences: newSeqs}
	}
	return out, nil
}

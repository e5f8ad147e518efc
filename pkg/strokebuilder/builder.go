// Package strokebuilder turns a syllable sequence into every distinct
// candidate stroke sequence that could realize it.
package strokebuilder

import (
	"fmt"

	"github.com/andrewhess/stenodict/pkg/config"
	"github.com/andrewhess/stenodict/pkg/errs"
	"github.com/andrewhess/stenodict/pkg/phoneme"
	"github.com/andrewhess/stenodict/pkg/steno"
	"github.com/andrewhess/stenodict/pkg/syllabify"
)

// MapAtoms performs the greedy longest-match decomposition of a
// syllable's flattened atom sequence against the configured
// phoneme-cluster index: at each position, the longest remaining
// prefix that has an exact entry in the index wins. Ported verbatim
// in semantics from original_source's Syllable.map_atoms (confirmed
// by its test_map_atoms_* suite, including clusters that span region
// boundaries). Returns false if any residue, however short, has no
// entry.
func MapAtoms(cfg *config.Config, atoms []phoneme.Atom) ([][][]steno.Key, bool) {
	var clusters [][][]steno.Key
	i := 0
	for i < len(atoms) {
		matched := false
		for length := len(atoms) - i; length >= 1; length-- {
			if candidates, ok := cfg.Lookup(atoms[i : i+length]); ok {
				clusters = append(clusters, candidates)
				i += length
				matched = true
				break
			}
		}
		if !matched {
			return nil, false
		}
	}
	return clusters, true
}

// cartesianKeys expands a list of per-cluster candidate key lists
// into every flat key list formed by picking one candidate from each
// cluster, in order.
func cartesianKeys(clusters [][][]steno.Key) [][]steno.Key {
	combos := [][]steno.Key{{}}
	for _, candidates := range clusters {
		var next [][]steno.Key
		for _, prefix := range combos {
			for _, cand := range candidates {
				combined := make([]steno.Key, 0, len(prefix)+len(cand))
				combined = append(combined, prefix...)
				combined = append(combined, cand...)
				next = append(next, combined)
			}
		}
		combos = next
	}
	return combos
}

// StrokesForSyllable returns every valid stroke that can realize one
// syllable. Candidates whose assembled key list violates steno order
// are silently discarded. Returns an Untranslatable error when part of
// the syllable has no cluster mapping, and an empty slice with a nil
// error when mappings exist but no candidate is in steno order.
func StrokesForSyllable(cfg *config.Config, syl syllabify.Syllable) ([]steno.Stroke, error) {
	clusters, ok := MapAtoms(cfg, syl.Atoms())
	if !ok {
		return nil, errs.New(errs.Untranslatable, fmt.Errorf("no cluster mapping for syllable %q", syl.String()))
	}

	var strokes []steno.Stroke
	for _, keys := range cartesianKeys(clusters) {
		s, err := steno.NewStroke(keys...)
		if err != nil {
			continue // out-of-order candidate, discarded.
		}
		strokes = append(strokes, s)
	}
	return strokes, nil
}

// BuildCandidates returns every distinct candidate stroke sequence
// realizing the given syllable sequence, formed as the Cartesian
// product of each syllable's surviving strokes.
func BuildCandidates(cfg *config.Config, syllables []syllabify.Syllable) ([]steno.Sequence, error) {
	if len(syllables) == 0 {
		return nil, nil
	}

	perSyllable := make([][]steno.Stroke, len(syllables))
	for i, syl := range syllables {
		strokes, err := StrokesForSyllable(cfg, syl)
		if err != nil {
			return nil, err
		}
		if len(strokes) == 0 {
			return nil, errs.New(errs.Untranslatable, fmt.Errorf("no valid stroke for syllable %q", syl.String()))
		}
		perSyllable[i] = strokes
	}

	sequences := []steno.Sequence{steno.NewSequence()}
	for _, strokes := range perSyllable {
		var next []steno.Sequence
		for _, prefix := range sequences {
			for _, s := range strokes {
				next = append(next, prefix.AppendStroke(s))
			}
		}
		sequences = next
	}
	return sequences, nil
}

package postprocess

import (
	"github.com/andrewhess/stenodict/pkg/config"
	"github.com/andrewhess/stenodict/pkg/steno"
)

type bank int

const (
	leftBank bank = iota
	rightBank
)

// consonantConstraint is a resolved config.VowelDropRule.Left/.Right
// value: a predicate over a stroke's consonant region on one bank.
type consonantConstraint func(steno.Stroke) bool

type resolvedVowelDropRule struct {
	position             string
	left, right          consonantConstraint
	vowelPatterns        [][]steno.Key
	keepOriginalSequence bool
}

// VowelDrop builds the Processor that applies the configured
// vowel-dropping rules, in order, to every candidate. A rule fires on
// any stroke, at a configured position within its sequence, whose
// left/right consonant regions satisfy the rule's constraints and
// whose vowel cluster (ignoring star) matches one of the configured
// patterns; when it fires, the stroke's vowels are cleared. A rule
// with KeepOriginalSequence adds the dropped variant alongside the
// original instead of replacing it.
func VowelDrop(rules []config.VowelDropRule) (Processor, error) {
	resolved := make([]resolvedVowelDropRule, len(rules))
	for i, rule := range rules {
		left, err := buildConsonantConstraint(rule.Left, leftBank)
		if err != nil {
			return nil, err
		}
		right, err := buildConsonantConstraint(rule.Right, rightBank)
		if err != nil {
			return nil, err
		}
		patterns := make([][]steno.Key, len(rule.Vowels))
		for j, p := range rule.Vowels {
			patterns[j] = parseVowelPattern(p)
		}
		resolved[i] = resolvedVowelDropRule{
			position:             rule.Position,
			left:                 left,
			right:                right,
			vowelPatterns:        patterns,
			keepOriginalSequence: rule.KeepOriginalSequence,
		}
	}

	return transformProcessor{fn: func(cand Candidate) []Candidate {
		cur := []Candidate{cand}
		for _, rule := range resolved {
			cur = applyVowelDropRule(rule, cur)
		}
		return cur
	}}, nil
}

func applyVowelDropRule(rule resolvedVowelDropRule, in []Candidate) []Candidate {
	out := make([]Candidate, 0, len(in))
	for _, cand := range in {
		dropped, changed := dropVowelsInCandidate(rule, cand)
		if !changed {
			out = append(out, cand)
			continue
		}
		if rule.keepOriginalSequence {
			out = append(out, cand)
		}
		out = append(out, dropped)
	}
	return out
}

func dropVowelsInCandidate(rule resolvedVowelDropRule, cand Candidate) (Candidate, bool) {
	strokes := cand.Sequence.Strokes()
	newStrokes := make([]steno.Stroke, len(strokes))
	copy(newStrokes, strokes)
	changed := false

	for i, s := range strokes {
		if !positionMatches(rule.position, i, len(strokes)) {
			continue
		}
		if !rule.left(s) || !rule.right(s) || !matchesVowelPattern(rule.vowelPatterns, s) {
			continue
		}
		newStrokes[i] = s.ClearAllVowels()
		changed = true
	}

	if !changed {
		return cand, false
	}
	return Candidate{Sequence: steno.NewSequence(newStrokes...), Syllables: cand.Syllables}, true
}

func positionMatches(position string, i, total int) bool {
	switch position {
	case config.PositionSingle:
		return total == 1
	case config.PositionFirst:
		return total > 1 && i == 0
	case config.PositionMiddle:
		return total > 2 && i > 0 && i < total-1
	case config.PositionLast:
		return total > 1 && i == total-1
	case config.PositionMiddleOrLast:
		return total > 1 && i > 0
	case config.PositionAnyMultiStroke:
		return total > 1
	default:
		return false
	}
}

func buildConsonantConstraint(constraint string, b bank) (consonantConstraint, error) {
	switch constraint {
	case config.AnySetOfKeys:
		return func(steno.Stroke) bool { return true }, nil
	case config.AnyNonEmptySetOfKeys:
		if b == leftBank {
			return func(s steno.Stroke) bool { return s.HasLeftConsonant() }, nil
		}
		return func(s steno.Stroke) bool { return s.HasRightConsonant() }, nil
	default:
		var keys []steno.Key
		var err error
		if b == leftBank {
			keys, err = config.ParseLeftCluster(constraint)
		} else {
			keys, err = config.ParseRightCluster(constraint)
		}
		if err != nil {
			return nil, err
		}
		expected := steno.Stroke{}.AddKeysIgnoreOrder(keys...)
		if b == leftBank {
			return func(s steno.Stroke) bool { return s.LeftConsonantsMatch(expected) }, nil
		}
		return func(s steno.Stroke) bool { return s.RightConsonantsMatch(expected) }, nil
	}
}

func matchesVowelPattern(patterns [][]steno.Key, s steno.Stroke) bool {
	for _, keys := range patterns {
		expected := steno.Stroke{}.AddKeysIgnoreOrder(keys...)
		if s.VowelsMatch(expected) {
			return true
		}
	}
	return false
}

func parseVowelPattern(pattern string) []steno.Key {
	var keys []steno.Key
	for i := 0; i < len(pattern); i++ {
		switch pattern[i] {
		case 'A':
			keys = append(keys, steno.A)
		case 'O':
			keys = append(keys, steno.O)
		case 'E':
			keys = append(keys, steno.E)
		case 'U':
			keys = append(keys, steno.U)
		}
	}
	return keys
}

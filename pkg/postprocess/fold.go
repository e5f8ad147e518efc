package postprocess

import (
	"strings"

	"github.com/andrewhess/stenodict/pkg/config"
	"github.com/andrewhess/stenodict/pkg/steno"
)

// resolvedFoldRule is a config.FoldRule with its key cluster parsed
// once at construction time, so applying it to a candidate never
// fails at runtime (the configuration loader already guarantees
// rule.Keys and rule.Match parse).
type resolvedFoldRule struct {
	match                []string
	foldIntoNext         bool
	keys                 []steno.Key
	keepOriginalSequence bool
}

// Fold builds the Processor that applies the configured fold rules,
// in order, to every candidate. A rule fires once per stroke whose
// printable form is one of its Match strings; the matched stroke is
// removed and its configured keys are merged into the adjacent stroke
// (the previous or next one, depending on FoldInto) without
// re-checking steno order — folding deliberately allows out-of-order
// keys in service of typable shortcuts. A rule applied where the
// adjacent stroke doesn't exist (e.g. FoldInto = NEXT_STROKE on the
// last stroke) is a no-op for that occurrence. A rule with
// KeepOriginalSequence adds the folded variant alongside the original
// instead of replacing it.
func Fold(rules []config.FoldRule) (Processor, error) {
	resolved := make([]resolvedFoldRule, len(rules))
	for i, rule := range rules {
		joined := strings.ReplaceAll(strings.Join(rule.Keys, ""), "-", "")
		keys, err := config.ParseRightCluster(joined)
		if err != nil {
			return nil, err
		}
		resolved[i] = resolvedFoldRule{
			match:                rule.Match,
			foldIntoNext:         rule.FoldInto == config.NextStroke,
			keys:                 keys,
			keepOriginalSequence: rule.KeepOriginalSequence,
		}
	}

	return transformProcessor{fn: func(cand Candidate) []Candidate {
		cur := []Candidate{cand}
		for _, rule := range resolved {
			cur = applyFoldRule(rule, cur)
		}
		return cur
	}}, nil
}

func applyFoldRule(rule resolvedFoldRule, in []Candidate) []Candidate {
	out := make([]Candidate, 0, len(in))
	for _, cand := range in {
		folded, changed := foldCandidate(rule, cand)
		if !changed {
			out = append(out, cand)
			continue
		}
		// Each fold removes one stroke, so this ends once no further
		// matching stroke has an adjacent stroke to fold into.
		for {
			next, again := foldCandidate(rule, folded)
			if !again {
				break
			}
			folded = next
		}
		if rule.keepOriginalSequence {
			out = append(out, cand)
		}
		out = append(out, folded)
	}
	return out
}

func foldCandidate(rule resolvedFoldRule, cand Candidate) (Candidate, bool) {
	strokes := cand.Sequence.Strokes()
	for i, s := range strokes {
		if !matchesAny(s, rule.match) {
			continue
		}
		target := i - 1
		if rule.foldIntoNext {
			target = i + 1
		}
		if target < 0 || target >= len(strokes) {
			continue // adjacent stroke doesn't exist: no-op for this occurrence.
		}

		newStrokes := make([]steno.Stroke, 0, len(strokes)-1)
		newStrokes = append(newStrokes, strokes[:i]...)
		newStrokes = append(newStrokes, strokes[i+1:]...)

		targetIdx := target
		if target > i {
			targetIdx-- // the removed stroke shifted everything after it down by one.
		}
		newStrokes[targetIdx] = newStrokes[targetIdx].AddKeysIgnoreOrder(rule.keys...)

		return Candidate{
			Sequence:  steno.NewSequence(newStrokes...),
			Syllables: cand.Syllables,
		}, true
	}
	return cand, false
}

func matchesAny(s steno.Stroke, patterns []string) bool {
	printed := s.String()
	for _, p := range patterns {
		if p == printed {
			return true
		}
	}
	return false
}

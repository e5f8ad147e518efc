package postprocess

import "github.com/andrewhess/stenodict/pkg/config"

// PerSequence builds the full per-sequence postprocessing chain in
// the order the final-/s/ correction, stroke folding, and vowel
// dropping are specified: a stroke that already violates
// disallow-F-for-final-s never gets a chance to be folded or have its
// vowels dropped.
func PerSequence(pp config.Postprocessing) (Chain, error) {
	fold, err := Fold(pp.FoldRules)
	if err != nil {
		return Chain{}, err
	}
	vowelDrop, err := VowelDrop(pp.VowelDropRules)
	if err != nil {
		return Chain{}, err
	}
	return NewChain(DisallowFForFinalS(pp.DisallowFForFinalS), fold, vowelDrop), nil
}

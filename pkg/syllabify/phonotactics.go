package syllabify

import "github.com/andrewhess/stenodict/pkg/config"

const maxOnsetConsonants = 3

// canPrependToOnset is the admissibility predicate:
// may phonemeToAdd be prepended to an onset whose current head is
// head (the empty string meaning the onset is empty, i.e.
// phonemeToAdd would sit immediately before the nucleus)?
//
// onsetLen hard-limits onsets to at most three consonants (English
// syllable structure is (C)^3 V (C)^5, per original_source). The
// head == "j", onsetLen == 1 branch is a length-dependent rule that
// cannot be expressed as a pure (head, phonemeToAdd) config lookup
// (DESIGN.md Open Question #2), so it is a dedicated branch here
// rather than a data-driven one.
func canPrependToOnset(cfg *config.Config, phonemeToAdd, head string, onsetLen int) bool {
	if !cfg.IsConsonant(phonemeToAdd) {
		return false
	}
	if onsetLen >= maxOnsetConsonants {
		return false
	}
	if head == "" {
		return cfg.AllowedAsFirstConsonant(phonemeToAdd)
	}

	// Consonants other than ɹ and w, followed by j, are admissible
	// only when j would be the onset's sole other member so far.
	if head == "j" && onsetLen == 1 && phonemeToAdd != "ɹ" && phonemeToAdd != "w" {
		return true
	}

	return cfg.AllowedBefore(head, phonemeToAdd)
}

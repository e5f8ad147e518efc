// Package syllabify splits an IPA pronunciation string into syllables
// using the maximum-onset principle, constrained by the phonotactic
// rules declared in configuration.
package syllabify

import (
	"fmt"
	"strings"

	"github.com/andrewhess/stenodict/pkg/config"
	"github.com/andrewhess/stenodict/pkg/errs"
)

const stressMarkers = "ˈˌ"

// Syllabify splits ipa into a left-to-right sequence of syllables.
func Syllabify(ipa string, cfg *config.Config) ([]Syllable, error) {
	clean := strings.Map(func(r rune) rune {
		if strings.ContainsRune(stressMarkers, r) {
			return -1
		}
		return r
	}, ipa)

	runes := []rune(clean)
	if len(runes) == 0 {
		return nil, errs.New(errs.Unsyllabifiable, fmt.Errorf("empty pronunciation"))
	}

	nuclei := scanTokens(runes, cfg.VowelPhonemes())
	if len(nuclei) == 0 {
		return nil, errs.New(errs.Unsyllabifiable, fmt.Errorf("no vowel nucleus found in %q", ipa))
	}

	// One syllable per nucleus; segment text between nuclei into
	// tentative onsets.
	type raw struct {
		onset   []string
		nucleus string
	}
	rawSyllables := make([]raw, len(nuclei))
	segStart := 0
	for i, n := range nuclei {
		onsetTokens, ok := scanTokensExact(runes[segStart:n.start], cfg.ConsonantPhonemes())
		if !ok {
			return nil, errs.New(errs.Unsyllabifiable, fmt.Errorf(
				"unrecognized consonant phoneme in %q", string(runes[segStart:n.start])))
		}
		rawSyllables[i] = raw{onset: tokensToPhonemes(onsetTokens), nucleus: n.phoneme}
		segStart = n.end
	}

	// Trailing text after the last nucleus is the last syllable's
	// coda.
	codaTokens, ok := scanTokensExact(runes[segStart:], cfg.ConsonantPhonemes())
	if !ok {
		return nil, errs.New(errs.Unsyllabifiable, fmt.Errorf(
			"unrecognized consonant phoneme in %q", string(runes[segStart:])))
	}

	syllableOnsets := make([][]string, len(rawSyllables))
	syllableCodas := make([][]string, len(rawSyllables))
	syllableCodas[len(rawSyllables)-1] = tokensToPhonemes(codaTokens)

	// Maximal-onset assignment, last syllable to first.
	for i := len(rawSyllables) - 1; i >= 0; i-- {
		onsetLst := rawSyllables[i].onset
		var newOnset []string
		donated := false

		for k := len(onsetLst) - 1; k >= 0; k-- {
			phon := onsetLst[k]
			head := ""
			if len(newOnset) > 0 {
				head = newOnset[0]
			}
			if canPrependToOnset(cfg, phon, head, len(newOnset)) {
				newOnset = append([]string{phon}, newOnset...)
				continue
			}

			if i == 0 {
				return nil, errs.New(errs.Unsyllabifiable, fmt.Errorf(
					"unable to assign leading consonants in %q", ipa))
			}
			syllableCodas[i-1] = onsetLst[:k+1]
			donated = true
			break
		}
		_ = donated
		syllableOnsets[i] = newOnset
	}

	out := make([]Syllable, len(rawSyllables))
	for i, rs := range rawSyllables {
		out[i] = NewSyllable(syllableOnsets[i], rs.nucleus, syllableCodas[i])
	}
	return out, nil
}

func tokensToPhonemes(toks []token) []string {
	out := make([]string, len(toks))
	for i, t := range toks {
		out[i] = t.phoneme
	}
	return out
}

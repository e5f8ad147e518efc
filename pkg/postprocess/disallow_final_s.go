package postprocess

import "github.com/andrewhess/stenodict/pkg/steno"

// DisallowFForFinalS discards any candidate where a stroke's last key
// is right-F and the syllable it realizes ends in the phoneme "s":
// right-F is a legitimate /s/ spelling only when another coda sound
// follows it.
func DisallowFForFinalS(enabled bool) Processor {
	return transformProcessor{fn: func(cand Candidate) []Candidate {
		if enabled && violatesFinalS(cand) {
			return nil
		}
		return []Candidate{cand}
	}}
}

func violatesFinalS(cand Candidate) bool {
	strokes := cand.Sequence.Strokes()
	for i, syl := range cand.Syllables {
		if i >= len(strokes) {
			break
		}
		last, ok := strokes[i].GetLastKey()
		if ok && last == steno.RF && syl.IsLastPhonemeS() {
			return true
		}
	}
	return false
}

package syllabify

import "sort"

// token is one phoneme matched against a run of input runes, tagged
// with its rune-offset span in the scanned input.
type token struct {
	phoneme    string
	start, end int
}

// byDescendingLength returns candidates sorted so the longest phoneme
// is tried first, implementing longest-match tokenization as a scan
// over rune offsets rather than a string-replacement-with-placeholders
// approach, which risks placeholder collisions with natural IPA
// characters.
func byDescendingLength(candidates []string) []string {
	out := make([]string, len(candidates))
	copy(out, candidates)
	sort.SliceStable(out, func(i, j int) bool { return len([]rune(out[i])) > len([]rune(out[j])) })
	return out
}

// scanTokens performs a greedy longest-match scan over runes, trying
// each candidate (longest first) at every position. Matched runs are
// returned as tokens, in left-to-right order; unmatched runes are
// skipped without producing a token (the caller decides whether a gap
// between tokens is acceptable).
func scanTokens(runes []rune, candidates []string) []token {
	sorted := byDescendingLength(candidates)
	sortedRunes := make([][]rune, len(sorted))
	for i, c := range sorted {
		sortedRunes[i] = []rune(c)
	}

	var out []token
	for pos := 0; pos < len(runes); {
		matched := false
		for i, cr := range sortedRunes {
			if len(cr) == 0 || pos+len(cr) > len(runes) {
				continue
			}
			if runesEqual(runes[pos:pos+len(cr)], cr) {
				out = append(out, token{phoneme: sorted[i], start: pos, end: pos + len(cr)})
				pos += len(cr)
				matched = true
				break
			}
		}
		if !matched {
			pos++
		}
	}
	return out
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// scanTokensExact is like scanTokens but additionally reports whether
// every rune in the input was consumed by some token — used for
// consonant segments, where a leftover rune means an unconfigured
// phoneme was encountered.
func scanTokensExact(runes []rune, candidates []string) ([]token, bool) {
	sorted := byDescendingLength(candidates)
	sortedRunes := make([][]rune, len(sorted))
	for i, c := range sorted {
		sortedRunes[i] = []rune(c)
	}

	var out []token
	pos := 0
	for pos < len(runes) {
		matched := false
		for i, cr := range sortedRunes {
			if len(cr) == 0 || pos+len(cr) > len(runes) {
				continue
			}
			if runesEqual(runes[pos:pos+len(cr)], cr) {
				out = append(out, token{phoneme: sorted[i], start: pos, end: pos + len(cr)})
				pos += len(cr)
				matched = true
				break
			}
		}
		if !matched {
			return out, false
		}
	}
	return out, true
}

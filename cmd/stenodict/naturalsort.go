package main

import (
	"regexp"
	"strconv"
)

var digitsPattern = regexp.MustCompile(`[0-9]+`)

// sortSegment is one piece of a naturalSortSegments split: either a
// literal text run or a parsed digit run, interleaved text, digits,
// text, digits, ..., text so position parity alone determines which
// kind a segment is.
type sortSegment struct {
	text  string
	num   int64
	isNum bool
}

// naturalSortSegments splits s into alternating text/number segments,
// e.g. "123hello-world.45.txt" -> ["", 123, "hello-world.", 45, ".txt"].
func naturalSortSegments(s string) []sortSegment {
	matches := digitsPattern.FindAllStringIndex(s, -1)
	segs := make([]sortSegment, 0, 2*len(matches)+1)

	last := 0
	for _, m := range matches {
		segs = append(segs, sortSegment{text: s[last:m[0]]})
		n, _ := strconv.ParseInt(s[m[0]:m[1]], 10, 64)
		segs = append(segs, sortSegment{num: n, isNum: true})
		last = m[1]
	}
	segs = append(segs, sortSegment{text: s[last:]})
	return segs
}

// naturalLess orders strings the way a human would: embedded digit
// runs compare numerically rather than lexically.
func naturalLess(a, b string) bool {
	sa, sb := naturalSortSegments(a), naturalSortSegments(b)
	for i := 0; i < len(sa) && i < len(sb); i++ {
		if sa[i].isNum && sb[i].isNum {
			if sa[i].num != sb[i].num {
				return sa[i].num < sb[i].num
			}
			continue
		}
		if sa[i].text != sb[i].text {
			return sa[i].text < sb[i].text
		}
	}
	return len(sa) < len(sb)
}

package steno

import (
	"strings"

	"github.com/andrewhess/stenodict/pkg/errs"
)

// middleMask covers the five keys that count as a stroke's "vowel or
// star" center: A, O, Star, E, U.
const middleMask = 1<<A | 1<<O | 1<<Star | 1<<E | 1<<U

// Stroke is an immutable set of keys pressed simultaneously, stored
// as a bitmap over the 23 key indices. The zero value is the empty
// stroke.
type Stroke struct {
	bits uint32
}

func (s Stroke) has(k Key) bool { return s.bits&(1<<uint(k)) != 0 }

// NewStroke builds a stroke from an ordered key list. Keys may be
// given in any mix, but every ordered key (everything but Num and
// Star) must appear with strictly ascending index relative to the
// previously added ordered key, or the construction fails with
// errs.OutOfStenoOrder.
func NewStroke(keys ...Key) (Stroke, error) {
	var s Stroke
	lastOrdered := -1
	for _, k := range keys {
		if k.Ordered() {
			if int(k) <= lastOrdered {
				return Stroke{}, errs.New(errs.OutOfStenoOrder, errOutOfOrder(k))
			}
			lastOrdered = int(k)
		}
		s.bits |= 1 << uint(k)
	}
	return s, nil
}

// AddKeysMaintainOrder returns a new stroke with keys added,
// rejecting the result if it would place an ordered key before the
// stroke's current last ordered position.
func (s Stroke) AddKeysMaintainOrder(keys ...Key) (Stroke, error) {
	lastOrdered := s.lastOrderedIndex()
	next := s
	for _, k := range keys {
		if k.Ordered() {
			if int(k) <= lastOrdered {
				return Stroke{}, errs.New(errs.OutOfStenoOrder, errOutOfOrder(k))
			}
			lastOrdered = int(k)
		}
		next.bits |= 1 << uint(k)
	}
	return next, nil
}

// AddKeysIgnoreOrder returns a new stroke with keys added without any
// order check. Folding rules deliberately allow out-of-order keys in
// service of typable shortcuts, so this is how they
// mutate a stroke.
func (s Stroke) AddKeysIgnoreOrder(keys ...Key) Stroke {
	next := s
	for _, k := range keys {
		next.bits |= 1 << uint(k)
	}
	return next
}

// ClearKeys returns a new stroke with the given keys removed.
func (s Stroke) ClearKeys(keys ...Key) Stroke {
	next := s
	for _, k := range keys {
		next.bits &^= 1 << uint(k)
	}
	return next
}

// ClearAllVowels returns a new stroke with A, O, E and U removed,
// leaving Star (if present) and all consonants untouched.
func (s Stroke) ClearAllVowels() Stroke {
	return s.ClearKeys(A, O, E, U)
}

func (s Stroke) lastOrderedIndex() int {
	last := -1
	for i := Key(0); i < numKeys; i++ {
		if s.has(i) && i.Ordered() {
			last = int(i)
		}
	}
	return last
}

// IsEmpty reports whether the stroke has no keys at all.
func (s Stroke) IsEmpty() bool { return s.bits == 0 }

// HasLeftConsonant reports whether any left-bank consonant key is
// active.
func (s Stroke) HasLeftConsonant() bool {
	return s.bits&(keyRange(LS, LR)) != 0
}

// HasRightConsonant reports whether any right-bank consonant key is
// active.
func (s Stroke) HasRightConsonant() bool {
	return s.bits&(keyRange(RF, RZ)) != 0
}

func keyRange(from, to Key) uint32 {
	var m uint32
	for i := from; i <= to; i++ {
		m |= 1 << uint(i)
	}
	return m
}

// GetVowels returns the active vowel keys (A, O, E, U) in ascending
// order.
func (s Stroke) GetVowels() []Key {
	var out []Key
	for _, k := range [...]Key{A, O, E, U} {
		if s.has(k) {
			out = append(out, k)
		}
	}
	return out
}

// GetLastKey returns the highest-index active key and true, or the
// zero Key and false if the stroke is empty.
func (s Stroke) GetLastKey() (Key, bool) {
	for i := Key(numKeys - 1); i >= 0; i-- {
		if s.has(i) {
			return i, true
		}
	}
	return 0, false
}

// GetKeys returns every active key in ascending index order.
func (s Stroke) GetKeys() []Key {
	out := make([]Key, 0, numKeys)
	for i := Key(0); i < numKeys; i++ {
		if s.has(i) {
			out = append(out, i)
		}
	}
	return out
}

// regionsMatch compares two strokes over a key range. The sub-region
// queries below pass ranges that leave out the star key, so they
// always ignore it (spec §4.1).
func regionsMatch(a, b Stroke, from, to Key) bool {
	mask := keyRange(from, to)
	return a.bits&mask == b.bits&mask
}

// LeftConsonantsMatch reports whether s and other agree on every
// left-bank consonant key.
func (s Stroke) LeftConsonantsMatch(other Stroke) bool {
	return regionsMatch(s, other, LS, LR)
}

// VowelsMatch reports whether s and other agree on every vowel key,
// ignoring Star.
func (s Stroke) VowelsMatch(other Stroke) bool {
	return regionsMatch(s, other, A, O) && regionsMatch(s, other, E, U)
}

// RightConsonantsMatch reports whether s and other agree on every
// right-bank consonant key.
func (s Stroke) RightConsonantsMatch(other Stroke) bool {
	return regionsMatch(s, other, RF, RZ)
}

// Equal reports whether two strokes contain exactly the same keys.
func (s Stroke) Equal(other Stroke) bool { return s.bits == other.bits }

// Less implements the stroke ordering: lexicographic over ascending
// active-key-index lists with Star left out, which places shorter
// strokes before longer ones sharing a prefix; two strokes that differ
// only in Star put the unstarred variant before its starred
// counterpart.
func (s Stroke) Less(other Stroke) bool {
	a, b := s.ClearKeys(Star).GetKeys(), other.ClearKeys(Star).GetKeys()
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return !s.has(Star) && other.has(Star)
}

// String renders the stroke in printable steno notation: keys in
// ascending index order, with a literal '-' inserted immediately
// before the first right-bank consonant when the stroke has neither a
// vowel nor a star. The empty stroke prints as "-".
func (s Stroke) String() string {
	if s.IsEmpty() {
		return "-"
	}
	hasMiddle := s.bits&middleMask != 0
	var sb strings.Builder
	dashed := hasMiddle
	for i := Key(0); i < numKeys; i++ {
		if !s.has(i) {
			continue
		}
		if !dashed && i >= RF {
			sb.WriteByte('-')
			dashed = true
		}
		sb.WriteByte(i.Letter())
	}
	return sb.String()
}

// ParseStroke parses a stroke from its printable form. An empty
// string, or a string with no vowel, no star, and no literal dash,
// fails with errs.MissingDashInStroke (there would be no way to tell
// left-bank from right-bank consonants sharing a letter). Keys out of
// steno order, or an unrecognized symbol, fail with
// errs.OutOfStenoOrder.
func ParseStroke(s string) (Stroke, error) {
	if s == "-" {
		return Stroke{}, nil
	}
	if s == "" {
		return Stroke{}, errs.New(errs.MissingDashInStroke, errNoDash)
	}

	hasDash := strings.Contains(s, "-")
	var keys []Key
	pos := -1

	for i := 0; i < len(s); i++ {
		ch := s[i]
		switch ch {
		case '-':
			// The dash marks the left/right boundary explicitly, so an
			// ambiguous letter (S, T, P, R) immediately after it must
			// resolve to its right-bank key even with no vowel or star
			// key to have already advanced the scan position there.
			if int(Star) > pos {
				pos = int(Star)
			}
			continue
		case '#':
			keys = append(keys, Num)
			continue
		case '*':
			keys = append(keys, Star)
			continue
		}

		idx, ok := NextKeyIndex(ch, pos+1)
		if !ok {
			return Stroke{}, errs.New(errs.OutOfStenoOrder, errBadSymbol(ch))
		}
		keys = append(keys, Key(idx))
		pos = idx
	}

	hasMiddle := false
	for _, k := range keys {
		if k == Star || k.IsVowel() {
			hasMiddle = true
		}
	}
	if !hasMiddle && !hasDash {
		return Stroke{}, errs.New(errs.MissingDashInStroke, errNoDash)
	}

	var out Stroke
	for _, k := range keys {
		out.bits |= 1 << uint(k)
	}
	return out, nil
}

// NextKeyIndex returns the index of the nearest key at or after
// position from whose letter is ch, skipping Num and Star (which
// never participate in letter-ambiguity resolution). Exported so
// other packages that resolve bare, one-bank key-cluster strings
// (the configuration loader's cluster parser) can disambiguate
// letters shared by both banks the same way a full printable stroke
// does.
func NextKeyIndex(ch byte, from int) (int, bool) {
	for i := from; i < numKeys; i++ {
		if keyLetters[i] == ch && i != int(Num) && i != int(Star) {
			return i, true
		}
	}
	return -1, false
}

package config

import (
	"fmt"

	"github.com/andrewhess/stenodict/pkg/steno"
)

// side selects which bank ambiguous consonant letters (S, T, P, R)
// resolve to when parsing a bare, single-bank key-cluster string such
// as "TKPW" or "FT" — these strings are not full printable strokes
// (no dash/vowel rules apply), just an ordered list of keys declared
// to live entirely on one bank, so an ambiguous letter always
// resolves to that bank regardless of where it falls in the cluster.
type side int

const (
	leftSide side = iota
	rightSide
)

// ParseLeftCluster parses a bare left-bank key-cluster string (no
// dash/vowel rules apply), resolving ambiguous letters (S, T, P, R) to
// their left-bank key. Exported for the postprocessor's fold-rule and
// vowel-drop-rule engines, which need to turn configured literal
// clusters into key lists the same way the configuration loader does.
func ParseLeftCluster(s string) ([]steno.Key, error) { return parseKeyCluster(s, leftSide) }

// ParseRightCluster is ParseLeftCluster for the right bank.
func ParseRightCluster(s string) ([]steno.Key, error) { return parseKeyCluster(s, rightSide) }

func parseKeyCluster(s string, sd side) ([]steno.Key, error) {
	keys := make([]steno.Key, 0, len(s))
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '*' {
			keys = append(keys, steno.Star)
			continue
		}
		k, err := letterToKey(ch, sd)
		if err != nil {
			return nil, fmt.Errorf("in cluster %q: %w", s, err)
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// ParseNucleusCluster parses a bare vowel/nucleus key-cluster string
// such as "UR" or "AOER" (an r-colored vowel's realization). Unlike a
// consonant cluster, a nucleus cluster isn't declared to live on one
// fixed bank: it's read left to right in ascending steno-order
// position, the same way steno.ParseStroke resolves a full stroke
// string, so a vowel establishes the scan position and a trailing
// ambiguous letter (only R appears in practice) naturally resolves to
// whichever bank comes next in steno order — the right bank, since
// every configured vowel cluster's R follows at least one vowel key.
// A fixed left-bank resolution here would send that R to its
// left-bank key, which sits before the vowels in steno order and so
// always fails the order check.
func ParseNucleusCluster(s string) ([]steno.Key, error) {
	keys := make([]steno.Key, 0, len(s))
	pos := -1
	for i := 0; i < len(s); i++ {
		ch := s[i]
		if ch == '*' {
			keys = append(keys, steno.Star)
			continue
		}
		idx, ok := steno.NextKeyIndex(ch, pos+1)
		if !ok {
			return nil, fmt.Errorf("in cluster %q: unrecognized key letter %q", s, ch)
		}
		keys = append(keys, steno.Key(idx))
		pos = idx
	}
	return keys, nil
}

func letterToKey(ch byte, sd side) (steno.Key, error) {
	switch ch {
	case 'S':
		if sd == leftSide {
			return steno.LS, nil
		}
		return steno.RS, nil
	case 'T':
		if sd == leftSide {
			return steno.LT, nil
		}
		return steno.RT, nil
	case 'K':
		return steno.LK, nil
	case 'P':
		if sd == leftSide {
			return steno.LP, nil
		}
		return steno.RP, nil
	case 'W':
		return steno.LW, nil
	case 'H':
		return steno.LH, nil
	case 'R':
		if sd == leftSide {
			return steno.LR, nil
		}
		return steno.RR, nil
	case 'A':
		return steno.A, nil
	case 'O':
		return steno.O, nil
	case 'E':
		return steno.E, nil
	case 'U':
		return steno.U, nil
	case 'F':
		return steno.RF, nil
	case 'B':
		return steno.RB, nil
	case 'L':
		return steno.RL, nil
	case 'G':
		return steno.RG, nil
	case 'D':
		return steno.RD, nil
	case 'Z':
		return steno.RZ, nil
	default:
		return 0, fmt.Errorf("unrecognized key letter %q", ch)
	}
}

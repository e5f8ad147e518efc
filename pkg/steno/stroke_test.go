package steno

import "testing"

func TestNewStrokeOrderEnforced(t *testing.T) {
	if _, err := NewStroke(LT, LS); err == nil {
		t.Fatalf("expected out-of-order error for T before S")
	}
	if _, err := NewStroke(LS, LT, A, RF); err != nil {
		t.Fatalf("unexpected error for ascending keys: %v", err)
	}
}

func TestStrokeStringEmpty(t *testing.T) {
	var s Stroke
	if got := s.String(); got != "-" {
		t.Fatalf("empty stroke String() = %q, want %q", got, "-")
	}
}

func TestStrokeStringDashBetweenConsonants(t *testing.T) {
	s, err := NewStroke(LT, RF)
	if err != nil {
		t.Fatalf("NewStroke: %v", err)
	}
	if got, want := s.String(), "T-F"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStrokeStringRightOnlyLeadingDash(t *testing.T) {
	s, err := NewStroke(RD)
	if err != nil {
		t.Fatalf("NewStroke: %v", err)
	}
	if got, want := s.String(), "-D"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestStrokeStringWithVowelNoDash(t *testing.T) {
	s, err := NewStroke(LK, A, RT)
	if err != nil {
		t.Fatalf("NewStroke: %v", err)
	}
	if got, want := s.String(), "KAT"; got != want {
		t.Fatalf("String() = %q, want %q", got, want)
	}
}

func TestParseStrokeRoundTrip(t *testing.T) {
	cases := []string{"KAT", "TKOG", "STREUPBG", "-D", "T-F", "-"}
	for _, c := range cases {
		s, err := ParseStroke(c)
		if err != nil {
			t.Fatalf("ParseStroke(%q): %v", c, err)
		}
		if got := s.String(); got != c {
			t.Errorf("round trip %q -> %q", c, got)
		}
	}
}

func TestParseStrokeEmptyFails(t *testing.T) {
	if _, err := ParseStroke(""); err == nil {
		t.Fatalf("expected error parsing empty string")
	}
}

func TestParseStrokeDashIsEmpty(t *testing.T) {
	s, err := ParseStroke("-")
	if err != nil {
		t.Fatalf("ParseStroke(\"-\"): %v", err)
	}
	if !s.IsEmpty() {
		t.Fatalf("expected empty stroke")
	}
}

func TestParseStrokeDashResolvesRightBank(t *testing.T) {
	s, err := ParseStroke("S-P")
	if err != nil {
		t.Fatalf("ParseStroke(\"S-P\"): %v", err)
	}
	want, err := NewStroke(LS, RP)
	if err != nil {
		t.Fatalf("NewStroke: %v", err)
	}
	if !s.Equal(want) {
		t.Fatalf("ParseStroke(\"S-P\") = %q, want left S and right P", s.String())
	}
	if got := s.String(); got != "S-P" {
		t.Fatalf("round trip %q -> %q", "S-P", got)
	}
}

func TestParseStrokeOutOfOrder(t *testing.T) {
	if _, err := ParseStroke("TS"); err == nil {
		t.Fatalf("expected out-of-order error for TS")
	}
}

func TestStrokeOrderingShorterFirst(t *testing.T) {
	short, _ := NewStroke(LS)
	long, _ := NewStroke(LS, LT)
	if !short.Less(long) {
		t.Fatalf("expected shorter stroke to sort first")
	}
}

func TestStrokeOrderingUnstarredBeforeStarred(t *testing.T) {
	plain, _ := NewStroke(LS, A)
	starred, _ := NewStroke(LS, A, Star)
	if !plain.Less(starred) {
		t.Fatalf("expected unstarred stroke to sort before starred variant")
	}
}

func TestStrokeRegionMatchIgnoresStar(t *testing.T) {
	a, _ := NewStroke(LS, A)
	b, _ := NewStroke(LS, A, Star)
	if !a.VowelsMatch(b) {
		t.Fatalf("expected vowel match to ignore star")
	}
}

func TestAddKeysIgnoreOrderAllowsOutOfOrder(t *testing.T) {
	s, _ := NewStroke(RT)
	got := s.AddKeysIgnoreOrder(LS)
	if !got.has(LS) || !got.has(RT) {
		t.Fatalf("expected both keys present after ignore-order add")
	}
}

func TestClearAllVowels(t *testing.T) {
	s, _ := NewStroke(LK, A, E, RT)
	cleared := s.ClearAllVowels()
	if len(cleared.GetVowels()) != 0 {
		t.Fatalf("expected no vowels after ClearAllVowels")
	}
	if !cleared.has(LK) || !cleared.has(RT) {
		t.Fatalf("expected consonants preserved")
	}
}

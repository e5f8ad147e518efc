package strokebuilder

import (
	"testing"

	"github.com/andrewhess/stenodict/pkg/config"
	"github.com/andrewhess/stenodict/pkg/steno"
	"github.com/andrewhess/stenodict/pkg/syllabify"
)

func mustConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadDefault()
	if err != nil {
		t.Fatalf("config.LoadDefault: %v", err)
	}
	return cfg
}

func TestBuildCandidatesCat(t *testing.T) {
	cfg := mustConfig(t)
	syls, err := syllabify.Syllabify("kæt", cfg)
	if err != nil {
		t.Fatalf("Syllabify: %v", err)
	}
	seqs, err := BuildCandidates(cfg, syls)
	if err != nil {
		t.Fatalf("BuildCandidates: %v", err)
	}
	found := false
	for _, s := range seqs {
		if s.String() == "KAT" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected KAT among candidates, got %v", stringify(seqs))
	}
}

func TestBuildCandidatesDog(t *testing.T) {
	cfg := mustConfig(t)
	syls, err := syllabify.Syllabify("dɑɡ", cfg)
	if err != nil {
		t.Fatalf("Syllabify: %v", err)
	}
	seqs, err := BuildCandidates(cfg, syls)
	if err != nil {
		t.Fatalf("BuildCandidates: %v", err)
	}
	found := false
	for _, s := range seqs {
		if s.String() == "TKOG" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected TKOG among candidates, got %v", stringify(seqs))
	}
}

func TestBuildCandidatesUntranslatableConsonant(t *testing.T) {
	cfg := mustConfig(t)
	// ŋ has no left-bank mapping, so an onset of bare ŋ is impossible;
	// syllabification itself would already reject ŋ as a first
	// consonant, so construct the syllable directly to exercise the
	// stroke builder's own untranslatable path.
	syl := syllabify.NewSyllable([]string{"ŋ"}, "æ", nil)
	if _, err := StrokesForSyllable(cfg, syl); err == nil {
		t.Fatalf("expected error building stroke for onset ŋ (no left mapping)")
	}
}

func stringify(seqs []steno.Sequence) []string {
	out := make([]string, len(seqs))
	for i, s := range seqs {
		out[i] = s.String()
	}
	return out
}

package config

import (
	"testing"

	"github.com/andrewhess/stenodict/pkg/phoneme"
)

func TestLoadDefault(t *testing.T) {
	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if !cfg.IsConsonant("k") {
		t.Fatalf("expected k to be a known consonant")
	}
	if !cfg.AllowedAsFirstConsonant("st") {
		t.Fatalf("expected st to be allowed as first consonant")
	}
}

func TestLookupVowel(t *testing.T) {
	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	clusters, ok := cfg.Lookup([]phoneme.Atom{{Phoneme: "æ", Region: phoneme.Nucleus}})
	if !ok || len(clusters) != 1 {
		t.Fatalf("expected exactly one cluster for æ, got %v ok=%v", clusters, ok)
	}
}

func TestLookupRColoredVowelClusterIsOrderValid(t *testing.T) {
	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	clusters, ok := cfg.Lookup([]phoneme.Atom{{Phoneme: "ɝ", Region: phoneme.Nucleus}})
	if !ok || len(clusters) != 1 {
		t.Fatalf("expected exactly one cluster for ɝ, got %v ok=%v", clusters, ok)
	}
}

func TestLookupNoMappingAbsent(t *testing.T) {
	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if _, ok := cfg.Lookup([]phoneme.Atom{{Phoneme: "ŋ", Region: phoneme.Onset}}); ok {
		t.Fatalf("expected no onset mapping for ŋ")
	}
}

func TestAllowedBefore(t *testing.T) {
	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if !cfg.AllowedBefore("ɹ", "st") {
		t.Fatalf("expected st to be allowed before ɹ")
	}
	if cfg.AllowedBefore("ɹ", "z") {
		t.Fatalf("did not expect z to be allowed before ɹ")
	}
}

func TestValidateRejectsUnknownPhonologyReference(t *testing.T) {
	blob := []byte(`
vowels:
  a: [A]
consonants:
  k: {left: [K], right: NO_STENO_MAPPING}
phonology:
  allowed_first_consonants: [k, q]
  allowed_after: {}
postprocessing:
  disallow_f_for_final_s: false
  fold_rules: []
  vowel_drop_rules: []
  disambiguator: {enabled: false, stroke: ""}
`)
	if _, err := LoadBlob(blob); err == nil {
		t.Fatalf("expected validation error for unknown phoneme reference")
	}
}

func TestValidateRejectsInvalidCluster(t *testing.T) {
	blob := []byte(`
vowels:
  a: [A]
consonants:
  k: {left: [KT], right: NO_STENO_MAPPING}
phonology:
  allowed_first_consonants: [k]
  allowed_after: {}
postprocessing:
  disallow_f_for_final_s: false
  fold_rules: []
  vowel_drop_rules: []
  disambiguator: {enabled: false, stroke: ""}
`)
	if _, err := LoadBlob(blob); err == nil {
		t.Fatalf("expected validation error for out-of-order cluster KT on the left bank (T after K is out of order)")
	}
}

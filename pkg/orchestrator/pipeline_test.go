package orchestrator

import (
	"context"
	"strings"
	"testing"

	"github.com/andrewhess/stenodict/pkg/config"
	"github.com/andrewhess/stenodict/pkg/ipaindex"
)

func mustConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.LoadDefault()
	if err != nil {
		t.Fatalf("config.LoadDefault: %v", err)
	}
	return cfg
}

func mustIndex(t *testing.T, csv string) *ipaindex.Index {
	t.Helper()
	idx, err := ipaindex.LoadReader(strings.NewReader(csv))
	if err != nil {
		t.Fatalf("ipaindex.LoadReader: %v", err)
	}
	return idx
}

func TestGenerateTranslatesKnownWord(t *testing.T) {
	cfg := mustConfig(t)
	idx := mustIndex(t, "cat,/kæt/\n")

	pipeline, err := NewPipeline(cfg, idx, strings.NewReader("cat\n"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	dict, diagnostics, err := pipeline.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics: %+v", diagnostics)
	}
	if len(dict.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(dict.Entries))
	}
	entry := dict.Entries[0]
	if entry.Word != "cat" {
		t.Fatalf("word = %q, want %q", entry.Word, "cat")
	}
	if len(entry.Sequences) != 1 || entry.Sequences[0].String() != "KAT" {
		t.Fatalf("unexpected sequences: %+v", entry.Sequences)
	}
}

func TestGenerateRecordsDiagnosticForMissingIPA(t *testing.T) {
	cfg := mustConfig(t)
	idx := mustIndex(t, "cat,/kæt/\n")

	pipeline, err := NewPipeline(cfg, idx, strings.NewReader("cat\ndog\n"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	dict, diagnostics, err := pipeline.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(dict.Entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(dict.Entries))
	}
	if len(diagnostics) != 1 || diagnostics[0].Word != "dog" {
		t.Fatalf("expected one diagnostic for `dog`, got %+v", diagnostics)
	}
}

func TestGeneratePreservesWordOrder(t *testing.T) {
	cfg := mustConfig(t)
	idx := mustIndex(t, "cat,/kæt/\ntack,/tæk/\n")

	pipeline, err := NewPipeline(cfg, idx, strings.NewReader("tack\ncat\n"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	dict, _, err := pipeline.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(dict.Entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(dict.Entries))
	}
	if dict.Entries[0].Word != "tack" || dict.Entries[1].Word != "cat" {
		t.Fatalf("expected input order preserved, got %q then %q", dict.Entries[0].Word, dict.Entries[1].Word)
	}
}

func TestGenerateDeduplicatesAcrossPronunciations(t *testing.T) {
	cfg := mustConfig(t)
	idx := mustIndex(t, "cat,/kæt/,/kæt/\n")

	pipeline, err := NewPipeline(cfg, idx, strings.NewReader("cat\n"))
	if err != nil {
		t.Fatalf("NewPipeline: %v", err)
	}

	dict, _, err := pipeline.Generate(context.Background())
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(dict.Entries[0].Sequences) != 1 {
		t.Fatalf("expected duplicate pronunciations to collapse to 1 sequence, got %d", len(dict.Entries[0].Sequences))
	}
}

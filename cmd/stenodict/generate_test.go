package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestGenerateCommandWritesDictionary(t *testing.T) {
	dir := t.TempDir()

	ipaPath := filepath.Join(dir, "ipa.csv")
	if err := os.WriteFile(ipaPath, []byte("cat,/kæt/\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	wordsPath := filepath.Join(dir, "words.txt")
	if err := os.WriteFile(wordsPath, []byte("cat\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	outputPath := filepath.Join(dir, "out.json")

	cmd := newRootCommand()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetArgs([]string{
		"generate",
		"--ipa-notation", ipaPath,
		"--words", wordsPath,
		"--config", defaultConfigFixture(t, dir),
		"-o", outputPath,
	})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	raw, err := os.ReadFile(outputPath)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, raw)
	}
	if out["KAT"] != "cat" {
		t.Fatalf("expected KAT -> cat, got %+v", out)
	}
}

func TestGenerateCommandFailsOnMissingConfig(t *testing.T) {
	dir := t.TempDir()
	ipaPath := filepath.Join(dir, "ipa.csv")
	os.WriteFile(ipaPath, []byte("cat,/kæt/\n"), 0o644)
	wordsPath := filepath.Join(dir, "words.txt")
	os.WriteFile(wordsPath, []byte("cat\n"), 0o644)

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{
		"generate",
		"--ipa-notation", ipaPath,
		"--words", wordsPath,
		"--config", filepath.Join(dir, "missing.yaml"),
	})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for a missing config file")
	}
}

// defaultConfigFixture writes the repository's embedded default
// config to a temp file so generate's --config flag has something to
// load; generate always reads config from a path, never the embedded
// default directly.
func defaultConfigFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "config.yaml")
	contents, err := os.ReadFile(filepath.Join("..", "..", "pkg", "config", "default.yaml"))
	if err != nil {
		t.Fatalf("reading default.yaml fixture: %v", err)
	}
	if err := os.WriteFile(path, contents, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

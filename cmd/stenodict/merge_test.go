package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestMergeCommandFirstFileWins(t *testing.T) {
	base := t.TempDir()
	dictDir := filepath.Join(base, "dicts")
	if err := os.Mkdir(dictDir, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}

	if err := os.WriteFile(filepath.Join(dictDir, "1.json"), []byte(`{"KAT": "cat"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dictDir, "2.json"), []byte(`{"KAT": "kat", "TOG": "dog"}`), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(base); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"merge", "dicts", "-f"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(base, "dicts.json"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	var out map[string]string
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, raw)
	}
	if out["KAT"] != "cat" {
		t.Fatalf("expected the first file's value to win, got %+v", out)
	}
	if out["TOG"] != "dog" {
		t.Fatalf("expected the second file's unique key to survive, got %+v", out)
	}
}

func TestMergeCommandRequiresDirectory(t *testing.T) {
	dir := t.TempDir()
	notADir := filepath.Join(dir, "file.txt")
	os.WriteFile(notADir, []byte("x"), 0o644)

	cmd := newRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"merge", notADir})
	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error when the argument is not a directory")
	}
}

package ipaindex

import (
	"errors"
	"strings"
	"testing"

	"github.com/andrewhess/stenodict/pkg/errs"
)

func TestLoadReaderBasic(t *testing.T) {
	blob := "cat,/kæt/\ndog,/dɑɡ/\n"
	idx, err := LoadReader(strings.NewReader(blob))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	prons, ok := idx.Lookup("cat")
	if !ok || len(prons) != 1 || prons[0] != "kæt" {
		t.Fatalf("Lookup(cat) = %v, %v", prons, ok)
	}
}

func TestLoadReaderMultiplePronunciations(t *testing.T) {
	blob := "read,/ɹid/,/ɹɛd/\n"
	idx, err := LoadReader(strings.NewReader(blob))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	prons, ok := idx.Lookup("read")
	if !ok {
		t.Fatalf("expected an entry for read")
	}
	if len(prons) != 2 || prons[0] != "ɹid" || prons[1] != "ɹɛd" {
		t.Fatalf("unexpected pronunciations: %v", prons)
	}
}

func TestLoadReaderLookupIsCaseInsensitive(t *testing.T) {
	idx, err := LoadReader(strings.NewReader("Cat,/kæt/\n"))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if _, ok := idx.Lookup("cat"); !ok {
		t.Fatalf("expected case-insensitive lookup to find the entry")
	}
}

func TestLoadReaderSkipsBlankAndMalformedLines(t *testing.T) {
	blob := "\ncat,/kæt/\nmalformed line with no comma\nbad,\n"
	idx, err := LoadReader(strings.NewReader(blob))
	if err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if idx.Len() != 1 {
		t.Fatalf("expected exactly 1 valid entry, got %d", idx.Len())
	}
}

func TestLoadMissingFileIsFatal(t *testing.T) {
	_, err := Load("/no/such/file/stenodict-ipaindex-test.csv")
	if err == nil {
		t.Fatalf("expected an error for a missing file")
	}
	var e *errs.Error
	if !errors.As(err, &e) {
		t.Fatalf("expected an *errs.Error, got %T: %v", err, err)
	}
	if e.Kind != errs.IpaMissing {
		t.Fatalf("expected Kind IpaMissing, got %v", e.Kind)
	}
}

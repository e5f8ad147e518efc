// Package ipaindex loads the word-to-pronunciation lookup table the
// rest of the pipeline starts from: a line-oriented format where each
// line is a word, a comma, and one or more slash-delimited IPA
// pronunciations.
package ipaindex

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/andrewhess/stenodict/pkg/errs"
)

// Index is an in-memory word -> pronunciations lookup table, keyed on
// the lowercased word.
type Index struct {
	entries map[string][]string
}

// Load reads an Index from path. A missing file is fatal.
func Load(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.New(errs.IpaMissing, err)
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader reads an Index from an already-open reader, line by
// line, skipping blank lines and lines it cannot parse.
func LoadReader(r io.Reader) (*Index, error) {
	idx := &Index{entries: make(map[string][]string)}
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		word, prons, ok := parseLine(line)
		if !ok {
			continue
		}
		idx.entries[strings.ToLower(word)] = prons
	}
	if err := scanner.Err(); err != nil {
		return nil, errs.New(errs.IpaMissing, err)
	}
	return idx, nil
}

// parseLine splits a single line of the form
//
//	word,/ipa1/,/ipa2/
//
// into its key and pronunciations. Only the first comma separates the
// word from the rest of the line, so pronunciations themselves may
// contain commas. Each pronunciation is one of the odd-indexed tokens
// produced by splitting the remainder on '/' — i.e. the text strictly
// between a pair of slashes.
func parseLine(line string) (word string, prons []string, ok bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return "", nil, false
	}

	split := strings.SplitN(line, ",", 2)
	if len(split) != 2 {
		return "", nil, false
	}
	word = strings.TrimSpace(split[0])
	if word == "" {
		return "", nil, false
	}

	tokens := strings.Split(split[1], "/")
	for i := 1; i < len(tokens); i += 2 {
		pron := strings.TrimSpace(tokens[i])
		if pron != "" {
			prons = append(prons, pron)
		}
	}
	if len(prons) == 0 {
		return "", nil, false
	}
	return word, prons, true
}

// Lookup returns the pronunciations recorded for word, matched
// case-insensitively.
func (idx *Index) Lookup(word string) ([]string, bool) {
	prons, ok := idx.entries[strings.ToLower(word)]
	return prons, ok
}

// Words returns every word present in the index, in no particular
// order.
func (idx *Index) Words() []string {
	out := make([]string, 0, len(idx.entries))
	for w := range idx.entries {
		out = append(out, w)
	}
	return out
}

// Len reports how many words the index holds.
func (idx *Index) Len() int { return len(idx.entries) }

package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/andrewhess/stenodict/pkg/orchestrator"
)

// writeDictionary writes dict as a JSON object mapping each stroke
// sequence's printable form to the word it translates, one entry per
// line, preserving the word order (and within a word, the stroke
// order) Generate produced rather than the alphabetical order
// encoding/json's map marshaling would impose.
func writeDictionary(w io.Writer, dict *orchestrator.Dictionary) (numEntries, numStrokes int, err error) {
	bw := bufio.NewWriter(w)
	defer func() {
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
	}()

	if _, err = fmt.Fprint(bw, "{\n"); err != nil {
		return 0, 0, err
	}

	for i, entry := range dict.Entries {
		for k, seq := range entry.Sequences {
			key, err := json.Marshal(seq.String())
			if err != nil {
				return numEntries, numStrokes, err
			}
			value, err := json.Marshal(entry.Word)
			if err != nil {
				return numEntries, numStrokes, err
			}

			line := fmt.Sprintf("%s: %s", key, value)
			if i < len(dict.Entries)-1 || k < len(entry.Sequences)-1 {
				line += ","
			}
			if _, err := fmt.Fprintln(bw, line); err != nil {
				return numEntries, numStrokes, err
			}

			numEntries++
			numStrokes += seq.Len()
		}
	}

	_, err = fmt.Fprint(bw, "}")
	return numEntries, numStrokes, err
}

package main

import (
	"encoding/json"
	"fmt"
	"io"
)

// orderedPair is one key/value entry from a dictionary JSON file.
type orderedPair struct {
	Key, Value string
}

// decodeOrderedObject reads a flat JSON object of string keys to
// string values, preserving the order the keys appeared in the
// source — encoding/json's map decoding loses that order, but merging
// needs it to reproduce the "first file wins" priority rule exactly.
func decodeOrderedObject(r io.Reader) ([]orderedPair, error) {
	dec := json.NewDecoder(r)

	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	var pairs []orderedPair
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string key, got %v", keyTok)
		}

		valueTok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		value, ok := valueTok.(string)
		if !ok {
			return nil, fmt.Errorf("expected a string value for key %q, got %v", key, valueTok)
		}

		pairs = append(pairs, orderedPair{Key: key, Value: value})
	}

	return pairs, nil
}

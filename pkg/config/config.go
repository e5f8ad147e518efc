// Package config loads and validates the YAML rule configuration that
// parameterizes the syllabifier, stroke builder, and postprocessor
// phoneme-to-key tables, phonotactic admissibility data,
// and postprocessing rules.
package config

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/andrewhess/stenodict/pkg/errs"
	"github.com/andrewhess/stenodict/pkg/phoneme"
	"github.com/andrewhess/stenodict/pkg/steno"
	"gopkg.in/yaml.v3"
)

// Config is the immutable, validated configuration. Once built it is
// read-only for the remainder of the process.
type Config struct {
	raw document

	clusterIndex map[string][][]steno.Key

	vowelPhonemes     []string // descending length, for longest-match scanning
	consonantPhonemes []string // descending length

	consonantSet map[string]bool
}

// Load reads and validates a configuration file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errs.New(errs.ConfigInvalid, fmt.Errorf("opening config: %w", err))
	}
	defer f.Close()
	return LoadReader(f)
}

// LoadReader reads and validates a configuration document from r.
func LoadReader(r io.Reader) (*Config, error) {
	blob, err := io.ReadAll(r)
	if err != nil {
		return nil, errs.New(errs.ConfigInvalid, fmt.Errorf("reading config: %w", err))
	}
	return LoadBlob(blob)
}

// LoadBlob parses and validates a configuration document already held
// in memory.
func LoadBlob(blob []byte) (*Config, error) {
	dec := yaml.NewDecoder(strings.NewReader(string(blob)))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, errs.New(errs.ConfigInvalid, fmt.Errorf("parsing config: %w", err))
	}

	var sections map[string]any
	if err := yaml.Unmarshal(blob, &sections); err != nil {
		return nil, errs.New(errs.ConfigInvalid, fmt.Errorf("parsing config: %w", err))
	}
	for _, name := range []string{"vowels", "consonants", "phonology", "postprocessing"} {
		if _, ok := sections[name]; !ok {
			return nil, errs.New(errs.ConfigInvalid, fmt.Errorf("config is missing the %q section", name))
		}
	}

	c := &Config{raw: doc}
	if err := c.build(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) build() error {
	c.consonantSet = make(map[string]bool, len(c.raw.Consonants))
	for phon := range c.raw.Consonants {
		c.consonantSet[phon] = true
	}

	for _, phon := range c.raw.Phonology.AllowedFirstConsonants {
		if !c.consonantSet[phon] {
			return errs.New(errs.ConfigInvalid, fmt.Errorf(
				"phonology.allowed_first_consonants references unknown phoneme %q", phon))
		}
	}
	for head, nexts := range c.raw.Phonology.AllowedAfter {
		if !c.consonantSet[head] {
			return errs.New(errs.ConfigInvalid, fmt.Errorf(
				"phonology.allowed_after references unknown phoneme %q", head))
		}
		for _, next := range nexts {
			if next == "*" {
				continue
			}
			if !c.consonantSet[next] {
				return errs.New(errs.ConfigInvalid, fmt.Errorf(
					"phonology.allowed_after[%q] references unknown phoneme %q", head, next))
			}
		}
	}

	c.clusterIndex = make(map[string][][]steno.Key)

	for phon, vowel := range c.raw.Vowels {
		if !vowel.Mapped {
			continue
		}
		clusters, err := parseCandidates(vowel.Clusters, ParseNucleusCluster)
		if err != nil {
			return errs.New(errs.ConfigInvalid, fmt.Errorf("vowels[%q]: %w", phon, err))
		}
		c.clusterIndex[atomKey1(phon, phoneme.Nucleus)] = clusters
		c.vowelPhonemes = append(c.vowelPhonemes, phon)
	}

	for phon, cons := range c.raw.Consonants {
		c.consonantPhonemes = append(c.consonantPhonemes, phon)

		if cons.Left.Mapped {
			clusters, err := parseCandidates(cons.Left.Clusters, ParseLeftCluster)
			if err != nil {
				return errs.New(errs.ConfigInvalid, fmt.Errorf("consonants[%q].left: %w", phon, err))
			}
			c.clusterIndex[atomKey1(phon, phoneme.Onset)] = clusters
		}
		if cons.Right.Mapped {
			clusters, err := parseCandidates(cons.Right.Clusters, ParseRightCluster)
			if err != nil {
				return errs.New(errs.ConfigInvalid, fmt.Errorf("consonants[%q].right: %w", phon, err))
			}
			c.clusterIndex[atomKey1(phon, phoneme.Coda)] = clusters
		}
	}

	sort.Slice(c.vowelPhonemes, func(i, j int) bool { return len(c.vowelPhonemes[i]) > len(c.vowelPhonemes[j]) })
	sort.Slice(c.consonantPhonemes, func(i, j int) bool {
		return len(c.consonantPhonemes[i]) > len(c.consonantPhonemes[j])
	})

	if err := c.validatePostprocessing(); err != nil {
		return err
	}

	return nil
}

func parseCandidates(clusters []string, parse func(string) ([]steno.Key, error)) ([][]steno.Key, error) {
	out := make([][]steno.Key, 0, len(clusters))
	for _, cl := range clusters {
		keys, err := parse(cl)
		if err != nil {
			return nil, err
		}
		// Every candidate cluster must itself be a valid (order-checked)
		// partial stroke.
		if _, err := steno.NewStroke(keys...); err != nil {
			return nil, fmt.Errorf("cluster %q is not a valid stroke: %w", cl, err)
		}
		out = append(out, keys)
	}
	return out, nil
}

func (c *Config) validatePostprocessing() error {
	for _, rule := range c.raw.Postprocessing.FoldRules {
		if rule.FoldInto != NextStroke && rule.FoldInto != PreviousStroke {
			return errs.New(errs.ConfigInvalid, fmt.Errorf(
				"fold rule fold_into must be %q or %q, got %q", NextStroke, PreviousStroke, rule.FoldInto))
		}
		for _, m := range rule.Match {
			if _, err := steno.ParseStroke(m); err != nil {
				return errs.New(errs.ConfigInvalid, fmt.Errorf("fold rule match %q: %w", m, err))
			}
		}
		if _, err := parseKeyCluster(strings.ReplaceAll(strings.Join(rule.Keys, ""), "-", ""), rightSide); err != nil {
			return errs.New(errs.ConfigInvalid, fmt.Errorf("fold rule keys %v: %w", rule.Keys, err))
		}
	}
	for _, rule := range c.raw.Postprocessing.VowelDropRules {
		switch rule.Position {
		case PositionSingle, PositionFirst, PositionMiddle, PositionLast, PositionMiddleOrLast, PositionAnyMultiStroke:
		default:
			return errs.New(errs.ConfigInvalid, fmt.Errorf("vowel drop rule has unknown position %q", rule.Position))
		}
	}
	if c.raw.Postprocessing.Disambiguator.Enabled {
		if _, err := steno.ParseStroke(c.raw.Postprocessing.Disambiguator.Stroke); err != nil {
			return errs.New(errs.ConfigInvalid, fmt.Errorf(
				"disambiguator stroke %q: %w", c.raw.Postprocessing.Disambiguator.Stroke, err))
		}
	}
	return nil
}

func atomKey1(phon string, region phoneme.Region) string {
	return AtomKey([]phoneme.Atom{{Phoneme: phon, Region: region}})
}

// AtomKey builds the canonical lookup key for a contiguous run of
// atoms, used both to populate and to query the cluster index. Atoms
// may span region boundaries (confirmed by
// original_source's test_map_atoms_with_overlap).
func AtomKey(atoms []phoneme.Atom) string {
	var sb strings.Builder
	for i, a := range atoms {
		if i > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(a.Phoneme)
		sb.WriteByte('#')
		sb.WriteString(a.Region.String())
	}
	return sb.String()
}

// Lookup returns the candidate key clusters for a contiguous run of
// atoms, and whether any mapping exists at all.
func (c *Config) Lookup(atoms []phoneme.Atom) ([][]steno.Key, bool) {
	clusters, ok := c.clusterIndex[AtomKey(atoms)]
	return clusters, ok
}

// VowelPhonemes returns configured vowel phonemes sorted by
// descending string length, for the syllabifier's longest-match scan.
func (c *Config) VowelPhonemes() []string { return c.vowelPhonemes }

// ConsonantPhonemes returns configured consonant phonemes sorted by
// descending string length.
func (c *Config) ConsonantPhonemes() []string { return c.consonantPhonemes }

// IsConsonant reports whether phon is a configured consonant phoneme.
func (c *Config) IsConsonant(phon string) bool { return c.consonantSet[phon] }

// AllowedAsFirstConsonant reports whether phon may sit immediately
// before a syllable's nucleus.
func (c *Config) AllowedAsFirstConsonant(phon string) bool {
	for _, p := range c.raw.Phonology.AllowedFirstConsonants {
		if p == phon {
			return true
		}
	}
	return false
}

// AllowedBefore reports whether phon may be prepended to an onset
// whose current head is head (the admissibility predicate,
// second branch). "*" in the configured allow-list admits any
// consonant.
func (c *Config) AllowedBefore(head, phon string) bool {
	nexts, ok := c.raw.Phonology.AllowedAfter[head]
	if !ok {
		return false
	}
	for _, n := range nexts {
		if n == "*" || n == phon {
			return true
		}
	}
	return false
}

// Postprocessing exposes the postprocessing rule configuration.
func (c *Config) Postprocessing() Postprocessing { return c.raw.Postprocessing }

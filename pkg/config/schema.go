package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// noStenoMapping is the reserved YAML sentinel marking a phoneme with
// no steno realization at all. It is never stored in the
// value position as a string; ClusterList.UnmarshalYAML resolves it
// into the Mapped=false variant immediately on load, so "no mapping"
// is a distinguished variant rather than a string value.
const noStenoMapping = "NO_STENO_MAPPING"

// ClusterList is a phoneme's candidate key clusters, or the explicit
// absence of any steno realization.
type ClusterList struct {
	Mapped   bool
	Clusters []string
}

func (c *ClusterList) UnmarshalYAML(value *yaml.Node) error {
	var scalar string
	if err := value.Decode(&scalar); err == nil {
		if scalar != noStenoMapping {
			return fmt.Errorf("scalar cluster value must be %q, got %q", noStenoMapping, scalar)
		}
		c.Mapped = false
		c.Clusters = nil
		return nil
	}

	var list []string
	if err := value.Decode(&list); err != nil {
		return fmt.Errorf("cluster value must be %q or a list of strings: %w", noStenoMapping, err)
	}
	c.Mapped = true
	c.Clusters = list
	return nil
}

// ConsonantMapping gives a consonant phoneme's candidate clusters on
// each side of the vowel.
type ConsonantMapping struct {
	Left  ClusterList `yaml:"left"`
	Right ClusterList `yaml:"right"`
}

// Phonology is the onset-admissibility table.
type Phonology struct {
	AllowedFirstConsonants []string            `yaml:"allowed_first_consonants"`
	AllowedAfter           map[string][]string `yaml:"allowed_after"`
}

// FoldRule folds a whole matched stroke into an adjacent one.
type FoldRule struct {
	Match                []string `yaml:"match"`
	FoldInto             string   `yaml:"fold_into"`
	Keys                 []string `yaml:"keys"`
	KeepOriginalSequence bool     `yaml:"keep_original_sequence"`
}

// Reserved FoldInto sentinels.
const (
	NextStroke     = "NEXT_STROKE"
	PreviousStroke = "PREVIOUS_STROKE"
)

// VowelDropRule clears a stroke's vowels when its left/right consonant
// regions and vowel cluster match a pattern.
type VowelDropRule struct {
	Position             string   `yaml:"position"`
	Left                 string   `yaml:"left"`
	Right                string   `yaml:"right"`
	Vowels               []string `yaml:"vowels"`
	KeepOriginalSequence bool     `yaml:"keep_original_sequence"`
}

// Reserved constraint sentinels for VowelDropRule.Left / .Right.
const (
	AnySetOfKeys         = "ANY_SET_OF_KEYS"
	AnyNonEmptySetOfKeys = "ANY_NON_EMPTY_SET_OF_KEYS"
)

// Valid VowelDropRule.Position values.
const (
	PositionSingle         = "single"
	PositionFirst          = "first"
	PositionMiddle         = "middle"
	PositionLast           = "last"
	PositionMiddleOrLast   = "middle_or_last"
	PositionAnyMultiStroke = "any_multi_stroke"
)

// Disambiguator configures homophone disambiguation.
type Disambiguator struct {
	Enabled bool   `yaml:"enabled"`
	Stroke  string `yaml:"stroke"`
}

// Postprocessing bundles every postprocessing toggle and rule set.
type Postprocessing struct {
	DisallowFForFinalS bool            `yaml:"disallow_f_for_final_s"`
	FoldRules          []FoldRule      `yaml:"fold_rules"`
	VowelDropRules     []VowelDropRule `yaml:"vowel_drop_rules"`
	Disambiguator      Disambiguator   `yaml:"disambiguator"`
}

// document is the raw shape of the YAML configuration file, decoded
// before validation and index-building.
type document struct {
	Vowels         map[string]ClusterList      `yaml:"vowels"`
	Consonants     map[string]ConsonantMapping `yaml:"consonants"`
	Phonology      Phonology                   `yaml:"phonology"`
	Postprocessing Postprocessing              `yaml:"postprocessing"`
}

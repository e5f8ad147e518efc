package config

import _ "embed"

//go:embed default.yaml
var defaultYAML []byte

// LoadDefault loads the configuration shipped with this repository,
// equivalent to original_source's embedded Python phoneme tables
// (generator/config.py) but expressed as data.
func LoadDefault() (*Config, error) {
	return LoadBlob(defaultYAML)
}

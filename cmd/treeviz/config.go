package main

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// settings are the tunables shared by the subcommands. Precedence is
// command line flags over TREEVIZ_* environment variables over the YAML
// file over built-in defaults.
type settings struct {
	Kind   string `koanf:"kind"`
	Degree int    `koanf:"degree"`
	Count  int    `koanf:"count"`
	Seed   uint64 `koanf:"seed"`
	Log    string `koanf:"log"`
}

const envPrefix = "TREEVIZ_"

func loadSettings(path string) (settings, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"kind":   "bst",
		"degree": 3,
		"count":  1000,
		"seed":   1,
		"log":    "info",
	}
	if err := k.Load(confmap.Provider(defaults, "."), nil); err != nil {
		return settings{}, errors.Wrap(err, "defaults")
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return settings{}, errors.Wrapf(err, "config file %s", path)
		}
	}

	if err := k.Load(env.ProviderWithValue(envPrefix, ".", func(key, val string) (string, any) {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix)), val
	}), nil); err != nil {
		return settings{}, errors.Wrap(err, "environment")
	}

	var s settings
	if err := k.Unmarshal("", &s); err != nil {
		return settings{}, errors.Wrap(err, "unmarshal settings")
	}
	return s, nil
}

// applyFlags lays the flags the user actually set over s.
func (s *settings) applyFlags() {
	if kindFlag != "" {
		s.Kind = kindFlag
	}
	if degreeFlag != 0 {
		s.Degree = degreeFlag
	}
	if countFlag != 0 {
		s.Count = countFlag
	}
	if seedFlag != 0 {
		s.Seed = seedFlag
	}
}

func (s *settings) validate() error {
	if s.Degree < 2 {
		return errors.Newf("degree must be at least 2, got %d", s.Degree)
	}
	if s.Count < 1 {
		return errors.Newf("count must be positive, got %d", s.Count)
	}
	return nil
}

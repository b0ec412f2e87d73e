// Package config reads the YAML configuration of a Jiffle runtime session:
// seed of the random functions, debug logging and constants bound before
// the script runs.
package config

import (
	"encoding/binary"
	"fmt"
	"os"
	"regexp"
	"sort"

	"github.com/lunfardo314/easyfl"
	"go.uber.org/multierr"
	"golang.org/x/crypto/blake2b"
	"gopkg.in/yaml.v3"
)

// Config is the configuration of one evaluation session
type Config struct {
	// RandomSeed makes random functions deterministic
	RandomSeed *int64 `yaml:"random_seed,omitempty"`
	// SeedPhrase is an alternative to RandomSeed. The seed is derived from its blake2b hash
	SeedPhrase string `yaml:"seed_phrase,omitempty"`
	Debug      bool   `yaml:"debug"`
	// Constants are bound with '=' before the script runs
	Constants map[string]float64 `yaml:"constants,omitempty"`
}

var identifierRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Default returns configuration with clock-seeded random functions and no constants
func Default() *Config {
	return &Config{}
}

// Parse unmarshals YAML and validates the result
func Parse(data []byte) (*Config, error) {
	ret := Default()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}

// MustParse is Parse which panics on error
func MustParse(data []byte) *Config {
	ret, err := Parse(data)
	easyfl.AssertNoError(err)
	return ret
}

// Load parses configuration from the YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return Parse(data)
}

// Validate reports all problems of the configuration at once
func (c *Config) Validate() error {
	var err error
	if c.RandomSeed != nil && c.SeedPhrase != "" {
		err = multierr.Append(err, fmt.Errorf("config: 'random_seed' and 'seed_phrase' are mutually exclusive"))
	}
	for _, id := range c.ConstantNames() {
		if !identifierRegexp.MatchString(id) {
			err = multierr.Append(err, fmt.Errorf("config: wrong constant name '%s'", id))
		}
	}
	return err
}

// Seed returns seed of the random source. False means no seed is configured
func (c *Config) Seed() (int64, bool) {
	if c.RandomSeed != nil {
		return *c.RandomSeed, true
	}
	if c.SeedPhrase != "" {
		h := blake2b.Sum256([]byte(c.SeedPhrase))
		return int64(binary.BigEndian.Uint64(h[:8])), true
	}
	return 0, false
}

// ConstantNames returns names of configured constants in sorted order
func (c *Config) ConstantNames() []string {
	ret := make([]string, 0, len(c.Constants))
	for id := range c.Constants {
		ret = append(ret, id)
	}
	sort.Strings(ret)
	return ret
}

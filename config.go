package gridtable

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Environment variables read by [Config.WithEnv].
const (
	EnvColumns = "GRIDTABLE_COLUMNS"
	EnvWrap    = "GRIDTABLE_WRAP"
)

// Config holds the writer settings consumed by the layout engine.
type Config struct {
	Columns int        `yaml:"columns"`
	Wrap    WrapPolicy `yaml:"wrap"`
}

// DefaultConfig returns a config for a 72-column page with automatic
// wrapping.
func DefaultConfig() Config {
	return Config{Columns: DefaultPageWidth, Wrap: WrapAuto}
}

// LoadConfig decodes a YAML config from r over the defaults. Unknown keys are
// rejected. An empty document yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// WithEnv returns c with overrides from the environment looked up through
// getenv. Unset or unparsable values leave the setting unchanged.
func (c Config) WithEnv(getenv func(string) string) Config {
	if v := getenv(EnvColumns); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			c.Columns = n
		}
	}
	if v := getenv(EnvWrap); v != "" {
		if p, err := ParseWrapPolicy(v); err == nil {
			c.Wrap = p
		}
	}
	return c
}

// Validate reports whether c can drive a layout.
func (c Config) Validate() error {
	if c.Columns < 0 {
		return fmt.Errorf("%w: columns must not be negative, got %d", ErrInvalidConfig, c.Columns)
	}
	if _, err := ParseWrapPolicy(string(c.Wrap)); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, err)
	}
	return nil
}

// UnmarshalYAML parses a wrap policy name.
func (p *WrapPolicy) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseWrapPolicy(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

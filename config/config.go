// Package config loads tr701 settings from TOML or YAML files.
//
// A configuration file can respell keywords and set logging options:
//
//	[keywords]
//	int = "tamsayı"
//	while = "döngü"
//
//	[log]
//	verbosity = 1
//	file = "/tmp/tr701.log"
//
// Keyword names are the ones printed by `tr701 keywords`. Keywords that are
// not mentioned keep their default spelling.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/dhamidi/tr701/lang/parser"
)

// EnvVar names the environment variable holding a config file path.
const EnvVar = "TR701_CONFIG"

// Format is the syntax of a configuration file.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return "unknown"
}

// Config holds the complete tr701 configuration.
type Config struct {
	Keywords map[string]string `toml:"keywords" yaml:"keywords"`
	Log      LogConfig         `toml:"log" yaml:"log"`

	path string
}

// LogConfig controls the commonlog backend.
type LogConfig struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	File      string `toml:"file" yaml:"file"`
}

// Default returns a configuration with the built-in keyword table.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads the file at path. The format follows the file extension;
// anything other than .yaml or .yml is read as TOML.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg, err := LoadFromString(string(data), detectFormat(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

// LoadFromEnv loads the file named by TR701_CONFIG, or the first of
// ./tr701.toml, ./tr701.yaml and ~/.config/tr701/config.toml that exists.
// Without any file it returns Default().
func LoadFromEnv() (*Config, error) {
	if path := os.Getenv(EnvVar); path != "" {
		return Load(path)
	}
	candidates := []string{"tr701.toml", "tr701.yaml"}
	if home, err := os.UserHomeDir(); err == nil {
		candidates = append(candidates, filepath.Join(home, ".config", "tr701", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// LoadFromString parses content in the given format.
func LoadFromString(content string, format Format) (*Config, error) {
	var cfg Config
	switch format {
	case FormatTOML:
		md, err := toml.Decode(content, &cfg)
		if err != nil {
			return nil, fmt.Errorf("parse toml: %w", err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FormatYAML:
		dec := yaml.NewDecoder(strings.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse yaml: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format: %s", format)
	}
	cfg.applyDefaults()
	return &cfg, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	}
	return FormatTOML
}

func (c *Config) applyDefaults() {
	defaults := parser.DefaultKeywords()
	if c.Keywords == nil {
		c.Keywords = make(map[string]string)
	}
	for _, kind := range parser.KeywordKinds() {
		if _, ok := c.Keywords[kind.String()]; !ok {
			word, _ := defaults.Spelling(kind)
			c.Keywords[kind.String()] = word
		}
	}
	if c.Log.Verbosity < 0 {
		c.Log.Verbosity = 0
	}
}

// Path returns the file the configuration was loaded from, if any.
func (c *Config) Path() string {
	return c.path
}

// KeywordTable validates the keyword section and builds the lexer table.
func (c *Config) KeywordTable() (*parser.Keywords, error) {
	spellings := make(map[parser.TokenKind]string, len(c.Keywords))
	names := make([]string, 0, len(c.Keywords))
	for name := range c.Keywords {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		kind, ok := parser.KeywordKindByName(name)
		if !ok {
			return nil, fmt.Errorf("config: unknown keyword %q", name)
		}
		spellings[kind] = c.Keywords[name]
	}
	kw, err := parser.NewKeywords(spellings)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return kw, nil
}

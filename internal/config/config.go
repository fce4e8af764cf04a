package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Defaults applied when the config file leaves a value unset.
const (
	DefaultThreshold      = 0.2
	DefaultLimit          = 10
	DefaultMaxSuggestions = 5
)

// Config is the in-memory representation of ~/.navsearch/navsearch.yaml.
type Config struct {
	CatalogPath    string   `yaml:"catalog_path"`
	PagesDir       string   `yaml:"pages_dir,omitempty"`
	IndexDir       string   `yaml:"index_dir,omitempty"`
	Threshold      float64  `yaml:"threshold,omitempty"`
	Limit          int      `yaml:"limit,omitempty"`
	MaxSuggestions int      `yaml:"max_suggestions,omitempty"`
	Excludes       []string `yaml:"excludes,omitempty"`
}

// NavsearchDir returns the absolute path to ~/.navsearch/.
func NavsearchDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".navsearch"), nil
}

// ConfigPath returns the absolute path to ~/.navsearch/navsearch.yaml.
func ConfigPath() (string, error) {
	dir, err := NavsearchDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "navsearch.yaml"), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if !strings.HasPrefix(p, "~") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand ~: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// DefaultConfig returns the default Config written on first navsearch init.
func DefaultConfig() (*Config, error) {
	dir, err := NavsearchDir()
	if err != nil {
		return nil, err
	}
	return &Config{
		CatalogPath:    filepath.Join(dir, "catalog.yaml"),
		PagesDir:       filepath.Join(dir, "pages"),
		IndexDir:       filepath.Join(dir, "index"),
		Threshold:      DefaultThreshold,
		Limit:          DefaultLimit,
		MaxSuggestions: DefaultMaxSuggestions,
		Excludes: []string{
			"draft-*",
			"*.tmp",
			"_*",
		},
	}, nil
}

// Load reads and parses ~/.navsearch/navsearch.yaml, then applies environment
// and dotenv overrides.
func Load() (*Config, error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("invalid YAML in %s: %w", path, err)
	}
	if err := ApplyOverrides(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.resolve(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save marshals cfg and writes it to ~/.navsearch/navsearch.yaml.
func Save(cfg *Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("cannot marshal config: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config dir: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config %s: %w", path, err)
	}
	return nil
}

// Override keys, resolved from the environment then ~/.navsearch/.env.
const (
	EnvCatalog        = "NAVSEARCH_CATALOG"
	EnvThreshold      = "NAVSEARCH_THRESHOLD"
	EnvLimit          = "NAVSEARCH_LIMIT"
	EnvMaxSuggestions = "NAVSEARCH_MAX_SUGGESTIONS"
)

var overrideKeys = []string{EnvCatalog, EnvThreshold, EnvLimit, EnvMaxSuggestions}

// ApplyOverrides sets fields from NAVSEARCH_* values. Malformed numbers are errors.
func ApplyOverrides(cfg *Config) error {
	l, err := NewLookup()
	if err != nil {
		return err
	}

	if v := l.Get(EnvCatalog); v != "" {
		cfg.CatalogPath = v
	}
	if v := l.Get(EnvThreshold); v != "" {
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || f < 0 || f > 1 {
			return fmt.Errorf("invalid %s %q: want a number in [0,1]", EnvThreshold, v)
		}
		cfg.Threshold = f
	}
	ints := []struct {
		key string
		dst *int
	}{
		{EnvLimit, &cfg.Limit},
		{EnvMaxSuggestions, &cfg.MaxSuggestions},
	}
	for _, o := range ints {
		v := l.Get(o.key)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || n < 0 {
			return fmt.Errorf("invalid %s %q: want a non-negative integer", o.key, v)
		}
		*o.dst = n
	}
	return nil
}

// resolve expands ~ in paths and fills unset values with defaults.
func (c *Config) resolve() error {
	var err error
	for _, p := range []*string{&c.CatalogPath, &c.PagesDir, &c.IndexDir} {
		if *p, err = ExpandPath(*p); err != nil {
			return err
		}
	}
	if c.IndexDir == "" {
		dir, err := NavsearchDir()
		if err != nil {
			return err
		}
		c.IndexDir = filepath.Join(dir, "index")
	}
	if c.Threshold <= 0 || c.Threshold > 1 {
		c.Threshold = DefaultThreshold
	}
	if c.Limit == 0 {
		c.Limit = DefaultLimit
	}
	if c.MaxSuggestions == 0 {
		c.MaxSuggestions = DefaultMaxSuggestions
	}
	return nil
}

package config

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DotEnvPath returns the absolute path to the dotenv file (~/.navsearch/.env).
func DotEnvPath() (string, error) {
	dir, err := NavsearchDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, ".env"), nil
}

// LoadDotEnv reads ~/.navsearch/.env and returns key/value pairs.
// A missing file yields an empty map.
func LoadDotEnv() (map[string]string, error) {
	p, err := DotEnvPath()
	if err != nil {
		return nil, err
	}

	f, err := os.Open(p)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, fmt.Errorf("cannot open dotenv file %s: %w", p, err)
	}
	defer f.Close()

	out, err := parseDotEnv(f)
	if err != nil {
		return nil, fmt.Errorf("cannot read dotenv file %s: %w", p, err)
	}
	return out, nil
}

// parseDotEnv parses KEY=VALUE lines.
//
// Parsing rules:
// - Lines starting with '#' and empty lines are ignored.
// - An optional "export " prefix is dropped.
// - Whitespace around KEY is trimmed.
// - VALUE is taken as-is unless wrapped in matching single or double quotes,
//   which are removed.
func parseDotEnv(r io.Reader) (map[string]string, error) {
	out := make(map[string]string)
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		line = strings.TrimPrefix(line, "export ")
		k, v, ok := strings.Cut(line, "=")
		k = strings.TrimSpace(k)
		if !ok || k == "" {
			continue
		}
		if len(v) >= 2 && (v[0] == '"' || v[0] == '\'') && v[len(v)-1] == v[0] {
			v = v[1 : len(v)-1]
		}
		out[k] = v
	}
	return out, scanner.Err()
}

// Lookup resolves configuration keys from the process environment first and
// falls back to a dotenv snapshot taken when the Lookup was created.
type Lookup struct {
	dotenv map[string]string
}

// NewLookup loads ~/.navsearch/.env once for repeated key lookups.
func NewLookup() (*Lookup, error) {
	dotenv, err := LoadDotEnv()
	if err != nil {
		return nil, err
	}
	return &Lookup{dotenv: dotenv}, nil
}

// Get returns the effective value for key, or "" when unset.
func (l *Lookup) Get(key string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return l.dotenv[key]
}

// GetConfigValue returns the effective value for key, using process environment variables
// first and falling back to ~/.navsearch/.env.
func GetConfigValue(key string) (string, error) {
	l, err := NewLookup()
	if err != nil {
		return "", err
	}
	return l.Get(key), nil
}

// EnsureDotEnvTemplate creates ~/.navsearch/.env if it does not already exist.
// The template lists the override keys with empty values.
func EnsureDotEnvTemplate() error {
	p, err := DotEnvPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", filepath.Dir(p), err)
	}

	if _, err := os.Stat(p); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("cannot stat dotenv file %s: %w", p, err)
	}

	var b strings.Builder
	b.WriteString("# Overrides for navsearch.yaml; the process environment wins.\n")
	for _, k := range overrideKeys {
		b.WriteString(k + "=\n")
	}
	if err := os.WriteFile(p, []byte(b.String()), 0o600); err != nil {
		return fmt.Errorf("cannot write dotenv template %s: %w", p, err)
	}
	return nil
}

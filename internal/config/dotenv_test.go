package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// withHome points HOME at a fresh temp dir and returns ~/.navsearch inside it.
func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return filepath.Join(home, ".navsearch")
}

func writeDotEnv(t *testing.T, dir, body string) string {
	t.Helper()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, ".env")
	if err := os.WriteFile(p, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return p
}

func TestLoadDotEnv_NotExist(t *testing.T) {
	withHome(t)

	m, err := LoadDotEnv()
	if err != nil {
		t.Fatalf("LoadDotEnv: %v", err)
	}
	if len(m) != 0 {
		t.Fatalf("expected empty map, got %v", m)
	}
}

func TestParseDotEnv(t *testing.T) {
	body := "# comment\nA=1\nB=two\nexport C=three\nD=\"quoted value\"\nE='single'\nF=a=b\n=novalue\nbroken\n"
	m, err := parseDotEnv(strings.NewReader(body))
	if err != nil {
		t.Fatalf("parseDotEnv: %v", err)
	}
	want := map[string]string{"A": "1", "B": "two", "C": "three", "D": "quoted value", "E": "single", "F": "a=b"}
	if len(m) != len(want) {
		t.Fatalf("unexpected map: %v", m)
	}
	for k, v := range want {
		if m[k] != v {
			t.Errorf("%s = %q, want %q", k, m[k], v)
		}
	}
}

func TestGetConfigValue_EnvOverridesDotEnv(t *testing.T) {
	dir := withHome(t)
	writeDotEnv(t, dir, "K=fromdotenv\nONLY=dotenv\n")
	t.Setenv("K", "fromenv")

	v, err := GetConfigValue("K")
	if err != nil {
		t.Fatalf("GetConfigValue: %v", err)
	}
	if v != "fromenv" {
		t.Fatalf("expected env override, got %q", v)
	}
	if v, _ := GetConfigValue("ONLY"); v != "dotenv" {
		t.Fatalf("expected dotenv fallback, got %q", v)
	}
}

func TestEnsureDotEnvTemplate_DoesNotOverwrite(t *testing.T) {
	dir := withHome(t)
	p := writeDotEnv(t, dir, "NAVSEARCH_THRESHOLD=0.4\n")

	if err := EnsureDotEnvTemplate(); err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != "NAVSEARCH_THRESHOLD=0.4\n" {
		t.Fatalf("template overwrote existing file: %q", string(b))
	}
}

func TestEnsureDotEnvTemplate_CreatesWhenMissing(t *testing.T) {
	dir := withHome(t)

	if err := EnsureDotEnvTemplate(); err != nil {
		t.Fatalf("EnsureDotEnvTemplate: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, ".env"))
	if err != nil {
		t.Fatal(err)
	}
	for _, k := range overrideKeys {
		if !strings.Contains(string(b), k+"=") {
			t.Fatalf("template missing %s: %q", k, string(b))
		}
	}
}

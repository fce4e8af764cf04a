package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoad_DefaultConfig(t *testing.T) {
	dir := withHome(t)

	cfg, err := DefaultConfig()
	if err != nil {
		t.Fatalf("DefaultConfig: %v", err)
	}
	if err := Save(cfg); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got.CatalogPath != filepath.Join(dir, "catalog.yaml") {
		t.Fatalf("unexpected catalog path: %q", got.CatalogPath)
	}
	if got.Threshold != DefaultThreshold || got.Limit != DefaultLimit || got.MaxSuggestions != DefaultMaxSuggestions {
		t.Fatalf("unexpected defaults: %+v", got)
	}
}

func TestLoad_ExpandsHomeAndFillsDefaults(t *testing.T) {
	dir := withHome(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	body := "catalog_path: ~/portal/catalog.json\npages_dir: ~/portal/pages\n"
	if err := os.WriteFile(filepath.Join(dir, "navsearch.yaml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	home := filepath.Dir(dir)
	if cfg.CatalogPath != filepath.Join(home, "portal", "catalog.json") {
		t.Fatalf("catalog path not expanded: %q", cfg.CatalogPath)
	}
	if cfg.IndexDir != filepath.Join(dir, "index") {
		t.Fatalf("unexpected index dir: %q", cfg.IndexDir)
	}
	if cfg.Limit != DefaultLimit {
		t.Fatalf("limit default not applied: %d", cfg.Limit)
	}
}

func TestLoad_Overrides(t *testing.T) {
	dir := withHome(t)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "navsearch.yaml"), []byte("catalog_path: /srv/catalog.yaml\nthreshold: 0.3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	writeDotEnv(t, dir, "NAVSEARCH_THRESHOLD=0.5\nNAVSEARCH_LIMIT=3\n")
	t.Setenv("NAVSEARCH_THRESHOLD", "0.6")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Threshold != 0.6 {
		t.Fatalf("env should win over dotenv, got %v", cfg.Threshold)
	}
	if cfg.Limit != 3 {
		t.Fatalf("dotenv limit not applied: %d", cfg.Limit)
	}

	t.Setenv("NAVSEARCH_MAX_SUGGESTIONS", "lots")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error for malformed override")
	}
}

func TestLoad_Missing(t *testing.T) {
	withHome(t)
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when config file is missing")
	}
}

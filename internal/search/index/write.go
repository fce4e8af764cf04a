package index

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Write writes index artifacts to dir.
func Write(dir string, manifest Manifest, entries []ItemEntry) error {
	if manifest.ItemCount != len(entries) {
		return fmt.Errorf("item count mismatch: manifest %d, entries %d", manifest.ItemCount, len(entries))
	}
	if manifest.ItemsFile == "" {
		manifest.ItemsFile = defaultItemsFile
	}
	if manifest.IndexVersion == 0 {
		manifest.IndexVersion = currentVersion
	}
	if manifest.CreatedAt == "" {
		manifest.CreatedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create index dir %s: %w", dir, err)
	}

	// manifest
	mb, err := json.MarshalIndent(manifest, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(dir, manifestFile), mb, 0o644); err != nil {
		return fmt.Errorf("cannot write manifest: %w", err)
	}

	// items jsonl
	f, err := os.Create(filepath.Join(dir, manifest.ItemsFile))
	if err != nil {
		return fmt.Errorf("cannot create items file: %w", err)
	}
	bw := bufio.NewWriter(f)
	enc := json.NewEncoder(bw)
	for _, e := range entries {
		if err := enc.Encode(e); err != nil {
			_ = f.Close()
			return fmt.Errorf("cannot write item %s: %w", e.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

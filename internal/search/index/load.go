package index

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads an index from dir containing a manifest and an items file.
func Load(dir string) (*Index, error) {
	manifestPath := filepath.Join(dir, manifestFile)
	b, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("cannot read manifest %s: %w", manifestPath, err)
	}
	var m Manifest
	if err := json.Unmarshal(b, &m); err != nil {
		return nil, fmt.Errorf("invalid manifest JSON %s: %w", manifestPath, err)
	}
	if m.IndexVersion != currentVersion {
		return nil, fmt.Errorf("unsupported index version %d in %s", m.IndexVersion, manifestPath)
	}
	if m.ItemsFile == "" {
		m.ItemsFile = defaultItemsFile
	}

	entries, err := loadEntries(filepath.Join(dir, m.ItemsFile))
	if err != nil {
		return nil, err
	}
	if len(entries) != m.ItemCount {
		return nil, fmt.Errorf("%w: manifest lists %d items, found %d", ErrIndexCorrupt, m.ItemCount, len(entries))
	}

	return &Index{Manifest: m, Entries: entries}, nil
}

func loadEntries(path string) ([]ItemEntry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open items file %s: %w", path, err)
	}
	defer f.Close()

	out := []ItemEntry{}
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var e ItemEntry
		if err := json.Unmarshal(line, &e); err != nil {
			return nil, fmt.Errorf("%w: invalid items JSONL %s: %v", ErrIndexCorrupt, path, err)
		}
		out = append(out, e)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read items file %s: %w", path, err)
	}
	return out, nil
}

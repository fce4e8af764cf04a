package index

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"

	"github.com/ppmportal/navsearch/internal/search"
)

// BuildOptions controls index building.
type BuildOptions struct {
	Items  []search.SearchableItem
	OutDir string
	Force  bool
}

// BuildStats summarizes the difference from the previous snapshot.
type BuildStats struct {
	Added     int
	Updated   int
	Unchanged int
	Removed   int
}

// Changed reports whether the build altered any item.
func (s BuildStats) Changed() bool {
	return s.Added+s.Updated+s.Removed > 0
}

const lockRetryDelay = 100 * time.Millisecond

// Build snapshots opts.Items into opts.OutDir.
//
// The build is incremental when an existing index is present (unless Force is
// true): unchanged items keep their previous UpdatedAt. The snapshot is written
// to a sibling temp dir and swapped into place while holding a file lock, so
// concurrent builders serialize and readers never observe a partial index.
func Build(ctx context.Context, opts BuildOptions) (*Index, BuildStats, error) {
	var stats BuildStats
	if opts.OutDir == "" {
		return nil, stats, fmt.Errorf("out dir is required")
	}
	if errs := search.ValidateItems(opts.Items); len(errs) > 0 {
		return nil, stats, fmt.Errorf("cannot index invalid catalog: %w", errs[0])
	}

	parent := filepath.Dir(opts.OutDir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return nil, stats, fmt.Errorf("cannot create index parent %s: %w", parent, err)
	}
	unlock, err := acquireLock(ctx, opts.OutDir+".lock")
	if err != nil {
		return nil, stats, err
	}
	defer unlock()

	// Load existing index for reuse.
	reuse := map[string]ItemEntry{}
	if old, err := Load(opts.OutDir); err == nil {
		for _, e := range old.Entries {
			reuse[e.ID] = e
		}
	}

	now := time.Now().UTC().Format(time.RFC3339)
	entries := make([]ItemEntry, 0, len(opts.Items))
	for _, it := range opts.Items {
		h := TextHash(CanonicalText(it))
		prev, ok := reuse[it.ID]
		delete(reuse, it.ID)
		switch {
		case !ok:
			stats.Added++
		case prev.TextHash == h && !opts.Force:
			stats.Unchanged++
			entries = append(entries, ItemEntry{SearchableItem: it, TextHash: h, UpdatedAt: prev.UpdatedAt})
			continue
		case prev.TextHash == h:
			stats.Unchanged++
		default:
			stats.Updated++
		}
		entries = append(entries, ItemEntry{SearchableItem: it, TextHash: h, UpdatedAt: now})
	}
	stats.Removed = len(reuse)

	manifest := Manifest{
		IndexVersion: currentVersion,
		CreatedAt:    now,
		ItemCount:    len(entries),
		CatalogHash:  CatalogHash(opts.Items),
		ItemsFile:    defaultItemsFile,
	}

	tmpDir, err := os.MkdirTemp(parent, ".index-build-*")
	if err != nil {
		return nil, stats, fmt.Errorf("cannot create temp index dir: %w", err)
	}
	defer os.RemoveAll(tmpDir)

	if err := Write(tmpDir, manifest, entries); err != nil {
		return nil, stats, err
	}
	if err := AtomicSwap(tmpDir, opts.OutDir); err != nil {
		return nil, stats, fmt.Errorf("cannot install index: %w", err)
	}

	return &Index{Manifest: manifest, Entries: entries}, stats, nil
}

// IsFresh reports whether idx was built from exactly items.
func IsFresh(idx *Index, items []search.SearchableItem) bool {
	return idx != nil && idx.Manifest.CatalogHash == CatalogHash(items)
}

func acquireLock(ctx context.Context, path string) (func(), error) {
	l := flock.New(path)
	locked, err := l.TryLockContext(ctx, lockRetryDelay)
	if err != nil {
		return func() {}, fmt.Errorf("cannot acquire index lock %s: %w", path, err)
	}
	if !locked {
		return func() {}, fmt.Errorf("another index build is in progress (lock: %s)", path)
	}
	return func() { _ = l.Unlock() }, nil
}

// AtomicSwap replaces destDir with srcDir by renaming.
func AtomicSwap(srcDir, destDir string) error {
	parent := filepath.Dir(destDir)
	if err := os.MkdirAll(parent, 0o755); err != nil {
		return err
	}
	backup := destDir + ".bak"
	_ = os.RemoveAll(backup)
	if _, err := os.Stat(destDir); err == nil {
		if err := os.Rename(destDir, backup); err != nil {
			return err
		}
	}
	if err := os.Rename(srcDir, destDir); err != nil {
		// rollback best-effort
		if _, stErr := os.Stat(backup); stErr == nil {
			_ = os.Rename(backup, destDir)
		}
		return err
	}
	_ = os.RemoveAll(backup)
	return nil
}

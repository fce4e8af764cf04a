// Package importer merges foreign catalogs into the local search catalog,
// applying exclude filtering and MD5-based conflict resolution.
package importer

import (
	"crypto/md5"
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/ppmportal/navsearch/internal/search"
	"github.com/ppmportal/navsearch/internal/search/index"
)

// ConflictPair records an item whose ID exists locally with different content.
type ConflictPair struct {
	ID       string
	Existing search.SearchableItem
	Incoming search.SearchableItem
	Source   string
}

// Options tunes ImportItems.
type Options struct {
	Excludes  []string // glob patterns matched against item IDs
	Overwrite bool     // replace conflicting local items instead of keeping them
}

// Result is returned by ImportItems.
type Result struct {
	Items     []search.SearchableItem // merged catalog
	Conflicts []ConflictPair
	Imported  int // new items appended
	Replaced  int // conflicting items overwritten (Overwrite only)
	Skipped   int // identical duplicates
	Excluded  int
}

// ImportItems merges src into dst by ID. source names the origin of src and
// is recorded on conflicts. dst is not modified.
func ImportItems(dst, src []search.SearchableItem, source string, opts Options) (*Result, error) {
	result := &Result{Items: make([]search.SearchableItem, len(dst), len(dst)+len(src))}
	copy(result.Items, dst)

	pos := make(map[string]int, len(dst))
	for i, it := range dst {
		pos[it.ID] = i
	}

	for i, raw := range src {
		it, err := search.CleanItem(raw)
		if err != nil {
			return result, fmt.Errorf("%s item %d: %w", source, i, err)
		}
		if it.ID == "" || it.Title == "" {
			return result, fmt.Errorf("%s item %d: %w: id and title are required", source, i, search.ErrMissingField)
		}

		if matchesExclude(it.ID, opts.Excludes) {
			result.Excluded++
			continue
		}

		j, exists := pos[it.ID]
		if !exists {
			pos[it.ID] = len(result.Items)
			result.Items = append(result.Items, it)
			result.Imported++
			continue
		}

		// ID already present — compare fingerprints.
		existing := result.Items[j]
		if itemMD5(existing) == itemMD5(it) {
			result.Skipped++
			continue
		}
		result.Conflicts = append(result.Conflicts, ConflictPair{
			ID:       it.ID,
			Existing: existing,
			Incoming: it,
			Source:   source,
		})
		if opts.Overwrite {
			result.Items[j] = it
			result.Replaced++
		}
	}

	return result, nil
}

// ImportFile merges the catalog at srcPath into the catalog at dstPath and
// saves the result. A missing destination catalog starts empty.
func ImportFile(dstPath, srcPath, source string, opts Options) (*Result, error) {
	src, err := search.LoadCatalogFile(srcPath)
	if err != nil {
		return nil, err
	}
	dst, err := search.LoadCatalogFile(dstPath)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		dst = nil
	}
	if source == "" {
		source = strings.TrimSuffix(filepath.Base(srcPath), filepath.Ext(srcPath))
	}

	result, err := ImportItems(dst, src, source, opts)
	if err != nil {
		return result, err
	}
	if result.Imported+result.Replaced == 0 {
		return result, nil
	}
	if err := search.SaveCatalogFile(dstPath, result.Items); err != nil {
		return result, err
	}
	return result, nil
}

// matchesExclude reports whether id matches any of the given glob patterns.
func matchesExclude(id string, patterns []string) bool {
	base := path.Base(id)
	for _, pattern := range patterns {
		// Match against the full ID AND its last path segment.
		if matched, _ := path.Match(pattern, id); matched {
			return true
		}
		if matched, _ := path.Match(pattern, base); matched {
			return true
		}
	}
	return false
}

// itemMD5 returns the hex-encoded MD5 digest of the item's canonical text.
func itemMD5(it search.SearchableItem) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(index.CanonicalText(it))))
}

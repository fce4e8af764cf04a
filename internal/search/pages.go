package search

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DiscoverItems scans pagesDir for *.md pages and returns one item per page,
// built from the page frontmatter. A missing directory yields no items.
func DiscoverItems(pagesDir string) ([]SearchableItem, error) {
	info, err := os.Stat(pagesDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SearchableItem{}, nil
		}
		return nil, fmt.Errorf("cannot stat pages directory %s: %w", pagesDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("pages path is not a directory: %s", pagesDir)
	}

	out := []SearchableItem{}
	walkFn := func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != pagesDir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(filepath.Ext(d.Name()), ".md") {
			return nil
		}

		rel, err := filepath.Rel(pagesDir, path)
		if err != nil {
			return err
		}
		slug := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))

		b, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("cannot read %s: %w", path, err)
		}
		item, err := pageToItem(slug, string(b))
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		out = append(out, item)
		return nil
	}

	if err := filepath.WalkDir(pagesDir, walkFn); err != nil {
		return nil, fmt.Errorf("cannot scan pages: %w", err)
	}
	return out, nil
}

func pageToItem(slug, content string) (SearchableItem, error) {
	h, body := splitFrontmatter(content)

	category, err := ParseCategory(fmString(h, "category"))
	if err != nil {
		return SearchableItem{}, err
	}

	item := SearchableItem{
		ID:          fmString(h, "id"),
		Title:       fmString(h, "title"),
		Description: fmString(h, "description"),
		Href:        fmString(h, "href"),
		Category:    category,
		Keywords:    fmList(h, "keywords"),
	}
	if len(item.Keywords) == 0 {
		item.Keywords = fmList(h, "tags")
	}
	if item.ID == "" {
		item.ID = slug
	}
	if item.Title == "" {
		item.Title = inferTitleFromBody(body)
	}
	if item.Title == "" {
		item.Title = filepath.Base(slug)
	}
	if item.Description == "" {
		item.Description = inferDescriptionFromBody(body)
	}
	if item.Href == "" {
		item.Href = "/" + slug
	}
	return item, nil
}

func inferTitleFromBody(body string) string {
	for _, ln := range strings.Split(body, "\n") {
		ln = strings.TrimSpace(ln)
		if strings.HasPrefix(ln, "# ") {
			return strings.TrimSpace(ln[2:])
		}
	}
	return ""
}

func inferDescriptionFromBody(body string) string {
	lines := strings.Split(body, "\n")
	for _, ln := range lines {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		if strings.HasPrefix(ln, "#") {
			continue
		}
		return ln
	}
	return ""
}

package index

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/ppmportal/navsearch/internal/search"
)

func catalog() []search.SearchableItem {
	return []search.SearchableItem{
		{ID: "dashboard", Title: "Project Dashboard", Href: "/dashboard", Category: search.CategoryNavigation},
		{ID: "risks", Title: "Risk Register", Href: "/risks", Category: search.CategoryFeature, Keywords: []string{"issues"}},
	}
}

func TestBuild_IncrementalStats(t *testing.T) {
	out := filepath.Join(t.TempDir(), "index")
	ctx := context.Background()

	idx, stats, err := Build(ctx, BuildOptions{Items: catalog(), OutDir: out})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if stats.Added != 2 || !stats.Changed() {
		t.Fatalf("first build stats: %+v", stats)
	}
	if !IsFresh(idx, catalog()) {
		t.Fatalf("fresh index reported stale")
	}

	// dashboard removed, risks edited, faq added
	risks := catalog()[1]
	risks.Description = "Track and mitigate risks"
	items := []search.SearchableItem{
		risks,
		{ID: "faq", Title: "FAQ", Category: search.CategoryHelp},
	}

	_, stats, err = Build(ctx, BuildOptions{Items: items, OutDir: out})
	if err != nil {
		t.Fatalf("second Build: %v", err)
	}
	want := BuildStats{Added: 1, Updated: 1, Unchanged: 0, Removed: 1}
	if stats != want {
		t.Fatalf("second build stats = %+v, want %+v", stats, want)
	}

	_, stats, err = Build(ctx, BuildOptions{Items: items, OutDir: out})
	if err != nil {
		t.Fatalf("third Build: %v", err)
	}
	if stats.Changed() || stats.Unchanged != 2 {
		t.Fatalf("third build stats: %+v", stats)
	}

	loaded, err := Load(out)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !IsFresh(loaded, items) || IsFresh(loaded, catalog()) {
		t.Fatalf("freshness check wrong")
	}
	if _, err := os.Stat(out + ".bak"); !os.IsNotExist(err) {
		t.Fatalf("backup dir left behind: %v", err)
	}
}

func TestBuild_RejectsInvalidCatalog(t *testing.T) {
	items := []search.SearchableItem{{ID: "a", Title: "A"}, {ID: "a", Title: "B"}}
	if _, _, err := Build(context.Background(), BuildOptions{Items: items, OutDir: filepath.Join(t.TempDir(), "idx")}); err == nil {
		t.Fatalf("expected error for duplicate ids")
	}
}

func TestCatalogHash_OrderSensitive(t *testing.T) {
	a := catalog()
	b := []search.SearchableItem{a[1], a[0]}
	if CatalogHash(a) == CatalogHash(b) {
		t.Fatalf("hash should depend on order")
	}
}

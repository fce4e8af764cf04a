package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ppmportal/navsearch/internal/config"
	"github.com/ppmportal/navsearch/internal/search"
)

// sampleCatalog seeds a fresh catalog with the portal's main entry points.
var sampleCatalog = []search.SearchableItem{
	{ID: "dashboard", Title: "Project Dashboard", Description: "Portfolio health, KPIs and recent activity", Href: "/dashboard", Category: search.CategoryNavigation, Keywords: []string{"overview", "kpi", "home"}},
	{ID: "risks", Title: "Risk Register", Description: "Track, score and mitigate project risks", Href: "/risks", Category: search.CategoryFeature, Keywords: []string{"risks", "issues", "mitigation"}},
	{ID: "change-requests", Title: "Change Requests", Description: "Submit and approve scope, budget and schedule changes", Href: "/change-requests", Category: search.CategoryFeature, Keywords: []string{"cr", "approvals", "workflow"}},
	{ID: "schedule", Title: "Schedule", Description: "Gantt view of milestones and dependencies", Href: "/schedule", Category: search.CategoryNavigation, Keywords: []string{"gantt", "timeline", "milestones"}},
	{ID: "admin-feature-toggles", Title: "Feature Toggles", Description: "Enable or disable portal modules", Href: "/admin/features", Category: search.CategoryFeature, Keywords: []string{"admin", "flags"}},
	{ID: "admin-roles", Title: "Role Management", Description: "Assign roles and permissions to users", Href: "/admin/roles", Category: search.CategoryFeature, Keywords: []string{"admin", "permissions", "users"}},
	{ID: "help-getting-started", Title: "Getting Started", Description: "First steps in the portfolio portal", Href: "/help/getting-started", Category: search.CategoryHelp, Keywords: []string{"onboarding", "guide"}},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create ~/.navsearch with a default config and sample catalog",
	Long: `Initialize ~/.navsearch/.

Writes navsearch.yaml, a .env override template, a sample catalog.yaml and an
empty pages/ directory. Existing files are left untouched.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func init() {
	rootCmd.AddCommand(initCmd)
}

func runInit(_ *cobra.Command, _ []string) error {
	dir, err := config.NavsearchDir()
	if err != nil {
		return err
	}
	cfgPath, err := config.ConfigPath()
	if err != nil {
		return err
	}

	// ── 1. Create ~/.navsearch/ ───────────────────────────────────────────────
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("cannot create %s: %w", dir, err)
	}
	printOK("", fmt.Sprintf("navsearch directory ready: %s", dir))

	// ── 2. Write navsearch.yaml if missing ────────────────────────────────────
	cfg, err := config.DefaultConfig()
	if err != nil {
		return err
	}
	if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
		if err := config.Save(cfg); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("config written: %s", cfgPath))
	} else {
		printInfo("", fmt.Sprintf("config exists, not modified: %s", cfgPath))
		if cfg, err = config.Load(); err != nil {
			return err
		}
	}

	// ── 3. .env template ──────────────────────────────────────────────────────
	if err := config.EnsureDotEnvTemplate(); err != nil {
		return err
	}

	// ── 4. Sample catalog and pages dir ───────────────────────────────────────
	if _, err := os.Stat(cfg.CatalogPath); os.IsNotExist(err) {
		if err := search.SaveCatalogFile(cfg.CatalogPath, sampleCatalog); err != nil {
			return err
		}
		printOK("", fmt.Sprintf("sample catalog written: %s (%d items)", cfg.CatalogPath, len(sampleCatalog)))
	} else {
		printInfo("", fmt.Sprintf("catalog exists, not modified: %s", cfg.CatalogPath))
	}
	if cfg.PagesDir != "" {
		if err := os.MkdirAll(cfg.PagesDir, 0o755); err != nil {
			return fmt.Errorf("cannot create pages dir: %w", err)
		}
	}

	fmt.Println()
	fmt.Println("  Try: navsearch search dash")
	return nil
}

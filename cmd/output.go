package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/ppmportal/navsearch/internal/search"
)

// ── Unified output helpers ────────────────────────────────────────────────────
// Icon semantics:
//   ✓  success / healthy
//   ✗  error / failure          (written to stderr)
//   ⚠  warning
//   -  not found / missing
//   ~  neutral info / state change

// printSection prints a top-level section header, e.g. "=== Doctor ===".
func printSection(title string) {
	fmt.Printf("\n=== %s ===\n", title)
}

func printLine(icon, name, msg string) {
	if name == "" {
		fmt.Printf("  %s  %s\n", icon, msg)
	} else {
		fmt.Printf("  %s  [%s] %s\n", icon, name, msg)
	}
}

// printOK prints a success line.
//   name = "" → "  ✓  msg"
//   name set  → "  ✓  [name] msg"
func printOK(name, msg string) { printLine("✓", name, msg) }

// printErr prints an error line to stderr.
func printErr(name, msg string) {
	if name == "" {
		fmt.Fprintf(os.Stderr, "  ✗  %s\n", msg)
	} else {
		fmt.Fprintf(os.Stderr, "  ✗  [%s] %s\n", name, msg)
	}
}

func printWarn(name, msg string) { printLine("⚠", name, msg) }

func printMiss(name, msg string) { printLine("-", name, msg) }

func printInfo(name, msg string) { printLine("~", name, msg) }

var matchStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))

// highlighter returns a terminal style on a TTY and <mark> markers otherwise.
func highlighter() search.Highlighter {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return search.Highlighter{Render: func(s string) string { return matchStyle.Render(s) }}
	}
	return search.DefaultHighlighter
}

package cmd

import (
	"fmt"
	"os"
	"runtime"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	flagDebug   bool
	flagNoIndex bool
)

// Set at build time via -ldflags "-X".
var (
	version   = "dev"
	commit    = "n/a"
	buildDate = "n/a"
)

// log is the diagnostic logger. Operator-facing output goes through the
// print* helpers instead.
var log = newLogger()

var rootCmd = &cobra.Command{
	Use:          "navsearch",
	Short:        "navsearch — fuzzy search over the PPM portal catalog",
	SilenceUsage: true, // don't print usage on operational errors
	Version:      version,
	Long: `navsearch ranks the portal's navigation catalog (pages, features and help
articles) against a query, the same way the in-app search bar does.

The catalog is read from ~/.navsearch/catalog.yaml and the markdown pages
under ~/.navsearch/pages/, or from the snapshot built by 'navsearch index'.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		if flagDebug {
			log.Logger.SetLevel(logrus.DebugLevel)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the navsearch version",
	Args:  cobra.NoArgs,
	Run: func(_ *cobra.Command, _ []string) {
		fmt.Print(versionLine())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Print debug information")
	rootCmd.PersistentFlags().BoolVar(&flagNoIndex, "no-index", false, "Read the catalog sources directly, ignoring the snapshot")
	rootCmd.SetVersionTemplate(versionLine())
	rootCmd.AddCommand(versionCmd)
}

func versionLine() string {
	return fmt.Sprintf("navsearch %s (commit %s, built %s, %s)\n", version, commit, buildDate, runtime.Version())
}

func newLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetLevel(logrus.WarnLevel)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	return l.WithField("component", "cli")
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

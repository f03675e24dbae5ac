package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewrecent/internal/brew"
)

var (
	dbPath string

	flagDays     int
	flagTruncate int
	flagWidth    int

	onlyFormula bool
	onlyCask    bool
	onlyNew     bool
	onlyUpdated bool

	dimLookedUp  bool
	hideLookedUp bool
	noColor      bool
	plainOut     bool

	// RootCmd is the root command for brewrecent
	RootCmd = &cobra.Command{
		Use:   "brewrecent",
		Short: "Show recently added and updated Homebrew packages",
		Long: `brewrecent lists the formulae and casks that were added to or updated in
the Homebrew taps within the last N days, laid out in terminal-width-aware
columns.

Installed packages are highlighted with a ✓ marker. Packages you have
already looked up (recorded with 'brewrecent seen') are dimmed, or hidden
entirely with --hide-looked-up.

Defaults for --days, --truncate-chars, --dim-looked-up and --hide-looked-up
can be set in ~/.config/brewrecent/config.yaml; flags always win.

Requires the homebrew/core and homebrew/cask taps to be checked out locally.
A tap that is missing degrades to an empty section with a warning.`,
		Example: `  # Everything from the last week
  brewrecent

  # New formulae from the last month
  brewrecent --days 30 --only-formula --only-new

  # Hide what you have already looked at
  brewrecent --hide-looked-up

  # Script-friendly output
  brewrecent --plain`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runReport,
	}
)

func init() {
	// Global flags
	RootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "looked-up history database path (default: ~/.config/brewrecent/seen.db)")

	flags := RootCmd.PersistentFlags()
	flags.IntVar(&flagDays, "days", 7, "size of the change window in days")
	flags.IntVar(&flagTruncate, "truncate-chars", 25, "truncate names longer than this many characters")
	flags.IntVar(&flagWidth, "width", 0, "output width (0 = detect terminal width, fall back to 80)")
	flags.BoolVar(&onlyFormula, "only-formula", false, "show formulae only")
	flags.BoolVar(&onlyCask, "only-cask", false, "show casks only")
	flags.BoolVar(&onlyNew, "only-new", false, "show newly added packages only")
	flags.BoolVar(&onlyUpdated, "only-updated", false, "show updated packages only")
	flags.BoolVar(&dimLookedUp, "dim-looked-up", true, "dim packages already recorded with 'seen'")
	flags.BoolVar(&hideLookedUp, "hide-looked-up", false, "hide packages already recorded with 'seen'")
	flags.BoolVar(&noColor, "no-color", false, "disable coloring (keeps the installed ✓ marker)")
	flags.BoolVar(&plainOut, "plain", false, "fully unstyled output, no markers")

	RootCmd.MarkFlagsMutuallyExclusive("only-formula", "only-cask")
	RootCmd.MarkFlagsMutuallyExclusive("only-new", "only-updated")

	// Enable cobra's built-in suggestion feature for unknown subcommands
	RootCmd.SuggestionsMinimumDistance = 2
}

// Execute runs the root command
func Execute() error {
	return RootCmd.Execute()
}

func runReport(cmd *cobra.Command, args []string) error {
	if !brew.Available() {
		return fmt.Errorf("brew executable not found in PATH; install Homebrew first (https://brew.sh)")
	}
	return renderReport(cmd)
}

package app

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewrecent/internal/brew"
	"github.com/blackwell-systems/brewrecent/internal/config"
	"github.com/blackwell-systems/brewrecent/internal/history"
	"github.com/blackwell-systems/brewrecent/internal/output"
	"github.com/blackwell-systems/brewrecent/internal/report"
)

// getDBPath returns the history database path, using the flag value or the
// default next to the config file.
func getDBPath() (string, error) {
	if dbPath != "" {
		return dbPath, nil
	}

	dir, err := config.Dir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	return filepath.Join(dir, "seen.db"), nil
}

// buildOptions merges config-file defaults with the flags that were
// explicitly set, validates them, and resolves the output width.
func buildOptions(cmd *cobra.Command) (report.Options, error) {
	// Force the persistent flags into cmd.Flags() so Changed() sees them
	// even before cobra has parsed the command line.
	_ = cmd.LocalFlags()

	if dir, err := config.Dir(); err == nil {
		cfg, err := config.Load(dir)
		if err != nil {
			return report.Options{}, err
		}
		flags := cmd.Flags()
		if !flags.Changed("days") {
			flagDays = cfg.Days
		}
		if !flags.Changed("truncate-chars") {
			flagTruncate = cfg.TruncateChars
		}
		if !flags.Changed("dim-looked-up") {
			dimLookedUp = cfg.DimLookedUp
		}
		if !flags.Changed("hide-looked-up") {
			hideLookedUp = cfg.HideLookedUp
		}
	}

	if flagDays < 1 {
		return report.Options{}, fmt.Errorf("invalid --days value %d: must be at least 1", flagDays)
	}
	if flagTruncate < 1 {
		return report.Options{}, fmt.Errorf("invalid --truncate-chars value %d: must be at least 1", flagTruncate)
	}

	mode := output.ModeColor
	if noColor {
		mode = output.ModeNoColor
	}
	if plainOut {
		mode = output.ModePlain
	}

	width := flagWidth
	if width <= 0 {
		width = output.Width()
	}

	return report.Options{
		Days:         flagDays,
		TruncateAt:   flagTruncate,
		Width:        width,
		ShowFormulae: !onlyCask,
		ShowCasks:    !onlyFormula,
		ShowNew:      !onlyUpdated,
		ShowUpdated:  !onlyNew,
		DimLookedUp:  dimLookedUp,
		HideLookedUp: hideLookedUp,
		Mode:         mode,
	}, nil
}

// loadMembership builds the read-only installed and looked-up sets for one
// run.
func loadMembership() (report.Membership, error) {
	installed, err := brew.InstalledNames()
	if err != nil {
		return report.Membership{}, fmt.Errorf("failed to list installed packages: %w", err)
	}

	path, err := getDBPath()
	if err != nil {
		return report.Membership{}, err
	}
	st, err := history.Open(path)
	if err != nil {
		return report.Membership{}, err
	}
	defer st.Close()

	lookedUp, err := st.Names()
	if err != nil {
		return report.Membership{}, err
	}

	return report.Membership{Installed: installed, LookedUp: lookedUp}, nil
}

// resolveTapDir locates a tap checkout, returning "" when it is missing so
// the report can degrade that catalog with a warning.
func resolveTapDir(tapName string) string {
	dir, err := brew.TapDir(tapName)
	if err != nil {
		return ""
	}
	return dir
}

// renderReport runs the full pipeline once and prints the report to stdout.
func renderReport(cmd *cobra.Command) error {
	opts, err := buildOptions(cmd)
	if err != nil {
		return err
	}
	output.InitColor(opts.Mode)

	m, err := loadMembership()
	if err != nil {
		return err
	}

	var coreDir, caskDir string
	if opts.ShowFormulae {
		coreDir = resolveTapDir("homebrew/core")
	}
	if opts.ShowCasks {
		caskDir = resolveTapDir("homebrew/cask")
	}
	src := report.NewGitSource(coreDir, caskDir)

	return report.Run(os.Stdout, os.Stderr, src, m, opts)
}

package app

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewrecent/internal/brew"
)

var watchInterval time.Duration

// debounceDelay coalesces the burst of fsnotify events a git fetch produces
// into a single re-render.
const debounceDelay = 500 * time.Millisecond

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the report whenever the taps or history change",
	Long: `Render the report, then keep it fresh: whenever a tap checkout is updated
(e.g. by 'brew update') or the looked-up history changes, the report is
rendered again. An interval ticker re-renders periodically as a fallback for
filesystems without change events.

Stop with Ctrl-C.`,
	Example: `  # Live view, refreshed at most every 15 minutes otherwise
  brewrecent watch

  # Tighter fallback interval
  brewrecent watch --interval 5m`,
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 15*time.Minute, "fallback re-render interval")

	// Register with root command
	RootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if !brew.Available() {
		return fmt.Errorf("brew executable not found in PATH; install Homebrew first (https://brew.sh)")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create filesystem watcher: %w", err)
	}
	defer watcher.Close()

	// Tap fetches rewrite files under .git; watching the checkout root would
	// mean thousands of watches.
	for _, tapName := range []string{"homebrew/core", "homebrew/cask"} {
		if dir := resolveTapDir(tapName); dir != "" {
			if err := watcher.Add(filepath.Join(dir, ".git")); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: cannot watch %s: %v\n", tapName, err)
			}
		}
	}
	if path, err := getDBPath(); err == nil {
		if err := watcher.Add(filepath.Dir(path)); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: cannot watch history database: %v\n", err)
		}
	}

	render := func() {
		fmt.Printf("── %s ──\n", time.Now().Format("2006-01-02 15:04:05"))
		if err := renderReport(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: render failed: %v\n", err)
		}
	}
	render()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	debounce := time.NewTimer(time.Hour)
	debounce.Stop()
	defer debounce.Stop()

	for {
		select {
		case ev := <-watcher.Events:
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) != 0 {
				debounce.Reset(debounceDelay)
			}
		case <-debounce.C:
			render()
		case <-ticker.C:
			render()
		case err := <-watcher.Errors:
			fmt.Fprintf(os.Stderr, "Warning: watch error: %v\n", err)
		case sig := <-sigCh:
			fmt.Fprintf(os.Stderr, "\nreceived signal %v, exiting\n", sig)
			return nil
		}
	}
}

// Package output renders recently-changed package names for the terminal.
//
// This package includes:
//   - The per-entry style engine (installed highlight, looked-up dimming)
//   - Visible-width computation that ignores ANSI escape sequences
//   - Width-aware multi-column layout
//
// Styling goes through lipgloss with an explicitly pinned color profile so
// that a given configuration always produces the same bytes.
package output

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/termenv"
)

// Mode controls how entries are rendered.
type Mode int

const (
	// ModeColor applies full styling and the installed marker.
	ModeColor Mode = iota
	// ModeNoColor keeps the installed marker but emits no escape sequences.
	ModeNoColor
	// ModePlain emits bare names only, marker included.
	ModePlain
)

const installedMarker = "✓ "

var (
	installedStyle = lipgloss.NewStyle().
			Bold(true).
			Italic(true).
			Foreground(lipgloss.Color("#3fb950"))

	lookedUpStyle = lipgloss.NewStyle().Faint(true)
)

// ColorEnabled returns true if ANSI color codes should be emitted.
// It checks that os.Stdout is a TTY and that the NO_COLOR env var is not set.
func ColorEnabled() bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd())
}

// InitColor pins the lipgloss color profile for the given mode. Color output
// is only produced when the mode asks for it and stdout can display it.
func InitColor(mode Mode) {
	if mode == ModeColor && ColorEnabled() {
		lipgloss.SetColorProfile(termenv.TrueColor)
		return
	}
	lipgloss.SetColorProfile(termenv.Ascii)
}

// Entry is a single rendered package name ready for column layout.
type Entry struct {
	Text  string // display text, may contain escape sequences
	Width int    // printable width of Text
}

// Styler turns package names into display entries according to their
// installed and looked-up status.
type Styler struct {
	truncateAt   int
	dimLookedUp  bool
	hideLookedUp bool
	mode         Mode
}

// NewStyler creates a Styler. truncateAt is the maximum printable width of a
// name before it is cut with an ellipsis; values below 1 are clamped to 1.
func NewStyler(truncateAt int, dimLookedUp, hideLookedUp bool, mode Mode) *Styler {
	if truncateAt < 1 {
		truncateAt = 1
	}
	return &Styler{
		truncateAt:   truncateAt,
		dimLookedUp:  dimLookedUp,
		hideLookedUp: hideLookedUp,
		mode:         mode,
	}
}

// Entry renders one package name. The second return value is false when the
// entry is suppressed from the report.
//
// The hide check runs before the installed highlight: a package that was
// already looked up stays hidden even if it is installed.
func (s *Styler) Entry(name string, installed, lookedUp bool) (Entry, bool) {
	if s.hideLookedUp && lookedUp {
		return Entry{}, false
	}

	name = runewidth.Truncate(name, s.truncateAt, "…")

	if s.mode == ModePlain {
		return Entry{Text: name, Width: VisibleWidth(name)}, true
	}

	switch {
	case installed:
		name = installedMarker + installedStyle.Render(name)
	case lookedUp && s.dimLookedUp:
		name = lookedUpStyle.Render(name)
	}

	return Entry{Text: name, Width: VisibleWidth(name)}, true
}

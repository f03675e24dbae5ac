// Package report assembles the recently-added/updated package listing.
//
// Raw change lists for the four (category, catalog) groups are fetched
// concurrently, normalized to bare package names, classified against the
// installed and looked-up sets, styled, and laid out into columns whose
// width is shared across every printed section.
package report

import (
	"fmt"
	"io"
	"path"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/blackwell-systems/brewrecent/internal/output"
)

// Catalog identifies one of the two Homebrew package repositories.
type Catalog int

const (
	CatalogFormulae Catalog = iota
	CatalogCasks
)

// Category identifies the kind of change within the report window.
type Category int

const (
	CategoryNew Category = iota
	CategoryUpdated
)

// Source provides raw change identifiers (relative file paths) for one
// (catalog, category) group over the last days days.
type Source interface {
	Changes(catalog Catalog, category Category, days int) ([]string, error)
}

// Membership holds the two read-only name sets every entry is classified
// against. Both are built once per run and never mutated afterwards.
type Membership struct {
	Installed map[string]struct{}
	LookedUp  map[string]struct{}
}

// Options configures a single report run.
type Options struct {
	Days       int
	TruncateAt int
	Width      int

	ShowFormulae bool
	ShowCasks    bool
	ShowNew      bool
	ShowUpdated  bool

	DimLookedUp  bool
	HideLookedUp bool

	Mode output.Mode
}

// group is one of the four fixed sections of the report, in print order.
type group struct {
	catalog  Catalog
	category Category
	title    string
}

var groups = [4]group{
	{CatalogFormulae, CategoryNew, "🆕 New formulae:"},
	{CatalogFormulae, CategoryUpdated, "🔄 Updated formulae:"},
	{CatalogCasks, CategoryNew, "🆕 New casks:"},
	{CatalogCasks, CategoryUpdated, "🔄 Updated casks:"},
}

// Run renders the report to w. Warnings for failed retrievals go to errw;
// a failed group degrades to an empty section and never aborts the others.
func Run(w, errw io.Writer, src Source, m Membership, opts Options) error {
	var enabled [4]bool
	for i, g := range groups {
		catalogOn := (g.catalog == CatalogFormulae && opts.ShowFormulae) ||
			(g.catalog == CatalogCasks && opts.ShowCasks)
		categoryOn := (g.category == CategoryNew && opts.ShowNew) ||
			(g.category == CategoryUpdated && opts.ShowUpdated)
		enabled[i] = catalogOn && categoryOn
	}

	// Fetch all enabled groups concurrently. Each goroutine writes to its
	// own slot, so no locking is needed, and print order stays fixed.
	var raw [4][]string
	var errs [4]error
	var eg errgroup.Group
	for i := range groups {
		if !enabled[i] {
			continue
		}
		i := i
		eg.Go(func() error {
			raw[i], errs[i] = src.Changes(groups[i].catalog, groups[i].category, opts.Days)
			return nil
		})
	}
	_ = eg.Wait()

	for i, err := range errs {
		if err != nil {
			fmt.Fprintf(errw, "Warning: %s: %v\n", strings.TrimSuffix(groups[i].title, ":"), err)
		}
	}

	styler := output.NewStyler(opts.TruncateAt, opts.DimLookedUp, opts.HideLookedUp, opts.Mode)

	var sections [4][]output.Entry
	maxVisible := 0
	for i := range groups {
		if !enabled[i] || errs[i] != nil {
			continue
		}
		for _, name := range Normalize(raw[i]) {
			_, installed := m.Installed[name]
			_, lookedUp := m.LookedUp[name]
			entry, ok := styler.Entry(name, installed, lookedUp)
			if !ok {
				continue
			}
			sections[i] = append(sections[i], entry)
			if entry.Width > maxVisible {
				maxVisible = entry.Width
			}
		}
	}

	for i, section := range sections {
		if len(section) == 0 {
			continue
		}
		fmt.Fprintln(w, groups[i].title)
		fmt.Fprint(w, output.Columns(section, maxVisible, opts.Width))
		fmt.Fprintln(w)
	}

	return nil
}

// Normalize turns raw change paths into sorted, deduplicated bare package
// names: blank lines are dropped, then the basename is taken and the .rb
// extension stripped.
func Normalize(raw []string) []string {
	names := make([]string, 0, len(raw))
	for _, r := range raw {
		r = strings.TrimSpace(r)
		if r == "" {
			continue
		}
		names = append(names, strings.TrimSuffix(path.Base(r), ".rb"))
	}
	slices.Sort(names)
	return slices.Compact(names)
}

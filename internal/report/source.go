package report

import (
	"fmt"

	"github.com/blackwell-systems/brewrecent/internal/tap"
)

// GitSource retrieves change lists from the git history of local Homebrew
// tap checkouts. An empty directory means the tap could not be located;
// requests against it fail and the report degrades that group to empty.
type GitSource struct {
	coreDir string
	caskDir string
}

// NewGitSource creates a GitSource over the homebrew/core and homebrew/cask
// checkout directories.
func NewGitSource(coreDir, caskDir string) *GitSource {
	return &GitSource{coreDir: coreDir, caskDir: caskDir}
}

// Changes implements Source.
func (s *GitSource) Changes(catalog Catalog, category Category, days int) ([]string, error) {
	dir, prefix, name := s.coreDir, "Formula/", "homebrew/core"
	if catalog == CatalogCasks {
		dir, prefix, name = s.caskDir, "Casks/", "homebrew/cask"
	}
	if dir == "" {
		return nil, fmt.Errorf("%s tap is not available", name)
	}

	filter := tap.Added
	if category == CategoryUpdated {
		filter = tap.Modified
	}

	return tap.ChangedFiles(dir, days, filter, prefix)
}

// Package tap reads recent change lists from local Homebrew tap checkouts.
package tap

import (
	"fmt"
	"os/exec"
	"strings"
)

// Filter selects the kind of change reported by git log.
type Filter string

const (
	// Added matches files first added within the window.
	Added Filter = "A"
	// Modified matches files changed within the window.
	Modified Filter = "M"
)

// ChangedFiles returns the relative paths under prefix that match filter in
// the tap checkout at dir within the last days days. Paths may repeat when a
// file changed in several commits.
func ChangedFiles(dir string, days int, filter Filter, prefix string) ([]string, error) {
	cmd := exec.Command("git", "-C", dir, "log",
		fmt.Sprintf("--since=%d days ago", days),
		"--diff-filter="+string(filter),
		"--name-only",
		"--pretty=format:",
		"--", prefix)

	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("git log failed in %s: %w (stderr: %s)", dir, err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("git log failed in %s: %w", dir, err)
	}

	return parseNameOnly(string(out), prefix), nil
}

// parseNameOnly extracts the file paths from `git log --name-only
// --pretty=format:` output, dropping blank separator lines and anything
// outside prefix.
func parseNameOnly(out, prefix string) []string {
	var paths []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.HasPrefix(line, prefix) {
			continue
		}
		paths = append(paths, line)
	}
	return paths
}

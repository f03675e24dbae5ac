// Package brew shells out to the Homebrew CLI for the small set of facts
// the report needs: whether brew exists, what is installed, and where the
// tap checkouts live.
package brew

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// brewListOutput represents the structure of `brew list --json=v2` output,
// reduced to the name fields.
type brewListOutput struct {
	Formulae []struct {
		Name string `json:"name"`
	} `json:"formulae"`
	Casks []struct {
		Token string `json:"token"`
	} `json:"casks"`
}

// Available reports whether the brew executable can be found on PATH.
func Available() bool {
	_, err := exec.LookPath("brew")
	return err == nil
}

// InstalledNames returns the set of installed package names: formula names
// and cask tokens together.
func InstalledNames() (map[string]struct{}, error) {
	cmd := exec.Command("brew", "list", "--json=v2")
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return nil, fmt.Errorf("brew list failed: %w (stderr: %s)", err, string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("brew list failed: %w", err)
	}

	return parseInstalled(out)
}

// parseInstalled extracts the installed-name set from `brew list --json=v2`
// output.
func parseInstalled(data []byte) (map[string]struct{}, error) {
	var listOutput brewListOutput
	if err := json.Unmarshal(data, &listOutput); err != nil {
		return nil, fmt.Errorf("failed to parse brew list output: %w", err)
	}

	names := make(map[string]struct{}, len(listOutput.Formulae)+len(listOutput.Casks))
	for _, formula := range listOutput.Formulae {
		names[formula.Name] = struct{}{}
	}
	for _, cask := range listOutput.Casks {
		names[cask.Token] = struct{}{}
	}
	return names, nil
}

// TapDir returns the checkout directory of the given tap (e.g.
// "homebrew/core"). It fails when the tap is not installed or its directory
// does not exist.
func TapDir(tapName string) (string, error) {
	cmd := exec.Command("brew", "--repository", tapName)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", fmt.Errorf("brew --repository %s failed: %w (stderr: %s)", tapName, err, string(exitErr.Stderr))
		}
		return "", fmt.Errorf("brew --repository %s failed: %w", tapName, err)
	}

	dir := strings.TrimSpace(string(out))
	if fi, err := os.Stat(dir); err != nil || !fi.IsDir() {
		return "", fmt.Errorf("tap %s is not checked out at %s", tapName, dir)
	}
	return dir, nil
}

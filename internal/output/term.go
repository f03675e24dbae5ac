package output

import (
	"os"

	"golang.org/x/term"
)

// defaultWidth is used when the terminal size cannot be determined, e.g.
// when output is piped.
const defaultWidth = 80

// Width returns the terminal width of stdout, falling back to 80.
func Width() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

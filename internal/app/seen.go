package app

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/blackwell-systems/brewrecent/internal/history"
)

var (
	seenList   bool
	seenForget bool
	seenClear  bool
)

var seenCmd = &cobra.Command{
	Use:   "seen [package]...",
	Short: "Manage the looked-up package history",
	Long: `Record packages as already looked up. Recorded packages are dimmed in the
report (or hidden with --hide-looked-up), so the listing only draws your eye
to what is still new to you.

The history is a small SQLite database; use --db to point both the report
and this command at an alternate file.`,
	Example: `  # Mark packages after reading up on them
  brewrecent seen ripgrep difftastic

  # Show everything recorded so far
  brewrecent seen --list

  # Remove individual entries
  brewrecent seen --forget ripgrep

  # Start over
  brewrecent seen --clear`,
	RunE: runSeen,
}

func init() {
	seenCmd.Flags().BoolVar(&seenList, "list", false, "list recorded packages")
	seenCmd.Flags().BoolVar(&seenForget, "forget", false, "remove the given packages from the history")
	seenCmd.Flags().BoolVar(&seenClear, "clear", false, "remove the entire history")
	seenCmd.MarkFlagsMutuallyExclusive("list", "forget", "clear")

	// Register with root command
	RootCmd.AddCommand(seenCmd)
}

func runSeen(cmd *cobra.Command, args []string) error {
	path, err := getDBPath()
	if err != nil {
		return err
	}
	st, err := history.Open(path)
	if err != nil {
		return err
	}
	defer st.Close()

	switch {
	case seenList:
		if len(args) > 0 {
			return fmt.Errorf("--list takes no arguments")
		}
		records, err := st.List()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No looked-up packages recorded.")
			return nil
		}
		for _, r := range records {
			fmt.Printf("%-30s %s\n", r.Name, r.MarkedAt.Format("2006-01-02 15:04"))
		}
		return nil

	case seenClear:
		if len(args) > 0 {
			return fmt.Errorf("--clear takes no arguments")
		}
		n, err := st.Clear()
		if err != nil {
			return err
		}
		fmt.Printf("Removed %d record(s).\n", n)
		return nil

	case seenForget:
		if len(args) == 0 {
			return fmt.Errorf("--forget requires at least one package name")
		}
		if err := st.Forget(args); err != nil {
			return err
		}
		fmt.Printf("Forgot %d package(s).\n", len(args))
		return nil

	default:
		if len(args) == 0 {
			return fmt.Errorf("provide at least one package name (or use --list, --forget, --clear)")
		}
		if err := st.Mark(args); err != nil {
			return err
		}
		fmt.Printf("Recorded %d package(s) as looked up.\n", len(args))
		return nil
	}
}

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pathsnap/internal/path"
)

var findCopyFlag bool

// Overridden in tests
var (
	dirExistsFn  = path.DirExists
	fileExistsFn = path.FileExists
)

func newDupesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dupes",
		Short: "List directories that appear more than once in the PATH",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			live, err := a.Capture()
			if err != nil {
				return err
			}
			dupes := path.FindDuplicates(live.Entries, a.settings.CaseSensitive())
			if len(dupes) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No duplicates found.")
				return nil
			}
			for _, d := range dupes {
				a.logger.Warn(fmt.Sprintf("Duplicate found: %d %s %s", d.Sequence, d.Scope, d.Directory))
			}
			printEntries(cmd, dupes)
			return nil
		},
	}
}

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Report PATH directories that do not exist",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			live, err := a.Capture()
			if err != nil {
				return err
			}
			checks := path.CheckEntries(live.Entries, path.ProcessEnv, dirExistsFn)
			longest := 0
			for _, c := range checks {
				if len(c.Directory) > longest {
					longest = len(c.Directory)
				}
			}
			missing := 0
			for i, c := range checks {
				state := "Valid"
				if !c.Exists {
					state = "Not Found"
					missing++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%3d %-*s  <- %s\n", i+1, longest, c.Directory, state)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\n%d of %d directories not found\n", missing, len(checks))
			return nil
		},
	}
}

func newFindCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "find <file>",
		Short: "Search the PATH directories for a file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()

			live, err := a.Capture()
			if err != nil {
				return err
			}
			name := args[0]
			found := path.FindOnPath(live.Entries, name, path.ProcessEnv, fileExistsFn)
			out := cmd.OutOrStdout()
			switch len(found) {
			case 0:
				fmt.Fprintf(out, "%s was not found in the PATH\n", name)
				return nil
			case 1:
				fmt.Fprintf(out, "%s was found in %s\n", name, found[0])
			default:
				fmt.Fprintf(out, "%s was found in multiple directories in the PATH:\n\n", name)
				for _, dir := range found {
					fmt.Fprintf(out, "\t%s\n", dir)
				}
			}
			if findCopyFlag {
				return path.CopyToClipboard(found[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&findCopyFlag, "copy", "c", false, "copy the first matching directory to the clipboard")
	return cmd
}

func init() {
	rootCmd.AddCommand(newDupesCmd(), newCheckCmd(), newFindCmd())
}

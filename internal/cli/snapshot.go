package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"pathsnap/internal/path"
)

var snapshotCmd = newSnapshotCmd()

func newSnapshotCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Manage the saved PATH snapshot",
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "save",
			Short: "Save the current PATH as the snapshot",
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
				if err := a.SaveLive(); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved %d entries to %s\n", len(live.Entries), a.store.File())
				return nil
			},
		},
		&cobra.Command{
			Use:   "show",
			Short: "List the entries of the saved snapshot",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := newApp(cmd)
				if err != nil {
					return err
				}
				defer a.Close()

				if !fileExists(a.store.File()) {
					fmt.Fprintf(cmd.OutOrStdout(), "No snapshot at %s\n", a.store.File())
					return nil
				}
				entries, err := a.store.Load()
				if err != nil {
					return err
				}
				printEntries(cmd, entries)
				return nil
			},
		},
		&cobra.Command{
			Use:   "file",
			Short: "Print the snapshot file location",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				a, err := newApp(cmd)
				if err != nil {
					return err
				}
				defer a.Close()
				fmt.Fprintln(cmd.OutOrStdout(), absPath(a.store.File()))
				return nil
			},
		},
	)
	return cmd
}

func init() {
	rootCmd.AddCommand(snapshotCmd)
}

func printEntries(cmd *cobra.Command, entries []path.Entry) {
	for _, e := range entries {
		fmt.Fprintf(cmd.OutOrStdout(), "%3d  %-7s  %s\n", e.Sequence, e.Scope, e.Directory)
	}
}

// Package cli provides the pathsnap command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"pathsnap/internal/path"
	"pathsnap/internal/tui"
)

var (
	configFlag        string
	snapshotFlag      string
	caseSensitiveFlag bool
	hideFlag          bool
	verboseFlag       bool
)

// Overridden in tests
var (
	isTerminal = func() bool { return term.IsTerminal(int(os.Stdout.Fd())) }
	runTUI     = func(s tui.Session) error { return tui.Run(s) }
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathsnap",
		Short: "Compare the PATH with the last saved snapshot",
		Long: `pathsnap reads the machine and user PATH, compares it with the
snapshot saved on the previous run and shows which directories were
added, removed, duplicated or left unchanged. The current PATH then
becomes the new snapshot.

Run without arguments in a terminal for the interactive grid, or pipe
the output to get a plain text report.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if hideFlag {
				return runHidden(cmd)
			}
			if !isTerminal() {
				return runReport(cmd, reportOptions{save: true})
			}

			// stderr logging would draw over the grid
			verboseFlag = false
			a, err := newApp(cmd)
			if err != nil {
				return err
			}
			defer a.Close()
			return runTUI(a)
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "settings file (default ~/.pathsnap/settings.yaml)")
	cmd.PersistentFlags().StringVar(&snapshotFlag, "snapshot", "", "snapshot file to compare against and update")
	cmd.PersistentFlags().BoolVar(&caseSensitiveFlag, "case-sensitive", false, "compare directories case sensitively")
	cmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "also write the application log to stderr")
	cmd.Flags().BoolVar(&hideFlag, "hide", false, "compare and save without a UI; alert only when the PATH changed")
	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// runHidden is the unattended check: compare, save, alert on differences
func runHidden(cmd *cobra.Command) error {
	out := cmd.OutOrStdout()
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	a.logger.Info(`Argument "hide" specified`)
	res, err := a.Compare()
	if err != nil {
		return err
	}
	if err := a.SaveLive(); err != nil {
		return err
	}

	if !res.Summary.ShouldAlert() {
		a.logger.Info("No differences found, shutting down")
		return nil
	}
	msg, err := a.shell.ShowAlert(a.settings.AlertCommand, res.Summary)
	if err != nil || a.settings.AlertCommand == "" {
		fmt.Fprintln(out, msg)
		path.RenderTable(out, res.Rows, res.Summary)
	}
	return nil
}

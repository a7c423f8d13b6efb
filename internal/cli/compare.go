package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"pathsnap/internal/path"
)

type reportOptions struct {
	output string
	copy   bool
	json   bool
	save   bool
}

var compareOpts reportOptions
var compareNoSave bool

var compareCmd = newCompareCmd()

func newCompareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Print the PATH differences as a table",
		Long: `Compare the current PATH with the saved snapshot and print every
directory with its status: Unchanged, Duplicate, Added or Removed.
The current PATH is saved as the new snapshot unless --no-save is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts := compareOpts
			opts.save = !compareNoSave
			return runReport(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&compareOpts.output, "output", "o", "", "also write the report to this file")
	cmd.Flags().BoolVarP(&compareOpts.copy, "copy", "c", false, "copy the report to the clipboard")
	cmd.Flags().BoolVar(&compareOpts.json, "json", false, "print rows and summary as JSON")
	cmd.Flags().BoolVar(&compareNoSave, "no-save", false, "leave the saved snapshot untouched")
	return cmd
}

func init() {
	rootCmd.AddCommand(compareCmd)
}

func runReport(cmd *cobra.Command, opts reportOptions) error {
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	compare := a.Compare
	if !opts.save {
		compare = a.CompareOnly
	}
	res, err := compare()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(res); err != nil {
			return err
		}
	} else {
		path.RenderTable(out, res.Rows, res.Summary)
	}

	if opts.output != "" {
		var b strings.Builder
		path.RenderTable(&b, res.Rows, res.Summary)
		if err := os.WriteFile(opts.output, []byte(b.String()), 0644); err != nil {
			return fmt.Errorf("writing report to %s: %w", opts.output, err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", opts.output)
	}
	if opts.copy {
		if err := path.CopyReport(res.Rows, res.Summary); err != nil {
			return fmt.Errorf("copying report: %w", err)
		}
	}

	if opts.save {
		return a.SaveLive()
	}
	return nil
}

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/tcnksm/go-latest"
)

const (
	AppName = "pathsnap"
	Version = "1.4.0"

	releaseOwner = "pathsnap"
	releaseRepo  = "pathsnap"
)

var versionCheckFlag bool

// Overridden in tests
var checkLatest = func(current string) (*latest.CheckResponse, error) {
	return latest.Check(&latest.GithubTag{Owner: releaseOwner, Repository: releaseRepo}, current)
}

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the version, optionally checking for a newer release",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s version %s\n", AppName, Version)
			if versionCheckFlag {
				reportLatest(out, Version)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&versionCheckFlag, "check", false, "check GitHub for the latest release")
	return cmd
}

func reportLatest(out io.Writer, current string) {
	res, err := checkLatest(current)
	if err != nil {
		fmt.Fprintf(out, "Unable to check for updates: %v\n", err)
		return
	}
	if res.Outdated {
		fmt.Fprintf(out, "A new version is available: %s (you have %s)\n", res.Current, current)
		return
	}
	fmt.Fprintf(out, "You are using the latest version: %s\n", current)
}

func init() {
	rootCmd.AddCommand(newVersionCmd())
}

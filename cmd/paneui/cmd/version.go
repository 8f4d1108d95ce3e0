package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/go-drift/paneui/pkg/theme"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version of paneui",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "paneui version %s (built %s)\n", Version, BuildTime)
			fmt.Fprintf(out, "theme format %s\n", theme.FormatVersion)
			return nil
		},
	}
}

package main

import (
	"fmt"

	"github.com/lerenn/workspace-explorer/cmd/wsx/internal/cli"
	"github.com/spf13/cobra"
)

func createGetBaseFolderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get-base-folder",
		Short: "Print the folder containing the workspace files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := cli.NewExplorer(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to create explorer: %w", err)
			}

			base := e.GetBaseFolder()
			if base == "" {
				return fmt.Errorf("%w, run: wsx set-base-folder", errNoBaseFolder)
			}

			if !cli.Quiet {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), base)
			}
			return err
		},
	}
}

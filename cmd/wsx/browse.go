package main

import (
	"fmt"

	"github.com/lerenn/workspace-explorer/cmd/wsx/internal/cli"
	"github.com/lerenn/workspace-explorer/pkg/treeview"
	"github.com/spf13/cobra"
)

func createBrowseCmd() *cobra.Command {
	var ideName string

	browseCmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the workspace files interactively",
		Long: `Show the workspace files of the base folder in an interactive view.

Keys: up/down to move, enter to open, r to refresh, s to set the base folder, q to quit.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := cli.ValidateIDE(ideName); err != nil {
				return err
			}

			e, err := cli.NewExplorer(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to create explorer: %w", err)
			}

			return treeview.Run(e, ideName)
		},
	}

	browseCmd.Flags().StringVarP(&ideName, "ide", "i", "", cli.IDEFlagUsage())

	return browseCmd
}

package main

import (
	"fmt"

	"github.com/lerenn/workspace-explorer/cmd/wsx/internal/cli"
	"github.com/spf13/cobra"
)

func createOpenCmd() *cobra.Command {
	var ideName string

	openCmd := &cobra.Command{
		Use:   "open [name]",
		Short: "Open a workspace file in a new editor window",
		Long: `Open a workspace file of the base folder in a new editor window.

The name is matched, ignoring case, against the workspace name or its file name.
Without a name, a selector is shown.

Examples:
  wsx open backend
  wsx open backend.code-workspace --ide cursor
  wsx open`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.ValidateIDE(ideName); err != nil {
				return err
			}

			e, err := cli.NewExplorer(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to create explorer: %w", err)
			}

			if len(args) == 0 {
				return e.SelectAndOpen(ideName)
			}

			if err := e.OpenByName(args[0], ideName); err != nil {
				return fmt.Errorf("failed to open workspace: %w", err)
			}

			if cli.Verbose {
				cli.Output(cmd.OutOrStdout()).Logf("Opened workspace %s", args[0])
			}
			return nil
		},
	}

	openCmd.Flags().StringVarP(&ideName, "ide", "i", "", cli.IDEFlagUsage())

	return openCmd
}

package main

import (
	"fmt"

	"github.com/lerenn/workspace-explorer/cmd/wsx/internal/cli"
	"github.com/spf13/cobra"
)

func createSetBaseFolderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set-base-folder [path]",
		Short: "Set the folder containing the workspace files",
		Long: `Set the folder whose .code-workspace files are listed.

Without a path, a folder picker is shown. Leaving the picker changes nothing.
A path that does not exist is only stored after confirmation, unless --quiet is set.
A path to a regular file is rejected.

Examples:
  wsx set-base-folder ~/workspaces
  wsx set-base-folder`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := cli.NewExplorer(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to create explorer: %w", err)
			}

			var stored string
			switch {
			case len(args) == 1 && cli.Quiet:
				stored, err = e.SetBaseFolder(args[0])
			case len(args) == 1:
				stored, err = e.ConfirmAndSetBaseFolder(args[0])
			default:
				stored, err = e.PickBaseFolder()
			}
			if err != nil {
				return err
			}

			if stored != "" {
				cli.Output(cmd.OutOrStdout()).Logf("Base folder set: %s", stored)
			}
			return nil
		},
	}
}

// Package main provides the command-line interface of the workspace explorer.
package main

import (
	"log"

	"github.com/lerenn/workspace-explorer/cmd/wsx/internal/cli"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "wsx",
		Short: "Workspace Explorer - browse and open .code-workspace files",
		Long: `List the .code-workspace files of a base folder and open them ` +
			`in a new editor window.`,
		SilenceUsage: true,
	}

	// Add global flags
	rootCmd.PersistentFlags().BoolVarP(&cli.Quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVarP(&cli.Verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVarP(&cli.ConfigPath, "config", "c", "", "Specify a custom settings file path")

	rootCmd.AddCommand(
		createListCmd(),
		createSetBaseFolderCmd(),
		createGetBaseFolderCmd(),
		createOpenCmd(),
		createBrowseCmd(),
	)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

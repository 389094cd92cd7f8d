package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/lerenn/workspace-explorer/cmd/wsx/internal/cli"
	"github.com/lerenn/workspace-explorer/pkg/listing"
	"github.com/spf13/cobra"
)

// Output formats of the list command.
const (
	formatPlain = "plain"
	formatTable = "table"
)

var (
	nameStyle        = lipgloss.NewStyle().Bold(true)
	fileStyle        = lipgloss.NewStyle().Faint(true)
	placeholderStyle = lipgloss.NewStyle().Italic(true)
)

func createListCmd() *cobra.Command {
	var format string

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the workspace files of the base folder",
		Long: `List the .code-workspace files found directly in the base folder.

When there is nothing to list, a single message tells why.

Examples:
  wsx list
  wsx list --format table`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if format != formatPlain && format != formatTable {
				return fmt.Errorf("%w: %s", errUnknownFormat, format)
			}

			e, err := cli.NewExplorer(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return fmt.Errorf("failed to create explorer: %w", err)
			}

			items, err := e.List()
			if err != nil {
				return fmt.Errorf("failed to list workspaces: %w", err)
			}

			if cli.Quiet {
				return nil
			}
			return printItems(cmd.OutOrStdout(), items, format)
		},
	}

	listCmd.Flags().StringVarP(&format, "format", "f", formatPlain, "Output format: plain or table")

	return listCmd
}

// printItems writes the listing rows to out.
func printItems(out io.Writer, items []listing.Item, format string) error {
	if format == formatTable {
		printTable(out, items)
		return nil
	}

	for _, item := range items {
		if item.IsPlaceholder() {
			if _, err := fmt.Fprintln(out, placeholderStyle.Render(item.Label)); err != nil {
				return err
			}
			continue
		}
		line := nameStyle.Render(item.Label) + "  " + fileStyle.Render(item.Description)
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

// printTable writes the listing rows as a table.
func printTable(out io.Writer, items []listing.Item) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetStyle(table.StyleLight)

	if len(items) == 1 && items[0].IsPlaceholder() {
		t.AppendHeader(table.Row{"Message"})
		t.AppendRow(table.Row{items[0].Label})
		t.Render()
		return
	}

	t.AppendHeader(table.Row{"Name", "File", "Path"})
	for _, item := range items {
		t.AppendRow(table.Row{item.Label, item.Description, item.Tooltip})
	}
	t.Render()
}

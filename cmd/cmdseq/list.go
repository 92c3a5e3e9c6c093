// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/cmdseq/cmdseq/internal/registry"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

func newListCommand(app *App) *cobra.Command {
	var namesOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List available commands with their aliases and required arguments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := app.buildRegistry()
			if err != nil {
				return err
			}
			if namesOnly {
				for _, alias := range reg.Aliases() {
					fmt.Fprintln(app.stdout, alias)
				}
				return nil
			}
			renderCommandTable(app.stdout, reg.Entries())
			return nil
		},
	}

	cmd.Flags().BoolVar(&namesOnly, "names", false, "print every alias on its own line")
	return cmd
}

func renderCommandTable(w io.Writer, entries []registry.Entry) {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		var desc string
		if d, ok := e.Command.(registry.Describer); ok {
			desc = d.Description()
		}
		required := make([]string, 0, len(e.Command.MandatoryArgs()))
		for _, key := range e.Command.MandatoryArgs() {
			required = append(required, "-"+strings.ToLower(key))
		}
		rows = append(rows, []string{
			e.Aliases[0],
			strings.Join(e.Aliases[1:], ", "),
			strings.Join(required, " "),
			desc,
		})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorMuted)).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return tableHeaderStyle
			case col == 0:
				return tableCellStyle.Foreground(ColorHighlight)
			default:
				return tableCellStyle
			}
		}).
		Headers("COMMAND", "ALIASES", "REQUIRES", "DESCRIPTION").
		Rows(rows...)

	fmt.Fprintln(w, t.Render())
}

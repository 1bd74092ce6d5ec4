package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/five82/commentbox/internal/commentator"
)

func newCommentatorsCommand() *cobra.Command {
	var idsOnly bool

	cmd := &cobra.Command{
		Use:     "commentators",
		Aliases: []string{"ls"},
		Short:   "List the available commentators",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if idsOnly {
				for _, id := range commentator.IDs() {
					fmt.Fprintln(out, id)
				}
				return nil
			}
			fmt.Fprintln(out, commentatorTable(commentator.All(), commentator.Default().ID))
			return nil
		},
	}
	cmd.Flags().BoolVar(&idsOnly, "ids", false, "print only the ids, one per line")
	return cmd
}

func commentatorTable(all []commentator.Commentator, defaultID string) string {
	header := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(all))
	for _, c := range all {
		id := c.ID
		if c.ID == defaultID {
			id += " *"
		}
		rows = append(rows, []string{id, c.Emoji + " " + c.Name, c.Style, c.Description})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("ID", "NAME", "STYLE", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if col == 1 && row >= 0 && row < len(all) {
				return cell.Foreground(lipgloss.Color(all[row].Accent))
			}
			return cell
		})
	return t.Render()
}

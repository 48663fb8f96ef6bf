package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/prasetya/naskah/pkg/book"
	"github.com/spf13/cobra"
)

var pagesCmd = &cobra.Command{
	Use:   "pages [book-id]",
	Short: "Show the estimated pagination of a book",
	Long:  "Recompute and print the estimated printed page number of every chapter and subchapter",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		controller := newController()
		defer controller.Close()

		cobra.CheckErr(controller.OpenBook(args[0]))

		store := controller.Store()
		store.CalculatePageNumbers()

		metrics := book.Metrics(store.Settings())
		fmt.Printf("\n%d chars/line, %d lines/page, %d chars/page\n\n",
			metrics.CharsPerLine, metrics.LinesPerPage, metrics.CharsPerPage)

		columns := []table.Column{
			{Title: "Type", Width: 12},
			{Title: "Title", Width: 42},
			{Title: "Page", Width: 6},
		}

		rows := []table.Row{}
		for _, ch := range store.Chapters() {
			rows = append(rows, table.Row{
				string(ch.Type),
				truncateString(ch.Title, 40),
				fmt.Sprintf("%d", ch.PageNumber),
			})
			for _, sub := range ch.SubChapters {
				rows = append(rows, table.Row{
					"",
					"  " + truncateString(sub.Title, 38),
					fmt.Sprintf("%d", sub.PageNumber),
				})
			}
		}

		t := table.New(
			table.WithColumns(columns),
			table.WithRows(rows),
			table.WithFocused(false),
			table.WithHeight(len(rows)),
		)

		s := table.DefaultStyles()
		s.Header = s.Header.
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderBottom(true).
			Bold(true)
		s.Selected = s.Selected.
			Foreground(lipgloss.Color("229")).
			Bold(false)
		t.SetStyles(s)

		fmt.Println(t.View())
	},
}

func init() {
	rootCmd.AddCommand(pagesCmd)
}

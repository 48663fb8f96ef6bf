package cmd

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all books",
	Long:  "Display every saved book in a formatted table",
	Run: func(cmd *cobra.Command, args []string) {
		controller := newController()
		defer controller.Close()

		books, err := controller.ListBooks()
		cobra.CheckErr(err)

		if len(books) == 0 {
			fmt.Println("No books yet. Use 'naskah new <title>' to create one.")
			return
		}

		columns := []table.Column{
			{Title: "ID", Width: 36},
			{Title: "Title", Width: 32},
			{Title: "Author", Width: 20},
		}

		rows := []table.Row{}
		for _, book := range books {
			rows = append(rows, table.Row{
				book.ID,
				truncateString(book.Title, 30),
				truncateString(book.Author, 18),
			})
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

		fmt.Printf("\nBooks (%d)\n\n", len(books))
		fmt.Println(t.View())
	},
}

func truncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-1] + "…"
}

func init() {
	rootCmd.AddCommand(listCmd)
}

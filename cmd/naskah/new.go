package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var newCmd = &cobra.Command{
	Use:   "new [title]",
	Short: "Create a new book",
	Long:  "Create an empty book with default formatting settings",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		title := strings.Join(args, " ")

		controller := newController()
		defer controller.Close()

		book, err := controller.NewBook(title)
		cobra.CheckErr(err)

		fmt.Printf("Created '%s' (id: %s)\n", book.Title, book.ID)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
}

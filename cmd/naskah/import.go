package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import [book-id] [file.pdf]",
	Short: "Import chapter structure from a PDF",
	Long:  "Extract the table of contents of a PDF and append its headings to a book as chapters and subchapters",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		bookID, pdfPath := args[0], args[1]

		controller := newController()
		defer controller.Close()

		cobra.CheckErr(controller.OpenBook(bookID))

		count, err := controller.ImportTOC(pdfPath)
		cobra.CheckErr(err)
		cobra.CheckErr(controller.Save())

		fmt.Printf("Imported %d headings from %s\n", count, pdfPath)
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var epubCmd = &cobra.Command{
	Use:   "epub [book-id]",
	Short: "Export a book as an EPUB",
	Long:  "Recompute pagination and compile the book's chapters into an EPUB file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		controller := newController()
		defer controller.Close()

		cobra.CheckErr(controller.OpenBook(args[0]))

		path, err := controller.ExportEPUB()
		cobra.CheckErr(err)

		fmt.Printf("Exported to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(epubCmd)
}

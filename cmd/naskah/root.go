package cmd

import (
	"os"

	"github.com/prasetya/naskah/pkg/app"
	"github.com/prasetya/naskah/pkg/services"
	"github.com/spf13/cobra"
)

var (
	dbPath    string
	outputDir string
)

var rootCmd = &cobra.Command{
	Use:   "naskah",
	Short: "A terminal ebook authoring tool",
	Long:  "Write and organize book chapters, estimate pagination, import structure from PDFs and export EPUBs",
	Run: func(cmd *cobra.Command, args []string) {
		controller := newController()
		defer controller.Close()

		// Open the most recent book, or start a fresh one.
		books, err := controller.ListBooks()
		cobra.CheckErr(err)
		if len(books) > 0 {
			cobra.CheckErr(controller.OpenBook(books[0].ID))
		} else {
			_, err := controller.NewBook("Untitled")
			cobra.CheckErr(err)
		}

		a := app.NewApp(controller)
		if err := a.Run(); err != nil {
			cobra.CheckErr(err)
		}
	},
}

func newController() *services.BookController {
	return services.NewBookControllerWithConfig(services.ControllerConfig{
		DBPath:    dbPath,
		OutputDir: outputDir,
	})
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to the project database (default naskah.db)")
	rootCmd.PersistentFlags().StringVar(&outputDir, "output", "", "Directory for exported files (default ~/Documents)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

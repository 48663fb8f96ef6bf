package services

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/prasetya/naskah/pkg/book"
	"github.com/prasetya/naskah/pkg/data"
	"github.com/prasetya/naskah/pkg/integrations"
	"github.com/prasetya/naskah/pkg/toc"
)

// BookController owns the working manuscript: it wires the repository, the
// in-memory store, the TOC extractor and the exporter behind one surface that
// the CLI and TUI both drive.
type BookController struct {
	repo     Repository
	store    *book.Store
	exporter *Exporter

	bookID string
	meta   *data.Book
}

type ControllerConfig struct {
	DBPath    string
	OutputDir string
}

func NewBookController() *BookController {
	return NewBookControllerWithConfig(ControllerConfig{})
}

func NewBookControllerWithConfig(cfg ControllerConfig) *BookController {
	var repo *data.Repository
	if cfg.DBPath != "" {
		var err error
		repo, err = data.NewRepositoryAt(cfg.DBPath)
		if err != nil {
			repo = data.NewDuckDBRepository()
		}
	} else {
		repo = data.NewDuckDBRepository()
	}

	outputDir := cfg.OutputDir
	if outputDir == "" {
		homeDir, _ := os.UserHomeDir()
		outputDir = filepath.Join(homeDir, "Documents")
	}
	os.MkdirAll(outputDir, 0755)
	builder := integrations.NewEPubBuilder(outputDir)

	return &BookController{
		repo:     repo,
		store:    book.NewStore(),
		exporter: NewExporter(builder),
	}
}

// Store exposes the working manuscript store to the UI layer.
func (c *BookController) Store() *book.Store {
	return c.store
}

// Exporter exposes the export pipeline, mainly for its progress channel.
func (c *BookController) Exporter() *Exporter {
	return c.exporter
}

// CurrentBook returns the open book's metadata, or nil when none is open.
func (c *BookController) CurrentBook() *data.Book {
	return c.meta
}

// NewBook creates and persists an empty book and makes it the working one.
func (c *BookController) NewBook(title string) (*data.Book, error) {
	if title == "" {
		title = "Untitled"
	}

	b := &data.Book{ID: uuid.NewString(), Title: title}
	c.store = book.NewStore()
	c.store.UpdateSettings(book.SettingsPatch{Title: &title})

	if err := c.repo.SaveBook(b, c.store.Settings()); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	c.bookID = b.ID
	c.meta = b
	return b, nil
}

// OpenBook loads a saved book into a fresh store.
func (c *BookController) OpenBook(id string) error {
	b, settings, err := c.repo.GetBook(id)
	if err != nil {
		return fmt.Errorf("failed to open book: %w", err)
	}
	if b == nil {
		return fmt.Errorf("book %s not found", id)
	}

	chapters, err := c.repo.GetChapters(id)
	if err != nil {
		return fmt.Errorf("failed to load chapters: %w", err)
	}

	c.store = book.NewStore()
	c.store.Load(chapters, settings)
	c.store.CalculatePageNumbers()
	c.bookID = b.ID
	c.meta = b
	return nil
}

// Save persists the working store state.
func (c *BookController) Save() error {
	if c.meta == nil {
		return fmt.Errorf("no book open")
	}

	settings := c.store.Settings()
	if settings.Title != "" {
		c.meta.Title = settings.Title
	}
	c.meta.Author = settings.Author
	c.meta.Description = settings.Description

	if err := c.repo.SaveBook(c.meta, settings); err != nil {
		return fmt.Errorf("failed to save book: %w", err)
	}
	if err := c.repo.ReplaceChapters(c.bookID, c.store.Chapters()); err != nil {
		return fmt.Errorf("failed to save chapters: %w", err)
	}
	return nil
}

// ImportTOC extracts the table of contents of a PDF and appends it to the
// working manuscript: front-matter entries become frontmatter chapters,
// chapter entries become chapters, and subchapter entries attach to the most
// recently imported chapter.
func (c *BookController) ImportTOC(pdfPath string) (int, error) {
	if c.meta == nil {
		return 0, fmt.Errorf("no book open")
	}

	entries, err := toc.ExtractFile(pdfPath)
	if err != nil {
		return 0, err
	}

	lastChapterID := ""
	imported := 0
	for _, entry := range entries {
		switch entry.Type {
		case toc.EntryFrontmatter:
			title := entry.Title
			typ := data.TypeFrontmatter
			c.store.AddChapter(book.ChapterPatch{Title: &title, Type: &typ})
			imported++
		case toc.EntryChapter:
			title := entry.Title
			typ := data.TypeChapter
			added := c.store.AddChapter(book.ChapterPatch{Title: &title, Type: &typ})
			lastChapterID = added.ID
			imported++
		case toc.EntrySubChapter:
			if lastChapterID == "" {
				continue
			}
			if _, ok := c.store.AddSubChapter(lastChapterID, entry.Title); ok {
				imported++
			}
		}
	}

	c.store.CalculatePageNumbers()
	return imported, nil
}

// ExportEPUB paginates and builds the working book, returning the file path.
func (c *BookController) ExportEPUB() (string, error) {
	if c.meta == nil {
		return "", fmt.Errorf("no book open")
	}

	c.store.CalculatePageNumbers()
	return c.exporter.Export(c.meta, c.store.Chapters(), c.store.Settings())
}

// ListBooks returns all saved books.
func (c *BookController) ListBooks() ([]*data.Book, error) {
	return c.repo.ListBooks()
}

// DeleteBook removes a saved book. Deleting the open book closes it.
func (c *BookController) DeleteBook(id string) error {
	if err := c.repo.DeleteBook(id); err != nil {
		return err
	}
	if c.bookID == id {
		c.bookID = ""
		c.meta = nil
		c.store = book.NewStore()
	}
	return nil
}

// Close releases the exporter; the shared database handle stays open for the
// process lifetime, matching the repository's ownership model.
func (c *BookController) Close() {
	c.exporter.Close()
}

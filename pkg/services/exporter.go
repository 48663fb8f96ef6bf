package services

import (
	"fmt"

	"github.com/prasetya/naskah/pkg/data"
	"github.com/prasetya/naskah/pkg/integrations"
)

// ExportProgress reports one stage of an export run.
type ExportProgress struct {
	BookID string
	Stage  string // "building", "complete", "error"
	Path   string // set when complete
	Error  error
}

// Repository is the persistence surface the services need.
type Repository interface {
	SaveBook(book *data.Book, settings data.Settings) error
	GetBook(id string) (*data.Book, data.Settings, error)
	ListBooks() ([]*data.Book, error)
	DeleteBook(id string) error
	ReplaceChapters(bookID string, chapters []data.Chapter) error
	GetChapters(bookID string) ([]data.Chapter, error)
}

// Exporter runs manuscript exports and streams stage updates to the UI.
type Exporter struct {
	builder      integrations.Builder
	progressChan chan ExportProgress
}

func NewExporter(builder integrations.Builder) *Exporter {
	return &Exporter{
		builder:      builder,
		progressChan: make(chan ExportProgress, 16),
	}
}

// GetProgressChannel returns the channel for receiving export progress updates
func (e *Exporter) GetProgressChannel() <-chan ExportProgress {
	return e.progressChan
}

// Export builds the book and reports each stage on the progress channel.
// It is synchronous; callers wanting a background export run it in their own
// goroutine and read the channel.
func (e *Exporter) Export(book *data.Book, chapters []data.Chapter, settings data.Settings) (string, error) {
	if book == nil {
		return "", fmt.Errorf("book cannot be nil")
	}

	e.sendProgress(ExportProgress{BookID: book.ID, Stage: "building"})

	path, err := e.builder.Build(book, chapters, settings)
	if err != nil {
		e.sendProgress(ExportProgress{BookID: book.ID, Stage: "error", Error: err})
		return "", fmt.Errorf("failed to build book: %w", err)
	}

	e.sendProgress(ExportProgress{BookID: book.ID, Stage: "complete", Path: path})
	return path, nil
}

// sendProgress sends a progress update (non-blocking)
func (e *Exporter) sendProgress(progress ExportProgress) {
	select {
	case e.progressChan <- progress:
	default:
		// Channel full, skip this update
	}
}

// Close releases the progress channel.
func (e *Exporter) Close() {
	close(e.progressChan)
}

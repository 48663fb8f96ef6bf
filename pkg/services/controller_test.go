package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/prasetya/naskah/pkg/book"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestController(t *testing.T) *BookController {
	t.Helper()

	c := NewBookControllerWithConfig(ControllerConfig{
		DBPath:    filepath.Join(t.TempDir(), "test.db"),
		OutputDir: t.TempDir(),
	})
	t.Cleanup(c.Close)
	return c
}

func TestNewBook(t *testing.T) {
	c := setupTestController(t)

	b, err := c.NewBook("Naskah Baru")
	require.NoError(t, err)
	assert.NotEmpty(t, b.ID)
	assert.Equal(t, "Naskah Baru", b.Title)
	assert.Equal(t, b, c.CurrentBook())
	assert.Equal(t, "Naskah Baru", c.Store().Settings().Title)
}

func TestNewBookDefaultTitle(t *testing.T) {
	c := setupTestController(t)

	b, err := c.NewBook("")
	require.NoError(t, err)
	assert.Equal(t, "Untitled", b.Title)
}

func TestSaveAndOpenRoundTrip(t *testing.T) {
	c := setupTestController(t)

	b, err := c.NewBook("Roundtrip")
	require.NoError(t, err)

	title := "Bab Pertama"
	content := "Isi bab pertama."
	added := c.Store().AddChapter(book.ChapterPatch{Title: &title, Content: &content})
	c.Store().AddSubChapter(added.ID, "1.1 Pembuka")

	author := "Prasetya"
	c.Store().UpdateSettings(book.SettingsPatch{Author: &author})

	require.NoError(t, c.Save())

	// Switch to another book, then reopen the first from the database.
	_, err = c.NewBook("Lain")
	require.NoError(t, err)
	assert.Empty(t, c.Store().Chapters())

	require.NoError(t, c.OpenBook(b.ID))
	assert.Equal(t, "Roundtrip", c.CurrentBook().Title)
	assert.Equal(t, "Prasetya", c.CurrentBook().Author)

	chapters := c.Store().Chapters()
	require.Len(t, chapters, 1)
	assert.Equal(t, "Bab Pertama", chapters[0].Title)
	assert.Equal(t, "Isi bab pertama.", chapters[0].Content)
	require.Len(t, chapters[0].SubChapters, 1)
	assert.Equal(t, "1.1 Pembuka", chapters[0].SubChapters[0].Title)
	assert.Greater(t, chapters[0].PageNumber, 0)
}

func TestOpenBookNotFound(t *testing.T) {
	c := setupTestController(t)
	assert.Error(t, c.OpenBook("nonexistent"))
}

func TestOperationsRequireOpenBook(t *testing.T) {
	c := setupTestController(t)

	assert.Error(t, c.Save())
	_, err := c.ImportTOC("whatever.pdf")
	assert.Error(t, err)
	_, err = c.ExportEPUB()
	assert.Error(t, err)
}

func TestExportEPUBWritesFile(t *testing.T) {
	c := setupTestController(t)

	_, err := c.NewBook("Ekspor")
	require.NoError(t, err)

	title := "Bab Satu"
	content := "Paragraf.\n\nParagraf lagi."
	c.Store().AddChapter(book.ChapterPatch{Title: &title, Content: &content})

	path, err := c.ExportEPUB()
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestImportTOCMissingFile(t *testing.T) {
	c := setupTestController(t)

	_, err := c.NewBook("Impor")
	require.NoError(t, err)

	_, err = c.ImportTOC(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Error(t, err)
	assert.Empty(t, c.Store().Chapters())
}

func TestListBooks(t *testing.T) {
	c := setupTestController(t)

	_, err := c.NewBook("Pertama")
	require.NoError(t, err)
	_, err = c.NewBook("Kedua")
	require.NoError(t, err)

	books, err := c.ListBooks()
	require.NoError(t, err)
	assert.Len(t, books, 2)
}

func TestDeleteBookClosesOpenBook(t *testing.T) {
	c := setupTestController(t)

	b, err := c.NewBook("Sekali Pakai")
	require.NoError(t, err)

	require.NoError(t, c.DeleteBook(b.ID))
	assert.Nil(t, c.CurrentBook())

	books, err := c.ListBooks()
	require.NoError(t, err)
	assert.Empty(t, books)
}

package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"
	"github.com/prasetya/naskah/pkg/data"
)

type EPubBuilder struct {
	outputDir string
}

// NewEPubBuilder writes finished files into the given directory.
func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir}
}

// Build compiles the manuscript into a single EPub file. Chapters are added
// in list order, so the stored segment order (frontmatter, toc, chapters,
// backmatter) carries straight through to the book.
func (b *EPubBuilder) Build(book *data.Book, chapters []data.Chapter, settings data.Settings) (string, error) {
	if len(chapters) == 0 {
		return "", fmt.Errorf("no chapters to compile")
	}

	if err := os.MkdirAll(b.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	title := settings.Title
	if title == "" {
		title = book.Title
	}

	e, err := epub.NewEpub(title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}

	author := settings.Author
	if author == "" {
		author = book.Author
	}
	if author != "" {
		e.SetAuthor(author)
	}
	if settings.Description != "" {
		e.SetDescription(settings.Description)
	} else if book.Description != "" {
		e.SetDescription(book.Description)
	}
	e.SetLang("id")

	if settings.CoverImage != "" {
		if err := b.addCoverSection(e, settings.CoverImage, title); err != nil {
			return "", fmt.Errorf("failed to add cover: %w", err)
		}
	}

	for _, chapter := range chapters {
		if err := b.addChapter(e, chapter); err != nil {
			return "", fmt.Errorf("failed to add chapter %q: %w", chapter.Title, err)
		}
	}

	safeTitle := sanitizeFilename(title)
	outputPath := filepath.Join(b.outputDir, safeTitle+".epub")

	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

// addCoverSection fits the cover image to page proportions and puts it on a
// section of its own before the front matter.
func (b *EPubBuilder) addCoverSection(e *epub.Epub, coverPath, title string) error {
	fitted, err := FitCover(coverPath, coverMaxWidth, coverMaxHeight)
	if err != nil {
		return err
	}
	if fitted != coverPath {
		defer os.Remove(fitted)
	}

	internalPath, err := e.AddImage(fitted, "cover"+filepath.Ext(fitted))
	if err != nil {
		return err
	}

	body := fmt.Sprintf(
		`<div class="cover"><img src="%s" alt="%s" style="width:100%%;height:auto;"/></div>`,
		internalPath, html.EscapeString(title),
	)
	_, err = e.AddSection(body, "Cover", "", "")
	return err
}

// addChapter renders one chapter as an EPub section: heading, escaped
// paragraphs, then each subchapter under an <h2>.
func (b *EPubBuilder) addChapter(e *epub.Epub, chapter data.Chapter) error {
	heading := chapter.Title
	if chapter.Type == data.TypeChapter && chapter.PageNumber > 0 {
		heading = fmt.Sprintf("Bab %d: %s", chapter.PageNumber, chapter.Title)
	}

	var body strings.Builder
	body.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(heading)))
	writeParagraphs(&body, chapter.Content)

	for _, sub := range chapter.SubChapters {
		body.WriteString(fmt.Sprintf("<h2>%s</h2>\n", html.EscapeString(sub.Title)))
		writeParagraphs(&body, sub.Content)
	}

	_, err := e.AddSection(body.String(), heading, "", "")
	return err
}

// writeParagraphs splits content on blank lines and emits one <p> each.
func writeParagraphs(b *strings.Builder, content string) {
	for _, para := range strings.Split(content, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}
		b.WriteString("<p>")
		b.WriteString(html.EscapeString(para))
		b.WriteString("</p>\n")
	}
}

// isImageFile checks if a file has an image extension
func isImageFile(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	return ext == ".jpg" || ext == ".jpeg" || ext == ".png" || ext == ".gif" || ext == ".webp"
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "book"
	}
	return result
}

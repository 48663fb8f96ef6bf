package book

import (
	"math"
	"unicode/utf8"

	"github.com/prasetya/naskah/pkg/data"
)

// Conversion constants for the page estimate. Average glyph width is taken
// as half an em; pixel sizes are converted to millimeters at 96 dpi.
const (
	avgCharEm = 0.5
	pxToMM    = 0.2646
)

// PageMetrics is the derived page geometry the estimate works from.
type PageMetrics struct {
	ContentWidth  float64 // mm
	ContentHeight float64 // mm
	CharsPerLine  int
	LinesPerPage  int
	CharsPerPage  int
}

// Metrics derives the usable page geometry from the settings. Margins are
// stored in centimeters, paper sizes in millimeters.
func Metrics(s data.Settings) PageMetrics {
	paperW, paperH := data.PaperDimensions(s.PaperSize)

	m := PageMetrics{
		ContentWidth:  paperW - (s.Margins.Left+s.Margins.Right)*10,
		ContentHeight: paperH - (s.Margins.Top+s.Margins.Bottom)*10,
	}

	charMM := s.Fonts.Paragraph.Size * avgCharEm * pxToMM
	lineMM := s.Fonts.Paragraph.Size * s.Fonts.Paragraph.LineHeight * pxToMM

	m.CharsPerLine = int(m.ContentWidth / charMM)
	m.LinesPerPage = int(m.ContentHeight / lineMM)
	if m.CharsPerLine < 1 {
		m.CharsPerLine = 1
	}
	if m.LinesPerPage < 1 {
		m.LinesPerPage = 1
	}
	m.CharsPerPage = m.CharsPerLine * m.LinesPerPage

	return m
}

// EstimatePageNumbers assigns an estimated printed page number to every
// chapter and subchapter. Frontmatter and toc entries run on a roman counter,
// chapters and backmatter on an arabic counter; both are seeded at 1, bumped
// once for the cover image when one is set, and the arabic counter once more
// for the title page.
//
// The result is a best-effort preview, not typeset truth: there is no layout
// engine behind it. The function is pure, so calling it twice in a row yields
// identical numbers.
func EstimatePageNumbers(chapters []data.Chapter, settings data.Settings) []data.Chapter {
	m := Metrics(settings)
	out := cloneChapters(chapters)

	roman := 1
	arabic := 1
	if settings.CoverImage != "" {
		roman++
		arabic++
	}
	arabic++ // title page

	for i := range out {
		ch := &out[i]

		counter := &arabic
		if ch.Type == data.TypeFrontmatter || ch.Type == data.TypeTOC {
			counter = &roman
		}

		// Every chapter starts on a fresh page.
		ch.PageNumber = *counter
		*counter++

		contentPages := pagesFor(ch.Content, m.CharsPerPage)
		imagePages := imagePagesFor(ch.Images)
		total := contentPages + imagePages
		if total < 1 {
			total = 1
		}
		*counter += total

		for j := range ch.SubChapters {
			sub := &ch.SubChapters[j]
			sub.PageNumber = *counter
			pages := pagesFor(sub.Content, m.CharsPerPage)
			if pages < 1 {
				pages = 1
			}
			*counter += pages
		}
	}

	return out
}

func pagesFor(content string, charsPerPage int) int {
	if charsPerPage < 1 {
		charsPerPage = 1
	}
	return int(math.Ceil(float64(utf8.RuneCountInString(content)) / float64(charsPerPage)))
}

// imagePagesFor estimates the page cost of a chapter's images: anything wider
// than half the page takes a full page, narrower images pack two per page.
func imagePagesFor(images []data.Image) int {
	cost := 0.0
	for _, img := range images {
		if img.Width > 50 {
			cost += 1.0
		} else {
			cost += 0.5
		}
	}
	return int(math.Ceil(cost))
}

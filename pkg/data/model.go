package data

// ChapterType partitions the manuscript into its four fixed segments.
// Segment order is always frontmatter, toc, chapter, backmatter.
type ChapterType string

const (
	TypeFrontmatter ChapterType = "frontmatter"
	TypeTOC         ChapterType = "toc"
	TypeChapter     ChapterType = "chapter"
	TypeBackmatter  ChapterType = "backmatter"
)

// SegmentOrder lists the chapter types in canonical manuscript order.
var SegmentOrder = []ChapterType{TypeFrontmatter, TypeTOC, TypeChapter, TypeBackmatter}

type Book struct {
	ID          string
	Title       string
	Author      string
	Description string
}

type Chapter struct {
	ID          string
	Title       string
	Content     string
	Images      []Image
	Type        ChapterType
	Indentation int     // first-line indent level, >= 0
	LineSpacing float64 // multiplier, e.g. 1.5
	PageNumber  int     // chapter index for "chapter" entries; printed-page estimate after a recompute
	SubChapters []SubChapter
}

type SubChapter struct {
	ID         string
	Title      string
	Content    string
	PageNumber int
}

// Image carries only what the pagination estimate needs.
type Image struct {
	Width float64 // percent of page width, 0-100
}

type PaperSize string

const (
	PaperA4     PaperSize = "A4"
	PaperLetter PaperSize = "Letter"
)

// Margins are in centimeters.
type Margins struct {
	Top    float64
	Bottom float64
	Left   float64
	Right  float64
}

type FontSpec struct {
	Family     string
	Size       float64 // points
	Alignment  string  // "left", "center", "right", "justify"
	LineHeight float64
}

// FontRoles holds one spec per named text role.
type FontRoles struct {
	Title       FontSpec
	Subtitle    FontSpec
	Paragraph   FontSpec
	Header      FontSpec
	Footer      FontSpec
	Frontmatter FontSpec
	Chapter     FontSpec
	SubChapter  FontSpec
	Backmatter  FontSpec
}

type PageNumbering struct {
	Enabled   bool
	StartFrom int
	Position  string // "top" or "bottom"
	Alignment string // "left", "center", "right"
	Style     string // "decimal" or "roman"
}

type HeaderFooter struct {
	Enabled          bool
	Text             string
	AlternateEvenOdd bool
}

type Settings struct {
	Title       string
	Author      string
	Description string

	CoverImage     string // path to cover image, empty = none
	BackCoverImage string

	PaperSize PaperSize
	Margins   Margins
	Fonts     FontRoles
	Numbering PageNumbering
	Header    HeaderFooter
	Footer    HeaderFooter
}

// DefaultSettings returns the factory configuration. This is the initial
// state of every new book and the target of a settings reset.
func DefaultSettings() Settings {
	return Settings{
		PaperSize: PaperA4,
		Margins:   Margins{Top: 2.54, Bottom: 2.54, Left: 2.54, Right: 2.54},
		Fonts: FontRoles{
			Title:       FontSpec{Family: "Georgia", Size: 28, Alignment: "center", LineHeight: 1.2},
			Subtitle:    FontSpec{Family: "Georgia", Size: 18, Alignment: "center", LineHeight: 1.2},
			Paragraph:   FontSpec{Family: "Georgia", Size: 12, Alignment: "justify", LineHeight: 1.5},
			Header:      FontSpec{Family: "Georgia", Size: 10, Alignment: "center", LineHeight: 1.0},
			Footer:      FontSpec{Family: "Georgia", Size: 10, Alignment: "center", LineHeight: 1.0},
			Frontmatter: FontSpec{Family: "Georgia", Size: 12, Alignment: "justify", LineHeight: 1.5},
			Chapter:     FontSpec{Family: "Georgia", Size: 20, Alignment: "left", LineHeight: 1.3},
			SubChapter:  FontSpec{Family: "Georgia", Size: 16, Alignment: "left", LineHeight: 1.3},
			Backmatter:  FontSpec{Family: "Georgia", Size: 12, Alignment: "justify", LineHeight: 1.5},
		},
		Numbering: PageNumbering{
			Enabled:   true,
			StartFrom: 1,
			Position:  "bottom",
			Alignment: "center",
			Style:     "decimal",
		},
		Header: HeaderFooter{},
		Footer: HeaderFooter{},
	}
}

// PaperDimensions returns the physical page size in millimeters.
func PaperDimensions(p PaperSize) (width, height float64) {
	switch p {
	case PaperLetter:
		return 215.9, 279.4
	default: // A4
		return 210, 297
	}
}

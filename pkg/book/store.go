package book

import (
	"github.com/google/uuid"
	"github.com/prasetya/naskah/pkg/data"
)

// Store holds the working state of one manuscript: the ordered chapter list
// and the formatting settings. Access is synchronous; the store is owned by
// the application shell and passed down, never shared between goroutines.
type Store struct {
	chapters []data.Chapter
	settings data.Settings
}

func NewStore() *Store {
	return &Store{settings: data.DefaultSettings()}
}

// Load replaces the store contents, e.g. when opening a saved book.
func (s *Store) Load(chapters []data.Chapter, settings data.Settings) {
	s.chapters = cloneChapters(chapters)
	s.settings = settings
	s.renumber()
}

// Chapters returns a copy of the chapter list in display order.
func (s *Store) Chapters() []data.Chapter {
	return cloneChapters(s.chapters)
}

func (s *Store) Settings() data.Settings {
	return s.settings
}

// Chapter returns a copy of the chapter with the given id.
func (s *Store) Chapter(id string) (data.Chapter, bool) {
	for i := range s.chapters {
		if s.chapters[i].ID == id {
			c := s.chapters[i]
			c.Images = append([]data.Image(nil), c.Images...)
			c.SubChapters = append([]data.SubChapter(nil), c.SubChapters...)
			return c, true
		}
	}
	return data.Chapter{}, false
}

// ChapterPatch carries optional chapter fields. A nil field is "unset": left
// at its default on add, left unchanged on update.
type ChapterPatch struct {
	Title       *string
	Content     *string
	Images      *[]data.Image
	Type        *data.ChapterType
	Indentation *int
	LineSpacing *float64
	SubChapters *[]data.SubChapter
}

func (p ChapterPatch) applyTo(c *data.Chapter) {
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Content != nil {
		c.Content = *p.Content
	}
	if p.Images != nil {
		c.Images = append([]data.Image(nil), (*p.Images)...)
	}
	if p.Type != nil {
		c.Type = *p.Type
	}
	if p.Indentation != nil {
		c.Indentation = *p.Indentation
	}
	if p.LineSpacing != nil {
		c.LineSpacing = *p.LineSpacing
	}
	if p.SubChapters != nil {
		c.SubChapters = append([]data.SubChapter(nil), (*p.SubChapters)...)
	}
}

// AddChapter creates a chapter from the patch, filling unset fields with
// defaults, and inserts it into its segment: frontmatter and toc entries go
// after the last existing frontmatter/toc entry, chapters after the last
// existing chapter, backmatter always at the end.
func (s *Store) AddChapter(p ChapterPatch) data.Chapter {
	c := data.Chapter{
		ID:          uuid.NewString(),
		Title:       "New Chapter",
		Images:      []data.Image{},
		Type:        data.TypeChapter,
		LineSpacing: 1.5,
		SubChapters: []data.SubChapter{},
	}
	p.applyTo(&c)

	pos := s.insertPos(c.Type)
	s.chapters = append(s.chapters, data.Chapter{})
	copy(s.chapters[pos+1:], s.chapters[pos:])
	s.chapters[pos] = c

	s.renumber()
	return c
}

func (s *Store) insertPos(t data.ChapterType) int {
	switch t {
	case data.TypeFrontmatter, data.TypeTOC:
		for i := len(s.chapters) - 1; i >= 0; i-- {
			ct := s.chapters[i].Type
			if ct == data.TypeFrontmatter || ct == data.TypeTOC {
				return i + 1
			}
		}
		return 0
	case data.TypeChapter:
		for i := len(s.chapters) - 1; i >= 0; i-- {
			if s.chapters[i].Type == data.TypeChapter {
				return i + 1
			}
		}
		// No chapters yet: go right after the front matter block.
		for i := len(s.chapters) - 1; i >= 0; i-- {
			ct := s.chapters[i].Type
			if ct == data.TypeFrontmatter || ct == data.TypeTOC {
				return i + 1
			}
		}
		return 0
	default: // backmatter
		return len(s.chapters)
	}
}

// UpdateChapter merges the patch into the chapter with the given id.
// An unknown id is a silent no-op.
func (s *Store) UpdateChapter(id string, p ChapterPatch) {
	for i := range s.chapters {
		if s.chapters[i].ID == id {
			p.applyTo(&s.chapters[i])
			break
		}
	}
	s.renumber()
}

// RemoveChapter deletes the chapter with the given id. Unknown ids are
// tolerated.
func (s *Store) RemoveChapter(id string) {
	for i := range s.chapters {
		if s.chapters[i].ID == id {
			s.chapters = append(s.chapters[:i], s.chapters[i+1:]...)
			break
		}
	}
	s.renumber()
}

// ReorderChapters replaces the chapter list with the supplied one, but the
// caller's inter-segment order is ignored: entries are repartitioned into the
// canonical frontmatter, toc, chapter, backmatter order. Order within a
// segment follows the input.
func (s *Store) ReorderChapters(chapters []data.Chapter) {
	ordered := make([]data.Chapter, 0, len(chapters))
	for _, t := range data.SegmentOrder {
		for _, c := range chapters {
			if c.Type == t {
				ordered = append(ordered, c)
			}
		}
	}
	s.chapters = cloneChapters(ordered)
	s.renumber()
	s.CalculatePageNumbers()
}

// SettingsPatch carries optional top-level settings fields; merging is
// shallow, whole sub-structs are replaced at once.
type SettingsPatch struct {
	Title          *string
	Author         *string
	Description    *string
	CoverImage     *string
	BackCoverImage *string
	PaperSize      *data.PaperSize
	Margins        *data.Margins
	Fonts          *data.FontRoles
	Numbering      *data.PageNumbering
	Header         *data.HeaderFooter
	Footer         *data.HeaderFooter
}

func (s *Store) UpdateSettings(p SettingsPatch) {
	if p.Title != nil {
		s.settings.Title = *p.Title
	}
	if p.Author != nil {
		s.settings.Author = *p.Author
	}
	if p.Description != nil {
		s.settings.Description = *p.Description
	}
	if p.CoverImage != nil {
		s.settings.CoverImage = *p.CoverImage
	}
	if p.BackCoverImage != nil {
		s.settings.BackCoverImage = *p.BackCoverImage
	}
	if p.PaperSize != nil {
		s.settings.PaperSize = *p.PaperSize
	}
	if p.Margins != nil {
		s.settings.Margins = *p.Margins
	}
	if p.Fonts != nil {
		s.settings.Fonts = *p.Fonts
	}
	if p.Numbering != nil {
		s.settings.Numbering = *p.Numbering
	}
	if p.Header != nil {
		s.settings.Header = *p.Header
	}
	if p.Footer != nil {
		s.settings.Footer = *p.Footer
	}
}

// AddSubChapter appends a new empty subchapter to the named chapter and
// recomputes page numbers. Returns false when the chapter does not exist.
func (s *Store) AddSubChapter(chapterID, title string) (data.SubChapter, bool) {
	for i := range s.chapters {
		if s.chapters[i].ID == chapterID {
			sub := data.SubChapter{ID: uuid.NewString(), Title: title}
			s.chapters[i].SubChapters = append(s.chapters[i].SubChapters, sub)
			s.CalculatePageNumbers()
			return sub, true
		}
	}
	return data.SubChapter{}, false
}

// RemoveSubChapter drops a subchapter by id and recomputes page numbers.
// Unknown chapter or subchapter ids are tolerated.
func (s *Store) RemoveSubChapter(chapterID, subChapterID string) {
	for i := range s.chapters {
		if s.chapters[i].ID != chapterID {
			continue
		}
		subs := s.chapters[i].SubChapters
		kept := subs[:0]
		for _, sub := range subs {
			if sub.ID != subChapterID {
				kept = append(kept, sub)
			}
		}
		s.chapters[i].SubChapters = kept
		break
	}
	s.CalculatePageNumbers()
}

// CalculatePageNumbers runs the pagination estimate over the current state.
func (s *Store) CalculatePageNumbers() {
	s.chapters = EstimatePageNumbers(s.chapters, s.settings)
}

// renumber rewrites the 1..N index of "chapter"-typed entries. It runs after
// every structural mutation so the numbering is never stale.
func (s *Store) renumber() {
	n := 0
	for i := range s.chapters {
		if s.chapters[i].Type == data.TypeChapter {
			n++
			s.chapters[i].PageNumber = n
		}
	}
}

func cloneChapters(chapters []data.Chapter) []data.Chapter {
	out := make([]data.Chapter, len(chapters))
	copy(out, chapters)
	for i := range out {
		out[i].Images = append([]data.Image(nil), out[i].Images...)
		out[i].SubChapters = append([]data.SubChapter(nil), out[i].SubChapters...)
	}
	return out
}

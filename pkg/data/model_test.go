package data

import "testing"

func TestChapterModel(t *testing.T) {
	chapter := Chapter{
		ID:          "ch-1",
		Title:       "Pendahuluan",
		Content:     "Isi bab pertama.",
		Type:        TypeChapter,
		LineSpacing: 1.5,
		Images:      []Image{{Width: 60}},
		SubChapters: []SubChapter{{ID: "sub-1", Title: "1.1 Latar Belakang"}},
	}

	if chapter.ID != "ch-1" {
		t.Errorf("Expected ID 'ch-1', got '%s'", chapter.ID)
	}

	if chapter.Type != TypeChapter {
		t.Errorf("Expected type 'chapter', got '%s'", chapter.Type)
	}

	if len(chapter.SubChapters) != 1 {
		t.Errorf("Expected 1 subchapter, got %d", len(chapter.SubChapters))
	}

	if chapter.Images[0].Width != 60 {
		t.Errorf("Expected image width 60, got %f", chapter.Images[0].Width)
	}
}

func TestSegmentOrder(t *testing.T) {
	expected := []ChapterType{TypeFrontmatter, TypeTOC, TypeChapter, TypeBackmatter}

	if len(SegmentOrder) != len(expected) {
		t.Fatalf("Expected %d segments, got %d", len(expected), len(SegmentOrder))
	}

	for i, typ := range expected {
		if SegmentOrder[i] != typ {
			t.Errorf("Expected segment %d to be '%s', got '%s'", i, typ, SegmentOrder[i])
		}
	}
}

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.PaperSize != PaperA4 {
		t.Errorf("Expected paper size A4, got '%s'", s.PaperSize)
	}

	for name, m := range map[string]float64{
		"top": s.Margins.Top, "bottom": s.Margins.Bottom,
		"left": s.Margins.Left, "right": s.Margins.Right,
	} {
		if m != 2.54 {
			t.Errorf("Expected %s margin 2.54, got %f", name, m)
		}
	}

	if !s.Numbering.Enabled {
		t.Error("Expected page numbering enabled by default")
	}
	if s.Numbering.StartFrom != 1 {
		t.Errorf("Expected numbering to start from 1, got %d", s.Numbering.StartFrom)
	}
	if s.Numbering.Position != "bottom" || s.Numbering.Alignment != "center" || s.Numbering.Style != "decimal" {
		t.Errorf("Unexpected numbering defaults: %+v", s.Numbering)
	}

	if s.Header.Enabled || s.Footer.Enabled {
		t.Error("Expected header and footer disabled by default")
	}
	if s.Header.AlternateEvenOdd || s.Footer.AlternateEvenOdd {
		t.Error("Expected no even/odd alternation by default")
	}

	if s.Fonts.Paragraph.Size <= 0 || s.Fonts.Paragraph.LineHeight <= 0 {
		t.Errorf("Paragraph font defaults not set: %+v", s.Fonts.Paragraph)
	}
}

func TestPaperDimensions(t *testing.T) {
	w, h := PaperDimensions(PaperA4)
	if w != 210 || h != 297 {
		t.Errorf("Expected A4 210x297, got %fx%f", w, h)
	}

	w, h = PaperDimensions(PaperLetter)
	if w != 215.9 || h != 279.4 {
		t.Errorf("Expected Letter 215.9x279.4, got %fx%f", w, h)
	}

	// Unknown sizes fall back to A4.
	w, h = PaperDimensions(PaperSize("Tabloid"))
	if w != 210 || h != 297 {
		t.Errorf("Expected fallback to A4, got %fx%f", w, h)
	}
}

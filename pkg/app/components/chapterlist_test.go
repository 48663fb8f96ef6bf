package components

import (
	"strings"
	"testing"

	"github.com/prasetya/naskah/pkg/data"
)

func sampleChapters() []data.Chapter {
	return []data.Chapter{
		{ID: "f", Title: "Kata Pengantar", Type: data.TypeFrontmatter},
		{ID: "a", Title: "Pendahuluan", Type: data.TypeChapter, PageNumber: 1,
			SubChapters: []data.SubChapter{{ID: "s", Title: "1.1 Latar Belakang", PageNumber: 3}}},
		{ID: "b", Title: "Metode", Type: data.TypeChapter, PageNumber: 2},
	}
}

func TestChapterListNavigation(t *testing.T) {
	list := NewChapterList()
	list.SetItems(sampleChapters())

	if list.SelectedIndex != 0 {
		t.Errorf("Expected initial selection 0, got %d", list.SelectedIndex)
	}

	list.Next()
	list.Next()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected selection 2, got %d", list.SelectedIndex)
	}

	// Wraps around both ways.
	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected wrap to 0, got %d", list.SelectedIndex)
	}
	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected wrap to 2, got %d", list.SelectedIndex)
	}
}

func TestChapterListNavigationEmpty(t *testing.T) {
	list := NewChapterList()
	list.Next()
	list.Prev()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected selection to stay at 0, got %d", list.SelectedIndex)
	}
	if list.Selected() != nil {
		t.Error("Expected nil selection for empty list")
	}
}

func TestChapterListSetItemsClampsSelection(t *testing.T) {
	list := NewChapterList()
	list.SetItems(sampleChapters())
	list.SelectedIndex = 2

	list.SetItems(sampleChapters()[:1])
	if list.SelectedIndex != 0 {
		t.Errorf("Expected selection clamped to 0, got %d", list.SelectedIndex)
	}

	list.SetItems(nil)
	if list.Selected() != nil {
		t.Error("Expected nil selection after clearing items")
	}
}

func TestChapterListSelected(t *testing.T) {
	list := NewChapterList()
	list.SetItems(sampleChapters())
	list.Next()

	selected := list.Selected()
	if selected == nil || selected.ID != "a" {
		t.Errorf("Expected chapter a selected, got %+v", selected)
	}
}

func TestChapterListView(t *testing.T) {
	list := NewChapterList()
	list.SetItems(sampleChapters())

	view := list.View()
	if !strings.Contains(view, "Kata Pengantar") {
		t.Error("Expected frontmatter title in view")
	}
	if !strings.Contains(view, "Bab 1: Pendahuluan") {
		t.Error("Expected numbered chapter heading in view")
	}
	if !strings.Contains(view, "1.1 Latar Belakang") {
		t.Error("Expected subchapter line in view")
	}
}

func TestChapterListViewEmpty(t *testing.T) {
	list := NewChapterList()
	view := list.View()
	if !strings.Contains(view, "No chapters yet") {
		t.Error("Expected empty-state message")
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("Expected unchanged string, got %q", got)
	}
	if got := truncate("a very long chapter title", 10); got != "a very ..." {
		t.Errorf("Unexpected truncation: %q", got)
	}
	if got := truncate("abcdefgh", 2); got != "a..." {
		t.Errorf("Expected floor of 4, got %q", got)
	}
}

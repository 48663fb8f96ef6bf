package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prasetya/naskah/pkg/app/components"
	"github.com/prasetya/naskah/pkg/app/styles"
	"github.com/prasetya/naskah/pkg/book"
	"github.com/prasetya/naskah/pkg/data"
	"github.com/prasetya/naskah/pkg/services"
)

// OutlineScreen is the main editing view: the chapter list with structural
// commands (add, delete, move, subchapters) and save/export.
type OutlineScreen struct {
	controller  *services.BookController
	chapterList *components.ChapterList
	tracker     *components.ExportTracker
	width       int
	height      int
	err         error
	status      string
}

func NewOutlineScreen(controller *services.BookController) *OutlineScreen {
	return &OutlineScreen{
		controller:  controller,
		chapterList: components.NewChapterList(),
		tracker:     components.NewExportTracker(80),
	}
}

func (s *OutlineScreen) Init() tea.Cmd {
	return s.refresh
}

func (s *OutlineScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.chapterList.Width = msg.Width - 4
		s.chapterList.Height = msg.Height - 10

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			s.chapterList.Prev()
		case "down", "j":
			s.chapterList.Next()
		case "a":
			s.controller.Store().AddChapter(book.ChapterPatch{})
			return s, s.refresh
		case "f":
			typ := data.TypeFrontmatter
			title := "Kata Pengantar"
			s.controller.Store().AddChapter(book.ChapterPatch{Title: &title, Type: &typ})
			return s, s.refresh
		case "b":
			typ := data.TypeBackmatter
			title := "Daftar Pustaka"
			s.controller.Store().AddChapter(book.ChapterPatch{Title: &title, Type: &typ})
			return s, s.refresh
		case "d":
			if selected := s.chapterList.Selected(); selected != nil {
				s.controller.Store().RemoveChapter(selected.ID)
			}
			return s, s.refresh
		case "s":
			if selected := s.chapterList.Selected(); selected != nil {
				n := len(selected.SubChapters) + 1
				s.controller.Store().AddSubChapter(selected.ID, fmt.Sprintf("New Section %d", n))
			}
			return s, s.refresh
		case "K":
			s.moveSelected(-1)
			return s, s.refresh
		case "J":
			s.moveSelected(1)
			return s, s.refresh
		case "p":
			s.controller.Store().CalculatePageNumbers()
			return s, s.refresh
		case "w":
			return s, s.save
		case "e":
			return s, s.export
		case "r":
			return s, s.refresh
		case "q":
			return s, tea.Quit
		}

	case outlineRefreshedMsg:
		s.chapterList.SetItems(msg.chapters)

	case savedMsg:
		s.err = msg.err
		if msg.err == nil {
			s.status = "saved"
		}

	case exportDoneMsg:
		s.err = msg.err
		if msg.err == nil {
			s.status = fmt.Sprintf("exported to %s", msg.path)
		}
		s.tracker.Update(services.ExportProgress{
			BookID: msg.bookID,
			Stage:  msg.stage(),
			Path:   msg.path,
			Error:  msg.err,
		})
		return s, s.refresh
	}

	return s, nil
}

// moveSelected swaps the selected chapter with its neighbor and reorders the
// store. The store repartitions by segment, so a move across a segment
// boundary is a no-op in the displayed order.
func (s *OutlineScreen) moveSelected(delta int) {
	chapters := s.controller.Store().Chapters()
	i := s.chapterList.SelectedIndex
	j := i + delta
	if i < 0 || i >= len(chapters) || j < 0 || j >= len(chapters) {
		return
	}
	chapters[i], chapters[j] = chapters[j], chapters[i]
	s.controller.Store().ReorderChapters(chapters)
	s.chapterList.SelectedIndex = j
}

func (s *OutlineScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	title := "Outline"
	if b := s.controller.CurrentBook(); b != nil {
		title = fmt.Sprintf("Outline — %s", b.Title)
	}
	header := styles.TitleStyle.Render(title)

	var statusMsg string
	if s.err != nil {
		statusMsg = styles.StageError.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	} else if s.status != "" {
		statusMsg = styles.MutedStyle.Render(s.status) + "\n\n"
	}

	listView := s.chapterList.View()
	trackerView := s.tracker.View()

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: move • a: add chapter • f/b: front/back matter • s: subchapter • d: delete • J/K: reorder • p: repaginate • w: save • e: export • tab: settings • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s%s\n%s", header, statusMsg, listView, trackerView, help)
}

// Messages
type outlineRefreshedMsg struct {
	chapters []data.Chapter
}

type savedMsg struct {
	err error
}

type exportDoneMsg struct {
	bookID string
	path   string
	err    error
}

func (m exportDoneMsg) stage() string {
	if m.err != nil {
		return "error"
	}
	return "complete"
}

// Commands
func (s *OutlineScreen) refresh() tea.Msg {
	return outlineRefreshedMsg{chapters: s.controller.Store().Chapters()}
}

func (s *OutlineScreen) save() tea.Msg {
	return savedMsg{err: s.controller.Save()}
}

func (s *OutlineScreen) export() tea.Msg {
	bookID := ""
	if b := s.controller.CurrentBook(); b != nil {
		bookID = b.ID
	}
	path, err := s.controller.ExportEPUB()
	return exportDoneMsg{bookID: bookID, path: path, err: err}
}

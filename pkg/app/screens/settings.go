package screens

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prasetya/naskah/pkg/app/styles"
	"github.com/prasetya/naskah/pkg/book"
	"github.com/prasetya/naskah/pkg/data"
	"github.com/prasetya/naskah/pkg/services"
)

// SettingsScreen edits book metadata and shows the page geometry derived
// from the current formatting settings.
type SettingsScreen struct {
	controller *services.BookController

	titleInput  textinput.Model
	authorInput textinput.Model
	focused     int // 0 = title, 1 = author

	width  int
	height int
	err    error
}

func NewSettingsScreen(controller *services.BookController) *SettingsScreen {
	title := textinput.New()
	title.Placeholder = "Book title..."
	title.CharLimit = 200
	title.Width = 50
	title.Focus()

	author := textinput.New()
	author.Placeholder = "Author..."
	author.CharLimit = 100
	author.Width = 50

	return &SettingsScreen{
		controller:  controller,
		titleInput:  title,
		authorInput: author,
	}
}

func (s *SettingsScreen) Init() tea.Cmd {
	settings := s.controller.Store().Settings()
	s.titleInput.SetValue(settings.Title)
	s.authorInput.SetValue(settings.Author)
	return textinput.Blink
}

func (s *SettingsScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			s.apply()
			return s, nil
		case "shift+tab", "down", "up":
			s.focused = (s.focused + 1) % 2
			if s.focused == 0 {
				s.titleInput.Focus()
				s.authorInput.Blur()
			} else {
				s.titleInput.Blur()
				s.authorInput.Focus()
			}
			return s, textinput.Blink
		case "ctrl+p":
			s.togglePaper()
			return s, nil
		}
	}

	if s.focused == 0 {
		s.titleInput, cmd = s.titleInput.Update(msg)
	} else {
		s.authorInput, cmd = s.authorInput.Update(msg)
	}
	return s, cmd
}

// apply pushes the edited fields into the store settings.
func (s *SettingsScreen) apply() {
	title := s.titleInput.Value()
	author := s.authorInput.Value()
	s.controller.Store().UpdateSettings(book.SettingsPatch{
		Title:  &title,
		Author: &author,
	})
}

func (s *SettingsScreen) togglePaper() {
	settings := s.controller.Store().Settings()
	paper := data.PaperA4
	if settings.PaperSize == data.PaperA4 {
		paper = data.PaperLetter
	}
	s.controller.Store().UpdateSettings(book.SettingsPatch{PaperSize: &paper})
	s.controller.Store().CalculatePageNumbers()
}

func (s *SettingsScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("Settings")

	titleStyle := styles.InputStyle
	authorStyle := styles.InputStyle
	if s.focused == 0 {
		titleStyle = styles.FocusedInputStyle
	} else {
		authorStyle = styles.FocusedInputStyle
	}

	var b strings.Builder
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(styles.SubtitleStyle.Render("Title"))
	b.WriteString("\n")
	b.WriteString(titleStyle.Render(s.titleInput.View()))
	b.WriteString("\n\n")
	b.WriteString(styles.SubtitleStyle.Render("Author"))
	b.WriteString("\n")
	b.WriteString(authorStyle.Render(s.authorInput.View()))
	b.WriteString("\n\n")

	settings := s.controller.Store().Settings()
	metrics := book.Metrics(settings)
	b.WriteString(styles.SubtitleStyle.Render("Page geometry"))
	b.WriteString("\n")
	b.WriteString(styles.TextStyle.Render(fmt.Sprintf(
		"Paper: %s • content %.0f×%.0f mm • %d chars/line • %d lines/page • %d chars/page",
		settings.PaperSize, metrics.ContentWidth, metrics.ContentHeight,
		metrics.CharsPerLine, metrics.LinesPerPage, metrics.CharsPerPage,
	)))
	b.WriteString("\n")

	help := styles.HelpStyle.Render(
		"enter: apply • up/down: switch field • ctrl+p: toggle paper size • tab: outline • ctrl+c: quit",
	)
	b.WriteString(help)

	return b.String()
}

package screens

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/prasetya/naskah/pkg/app/styles"
	"github.com/prasetya/naskah/pkg/services"
)

type screenType int

const (
	outlineView screenType = iota
	settingsView
)

// SwitchScreenMsg asks the root screen to activate another view.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type RootScreen struct {
	controller *services.BookController

	currentView screenType
	outline     *OutlineScreen
	settings    *SettingsScreen

	width  int
	height int
}

func NewRootScreen(controller *services.BookController) *RootScreen {
	return &RootScreen{
		controller:  controller,
		currentView: outlineView,
		outline:     NewOutlineScreen(controller),
		settings:    NewSettingsScreen(controller),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.outline.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "tab":
			r.currentView = (r.currentView + 1) % 2
			if r.currentView == settingsView {
				cmd = r.settings.Init()
			} else {
				cmd = r.outline.Init()
			}
			return r, cmd
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "outline":
			r.currentView = outlineView
			cmd = r.outline.Init()
		case "settings":
			r.currentView = settingsView
			cmd = r.settings.Init()
		}
		return r, cmd
	}

	// Forward message to active screen
	switch r.currentView {
	case outlineView:
		newModel, newCmd := r.outline.Update(msg)
		r.outline = newModel.(*OutlineScreen)
		return r, newCmd
	case settingsView:
		newModel, newCmd := r.settings.Update(msg)
		r.settings = newModel.(*SettingsScreen)
		return r, newCmd
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	tabs := r.renderTabs()

	var content string
	switch r.currentView {
	case outlineView:
		content = r.outline.View()
	case settingsView:
		content = r.settings.View()
	}

	return fmt.Sprintf("%s\n\n%s", tabs, content)
}

func (r *RootScreen) renderTabs() string {
	outlineTab := "Outline"
	settingsTab := "Settings"

	if r.currentView == outlineView {
		outlineTab = styles.ActiveTabStyle.Render(outlineTab)
		settingsTab = styles.InactiveTabStyle.Render(settingsTab)
	} else {
		outlineTab = styles.InactiveTabStyle.Render(outlineTab)
		settingsTab = styles.ActiveTabStyle.Render(settingsTab)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, outlineTab, settingsTab)
}

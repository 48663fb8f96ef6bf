package app

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/prasetya/naskah/pkg/app/screens"
	"github.com/prasetya/naskah/pkg/services"
)

type App struct {
	controller *services.BookController
}

func NewApp(controller *services.BookController) *App {
	return &App{controller: controller}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.controller)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

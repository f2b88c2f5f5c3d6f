package tui

import (
	"fmt"

	"portfolioData/internal/dataset"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type Screen int

const (
	MenuScreen Screen = iota
	GenerateScreen
	ExportScreen
	PreviewScreen
	WorksScreen
)

type Model struct {
	currentScreen Screen
	menuModel     *MenuModel
	generateModel *GenerateModel
	exportModel   *ExportModel
	previewModel  *PreviewModel
	worksModel    *WorksModel
	err           error
	quitting      bool
	width         int
	height        int
}

// NewModel builds the TUI rooted at baseDir; all relative paths typed into
// forms are resolved against it.
func NewModel(baseDir string) Model {
	svc := dataset.NewService(baseDir, nil)
	return Model{
		currentScreen: MenuScreen,
		menuModel:     NewMenuModel(),
		generateModel: NewGenerateModel(svc),
		exportModel:   NewExportModel(svc),
		previewModel:  NewPreviewModel(svc),
		worksModel:    NewWorksModel(baseDir),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menuModel.SetSize(msg.Width, msg.Height)
		m.generateModel.SetSize(msg.Width, msg.Height)
		m.exportModel.SetSize(msg.Width, msg.Height)
		m.previewModel.SetSize(msg.Width, msg.Height)
		m.worksModel.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "q":
			if m.currentScreen == MenuScreen || m.currentScreen == PreviewScreen || m.currentScreen == WorksScreen {
				m.quitting = true
				return m, tea.Quit
			}
		case "esc":
			if m.currentScreen != MenuScreen {
				m.currentScreen = MenuScreen
				m.err = nil
				return m, nil
			}
		}

	case ScreenChangeMsg:
		m.currentScreen = msg.Screen
		m.err = nil
		switch msg.Screen {
		case PreviewScreen:
			return m, m.previewModel.Load()
		case WorksScreen:
			return m, m.worksModel.Load()
		}
		return m, nil

	case ErrorMsg:
		m.err = msg.Err
		return m, nil
	}

	switch m.currentScreen {
	case MenuScreen:
		newMenuModel, cmd := m.menuModel.Update(msg)
		m.menuModel = newMenuModel.(*MenuModel)
		return m, cmd
	case GenerateScreen:
		newGenerateModel, cmd := m.generateModel.Update(msg)
		m.generateModel = newGenerateModel.(*GenerateModel)
		return m, cmd
	case ExportScreen:
		newExportModel, cmd := m.exportModel.Update(msg)
		m.exportModel = newExportModel.(*ExportModel)
		return m, cmd
	case PreviewScreen:
		newPreviewModel, cmd := m.previewModel.Update(msg)
		m.previewModel = newPreviewModel.(*PreviewModel)
		return m, cmd
	case WorksScreen:
		newWorksModel, cmd := m.worksModel.Update(msg)
		m.worksModel = newWorksModel.(*WorksModel)
		return m, cmd
	}

	return m, cmd
}

func (m Model) View() string {
	if m.quitting {
		return "Bye.\n"
	}

	var content string
	switch m.currentScreen {
	case MenuScreen:
		content = m.menuModel.View()
	case GenerateScreen:
		content = m.generateModel.View()
	case ExportScreen:
		content = m.exportModel.View()
	case PreviewScreen:
		content = m.previewModel.View()
	case WorksScreen:
		content = m.worksModel.View()
	}

	if m.err != nil {
		content += lipgloss.NewStyle().Margin(1, 0).Render(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
	}

	return content
}

type ScreenChangeMsg struct {
	Screen Screen
}

type ErrorMsg struct {
	Err error
}

func ChangeScreen(screen Screen) tea.Cmd {
	return func() tea.Msg {
		return ScreenChangeMsg{Screen: screen}
	}
}

func ShowError(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{Err: err}
	}
}

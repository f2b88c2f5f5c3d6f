package tui

import (
	"fmt"
	"strings"

	"portfolioData/internal/dataset"
	"portfolioData/internal/models"
	"portfolioData/internal/works"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const pageSize = 10

type recordsLoadedMsg struct {
	records []models.Record
	err     error
}

type PreviewModel struct {
	svc     *dataset.Service
	records []models.Record
	err     error
	offset  int
	width   int
	height  int
}

func NewPreviewModel(svc *dataset.Service) *PreviewModel {
	return &PreviewModel{svc: svc}
}

func (m *PreviewModel) Init() tea.Cmd {
	return nil
}

func (m *PreviewModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Load re-reads the default data file.
func (m *PreviewModel) Load() tea.Cmd {
	return func() tea.Msg {
		records, err := m.svc.Load(dataset.DefaultOutput)
		return recordsLoadedMsg{records: records, err: err}
	}
}

func (m *PreviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case recordsLoadedMsg:
		m.records = msg.records
		m.err = msg.err
		m.offset = 0
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if m.offset > 0 {
				m.offset--
			}
		case "down", "j":
			if m.offset < len(m.records)-pageSize {
				m.offset++
			}
		case "r":
			return m, m.Load()
		}
	}
	return m, nil
}

func (m *PreviewModel) View() string {
	title := titleStyle.Render("PREVIEW " + dataset.DefaultOutput)

	if m.err != nil {
		content := warningStyle.Render(fmt.Sprintf("No dataset loaded: %v", m.err))
		return lipgloss.JoinVertical(lipgloss.Left, title, content, helpStyle.Render("r: Reload • Esc: Back to menu"))
	}

	end := m.offset + pageSize
	if end > len(m.records) {
		end = len(m.records)
	}

	var rows []string
	for _, r := range m.records[m.offset:end] {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render(r.ID),
			yearStyle.Render(r.Year),
			menuItemStyle.Render(r.Title),
			menuItemStyle.Render(r.Type),
			menuItemStyle.Render(r.Client),
		))
	}

	summary := labelStyle.Render(fmt.Sprintf("%d records", len(m.records)))
	if err := dataset.Validate(m.records, len(m.records)); err != nil {
		summary += "  " + warningStyle.Render("invalid: "+strings.SplitN(err.Error(), "\n", 2)[0])
	}

	help := helpStyle.Render("↑/↓: Scroll • r: Reload • Esc: Back to menu")
	return lipgloss.JoinVertical(lipgloss.Left, title, summary, strings.Join(rows, "\n"), help)
}

type worksLoadedMsg struct {
	works []models.Work
	err   error
}

type WorksModel struct {
	scanner *works.Scanner
	works   []models.Work
	err     error
	width   int
	height  int
}

func NewWorksModel(root string) *WorksModel {
	return &WorksModel{scanner: works.NewScanner(root, nil)}
}

func (m *WorksModel) Init() tea.Cmd {
	return nil
}

func (m *WorksModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *WorksModel) Load() tea.Cmd {
	return func() tea.Msg {
		found, err := m.scanner.Scan()
		return worksLoadedMsg{works: found, err: err}
	}
}

func (m *WorksModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case worksLoadedMsg:
		m.works = msg.works
		m.err = msg.err
	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.Load()
		}
	}
	return m, nil
}

func (m *WorksModel) View() string {
	title := titleStyle.Render("WORKS")

	var content string
	switch {
	case m.err != nil:
		content = errorStyle.Render(m.err.Error())
	case len(m.works) == 0:
		content = warningStyle.Render("No works found under works/works_NN")
	default:
		var rows []string
		for _, w := range m.works {
			rows = append(rows, idStyle.Render(w.ID)+menuItemStyle.Render(w.Title)+helpStyle.UnsetMargins().Render(w.Path))
		}
		content = strings.Join(rows, "\n")
	}

	return lipgloss.JoinVertical(lipgloss.Left, title, content, helpStyle.Render("r: Rescan • Esc: Back to menu"))
}

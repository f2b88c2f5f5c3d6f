package tui

import (
	"fmt"
	"strings"

	"portfolioData/internal/dataset"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type ExportState int

const (
	ExportInputState ExportState = iota
	ExportFormatSelectState
	ExportResultState
)

type ExportResult struct {
	FilePath string
	Count    int
	Error    error
}

type ExportCompleteMsg struct {
	Result ExportResult
}

type ExportModel struct {
	svc             *dataset.Service
	state           ExportState
	inputFileInput  textinput.Model
	outputDirInput  textinput.Model
	focusedInput    int
	formatSelection int
	result          ExportResult
	width           int
	height          int
}

func NewExportModel(svc *dataset.Service) *ExportModel {
	inputFileInput := textinput.New()
	inputFileInput.Placeholder = dataset.DefaultOutput
	inputFileInput.SetValue(dataset.DefaultOutput)
	inputFileInput.Focus()

	outputDirInput := textinput.New()
	outputDirInput.Placeholder = "./exports"
	outputDirInput.SetValue("./exports")

	return &ExportModel{
		svc:            svc,
		state:          ExportInputState,
		inputFileInput: inputFileInput,
		outputDirInput: outputDirInput,
	}
}

func (m *ExportModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *ExportModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *ExportModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case ExportInputState:
			return m.updateInputState(msg)
		case ExportFormatSelectState:
			return m.updateFormatSelectState(msg)
		case ExportResultState:
			if msg.String() == "enter" || msg.String() == " " {
				m.state = ExportInputState
				m.result = ExportResult{}
			}
			return m, nil
		}

	case ExportCompleteMsg:
		m.result = msg.Result
		m.state = ExportResultState
		return m, nil
	}
	return m, nil
}

func (m *ExportModel) updateInputState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "tab", "down", "shift+tab", "up":
		m.focusedInput = 1 - m.focusedInput
		if m.focusedInput == 0 {
			m.inputFileInput.Focus()
			m.outputDirInput.Blur()
		} else {
			m.inputFileInput.Blur()
			m.outputDirInput.Focus()
		}
		return m, nil
	case "enter":
		if strings.TrimSpace(m.inputFileInput.Value()) != "" && strings.TrimSpace(m.outputDirInput.Value()) != "" {
			m.state = ExportFormatSelectState
		}
		return m, nil
	}

	if m.focusedInput == 0 {
		m.inputFileInput, cmd = m.inputFileInput.Update(msg)
	} else {
		m.outputDirInput, cmd = m.outputDirInput.Update(msg)
	}
	return m, cmd
}

func (m *ExportModel) updateFormatSelectState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if m.formatSelection > 0 {
			m.formatSelection--
		}
	case "down", "j":
		if m.formatSelection < len(dataset.Formats)-1 {
			m.formatSelection++
		}
	case "enter":
		return m, m.performExport()
	case "backspace":
		m.state = ExportInputState
	}
	return m, nil
}

func (m *ExportModel) performExport() tea.Cmd {
	input := strings.TrimSpace(m.inputFileInput.Value())
	outputDir := strings.TrimSpace(m.outputDirInput.Value())
	format := dataset.Formats[m.formatSelection]

	return func() tea.Msg {
		records, err := m.svc.Load(input)
		if err != nil {
			return ExportCompleteMsg{Result: ExportResult{Error: err}}
		}
		path, err := m.svc.Export(records, outputDir, format)
		return ExportCompleteMsg{Result: ExportResult{FilePath: path, Count: len(records), Error: err}}
	}
}

func (m *ExportModel) View() string {
	switch m.state {
	case ExportInputState:
		title := titleStyle.Render("EXPORT DATASET")
		form := formStyle.Render(
			labelStyle.Render("Data file:") + "\n" + m.inputFileInput.View() + "\n\n" +
				labelStyle.Render("Output directory:") + "\n" + m.outputDirInput.View(),
		)
		help := helpStyle.Render("Tab: Navigate • Enter: Choose format • Esc: Back to menu")
		return lipgloss.JoinVertical(lipgloss.Left, title, form, help)

	case ExportFormatSelectState:
		title := titleStyle.Render("SELECT FORMAT")
		var list string
		for i, format := range dataset.Formats {
			cursor := " "
			style := menuItemStyle
			if i == m.formatSelection {
				cursor = ">"
				style = selectedMenuItemStyle
			}
			list += fmt.Sprintf("%s %s\n", cursor, style.Render(strings.ToUpper(string(format))))
		}
		help := helpStyle.Render("↑/↓: Navigate • Enter: Export • Backspace: Back")
		return lipgloss.JoinVertical(lipgloss.Left, title, list, help)

	case ExportResultState:
		title := titleStyle.Render("EXPORT DATASET")
		var status string
		if m.result.Error != nil {
			status = errorStyle.Render(fmt.Sprintf("Export failed: %v", m.result.Error))
		} else {
			status = successStyle.Render(fmt.Sprintf("Exported %d records to %s", m.result.Count, m.result.FilePath))
		}
		help := helpStyle.Render("Enter: Export again • Esc: Back to menu")
		return lipgloss.JoinVertical(lipgloss.Left, title, status, help)
	}
	return ""
}

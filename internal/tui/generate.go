package tui

import (
	"fmt"
	"strconv"
	"strings"

	"portfolioData/internal/dataset"
	"portfolioData/internal/models"
	"portfolioData/internal/synth"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type GenerateState int

const (
	GenerateInputState GenerateState = iota
	GenerateProgressState
	GenerateResultState
)

type GenerateResult struct {
	FilePath string
	Count    int
	Error    error
}

type recordsGeneratedMsg struct {
	records []models.Record
}

type GenerateCompleteMsg struct {
	Result GenerateResult
}

type GenerateModel struct {
	svc          *dataset.Service
	state        GenerateState
	countInput   textinput.Model
	seedInput    textinput.Model
	outputInput  textinput.Model
	focusedInput int
	progress     progress.Model
	progressVal  float64
	result       GenerateResult
	width        int
	height       int
}

func NewGenerateModel(svc *dataset.Service) *GenerateModel {
	countInput := textinput.New()
	countInput.Placeholder = strconv.Itoa(synth.DefaultCount)
	countInput.SetValue(strconv.Itoa(synth.DefaultCount))
	countInput.CharLimit = 4
	countInput.Focus()

	seedInput := textinput.New()
	seedInput.Placeholder = "0 (random)"
	seedInput.CharLimit = 20

	outputInput := textinput.New()
	outputInput.Placeholder = dataset.DefaultOutput
	outputInput.SetValue(dataset.DefaultOutput)

	return &GenerateModel{
		svc:         svc,
		state:       GenerateInputState,
		countInput:  countInput,
		seedInput:   seedInput,
		outputInput: outputInput,
		progress: progress.New(
			progress.WithSolidFill("#888888"),
			progress.WithoutPercentage(),
		),
	}
}

func (m *GenerateModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *GenerateModel) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case GenerateInputState:
			return m.updateInputState(msg)
		case GenerateProgressState:
			return m, nil
		case GenerateResultState:
			if msg.String() == "enter" || msg.String() == " " {
				m.reset()
			}
			return m, nil
		}

	case recordsGeneratedMsg:
		m.progressVal = 0.5
		return m, m.persist(msg.records)

	case GenerateCompleteMsg:
		m.progressVal = 1
		m.result = msg.Result
		m.state = GenerateResultState
		return m, nil
	}

	return m, nil
}

func (m *GenerateModel) inputs() []*textinput.Model {
	return []*textinput.Model{&m.countInput, &m.seedInput, &m.outputInput}
}

func (m *GenerateModel) updateInputState(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	n := len(m.inputs())

	switch msg.String() {
	case "tab", "down":
		m.focusedInput = (m.focusedInput + 1) % n
		m.updateInputFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusedInput = (m.focusedInput - 1 + n) % n
		m.updateInputFocus()
		return m, nil
	case "enter":
		count, seed, err := m.parseForm()
		if err != nil {
			return m, ShowError(err)
		}
		return m.startGenerate(count, seed)
	}

	var cmd tea.Cmd
	input := m.inputs()[m.focusedInput]
	*input, cmd = input.Update(msg)
	return m, cmd
}

func (m *GenerateModel) updateInputFocus() {
	for i, input := range m.inputs() {
		if i == m.focusedInput {
			input.Focus()
		} else {
			input.Blur()
		}
	}
}

func (m *GenerateModel) parseForm() (int, uint64, error) {
	count, err := strconv.Atoi(strings.TrimSpace(m.countInput.Value()))
	if err != nil || count <= 0 {
		return 0, 0, fmt.Errorf("count must be a positive number")
	}

	var seed uint64
	if s := strings.TrimSpace(m.seedInput.Value()); s != "" {
		seed, err = strconv.ParseUint(s, 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("seed must be a non-negative number")
		}
	}

	if strings.TrimSpace(m.outputInput.Value()) == "" {
		return 0, 0, fmt.Errorf("output file is required")
	}
	return count, seed, nil
}

func (m *GenerateModel) startGenerate(count int, seed uint64) (tea.Model, tea.Cmd) {
	m.state = GenerateProgressState
	m.progressVal = 0
	return m, func() tea.Msg {
		return recordsGeneratedMsg{records: synth.NewSynthesizer(count, seed).Run()}
	}
}

func (m *GenerateModel) persist(records []models.Record) tea.Cmd {
	output := strings.TrimSpace(m.outputInput.Value())
	return func() tea.Msg {
		path, err := m.svc.Persist(records, output)
		return GenerateCompleteMsg{Result: GenerateResult{FilePath: path, Count: len(records), Error: err}}
	}
}

func (m *GenerateModel) reset() {
	m.state = GenerateInputState
	m.progressVal = 0
	m.result = GenerateResult{}
	m.updateInputFocus()
}

func (m *GenerateModel) View() string {
	switch m.state {
	case GenerateInputState:
		return m.renderInputForm()
	case GenerateProgressState:
		return m.renderProgress()
	case GenerateResultState:
		return m.renderResult()
	}
	return ""
}

func (m *GenerateModel) renderInputForm() string {
	title := titleStyle.Render("GENERATE DATASET")

	form := formStyle.Render(
		labelStyle.Render("Records:") + "\n" + m.countInput.View() + "\n\n" +
			labelStyle.Render("Seed:") + "\n" + m.seedInput.View() + "\n\n" +
			labelStyle.Render("Output file:") + "\n" + m.outputInput.View(),
	)

	help := helpStyle.Render("Tab/Shift+Tab: Navigate • Enter: Generate • Esc: Back to menu")

	return lipgloss.JoinVertical(lipgloss.Left, title, form, help)
}

func (m *GenerateModel) renderProgress() string {
	title := titleStyle.Render("GENERATING...")
	content := progressStyle.Render(m.progress.ViewAs(m.progressVal))
	return lipgloss.JoinVertical(lipgloss.Left, title, content)
}

func (m *GenerateModel) renderResult() string {
	title := titleStyle.Render("GENERATE DATASET")

	var status string
	if m.result.Error != nil {
		status = errorStyle.Render(fmt.Sprintf("Generation failed: %v", m.result.Error))
	} else {
		status = successStyle.Render(fmt.Sprintf("Generated %s with %d items.", m.result.FilePath, m.result.Count))
	}

	help := helpStyle.Render("Enter: Generate again • Esc: Back to menu")

	return lipgloss.JoinVertical(lipgloss.Left, title, status, help)
}

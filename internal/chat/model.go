package chat

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// inputChrome is the number of lines consumed by the banner, the blank
// separator, and the input line.
const inputChrome = 3

// exchange is one completed prompt/reply pair in the transcript.
type exchange struct {
	input string
	reply string
	isErr bool
}

// Model is the Bubble Tea model for the interactive session.
type Model struct {
	dispatch   DispatchFunc
	input      textinput.Model
	transcript []exchange
	greeting   string
	prompt     string
	width      int
	height     int
	quitting   bool
}

// ModelOptions configures Model creation.
type ModelOptions struct {
	Greeting string
	Prompt   string
}

// NewModel creates a session Model with a focused text input.
func NewModel(dispatch DispatchFunc, opts ModelOptions) Model {
	ti := textinput.New()
	ti.Prompt = opts.Prompt
	ti.Focus()

	return Model{
		dispatch: dispatch,
		input:    ti,
		greeting: opts.Greeting,
		prompt:   opts.Prompt,
	}
}

// Init starts the input cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.input.Width = msg.Width - len(m.prompt) - 1
		return m, nil

	case tea.KeyMsg:
		if m.quitting {
			return m, nil
		}
		switch msg.String() {
		case "enter":
			return m.submit()
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit dispatches the current input line and records the exchange.
func (m Model) submit() (tea.Model, tea.Cmd) {
	line := m.input.Value()
	m.input.Reset()

	if strings.TrimSpace(line) == "" {
		return m, nil
	}

	reply, isErr, quit := m.dispatch(line)
	m.transcript = append(m.transcript, exchange{input: line, reply: reply, isErr: isErr})

	if quit {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// View renders the banner, the transcript, and the input line, trimming
// old transcript lines once the window fills up.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(GreetingStyle().Render(m.greeting))
	b.WriteString("\n\n")

	for _, line := range m.transcriptLines() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.quitting {
		return b.String()
	}

	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

// transcriptLines renders the transcript, keeping only as many trailing
// lines as the window height allows.
func (m Model) transcriptLines() []string {
	var lines []string
	for _, e := range m.transcript {
		lines = append(lines, EchoStyle().Render(m.prompt+e.input))
		if e.reply == "" {
			continue
		}
		style := ReplyStyle()
		if e.isErr {
			style = ErrorStyle()
		}
		for _, rl := range strings.Split(e.reply, "\n") {
			lines = append(lines, style.Render(rl))
		}
	}

	if m.height > 0 {
		if max := m.height - inputChrome; max > 0 && len(lines) > max {
			lines = lines[len(lines)-max:]
		}
	}
	return lines
}

package prompt

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Model is the Bubble Tea model reading one command line. It completes
// command words with tab and recalls history with up and down.
type Model struct {
	input     textinput.Model
	history   *History
	cursor    int
	draft     string
	submitted bool
	aborted   bool
}

// NewModel creates a focused prompt model.
func NewModel(prompt string, suggestions []string, history *History) Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.ShowSuggestions = true
	ti.SetSuggestions(suggestions)
	ti.Focus()

	if history == nil {
		history = &History{}
	}

	return Model{
		input:   ti,
		history: history,
		cursor:  history.Len(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyEnter:
			m.submitted = true

			return m, tea.Quit
		case tea.KeyCtrlC:
			m.aborted = true

			return m, tea.Quit
		case tea.KeyCtrlD:
			if m.input.Value() == "" {
				m.aborted = true

				return m, tea.Quit
			}
		case tea.KeyUp:
			return m.recall(-1), nil
		case tea.KeyDown:
			return m.recall(1), nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	return m, cmd
}

// recall moves through history. Moving past the newest entry restores the
// line being typed before recall started.
func (m Model) recall(step int) Model {
	next := m.cursor + step
	if next < 0 || next > m.history.Len() {
		return m
	}

	if m.cursor == m.history.Len() {
		m.draft = m.input.Value()
	}

	m.cursor = next

	if next == m.history.Len() {
		m.input.SetValue(m.draft)
	} else {
		m.input.SetValue(m.history.At(next))
	}

	m.input.CursorEnd()

	return m
}

// View implements tea.Model.
func (m Model) View() string {
	if m.submitted || m.aborted {
		return m.input.Prompt + m.input.Value() + "\n"
	}

	return m.input.View()
}

// Value returns the current line.
func (m Model) Value() string {
	return m.input.Value()
}

// Submitted reports whether the line was confirmed with enter.
func (m Model) Submitted() bool {
	return m.submitted
}

// Aborted reports whether the user pressed ctrl+c, or ctrl+d on an empty line.
func (m Model) Aborted() bool {
	return m.aborted
}

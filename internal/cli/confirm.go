package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// =============================================================================
// ConfirmModel - Interactive yes/no prompt
// =============================================================================

// ConfirmModel is the bubbletea model for a yes/no decision.
// It is used for the round-depth clamp question, where the operator must
// explicitly approve shortening the rounding before the build proceeds.
type ConfirmModel struct {
	Prompt   string
	Answer   bool
	Answered bool
}

// NewConfirmModel creates a confirm model with the given prompt.
func NewConfirmModel(prompt string) ConfirmModel {
	return ConfirmModel{Prompt: prompt}
}

func (m ConfirmModel) Init() tea.Cmd {
	return nil
}

func (m ConfirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "y", "Y", "enter":
			m.Answer = true
			m.Answered = true
			return m, tea.Quit
		case "n", "N", "q", "esc", "ctrl+c":
			m.Answer = false
			m.Answered = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m ConfirmModel) View() string {
	var b strings.Builder
	b.WriteString(StyleWarning.Render(iconWarning))
	b.WriteString(" ")
	b.WriteString(m.Prompt)
	b.WriteString(" ")
	b.WriteString(StyleDim.Render("[Y/n]"))
	return b.String()
}

// confirm runs an interactive yes/no prompt. It returns an error when no
// interactive terminal is available; callers should offer a flag-based
// alternative (--yes) for scripted use.
func confirm(prompt string) (bool, error) {
	final, err := tea.NewProgram(NewConfirmModel(prompt)).Run()
	if err != nil {
		return false, err
	}
	m := final.(ConfirmModel)
	return m.Answered && m.Answer, nil
}

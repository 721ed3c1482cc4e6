package report

import (
	"context"
	"errors"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/andres-b-devops/desafio-03/model"
)

// promptModel is the interactive front end of the Searcher: a single
// textinput that re-prompts on recoverable errors and quits once a search
// either finds matches, fails fatally or is interrupted.
type promptModel struct {
	ctx      context.Context
	searcher *Searcher
	input    textinput.Model

	status      string
	matches     []model.Record
	fatal       error
	interrupted bool
	done        bool
}

func newPromptModel(ctx context.Context, s *Searcher) promptModel {
	ti := textinput.New()
	ti.Prompt = "Process to search: "
	ti.Placeholder = "name"
	ti.CharLimit = 128
	ti.Width = 40
	ti.Focus()
	return promptModel{ctx: ctx, searcher: s, input: ti}
}

func (m promptModel) Init() tea.Cmd { return textinput.Blink }

func (m promptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.interrupted = true
			m.done = true
			return m, tea.Quit

		case tea.KeyEnter:
			matches, err := m.searcher.Submit(m.ctx, m.input.Value())
			switch {
			case err == nil:
				m.matches = matches
				m.done = true
				return m, tea.Quit
			case errors.Is(err, ErrEmptyQuery), errors.Is(err, ErrNoMatches):
				m.status = err.Error()
				m.searcher.Reset()
				m.input.SetValue("")
				return m, nil
			default:
				m.fatal = err
				m.done = true
				return m, tea.Quit
			}
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m promptModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	if m.status != "" {
		b.WriteString(errorStyle.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}

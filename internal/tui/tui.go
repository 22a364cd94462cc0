// Package tui is an interactive front end for the phraser: type a message,
// hit enter, scroll through the ranked phrases.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/dustin/go-humanize"

	"github.com/domino14/word_phraser/internal/anagrammer"
	"github.com/domino14/word_phraser/internal/phraser"
	"github.com/domino14/word_phraser/internal/presenter"
)

// Rows taken up by everything but the result pane.
const chromeHeight = 7

// phrasedMsg carries the ranked output of one message back to the model.
type phrasedMsg struct {
	message string
	lines   []string
	err     error
}

// Model is the interactive phraser: a message prompt above a scrollable
// list of ranked phrases.
type Model struct {
	textInput textinput.Model
	results   viewport.Model

	lex     anagrammer.Lexicon
	opts    phraser.Options
	lexSize int

	message string
	lines   []string
	err     error
	busy    bool
}

// New creates a model phrasing against lex. lexSize is only shown in the
// header.
func New(lex anagrammer.Lexicon, lexSize int, opts phraser.Options) Model {
	ti := textinput.New()
	ti.Placeholder = "Message"
	ti.Focus()
	ti.CharLimit = 120
	ti.Width = 60

	return Model{
		textInput: ti,
		results:   viewport.New(80, 20),
		lex:       lex,
		opts:      opts,
		lexSize:   lexSize,
	}
}

// phraseCmd runs the whole pipeline off the UI loop.
func phraseCmd(lex anagrammer.Lexicon, message string, opts phraser.Options) tea.Cmd {
	return func() tea.Msg {
		results, err := phraser.Phrase(lex, strings.Fields(message), opts)
		if err != nil {
			return phrasedMsg{message: message, err: err}
		}
		presenter.Sort(results)
		lines := make([]string, len(results))
		for i := range results {
			lines[i] = presenter.Line(results[i])
		}
		return phrasedMsg{message: message, lines: lines}
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.results.Width = msg.Width
		m.results.Height = max(msg.Height-chromeHeight, 1)
		return m, nil

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit

		case tea.KeyEnter:
			message := strings.TrimSpace(m.textInput.Value())
			if m.busy || message == "" {
				return m, nil
			}
			m.busy = true
			m.err = nil
			return m, phraseCmd(m.lex, message, m.opts)

		case tea.KeyPgUp, tea.KeyPgDown, tea.KeyUp, tea.KeyDown:
			m.results, cmd = m.results.Update(msg)
			return m, cmd
		}

	case phrasedMsg:
		m.busy = false
		m.message = msg.message
		m.err = msg.err
		m.lines = msg.lines
		m.results.SetContent(strings.Join(msg.lines, "\n"))
		m.results.GotoTop()
		m.textInput.Reset()
		return m, nil
	}

	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) status() string {
	switch {
	case m.busy:
		return statusStyle.Render("phrasing...")
	case m.err != nil:
		return errorStyle.Render(m.err.Error())
	case m.message == "":
		return statusStyle.Render("Type a message and hit enter.")
	}
	return statusStyle.Render(fmt.Sprintf("%q: %s phrases", m.message,
		humanize.Comma(int64(len(m.lines)))))
}

func (m Model) View() string {
	header := headerStyle.Render(fmt.Sprintf("phraser (%s dictionary words)",
		humanize.Comma(int64(m.lexSize))))
	footer := footerStyle.Render("enter: phrase   pgup/pgdn: scroll   esc: quit")
	return fmt.Sprintf("%s\n\n%s\n%s\n\n%s\n%s\n", header, m.textInput.View(),
		m.status(), m.results.View(), footer)
}

// Lines returns the ranked phrases currently shown.
func (m Model) Lines() []string {
	return m.lines
}

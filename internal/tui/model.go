// SPDX-License-Identifier: MIT

// Package tui is the interactive front end: a scrolling transcript of editor
// commands above a one-line prompt.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/pathboard/core"
	"github.com/katalvlaran/pathboard/internal/config"
	"github.com/katalvlaran/pathboard/internal/editor"
)

const (
	defaultWidth    = 100
	viewportHeight  = 20
	reservedHeight  = 6 // header, status, prompt, footer
	minViewportRows = 3
)

// Styles
var (
	subtleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true)

	viewportStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			PaddingRight(2)
)

// Model is the bubbletea model around one editor.Session.
type Model struct {
	session    *editor.Session
	input      textinput.Model
	viewport   viewport.Model
	transcript []string
	history    int
	prompt     string
	quitting   bool
}

// New returns a model editing through s. cfg.History bounds the transcript;
// zero keeps everything.
func New(s *editor.Session, cfg config.EditorConfig) Model {
	in := textinput.New()
	in.Prompt = promptStyle.Render(cfg.Prompt)
	in.Placeholder = "help"
	in.Focus()

	vp := viewport.New(defaultWidth, viewportHeight)
	vp.Style = viewportStyle

	m := Model{
		session:  s,
		input:    in,
		viewport: vp,
		history:  cfg.History,
		prompt:   cfg.Prompt,
	}
	m.appendLines(subtleStyle.Render("type help for commands, ctrl+c to quit"))

	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			m.quitting = true
			return m, tea.Quit
		case tea.KeyEnter:
			line := strings.TrimSpace(m.input.Value())
			m.input.Reset()
			if line == "quit" || line == "exit" {
				m.quitting = true
				return m, tea.Quit
			}
			m.execute(line)
			return m, nil
		case tea.KeyPgUp, tea.KeyPgDown:
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.viewport.Width = msg.Width
		m.viewport.Height = max(msg.Height-reservedHeight, minViewportRows)
		m.viewport.GotoBottom()
	}

	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *Model) execute(line string) {
	if line == "" {
		return
	}
	echo := promptStyle.Render(m.prompt) + line
	out, err := m.session.Execute(line)
	switch {
	case err != nil:
		m.appendLines(echo, errorStyle.Render("error: "+err.Error()))
	case out != "":
		m.appendLines(echo, out)
	default:
		m.appendLines(echo)
	}
}

func (m *Model) appendLines(lines ...string) {
	for _, l := range lines {
		m.transcript = append(m.transcript, strings.Split(l, "\n")...)
	}
	if m.history > 0 && len(m.transcript) > m.history {
		m.transcript = m.transcript[len(m.transcript)-m.history:]
	}
	m.viewport.SetContent(strings.Join(m.transcript, "\n"))
	m.viewport.GotoBottom()
}

// Transcript returns the lines currently kept, styling included.
func (m Model) Transcript() []string {
	return append([]string(nil), m.transcript...)
}

// View renders header, transcript, prompt and status.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := headerStyle.Render("pathboard")
	footer := subtleStyle.Render("pgup/pgdn scroll • esc quit")

	return lipgloss.JoinVertical(lipgloss.Left, header, m.viewport.View(), m.input.View(), m.status(), footer)
}

func (m Model) status() string {
	st := m.session.Graph().Stats()
	designated := func(id core.NodeID) string {
		if id == core.NoNode {
			return "-"
		}
		return fmt.Sprint(id)
	}
	text := fmt.Sprintf("%d nodes • %d edges • source %s • dest %s",
		st.Nodes, st.Edges, designated(st.Source), designated(st.Destination))
	if st.Solved {
		return okStyle.Render(text + " • solved")
	}

	return subtleStyle.Render(text + " • not solved")
}

// Run starts the full-screen program and blocks until the user quits.
func Run(s *editor.Session, cfg config.EditorConfig) error {
	p := tea.NewProgram(New(s, cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}

// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package editorview

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/slashdoc/internal/editor"
	"github.com/jeranaias/slashdoc/internal/feed"
	"github.com/jeranaias/slashdoc/internal/mention"
	"github.com/jeranaias/slashdoc/internal/ui/styles"
	"github.com/jeranaias/slashdoc/internal/util"
)

// noDismiss marks that no suggestion session is dismissed.
const noDismiss = -1

// =============================================================================
// MESSAGES
// =============================================================================

// SavedMsg reports the result of writing the document to disk.
type SavedMsg struct {
	Path string
	Err  error
}

// =============================================================================
// MODEL
// =============================================================================

// Model is the bubbletea model of the editor view.
type Model struct {
	ed       *editor.Editor
	theme    *styles.Theme
	keys     KeyMap
	help     help.Model
	viewport viewport.Model

	path string

	width  int
	height int

	// selected is the highlighted suggestion
	selected int

	// dismissed is the start of the session hidden with Esc
	dismissed int

	showMarkdown bool
	status       string
	statusErr    bool
}

// Option configures a Model.
type Option func(*Model)

// WithPath sets the file the document is saved to.
func WithPath(path string) Option {
	return func(m *Model) { m.path = path }
}

// WithTheme overrides the theme built from the editor config.
func WithTheme(t *styles.Theme) Option {
	return func(m *Model) { m.theme = t }
}

// New creates an editor view over ed.
func New(ed *editor.Editor, opts ...Option) Model {
	cfg := ed.Config()
	m := Model{
		ed:           ed,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		viewport:     viewport.New(80, 20),
		width:        80,
		height:       24,
		dismissed:    noDismiss,
		showMarkdown: cfg.UI.ShowMarkdown,
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.theme == nil {
		m.theme = styles.NewThemeFor(cfg.UI.Theme)
	}
	m.refresh()
	return m
}

// Editor returns the underlying editor.
func (m Model) Editor() *editor.Editor { return m.ed }

// Selected returns the index of the highlighted suggestion.
func (m Model) Selected() int { return m.selected }

// Status returns the last status line message.
func (m Model) Status() string { return m.status }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleResize(msg), nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case SavedMsg:
		if msg.Err != nil {
			m.setError(msg.Err)
		} else {
			m.setStatus(fmt.Sprintf("saved %s", msg.Path))
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleResize(msg tea.WindowSizeMsg) Model {
	m.width = msg.Width
	m.height = msg.Height
	m.theme.SetSize(msg.Width, msg.Height)
	m.help.Width = msg.Width
	m.refresh()
	return m
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.refresh()
		return m, nil
	case key.Matches(msg, m.keys.Save):
		return m, m.save()
	}

	if _, items, ok := m.suggestions(); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.selected = (m.selected - 1 + len(items)) % len(items)
			return m, nil
		case key.Matches(msg, m.keys.Down):
			m.selected = (m.selected + 1) % len(items)
			return m, nil
		case key.Matches(msg, m.keys.Dismiss):
			match, _ := m.activeMatch()
			m.dismissed = match.Range.Start
			return m, nil
		case key.Matches(msg, m.keys.Accept):
			m.apply(m.ed.Accept(items[m.selected]))
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, m.keys.Newline):
		m.apply(m.ed.Type("\n"))
	case key.Matches(msg, m.keys.Left):
		m.apply(m.ed.MoveCursor(-1))
	case key.Matches(msg, m.keys.Right):
		m.apply(m.ed.MoveCursor(1))
	case key.Matches(msg, m.keys.Home):
		m.apply(m.ed.SetCursor(0))
	case key.Matches(msg, m.keys.End):
		m.apply(m.ed.SetCursor(m.ed.Model().Document().Len()))
	case key.Matches(msg, m.keys.Backspace):
		m.apply(m.ed.Backspace())
	case key.Matches(msg, m.keys.Delete):
		m.apply(m.ed.Delete())
	case key.Matches(msg, m.keys.Undo):
		m.apply(m.ed.Undo())
	case key.Matches(msg, m.keys.Redo):
		m.apply(m.ed.Redo())
	case key.Matches(msg, m.keys.Bold):
		m.apply(m.ed.Execute("bold", nil))
	case key.Matches(msg, m.keys.Underline):
		m.apply(m.ed.Execute("underline", nil))
	case key.Matches(msg, m.keys.Source):
		m.apply(m.ed.Execute(editor.SourceEditingCommand, nil))
	case key.Matches(msg, m.keys.Markdown):
		m.showMarkdown = !m.showMarkdown
		m.refresh()
	case msg.Type == tea.KeySpace:
		m.apply(m.ed.Type(" "))
	case msg.Type == tea.KeyRunes:
		m.apply(m.ed.Type(string(msg.Runes)))
	}
	return m, nil
}

// apply records err in the status line and refreshes the view.
func (m *Model) apply(err error) {
	if err != nil {
		m.setError(err)
	} else {
		m.status = ""
		m.statusErr = false
	}
	m.refresh()
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.statusErr = false
}

func (m *Model) setError(err error) {
	m.status = err.Error()
	m.statusErr = true
}

// save writes the markdown of the document to the configured path.
func (m Model) save() tea.Cmd {
	if m.path == "" {
		return func() tea.Msg {
			return SavedMsg{Err: fmt.Errorf("no file to save to")}
		}
	}
	path, data := m.path, m.ed.Markdown()
	return func() tea.Msg {
		return SavedMsg{Path: path, Err: util.AtomicWriteFile(path, []byte(data), 0644)}
	}
}

// =============================================================================
// SUGGESTIONS
// =============================================================================

func (m Model) activeMatch() (mention.Match, bool) {
	match, _, ok := m.ed.Suggestions()
	return match, ok
}

// suggestions returns the items of the visible dropdown.
func (m Model) suggestions() (mention.Match, []feed.Item, bool) {
	match, items, ok := m.ed.Suggestions()
	if !ok || len(items) == 0 || match.Range.Start == m.dismissed {
		return match, nil, false
	}
	return match, items, true
}

// refresh resets the dropdown state after a change and redraws the
// document viewport.
func (m *Model) refresh() {
	match, items, ok := m.ed.Suggestions()
	if !ok || match.Range.Start != m.dismissed {
		m.dismissed = noDismiss
	}
	if !ok || m.selected >= len(items) {
		m.selected = 0
	}

	m.viewport.Width = m.width
	m.viewport.Height = m.documentHeight()
	m.viewport.SetContent(m.renderDocument())
}

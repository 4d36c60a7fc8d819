// Package bubbletea provides a terminal UI for browsing a poem's revision
// history using the Bubble Tea framework.
package bubbletea

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stevenrichter16/mypoem"
)

// Model is the Bubble Tea model for browsing a revision history. It shows
// one adjacent revision pair at a time as a word-level diff; h/l step to
// earlier/later pairs.
type Model struct {
	revisions []mypoem.Revision
	differ    mypoem.Differ
	styles    mypoem.Styles
	clipboard mypoem.Clipboard

	keymap   KeyMap
	viewport viewport.Model
	ready    bool
	width    int

	// pair is the index of the newer revision of the displayed pair.
	// Zero means a single-revision history with nothing to compare.
	pair   int
	status string
}

// NewModel creates a new Model over the given history.
func NewModel(revisions []mypoem.Revision, differ mypoem.Differ, theme mypoem.Theme, clipboard mypoem.Clipboard) Model {
	m := Model{
		revisions: revisions,
		differ:    differ,
		styles:    theme.Styles(),
		clipboard: clipboard,
		keymap:    DefaultKeyMap(),
	}
	if len(revisions) > 1 {
		m.pair = len(revisions) - 1 // start at the latest change
	}
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		footerHeight := 1
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-footerHeight)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - footerHeight
		}
		m.viewport.SetContent(m.renderContent())
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keymap.PrevRevision):
		if m.pair > 1 {
			m.pair--
			m.status = ""
			m.viewport.SetContent(m.renderContent())
			m.viewport.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keymap.NextRevision):
		if m.pair > 0 && m.pair < len(m.revisions)-1 {
			m.pair++
			m.status = ""
			m.viewport.SetContent(m.renderContent())
			m.viewport.GotoTop()
		}
		return m, nil

	case key.Matches(msg, m.keymap.Copy):
		if m.clipboard != nil && len(m.revisions) > 0 {
			if err := m.clipboard.Copy(m.currentRevision().Content); err != nil {
				m.status = "copy failed"
			} else {
				m.status = "copied"
			}
		}
		return m, nil

	case key.Matches(msg, m.keymap.GotoTop):
		m.viewport.GotoTop()
		return m, nil

	case key.Matches(msg, m.keymap.GotoBottom):
		m.viewport.GotoBottom()
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageUp):
		m.viewport.HalfPageUp()
		return m, nil

	case key.Matches(msg, m.keymap.HalfPageDown):
		m.viewport.HalfPageDown()
		return m, nil
	}

	// Up/Down and mouse wheel are handled by the viewport itself.
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// currentRevision returns the newer revision of the displayed pair.
func (m Model) currentRevision() mypoem.Revision {
	return m.revisions[m.pair]
}

func (m Model) renderContent() string {
	return renderHistory(renderConfig{
		revisions: m.revisions,
		pair:      m.pair,
		differ:    m.differ,
		styles:    m.styles,
		width:     m.width,
	})
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	return m.viewport.View() + "\n" + m.footer()
}

// Compile-time interface verification.
var _ mypoem.Viewer = (*Viewer)(nil)

// Viewer implements mypoem.Viewer using a Bubble Tea TUI.
type Viewer struct {
	differ    mypoem.Differ
	theme     mypoem.Theme
	clipboard mypoem.Clipboard
}

// NewViewer creates a new Viewer. The clipboard may be nil, in which case
// the copy binding is a no-op.
func NewViewer(differ mypoem.Differ, theme mypoem.Theme, clipboard mypoem.Clipboard) *Viewer {
	return &Viewer{differ: differ, theme: theme, clipboard: clipboard}
}

// View displays the revision history and blocks until the user exits.
func (v *Viewer) View(_ context.Context, revisions []mypoem.Revision) error {
	m := NewModel(revisions, v.differ, v.theme, v.clipboard)
	p := tea.NewProgram(m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	_, err := p.Run()
	return err
}

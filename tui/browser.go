// ABOUTME: Top-level Bubble Tea model for browsing the navigation tree and its page registry.
// ABOUTME: Composes the tree, detail, and status bar panels and routes key bindings between them.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vmbexpos/vmb/nav"
)

// KeyMap holds the browser's key bindings.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Top      key.Binding
	Bottom   key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns vim-style bindings alongside the arrow keys.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f", " "), key.WithHelp("pgdn", "page down")),
		Top:      key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		Bottom:   key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
	}
}

// Browser is the navigation browser model.
type Browser struct {
	tree     TreePanelModel
	detail   DetailPanelModel
	status   StatusBarModel
	keys     KeyMap
	rows     []Row
	registry *nav.Registry
	width    int
	height   int
	quitting bool
}

// NewBrowser creates a browser over forest. dedicated reports slugs with
// their own page handler; it may be nil.
func NewBrowser(forest []nav.Node, registry *nav.Registry, dedicated func(string) bool) Browser {
	rows := BuildRows(forest, registry, dedicated)
	b := Browser{
		tree:     NewTreePanelModel(rows),
		detail:   NewDetailPanelModel(),
		status:   NewStatusBarModel(len(rows), registry.Len()),
		keys:     DefaultKeyMap(),
		rows:     rows,
		registry: registry,
	}
	b.detail.SetRow(b.tree.Selected())
	return b
}

// Init implements tea.Model.
func (b Browser) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (b Browser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width = msg.Width
		b.height = msg.Height
		treeWidth := msg.Width / 2
		bodyHeight := max(msg.Height-1, 3)
		b.tree.SetSize(treeWidth, bodyHeight)
		b.detail.SetSize(msg.Width-treeWidth-2, bodyHeight-2)
		b.status.SetWidth(msg.Width)
		return b, nil

	case tea.KeyMsg:
		page := max(b.tree.viewport.Height, 1)
		switch {
		case key.Matches(msg, b.keys.Quit):
			b.quitting = true
			return b, tea.Quit
		case key.Matches(msg, b.keys.Up):
			b.tree.Move(-1)
		case key.Matches(msg, b.keys.Down):
			b.tree.Move(1)
		case key.Matches(msg, b.keys.PageUp):
			b.tree.Move(-page)
		case key.Matches(msg, b.keys.PageDown):
			b.tree.Move(page)
		case key.Matches(msg, b.keys.Top):
			b.tree.Move(-len(b.rows))
		case key.Matches(msg, b.keys.Bottom):
			b.tree.Move(len(b.rows))
		}
		b.detail.SetRow(b.tree.Selected())
		b.status.SetPosition(b.tree.Cursor())
	}
	return b, nil
}

// View implements tea.Model.
func (b Browser) View() string {
	if b.quitting {
		return ""
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top, b.tree.View(), b.detail.View())
	return lipgloss.JoinVertical(lipgloss.Left, body, b.status.View())
}

// ABOUTME: Single-line status bar for the bottom of the navigation browser.
// ABOUTME: Shows the cursor position among menu entries, the registered page count, and key hints.
package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// StatusBarModel displays browser position in a single line.
type StatusBarModel struct {
	entries  int
	pages    int
	position int
	width    int
}

// NewStatusBarModel creates a status bar for a menu of entries rows backed
// by a registry of pages slugs.
func NewStatusBarModel(entries, pages int) StatusBarModel {
	return StatusBarModel{entries: entries, pages: pages}
}

// SetPosition records the zero-based cursor index.
func (m *StatusBarModel) SetPosition(i int) {
	m.position = i
}

// SetWidth sets the bar width for rendering.
func (m *StatusBarModel) SetWidth(w int) {
	m.width = w
}

// View renders the status bar as a single styled line.
func (m StatusBarModel) View() string {
	pos := m.position + 1
	if m.entries == 0 {
		pos = 0
	}
	content := fmt.Sprintf("%d/%d entries  %d pages registered  ↑/↓ move  q quit",
		pos, m.entries, m.pages)

	if m.width <= 0 {
		return StatusBarStyle.Render(content)
	}
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Left, StatusBarStyle.Width(m.width).Render(content))
}

// ABOUTME: Scrollable navigation tree panel built on the bubbles viewport component.
// ABOUTME: Draws one indented row per menu entry with a kind marker and keeps the cursor in view.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
)

// TreePanelModel lists navigation rows and tracks the cursor.
type TreePanelModel struct {
	rows     []Row
	cursor   int
	viewport viewport.Model
	width    int
	height   int
}

// NewTreePanelModel creates a tree panel over rows with the cursor on the first row.
func NewTreePanelModel(rows []Row) TreePanelModel {
	m := TreePanelModel{
		rows:     rows,
		viewport: viewport.New(40, 10),
	}
	m.sync()
	return m
}

// Cursor returns the index of the selected row.
func (m TreePanelModel) Cursor() int {
	return m.cursor
}

// Selected returns the selected row, or nil if there are no rows.
func (m TreePanelModel) Selected() *Row {
	if len(m.rows) == 0 {
		return nil
	}
	r := m.rows[m.cursor]
	return &r
}

// Move shifts the cursor by delta, clamped to the row range.
func (m *TreePanelModel) Move(delta int) {
	if len(m.rows) == 0 {
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.sync()
}

// SetSize sets the panel dimensions and resizes the viewport inside the border.
func (m *TreePanelModel) SetSize(w, h int) {
	m.width = w
	m.height = h
	m.viewport.Width = max(w-2, 1)
	m.viewport.Height = max(h-3, 1)
	m.sync()
}

// sync rebuilds the viewport content and scrolls so the cursor is visible.
func (m *TreePanelModel) sync() {
	lines := make([]string, len(m.rows))
	for i, r := range m.rows {
		line := fmt.Sprintf("%s%s %s", strings.Repeat("  ", r.Depth), r.Kind.Icon(), r.Label)
		if i == m.cursor {
			lines[i] = SelectedStyle.Render(line)
		} else {
			lines[i] = StyleForKind(r.Kind).Render(line)
		}
	}
	m.viewport.SetContent(strings.Join(lines, "\n"))

	top := m.viewport.YOffset
	bottom := top + m.viewport.Height - 1
	switch {
	case m.cursor < top:
		m.viewport.SetYOffset(m.cursor)
	case m.cursor > bottom:
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}

// View renders the panel.
func (m TreePanelModel) View() string {
	content := TitleStyle.Render("NAVIGATION") + "\n" + m.viewport.View()
	style := BorderStyle
	if m.width > 0 {
		style = style.Width(m.width - 2)
	}
	return style.Render(content)
}

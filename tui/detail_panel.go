// ABOUTME: Panel showing how the selected navigation entry is served: slug, title, route, and asset stub.
package tui

import (
	"strings"

	"github.com/vmbexpos/vmb/nav"
)

// DetailPanelModel displays the selected row.
type DetailPanelModel struct {
	row    *Row
	width  int
	height int
}

// NewDetailPanelModel creates a DetailPanelModel with nothing selected.
func NewDetailPanelModel() DetailPanelModel {
	return DetailPanelModel{}
}

// SetRow updates the panel with the selected row.
func (m *DetailPanelModel) SetRow(r *Row) {
	m.row = r
}

// SetSize sets the available dimensions.
func (m *DetailPanelModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// View renders the detail panel as a string.
func (m DetailPanelModel) View() string {
	title := TitleStyle.Render("PAGE DETAIL")

	var content string
	switch {
	case m.row == nil:
		content = title + "\n\n" + ValueStyle.Render("Nothing selected")
	case m.row.Kind == KindGrouping:
		content = strings.Join([]string{
			title,
			row("Label:", m.row.Label),
			row("URL:", displayURL(m.row.URL)),
			LabelStyle.Render("Kind:") + StyleForKind(m.row.Kind).Render(m.row.Kind.String()),
		}, "\n")
	default:
		r := m.row
		lines := []string{
			title,
			row("Label:", r.Label),
			row("Slug:", displaySlug(r.Slug)),
			row("Title:", r.Title),
			row("Route:", nav.Route(r.Slug)),
			row("Assets:", nav.AssetStub(r.Slug)),
			LabelStyle.Render("Kind:") + StyleForKind(r.Kind).Render(r.Kind.String()),
		}
		if r.Kind == KindDuplicate {
			lines = append(lines, DuplicateStyle.Render("Slug registered earlier as \""+r.Title+"\""))
		}
		content = strings.Join(lines, "\n")
	}

	style := BorderStyle
	if m.width > 0 {
		style = style.Width(m.width)
	}
	if m.height > 0 {
		style = style.Height(m.height)
	}
	return style.Render(content)
}

// row renders a label-value pair using the standard label and value styles.
func row(label, value string) string {
	return LabelStyle.Render(label) + ValueStyle.Render(value)
}

func displaySlug(slug string) string {
	if slug == nav.HomeSlug {
		return `"" (home)`
	}
	return slug
}

func displayURL(url string) string {
	if url == "" {
		return "(none)"
	}
	return url
}

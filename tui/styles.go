// ABOUTME: Defines lipgloss styles for the navigation browser panels and page-kind markers.
// ABOUTME: Provides StyleForKind to map a PageKind to its display style.
package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Page kinds
	DedicatedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	DuplicateStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	GroupingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true)

	// Cursor row
	SelectedStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("229")).
			Bold(true)

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)

	// Detail panel labels
	LabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(10)
	ValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

// StyleForKind returns the lipgloss style used to draw a row of the given kind.
func StyleForKind(kind PageKind) lipgloss.Style {
	switch kind {
	case KindDedicated:
		return DedicatedStyle
	case KindPlaceholder:
		return PlaceholderStyle
	case KindDuplicate:
		return DuplicateStyle
	default:
		return GroupingStyle
	}
}

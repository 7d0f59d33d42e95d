// ABOUTME: Classifies navigation menu entries by how the site serves them.
// ABOUTME: Dedicated and placeholder pages own a registry slug; duplicates and groupings do not.
package tui

import "github.com/vmbexpos/vmb/nav"

// PageKind describes how a navigation entry is served.
type PageKind int

const (
	KindGrouping    PageKind = iota // "#" or empty URL; no page
	KindDedicated                   // slug has its own handler
	KindPlaceholder                 // slug served by the generic page
	KindDuplicate                   // slug already registered by an earlier entry
)

// String returns a short label for the kind.
func (k PageKind) String() string {
	switch k {
	case KindDedicated:
		return "dedicated"
	case KindPlaceholder:
		return "placeholder"
	case KindDuplicate:
		return "duplicate"
	default:
		return "not navigable"
	}
}

// Icon returns the single-character marker drawn beside a row.
func (k PageKind) Icon() string {
	switch k {
	case KindDedicated:
		return "●"
	case KindPlaceholder:
		return "○"
	case KindDuplicate:
		return "↺"
	default:
		return "·"
	}
}

// Row is one navigation entry as shown in the browser.
type Row struct {
	Label string
	URL   string
	Slug  string
	Depth int
	Kind  PageKind
	Title string // registry title for Slug; differs from Label for duplicates
}

// BuildRows flattens forest in menu order and classifies every entry against
// the registry. dedicated reports slugs that have their own page handler.
func BuildRows(forest []nav.Node, registry *nav.Registry, dedicated func(slug string) bool) []Row {
	seen := make(map[string]bool)
	var rows []Row

	nav.Walk(forest, func(n nav.Node, depth int) {
		row := Row{Label: n.Label, URL: n.URL, Depth: depth}
		if n.Navigable() {
			row.Slug = n.Slug()
			row.Title, _ = registry.Lookup(row.Slug)
			switch {
			case seen[row.Slug]:
				row.Kind = KindDuplicate
			case dedicated != nil && dedicated(row.Slug):
				row.Kind = KindDedicated
			default:
				row.Kind = KindPlaceholder
			}
			seen[row.Slug] = true
		}
		rows = append(rows, row)
	})
	return rows
}

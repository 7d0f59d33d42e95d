// ABOUTME: Prints the navigation registry as a styled route table for the "vmb routes" command.
package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/vmbexpos/vmb/nav"
	"github.com/vmbexpos/vmb/tui"
	"github.com/vmbexpos/vmb/web"
)

var (
	routeCol = lipgloss.NewStyle().Width(24)
	titleCol = lipgloss.NewStyle().Width(28)
	kindCol  = lipgloss.NewStyle().Width(13)
)

// printRoutes writes one line per registered page: route, title, handler kind, asset stub.
func printRoutes(w io.Writer, registry *nav.Registry) {
	header := routeCol.Render("ROUTE") + titleCol.Render("TITLE") + kindCol.Render("HANDLER") + "ASSETS"
	fmt.Fprintln(w, tui.TitleStyle.Render(header))

	for _, p := range registry.Pages() {
		kind := tui.KindPlaceholder
		if web.HasDedicatedHandler(p.Slug) {
			kind = tui.KindDedicated
		}
		line := routeCol.Render(nav.Route(p.Slug)) +
			titleCol.Render(p.Title) +
			kindCol.Inherit(tui.StyleForKind(kind)).Render(kind.String()) +
			nav.AssetStub(p.Slug)
		fmt.Fprintln(w, line)
	}

	fmt.Fprintf(w, "\n%d pages\n", registry.Len())
}

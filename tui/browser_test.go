// ABOUTME: Tests for the navigation browser: row classification, cursor movement, key handling, and views.
package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vmbexpos/vmb/nav"
)

func testForest() []nav.Node {
	return []nav.Node{
		{Label: "Home", URL: "/"},
		{Label: "Programs", URL: "/programs/", Children: []nav.Node{
			{Label: "13U", URL: "/13u/", Children: []nav.Node{
				{Label: "About 13U", URL: "/13u/"},
				{Label: "13U A", URL: "/13u/13u-a/"},
			}},
		}},
		{Label: "Teams", URL: "#"},
	}
}

func dedicated(slug string) bool {
	return slug == "" || slug == "programs"
}

func testBrowser() Browser {
	forest := testForest()
	return NewBrowser(forest, nav.Build(forest), dedicated)
}

func TestBuildRows(t *testing.T) {
	forest := testForest()
	rows := BuildRows(forest, nav.Build(forest), dedicated)

	want := []struct {
		label string
		depth int
		kind  PageKind
		title string
	}{
		{"Home", 0, KindDedicated, "Home"},
		{"Programs", 0, KindDedicated, "Programs"},
		{"13U", 1, KindPlaceholder, "13U"},
		{"About 13U", 2, KindDuplicate, "13U"},
		{"13U A", 2, KindPlaceholder, "13U A"},
		{"Teams", 0, KindGrouping, ""},
	}
	if len(rows) != len(want) {
		t.Fatalf("len = %d, want %d", len(rows), len(want))
	}
	for i, w := range want {
		r := rows[i]
		if r.Label != w.label || r.Depth != w.depth || r.Kind != w.kind || r.Title != w.title {
			t.Errorf("row %d = {%s %d %s %q}, want {%s %d %s %q}",
				i, r.Label, r.Depth, r.Kind, r.Title, w.label, w.depth, w.kind, w.title)
		}
	}
}

func TestBrowserCursorMovement(t *testing.T) {
	b := testBrowser()

	if b.tree.Cursor() != 0 {
		t.Fatalf("initial cursor = %d", b.tree.Cursor())
	}

	m, _ := b.Update(tea.KeyMsg{Type: tea.KeyDown})
	b = m.(Browser)
	m, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	b = m.(Browser)
	if b.tree.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", b.tree.Cursor())
	}
	if b.detail.row == nil || b.detail.row.Label != "13U" {
		t.Errorf("detail row = %+v, want 13U", b.detail.row)
	}

	m, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	b = m.(Browser)
	if b.tree.Cursor() != 5 {
		t.Errorf("cursor after G = %d, want 5", b.tree.Cursor())
	}

	m, _ = b.Update(tea.KeyMsg{Type: tea.KeyDown})
	b = m.(Browser)
	if b.tree.Cursor() != 5 {
		t.Errorf("cursor should clamp at last row, got %d", b.tree.Cursor())
	}

	m, _ = b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("g")})
	b = m.(Browser)
	if b.tree.Cursor() != 0 {
		t.Errorf("cursor after g = %d, want 0", b.tree.Cursor())
	}
}

func TestBrowserQuit(t *testing.T) {
	b := testBrowser()

	m, cmd := b.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.QuitMsg")
	}
	if m.(Browser).View() != "" {
		t.Error("expected empty view after quit")
	}
}

func TestBrowserWindowSize(t *testing.T) {
	b := testBrowser()

	m, _ := b.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	b = m.(Browser)
	if b.width != 100 || b.height != 30 {
		t.Errorf("size = %dx%d", b.width, b.height)
	}
	if b.tree.viewport.Height != 26 {
		t.Errorf("tree viewport height = %d, want 26", b.tree.viewport.Height)
	}
}

func TestBrowserView(t *testing.T) {
	b := testBrowser()
	m, _ := b.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	view := m.(Browser).View()

	for _, want := range []string{"NAVIGATION", "PAGE DETAIL", "Programs", "13U A", "1/6 entries", "4 pages registered"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}
}

func TestDetailPanelDuplicate(t *testing.T) {
	d := NewDetailPanelModel()
	d.SetRow(&Row{Label: "About 13U", URL: "/13u/", Slug: "13u", Kind: KindDuplicate, Title: "13U"})

	view := d.View()
	for _, want := range []string{"About 13U", "/13u/", "duplicate", `registered earlier as "13U"`} {
		if !strings.Contains(view, want) {
			t.Errorf("expected detail view to contain %q", want)
		}
	}
}

func TestDetailPanelGrouping(t *testing.T) {
	d := NewDetailPanelModel()
	d.SetRow(&Row{Label: "Teams", URL: "#", Kind: KindGrouping})

	view := d.View()
	if !strings.Contains(view, "not navigable") {
		t.Error("expected grouping kind label")
	}
	if strings.Contains(view, "Route:") {
		t.Error("grouping rows have no route")
	}
}

func TestDetailPanelEmpty(t *testing.T) {
	if !strings.Contains(NewDetailPanelModel().View(), "Nothing selected") {
		t.Error("expected empty state")
	}
}

func TestTreePanelKeepsCursorVisible(t *testing.T) {
	var rows []Row
	for i := 0; i < 50; i++ {
		rows = append(rows, Row{Label: "row", Kind: KindPlaceholder})
	}
	p := NewTreePanelModel(rows)
	p.SetSize(40, 13) // viewport height 10

	p.Move(25)
	if p.viewport.YOffset != 16 {
		t.Errorf("YOffset = %d, want 16", p.viewport.YOffset)
	}
	p.Move(-20)
	if p.viewport.YOffset != 5 {
		t.Errorf("YOffset = %d, want 5", p.viewport.YOffset)
	}
}

func TestTreePanelEmpty(t *testing.T) {
	p := NewTreePanelModel(nil)
	p.Move(1)
	if p.Selected() != nil {
		t.Error("expected nil selection")
	}
}

func TestStyleForKind(t *testing.T) {
	tests := []struct {
		kind PageKind
		want string
	}{
		{KindDedicated, DedicatedStyle.Render("x")},
		{KindPlaceholder, PlaceholderStyle.Render("x")},
		{KindDuplicate, DuplicateStyle.Render("x")},
		{KindGrouping, GroupingStyle.Render("x")},
	}
	for _, tt := range tests {
		if got := StyleForKind(tt.kind).Render("x"); got != tt.want {
			t.Errorf("StyleForKind(%s) rendered %q, want %q", tt.kind, got, tt.want)
		}
	}
}

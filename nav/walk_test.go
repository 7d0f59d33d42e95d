// ABOUTME: Tests for pre-order navigation traversal and flattening with depth.
package nav

import "testing"

func TestFlattenPreOrderWithDepth(t *testing.T) {
	forest := []Node{
		{Label: "Home", URL: "/"},
		{Label: "Programs", URL: "/programs/", Children: []Node{
			{Label: "15U", URL: "/15u/", Children: []Node{
				{Label: "15U AA", URL: "/15u/15u-aa/"},
			}},
		}},
	}

	entries := Flatten(forest)

	want := []struct {
		label string
		depth int
	}{
		{"Home", 0},
		{"Programs", 0},
		{"15U", 1},
		{"15U AA", 2},
	}
	if len(entries) != len(want) {
		t.Fatalf("len = %d, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].Node.Label != w.label || entries[i].Depth != w.depth {
			t.Errorf("entry %d = (%q, %d), want (%q, %d)",
				i, entries[i].Node.Label, entries[i].Depth, w.label, w.depth)
		}
	}
}

func TestNodeNavigable(t *testing.T) {
	cases := map[string]bool{"": false, "#": false, "/": true, "/a/": true}
	for url, want := range cases {
		if got := (Node{URL: url}).Navigable(); got != want {
			t.Errorf("Navigable(%q) = %v, want %v", url, got, want)
		}
	}
}

func TestWalkSelfReferencingChildren(t *testing.T) {
	forest := make([]Node, 2)
	forest[0] = Node{Label: "Loop", URL: "/loop/"}
	forest[1] = Node{Label: "After", URL: "/after/"}
	forest[0].Children = forest

	entries := Flatten(forest)
	// Loop, then After as Loop's child, then After as a root.
	if len(entries) != 3 {
		t.Fatalf("len = %d, want 3", len(entries))
	}

	r := Build(forest)
	want := []string{"", "loop", "after"}
	got := r.Slugs()
	if len(got) != len(want) {
		t.Fatalf("Slugs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Slugs()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

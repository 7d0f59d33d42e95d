// ABOUTME: Pre-order traversal helper over a navigation forest with depth tracking.
// ABOUTME: Used by the terminal browser and sitemap to list menu entries in menu order.
package nav

// Entry is a node visited during Walk along with its nesting depth.
type Entry struct {
	Node  Node
	Depth int
}

// Walk visits every node in pre-order, calling fn with the node and its
// depth (0 for roots). A node reachable from itself through a shared
// Children slice is visited once on each path and not descended into again.
func Walk(forest []Node, fn func(n Node, depth int)) {
	walkDepth(forest, 0, make(map[*Node]bool), fn)
}

func walkDepth(nodes []Node, depth int, ancestors map[*Node]bool, fn func(Node, int)) {
	for i := range nodes {
		n := &nodes[i]
		if ancestors[n] {
			continue
		}
		fn(*n, depth)
		ancestors[n] = true
		walkDepth(n.Children, depth+1, ancestors, fn)
		delete(ancestors, n)
	}
}

// Flatten returns every node of the forest in pre-order.
func Flatten(forest []Node) []Entry {
	var out []Entry
	Walk(forest, func(n Node, depth int) {
		out = append(out, Entry{Node: n, Depth: depth})
	})
	return out
}

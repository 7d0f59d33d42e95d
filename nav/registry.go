// ABOUTME: Flattens the navigation menu tree into an ordered slug-to-title page registry.
// ABOUTME: First occurrence of a slug in pre-order wins; "#" and empty URLs are grouping-only nodes.
package nav

import (
	"errors"
	"fmt"
	"strings"
)

// HomeSlug is the reserved slug for the site root.
const HomeSlug = ""

// HomeTitle is the title registered for HomeSlug.
const HomeTitle = "Home"

// DefaultTitle is registered for a navigable node with no label.
const DefaultTitle = "Page"

// placeholderURL marks a grouping node that has no page of its own.
const placeholderURL = "#"

// ErrUnknownSlug is returned when a slug has no registry entry.
var ErrUnknownSlug = errors.New("unknown slug")

// UnknownSlugError reports the slug that failed a registry lookup.
type UnknownSlugError struct {
	Slug string
}

func (e *UnknownSlugError) Error() string {
	return fmt.Sprintf("%s: %q", ErrUnknownSlug, e.Slug)
}

// Unwrap lets errors.Is match ErrUnknownSlug.
func (e *UnknownSlugError) Unwrap() error {
	return ErrUnknownSlug
}

// Node is one entry of the navigation menu. A forest decoded from YAML or
// JSON is always a finite tree; Walk also guards against slices that alias
// an ancestor.
type Node struct {
	Label    string `yaml:"label" json:"label"`
	URL      string `yaml:"url" json:"url"`
	Children []Node `yaml:"children,omitempty" json:"children,omitempty"`
}

// Navigable reports whether the node points at a page.
func (n Node) Navigable() bool {
	return n.URL != "" && n.URL != placeholderURL
}

// Slug returns the node's normalized slug. It is only meaningful when
// Navigable is true.
func (n Node) Slug() string {
	return NormalizeSlug(n.URL)
}

// Page is a single registry entry.
type Page struct {
	Slug  string
	Title string
}

// Registry maps page slugs to titles in discovery order. A Registry is never
// mutated after Build returns and is safe for concurrent readers.
type Registry struct {
	titles map[string]string
	order  []string
}

// Build walks the navigation forest depth-first, parent before children, and
// returns the resulting registry. The home page is always the first entry.
func Build(forest []Node) *Registry {
	r := &Registry{titles: make(map[string]string)}
	r.insert(HomeSlug, HomeTitle)
	Walk(forest, func(n Node, _ int) {
		if !n.Navigable() {
			return
		}
		title := n.Label
		if title == "" {
			title = DefaultTitle
		}
		r.insert(n.Slug(), title)
	})
	return r
}

// insert adds slug only if it is not already present.
func (r *Registry) insert(slug, title string) {
	if _, ok := r.titles[slug]; ok {
		return
	}
	r.titles[slug] = title
	r.order = append(r.order, slug)
}

// Lookup returns the title registered for slug. Unknown slugs produce an
// *UnknownSlugError.
func (r *Registry) Lookup(slug string) (string, error) {
	title, ok := r.titles[slug]
	if !ok {
		return "", &UnknownSlugError{Slug: slug}
	}
	return title, nil
}

// Contains reports whether slug is registered.
func (r *Registry) Contains(slug string) bool {
	_, ok := r.titles[slug]
	return ok
}

// Len returns the number of registered pages, home included.
func (r *Registry) Len() int {
	return len(r.order)
}

// Slugs returns the registered slugs in insertion order.
func (r *Registry) Slugs() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

// Pages returns every entry in insertion order.
func (r *Registry) Pages() []Page {
	pages := make([]Page, 0, len(r.order))
	for _, slug := range r.order {
		pages = append(pages, Page{Slug: slug, Title: r.titles[slug]})
	}
	return pages
}

// NormalizeSlug strips leading and trailing slashes from a URL path.
func NormalizeSlug(s string) string {
	return strings.Trim(s, "/")
}

// AssetStub derives the per-page image asset prefix for slug.
func AssetStub(slug string) string {
	if slug == HomeSlug {
		return "home"
	}
	return strings.ReplaceAll(slug, "/", "-")
}

// Route returns the URL path served for slug.
func Route(slug string) string {
	if slug == HomeSlug {
		return "/"
	}
	return "/" + slug + "/"
}

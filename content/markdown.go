// ABOUTME: Memoizing goldmark renderer for the markdown used in site copy.
// ABOUTME: Keys are sha256 digests of the source; content is static so entries never expire.
package content

import (
	"bytes"
	"crypto/sha256"
	"fmt"
	"html/template"
	"sync"

	"github.com/yuin/goldmark"
)

// Markdown converts markdown copy to HTML and caches the result. Raw HTML in
// the source is not rendered.
type Markdown struct {
	md      goldmark.Markdown
	entries map[string]template.HTML
	mu      sync.RWMutex
}

// NewMarkdown returns an empty Markdown renderer.
func NewMarkdown() *Markdown {
	return &Markdown{
		md:      goldmark.New(),
		entries: make(map[string]template.HTML),
	}
}

// Render converts input to HTML. On conversion failure the escaped input is
// returned and nothing is cached.
func (m *Markdown) Render(input string) template.HTML {
	key := cacheKey(input)

	m.mu.RLock()
	if out, ok := m.entries[key]; ok {
		m.mu.RUnlock()
		return out
	}
	m.mu.RUnlock()

	var buf bytes.Buffer
	if err := m.md.Convert([]byte(input), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(input))
	}
	out := template.HTML(buf.String())

	m.mu.Lock()
	m.entries[key] = out
	m.mu.Unlock()

	return out
}

// Len returns the number of cached entries.
func (m *Markdown) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}

func cacheKey(input string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(input)))
}

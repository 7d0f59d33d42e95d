// ABOUTME: TemplateEngine loads embedded HTML templates and renders them with Go's html/template.
// ABOUTME: Every page is parsed together with layout.html so the layout wraps every page.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"strings"

	"github.com/vmbexpos/vmb/content"
	"github.com/vmbexpos/vmb/nav"
)

//go:embed templates/*.html
var templateFS embed.FS

// PageData holds all data passed to templates for rendering.
type PageData struct {
	Title string

	// Shared by every page via the layout.
	Navigation  []nav.Node
	FooterText  string
	SocialLinks []content.SocialLink

	Hero         *content.Hero
	Achievements []AchievementView
	Programs     *content.ProgramsPage
	Registration *content.RegistrationPage

	// Email updates form on the registration page.
	SignupsEnabled bool
	Subscribed     bool
	SignupError    string

	// Placeholder pages.
	PageTitle     string
	PageSlug      string
	PageAssetStub string
}

// AchievementView is an achievement with its title pre-split into lines.
type AchievementView struct {
	content.Achievement
	Lines []string
}

// TemplateEngine loads and renders embedded HTML templates.
type TemplateEngine struct {
	templates map[string]*template.Template
}

// templateFuncs returns the FuncMap available to all templates.
func templateFuncs(md *content.Markdown) template.FuncMap {
	return template.FuncMap{
		"markdown":  md.Render,
		"lower":     strings.ToLower,
		"assetStub": nav.AssetStub,
	}
}

// NewTemplateEngine parses all embedded templates and returns a ready-to-use engine.
func NewTemplateEngine(md *content.Markdown) (*TemplateEngine, error) {
	funcs := templateFuncs(md)

	pages := []string{
		"index.html",
		"programs.html",
		"registration.html",
		"page.html",
		"not_found.html",
	}

	engine := &TemplateEngine{
		templates: make(map[string]*template.Template),
	}

	for _, page := range pages {
		t, err := template.New("layout.html").Funcs(funcs).ParseFS(
			templateFS,
			"templates/layout.html",
			"templates/"+page,
		)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}
		engine.templates[page] = t
	}

	return engine, nil
}

// Render executes the named template with a 200 status.
func (e *TemplateEngine) Render(w http.ResponseWriter, name string, data any) error {
	return e.RenderStatus(w, http.StatusOK, name, data)
}

// RenderStatus executes the named template into a buffer and, on success,
// writes it to w with the given status. Nothing is written on failure so the
// caller can still send an error response.
func (e *TemplateEngine) RenderStatus(w http.ResponseWriter, status int, name string, data any) error {
	var buf bytes.Buffer
	if err := e.RenderTo(&buf, name, data); err != nil {
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}

// RenderTo executes the named template with the given data and writes the
// result to an arbitrary io.Writer.
func (e *TemplateEngine) RenderTo(w io.Writer, name string, data any) error {
	t, ok := e.templates[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}

	return t.ExecuteTemplate(w, "layout.html", data)
}

// ABOUTME: Page handlers for home, programs, registration, registry placeholder pages, and 404.
// ABOUTME: All pages share the base context of navigation, footer text, and social links.
package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/vmbexpos/vmb/nav"
)

// baseData returns the context shared by every page.
func (s *Server) baseData(title string) PageData {
	return PageData{
		Title:       title,
		Navigation:  s.site.Navigation,
		FooterText:  s.site.FooterText,
		SocialLinks: s.site.SocialLinks,
	}
}

func (s *Server) render(w http.ResponseWriter, status int, name string, data PageData) {
	if err := s.templates.RenderStatus(w, status, name, data); err != nil {
		log.Printf("error rendering %s: %v", name, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

// handleHome renders the landing page with the hero and achievement highlights.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	data := s.baseData(nav.HomeTitle)
	data.Hero = &s.site.Hero
	data.Achievements = make([]AchievementView, 0, len(s.site.Achievements))
	for _, a := range s.site.Achievements {
		data.Achievements = append(data.Achievements, AchievementView{Achievement: a, Lines: a.Lines()})
	}
	s.render(w, http.StatusOK, "index.html", data)
}

// handlePrograms renders the programs overview.
func (s *Server) handlePrograms(w http.ResponseWriter, r *http.Request) {
	data := s.baseData(s.site.Programs.Title)
	data.Programs = &s.site.Programs
	s.render(w, http.StatusOK, "programs.html", data)
}

// handleRegistration renders registration info and the email updates form.
func (s *Server) handleRegistration(w http.ResponseWriter, r *http.Request) {
	data := s.baseData(s.site.Registration.Title)
	data.Registration = &s.site.Registration
	data.SignupsEnabled = s.signups != nil
	data.Subscribed = r.URL.Query().Get("subscribed") == "1"
	s.render(w, http.StatusOK, "registration.html", data)
}

// placeholderHandler returns a handler bound to slug.
func (s *Server) placeholderHandler(slug string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.servePlaceholder(w, r, slug)
	}
}

// servePlaceholder renders the generic page for a registry slug, or the 404
// page when the slug is not registered.
func (s *Server) servePlaceholder(w http.ResponseWriter, r *http.Request, slug string) {
	title, err := s.registry.Lookup(slug)
	if errors.Is(err, nav.ErrUnknownSlug) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("error looking up slug=%q: %v", slug, err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	data := s.baseData(title)
	data.PageTitle = title
	data.PageSlug = slug
	if slug == nav.HomeSlug {
		data.PageSlug = "home"
	}
	data.PageAssetStub = nav.AssetStub(slug)
	s.render(w, http.StatusOK, "page.html", data)
}

// handleNotFound renders the 404 page.
func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, http.StatusNotFound, "not_found.html", s.baseData("Page not found"))
}

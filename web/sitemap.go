// ABOUTME: Serves /sitemap.xml listing every registered page in registry order.
package web

import (
	"encoding/xml"
	"log"
	"net/http"

	"github.com/vmbexpos/vmb/nav"
)

const sitemapNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemap struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc string `xml:"loc"`
}

// buildSitemap returns a sitemap with one entry per registry page.
func buildSitemap(origin string, registry *nav.Registry) sitemap {
	sm := sitemap{XMLNS: sitemapNS}
	for _, slug := range registry.Slugs() {
		sm.URLs = append(sm.URLs, sitemapURL{Loc: origin + nav.Route(slug)})
	}
	return sm
}

func (s *Server) handleSitemap(w http.ResponseWriter, r *http.Request) {
	origin := s.baseURL
	if origin == "" {
		scheme := "http"
		if r.TLS != nil {
			scheme = "https"
		}
		origin = scheme + "://" + r.Host
	}

	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(xml.Header))
	enc := xml.NewEncoder(w)
	enc.Indent("", "  ")
	if err := enc.Encode(buildSitemap(origin, s.registry)); err != nil {
		log.Printf("error encoding sitemap: %v", err)
	}
}

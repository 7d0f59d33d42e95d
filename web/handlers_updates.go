// ABOUTME: Handlers for the registration page's "email updates" signup and unsubscribe links.
// ABOUTME: Both return 404 when the server was started without a signup store.
package web

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/vmbexpos/vmb/signup"
)

// handleSubscribe records an email-updates signup and redirects back to the
// registration page.
func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	if s.signups == nil {
		s.handleNotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 16<<10)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	sub, err := s.signups.Subscribe(r.Context(), r.PostFormValue("email"), r.PostFormValue("division"))
	if errors.Is(err, signup.ErrInvalidEmail) {
		data := s.baseData(s.site.Registration.Title)
		data.Registration = &s.site.Registration
		data.SignupsEnabled = true
		data.SignupError = "Please enter a valid email address."
		s.render(w, http.StatusBadRequest, "registration.html", data)
		return
	}
	if err != nil {
		log.Printf("error subscribing: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	s.metrics.signups.Inc()
	log.Printf("email signup id=%s division=%q", sub.ID, sub.Division)
	http.Redirect(w, r, "/"+registrationSlug+"/?subscribed=1", http.StatusSeeOther)
}

// handleUnsubscribe removes the subscription identified by the URL token.
func (s *Server) handleUnsubscribe(w http.ResponseWriter, r *http.Request) {
	if s.signups == nil {
		s.handleNotFound(w, r)
		return
	}

	err := s.signups.Unsubscribe(r.Context(), chi.URLParam(r, "token"))
	if errors.Is(err, signup.ErrNotFound) {
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("error unsubscribing: %v", err)
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("You have been unsubscribed from Vancouver Minor Baseball updates.\n"))
}

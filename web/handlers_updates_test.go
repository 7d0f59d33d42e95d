// ABOUTME: Tests for the email updates signup and unsubscribe handlers.
// ABOUTME: Uses an in-memory fake store plus one end-to-end run against the SQLite store.
package web

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/vmbexpos/vmb/signup"
)

type fakeSignups struct {
	mu     sync.Mutex
	subs   map[string]*signup.Subscription
	failOn string
}

func newFakeSignups() *fakeSignups {
	return &fakeSignups{subs: make(map[string]*signup.Subscription)}
}

func (f *fakeSignups) Subscribe(_ context.Context, email, division string) (*signup.Subscription, error) {
	if email == f.failOn {
		return nil, errors.New("disk full")
	}
	email, err := signup.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	sub := &signup.Subscription{Email: email, Division: division, Token: "tok-" + email}
	f.subs[sub.Token] = sub
	return sub, nil
}

func (f *fakeSignups) Unsubscribe(_ context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.subs[token]; !ok {
		return signup.ErrNotFound
	}
	delete(f.subs, token)
	return nil
}

func postForm(t *testing.T, h http.Handler, target string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestSubscribeRedirects(t *testing.T) {
	store := newFakeSignups()
	srv := newTestServerWith(t, ServerConfig{Signups: store})

	rec := postForm(t, srv, "/updates", url.Values{"email": {"Parent@Example.com"}, "division": {"15U"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/registration/?subscribed=1" {
		t.Errorf("Location = %q", loc)
	}
	if _, ok := store.subs["tok-parent@example.com"]; !ok {
		t.Error("expected subscription to be recorded")
	}

	page := get(t, srv, "/registration/?subscribed=1")
	if !strings.Contains(page.Body.String(), "on the list") {
		t.Error("expected confirmation notice")
	}
}

func TestSubscribeInvalidEmail(t *testing.T) {
	srv := newTestServerWith(t, ServerConfig{Signups: newFakeSignups()})

	rec := postForm(t, srv, "/updates", url.Values{"email": {"nope"}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Please enter a valid email address.") {
		t.Error("expected validation message")
	}
}

func TestSubscribeStoreError(t *testing.T) {
	store := newFakeSignups()
	store.failOn = "boom@example.com"
	srv := newTestServerWith(t, ServerConfig{Signups: store})

	rec := postForm(t, srv, "/updates", url.Values{"email": {"boom@example.com"}})
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", rec.Code)
	}
}

func TestSubscribeDisabledWithoutStore(t *testing.T) {
	srv := newTestServer(t)

	rec := postForm(t, srv, "/updates", url.Values{"email": {"a@example.com"}})
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
	if rec := get(t, srv, "/updates/unsubscribe/abc"); rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestUnsubscribe(t *testing.T) {
	store := newFakeSignups()
	srv := newTestServerWith(t, ServerConfig{Signups: store})

	postForm(t, srv, "/updates", url.Values{"email": {"a@example.com"}})

	rec := get(t, srv, "/updates/unsubscribe/tok-a@example.com")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if rec := get(t, srv, "/updates/unsubscribe/tok-a@example.com"); rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 on second unsubscribe, got %d", rec.Code)
	}
}

func TestRegistrationShowsFormWithStore(t *testing.T) {
	srv := newTestServerWith(t, ServerConfig{Signups: newFakeSignups()})

	body := get(t, srv, "/registration/").Body.String()
	if !strings.Contains(body, `action="/updates"`) {
		t.Error("expected signup form")
	}
	if !strings.Contains(body, `<option value="26U">26U</option>`) {
		t.Error("expected division options")
	}
}

func TestSubscribeWithSQLiteStore(t *testing.T) {
	store, err := signup.Open(filepath.Join(t.TempDir(), "signups.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer store.Close()

	srv := newTestServerWith(t, ServerConfig{Signups: store})

	rec := postForm(t, srv, "/updates", url.Values{"email": {"coach@example.com"}, "division": {"18U"}})
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected status 303, got %d", rec.Code)
	}

	subs, err := store.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(subs) != 1 || subs[0].Division != "18U" {
		t.Fatalf("subs = %+v", subs)
	}

	rec = get(t, srv, "/updates/unsubscribe/"+subs[0].Token)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
}

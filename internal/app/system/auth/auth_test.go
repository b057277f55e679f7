package auth_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Six5pAdes/ConGreG8-sub000/internal/app/system/auth"
	"go.uber.org/zap"
)

type staticFetcher struct {
	users map[string]*auth.SessionUser
}

func (f *staticFetcher) FetchUser(_ context.Context, userID string) *auth.SessionUser {
	return f.users[userID]
}

func newManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager("0123456789abcdef0123456789abcdef", "test-session", "", false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager: %v", err)
	}
	return sm
}

func TestSessionRoundTrip(t *testing.T) {
	sm := newManager(t)
	sm.SetUserFetcher(&staticFetcher{users: map[string]*auth.SessionUser{
		"u1": {ID: "u1", Role: "churchgoer", Email: "goer@test.com"},
	}})

	// Sign in and capture the cookie.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/session", nil)
	if err := sm.SignIn(rec, req, &auth.SessionUser{ID: "u1"}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	cookies := rec.Result().Cookies()
	if len(cookies) == 0 {
		t.Fatal("no session cookie set")
	}

	// Replay the cookie through the middleware; the fetcher supplies the
	// fresh user document.
	var got *auth.SessionUser
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, _ = auth.CurrentUser(r)
	}))

	req2 := httptest.NewRequest("GET", "/api/session", nil)
	for _, c := range cookies {
		req2.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req2)

	if got == nil {
		t.Fatal("expected session user after round trip")
	}
	if got.ID != "u1" || got.Role != "churchgoer" {
		t.Errorf("user: got %+v", got)
	}
}

func TestStaleSessionDropsUser(t *testing.T) {
	sm := newManager(t)
	sm.SetUserFetcher(&staticFetcher{users: map[string]*auth.SessionUser{}})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("POST", "/api/session", nil)
	if err := sm.SignIn(rec, req, &auth.SessionUser{ID: "deleted-user"}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}

	var found bool
	handler := sm.LoadSessionUser(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, found = auth.CurrentUser(r)
	}))

	req2 := httptest.NewRequest("GET", "/", nil)
	for _, c := range rec.Result().Cookies() {
		req2.AddCookie(c)
	}
	handler.ServeHTTP(httptest.NewRecorder(), req2)

	if found {
		t.Error("expected no user for a session whose account is gone")
	}
}

func TestRequireSignedIn(t *testing.T) {
	sm := newManager(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	sm.RequireSignedIn(next).ServeHTTP(rec, httptest.NewRequest("GET", "/api/saved", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("anonymous: got %d, want 401", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q", ct)
	}

	rec2 := httptest.NewRecorder()
	req := auth.WithTestUser(httptest.NewRequest("GET", "/api/saved", nil), &auth.SessionUser{ID: "u1"})
	sm.RequireSignedIn(next).ServeHTTP(rec2, req)
	if rec2.Code != http.StatusOK {
		t.Errorf("signed in: got %d, want 200", rec2.Code)
	}
}

func TestSignOutClearsSession(t *testing.T) {
	sm := newManager(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("DELETE", "/api/session", nil)
	if err := sm.SignOut(rec, req); err != nil {
		t.Fatalf("SignOut: %v", err)
	}

	var expired bool
	for _, c := range rec.Result().Cookies() {
		if c.MaxAge < 0 {
			expired = true
		}
	}
	if !expired {
		t.Error("expected an expiring session cookie")
	}
}

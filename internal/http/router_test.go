package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"gifttrack/internal/config"
	"gifttrack/internal/session"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	gate, err := session.NewGate("test-secret-at-least-32-characters!!", "vanoce", false)
	if err != nil {
		t.Fatal(err)
	}
	// No DB: these tests only exercise routes in front of the store.
	return NewRouter(config.Config{HTTPAddr: ":0"}, nil, gate)
}

func sessionCookie(res *http.Response) *http.Cookie {
	for _, c := range res.Cookies() {
		if c.Name == session.CookieName {
			return c
		}
	}
	return nil
}

func TestLoginSetsSessionCookie(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"vanoce"}`))
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("login = %d, want 200 (body %s)", rec.Code, rec.Body.String())
	}
	c := sessionCookie(rec.Result())
	if c == nil || c.Value == "" {
		t.Fatal("login must set the session cookie")
	}
	if !c.HttpOnly {
		t.Error("session cookie must be httpOnly")
	}
}

func TestLoginWrongPasswordNoCookie(t *testing.T) {
	r := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"spatne"}`))
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("login = %d, want 401", rec.Code)
	}
	if sessionCookie(rec.Result()) != nil {
		t.Error("failed login must not set a cookie")
	}
}

func TestProtectedRouteRedirectsToLogin(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/people", "/gifts", "/gifts/abc"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusFound || rec.Header().Get("Location") != session.LoginPath {
			t.Errorf("%s: got %d %q, want 302 to %s", path, rec.Code, rec.Header().Get("Location"), session.LoginPath)
		}
	}
}

func TestLoginPageAndHealthUngated(t *testing.T) {
	r := newTestRouter(t)

	for _, path := range []string{"/login", "/health"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		if rec.Code != http.StatusOK {
			t.Errorf("%s: got %d, want 200 without a session", path, rec.Code)
		}
	}
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(t)

	// Log in first to get a valid session.
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"password":"vanoce"}`)))
	c := sessionCookie(rec.Result())
	if c == nil {
		t.Fatal("login did not set a cookie")
	}

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(c)
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("logout = %d, want 200", rec.Code)
	}
	cleared := sessionCookie(rec.Result())
	if cleared == nil || cleared.MaxAge >= 0 {
		t.Error("logout must expire the session cookie")
	}
}

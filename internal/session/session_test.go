package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newTestGate(t *testing.T) *Gate {
	t.Helper()
	g, err := NewGate("test-secret-at-least-32-characters!!", "vanoce", false)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

func TestLoginRoundTrip(t *testing.T) {
	g := newTestGate(t)

	token, err := g.Login("vanoce")
	if err != nil {
		t.Fatalf("login with the correct password failed: %v", err)
	}
	if err := g.Verify(token); err != nil {
		t.Errorf("freshly issued token must verify: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	g := newTestGate(t)

	_, err := g.Login("velikonoce")
	if !errors.Is(err, ErrWrongPassword) {
		t.Fatalf("expected ErrWrongPassword, got %v", err)
	}
}

func TestVerifyRejectsForeignToken(t *testing.T) {
	g := newTestGate(t)
	other, err := NewGate("another-secret-also-32-characters!!!", "vanoce", false)
	if err != nil {
		t.Fatal(err)
	}

	token, err := other.Login("vanoce")
	if err != nil {
		t.Fatal(err)
	}
	if err := g.Verify(token); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("token signed with another secret must be rejected, got %v", err)
	}
	if err := g.Verify("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Errorf("garbage must be rejected, got %v", err)
	}
}

func TestCookieAttributes(t *testing.T) {
	g := newTestGate(t)

	c := g.Cookie("tok")
	if !c.HttpOnly || c.SameSite != http.SameSiteLaxMode {
		t.Errorf("cookie flags wrong: %+v", c)
	}
	if c.Secure {
		t.Error("secure must be off outside production")
	}
	if c.MaxAge != 7*24*60*60 {
		t.Errorf("max age = %d, want 7 days", c.MaxAge)
	}

	prod, err := NewGate("test-secret-at-least-32-characters!!", "vanoce", true)
	if err != nil {
		t.Fatal(err)
	}
	if !prod.Cookie("tok").Secure {
		t.Error("secure must be on in production")
	}

	if g.ClearCookie().MaxAge >= 0 {
		t.Error("clear cookie must expire immediately")
	}
}

func TestRequireRedirectsWithoutSession(t *testing.T) {
	g := newTestGate(t)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	h := Require(g)(next)

	// No cookie at all.
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/people", nil))
	if rec.Code != http.StatusFound || rec.Header().Get("Location") != LoginPath {
		t.Errorf("want redirect to %s, got %d %q", LoginPath, rec.Code, rec.Header().Get("Location"))
	}

	// Garbage cookie.
	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/people", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "nonsense"})
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusFound {
		t.Errorf("invalid cookie must redirect, got %d", rec.Code)
	}

	// Valid session passes through.
	token, err := g.Login("vanoce")
	if err != nil {
		t.Fatal(err)
	}
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/people", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: token})
	h.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("valid session must pass, got %d", rec.Code)
	}
}

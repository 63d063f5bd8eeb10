package session

import (
	"errors"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const (
	// CookieName holds the signed session token.
	CookieName = "gift_session"

	// TTL is the fixed session lifetime.
	TTL = 7 * 24 * time.Hour
)

var (
	ErrWrongPassword = errors.New("wrong password")
	ErrInvalidToken  = errors.New("invalid token")
)

// Gate is the single shared-password barrier in front of the app. There is
// exactly one credential for the whole system, no accounts, no roles.
type Gate struct {
	secret       []byte
	passwordHash []byte
	secure       bool
}

// NewGate hashes the shared password once at startup. Secret and password
// come from configuration; there is no compiled-in default.
func NewGate(secret, password string, secure bool) (*Gate, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &Gate{secret: []byte(secret), passwordHash: hash, secure: secure}, nil
}

// Login checks the shared password and returns a signed session token.
func (g *Gate) Login(password string) (string, error) {
	if err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)); err != nil {
		return "", ErrWrongPassword
	}
	return g.sign()
}

func (g *Gate) sign() (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"logged_in": true,
		"iat":       now.Unix(),
		"exp":       now.Add(TTL).Unix(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(g.secret)
}

// Verify checks signature, expiry and the logged_in claim.
func (g *Gate) Verify(tokenStr string) error {
	t, err := jwt.Parse(tokenStr, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return g.secret, nil
	})
	if err != nil || !t.Valid {
		return ErrInvalidToken
	}

	claims, ok := t.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}
	if in, ok := claims["logged_in"].(bool); !ok || !in {
		return ErrInvalidToken
	}
	return nil
}

// Cookie wraps a token in the session cookie.
func (g *Gate) Cookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(TTL / time.Second),
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

// ClearCookie expires the session cookie.
func (g *Gate) ClearCookie() *http.Cookie {
	return &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   g.secure,
		SameSite: http.SameSiteLaxMode,
	}
}

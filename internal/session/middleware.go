package session

import "net/http"

// LoginPath is where unauthenticated requests are sent. The gate runs ahead
// of page rendering, so the failure mode is a navigation redirect, not a
// 401 body.
const LoginPath = "/login"

func Require(gate *Gate) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			c, err := r.Cookie(CookieName)
			if err != nil || gate.Verify(c.Value) != nil {
				http.Redirect(w, r, LoginPath, http.StatusFound)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

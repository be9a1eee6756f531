package middleware

import (
	"net/http"
	"strings"

	"github.com/shashiranjanraj/nightcap/pkg/auth"
	"github.com/shashiranjanraj/nightcap/pkg/response"
	"github.com/shashiranjanraj/nightcap/pkg/session"
)

// Identify resolves the caller's identity from the auth token (cookie or
// Authorization bearer) plus the server-side session's current
// tracking-session pointer, and stores the explicit auth.Identity struct in
// the request context. It never rejects — anonymous requests simply carry no
// identity. Wire session.Middleware BEFORE this one.
func Identify(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := bearerToken(r)
		if token == "" {
			if cookie, err := r.Cookie(auth.CookieName); err == nil {
				token = cookie.Value
			}
		}

		if token != "" {
			if claims, err := auth.ValidateToken(token); err == nil {
				ident := auth.Identity{Email: claims.Email}
				if cur, ok := session.FromCtx(r).Get(session.KeyCurrentSession); ok {
					ident.CurrentSessionID = cur
				}
				r = r.WithContext(auth.WithIdentity(r.Context(), ident))
			}
		}

		next.ServeHTTP(w, r)
	})
}

// RequireAuth rejects requests that carry no resolved identity.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := auth.IdentityFrom(r.Context()); !ok {
			response.Unauthorized(w, "Not logged in")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
}

package auth

import (
	"net/http"
	"strings"
	"time"

	"github.com/MrJamesThe3rd/mikropanel/internal/http/respond"
)

const CookieName = "auth"

// Authenticator reads sessions from the auth cookie or a Bearer header.
type Authenticator struct {
	issuer *Issuer
	secure bool
}

// NewAuthenticator builds the cookie middleware. secure marks the cookie
// Secure and is set in production.
func NewAuthenticator(issuer *Issuer, secure bool) *Authenticator {
	return &Authenticator{issuer: issuer, secure: secure}
}

func (a *Authenticator) Issuer() *Issuer {
	return a.issuer
}

func (a *Authenticator) SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(a.issuer.TTL() / time.Second),
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (a *Authenticator) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   a.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func tokenFrom(r *http.Request) string {
	if c, err := r.Cookie(CookieName); err == nil && c.Value != "" {
		return c.Value
	}

	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}

	return strings.TrimSpace(token)
}

// Middleware rejects requests without a valid session with 401.
func (a *Authenticator) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := tokenFrom(r)
		if raw == "" {
			respond.Message(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		s, err := a.issuer.Parse(raw)
		if err != nil {
			respond.Message(w, http.StatusUnauthorized, "not authenticated")
			return
		}

		next.ServeHTTP(w, r.WithContext(WithSession(r.Context(), s)))
	})
}

// Require answers 403 unless the session holds p. It must run after
// Middleware.
func Require(p Permission) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !FromContext(r.Context()).Can(p) {
				respond.Message(w, http.StatusForbidden, "forbidden")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jblavisse/scriptalium/internal/application/ports"
	"github.com/jblavisse/scriptalium/internal/domain"
)

// Cookie names carrying the token pair. Tokens travel in cookies, never in
// the Authorization header.
const (
	AccessTokenCookie  = "access_token"
	RefreshTokenCookie = "refresh_token"
)

// MsgTokenInvalid is returned whenever the access cookie fails validation.
const MsgTokenInvalid = "Token invalide ou expiré"

// CookieAuth validates the access cookie and sets the identity in context.
type CookieAuth struct {
	issuer ports.TokenIssuer
}

func NewCookieAuth(issuer ports.TokenIssuer) *CookieAuth {
	return &CookieAuth{issuer: issuer}
}

// Require rejects requests without a valid access cookie.
func (m *CookieAuth) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity := m.resolve(r)
		if identity == nil {
			writeDetail(w, http.StatusUnauthorized, MsgTokenInvalid)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

// Optional resolves the identity when the cookie is present and valid, and
// passes the request through unauthenticated otherwise. Open endpoints like
// the project listing use this to return empty results instead of 401.
func (m *CookieAuth) Optional(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if identity := m.resolve(r); identity != nil {
			r = r.WithContext(WithIdentity(r.Context(), identity))
		}
		next.ServeHTTP(w, r)
	})
}

func (m *CookieAuth) resolve(r *http.Request) *Identity {
	cookie, err := r.Cookie(AccessTokenCookie)
	if err != nil || cookie.Value == "" {
		return nil
	}
	username, userIDStr, err := m.issuer.ValidateAccessToken(cookie.Value)
	if err != nil {
		return nil
	}
	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		return nil
	}
	return &Identity{Username: username, UserID: domain.NewUserID(userID)}
}

func writeDetail(w http.ResponseWriter, code int, detail string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"detail": detail})
}

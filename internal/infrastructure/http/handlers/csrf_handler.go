package handlers

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
)

// CSRFTokenCookie is readable by JavaScript so the frontend can echo it in
// the X-CSRFToken header (double-submit pattern).
const CSRFTokenCookie = "csrftoken"

// CSRFHandler issues CSRF tokens for browser clients.
type CSRFHandler struct {
	cookieSecure bool
}

func NewCSRFHandler(cookieSecure bool) *CSRFHandler {
	return &CSRFHandler{cookieSecure: cookieSecure}
}

// Issue sets a fresh random csrftoken cookie and returns it in the body.
func (h *CSRFHandler) Issue(w http.ResponseWriter, r *http.Request) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		writeInternal(w)
		return
	}
	token := hex.EncodeToString(raw)
	http.SetCookie(w, &http.Cookie{
		Name:     CSRFTokenCookie,
		Value:    token,
		Path:     "/",
		Secure:   h.cookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]string{"csrfToken": token})
}

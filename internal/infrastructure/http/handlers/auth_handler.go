package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/jblavisse/scriptalium/internal/application/auth"
	"github.com/jblavisse/scriptalium/internal/application/ports"
	domerrors "github.com/jblavisse/scriptalium/internal/domain/errors"
	"github.com/jblavisse/scriptalium/internal/infrastructure/http/middleware"
)

// Auth-flow messages. Login failure never distinguishes unknown user from
// wrong password, to avoid user enumeration.
const (
	MsgLoginSuccess   = "Connexion réussie"
	MsgLoginFailed    = "Nom d'utilisateur ou mot de passe incorrect"
	MsgRefreshSuccess = "Token rafraîchi avec succès"
	MsgRefreshFailed  = "Le rafraîchissement du token a échoué"
	MsgLogoutSuccess  = "Déconnexion réussie"
	MsgInvalidBody    = "Requête invalide"
)

// AuthHandler serves registration, login, refresh, logout and the
// current-user read. Tokens are delivered exclusively through cookies.
type AuthHandler struct {
	register     *auth.RegisterUser
	login        *auth.Login
	refresh      *auth.Refresh
	users        ports.UserRepository
	validate     *validator.Validate
	cookieSecure bool
	log          zerolog.Logger
}

func NewAuthHandler(register *auth.RegisterUser, login *auth.Login, refresh *auth.Refresh, users ports.UserRepository, cookieSecure bool, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register:     register,
		login:        login,
		refresh:      refresh,
		users:        users,
		validate:     newValidator(),
		cookieSecure: cookieSecure,
		log:          log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username  string `json:"username" validate:"required,max=150"`
		Email     string `json:"email" validate:"required,email,max=254"`
		Password  string `json:"password" validate:"required,max=128"`
		Password2 string `json:"password2" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeFieldErrors(w, fieldErrorsFromValidator(err))
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		Username:        body.Username,
		Email:           body.Email,
		Password:        body.Password,
		PasswordConfirm: body.Password2,
	})
	if err != nil {
		AuditLog(h.log, r, "user.register", body.Username, false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		var verr *domerrors.ValidationError
		if errors.As(err, &verr) {
			writeFieldErrors(w, verr.Fields)
			return
		}
		h.log.Error().Err(err).Msg("register failed")
		writeInternal(w)
		return
	}
	AuditLog(h.log, r, "user.register", result.User.Username, true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":       result.User.ID.String(),
		"username": result.User.Username,
		"email":    result.User.Email,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username" validate:"required,max=150"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeDetail(w, http.StatusBadRequest, MsgInvalidBody)
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeDetail(w, http.StatusUnauthorized, MsgLoginFailed)
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Username: body.Username,
		Password: body.Password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.login", body.Username, false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		if errors.Is(err, domerrors.ErrInvalidCredentials) {
			writeDetail(w, http.StatusUnauthorized, MsgLoginFailed)
			return
		}
		h.log.Error().Err(err).Msg("login failed")
		writeInternal(w)
		return
	}
	AuditLog(h.log, r, "user.login", result.User.Username, true, "")
	middleware.RecordAuthAttempt("login", true)
	setTokenCookie(w, middleware.AccessTokenCookie, result.AccessToken, int(result.AccessExpiresIn), h.cookieSecure)
	setTokenCookie(w, middleware.RefreshTokenCookie, result.RefreshToken, int(result.RefreshExpiresIn), h.cookieSecure)
	writeDetail(w, http.StatusOK, MsgLoginSuccess)
}

// Refresh reads the refresh cookie and rotates the access cookie. The
// refresh cookie itself is left untouched.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(middleware.RefreshTokenCookie)
	if err != nil || cookie.Value == "" {
		middleware.RecordAuthAttempt("refresh", false)
		writeDetail(w, http.StatusUnauthorized, MsgRefreshFailed)
		return
	}
	result, err := h.refresh.Execute(r.Context(), auth.RefreshInput{RefreshToken: cookie.Value})
	if err != nil {
		AuditLog(h.log, r, "auth.refresh", "", false, err.Error())
		middleware.RecordAuthAttempt("refresh", false)
		if errors.Is(err, domerrors.ErrInvalidToken) {
			writeDetail(w, http.StatusUnauthorized, MsgRefreshFailed)
			return
		}
		h.log.Error().Err(err).Msg("refresh failed")
		writeInternal(w)
		return
	}
	middleware.RecordAuthAttempt("refresh", true)
	setTokenCookie(w, middleware.AccessTokenCookie, result.AccessToken, int(result.AccessExpiresIn), h.cookieSecure)
	writeDetail(w, http.StatusOK, MsgRefreshSuccess)
}

// Logout clears both cookies and always succeeds, authenticated or not.
// Tokens already issued stay valid until natural expiry; there is no
// server-side revocation.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	clearTokenCookie(w, middleware.AccessTokenCookie, h.cookieSecure)
	clearTokenCookie(w, middleware.RefreshTokenCookie, h.cookieSecure)
	writeDetail(w, http.StatusOK, MsgLogoutSuccess)
}

// CurrentUser returns the profile of the authenticated caller. Requires the
// CookieAuth middleware.
func (h *AuthHandler) CurrentUser(w http.ResponseWriter, r *http.Request) {
	identity := middleware.IdentityFromContext(r.Context())
	if identity == nil {
		writeDetail(w, http.StatusUnauthorized, middleware.MsgTokenInvalid)
		return
	}
	user, err := h.users.GetByID(r.Context(), identity.UserID)
	if err != nil {
		h.log.Error().Err(err).Msg("current user lookup failed")
		writeInternal(w)
		return
	}
	if user == nil {
		writeDetail(w, http.StatusUnauthorized, middleware.MsgTokenInvalid)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"username": user.Username,
		"email":    user.Email,
	})
}

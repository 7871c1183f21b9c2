package apihandlers

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	authservice "github.com/mulligan-crew/golftrip/app/modules/auth/application"
	"github.com/mulligan-crew/golftrip/internal/observability/attr"
)

const stateCookieName = "oauth_state"

// AuthHandler serves the login flow.
type AuthHandler struct {
	service authservice.Service
	logger  *slog.Logger
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(service authservice.Service, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{service: service, logger: logger}
}

// Routes builds the auth route tree.
func (h *AuthHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Get("/login", h.Login)
	r.Get("/callback", h.Callback)
	return r
}

// Login redirects the caller to the identity provider's consent page. The
// state nonce rides in a short-lived cookie for the callback check.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to start login")
		return
	}
	state := hex.EncodeToString(buf)

	http.SetCookie(w, &http.Cookie{
		Name:     stateCookieName,
		Value:    state,
		Path:     "/",
		MaxAge:   int((10 * time.Minute).Seconds()),
		HttpOnly: true,
		Secure:   r.TLS != nil,
		SameSite: http.SameSiteLaxMode,
	})

	http.Redirect(w, r, h.service.AuthCodeURL(state), http.StatusFound)
}

// Callback completes the login flow: it checks the state nonce, exchanges the
// authorization code, and returns the issued session.
func (h *AuthHandler) Callback(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(stateCookieName)
	if err != nil || cookie.Value == "" || cookie.Value != r.URL.Query().Get("state") {
		writeError(w, http.StatusBadRequest, "state mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		writeError(w, http.StatusBadRequest, "missing authorization code")
		return
	}

	session, err := h.service.ExchangeCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, authservice.ErrExchangeFailed):
			writeError(w, http.StatusUnauthorized, "authorization code rejected")
		case errors.Is(err, authservice.ErrNoIdentity):
			writeError(w, http.StatusUnauthorized, "identity provider returned no email")
		default:
			h.logger.ErrorContext(r.Context(), "Failed to complete login", attr.Error(err))
			writeError(w, http.StatusInternalServerError, "failed to complete login")
		}
		return
	}

	// The nonce is single use.
	http.SetCookie(w, &http.Cookie{Name: stateCookieName, Path: "/", MaxAge: -1})

	writeJSON(w, http.StatusOK, session)
}

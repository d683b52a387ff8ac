package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/service"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/internal/utils"
	"github.com/storynest/storynest/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON), http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationUsernameTooShort) || errors.Is(err, service.ErrValidationPasswordTooShort):
			log.Err(err).Msg("invalid registration data provided")
			utils.WriteJSON(w, models.NewErrorResponse(err.Error()), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrUsernameTaken):
			log.Err(err).Msg("username already taken")
			utils.WriteJSON(w, models.NewErrorResponse(msgUsernameTaken), http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
			return
		}
	}

	h.issueSession(w, r, registeredUser, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON), http.StatusBadRequest)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			// no cookie is set on failure; unknown user and wrong password
			// produce this same response
			log.Err(err).Msg("invalid credentials")
			utils.WriteJSON(w, models.NewErrorResponse(msgInvalidCredentials), http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during login")
			utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
			return
		}
	}

	h.issueSession(w, r, foundUser, http.StatusOK)
}

// issueSession mints a session for the authenticated user, sets the session
// cookie, and writes the user payload with a fresh CSRF token. Shared by
// register and login, which differ only in how the user was established.
func (h *Handler) issueSession(w http.ResponseWriter, r *http.Request, user models.User, statusCode int) {
	log := logger.FromRequest(r)

	session, csrfToken, err := h.services.SessionService.Issue(r.Context(), user.ID)
	if err != nil {
		log.Err(err).Msg("session creation failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.newSessionCookie(session.Token))
	utils.WriteJSON(w, models.SessionResponse{
		User:      models.UserInfo{ID: user.ID, Username: user.Username},
		CSRFToken: csrfToken,
	}, statusCode)
}

// logout revokes the current session and clears the cookie. The gate has
// already resolved the session, so the token is taken from the context.
// Revoking an already-gone session still clears the cookie.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	token, ok := utils.GetSessionTokenFromContext(ctx)
	if !ok {
		log.Error().Msg("no session token in context on logout")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	if _, err := h.services.SessionService.Revoke(ctx, token); err != nil {
		log.Err(err).Msg("session revocation failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.clearedSessionCookie())
	w.WriteHeader(http.StatusNoContent)
}

// session is the probe pages call on load: it reports who the cookie
// belongs to and hands out a freshly derived CSRF token to echo back in
// mutating requests. Anonymous requests get the uniform 401 — the endpoint
// is read-only but inherently session-bound.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	cookie, err := r.Cookie(sessionCookieName)
	if err != nil {
		h.unauthorized(w, r)
		return
	}

	session, err := h.services.SessionService.Resolve(ctx, cookie.Value)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			h.unauthorized(w, r)
			return
		}

		log.Err(err).Msg("session resolution failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	user, err := h.services.AuthService.UserByID(ctx, session.UserID)
	if err != nil {
		log.Err(err).Msg("session user lookup failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	csrfToken, err := h.services.SessionService.CSRFToken(session)
	if err != nil {
		log.Err(err).Msg("csrf token derivation failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.SessionResponse{
		User:      models.UserInfo{ID: user.ID, Username: user.Username},
		CSRFToken: csrfToken,
	}, http.StatusOK)
}

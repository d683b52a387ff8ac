package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/internal/utils"
	"github.com/storynest/storynest/models"
)

// csrfTokenHeader is an alternative transport for the CSRF token, used by
// clients that cannot place it in the JSON body (e.g. DELETE without one).
const csrfTokenHeader = "X-CSRF-Token"

// withSession is an HTTP middleware for read paths: it resolves the session
// cookie into an identity when one is attached and passes anonymous
// requests through untouched.
//
// An absent cookie and a stale or expired one are treated the same way —
// the request simply proceeds without an identity. On success the user's ID
// and the session token are stored in the request context under
// [utils.UserIDCtxKey] and [utils.SessionTokenCtxKey].
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			next.ServeHTTP(w, r)
			return
		}

		session, err := h.services.SessionService.Resolve(r.Context(), cookie.Value)
		if err != nil {
			if !errors.Is(err, store.ErrSessionNotFound) {
				// identity is optional here, so a store failure downgrades
				// the request to anonymous instead of failing it
				log.Err(err).Msg("session resolution failed on read path")
			}
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(sessionContext(r.Context(), session)))
	})
}

// requireAuth is the gate in front of every mutating route. It admits a
// request only when all of the following hold:
//
//  1. a session cookie is attached,
//  2. the cookie resolves to an active (non-expired) session,
//  3. a CSRF token is supplied in the JSON body field "csrfToken" or the
//     X-CSRF-Token header,
//  4. the token verifies against the session's CSRF seed.
//
// The four rejection branches are observably identical: HTTP 401 with body
// {"error":[{"message":"Unauthorized"}]}. Only the server-side log reveals
// which check failed. Store transport failures are a 500, never a 401, so
// that an outage is not mistaken for a revoked session.
//
// The gate performs no writes; resolving a session has only the lazy
// pruning side effect.
//
// On success the user's ID and the session token are stored in the request
// context so that downstream handlers never re-read the cookie.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil {
			log.Warn().Msg("mutating request without session cookie")
			h.unauthorized(w, r)
			return
		}

		session, err := h.services.SessionService.Resolve(r.Context(), cookie.Value)
		if err != nil {
			if errors.Is(err, store.ErrSessionNotFound) {
				log.Warn().Msg("mutating request with unresolvable session")
				h.unauthorized(w, r)
				return
			}

			log.Err(err).Msg("session resolution failed")
			utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
			return
		}

		csrfToken, err := csrfTokenFromRequest(r)
		if err != nil {
			log.Err(err).Msg("reading request body failed")
			utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
			return
		}
		if csrfToken == "" {
			log.Warn().Msg("mutating request without csrf token")
			h.unauthorized(w, r)
			return
		}

		if !h.services.SessionService.VerifyCSRF(session, csrfToken) {
			log.Warn().Msg("csrf token verification failed")
			h.unauthorized(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(sessionContext(r.Context(), session)))
	})
}

// unauthorized writes the uniform rejection. Browser page loads (requests
// that accept text/html) are redirected to the login page with the original
// path preserved; API clients get the JSON 401 body.
func (h *Handler) unauthorized(w http.ResponseWriter, r *http.Request) {
	if strings.Contains(r.Header.Get("Accept"), "text/html") {
		location := "/login?returnTo=" + url.QueryEscape(r.URL.RequestURI())
		http.Redirect(w, r, location, http.StatusSeeOther)
		return
	}

	utils.WriteJSON(w, models.NewErrorResponse(msgUnauthorized), http.StatusUnauthorized)
}

// sessionContext stores the authenticated user's ID and the session token
// in the context so that downstream handlers can retrieve them without
// re-reading the cookie.
func sessionContext(ctx context.Context, session models.Session) context.Context {
	ctx = context.WithValue(ctx, utils.UserIDCtxKey, session.UserID)
	return context.WithValue(ctx, utils.SessionTokenCtxKey, session.Token)
}

// csrfTokenFromRequest extracts the CSRF token from the X-CSRF-Token header
// or, failing that, from the "csrfToken" field of a JSON body. The body is
// restored afterwards so the wrapped handler can decode its payload as if
// it had never been read.
//
// A malformed body yields an empty token, not an error: the gate rejects it
// the same way as a missing token.
func csrfTokenFromRequest(r *http.Request) (string, error) {
	if token := r.Header.Get(csrfTokenHeader); token != "" {
		return token, nil
	}

	if r.Body == nil || r.Body == http.NoBody {
		return "", nil
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		return "", err
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	var envelope struct {
		CSRFToken string `json:"csrfToken"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return "", nil
	}

	return envelope.CSRFToken, nil
}

package http

import (
	"net/http"
	"time"
)

// sessionCookieName is the cookie carrying the opaque session token. The
// token travels nowhere else: never in a response body, never in a header.
const sessionCookieName = "sessionToken"

// developmentEnvironment disables the cookie's Secure attribute so that the
// app works over plain HTTP on localhost.
const developmentEnvironment = "development"

// newSessionCookie builds the session cookie for a freshly issued token.
// Max-Age mirrors the server-side session TTL; the server-side expiry stays
// authoritative, the cookie lifetime is advisory only.
func (h *Handler) newSessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.sessionTTL.Seconds()),
		Expires:  time.Now().Add(h.sessionTTL),
		HttpOnly: true,
		Secure:   h.environment != developmentEnvironment,
		SameSite: http.SameSiteLaxMode,
	}
}

// clearedSessionCookie builds an expired cookie that instructs the browser
// to drop the session token.
func (h *Handler) clearedSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
		HttpOnly: true,
		Secure:   h.environment != developmentEnvironment,
		SameSite: http.SameSiteLaxMode,
	}
}

package models

// ErrorMessage is one entry of an error response body.
type ErrorMessage struct {
	Message string `json:"message"`
}

// ErrorResponse is the JSON shape of every error body returned by the API:
//
//	{"error":[{"message":"Unauthorized"}]}
//
// All four request-authenticator rejection branches produce an identical
// instance of this shape so that callers cannot tell which check failed.
type ErrorResponse struct {
	Error []ErrorMessage `json:"error"`
}

// NewErrorResponse builds an ErrorResponse carrying a single message.
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Error: []ErrorMessage{{Message: message}}}
}

// UserInfo is the client-safe projection of a user returned by the auth
// endpoints. It never includes credential material.
type UserInfo struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// SessionResponse is returned by login, registration, and the session probe.
// CSRFToken is a freshly derived token the client echoes back in the
// csrfToken field of every mutating request. The session token itself
// travels only in the cookie.
type SessionResponse struct {
	User      UserInfo `json:"user"`
	CSRFToken string   `json:"csrfToken"`
}

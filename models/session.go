package models

import "time"

// Session represents one authenticated browser session.
//
// The token is an opaque high-entropy string carried only in the
// "sessionToken" cookie; it is never logged and never serialized into a
// response body, hence every field is excluded from JSON.
//
// A session is Active while ExpiryTimestamp lies in the future. Once the
// timestamp has passed the row may still physically exist, but every read
// path treats it as absent; pruning eventually removes it. There is no
// transition back to Active.
type Session struct {
	// ID is the internal row identifier.
	ID int64 `json:"-"`

	// Token identifies the session. 256 bits of entropy, base64url-encoded.
	Token string `json:"-"`

	// UserID is the owning user.
	UserID int64 `json:"-"`

	// CSRFSeed is the per-session secret that CSRF tokens are derived from
	// and verified against. It never changes for the session's lifetime and
	// is never sent to the client.
	CSRFSeed string `json:"-"`

	// ExpiryTimestamp is the authoritative server-side expiry. The cookie's
	// Max-Age mirrors it but is advisory only.
	ExpiryTimestamp time.Time `json:"-"`

	// CreatedAt is the timestamp when the session row was inserted.
	CreatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

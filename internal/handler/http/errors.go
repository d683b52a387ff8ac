package http

// Client-facing messages carried in the {"error":[{"message":...}]} body.
// The gate's four rejection branches all emit msgUnauthorized so that a
// probing client cannot tell which check failed.
const (
	msgUnauthorized       = "Unauthorized"
	msgInvalidCredentials = "Invalid username or password"
	msgUsernameTaken      = "Username already taken"
	msgInvalidJSON        = "Invalid JSON was passed"
	msgNotFound           = "Not found"
	msgInternalError      = "Internal server error"
)

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
//
// "Absent" lookups return an explicit sentinel (not a transport error) so
// that callers can distinguish "no such row" from "store unavailable"; only
// driver-level failures are wrapped and propagated as unexpected errors.
var (
	// ErrUsernameTaken is returned when an attempt to register a new user
	// fails because a user with the same username already exists. The UNIQUE
	// constraint on users.username is the authoritative guard; this error is
	// the mapped unique_violation.
	ErrUsernameTaken = errors.New("username already exists")

	// ErrUserNotFound is returned when a query expected to match at least one
	// user record produces an empty result set.
	ErrUserNotFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a session token does not match any
	// row whose expiry lies in the future. An expired row that still
	// physically exists produces this same error: expiry is a computed
	// predicate on every read path, never a stored flag.
	ErrSessionNotFound = errors.New("no active session was found")

	// ErrStoryNotFound is returned when a story lookup or an ownership-bound
	// story mutation matches no rows.
	ErrStoryNotFound = errors.New("no story was found")

	// ErrCommentNotFound is returned when a comment deletion targets a
	// comment that does not exist or is not owned by the caller.
	ErrCommentNotFound = errors.New("no comment was found")

	// ErrProfileNotFound is returned when a profile lookup by username or
	// user id produces an empty result set.
	ErrProfileNotFound = errors.New("no user profile was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)

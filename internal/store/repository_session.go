package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. It manages the "sessions" table: opaque token rows
// bound to a user id and a CSRF seed, each with a server-computed expiry.
//
// Expired rows are never returned — every read filters on
// `expiry_timestamp > NOW()` — and are lazily garbage-collected as a side
// effect of CreateSession and ResolveSession. The bulk delete-where-expired
// form makes concurrent pruning idempotent: two overlapping prunes may both
// target the same rows without error.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB

	// ttl is the fixed lifetime applied to every created session.
	ttl time.Duration
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection. ttl becomes the expiry horizon of every
// session the repository creates.
func NewSessionRepository(db *DB, ttl time.Duration, logger *logger.Logger) SessionRepository {
	logger.Debug().Dur("ttl", ttl).Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
		ttl:    ttl,
	}
}

// CreateSession inserts a new session row. The expiry is computed inside the
// database (`NOW() + ttl`) so that a single clock decides both creation and
// expiry ordering.
//
// Side effect: prunes all expired sessions globally after the insert,
// keeping the table bounded without a background job. A pruning failure is
// logged but does not fail the creation — the new session is already
// durable at that point.
func (r *sessionRepository) CreateSession(ctx context.Context, token string, userID int64, csrfSeed string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, createSession, token, userID, csrfSeed, r.ttl.Seconds())

	if err := row.Scan(&session.ID, &session.Token, &session.UserID, &session.CSRFSeed, &session.ExpiryTimestamp, &session.CreatedAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Int64("user_id", userID).Msg("error: session was not created")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if _, err := r.PruneExpired(ctx); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("pruning expired sessions failed")
	}

	return session, nil
}

// ResolveSession returns the session for token, treating expired rows as
// absent: the lookup filters on `expiry_timestamp > NOW()`, so a row whose
// expiry has passed resolves to [ErrSessionNotFound] even while it still
// physically exists.
//
// Side effect: prunes all expired sessions after the lookup.
func (r *sessionRepository) ResolveSession(ctx context.Context, token string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, resolveSession, token)

	err := row.Scan(&session.ID, &session.Token, &session.UserID, &session.CSRFSeed, &session.ExpiryTimestamp, &session.CreatedAt)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Str("func", "*sessionRepository.ResolveSession").Msg("error: session lookup failed")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// prune runs on the miss path as well: an expired token fails the
	// filtered select while its row still exists, and that row is exactly
	// what needs collecting
	if _, pruneErr := r.PruneExpired(ctx); pruneErr != nil {
		log.Err(pruneErr).Str("func", "*sessionRepository.ResolveSession").Msg("pruning expired sessions failed")
	}

	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

// DeleteSession removes the session row for token and reports whether a row
// was removed. The operation is idempotent: deleting an absent token simply
// reports no removal.
func (r *sessionRepository) DeleteSession(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSession, token)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: session deletion failed")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: rows affected unavailable")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return removed > 0, nil
}

// PruneExpired bulk-deletes every session whose expiry has passed and
// returns the number of rows removed. Running it twice in succession with
// no new expirations in between removes nothing on the second call.
func (r *sessionRepository) PruneExpired(ctx context.Context) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, pruneExpiredSessions)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.PruneExpired").Msg("error: pruning expired sessions failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	pruned, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if pruned > 0 {
		log.Debug().Int64("pruned", pruned).Msg("expired sessions removed")
	}

	return pruned, nil
}

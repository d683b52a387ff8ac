package service

import (
	"context"
	"fmt"

	"github.com/storynest/storynest/internal/csrf"
	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/internal/utils"
	"github.com/storynest/storynest/models"
)

// sessionService is the concrete implementation of SessionService. It mints
// opaque session tokens, binds a CSRF seed to each session at creation, and
// derives and verifies CSRF tokens against that seed.
//
// The session token and the CSRF seed are independent secrets: the token
// identifies the session in the cookie, the seed never leaves the server.
type sessionService struct {
	sessionRepository store.SessionRepository
	logger            *logger.Logger
}

// NewSessionService constructs a SessionService over the given repository.
func NewSessionService(sessionRepository store.SessionRepository, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

// Issue mints a fresh session for userID: a 256-bit opaque token, a new
// CSRF seed, and a persisted row whose expiry the database computes. The
// returned string is a CSRF token derived from the new seed, ready to hand
// to the client.
func (s *sessionService) Issue(ctx context.Context, userID int64) (models.Session, string, error) {
	log := logger.FromContext(ctx)

	token, err := utils.NewSessionToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return models.Session{}, "", fmt.Errorf("session token generation failed: %w", err)
	}

	seed, err := csrf.GenerateSeed()
	if err != nil {
		log.Err(err).Msg("csrf seed generation failed")
		return models.Session{}, "", fmt.Errorf("csrf seed generation failed: %w", err)
	}

	session, err := s.sessionRepository.CreateSession(ctx, token, userID, seed)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("session creation ended with error")
		return models.Session{}, "", fmt.Errorf("session creation ended with error: %w", err)
	}

	csrfToken, err := csrf.DeriveToken(session.CSRFSeed)
	if err != nil {
		log.Err(err).Msg("csrf token derivation failed")
		return models.Session{}, "", fmt.Errorf("csrf token derivation failed: %w", err)
	}

	return session, csrfToken, nil
}

// Resolve returns the active session for token. Expired and unknown tokens
// both surface as store.ErrSessionNotFound; callers cannot distinguish the
// two.
func (s *sessionService) Resolve(ctx context.Context, token string) (models.Session, error) {
	session, err := s.sessionRepository.ResolveSession(ctx, token)
	if err != nil {
		return models.Session{}, err
	}

	return session, nil
}

// CSRFToken derives a fresh token from the session's seed. Tokens are not
// stored; any token derived from the seed verifies against it for the
// session's whole lifetime.
func (s *sessionService) CSRFToken(session models.Session) (string, error) {
	token, err := csrf.DeriveToken(session.CSRFSeed)
	if err != nil {
		return "", fmt.Errorf("csrf token derivation failed: %w", err)
	}

	return token, nil
}

// VerifyCSRF reports whether token was derived from the session's seed.
func (s *sessionService) VerifyCSRF(session models.Session, token string) bool {
	return csrf.VerifyToken(session.CSRFSeed, token)
}

// Revoke deletes the session row for token and reports whether a row was
// removed. Revoking twice, or revoking a token that was never issued, is
// not an error.
func (s *sessionService) Revoke(ctx context.Context, token string) (bool, error) {
	log := logger.FromContext(ctx)

	removed, err := s.sessionRepository.DeleteSession(ctx, token)
	if err != nil {
		log.Err(err).Msg("session revocation ended with error")
		return false, fmt.Errorf("session revocation ended with error: %w", err)
	}

	return removed, nil
}

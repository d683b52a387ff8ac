package service

import (
	"context"
	"testing"

	"github.com/storynest/storynest/internal/csrf"
	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock: store.SessionRepository
// ─────────────────────────────────────────────

type mockSessionRepository struct {
	createSessionFn  func(ctx context.Context, token string, userID int64, csrfSeed string) (models.Session, error)
	resolveSessionFn func(ctx context.Context, token string) (models.Session, error)
	deleteSessionFn  func(ctx context.Context, token string) (bool, error)
	pruneExpiredFn   func(ctx context.Context) (int64, error)
}

func (m *mockSessionRepository) CreateSession(ctx context.Context, token string, userID int64, csrfSeed string) (models.Session, error) {
	if m.createSessionFn != nil {
		return m.createSessionFn(ctx, token, userID, csrfSeed)
	}
	return models.Session{Token: token, UserID: userID, CSRFSeed: csrfSeed}, nil
}

func (m *mockSessionRepository) ResolveSession(ctx context.Context, token string) (models.Session, error) {
	if m.resolveSessionFn != nil {
		return m.resolveSessionFn(ctx, token)
	}
	return models.Session{}, nil
}

func (m *mockSessionRepository) DeleteSession(ctx context.Context, token string) (bool, error) {
	if m.deleteSessionFn != nil {
		return m.deleteSessionFn(ctx, token)
	}
	return false, nil
}

func (m *mockSessionRepository) PruneExpired(ctx context.Context) (int64, error) {
	if m.pruneExpiredFn != nil {
		return m.pruneExpiredFn(ctx)
	}
	return 0, nil
}

// ─────────────────────────────────────────────
// Helper
// ─────────────────────────────────────────────

func newTestSessionService(sessions *mockSessionRepository) *sessionService {
	return &sessionService{
		sessionRepository: sessions,
		logger:            logger.Nop(),
	}
}

// ─────────────────────────────────────────────
// Issue
// ─────────────────────────────────────────────

func TestSessionService_Issue_Success(t *testing.T) {
	var persistedToken, persistedSeed string
	sessions := &mockSessionRepository{
		createSessionFn: func(_ context.Context, token string, userID int64, csrfSeed string) (models.Session, error) {
			persistedToken = token
			persistedSeed = csrfSeed
			return models.Session{ID: 1, Token: token, UserID: userID, CSRFSeed: csrfSeed}, nil
		},
	}
	svc := newTestSessionService(sessions)

	session, csrfToken, err := svc.Issue(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), session.UserID)
	assert.Equal(t, persistedToken, session.Token)
	assert.NotEmpty(t, session.Token)
	assert.NotEmpty(t, persistedSeed)

	// the session token and the CSRF material are independent secrets
	assert.NotEqual(t, session.Token, persistedSeed)
	assert.NotEqual(t, session.Token, csrfToken)

	// the handed-out CSRF token verifies against the persisted seed
	assert.True(t, csrf.VerifyToken(persistedSeed, csrfToken))
}

func TestSessionService_Issue_UniqueTokensPerSession(t *testing.T) {
	svc := newTestSessionService(&mockSessionRepository{})

	first, _, err := svc.Issue(context.Background(), 7)
	require.NoError(t, err)
	second, _, err := svc.Issue(context.Background(), 7)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)
	assert.NotEqual(t, first.CSRFSeed, second.CSRFSeed)
}

func TestSessionService_Issue_StorageFailure(t *testing.T) {
	sessions := &mockSessionRepository{
		createSessionFn: func(_ context.Context, _ string, _ int64, _ string) (models.Session, error) {
			return models.Session{}, errStorage
		},
	}
	svc := newTestSessionService(sessions)

	_, _, err := svc.Issue(context.Background(), 7)

	assert.ErrorIs(t, err, errStorage)
}

// ─────────────────────────────────────────────
// Resolve / Revoke
// ─────────────────────────────────────────────

func TestSessionService_Resolve_NotFoundPassesThrough(t *testing.T) {
	sessions := &mockSessionRepository{
		resolveSessionFn: func(_ context.Context, _ string) (models.Session, error) {
			return models.Session{}, store.ErrSessionNotFound
		},
	}
	svc := newTestSessionService(sessions)

	_, err := svc.Resolve(context.Background(), "stale-token")

	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestSessionService_Revoke_ReportsRemoval(t *testing.T) {
	sessions := &mockSessionRepository{
		deleteSessionFn: func(_ context.Context, token string) (bool, error) {
			return token == "known-token", nil
		},
	}
	svc := newTestSessionService(sessions)

	removed, err := svc.Revoke(context.Background(), "known-token")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Revoke(context.Background(), "never-issued")
	require.NoError(t, err)
	assert.False(t, removed)
}

// ─────────────────────────────────────────────
// CSRF tokens
// ─────────────────────────────────────────────

func TestSessionService_CSRFToken_VerifiesAgainstOwnSeedOnly(t *testing.T) {
	svc := newTestSessionService(&mockSessionRepository{})

	seedA, err := csrf.GenerateSeed()
	require.NoError(t, err)
	seedB, err := csrf.GenerateSeed()
	require.NoError(t, err)

	sessionA := models.Session{ID: 1, CSRFSeed: seedA}
	sessionB := models.Session{ID: 2, CSRFSeed: seedB}

	token, err := svc.CSRFToken(sessionA)
	require.NoError(t, err)

	assert.True(t, svc.VerifyCSRF(sessionA, token))
	assert.False(t, svc.VerifyCSRF(sessionB, token))
}

func TestSessionService_CSRFToken_MultipleTokensVerify(t *testing.T) {
	svc := newTestSessionService(&mockSessionRepository{})

	seed, err := csrf.GenerateSeed()
	require.NoError(t, err)
	session := models.Session{ID: 1, CSRFSeed: seed}

	first, err := svc.CSRFToken(session)
	require.NoError(t, err)
	second, err := svc.CSRFToken(session)
	require.NoError(t, err)

	// every derived token is fresh yet verifies against the same seed
	assert.NotEqual(t, first, second)
	assert.True(t, svc.VerifyCSRF(session, first))
	assert.True(t, svc.VerifyCSRF(session, second))
}

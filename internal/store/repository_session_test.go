package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/storynest/storynest/internal/logger"
)

func newTestSessionRepo(t *testing.T, ttl time.Duration) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
		ttl:    ttl,
	}
	return repo, mock, db
}

func sessionRows(token string, userID int64, seed string, expiry time.Time) *sqlmock.Rows {
	return sqlmock.
		NewRows([]string{"id", "token", "user_id", "csrf_seed", "expiry_timestamp", "created_at"}).
		AddRow(1, token, userID, seed, expiry, time.Now())
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t, 24*time.Hour)
	defer db.Close()

	ctx := context.Background()
	expiry := time.Now().Add(24 * time.Hour)

	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs("opaque-token", int64(7), "csrf-seed", (24 * time.Hour).Seconds()).
		WillReturnRows(sessionRows("opaque-token", 7, "csrf-seed", expiry))
	mock.ExpectExec("DELETE FROM sessions WHERE expiry_timestamp").
		WillReturnResult(sqlmock.NewResult(0, 0))

	session, err := repo.CreateSession(ctx, "opaque-token", 7, "csrf-seed")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.Token != "opaque-token" {
		t.Errorf("expected token to round-trip, got %q", session.Token)
	}
	if session.UserID != 7 {
		t.Errorf("expected user_id=7, got %d", session.UserID)
	}
	if session.CSRFSeed != "csrf-seed" {
		t.Errorf("expected csrf seed to round-trip, got %q", session.CSRFSeed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestCreateSession_PruneFailureDoesNotFailCreation(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t, 24*time.Hour)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sessionRows("opaque-token", 7, "csrf-seed", time.Now().Add(time.Hour)))
	mock.ExpectExec("DELETE FROM sessions WHERE expiry_timestamp").
		WillReturnError(errors.New("prune failed"))

	session, err := repo.CreateSession(ctx, "opaque-token", 7, "csrf-seed")
	if err != nil {
		t.Fatalf("creation must survive a prune failure, got %v", err)
	}
	if session.Token != "opaque-token" {
		t.Errorf("expected created session despite prune failure, got %q", session.Token)
	}
}

func TestCreateSession_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t, 24*time.Hour)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db failure"))

	_, err := repo.CreateSession(ctx, "opaque-token", 7, "csrf-seed")
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func TestResolveSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t, 24*time.Hour)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT id, token").
		WithArgs("opaque-token").
		WillReturnRows(sessionRows("opaque-token", 7, "csrf-seed", time.Now().Add(time.Hour)))
	mock.ExpectExec("DELETE FROM sessions WHERE expiry_timestamp").
		WillReturnResult(sqlmock.NewResult(0, 2))

	session, err := repo.ResolveSession(ctx, "opaque-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.UserID != 7 {
		t.Errorf("expected user_id=7, got %d", session.UserID)
	}
	if session.CSRFSeed != "csrf-seed" {
		t.Errorf("expected csrf seed, got %q", session.CSRFSeed)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

// An expired row is filtered out by the query predicate, so from the
// repository's point of view it is indistinguishable from an unknown token.
// The prune still has to run on this path: the expired row the filter hid
// is the one waiting to be collected.
func TestResolveSession_AbsentOrExpired(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t, 24*time.Hour)
	defer db.Close()

	ctx := context.Background()

	empty := sqlmock.NewRows([]string{"id", "token", "user_id", "csrf_seed", "expiry_timestamp", "created_at"})
	mock.ExpectQuery("SELECT id, token").
		WithArgs("stale-token").
		WillReturnRows(empty)
	mock.ExpectExec("DELETE FROM sessions WHERE expiry_timestamp").
		WillReturnResult(sqlmock.NewResult(0, 1))

	_, err := repo.ResolveSession(ctx, "stale-token")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestResolveSession_PruneFailureDoesNotMaskNotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t, 24*time.Hour)
	defer db.Close()

	ctx := context.Background()

	empty := sqlmock.NewRows([]string{"id", "token", "user_id", "csrf_seed", "expiry_timestamp", "created_at"})
	mock.ExpectQuery("SELECT id, token").
		WithArgs("stale-token").
		WillReturnRows(empty)
	mock.ExpectExec("DELETE FROM sessions WHERE expiry_timestamp").
		WillReturnError(errors.New("prune failed"))

	_, err := repo.ResolveSession(ctx, "stale-token")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound despite prune failure, got %v", err)
	}
}

func TestDeleteSession_Removed(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t, 24*time.Hour)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions WHERE token").
		WithArgs("opaque-token").
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.DeleteSession(ctx, "opaque-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Error("expected removed=true")
	}
}

func TestDeleteSession_AbsentTokenIsNotAnError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t, 24*time.Hour)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions WHERE token").
		WithArgs("never-issued").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.DeleteSession(ctx, "never-issued")
	if err != nil {
		t.Fatalf("deleting an absent token must not fail, got %v", err)
	}
	if removed {
		t.Error("expected removed=false for absent token")
	}
}

func TestPruneExpired(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t, 24*time.Hour)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions WHERE expiry_timestamp").
		WillReturnResult(sqlmock.NewResult(0, 3))

	pruned, err := repo.PruneExpired(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pruned != 3 {
		t.Errorf("expected 3 pruned rows, got %d", pruned)
	}
}

// A second prune with no new expirations in between removes nothing.
func TestPruneExpired_Idempotent(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t, 24*time.Hour)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM sessions WHERE expiry_timestamp").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec("DELETE FROM sessions WHERE expiry_timestamp").
		WillReturnResult(sqlmock.NewResult(0, 0))

	first, err := repo.PruneExpired(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := repo.PruneExpired(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != 3 || second != 0 {
		t.Errorf("expected 3 then 0 pruned rows, got %d then %d", first, second)
	}
}

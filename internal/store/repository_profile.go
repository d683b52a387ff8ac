package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/models"
)

// defaultAvatarURL is assigned to every freshly created profile until the
// user uploads their own image.
const defaultAvatarURL = "https://res.cloudinary.com/storynest/image/upload/avatars/default.jpg"

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository] over the "user_profiles" table.
type profileRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewProfileRepository constructs a [ProfileRepository] backed by the
// provided database connection and logger.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		db:     db,
		logger: logger,
	}
}

// CreateProfile inserts the default profile row for a freshly registered
// user.
func (r *profileRepository) CreateProfile(ctx context.Context, userID int64) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	row := r.db.QueryRowContext(ctx, createProfile, userID, defaultAvatarURL)

	if err := row.Scan(&profile.UserID, &profile.Bio, &profile.AvatarURL); err != nil {
		log.Err(err).Str("func", "*profileRepository.CreateProfile").Int64("user_id", userID).Msg("error: profile was not created")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

// ProfileByUsername retrieves a public profile joined with the owning user's
// username. Returns [ErrProfileNotFound] when no row matches.
func (r *profileRepository) ProfileByUsername(ctx context.Context, username string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	row := r.db.QueryRowContext(ctx, profileByUsername, username)

	if err := row.Scan(&profile.UserID, &profile.Username, &profile.Bio, &profile.AvatarURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}

		log.Err(err).Str("func", "*profileRepository.ProfileByUsername").Str("username", username).Msg("error: profile lookup failed")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

// UpdateProfile applies a partial update: only the non-nil fields of update
// are written. The UPDATE statement is assembled dynamically with squirrel
// so that untouched columns never appear in the SET clause.
//
// Returns [ErrProfileNotFound] when the user has no profile row.
func (r *profileRepository) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	builder := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Update("user_profiles").
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING user_id, COALESCE(bio, ''), profile_avatar_url")

	if update.Bio != nil {
		builder = builder.Set("bio", *update.Bio)
	}
	if update.AvatarURL != nil {
		builder = builder.Set("profile_avatar_url", *update.AvatarURL)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Int64("user_id", userID).Msg("failed to create query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var profile models.Profile
	row := r.db.QueryRowContext(ctx, query, args...)

	if err := row.Scan(&profile.UserID, &profile.Bio, &profile.AvatarURL); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}

		log.Err(err).Str("func", "*profileRepository.UpdateProfile").Int64("user_id", userID).Msg("error: profile update failed")
		return models.Profile{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return profile, nil
}

package store

import (
	"context"
	"fmt"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/models"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository] over the "favorites" table.
type favoriteRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewFavoriteRepository constructs a [FavoriteRepository] backed by the
// provided database connection and logger.
func NewFavoriteRepository(db *DB, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		db:     db,
		logger: logger,
	}
}

// AddFavorite bookmarks a story for a user. Favoriting an already-favorited
// story is a no-op (ON CONFLICT DO NOTHING).
func (r *favoriteRepository) AddFavorite(ctx context.Context, userID int64, storyID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, addFavorite, userID, storyID); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.AddFavorite").Int64("story_id", storyID).Msg("error: favorite was not added")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// RemoveFavorite removes a bookmark. Removing an absent bookmark is not an
// error.
func (r *favoriteRepository) RemoveFavorite(ctx context.Context, userID int64, storyID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, removeFavorite, userID, storyID); err != nil {
		log.Err(err).Str("func", "*favoriteRepository.RemoveFavorite").Int64("story_id", storyID).Msg("error: favorite was not removed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *favoriteRepository) ListFavorites(ctx context.Context, userID int64) ([]models.StoryListing, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listFavorites, userID)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavorites").Int64("user_id", userID).Msg("error: favorite listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	listings := make([]models.StoryListing, 0, 10)
	for rows.Next() {
		var listing models.StoryListing
		if err := rows.Scan(&listing.ID, &listing.Username, &listing.Title, &listing.Description); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		listings = append(listings, listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return listings, nil
}

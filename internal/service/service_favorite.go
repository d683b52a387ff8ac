package service

import (
	"context"
	"fmt"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/models"
)

// favoriteService is the concrete implementation of FavoriteService.
type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	logger             *logger.Logger
}

// NewFavoriteService constructs a FavoriteService over the given repository.
func NewFavoriteService(favoriteRepository store.FavoriteRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		logger:             logger,
	}
}

// AddFavorite bookmarks a story. Favoriting the same story twice is a
// no-op.
func (s *favoriteService) AddFavorite(ctx context.Context, userID int64, storyID int64) error {
	log := logger.FromContext(ctx)

	if err := s.favoriteRepository.AddFavorite(ctx, userID, storyID); err != nil {
		log.Err(err).Int64("story_id", storyID).Msg("adding favorite ended with error")
		return fmt.Errorf("adding favorite ended with error: %w", err)
	}

	return nil
}

func (s *favoriteService) RemoveFavorite(ctx context.Context, userID int64, storyID int64) error {
	log := logger.FromContext(ctx)

	if err := s.favoriteRepository.RemoveFavorite(ctx, userID, storyID); err != nil {
		log.Err(err).Int64("story_id", storyID).Msg("removing favorite ended with error")
		return fmt.Errorf("removing favorite ended with error: %w", err)
	}

	return nil
}

func (s *favoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.StoryListing, error) {
	listings, err := s.favoriteRepository.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("favorite listing ended with error: %w", err)
	}

	return listings, nil
}

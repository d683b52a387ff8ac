package service

import (
	"context"
	"fmt"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/models"
)

// profileService is the concrete implementation of ProfileService.
type profileService struct {
	profileRepository store.ProfileRepository
	logger            *logger.Logger
}

// NewProfileService constructs a ProfileService over the given repository.
func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		logger:            logger,
	}
}

func (s *profileService) ProfileByUsername(ctx context.Context, username string) (models.Profile, error) {
	if username == "" {
		return models.Profile{}, ErrInvalidDataProvided
	}

	profile, err := s.profileRepository.ProfileByUsername(ctx, username)
	if err != nil {
		return models.Profile{}, err
	}

	return profile, nil
}

// UpdateProfile applies a partial update; at least one field must be set,
// otherwise there is no SET clause to build.
func (s *profileService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error) {
	log := logger.FromContext(ctx)

	if update.Bio == nil && update.AvatarURL == nil {
		log.Error().Int64("user_id", userID).Msg("empty profile update provided")
		return models.Profile{}, ErrValidationNoFieldsProvided
	}

	profile, err := s.profileRepository.UpdateProfile(ctx, userID, update)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("profile update ended with error")
		return models.Profile{}, fmt.Errorf("profile update ended with error: %w", err)
	}

	return profile, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/models"
)

// storyService is the concrete implementation of StoryService.
type storyService struct {
	storyRepository store.StoryRepository
	logger          *logger.Logger
}

// NewStoryService constructs a StoryService over the given repository.
func NewStoryService(storyRepository store.StoryRepository, logger *logger.Logger) StoryService {
	return &storyService{
		storyRepository: storyRepository,
		logger:          logger,
	}
}

// CreateStory persists a new story for the authoring user. The title is
// required; description and cover image are optional.
func (s *storyService) CreateStory(ctx context.Context, story models.Story) (models.Story, error) {
	log := logger.FromContext(ctx)

	if story.Title == "" {
		log.Error().Int64("user_id", story.UserID).Msg("invalid story data provided")
		return models.Story{}, ErrValidationNoTitleProvided
	}

	created, err := s.storyRepository.CreateStory(ctx, story)
	if err != nil {
		log.Err(err).Int64("user_id", story.UserID).Msg("story creation ended with error")
		return models.Story{}, fmt.Errorf("story creation ended with error: %w", err)
	}

	return created, nil
}

// DeleteStory removes a story the user owns. Ownership is enforced in the
// repository: deleting someone else's story surfaces as
// store.ErrStoryNotFound.
func (s *storyService) DeleteStory(ctx context.Context, storyID int64, userID int64) error {
	log := logger.FromContext(ctx)

	if err := s.storyRepository.DeleteStory(ctx, storyID, userID); err != nil {
		log.Err(err).Int64("story_id", storyID).Msg("story deletion ended with error")
		return err
	}

	return nil
}

func (s *storyService) ListStories(ctx context.Context) ([]models.StoryListing, error) {
	listings, err := s.storyRepository.ListStories(ctx)
	if err != nil {
		return nil, fmt.Errorf("story listing ended with error: %w", err)
	}

	return listings, nil
}

func (s *storyService) ListUserStories(ctx context.Context, userID int64) ([]models.Story, error) {
	stories, err := s.storyRepository.ListUserStories(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user story listing ended with error: %w", err)
	}

	return stories, nil
}

func (s *storyService) StoryOverview(ctx context.Context, storyID int64) (models.StoryOverview, error) {
	overview, err := s.storyRepository.StoryOverview(ctx, storyID)
	if err != nil {
		return models.StoryOverview{}, err
	}

	return overview, nil
}

// CreateChapter appends a chapter to a story.
func (s *storyService) CreateChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error) {
	log := logger.FromContext(ctx)

	if chapter.Heading == "" || chapter.Content == "" {
		log.Error().Int64("story_id", chapter.StoryID).Msg("invalid chapter data provided")
		return models.Chapter{}, ErrValidationNoContentProvided
	}

	created, err := s.storyRepository.CreateChapter(ctx, chapter)
	if err != nil {
		log.Err(err).Int64("story_id", chapter.StoryID).Msg("chapter creation ended with error")
		return models.Chapter{}, fmt.Errorf("chapter creation ended with error: %w", err)
	}

	return created, nil
}

func (s *storyService) ListChapters(ctx context.Context, storyID int64) ([]models.Chapter, error) {
	chapters, err := s.storyRepository.ListChapters(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("chapter listing ended with error: %w", err)
	}

	return chapters, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/models"
)

// commentService is the concrete implementation of CommentService.
type commentService struct {
	commentRepository store.CommentRepository
	logger            *logger.Logger
}

// NewCommentService constructs a CommentService over the given repository.
func NewCommentService(commentRepository store.CommentRepository, logger *logger.Logger) CommentService {
	return &commentService{
		commentRepository: commentRepository,
		logger:            logger,
	}
}

func (s *commentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	if comment.Content == "" {
		log.Error().Int64("story_id", comment.StoryID).Msg("invalid comment data provided")
		return models.Comment{}, ErrValidationNoContentProvided
	}

	created, err := s.commentRepository.CreateComment(ctx, comment)
	if err != nil {
		log.Err(err).Int64("story_id", comment.StoryID).Msg("comment creation ended with error")
		return models.Comment{}, fmt.Errorf("comment creation ended with error: %w", err)
	}

	return created, nil
}

// DeleteComment removes a comment the user wrote. Ownership is enforced in
// the repository: deleting someone else's comment surfaces as
// store.ErrCommentNotFound.
func (s *commentService) DeleteComment(ctx context.Context, commentID int64, creatorID int64) error {
	log := logger.FromContext(ctx)

	if err := s.commentRepository.DeleteComment(ctx, commentID, creatorID); err != nil {
		log.Err(err).Int64("comment_id", commentID).Msg("comment deletion ended with error")
		return err
	}

	return nil
}

func (s *commentService) ListStoryComments(ctx context.Context, storyID int64) ([]models.Comment, error) {
	comments, err := s.commentRepository.ListStoryComments(ctx, storyID)
	if err != nil {
		return nil, fmt.Errorf("comment listing ended with error: %w", err)
	}

	return comments, nil
}

func (s *commentService) ListUserComments(ctx context.Context, userID int64) ([]models.UserComment, error) {
	comments, err := s.commentRepository.ListUserComments(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user comment listing ended with error: %w", err)
	}

	return comments, nil
}

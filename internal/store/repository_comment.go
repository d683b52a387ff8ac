package store

import (
	"context"
	"fmt"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/models"
)

// commentRepository is the PostgreSQL-backed implementation of
// [CommentRepository] over the "comments" table.
type commentRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewCommentRepository constructs a [CommentRepository] backed by the
// provided database connection and logger.
func NewCommentRepository(db *DB, logger *logger.Logger) CommentRepository {
	logger.Debug().Msg("creating comment repository")
	return &commentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *commentRepository) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	log := logger.FromContext(ctx)

	var created models.Comment
	row := r.db.QueryRowContext(ctx, createComment, comment.StoryID, comment.CreatorID, comment.Content)

	if err := row.Scan(&created.ID, &created.StoryID, &created.CreatorID, &created.Content); err != nil {
		log.Err(err).Str("func", "*commentRepository.CreateComment").Int64("story_id", comment.StoryID).Msg("error: comment was not created")
		return models.Comment{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// DeleteComment removes a comment owned by creatorID. Deleting a comment
// that does not exist, or that belongs to another user, returns
// [ErrCommentNotFound].
func (r *commentRepository) DeleteComment(ctx context.Context, commentID int64, creatorID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteComment, commentID, creatorID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.DeleteComment").Int64("comment_id", commentID).Msg("error: comment deletion failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if removed == 0 {
		return ErrCommentNotFound
	}

	return nil
}

func (r *commentRepository) ListStoryComments(ctx context.Context, storyID int64) ([]models.Comment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listStoryComments, storyID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListStoryComments").Int64("story_id", storyID).Msg("error: comment listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.Comment, 0, 20)
	for rows.Next() {
		var comment models.Comment
		if err := rows.Scan(&comment.ID, &comment.StoryID, &comment.Content, &comment.Username); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

func (r *commentRepository) ListUserComments(ctx context.Context, userID int64) ([]models.UserComment, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUserComments, userID)
	if err != nil {
		log.Err(err).Str("func", "*commentRepository.ListUserComments").Int64("user_id", userID).Msg("error: user comment listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	comments := make([]models.UserComment, 0, 20)
	for rows.Next() {
		var comment models.UserComment
		if err := rows.Scan(&comment.ID, &comment.StoryID, &comment.StoryTitle, &comment.Content); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		comments = append(comments, comment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return comments, nil
}

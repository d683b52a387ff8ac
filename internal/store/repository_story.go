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

// storyRepository is the PostgreSQL-backed implementation of
// [StoryRepository], covering the "stories" and "chapters" tables.
type storyRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewStoryRepository constructs a [StoryRepository] backed by the provided
// database connection and logger.
func NewStoryRepository(db *DB, logger *logger.Logger) StoryRepository {
	logger.Debug().Msg("creating story repository")
	return &storyRepository{
		db:     db,
		logger: logger,
	}
}

func (r *storyRepository) CreateStory(ctx context.Context, story models.Story) (models.Story, error) {
	log := logger.FromContext(ctx)

	var created models.Story
	row := r.db.QueryRowContext(ctx, createStory, story.Title, story.Description, story.CoverImageURL, story.UserID)

	if err := row.Scan(&created.ID, &created.Title, &created.Description, &created.CoverImageURL, &created.UserID); err != nil {
		log.Err(err).Str("func", "*storyRepository.CreateStory").Int64("user_id", story.UserID).Msg("error: story was not created")
		return models.Story{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

// DeleteStory removes a story owned by userID. Deleting a story that does
// not exist, or that belongs to another user, returns [ErrStoryNotFound].
func (r *storyRepository) DeleteStory(ctx context.Context, storyID int64, userID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteStory, storyID, userID)
	if err != nil {
		log.Err(err).Str("func", "*storyRepository.DeleteStory").Int64("story_id", storyID).Msg("error: story deletion failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if removed == 0 {
		return ErrStoryNotFound
	}

	return nil
}

// ListStories returns every story joined with its author's username, newest
// first, for the public stories index.
func (r *storyRepository) ListStories(ctx context.Context) ([]models.StoryListing, error) {
	log := logger.FromContext(ctx)

	query, args, err := sq.StatementBuilder.PlaceholderFormat(sq.Dollar).
		Select("stories.id", "users.username", "stories.title", "stories.description").
		From("stories").
		Join("users ON users.id = stories.user_id").
		OrderBy("stories.id DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*storyRepository.ListStories").Msg("error: story listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	listings := make([]models.StoryListing, 0, 50)
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

func (r *storyRepository) ListUserStories(ctx context.Context, userID int64) ([]models.Story, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listUserStories, userID)
	if err != nil {
		log.Err(err).Str("func", "*storyRepository.ListUserStories").Int64("user_id", userID).Msg("error: user story listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	stories := make([]models.Story, 0, 10)
	for rows.Next() {
		story := models.Story{UserID: userID}
		if err := rows.Scan(&story.ID, &story.Title, &story.Description, &story.CoverImageURL); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		stories = append(stories, story)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return stories, nil
}

// StoryOverview aggregates a story with its author and chapter count.
// Returns [ErrStoryNotFound] when the story does not exist.
func (r *storyRepository) StoryOverview(ctx context.Context, storyID int64) (models.StoryOverview, error) {
	log := logger.FromContext(ctx)

	var overview models.StoryOverview
	row := r.db.QueryRowContext(ctx, storyOverview, storyID)

	if err := row.Scan(&overview.StoryID, &overview.Author, &overview.Title, &overview.Description, &overview.NumberOfChapters); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.StoryOverview{}, ErrStoryNotFound
		}

		log.Err(err).Str("func", "*storyRepository.StoryOverview").Int64("story_id", storyID).Msg("error: overview lookup failed")
		return models.StoryOverview{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return overview, nil
}

func (r *storyRepository) CreateChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error) {
	log := logger.FromContext(ctx)

	var created models.Chapter
	row := r.db.QueryRowContext(ctx, createChapter, chapter.StoryID, chapter.Heading, chapter.Content, chapter.SortPosition)

	if err := row.Scan(&created.ID, &created.StoryID, &created.Heading, &created.Content, &created.SortPosition); err != nil {
		log.Err(err).Str("func", "*storyRepository.CreateChapter").Int64("story_id", chapter.StoryID).Msg("error: chapter was not created")
		return models.Chapter{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return created, nil
}

func (r *storyRepository) ListChapters(ctx context.Context, storyID int64) ([]models.Chapter, error) {
	log := logger.FromContext(ctx)

	rows, err := r.db.QueryContext(ctx, listChapters, storyID)
	if err != nil {
		log.Err(err).Str("func", "*storyRepository.ListChapters").Int64("story_id", storyID).Msg("error: chapter listing failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	chapters := make([]models.Chapter, 0, 10)
	for rows.Next() {
		var chapter models.Chapter
		if err := rows.Scan(&chapter.ID, &chapter.StoryID, &chapter.Heading, &chapter.Content, &chapter.SortPosition); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		chapters = append(chapters, chapter)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return chapters, nil
}

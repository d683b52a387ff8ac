package store

import (
	"context"

	"github.com/storynest/storynest/models"
)

// UserRepository is the credential store: it persists username/password-hash
// pairs and retrieves them for authentication. Password hashing happens in
// the service layer; the stored value is opaque here.
type UserRepository interface {
	// CreateUser inserts a new user row. A unique_violation on the username
	// column is mapped to [ErrUsernameTaken].
	CreateUser(ctx context.Context, username string, passwordHash string) (models.User, error)

	// FindUserByUsername retrieves a user record including the password
	// hash. Returns [ErrUserNotFound] when no row matches.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)

	// FindUserByID retrieves a user record by its primary key. Returns
	// [ErrUserNotFound] when no row matches.
	FindUserByID(ctx context.Context, userID int64) (models.User, error)

	// UsernameExists reports whether a user with the given username exists.
	// The result is advisory only; concurrent registrations are arbitrated
	// by the UNIQUE constraint, not by this check.
	UsernameExists(ctx context.Context, username string) (bool, error)
}

// SessionRepository is the session store. Expired rows behave as absent on
// every read path and are lazily pruned as a side effect of writes and
// resolutions, keeping the store bounded without a background job.
type SessionRepository interface {
	// CreateSession inserts a session row with a server-computed expiry
	// (now plus the repository's fixed TTL) and prunes expired rows.
	CreateSession(ctx context.Context, token string, userID int64, csrfSeed string) (models.Session, error)

	// ResolveSession returns the session matching token whose expiry lies
	// in the future, pruning expired rows as a side effect. Returns
	// [ErrSessionNotFound] for unknown and expired tokens alike.
	ResolveSession(ctx context.Context, token string) (models.Session, error)

	// DeleteSession removes the session row for token, reporting whether a
	// row was removed. Deleting an absent token is not an error.
	DeleteSession(ctx context.Context, token string) (bool, error)

	// PruneExpired bulk-deletes all sessions whose expiry has passed and
	// returns the number of rows removed. Safe to call concurrently; the
	// delete-where-expired form makes overlapping prunes idempotent.
	PruneExpired(ctx context.Context) (int64, error)
}

// StoryRepository persists stories and their chapters.
type StoryRepository interface {
	CreateStory(ctx context.Context, story models.Story) (models.Story, error)
	DeleteStory(ctx context.Context, storyID int64, userID int64) error
	ListStories(ctx context.Context) ([]models.StoryListing, error)
	ListUserStories(ctx context.Context, userID int64) ([]models.Story, error)
	StoryOverview(ctx context.Context, storyID int64) (models.StoryOverview, error)
	CreateChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error)
	ListChapters(ctx context.Context, storyID int64) ([]models.Chapter, error)
}

// CommentRepository persists reader comments.
type CommentRepository interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64, creatorID int64) error
	ListStoryComments(ctx context.Context, storyID int64) ([]models.Comment, error)
	ListUserComments(ctx context.Context, userID int64) ([]models.UserComment, error)
}

// FavoriteRepository persists story bookmarks.
type FavoriteRepository interface {
	AddFavorite(ctx context.Context, userID int64, storyID int64) error
	RemoveFavorite(ctx context.Context, userID int64, storyID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]models.StoryListing, error)
}

// ProfileRepository persists author profiles.
type ProfileRepository interface {
	CreateProfile(ctx context.Context, userID int64) (models.Profile, error)
	ProfileByUsername(ctx context.Context, username string) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error)
}

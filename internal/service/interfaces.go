package service

import (
	"context"

	"github.com/storynest/storynest/models"
)

// AuthService owns credential handling: password hashing at registration
// and constant-time verification at login.
type AuthService interface {
	// Register creates a new account from the submitted credentials,
	// hashing the password before it reaches persistence, and provisions
	// the default author profile.
	Register(ctx context.Context, credentials models.Credentials) (models.User, error)

	// Login verifies the submitted credentials against the stored hash.
	// Unknown usernames and wrong passwords both surface as
	// [ErrInvalidCredentials].
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)

	// UserByID retrieves the account a resolved session belongs to.
	UserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionService owns the session lifecycle and the CSRF tokens derived
// from each session's seed.
type SessionService interface {
	// Issue mints a fresh opaque session token and CSRF seed, persists the
	// session, and returns it together with a derived CSRF token for the
	// client.
	Issue(ctx context.Context, userID int64) (models.Session, string, error)

	// Resolve returns the active session for token; expired and unknown
	// tokens both yield store.ErrSessionNotFound.
	Resolve(ctx context.Context, token string) (models.Session, error)

	// CSRFToken derives a fresh CSRF token from the session's seed. Any
	// number of tokens may be derived from one seed; all verify against it.
	CSRFToken(session models.Session) (string, error)

	// VerifyCSRF reports whether token was derived from the session's seed.
	// Comparison is constant-time.
	VerifyCSRF(session models.Session, token string) bool

	// Revoke deletes the session row for token, reporting whether a row
	// was removed. Revoking an absent token is not an error.
	Revoke(ctx context.Context, token string) (bool, error)
}

// StoryService manages stories and their chapters.
type StoryService interface {
	CreateStory(ctx context.Context, story models.Story) (models.Story, error)
	DeleteStory(ctx context.Context, storyID int64, userID int64) error
	ListStories(ctx context.Context) ([]models.StoryListing, error)
	ListUserStories(ctx context.Context, userID int64) ([]models.Story, error)
	StoryOverview(ctx context.Context, storyID int64) (models.StoryOverview, error)
	CreateChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error)
	ListChapters(ctx context.Context, storyID int64) ([]models.Chapter, error)
}

// CommentService manages reader comments.
type CommentService interface {
	CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error)
	DeleteComment(ctx context.Context, commentID int64, creatorID int64) error
	ListStoryComments(ctx context.Context, storyID int64) ([]models.Comment, error)
	ListUserComments(ctx context.Context, userID int64) ([]models.UserComment, error)
}

// FavoriteService manages story bookmarks.
type FavoriteService interface {
	AddFavorite(ctx context.Context, userID int64, storyID int64) error
	RemoveFavorite(ctx context.Context, userID int64, storyID int64) error
	ListFavorites(ctx context.Context, userID int64) ([]models.StoryListing, error)
}

// ProfileService manages author profiles.
type ProfileService interface {
	ProfileByUsername(ctx context.Context, username string) (models.Profile, error)
	UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error)
}

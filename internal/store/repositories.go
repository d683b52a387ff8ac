package store

import (
	"time"

	"github.com/storynest/storynest/internal/logger"
)

// Repositories bundles every repository backed by the shared database
// handle. It is the single persistence entry point handed to the service
// layer.
type Repositories struct {
	Users     UserRepository
	Sessions  SessionRepository
	Stories   StoryRepository
	Comments  CommentRepository
	Favorites FavoriteRepository
	Profiles  ProfileRepository
}

// NewRepositories constructs all repositories over the given connection.
// sessionTTL is the fixed lifetime applied to every created session.
func NewRepositories(db *DB, sessionTTL time.Duration, logger *logger.Logger) *Repositories {
	return &Repositories{
		Users:     NewUserRepository(db, logger),
		Sessions:  NewSessionRepository(db, sessionTTL, logger),
		Stories:   NewStoryRepository(db, logger),
		Comments:  NewCommentRepository(db, logger),
		Favorites: NewFavoriteRepository(db, logger),
		Profiles:  NewProfileRepository(db, logger),
	}
}

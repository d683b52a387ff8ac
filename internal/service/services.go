package service

import (
	"github.com/storynest/storynest/internal/config"
	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/store"
)

type Services struct {
	AuthService     AuthService
	SessionService  SessionService
	StoryService    StoryService
	CommentService  CommentService
	FavoriteService FavoriteService
	ProfileService  ProfileService
}

func NewServices(repositories *store.Repositories, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:     NewAuthService(repositories.Users, repositories.Profiles, cfg.App, logger),
		SessionService:  NewSessionService(repositories.Sessions, logger),
		StoryService:    NewStoryService(repositories.Stories, logger),
		CommentService:  NewCommentService(repositories.Comments, logger),
		FavoriteService: NewFavoriteService(repositories.Favorites, logger),
		ProfileService:  NewProfileService(repositories.Profiles, logger),
	}
}

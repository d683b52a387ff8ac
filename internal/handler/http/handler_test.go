package http

import (
	"context"
	"errors"
	"time"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/service"
	"github.com/storynest/storynest/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn func(ctx context.Context, credentials models.Credentials) (models.User, error)
	loginFn    func(ctx context.Context, credentials models.Credentials) (models.User, error)
	userByIDFn func(ctx context.Context, userID int64) (models.User, error)
}

func (m *mockAuthService) Register(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, credentials)
	}
	return models.User{}, nil
}

func (m *mockAuthService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, credentials)
	}
	return models.User{}, nil
}

func (m *mockAuthService) UserByID(ctx context.Context, userID int64) (models.User, error) {
	if m.userByIDFn != nil {
		return m.userByIDFn(ctx, userID)
	}
	return models.User{ID: userID}, nil
}

// ─────────────────────────────────────────────
// Mock: service.SessionService
// ─────────────────────────────────────────────

type mockSessionService struct {
	issueFn      func(ctx context.Context, userID int64) (models.Session, string, error)
	resolveFn    func(ctx context.Context, token string) (models.Session, error)
	csrfTokenFn  func(session models.Session) (string, error)
	verifyCSRFFn func(session models.Session, token string) bool
	revokeFn     func(ctx context.Context, token string) (bool, error)
}

func (m *mockSessionService) Issue(ctx context.Context, userID int64) (models.Session, string, error) {
	if m.issueFn != nil {
		return m.issueFn(ctx, userID)
	}
	return models.Session{UserID: userID, Token: "issued-token"}, "issued-csrf-token", nil
}

func (m *mockSessionService) Resolve(ctx context.Context, token string) (models.Session, error) {
	if m.resolveFn != nil {
		return m.resolveFn(ctx, token)
	}
	return models.Session{}, nil
}

func (m *mockSessionService) CSRFToken(session models.Session) (string, error) {
	if m.csrfTokenFn != nil {
		return m.csrfTokenFn(session)
	}
	return "derived-csrf-token", nil
}

func (m *mockSessionService) VerifyCSRF(session models.Session, token string) bool {
	if m.verifyCSRFFn != nil {
		return m.verifyCSRFFn(session, token)
	}
	return false
}

func (m *mockSessionService) Revoke(ctx context.Context, token string) (bool, error) {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, token)
	}
	return false, nil
}

// ─────────────────────────────────────────────
// Mock: service.StoryService
// ─────────────────────────────────────────────

type mockStoryService struct {
	createStoryFn     func(ctx context.Context, story models.Story) (models.Story, error)
	deleteStoryFn     func(ctx context.Context, storyID int64, userID int64) error
	listStoriesFn     func(ctx context.Context) ([]models.StoryListing, error)
	listUserStoriesFn func(ctx context.Context, userID int64) ([]models.Story, error)
	storyOverviewFn   func(ctx context.Context, storyID int64) (models.StoryOverview, error)
	createChapterFn   func(ctx context.Context, chapter models.Chapter) (models.Chapter, error)
	listChaptersFn    func(ctx context.Context, storyID int64) ([]models.Chapter, error)
}

func (m *mockStoryService) CreateStory(ctx context.Context, story models.Story) (models.Story, error) {
	if m.createStoryFn != nil {
		return m.createStoryFn(ctx, story)
	}
	return story, nil
}

func (m *mockStoryService) DeleteStory(ctx context.Context, storyID int64, userID int64) error {
	if m.deleteStoryFn != nil {
		return m.deleteStoryFn(ctx, storyID, userID)
	}
	return nil
}

func (m *mockStoryService) ListStories(ctx context.Context) ([]models.StoryListing, error) {
	if m.listStoriesFn != nil {
		return m.listStoriesFn(ctx)
	}
	return nil, nil
}

func (m *mockStoryService) ListUserStories(ctx context.Context, userID int64) ([]models.Story, error) {
	if m.listUserStoriesFn != nil {
		return m.listUserStoriesFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockStoryService) StoryOverview(ctx context.Context, storyID int64) (models.StoryOverview, error) {
	if m.storyOverviewFn != nil {
		return m.storyOverviewFn(ctx, storyID)
	}
	return models.StoryOverview{}, nil
}

func (m *mockStoryService) CreateChapter(ctx context.Context, chapter models.Chapter) (models.Chapter, error) {
	if m.createChapterFn != nil {
		return m.createChapterFn(ctx, chapter)
	}
	return chapter, nil
}

func (m *mockStoryService) ListChapters(ctx context.Context, storyID int64) ([]models.Chapter, error) {
	if m.listChaptersFn != nil {
		return m.listChaptersFn(ctx, storyID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.CommentService
// ─────────────────────────────────────────────

type mockCommentService struct {
	createCommentFn     func(ctx context.Context, comment models.Comment) (models.Comment, error)
	deleteCommentFn     func(ctx context.Context, commentID int64, creatorID int64) error
	listStoryCommentsFn func(ctx context.Context, storyID int64) ([]models.Comment, error)
	listUserCommentsFn  func(ctx context.Context, userID int64) ([]models.UserComment, error)
}

func (m *mockCommentService) CreateComment(ctx context.Context, comment models.Comment) (models.Comment, error) {
	if m.createCommentFn != nil {
		return m.createCommentFn(ctx, comment)
	}
	return comment, nil
}

func (m *mockCommentService) DeleteComment(ctx context.Context, commentID int64, creatorID int64) error {
	if m.deleteCommentFn != nil {
		return m.deleteCommentFn(ctx, commentID, creatorID)
	}
	return nil
}

func (m *mockCommentService) ListStoryComments(ctx context.Context, storyID int64) ([]models.Comment, error) {
	if m.listStoryCommentsFn != nil {
		return m.listStoryCommentsFn(ctx, storyID)
	}
	return nil, nil
}

func (m *mockCommentService) ListUserComments(ctx context.Context, userID int64) ([]models.UserComment, error) {
	if m.listUserCommentsFn != nil {
		return m.listUserCommentsFn(ctx, userID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.FavoriteService
// ─────────────────────────────────────────────

type mockFavoriteService struct {
	addFavoriteFn    func(ctx context.Context, userID int64, storyID int64) error
	removeFavoriteFn func(ctx context.Context, userID int64, storyID int64) error
	listFavoritesFn  func(ctx context.Context, userID int64) ([]models.StoryListing, error)
}

func (m *mockFavoriteService) AddFavorite(ctx context.Context, userID int64, storyID int64) error {
	if m.addFavoriteFn != nil {
		return m.addFavoriteFn(ctx, userID, storyID)
	}
	return nil
}

func (m *mockFavoriteService) RemoveFavorite(ctx context.Context, userID int64, storyID int64) error {
	if m.removeFavoriteFn != nil {
		return m.removeFavoriteFn(ctx, userID, storyID)
	}
	return nil
}

func (m *mockFavoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.StoryListing, error) {
	if m.listFavoritesFn != nil {
		return m.listFavoritesFn(ctx, userID)
	}
	return nil, nil
}

// ─────────────────────────────────────────────
// Mock: service.ProfileService
// ─────────────────────────────────────────────

type mockProfileService struct {
	profileByUsernameFn func(ctx context.Context, username string) (models.Profile, error)
	updateProfileFn     func(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error)
}

func (m *mockProfileService) ProfileByUsername(ctx context.Context, username string) (models.Profile, error) {
	if m.profileByUsernameFn != nil {
		return m.profileByUsernameFn(ctx, username)
	}
	return models.Profile{}, nil
}

func (m *mockProfileService) UpdateProfile(ctx context.Context, userID int64, update models.ProfileUpdate) (models.Profile, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(ctx, userID, update)
	}
	return models.Profile{}, nil
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

func newTestServices() *service.Services {
	return &service.Services{
		AuthService:     &mockAuthService{},
		SessionService:  &mockSessionService{},
		StoryService:    &mockStoryService{},
		CommentService:  &mockCommentService{},
		FavoriteService: &mockFavoriteService{},
		ProfileService:  &mockProfileService{},
	}
}

func newTestHandler(services *service.Services) *Handler {
	return &Handler{
		services:    services,
		environment: developmentEnvironment,
		sessionTTL:  24 * time.Hour,
		logger:      logger.Nop(),
	}
}

var errStorage = errors.New("storage error")

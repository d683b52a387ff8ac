package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/register", h.register)
		r.Post("/api/login", h.login)
		r.Get("/api/session", h.session)
	})

	// public reads: an attached session is resolved into the context when
	// present, anonymous requests pass through untouched
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)

		r.Get("/api/stories", h.listStories)
		r.Get("/api/stories/{storyID}/overview", h.storyOverview)
		r.Get("/api/stories/{storyID}/chapters", h.listChapters)
		r.Get("/api/stories/{storyID}/comments", h.listStoryComments)
		r.Get("/api/users/{username}", h.userProfile)

		// identity-bound reads: resolved session required, but no CSRF
		// token since nothing is mutated
		r.Get("/api/favorites", h.listFavorites)
		r.Get("/api/comments", h.listUserComments)
	})

	// mutating routes: every request passes the session + CSRF gate
	router.Group(func(r chi.Router) {
		r.Use(h.requireAuth)

		r.Post("/api/logout", h.logout)

		r.Post("/api/stories", h.createStory)
		r.Delete("/api/stories", h.deleteStory)
		r.Post("/api/stories/chapters", h.createChapter)

		r.Post("/api/comments", h.createComment)
		r.Delete("/api/comments", h.deleteComment)

		r.Post("/api/favorites", h.addFavorite)
		r.Delete("/api/favorites", h.removeFavorite)

		r.Patch("/api/profile", h.updateProfile)
	})

	return router
}

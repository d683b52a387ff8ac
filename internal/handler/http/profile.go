package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/service"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/internal/utils"
	"github.com/storynest/storynest/models"
)

// userProfile serves the public author page: profile fields plus the
// author's stories.
func (h *Handler) userProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	username := chi.URLParam(r, "username")

	profile, err := h.services.ProfileService.ProfileByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrProfileNotFound) || errors.Is(err, service.ErrInvalidDataProvided) {
			utils.WriteJSON(w, models.NewErrorResponse(msgNotFound), http.StatusNotFound)
			return
		}

		log.Err(err).Msg("profile lookup failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	stories, err := h.services.StoryService.ListUserStories(ctx, profile.UserID)
	if err != nil {
		log.Err(err).Msg("author story listing failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, struct {
		models.Profile
		Stories []models.Story `json:"stories"`
	}{Profile: profile, Stories: stories}, http.StatusOK)
}

// updateProfile applies a partial bio/avatar update for the authenticated
// user. Absent JSON fields are left untouched.
func (h *Handler) updateProfile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.unauthorized(w, r)
		return
	}

	var update models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON), http.StatusBadRequest)
		return
	}

	profile, err := h.services.ProfileService.UpdateProfile(ctx, userID, update)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrValidationNoFieldsProvided):
			utils.WriteJSON(w, models.NewErrorResponse(err.Error()), http.StatusBadRequest)
			return
		case errors.Is(err, store.ErrProfileNotFound):
			utils.WriteJSON(w, models.NewErrorResponse(msgNotFound), http.StatusNotFound)
			return
		default:
			log.Err(err).Msg("profile update failed")
			utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

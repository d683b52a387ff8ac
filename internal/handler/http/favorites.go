package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/utils"
	"github.com/storynest/storynest/models"
)

// listFavorites returns the caller's bookmarked stories. Anonymous requests
// get the uniform 401.
func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.unauthorized(w, r)
		return
	}

	listings, err := h.services.FavoriteService.ListFavorites(ctx, userID)
	if err != nil {
		log.Err(err).Msg("favorite listing failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, listings, http.StatusOK)
}

func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	h.changeFavorite(w, r, h.services.FavoriteService.AddFavorite)
}

func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	h.changeFavorite(w, r, h.services.FavoriteService.RemoveFavorite)
}

// changeFavorite handles both bookmark mutations; they share the payload
// shape and both are idempotent.
func (h *Handler) changeFavorite(w http.ResponseWriter, r *http.Request, change func(ctx context.Context, userID int64, storyID int64) error) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.unauthorized(w, r)
		return
	}

	var payload struct {
		StoryID int64 `json:"storyId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON), http.StatusBadRequest)
		return
	}

	if err := change(ctx, userID, payload.StoryID); err != nil {
		log.Err(err).Msg("favorite change failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

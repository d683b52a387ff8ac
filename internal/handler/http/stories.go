package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/service"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/internal/utils"
	"github.com/storynest/storynest/models"
)

// storyIDFromURL parses the {storyID} route parameter.
func storyIDFromURL(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "storyID"), 10, 64)
}

func (h *Handler) listStories(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	listings, err := h.services.StoryService.ListStories(r.Context())
	if err != nil {
		log.Err(err).Msg("story listing failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, listings, http.StatusOK)
}

func (h *Handler) storyOverview(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	storyID, err := storyIDFromURL(r)
	if err != nil {
		utils.WriteJSON(w, models.NewErrorResponse(msgNotFound), http.StatusNotFound)
		return
	}

	overview, err := h.services.StoryService.StoryOverview(r.Context(), storyID)
	if err != nil {
		if errors.Is(err, store.ErrStoryNotFound) {
			utils.WriteJSON(w, models.NewErrorResponse(msgNotFound), http.StatusNotFound)
			return
		}

		log.Err(err).Msg("story overview lookup failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, overview, http.StatusOK)
}

func (h *Handler) listChapters(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	storyID, err := storyIDFromURL(r)
	if err != nil {
		utils.WriteJSON(w, models.NewErrorResponse(msgNotFound), http.StatusNotFound)
		return
	}

	chapters, err := h.services.StoryService.ListChapters(r.Context(), storyID)
	if err != nil {
		log.Err(err).Msg("chapter listing failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, chapters, http.StatusOK)
}

func (h *Handler) createStory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.unauthorized(w, r)
		return
	}

	var payload struct {
		Title       string `json:"title"`
		Description string `json:"description"`
		CoverImg    string `json:"coverImg"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON), http.StatusBadRequest)
		return
	}

	created, err := h.services.StoryService.CreateStory(ctx, models.Story{
		UserID:        userID,
		Title:         payload.Title,
		Description:   payload.Description,
		CoverImageURL: payload.CoverImg,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationNoTitleProvided) {
			utils.WriteJSON(w, models.NewErrorResponse(err.Error()), http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("story creation failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteStory(w http.ResponseWriter, r *http.Request) {
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

	if err := h.services.StoryService.DeleteStory(ctx, payload.StoryID, userID); err != nil {
		// a story owned by someone else is indistinguishable from a missing
		// one; ownership is enforced in the store query
		if errors.Is(err, store.ErrStoryNotFound) {
			utils.WriteJSON(w, models.NewErrorResponse(msgNotFound), http.StatusNotFound)
			return
		}

		log.Err(err).Msg("story deletion failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) createChapter(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var payload struct {
		StoryID      int64  `json:"storyId"`
		Heading      string `json:"heading"`
		Content      string `json:"content"`
		SortPosition int64  `json:"sortPosition"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON), http.StatusBadRequest)
		return
	}

	created, err := h.services.StoryService.CreateChapter(ctx, models.Chapter{
		StoryID:      payload.StoryID,
		Heading:      payload.Heading,
		Content:      payload.Content,
		SortPosition: payload.SortPosition,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationNoContentProvided) {
			utils.WriteJSON(w, models.NewErrorResponse(err.Error()), http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("chapter creation failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

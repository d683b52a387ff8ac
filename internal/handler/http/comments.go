package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/storynest/storynest/internal/logger"
	"github.com/storynest/storynest/internal/service"
	"github.com/storynest/storynest/internal/store"
	"github.com/storynest/storynest/internal/utils"
	"github.com/storynest/storynest/models"
)

func (h *Handler) listStoryComments(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	storyID, err := storyIDFromURL(r)
	if err != nil {
		utils.WriteJSON(w, models.NewErrorResponse(msgNotFound), http.StatusNotFound)
		return
	}

	comments, err := h.services.CommentService.ListStoryComments(r.Context(), storyID)
	if err != nil {
		log.Err(err).Msg("comment listing failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

// listUserComments returns the caller's own comments joined with the
// stories they were left on. Anonymous requests get the uniform 401.
func (h *Handler) listUserComments(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.unauthorized(w, r)
		return
	}

	comments, err := h.services.CommentService.ListUserComments(ctx, userID)
	if err != nil {
		log.Err(err).Msg("user comment listing failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, comments, http.StatusOK)
}

func (h *Handler) createComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.unauthorized(w, r)
		return
	}

	var payload struct {
		StoryID int64  `json:"storyId"`
		Content string `json:"content"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON), http.StatusBadRequest)
		return
	}

	created, err := h.services.CommentService.CreateComment(ctx, models.Comment{
		StoryID:   payload.StoryID,
		CreatorID: userID,
		Content:   payload.Content,
	})
	if err != nil {
		if errors.Is(err, service.ErrValidationNoContentProvided) {
			utils.WriteJSON(w, models.NewErrorResponse(err.Error()), http.StatusBadRequest)
			return
		}

		log.Err(err).Msg("comment creation failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) deleteComment(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		h.unauthorized(w, r)
		return
	}

	var payload struct {
		CommentID int64 `json:"commentId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInvalidJSON), http.StatusBadRequest)
		return
	}

	if err := h.services.CommentService.DeleteComment(ctx, payload.CommentID, userID); err != nil {
		if errors.Is(err, store.ErrCommentNotFound) {
			utils.WriteJSON(w, models.NewErrorResponse(msgNotFound), http.StatusNotFound)
			return
		}

		log.Err(err).Msg("comment deletion failed")
		utils.WriteJSON(w, models.NewErrorResponse(msgInternalError), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

package http

import (
	"net/http"

	"github.com/MKhiriev/echosell-api/internal/app"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/models"
)

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pagination(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	users, total, err := h.services.UserService.List(r.Context(), skip, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, app.MsgUsersRetrieved, models.NewPage(users, total, skip, limit))
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, app.MsgUserRetrieved, user)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch models.UserUpdate
	if !h.decodeAndValidate(w, r, &patch) {
		return
	}

	updated, err := h.services.UserService.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", id).Msg("user updated")
	respondSuccess(w, http.StatusOK, app.MsgUserUpdated, updated)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.services.UserService.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("user_id", id).Msg("user deleted")
	respondMessage(w, http.StatusOK, app.MsgUserDeleted)
}

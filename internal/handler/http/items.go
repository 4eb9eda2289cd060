package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/echosell-api/internal/app"
	"github.com/MKhiriev/echosell-api/internal/logger"
	"github.com/MKhiriev/echosell-api/models"
)

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	ownerID, err := strconv.ParseInt(r.URL.Query().Get("owner_id"), 10, 64)
	if err != nil || ownerID < 1 {
		respondMessage(w, http.StatusBadRequest, "invalid owner_id query parameter")
		return
	}

	var request createItemRequest
	if !h.decodeAndValidate(w, r, &request) {
		return
	}

	item := models.Item{
		Title:       request.Title,
		Description: request.Description,
	}

	created, err := h.services.ItemService.Create(r.Context(), item, ownerID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("item_id", created.ID).Int64("owner_id", ownerID).Msg("item created")
	respondSuccess(w, http.StatusOK, app.MsgItemCreated, created)
}

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	skip, limit, err := pagination(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	items, total, err := h.services.ItemService.ListAll(r.Context(), skip, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, app.MsgItemsRetrieved, models.NewPage(items, total, skip, limit))
}

func (h *Handler) listItemsByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID, err := pathID(r, "owner_id")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	skip, limit, err := pagination(r)
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	items, total, err := h.services.ItemService.ListByOwner(r.Context(), ownerID, skip, limit)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, app.MsgItemsRetrieved, models.NewPage(items, total, skip, limit))
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	item, err := h.services.ItemService.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondSuccess(w, http.StatusOK, app.MsgItemRetrieved, item)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	var patch models.ItemUpdate
	if !h.decodeAndValidate(w, r, &patch) {
		return
	}

	updated, err := h.services.ItemService.Update(r.Context(), id, patch)
	if err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("item_id", id).Msg("item updated")
	respondSuccess(w, http.StatusOK, app.MsgItemUpdated, updated)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		respondMessage(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.services.ItemService.Delete(r.Context(), id); err != nil {
		respondError(w, r, err)
		return
	}

	logger.FromRequest(r).Info().Int64("item_id", id).Msg("item deleted")
	respondMessage(w, http.StatusOK, app.MsgItemDeleted)
}

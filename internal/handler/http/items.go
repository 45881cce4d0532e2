// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-todo-keeper/internal/app"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func (h *Handler) getItems(w http.ResponseWriter, r *http.Request) {
	listID, err := idParam(r, "listID")
	if err != nil {
		writeError(w, r, "*Handler.getItems", err)
		return
	}

	items, err := h.services.ItemService.GetItems(r.Context(), listID)
	if err != nil {
		writeError(w, r, "*Handler.getItems", err)
		return
	}

	resp := make([]models.ItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, models.NewItemResponse(item))
	}
	h.writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	listID, err := idParam(r, "listID")
	if err != nil {
		writeError(w, r, "*Handler.createItem", err)
		return
	}

	var req models.ItemRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createItem").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.ItemService.CreateItem(r.Context(), models.TodoItem{
		ListID:      listID,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		writeError(w, r, "*Handler.createItem", err)
		return
	}
	h.writeJSON(w, r, models.NewItemResponse(created), http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	listID, err := idParam(r, "listID")
	if err != nil {
		writeError(w, r, "*Handler.updateItem", err)
		return
	}
	itemID, err := idParam(r, "itemID")
	if err != nil {
		writeError(w, r, "*Handler.updateItem", err)
		return
	}

	var req models.ItemRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateItem").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ItemService.UpdateItem(r.Context(), models.TodoItem{
		ID:          itemID,
		ListID:      listID,
		Description: req.Description,
		Completed:   req.Completed,
	})
	if err != nil {
		writeError(w, r, "*Handler.updateItem", err)
		return
	}
	h.writeJSON(w, r, models.NewItemResponse(updated), http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	listID, err := idParam(r, "listID")
	if err != nil {
		writeError(w, r, "*Handler.deleteItem", err)
		return
	}
	itemID, err := idParam(r, "itemID")
	if err != nil {
		writeError(w, r, "*Handler.deleteItem", err)
		return
	}

	if err = h.services.ItemService.DeleteItem(r.Context(), listID, itemID); err != nil {
		writeError(w, r, "*Handler.deleteItem", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// toggleCompleteAsync accepts a bulk completion; the outcome is pushed to
// the list subscribers.
func (h *Handler) toggleCompleteAsync(w http.ResponseWriter, r *http.Request) {
	listID, err := idParam(r, "listID")
	if err != nil {
		writeError(w, r, "*Handler.toggleCompleteAsync", err)
		return
	}

	var req models.ToggleCompleteRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.toggleCompleteAsync").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	if err = h.services.ItemService.CompleteAll(r.Context(), listID, req.Completed); err != nil {
		writeError(w, r, "*Handler.toggleCompleteAsync", err)
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

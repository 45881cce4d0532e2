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

func (h *Handler) getLists(w http.ResponseWriter, r *http.Request) {
	lists, err := h.services.ListService.GetLists(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.getLists", err)
		return
	}

	resp := make([]models.ListResponse, 0, len(lists))
	for _, list := range lists {
		resp = append(resp, models.NewListResponse(list))
	}
	h.writeJSON(w, r, resp, http.StatusOK)
}

func (h *Handler) createList(w http.ResponseWriter, r *http.Request) {
	var req models.ListRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.createList").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	created, err := h.services.ListService.CreateList(r.Context(), req.Name)
	if err != nil {
		writeError(w, r, "*Handler.createList", err)
		return
	}
	h.writeJSON(w, r, models.NewListResponse(created), http.StatusCreated)
}

func (h *Handler) getList(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "listID")
	if err != nil {
		writeError(w, r, "*Handler.getList", err)
		return
	}

	list, err := h.services.ListService.GetList(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.getList", err)
		return
	}
	h.writeJSON(w, r, models.NewListResponse(list), http.StatusOK)
}

func (h *Handler) updateList(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "listID")
	if err != nil {
		writeError(w, r, "*Handler.updateList", err)
		return
	}

	var req models.ListRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.updateList").Msg("invalid JSON was passed")
		http.Error(w, app.MsgInvalidJSON, http.StatusBadRequest)
		return
	}

	updated, err := h.services.ListService.UpdateList(r.Context(), id, req.Name)
	if err != nil {
		writeError(w, r, "*Handler.updateList", err)
		return
	}
	h.writeJSON(w, r, models.NewListResponse(updated), http.StatusOK)
}

func (h *Handler) deleteList(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r, "listID")
	if err != nil {
		writeError(w, r, "*Handler.deleteList", err)
		return
	}

	if err = h.services.ListService.DeleteList(r.Context(), id); err != nil {
		writeError(w, r, "*Handler.deleteList", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeJSON(w http.ResponseWriter, r *http.Request, data any, status int) {
	if _, err := utils.WriteJSON(w, data, status); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "*Handler.writeJSON").Msg("failed to write response")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/utils"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	listsPath      = "/todolists"
	listPath       = "/todolists/{listID}"
	itemsPath      = "/todolists/{listID}/todos"
	itemPath       = "/todolists/{listID}/todos/{itemID}"
	toggleAllPath  = "/todolists/{listID}/toggle-complete-async"
	healthPath     = "/healthz"
	listEventsPath = "/ws/todolists/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and request
// timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// CreateList implements [ServerAdapter]. POST /todolists.
func (h *httpServerAdapter) CreateList(ctx context.Context, name string) (models.TodoList, error) {
	var created models.ListResponse

	resp, err := h.request(ctx).
		SetBody(models.ListRequest{Name: name}).
		SetResult(&created).
		Post(listsPath)
	if err != nil {
		return models.TodoList{}, fmt.Errorf("create list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoList{}, err
	}
	if created.ID == 0 {
		h.logger.Error().Str("func", "httpServerAdapter.CreateList").Msg("created list has no id")
		return models.TodoList{}, fmt.Errorf("%w: created list has no id", ErrInvalidResponse)
	}

	return created.ToTodoList(), nil
}

// UpdateList implements [ServerAdapter]. PUT /todolists/{id}.
func (h *httpServerAdapter) UpdateList(ctx context.Context, id models.ID, name string) (models.TodoList, error) {
	var updated models.ListResponse

	resp, err := h.request(ctx).
		SetPathParam("listID", id.String()).
		SetBody(models.ListRequest{Name: name}).
		SetResult(&updated).
		Put(listPath)
	if err != nil {
		return models.TodoList{}, fmt.Errorf("update list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoList{}, err
	}
	if updated.ID == 0 {
		updated = models.ListResponse{ID: id, Name: name}
	}

	return updated.ToTodoList(), nil
}

// DeleteList implements [ServerAdapter]. DELETE /todolists/{id}.
func (h *httpServerAdapter) DeleteList(ctx context.Context, id models.ID) error {
	resp, err := h.request(ctx).
		SetPathParam("listID", id.String()).
		Delete(listPath)
	if err != nil {
		return fmt.Errorf("delete list request: %w", err)
	}

	return mapHTTPError(resp)
}

// CreateItem implements [ServerAdapter]. POST /todolists/{id}/todos.
func (h *httpServerAdapter) CreateItem(ctx context.Context, listID models.ID, description string, completed bool) (models.TodoItem, error) {
	var created models.ItemResponse

	resp, err := h.request(ctx).
		SetPathParam("listID", listID.String()).
		SetBody(models.ItemRequest{Description: description, Completed: completed}).
		SetResult(&created).
		Post(itemsPath)
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("create item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoItem{}, err
	}
	if created.ID == 0 {
		h.logger.Error().Str("func", "httpServerAdapter.CreateItem").
			Int64("list_id", int64(listID)).
			Msg("created item has no id")
		return models.TodoItem{}, fmt.Errorf("%w: created item has no id", ErrInvalidResponse)
	}

	item := created.ToTodoItem()
	item.ListID = listID
	return item, nil
}

// UpdateItem implements [ServerAdapter]. PUT /todolists/{id}/todos/{itemId}.
func (h *httpServerAdapter) UpdateItem(ctx context.Context, listID, itemID models.ID, description string, completed bool) (models.TodoItem, error) {
	var updated models.ItemResponse

	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"listID": listID.String(), "itemID": itemID.String()}).
		SetBody(models.ItemRequest{Description: description, Completed: completed}).
		SetResult(&updated).
		Put(itemPath)
	if err != nil {
		return models.TodoItem{}, fmt.Errorf("update item request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.TodoItem{}, err
	}
	if updated.ID == 0 {
		updated = models.ItemResponse{ID: itemID, Description: description, Completed: completed}
	}

	item := updated.ToTodoItem()
	item.ListID = listID
	return item, nil
}

// DeleteItem implements [ServerAdapter]. DELETE /todolists/{id}/todos/{itemId}.
func (h *httpServerAdapter) DeleteItem(ctx context.Context, listID, itemID models.ID) error {
	resp, err := h.request(ctx).
		SetPathParams(map[string]string{"listID": listID.String(), "itemID": itemID.String()}).
		Delete(itemPath)
	if err != nil {
		return fmt.Errorf("delete item request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetLists implements [ServerAdapter]. GET /todolists.
func (h *httpServerAdapter) GetLists(ctx context.Context) ([]models.TodoList, error) {
	var lists []models.ListResponse

	resp, err := h.request(ctx).
		SetResult(&lists).
		Get(listsPath)
	if err != nil {
		return nil, fmt.Errorf("get lists request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	out := make([]models.TodoList, 0, len(lists))
	for _, l := range lists {
		out = append(out, l.ToTodoList())
	}
	return out, nil
}

// GetItems implements [ServerAdapter]. GET /todolists/{id}/todos.
func (h *httpServerAdapter) GetItems(ctx context.Context, listID models.ID) ([]models.TodoItem, error) {
	var items []models.ItemResponse

	resp, err := h.request(ctx).
		SetPathParam("listID", listID.String()).
		SetResult(&items).
		Get(itemsPath)
	if err != nil {
		return nil, fmt.Errorf("get items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	out := make([]models.TodoItem, 0, len(items))
	for _, it := range items {
		item := it.ToTodoItem()
		item.ListID = listID
		out = append(out, item)
	}
	return out, nil
}

// ToggleCompleteAsync implements [ServerAdapter].
// PUT /todolists/{id}/toggle-complete-async.
func (h *httpServerAdapter) ToggleCompleteAsync(ctx context.Context, listID models.ID, completed bool) error {
	resp, err := h.request(ctx).
		SetPathParam("listID", listID.String()).
		SetBody(models.ToggleCompleteRequest{Completed: completed}).
		Put(toggleAllPath)
	if err != nil {
		return fmt.Errorf("toggle complete request: %w", err)
	}

	return mapHTTPError(resp)
}

// Ping implements [ServerAdapter]. GET /healthz.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.request(ctx).Get(healthPath)
	if err != nil {
		return fmt.Errorf("ping request: %w", err)
	}

	return mapHTTPError(resp)
}

// request starts a request bound to ctx. Bodies are always decoded as JSON
// regardless of the response content type.
func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		ForceContentType("application/json")
}

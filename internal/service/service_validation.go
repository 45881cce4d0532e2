// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/validators"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// ListValidationService checks list input before it reaches the wrapped
// service.
type ListValidationService struct {
	inner     ListService
	validator validators.Validator
}

func NewListValidationService() ListServiceWrapper {
	return &ListValidationService{
		validator: validators.NewTodoValidator(),
	}
}

func (v *ListValidationService) Wrap(inner ListService) ListService {
	v.inner = inner
	return v
}

func (v *ListValidationService) CreateList(ctx context.Context, name string) (models.TodoList, error) {
	if err := v.validator.Validate(ctx, models.ListRequest{Name: name}); err != nil {
		return models.TodoList{}, invalid(err)
	}
	return v.inner.CreateList(ctx, name)
}

func (v *ListValidationService) GetLists(ctx context.Context) ([]models.TodoList, error) {
	return v.inner.GetLists(ctx)
}

func (v *ListValidationService) GetList(ctx context.Context, id models.ID) (models.TodoList, error) {
	if err := v.validator.Validate(ctx, models.TodoList{ID: id}, validators.FieldListID); err != nil {
		return models.TodoList{}, invalid(err)
	}
	return v.inner.GetList(ctx, id)
}

func (v *ListValidationService) UpdateList(ctx context.Context, id models.ID, name string) (models.TodoList, error) {
	if err := v.validator.Validate(ctx, models.TodoList{ID: id, Name: name}); err != nil {
		return models.TodoList{}, invalid(err)
	}
	return v.inner.UpdateList(ctx, id, name)
}

func (v *ListValidationService) DeleteList(ctx context.Context, id models.ID) error {
	if err := v.validator.Validate(ctx, models.TodoList{ID: id}, validators.FieldListID); err != nil {
		return invalid(err)
	}
	return v.inner.DeleteList(ctx, id)
}

// ItemValidationService checks item input before it reaches the wrapped
// service.
type ItemValidationService struct {
	inner     ItemService
	validator validators.Validator
}

func NewItemValidationService() ItemServiceWrapper {
	return &ItemValidationService{
		validator: validators.NewTodoValidator(),
	}
}

func (v *ItemValidationService) Wrap(inner ItemService) ItemService {
	v.inner = inner
	return v
}

func (v *ItemValidationService) CreateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error) {
	if err := v.validator.Validate(ctx, item, validators.FieldListID, validators.FieldDescription); err != nil {
		return models.TodoItem{}, invalid(err)
	}
	return v.inner.CreateItem(ctx, item)
}

func (v *ItemValidationService) GetItems(ctx context.Context, listID models.ID) ([]models.TodoItem, error) {
	if err := v.validator.Validate(ctx, models.TodoItem{ListID: listID}, validators.FieldListID); err != nil {
		return nil, invalid(err)
	}
	return v.inner.GetItems(ctx, listID)
}

func (v *ItemValidationService) UpdateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error) {
	if err := v.validator.Validate(ctx, item); err != nil {
		return models.TodoItem{}, invalid(err)
	}
	return v.inner.UpdateItem(ctx, item)
}

func (v *ItemValidationService) DeleteItem(ctx context.Context, listID, id models.ID) error {
	if err := v.validator.Validate(ctx, models.TodoItem{ListID: listID, ID: id}, validators.FieldListID, validators.FieldItemID); err != nil {
		return invalid(err)
	}
	return v.inner.DeleteItem(ctx, listID, id)
}

func (v *ItemValidationService) CompleteAll(ctx context.Context, listID models.ID, completed bool) error {
	if err := v.validator.Validate(ctx, models.TodoItem{ListID: listID}, validators.FieldListID); err != nil {
		return invalid(err)
	}
	return v.inner.CompleteAll(ctx, listID, completed)
}

func invalid(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

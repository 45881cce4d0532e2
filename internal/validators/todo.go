// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldListID targets the id of a list, or the owning list of an item.
	FieldListID = "list_id"

	// FieldItemID targets the id of an item.
	FieldItemID = "item_id"

	// FieldName targets the name of a list.
	FieldName = "name"

	// FieldDescription targets the description of an item.
	FieldDescription = "description"
)

const (
	MaxNameLength        = 255
	MaxDescriptionLength = 1024
)

// TodoValidator implements [Validator] for lists, items and their request
// bodies. Both value and pointer forms are accepted.
type TodoValidator struct{}

func NewTodoValidator() Validator {
	return &TodoValidator{}
}

// Validate dispatches on the dynamic type of obj. Without fields a default
// set is checked:
//   - models.ListRequest: name
//   - models.ItemRequest: description
//   - models.TodoList: list_id, name
//   - models.TodoItem: list_id, item_id, description
func (v *TodoValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ListRequest:
		return v.validateList(models.TodoList{ID: 1, Name: value.Name}, defaultFields(fields, FieldName))
	case *models.ListRequest:
		return v.Validate(ctx, *value, fields...)
	case models.ItemRequest:
		return v.validateItem(models.TodoItem{ID: 1, ListID: 1, Description: value.Description}, defaultFields(fields, FieldDescription))
	case *models.ItemRequest:
		return v.Validate(ctx, *value, fields...)
	case models.TodoList:
		return v.validateList(value, defaultFields(fields, FieldListID, FieldName))
	case *models.TodoList:
		return v.Validate(ctx, *value, fields...)
	case models.TodoItem:
		return v.validateItem(value, defaultFields(fields, FieldListID, FieldItemID, FieldDescription))
	case *models.TodoItem:
		return v.Validate(ctx, *value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *TodoValidator) validateList(list models.TodoList, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldListID:
			if list.ID <= 0 {
				return ErrInvalidListID
			}
		case FieldName:
			if err := checkText(list.Name, MaxNameLength, ErrEmptyName, ErrNameTooLong); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func (v *TodoValidator) validateItem(item models.TodoItem, fields []string) error {
	for _, f := range fields {
		switch f {
		case FieldListID:
			if item.ListID <= 0 {
				return ErrInvalidListID
			}
		case FieldItemID:
			if item.ID <= 0 {
				return ErrInvalidItemID
			}
		case FieldDescription:
			if err := checkText(item.Description, MaxDescriptionLength, ErrEmptyDescription, ErrDescriptionTooLong); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}
	return nil
}

func checkText(s string, limit int, errEmpty, errTooLong error) error {
	if strings.TrimSpace(s) == "" {
		return errEmpty
	}
	if utf8.RuneCountInString(s) > limit {
		return errTooLong
	}
	return nil
}

func defaultFields(fields []string, defaults ...string) []string {
	if len(fields) == 0 {
		return defaults
	}
	return fields
}

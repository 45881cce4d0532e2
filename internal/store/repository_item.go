// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/jackc/pgerrcode"
)

// itemRepository is the PostgreSQL-backed implementation of [ItemRepository]
// over the "todo_items" table.
type itemRepository struct {
	*DB
	logger *logger.Logger
}

// NewItemRepository constructs an [ItemRepository] backed by db.
func NewItemRepository(db *DB, logger *logger.Logger) ItemRepository {
	logger.Debug().Msg("creating item repository")
	return &itemRepository{
		DB:     db,
		logger: logger,
	}
}

// CreateItem inserts item into its list. A missing list is reported as
// [ErrListNotFound] through the foreign key violation.
func (r *itemRepository) CreateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Msg("failed to build query")
		return models.TodoItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.TodoItem
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&created.ID, &created.ListID, &created.Description, &created.Completed)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.CreateItem").Int64("list_id", int64(item.ListID)).Msg("failed to insert item")
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.TodoItem{}, ErrListNotFound
		}
		return models.TodoItem{}, r.classify(err, ErrExecutingStatement)
	}

	return created, nil
}

func (r *itemRepository) GetItems(ctx context.Context, listID models.ID) ([]models.TodoItem, error) {
	items, err := selectItems(ctx, r.DB, listID)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "*itemRepository.GetItems").
			Int64("list_id", int64(listID)).
			Msg("failed to select items")
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) UpdateItem(ctx context.Context, item models.TodoItem) (models.TodoItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateItemQuery(item)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.UpdateItem").Msg("failed to build query")
		return models.TodoItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var updated models.TodoItem
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&updated.ID, &updated.ListID, &updated.Description, &updated.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TodoItem{}, ErrItemNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*itemRepository.UpdateItem").
			Int64("list_id", int64(item.ListID)).
			Int64("item_id", int64(item.ID)).
			Msg("failed to update item")
		return models.TodoItem{}, r.classify(err, ErrExecutingStatement)
	}

	return updated, nil
}

func (r *itemRepository) DeleteItem(ctx context.Context, listID, id models.ID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteItemQuery(listID, id)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.DeleteItem").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*itemRepository.DeleteItem").
			Int64("list_id", int64(listID)).
			Int64("item_id", int64(id)).
			Msg("failed to delete item")
		return r.classify(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrItemNotFound
	}

	return nil
}

// SetAllCompleted sets the completed flag of every item in the list. An empty
// list is not an error.
func (r *itemRepository) SetAllCompleted(ctx context.Context, listID models.ID, completed bool) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetAllCompletedQuery(listID, completed)
	if err != nil {
		log.Err(err).Str("func", "*itemRepository.SetAllCompleted").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.DB.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*itemRepository.SetAllCompleted").
			Int64("list_id", int64(listID)).
			Msg("failed to update items")
		return r.classify(err, ErrExecutingStatement)
	}

	return nil
}

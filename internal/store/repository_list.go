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
)

// listRepository is the PostgreSQL-backed implementation of [ListRepository]
// over the "todo_lists" table. Items are read through the "todo_items" table.
type listRepository struct {
	*DB
	logger *logger.Logger
}

// NewListRepository constructs a [ListRepository] backed by db.
func NewListRepository(db *DB, logger *logger.Logger) ListRepository {
	logger.Debug().Msg("creating list repository")
	return &listRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *listRepository) CreateList(ctx context.Context, name string) (models.TodoList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateListQuery(name)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.CreateList").Msg("failed to build query")
		return models.TodoList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	list := models.TodoList{Todos: []models.TodoItem{}}
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&list.ID, &list.Name); err != nil {
		log.Err(err).Str("func", "*listRepository.CreateList").Msg("failed to insert list")
		return models.TodoList{}, r.classify(err, ErrExecutingStatement)
	}

	return list, nil
}

// GetLists returns every list ordered by id, each with its items. Lists
// without items carry an empty, non-nil Todos.
func (r *listRepository) GetLists(ctx context.Context) ([]models.TodoList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListsQuery()
	if err != nil {
		log.Err(err).Str("func", "*listRepository.GetLists").Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.GetLists").Msg("failed to select lists")
		return nil, r.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	lists := make([]models.TodoList, 0, 16)
	for rows.Next() {
		list := models.TodoList{Todos: []models.TodoItem{}}
		if err = rows.Scan(&list.ID, &list.Name); err != nil {
			log.Err(err).Str("func", "*listRepository.GetLists").Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		lists = append(lists, list)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*listRepository.GetLists").Msg("rows iteration error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(lists) == 0 {
		return lists, nil
	}

	ids := make([]models.ID, len(lists))
	for i, l := range lists {
		ids[i] = l.ID
	}
	items, err := selectItems(ctx, r.DB, ids...)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.GetLists").Msg("failed to select items")
		return nil, err
	}

	index := make(map[models.ID]int, len(lists))
	for i, l := range lists {
		index[l.ID] = i
	}
	for _, item := range items {
		if i, ok := index[item.ListID]; ok {
			lists[i].Todos = append(lists[i].Todos, item)
		}
	}

	return lists, nil
}

func (r *listRepository) GetList(ctx context.Context, id models.ID) (models.TodoList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectListQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.GetList").Msg("failed to build query")
		return models.TodoList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var list models.TodoList
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&list.ID, &list.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TodoList{}, ErrListNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*listRepository.GetList").Int64("list_id", int64(id)).Msg("failed to select list")
		return models.TodoList{}, r.classify(err, ErrExecutingQuery)
	}

	list.Todos, err = selectItems(ctx, r.DB, id)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.GetList").Int64("list_id", int64(id)).Msg("failed to select items")
		return models.TodoList{}, err
	}

	return list, nil
}

func (r *listRepository) UpdateList(ctx context.Context, id models.ID, name string) (models.TodoList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateListQuery(id, name)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.UpdateList").Msg("failed to build query")
		return models.TodoList{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	list := models.TodoList{}
	err = r.DB.QueryRowContext(ctx, query, args...).Scan(&list.ID, &list.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return models.TodoList{}, ErrListNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*listRepository.UpdateList").Int64("list_id", int64(id)).Msg("failed to update list")
		return models.TodoList{}, r.classify(err, ErrExecutingStatement)
	}

	return list, nil
}

// DeleteList removes the list. Its items are removed by the ON DELETE
// CASCADE constraint.
func (r *listRepository) DeleteList(ctx context.Context, id models.ID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteListQuery(id)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.DeleteList").Msg("failed to build query")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*listRepository.DeleteList").Int64("list_id", int64(id)).Msg("failed to delete list")
		return r.classify(err, ErrExecutingStatement)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrListNotFound
	}

	return nil
}

// selectItems loads the items of the given lists.
func selectItems(ctx context.Context, db *DB, listIDs ...models.ID) ([]models.TodoItem, error) {
	query, args, err := buildSelectItemsQuery(listIDs...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, db.classify(err, ErrExecutingQuery)
	}
	defer rows.Close()

	items := make([]models.TodoItem, 0, 32)
	for rows.Next() {
		var item models.TodoItem
		if err = rows.Scan(&item.ID, &item.ListID, &item.Description, &item.Completed); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return items, nil
}

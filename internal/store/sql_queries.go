// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-todo-keeper/models"
)

// Server tables.
const (
	todoListsTable = "todo_lists"
	todoItemsTable = "todo_items"
)

// Client tables.
const (
	localListsTable      = "lists"
	localItemsTable      = "items"
	localOperationsTable = "pending_operations"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
	lite = sq.StatementBuilder.PlaceholderFormat(sq.Question)
)

var (
	listColumns = []string{"id", "name"}
	itemColumns = []string{"id", "list_id", "description", "completed"}
)

func buildCreateListQuery(name string) (string, []any, error) {
	return psql.Insert(todoListsTable).
		Columns("name").
		Values(name).
		Suffix("RETURNING id, name").
		ToSql()
}

func buildSelectListsQuery() (string, []any, error) {
	return psql.Select(listColumns...).
		From(todoListsTable).
		OrderBy("id").
		ToSql()
}

func buildSelectListQuery(id models.ID) (string, []any, error) {
	return psql.Select(listColumns...).
		From(todoListsTable).
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
}

func buildUpdateListQuery(id models.ID, name string) (string, []any, error) {
	return psql.Update(todoListsTable).
		Set("name", name).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": int64(id)}).
		Suffix("RETURNING id, name").
		ToSql()
}

func buildDeleteListQuery(id models.ID) (string, []any, error) {
	return psql.Delete(todoListsTable).
		Where(sq.Eq{"id": int64(id)}).
		ToSql()
}

// buildSelectItemsQuery selects the items of the given lists. A single id
// yields "list_id = $1", several yield an IN clause.
func buildSelectItemsQuery(listIDs ...models.ID) (string, []any, error) {
	query := psql.Select(itemColumns...).From(todoItemsTable)

	switch len(listIDs) {
	case 0:
	case 1:
		query = query.Where(sq.Eq{"list_id": int64(listIDs[0])})
	default:
		ids := make([]int64, len(listIDs))
		for i, id := range listIDs {
			ids[i] = int64(id)
		}
		query = query.Where(sq.Eq{"list_id": ids})
	}

	return query.OrderBy("list_id", "id").ToSql()
}

func buildCreateItemQuery(item models.TodoItem) (string, []any, error) {
	return psql.Insert(todoItemsTable).
		Columns("list_id", "description", "completed").
		Values(int64(item.ListID), item.Description, item.Completed).
		Suffix("RETURNING id, list_id, description, completed").
		ToSql()
}

func buildUpdateItemQuery(item models.TodoItem) (string, []any, error) {
	return psql.Update(todoItemsTable).
		Set("description", item.Description).
		Set("completed", item.Completed).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"id": int64(item.ID), "list_id": int64(item.ListID)}).
		Suffix("RETURNING id, list_id, description, completed").
		ToSql()
}

func buildDeleteItemQuery(listID, id models.ID) (string, []any, error) {
	return psql.Delete(todoItemsTable).
		Where(sq.Eq{"id": int64(id), "list_id": int64(listID)}).
		ToSql()
}

func buildSetAllCompletedQuery(listID models.ID, completed bool) (string, []any, error) {
	return psql.Update(todoItemsTable).
		Set("completed", completed).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"list_id": int64(listID)}).
		ToSql()
}

// local state

func buildClearLocalTableQuery(table string) (string, []any, error) {
	return lite.Delete(table).ToSql()
}

// buildInsertLocalListsQuery returns an empty query when lists is empty.
func buildInsertLocalListsQuery(lists []models.TodoList) (string, []any, error) {
	if len(lists) == 0 {
		return "", nil, nil
	}
	query := lite.Insert(localListsTable).Columns("id", "position", "name", "dirty")
	for pos, l := range lists {
		query = query.Values(int64(l.ID), pos, l.Name, l.Dirty)
	}
	return query.ToSql()
}

// buildInsertLocalItemsQuery returns an empty query when no list has items.
func buildInsertLocalItemsQuery(lists []models.TodoList) (string, []any, error) {
	query := lite.Insert(localItemsTable).Columns("list_id", "id", "position", "description", "completed", "pending")
	n := 0
	for _, l := range lists {
		for pos, it := range l.Todos {
			query = query.Values(int64(l.ID), int64(it.ID), pos, it.Description, it.Completed, it.Pending)
			n++
		}
	}
	if n == 0 {
		return "", nil, nil
	}
	return query.ToSql()
}

// buildInsertLocalOperationsQuery returns an empty query when ops is empty.
// Entries with an unknown payload type are skipped.
func buildInsertLocalOperationsQuery(ops []models.PendingOperation) (string, []any, error) {
	query := lite.Insert(localOperationsTable).
		Columns("queue_id", "position", "kind", "list_id", "entity_id", "name", "description", "completed")
	n := 0
	for pos, op := range ops {
		switch p := op.Payload.(type) {
		case models.ListPayload:
			query = query.Values(op.QueueID, pos, string(op.Kind), int64(p.ID), int64(p.ID), p.Name, "", false)
		case models.ItemPayload:
			query = query.Values(op.QueueID, pos, string(op.Kind), int64(p.ListID), int64(p.ID), "", p.Description, p.Completed)
		default:
			continue
		}
		n++
	}
	if n == 0 {
		return "", nil, nil
	}
	return query.ToSql()
}

func buildSelectLocalListsQuery() (string, []any, error) {
	return lite.Select("id", "name", "dirty").
		From(localListsTable).
		OrderBy("position").
		ToSql()
}

func buildSelectLocalItemsQuery() (string, []any, error) {
	return lite.Select("list_id", "id", "description", "completed", "pending").
		From(localItemsTable).
		OrderBy("list_id", "position").
		ToSql()
}

func buildSelectLocalOperationsQuery() (string, []any, error) {
	return lite.Select("queue_id", "kind", "list_id", "entity_id", "name", "description", "completed").
		From(localOperationsTable).
		OrderBy("position").
		ToSql()
}

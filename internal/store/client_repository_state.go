// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// localStateRepository is the SQLite-backed implementation of
// [LocalStateRepository]. Lists, items and the queue are stored in three
// tables with an explicit position column that preserves their order.
type localStateRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalStateRepository constructs a [LocalStateRepository] backed by db.
func NewLocalStateRepository(db *DB, logger *logger.Logger) LocalStateRepository {
	return &localStateRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveState deletes the saved state and writes st in its place. The write is
// a single transaction: a failure leaves the previous state intact.
func (l *localStateRepository) SaveState(ctx context.Context, st models.State) (err error) {
	log := logger.FromContext(ctx)

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localStateRepository.SaveState").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	for _, table := range []string{localOperationsTable, localItemsTable, localListsTable} {
		query, args, buildErr := buildClearLocalTableQuery(table)
		if buildErr != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "localStateRepository.SaveState").Str("table", table).Msg("failed to clear table")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	builders := []struct {
		table string
		build func() (string, []any, error)
	}{
		{localListsTable, func() (string, []any, error) { return buildInsertLocalListsQuery(st.Lists) }},
		{localItemsTable, func() (string, []any, error) { return buildInsertLocalItemsQuery(st.Lists) }},
		{localOperationsTable, func() (string, []any, error) { return buildInsertLocalOperationsQuery(st.Queue) }},
	}
	for _, b := range builders {
		query, args, buildErr := b.build()
		if buildErr != nil {
			err = fmt.Errorf("%w: %w", ErrBuildingSQLQuery, buildErr)
			log.Err(err).Str("func", "localStateRepository.SaveState").Str("table", b.table).Msg("failed to build insert")
			return err
		}
		if query == "" {
			continue
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			log.Err(err).Str("func", "localStateRepository.SaveState").Str("table", b.table).Msg("failed to insert rows")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localStateRepository.SaveState").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localStateRepository) LoadState(ctx context.Context) (models.State, error) {
	lists, err := l.loadLists(ctx)
	if err != nil {
		return models.State{}, err
	}

	queue, err := l.loadQueue(ctx)
	if err != nil {
		return models.State{}, err
	}

	return models.State{Lists: lists, Queue: queue}, nil
}

// loadLists reads lists and then items. Each result set is closed before the
// next query starts: the connection pool holds a single sqlite connection.
func (l *localStateRepository) loadLists(ctx context.Context) ([]models.TodoList, error) {
	lists, err := l.selectLists(ctx)
	if err != nil {
		return nil, err
	}
	if err = l.attachItems(ctx, lists); err != nil {
		return nil, err
	}
	return lists, nil
}

func (l *localStateRepository) selectLists(ctx context.Context) ([]models.TodoList, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocalListsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localStateRepository.selectLists").Msg("failed to select lists")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	lists := make([]models.TodoList, 0)
	for rows.Next() {
		list := models.TodoList{Todos: []models.TodoItem{}}
		if err = rows.Scan(&list.ID, &list.Name, &list.Dirty); err != nil {
			log.Err(err).Str("func", "localStateRepository.selectLists").Msg("failed to scan list row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		lists = append(lists, list)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return lists, nil
}

func (l *localStateRepository) attachItems(ctx context.Context, lists []models.TodoList) error {
	log := logger.FromContext(ctx)

	index := make(map[models.ID]int, len(lists))
	for i, list := range lists {
		index[list.ID] = i
	}

	query, args, err := buildSelectLocalItemsQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localStateRepository.attachItems").Msg("failed to select items")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.TodoItem
		if err = rows.Scan(&item.ListID, &item.ID, &item.Description, &item.Completed, &item.Pending); err != nil {
			log.Err(err).Str("func", "localStateRepository.attachItems").Msg("failed to scan item row")
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		i, ok := index[item.ListID]
		if !ok {
			log.Warn().Str("func", "localStateRepository.attachItems").
				Int64("list_id", int64(item.ListID)).
				Msg("skipping orphan item")
			continue
		}
		lists[i].Todos = append(lists[i].Todos, item)
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return nil
}

func (l *localStateRepository) loadQueue(ctx context.Context) ([]models.PendingOperation, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectLocalOperationsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localStateRepository.loadQueue").Msg("failed to select operations")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	queue := make([]models.PendingOperation, 0)
	for rows.Next() {
		var (
			queueID, kind, name, description string
			listID, entityID                 models.ID
			completed                        bool
		)
		if err = rows.Scan(&queueID, &kind, &listID, &entityID, &name, &description, &completed); err != nil {
			log.Err(err).Str("func", "localStateRepository.loadQueue").Msg("failed to scan operation row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		op := models.PendingOperation{QueueID: queueID, Kind: models.OperationKind(kind)}
		switch {
		case op.Kind.IsListKind():
			op.Payload = models.ListPayload{ID: entityID, Name: name}
		case op.Kind.IsItemKind():
			op.Payload = models.ItemPayload{ListID: listID, ID: entityID, Description: description, Completed: completed}
		default:
			log.Error().Str("func", "localStateRepository.loadQueue").
				Str("queue_id", queueID).
				Str("kind", kind).
				Msg("skipping operation of unknown kind")
			continue
		}
		queue = append(queue, op)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return queue, nil
}

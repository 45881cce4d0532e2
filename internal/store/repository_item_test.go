package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func newTestItemRepo(t *testing.T) (*itemRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &itemRepository{DB: db, logger: logger.Nop()}, mock
}

var itemRowColumns = []string{"id", "list_id", "description", "completed"}

func TestCreateItem_Success(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("INSERT INTO todo_items").
		WithArgs(int64(2), "milk", false).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(15, 2, "milk", false))

	item, err := repo.CreateItem(testContext(), models.TodoItem{ListID: 2, Description: "milk"})
	require.NoError(t, err)
	assert.Equal(t, models.TodoItem{ID: 15, ListID: 2, Description: "milk"}, item)
	expectationsMet(t, mock)
}

func TestCreateItem_MissingList(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("INSERT INTO todo_items").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := repo.CreateItem(testContext(), models.TodoItem{ListID: 99, Description: "milk"})
	assert.ErrorIs(t, err, ErrListNotFound)
}

func TestGetItems_Success(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("FROM todo_items").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).
			AddRow(1, 2, "a", true).
			AddRow(2, 2, "b", false))

	items, err := repo.GetItems(testContext(), 2)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.True(t, items[0].Completed)
}

func TestGetItems_RetryableError(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("FROM todo_items").
		WillReturnError(pgError(pgerrcode.DeadlockDetected))

	_, err := repo.GetItems(testContext(), 2)
	assert.ErrorIs(t, err, ErrTemporarilyUnavailable)
}

func TestUpdateItem_NotFound(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("UPDATE todo_items").
		WithArgs("x", true, int64(7), int64(2)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns))

	_, err := repo.UpdateItem(testContext(), models.TodoItem{ID: 7, ListID: 2, Description: "x", Completed: true})
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestUpdateItem_Success(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectQuery("UPDATE todo_items").
		WithArgs("x", true, int64(7), int64(2)).
		WillReturnRows(sqlmock.NewRows(itemRowColumns).AddRow(7, 2, "x", true))

	item, err := repo.UpdateItem(testContext(), models.TodoItem{ID: 7, ListID: 2, Description: "x", Completed: true})
	require.NoError(t, err)
	assert.True(t, item.Completed)
	expectationsMet(t, mock)
}

func TestDeleteItem(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing item", affected: 0, wantErr: ErrItemNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newTestItemRepo(t)

			mock.ExpectExec("DELETE FROM todo_items").
				WithArgs(int64(7), int64(2)).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.DeleteItem(testContext(), 2, 7)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSetAllCompleted(t *testing.T) {
	repo, mock := newTestItemRepo(t)

	mock.ExpectExec("UPDATE todo_items").
		WithArgs(true, int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	// пустой список — не ошибка
	require.NoError(t, repo.SetAllCompleted(testContext(), 3, true))
	expectationsMet(t, mock)
}

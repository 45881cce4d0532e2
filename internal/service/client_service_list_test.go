package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/state"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func newTestListSvc(t *testing.T, st models.State, online bool) (ClientListService, *mock.MockServerAdapter, *state.Session) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	session := newTestSession(st)
	syncSvc := NewClientSyncService(session, mockAdapter, logger.Nop())

	return NewClientListService(session, syncSvc, newMonitor(ctrl, online), logger.Nop()), mockAdapter, session
}

func TestClientListService_Create(t *testing.T) {
	t.Run("offline", func(t *testing.T) {
		svc, _, session := newTestListSvc(t, models.State{}, false)

		id, outcome, err := svc.Create(context.Background(), "  groceries ")
		require.NoError(t, err)
		assert.Equal(t, models.QueuedForRetry, outcome)
		assert.True(t, id.IsTemporary())

		got, ok := session.List(id)
		require.True(t, ok)
		assert.Equal(t, "groceries", got.Name)
		assert.NotNil(t, got.Todos)

		ops := session.Operations()
		require.Len(t, ops, 1)
		assert.Equal(t, models.AddList, ops[0].Kind)
		assert.Equal(t, models.ListPayload{ID: id, Name: "groceries"}, ops[0].Payload)
	})

	t.Run("online", func(t *testing.T) {
		svc, mockAdapter, session := newTestListSvc(t, models.State{}, true)
		mockAdapter.EXPECT().CreateList(gomock.Any(), "work").Return(models.TodoList{ID: 42, Name: "work"}, nil)

		id, outcome, err := svc.Create(context.Background(), "work")
		require.NoError(t, err)
		assert.Equal(t, models.Applied, outcome)
		assert.Equal(t, models.ID(42), id)
		assert.Zero(t, session.PendingCount())

		lists := session.Lists()
		require.Len(t, lists, 1)
		assert.Equal(t, models.ID(42), lists[0].ID)
	})

	t.Run("online server error", func(t *testing.T) {
		svc, mockAdapter, session := newTestListSvc(t, models.State{}, true)
		mockAdapter.EXPECT().CreateList(gomock.Any(), "work").Return(models.TodoList{}, errServer)

		id, outcome, err := svc.Create(context.Background(), "work")
		require.NoError(t, err)
		assert.Equal(t, models.QueuedForRetry, outcome)
		assert.True(t, id.IsTemporary())
		assert.Equal(t, 1, session.PendingCount())
	})

	t.Run("empty name", func(t *testing.T) {
		svc, _, session := newTestListSvc(t, models.State{}, true)

		_, _, err := svc.Create(context.Background(), "   ")
		assert.ErrorIs(t, err, ErrEmptyListName)
		assert.Empty(t, session.Lists())
	})
}

func TestClientListService_Rename(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		svc, mockAdapter, session := newTestListSvc(t, models.State{Lists: []models.TodoList{testList(1, "old")}}, true)
		mockAdapter.EXPECT().UpdateList(gomock.Any(), models.ID(1), "new").Return(models.TodoList{ID: 1, Name: "new"}, nil)

		outcome, err := svc.Rename(context.Background(), 1, "new")
		require.NoError(t, err)
		assert.Equal(t, models.Applied, outcome)

		got, _ := session.List(1)
		assert.Equal(t, "new", got.Name)
		assert.False(t, got.Dirty)
		assert.Zero(t, session.PendingCount())
	})

	t.Run("offline keeps list dirty", func(t *testing.T) {
		svc, _, session := newTestListSvc(t, models.State{Lists: []models.TodoList{testList(1, "old")}}, false)

		outcome, err := svc.Rename(context.Background(), 1, "new")
		require.NoError(t, err)
		assert.Equal(t, models.QueuedForRetry, outcome)

		got, _ := session.List(1)
		assert.Equal(t, "new", got.Name)
		assert.True(t, got.Dirty)
		assert.Equal(t, 1, session.PendingCount())
	})

	// временный список не уходит на сервер: имя просто подменяется в ADD_LIST
	t.Run("temporary list folds into create", func(t *testing.T) {
		st := models.State{
			Lists: []models.TodoList{testList(tempListID, "draft")},
			Queue: []models.PendingOperation{testOp("q1", models.AddList, models.ListPayload{ID: tempListID, Name: "draft"})},
		}
		svc, _, session := newTestListSvc(t, st, true)

		outcome, err := svc.Rename(context.Background(), tempListID, "final")
		require.NoError(t, err)
		assert.Equal(t, models.QueuedForRetry, outcome)

		ops := session.Operations()
		require.Len(t, ops, 1)
		assert.Equal(t, models.AddList, ops[0].Kind)
		assert.Equal(t, models.ListPayload{ID: tempListID, Name: "final"}, ops[0].Payload)
	})

	t.Run("queued update is not sent", func(t *testing.T) {
		st := models.State{
			Lists: []models.TodoList{{ID: 1, Name: "second", Todos: []models.TodoItem{}, Dirty: true}},
			Queue: []models.PendingOperation{testOp("q1", models.UpdateList, models.ListPayload{ID: 1, Name: "second"})},
		}
		svc, _, session := newTestListSvc(t, st, true)

		outcome, err := svc.Rename(context.Background(), 1, "third")
		require.NoError(t, err)
		assert.Equal(t, models.QueuedForRetry, outcome)

		ops := session.Operations()
		require.Len(t, ops, 1)
		assert.Equal(t, models.ListPayload{ID: 1, Name: "third"}, ops[0].Payload)
	})

	t.Run("unknown list", func(t *testing.T) {
		svc, _, _ := newTestListSvc(t, models.State{}, true)

		_, err := svc.Rename(context.Background(), 9, "x")
		assert.ErrorIs(t, err, ErrUnknownList)
	})

	t.Run("empty name", func(t *testing.T) {
		svc, _, _ := newTestListSvc(t, models.State{Lists: []models.TodoList{testList(1, "old")}}, true)

		_, err := svc.Rename(context.Background(), 1, "")
		assert.ErrorIs(t, err, ErrEmptyListName)
	})
}

func TestClientListService_Delete(t *testing.T) {
	t.Run("direct", func(t *testing.T) {
		svc, mockAdapter, session := newTestListSvc(t, models.State{Lists: []models.TodoList{testList(1, "l")}}, true)
		mockAdapter.EXPECT().DeleteList(gomock.Any(), models.ID(1)).Return(nil)

		outcome, err := svc.Delete(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, models.Applied, outcome)
		assert.Empty(t, session.Lists())
		assert.Zero(t, session.PendingCount())
	})

	t.Run("already gone on server", func(t *testing.T) {
		svc, mockAdapter, session := newTestListSvc(t, models.State{Lists: []models.TodoList{testList(1, "l")}}, true)
		mockAdapter.EXPECT().DeleteList(gomock.Any(), models.ID(1)).Return(errNotFound)

		outcome, err := svc.Delete(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, models.TerminalResolved, outcome)
		assert.Zero(t, session.PendingCount())
	})

	t.Run("offline", func(t *testing.T) {
		svc, _, session := newTestListSvc(t, models.State{Lists: []models.TodoList{testList(1, "l")}}, false)

		outcome, err := svc.Delete(context.Background(), 1)
		require.NoError(t, err)
		assert.Equal(t, models.QueuedForRetry, outcome)
		assert.Empty(t, session.Lists())

		ops := session.Operations()
		require.Len(t, ops, 1)
		assert.Equal(t, models.DeleteList, ops[0].Kind)
	})

	t.Run("never synced list", func(t *testing.T) {
		st := models.State{
			Lists: []models.TodoList{testList(tempListID, "l",
				models.TodoItem{ID: tempItemID, ListID: tempListID, Description: "x", Pending: true})},
			Queue: []models.PendingOperation{
				testOp("q1", models.AddList, models.ListPayload{ID: tempListID, Name: "l"}),
				testOp("q2", models.AddItem, models.ItemPayload{ListID: tempListID, ID: tempItemID, Description: "x"}),
			},
		}
		svc, _, session := newTestListSvc(t, st, true)

		outcome, err := svc.Delete(context.Background(), tempListID)
		require.NoError(t, err)
		assert.Equal(t, models.Applied, outcome)
		assert.Empty(t, session.Lists())
		assert.Zero(t, session.PendingCount())
	})

	t.Run("unknown list", func(t *testing.T) {
		svc, _, _ := newTestListSvc(t, models.State{}, true)

		_, err := svc.Delete(context.Background(), 5)
		assert.ErrorIs(t, err, ErrUnknownList)
	})
}

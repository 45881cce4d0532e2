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

func newTestSnapshotSvc(t *testing.T, st models.State) (ClientSnapshotService, *mock.MockServerAdapter, *state.Session) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	session := newTestSession(st)
	return NewClientSnapshotService(session, mockAdapter, logger.Nop()), mockAdapter, session
}

func TestRefreshLists(t *testing.T) {
	t.Run("dirty local list wins", func(t *testing.T) {
		st := models.State{
			Lists: []models.TodoList{{ID: 1, Name: "mine", Todos: []models.TodoItem{}, Dirty: true}},
			Queue: []models.PendingOperation{testOp("q1", models.UpdateList, models.ListPayload{ID: 1, Name: "mine"})},
		}
		svc, mockAdapter, session := newTestSnapshotSvc(t, st)
		mockAdapter.EXPECT().GetLists(gomock.Any()).Return([]models.TodoList{
			{ID: 1, Name: "theirs", Todos: []models.TodoItem{}},
			{ID: 2, Name: "new on server", Todos: []models.TodoItem{}},
		}, nil)

		require.NoError(t, svc.RefreshLists(context.Background()))

		lists := session.Lists()
		require.Len(t, lists, 2)
		assert.Equal(t, "mine", lists[0].Name)
		// флаг снимается, как только сервер знает этот id
		assert.False(t, lists[0].Dirty)
		assert.Equal(t, models.ID(2), lists[1].ID)
	})

	t.Run("queued delete hides list", func(t *testing.T) {
		st := models.State{
			Queue: []models.PendingOperation{testOp("q1", models.DeleteList, models.ListPayload{ID: 1})},
		}
		svc, mockAdapter, session := newTestSnapshotSvc(t, st)
		mockAdapter.EXPECT().GetLists(gomock.Any()).Return([]models.TodoList{{ID: 1, Name: "deleted locally"}}, nil)

		require.NoError(t, svc.RefreshLists(context.Background()))
		assert.Empty(t, session.Lists())
	})

	t.Run("unconfirmed list survives", func(t *testing.T) {
		st := models.State{
			Lists: []models.TodoList{testList(tempListID, "offline")},
			Queue: []models.PendingOperation{testOp("q1", models.AddList, models.ListPayload{ID: tempListID, Name: "offline"})},
		}
		svc, mockAdapter, session := newTestSnapshotSvc(t, st)
		mockAdapter.EXPECT().GetLists(gomock.Any()).Return([]models.TodoList{}, nil)

		require.NoError(t, svc.RefreshLists(context.Background()))
		_, ok := session.List(tempListID)
		assert.True(t, ok)
	})

	t.Run("fetch failure leaves state", func(t *testing.T) {
		svc, mockAdapter, session := newTestSnapshotSvc(t, models.State{Lists: []models.TodoList{testList(1, "l")}})
		mockAdapter.EXPECT().GetLists(gomock.Any()).Return(nil, errNetwork)

		err := svc.RefreshLists(context.Background())
		require.Error(t, err)
		assert.Len(t, session.Lists(), 1)
	})
}

func TestRefreshItems(t *testing.T) {
	t.Run("keeps pending items", func(t *testing.T) {
		st := models.State{
			Lists: []models.TodoList{testList(1, "l",
				models.TodoItem{ID: 10, ListID: 1, Description: "old"},
				models.TodoItem{ID: tempItemID, ListID: 1, Description: "local", Pending: true},
			)},
			Queue: []models.PendingOperation{
				testOp("q1", models.AddItem, models.ItemPayload{ListID: 1, ID: tempItemID, Description: "local"}),
			},
		}
		svc, mockAdapter, session := newTestSnapshotSvc(t, st)
		mockAdapter.EXPECT().GetItems(gomock.Any(), models.ID(1)).Return([]models.TodoItem{
			{ID: 10, ListID: 1, Description: "renamed on server"},
		}, nil)

		require.NoError(t, svc.RefreshItems(context.Background(), 1))

		got, _ := session.List(1)
		require.Len(t, got.Todos, 2)
		assert.Equal(t, "renamed on server", got.Todos[0].Description)
		assert.Equal(t, tempItemID, got.Todos[1].ID)
	})

	t.Run("temporary list is not fetched", func(t *testing.T) {
		svc, _, _ := newTestSnapshotSvc(t, models.State{Lists: []models.TodoList{testList(tempListID, "l")}})

		assert.NoError(t, svc.RefreshItems(context.Background(), tempListID))
	})

	t.Run("list gone on server", func(t *testing.T) {
		svc, mockAdapter, session := newTestSnapshotSvc(t, models.State{Lists: []models.TodoList{testList(1, "l")}})
		mockAdapter.EXPECT().GetItems(gomock.Any(), models.ID(1)).Return(nil, errNotFound)

		require.NoError(t, svc.RefreshItems(context.Background(), 1))
		assert.Empty(t, session.Lists())
	})

	t.Run("list gone on server but has queued work", func(t *testing.T) {
		st := models.State{
			Lists: []models.TodoList{testList(1, "l", models.TodoItem{ID: 10, ListID: 1, Description: "x", Completed: true})},
			Queue: []models.PendingOperation{
				testOp("q1", models.UpdateItem, models.ItemPayload{ListID: 1, ID: 10, Description: "x", Completed: true}),
			},
		}
		svc, mockAdapter, session := newTestSnapshotSvc(t, st)
		mockAdapter.EXPECT().GetItems(gomock.Any(), models.ID(1)).Return(nil, errNotFound)

		require.NoError(t, svc.RefreshItems(context.Background(), 1))
		assert.Len(t, session.Lists(), 1)
	})

	t.Run("transient failure", func(t *testing.T) {
		svc, mockAdapter, _ := newTestSnapshotSvc(t, models.State{Lists: []models.TodoList{testList(1, "l")}})
		mockAdapter.EXPECT().GetItems(gomock.Any(), models.ID(1)).Return(nil, errServer)

		assert.ErrorIs(t, svc.RefreshItems(context.Background(), 1), errServer)
	})
}

func TestHandleEvent(t *testing.T) {
	t.Run("toggle complete done refreshes items", func(t *testing.T) {
		svc, mockAdapter, session := newTestSnapshotSvc(t, syncedState())
		mockAdapter.EXPECT().GetItems(gomock.Any(), models.ID(1)).Return([]models.TodoItem{
			{ID: 10, ListID: 1, Description: "dishes", Completed: true},
			{ID: 11, ListID: 1, Description: "laundry", Completed: true},
		}, nil)

		err := svc.HandleEvent(context.Background(), models.ListEvent{Event: models.EventToggleCompleteDone, ListID: 1})
		require.NoError(t, err)

		got, _ := session.List(1)
		for _, item := range got.Todos {
			assert.True(t, item.Completed)
		}
	})

	t.Run("toggle complete error refreshes items", func(t *testing.T) {
		svc, mockAdapter, _ := newTestSnapshotSvc(t, syncedState())
		mockAdapter.EXPECT().GetItems(gomock.Any(), models.ID(1)).Return([]models.TodoItem{}, nil)

		err := svc.HandleEvent(context.Background(), models.ListEvent{Event: models.EventToggleCompleteError, ListID: 1, Error: "db down"})
		assert.NoError(t, err)
	})

	t.Run("unknown event ignored", func(t *testing.T) {
		svc, _, _ := newTestSnapshotSvc(t, syncedState())

		assert.NoError(t, svc.HandleEvent(context.Background(), models.ListEvent{Event: "something_else", ListID: 1}))
	})
}

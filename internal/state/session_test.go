package state

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type spyPersister struct {
	mu    sync.Mutex
	saves []models.State
	err   error
}

func (p *spyPersister) SaveState(_ context.Context, st models.State) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.saves = append(p.saves, st)
	return p.err
}

func (p *spyPersister) last() models.State {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.saves[len(p.saves)-1]
}

func newTestSession(t *testing.T, st models.State) (*Session, *spyPersister) {
	t.Helper()
	p := &spyPersister{}
	s := NewSession(st, p, logger.Nop())
	s.queue.ids = &sequentialIDs{}
	return s, p
}

func TestSession_UpdatePersistsAndNotifies(t *testing.T) {
	s, p := newTestSession(t, models.State{})

	err := s.Update(context.Background(), func(store *EntityStore, queue *Queue) {
		store.AddList(1, "a")
		queue.QueueListRename(1, "a")
	})
	require.NoError(t, err)

	st := p.last()
	require.Len(t, st.Lists, 1)
	require.Len(t, st.Queue, 1)

	select {
	case <-s.Changes():
	case <-time.After(time.Second):
		t.Fatal("no change signal")
	}
	assert.Equal(t, 1, s.PendingCount())
	assert.True(t, s.IsListPending(1))
}

func TestSession_UpdateKeepsChangeWhenPersistFails(t *testing.T) {
	s, p := newTestSession(t, models.State{})
	p.err = errors.New("disk full")

	err := s.Update(context.Background(), func(store *EntityStore, _ *Queue) {
		store.AddList(1, "a")
	})

	require.ErrorIs(t, err, ErrPersistState)
	_, ok := s.List(1)
	assert.True(t, ok)
}

func TestSession_NewTemporaryIDAfterRestore(t *testing.T) {
	future := models.ID(time.Now().Add(time.Hour).UnixMilli())
	s, _ := newTestSession(t, models.State{
		Lists: []models.TodoList{{ID: future, Name: "from last run"}},
	})

	id := s.NewTemporaryID()

	assert.True(t, id.IsTemporary())
	assert.Greater(t, id, future)
}

func TestSession_ConciliateList(t *testing.T) {
	ctx := context.Background()
	temp := models.TemporaryIDThreshold + 1

	seed := func(t *testing.T) (*Session, string) {
		s, _ := newTestSession(t, models.State{})
		require.NoError(t, s.Update(ctx, func(store *EntityStore, queue *Queue) {
			store.AddList(temp, "offline")
			store.SetListDirty(temp, true)
			store.AddItem(temp, temp+1, "milk", true)
			queue.QueueListCreate(temp, "offline")
			queue.QueueItemCreate(temp, temp+1, "milk", false)
		}))
		return s, s.ListOperations()[0].QueueID
	}
	sent := models.ListPayload{ID: temp, Name: "offline"}

	t.Run("unchanged entry is dequeued", func(t *testing.T) {
		s, queueID := seed(t)

		require.NoError(t, s.ConciliateList(ctx, queueID, sent, models.TodoList{ID: 42, Name: "offline"}))

		l, ok := s.List(42)
		require.True(t, ok)
		assert.False(t, l.Dirty)
		assert.Equal(t, models.ID(42), l.Todos[0].ListID)

		ops := s.Operations()
		require.Len(t, ops, 1)
		assert.Equal(t, models.AddItem, ops[0].Kind)
		assert.Equal(t, models.ID(42), ops[0].ListID())
	})

	t.Run("rename in flight becomes update", func(t *testing.T) {
		s, queueID := seed(t)
		require.NoError(t, s.Update(ctx, func(store *EntityStore, queue *Queue) {
			store.SetListName(temp, "renamed")
			queue.QueueListRename(temp, "renamed")
		}))

		require.NoError(t, s.ConciliateList(ctx, queueID, sent, models.TodoList{ID: 42, Name: "offline"}))

		op, ok := s.Operation(queueID)
		require.True(t, ok)
		assert.Equal(t, models.UpdateList, op.Kind)
		assert.Equal(t, models.ListPayload{ID: 42, Name: "renamed"}, op.Payload)

		l, _ := s.List(42)
		assert.True(t, l.Dirty)
		assert.Equal(t, "renamed", l.Name)
	})

	t.Run("delete in flight enqueues delete for server id", func(t *testing.T) {
		s, queueID := seed(t)
		require.NoError(t, s.Update(ctx, func(store *EntityStore, queue *Queue) {
			store.RemoveList(temp)
			queue.QueueListDelete(temp)
		}))
		require.Equal(t, 0, s.PendingCount())

		require.NoError(t, s.ConciliateList(ctx, queueID, sent, models.TodoList{ID: 42, Name: "offline"}))

		ops := s.Operations()
		require.Len(t, ops, 1)
		assert.Equal(t, models.DeleteList, ops[0].Kind)
		assert.Equal(t, models.ID(42), ops[0].EntityID())
	})
}

func TestSession_ConciliateItem(t *testing.T) {
	ctx := context.Background()
	temp := models.TemporaryIDThreshold + 1

	seed := func(t *testing.T) (*Session, string) {
		s, _ := newTestSession(t, models.State{Lists: []models.TodoList{{ID: 1, Name: "groceries"}}})
		require.NoError(t, s.Update(ctx, func(store *EntityStore, queue *Queue) {
			store.AddItem(1, temp, "milk", true)
			queue.QueueItemCreate(1, temp, "milk", false)
		}))
		return s, s.ItemOperations()[0].QueueID
	}
	sent := models.ItemPayload{ListID: 1, ID: temp, Description: "milk"}
	created := models.TodoItem{ID: 77, ListID: 1, Description: "milk"}

	t.Run("unchanged entry is dequeued", func(t *testing.T) {
		s, queueID := seed(t)

		require.NoError(t, s.ConciliateItem(ctx, queueID, sent, created))

		l, _ := s.List(1)
		require.Len(t, l.Todos, 1)
		assert.Equal(t, models.TodoItem{ID: 77, ListID: 1, Description: "milk"}, l.Todos[0])
		assert.Equal(t, 0, s.PendingCount())
	})

	t.Run("toggle in flight becomes update", func(t *testing.T) {
		s, queueID := seed(t)
		require.NoError(t, s.Update(ctx, func(store *EntityStore, queue *Queue) {
			store.ToggleItem(1, temp)
			queue.QueueItemEdit(1, temp, "milk", true)
		}))

		require.NoError(t, s.ConciliateItem(ctx, queueID, sent, created))

		op, ok := s.Operation(queueID)
		require.True(t, ok)
		assert.Equal(t, models.UpdateItem, op.Kind)
		assert.Equal(t, models.ItemPayload{ListID: 1, ID: 77, Description: "milk", Completed: true}, op.Payload)

		l, _ := s.List(1)
		assert.True(t, l.Todos[0].Completed)
		assert.False(t, l.Todos[0].Pending)
	})

	t.Run("delete in flight enqueues delete for server id", func(t *testing.T) {
		s, queueID := seed(t)
		require.NoError(t, s.Update(ctx, func(store *EntityStore, queue *Queue) {
			store.RemoveItem(1, temp)
			queue.QueueItemDelete(1, temp)
		}))

		require.NoError(t, s.ConciliateItem(ctx, queueID, sent, created))

		ops := s.Operations()
		require.Len(t, ops, 1)
		assert.Equal(t, models.DeleteItem, ops[0].Kind)
		assert.Equal(t, models.ItemPayload{ListID: 1, ID: 77}, ops[0].Payload)
	})
}

func TestSession_ApplyListsSnapshotHidesQueuedDeletes(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, models.State{Lists: []models.TodoList{
		{ID: 1, Name: "a", Todos: []models.TodoItem{{ID: 10, ListID: 1, Description: "x"}}},
	}})
	require.NoError(t, s.Update(ctx, func(store *EntityStore, queue *Queue) {
		store.RemoveList(1)
		queue.QueueListDelete(1)
	}))

	require.NoError(t, s.ApplyListsSnapshot(ctx, []models.TodoList{{ID: 1, Name: "a"}, {ID: 2, Name: "b"}}))

	lists := s.Lists()
	require.Len(t, lists, 1)
	assert.Equal(t, models.ID(2), lists[0].ID)
}

func TestSession_ApplyItemsSnapshotReplacesItemsAndKeepsQueue(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestSession(t, models.State{Lists: []models.TodoList{
		{ID: 1, Name: "a", Todos: []models.TodoItem{
			{ID: 10, ListID: 1, Description: "edited offline"},
			{ID: 11, ListID: 1, Description: "y"},
		}},
	}})
	require.NoError(t, s.Update(ctx, func(store *EntityStore, queue *Queue) {
		queue.QueueItemEdit(1, 10, "edited offline", false)
		store.RemoveItem(1, 11)
		queue.QueueItemDelete(1, 11)
	}))

	require.NoError(t, s.ApplyItemsSnapshot(ctx, 1, []models.TodoItem{
		{ID: 10, Description: "server copy"},
		{ID: 11, Description: "y"},
	}))

	l, _ := s.List(1)
	assert.Equal(t, []models.TodoItem{{ID: 10, ListID: 1, Description: "server copy"}}, l.Todos)
	assert.True(t, s.IsItemPending(1, 10), "the offline edit is still queued for the next drain")
}

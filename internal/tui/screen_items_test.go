package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func updateItems(t *testing.T, m itemsModel, msg tea.Msg) (itemsModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	im, ok := next.(itemsModel)
	require.True(t, ok)
	return im, cmd
}

func groceries() models.TodoList {
	return models.TodoList{
		ID:   3,
		Name: "groceries",
		Todos: []models.TodoItem{
			{ID: 31, ListID: 3, Description: "milk"},
			{ID: 32, ListID: 3, Description: "bread", Completed: true},
		},
	}
}

func openedItems(t *testing.T, ts testScreen, listID models.ID) itemsModel {
	t.Helper()
	m, _ := updateItems(t, newItemsModel(ts.d), openListMsg{listID: listID})
	return m
}

func TestItemsModel_OpenListRefreshesWhenOnline(t *testing.T) {
	ts := newTestScreen(t, true, groceries())
	ts.snapshot.EXPECT().RefreshItems(gomock.Any(), models.ID(3)).Return(nil)

	m, cmd := updateItems(t, newItemsModel(ts.d), openListMsg{listID: 3})
	require.NotNil(t, cmd)
	assert.Equal(t, models.ID(3), m.listID)

	m, _ = updateItems(t, m, cmd())
	assert.Empty(t, m.errMsg)
}

func TestItemsModel_OpenListSkipsRefresh(t *testing.T) {
	t.Run("offline", func(t *testing.T) {
		ts := newTestScreen(t, false, groceries())
		_, cmd := updateItems(t, newItemsModel(ts.d), openListMsg{listID: 3})
		assert.Nil(t, cmd)
	})

	t.Run("temporary list", func(t *testing.T) {
		tempID := models.ID(10_000_000_001)
		ts := newTestScreen(t, true, models.TodoList{ID: tempID, Name: "draft"})
		_, cmd := updateItems(t, newItemsModel(ts.d), openListMsg{listID: tempID})
		assert.Nil(t, cmd)
	})
}

func TestItemsModel_ToggleSelected(t *testing.T) {
	ts := newTestScreen(t, false, groceries())
	ts.items.EXPECT().Toggle(gomock.Any(), models.ID(3), models.ID(32)).Return(models.QueuedForRetry, nil)

	m := openedItems(t, ts, 3)
	m, _ = updateItems(t, m, downKey)
	m, cmd := updateItems(t, m, spaceKey)
	require.NotNil(t, cmd)

	m, _ = updateItems(t, m, cmd())
	assert.Contains(t, m.status, "Задача отмечена")
}

func TestItemsModel_CompleteAll(t *testing.T) {
	tests := []struct {
		name      string
		key       tea.KeyMsg
		completed bool
	}{
		{name: "complete", key: runes("t"), completed: true},
		{name: "reset", key: runes("T"), completed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestScreen(t, false, groceries())
			ts.items.EXPECT().CompleteAll(gomock.Any(), models.ID(3), tt.completed).Return(models.Applied, nil)

			m := openedItems(t, ts, 3)
			_, cmd := updateItems(t, m, tt.key)
			require.NotNil(t, cmd)

			msg, ok := cmd().(actionDoneMsg)
			require.True(t, ok)
			assert.Equal(t, models.Applied, msg.outcome)
		})
	}
}

func TestItemsModel_AddAndEdit(t *testing.T) {
	ts := newTestScreen(t, false, groceries())
	gomock.InOrder(
		ts.items.EXPECT().Create(gomock.Any(), models.ID(3), "eggs").Return(models.ID(10_000_000_005), models.QueuedForRetry, nil),
		ts.items.EXPECT().Edit(gomock.Any(), models.ID(3), models.ID(31), "oat milk").Return(models.QueuedForRetry, nil),
	)

	m := openedItems(t, ts, 3)

	m, _ = updateItems(t, m, runes("a"))
	require.True(t, m.capturesInput())
	m, _ = updateItems(t, m, runes("eggs"))
	m, cmd := updateItems(t, m, enterKey)
	require.NotNil(t, cmd)
	m, _ = updateItems(t, m, cmd())

	m, _ = updateItems(t, m, runes("e"))
	require.Equal(t, "milk", m.input.Value())
	m.input.SetValue("oat milk")
	m, cmd = updateItems(t, m, enterKey)
	require.NotNil(t, cmd)
	cmd()
}

func TestItemsModel_DeleteConfirmed(t *testing.T) {
	ts := newTestScreen(t, false, groceries())
	ts.items.EXPECT().Delete(gomock.Any(), models.ID(3), models.ID(31)).Return(models.QueuedForRetry, nil)

	m := openedItems(t, ts, 3)
	m, _ = updateItems(t, m, deleteKey)
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "milk")

	m, cmd := updateItems(t, m, runes("y"))
	require.NotNil(t, cmd)
	assert.Nil(t, m.confirm)
	cmd()
}

func TestItemsModel_ListEvents(t *testing.T) {
	t.Run("completion done", func(t *testing.T) {
		ts := newTestScreen(t, false, groceries())
		event := models.ListEvent{Event: models.EventToggleCompleteDone, ListID: 3}
		ts.snapshot.EXPECT().HandleEvent(gomock.Any(), event).Return(nil)

		m := openedItems(t, ts, 3)
		m, cmd := updateItems(t, m, listEventMsg{event: event})
		require.NotNil(t, cmd)
		assert.Equal(t, "Все задачи обновлены", m.status)
		cmd()
	})

	t.Run("completion error", func(t *testing.T) {
		ts := newTestScreen(t, false, groceries())
		event := models.ListEvent{Event: models.EventToggleCompleteError, ListID: 3, Error: "boom"}
		ts.snapshot.EXPECT().HandleEvent(gomock.Any(), event).Return(nil)

		m := openedItems(t, ts, 3)
		m, cmd := updateItems(t, m, listEventMsg{event: event})
		require.NotNil(t, cmd)
		assert.Equal(t, "Не удалось обновить задачи: boom", m.errMsg)
		cmd()
	})

	t.Run("other list ignored", func(t *testing.T) {
		ts := newTestScreen(t, false, groceries())

		m := openedItems(t, ts, 3)
		_, cmd := updateItems(t, m, listEventMsg{event: models.ListEvent{Event: models.EventToggleCompleteDone, ListID: 4}})
		assert.Nil(t, cmd)
	})
}

func TestItemsModel_EscNavigatesBack(t *testing.T) {
	ts := newTestScreen(t, false, groceries())

	m := openedItems(t, ts, 3)
	_, cmd := updateItems(t, m, escKey)
	require.NotNil(t, cmd)

	assert.Equal(t, NavigateTo{Page: pageLists}, cmd())
}

func TestItemsModel_MissingListNavigatesBack(t *testing.T) {
	ts := newTestScreen(t, false)

	m := openedItems(t, ts, 3)
	assert.Contains(t, m.View(), "Список не найден")

	_, cmd := updateItems(t, m, downKey)
	require.NotNil(t, cmd)
	assert.Equal(t, NavigateTo{Page: pageLists}, cmd())
}

func TestItemsModel_ActionError(t *testing.T) {
	ts := newTestScreen(t, false, groceries())

	m := openedItems(t, ts, 3)
	m, _ = updateItems(t, m, actionDoneMsg{err: service.ErrUnknownItem})
	require.NotNil(t, m.overlay)
	assert.Contains(t, m.View(), "Задача больше не существует")
}

func TestItemsModel_View(t *testing.T) {
	ts := newTestScreen(t, true, groceries())

	view := openedItems(t, ts, 3).View()

	assert.Contains(t, view, "GROCERIES")
	assert.Contains(t, view, "[ ] milk")
	assert.Contains(t, view, "[x] bread")
	assert.Contains(t, view, "онлайн")
}

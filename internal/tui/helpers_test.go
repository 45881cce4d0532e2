package tui

import (
	"context"
	"sync/atomic"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
	"github.com/MKhiriev/go-todo-keeper/internal/state"
	"github.com/MKhiriev/go-todo-keeper/models"
)

type fakeMonitor struct {
	online atomic.Bool
}

func (f *fakeMonitor) Online() bool { return f.online.Load() }

type testScreen struct {
	d        *screenDeps
	session  *state.Session
	monitor  *fakeMonitor
	lists    *mock.MockClientListService
	items    *mock.MockClientItemService
	snapshot *mock.MockClientSnapshotService
	sync     *mock.MockClientSyncService
}

func newTestScreen(t *testing.T, online bool, lists ...models.TodoList) testScreen {
	t.Helper()
	ctrl := gomock.NewController(t)

	ts := testScreen{
		session:  state.NewSession(models.State{Lists: lists}, nil, logger.Nop()),
		monitor:  &fakeMonitor{},
		lists:    mock.NewMockClientListService(ctrl),
		items:    mock.NewMockClientItemService(ctrl),
		snapshot: mock.NewMockClientSnapshotService(ctrl),
		sync:     mock.NewMockClientSyncService(ctrl),
	}
	ts.monitor.online.Store(online)
	ts.d = &screenDeps{
		ctx: context.Background(),
		services: &service.ClientServices{
			ListService:     ts.lists,
			ItemService:     ts.items,
			SnapshotService: ts.snapshot,
			SyncService:     ts.sync,
		},
		state:   ts.session,
		monitor: ts.monitor,
		watcher: newEventWatcher(nil),
	}
	return ts
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var (
	enterKey  = tea.KeyMsg{Type: tea.KeyEnter}
	escKey    = tea.KeyMsg{Type: tea.KeyEsc}
	deleteKey = tea.KeyMsg{Type: tea.KeyCtrlD}
	downKey   = tea.KeyMsg{Type: tea.KeyDown}
	spaceKey  = tea.KeyMsg{Type: tea.KeySpace}
)

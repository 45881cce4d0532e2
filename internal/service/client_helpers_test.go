package service

import (
	"fmt"
	"net/http"
	"testing"

	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/state"
	"github.com/MKhiriev/go-todo-keeper/models"
)

const (
	tempListID models.ID = 20_000_000_001
	tempItemID models.ID = 20_000_000_002
)

var (
	errNotFound  = &adapter.StatusError{StatusCode: http.StatusNotFound, Err: adapter.ErrNotFound}
	errServer    = &adapter.StatusError{StatusCode: http.StatusInternalServerError, Err: adapter.ErrInternalServerError}
	errNetwork   = fmt.Errorf("dial tcp 127.0.0.1:8080: connect: connection refused")
	errBadCreate = fmt.Errorf("%w: missing id", adapter.ErrInvalidResponse)
)

// newTestSession — сессия без персистентности.
func newTestSession(st models.State) *state.Session {
	return state.NewSession(st, nil, logger.Nop())
}

func newTestSyncSvc(t *testing.T, st models.State) (*clientSyncService, *mock.MockServerAdapter, *state.Session) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockServerAdapter(ctrl)
	session := newTestSession(st)

	svc := NewClientSyncService(session, mockAdapter, logger.Nop()).(*clientSyncService)
	return svc, mockAdapter, session
}

// newMonitor returns a monitor mock reporting a fixed status.
func newMonitor(ctrl *gomock.Controller, online bool) *mock.MockConnectivityMonitor {
	m := mock.NewMockConnectivityMonitor(ctrl)
	m.EXPECT().Online().Return(online).AnyTimes()
	return m
}

func testList(id models.ID, name string, items ...models.TodoItem) models.TodoList {
	if items == nil {
		items = []models.TodoItem{}
	}
	return models.TodoList{ID: id, Name: name, Todos: items}
}

func testOp(queueID string, kind models.OperationKind, payload models.Payload) models.PendingOperation {
	return models.PendingOperation{QueueID: queueID, Kind: kind, Payload: payload}
}

package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/internal/notify"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

// testDeps bundles the mocked services behind a test handler.
type testDeps struct {
	lists   *mock.MockListService
	items   *mock.MockItemService
	appInfo *mock.MockAppInfoService
	hub     *notify.Hub
}

func newTestHandler(t *testing.T, health HealthChecker) (*Handler, testDeps) {
	t.Helper()
	ctrl := gomock.NewController(t)

	deps := testDeps{
		lists:   mock.NewMockListService(ctrl),
		items:   mock.NewMockItemService(ctrl),
		appInfo: mock.NewMockAppInfoService(ctrl),
		hub:     notify.NewHub(logger.Nop()),
	}
	svcs := &service.Services{
		ListService:    deps.lists,
		ItemService:    deps.items,
		AppInfoService: deps.appInfo,
	}
	return NewHandler(svcs, deps.hub, health, logger.Nop()), deps
}

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

// ─────────────────────────────────────────────
// NewHandler
// ─────────────────────────────────────────────

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	hub := notify.NewHub(logger.Nop())
	log := logger.Nop()

	h := NewHandler(svc, hub, nil, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, hub, h.hub)
	assert.Same(t, log, h.logger)
	assert.Nil(t, h.health)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, nil, nil, logger.Nop())
	h2 := NewHandler(&service.Services{}, nil, nil, logger.Nop())

	assert.NotSame(t, h1, h2)
}

// ─────────────────────────────────────────────
// Init — route registration
// ─────────────────────────────────────────────

type routeCase struct {
	method string
	path   string
	body   string
}

var expectedRoutes = []routeCase{
	{http.MethodGet, "/healthz", ""},
	{http.MethodGet, "/api/version", ""},
	{http.MethodGet, "/todolists", ""},
	{http.MethodPost, "/todolists", `{"name":"x"}`},
	{http.MethodGet, "/todolists/1", ""},
	{http.MethodPut, "/todolists/1", `{"name":"x"}`},
	{http.MethodDelete, "/todolists/1", ""},
	{http.MethodPut, "/todolists/1/toggle-complete-async", `{"completed":true}`},
	{http.MethodGet, "/todolists/1/todos", ""},
	{http.MethodPost, "/todolists/1/todos", `{"description":"x"}`},
	{http.MethodPut, "/todolists/1/todos/2", `{"description":"x"}`},
	{http.MethodDelete, "/todolists/1/todos/2", ""},
}

func TestInit_RegistersAllRoutes(t *testing.T) {
	h, deps := newTestHandler(t, nil)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test").AnyTimes()
	deps.lists.EXPECT().GetLists(gomock.Any()).Return(nil, nil).AnyTimes()
	deps.lists.EXPECT().CreateList(gomock.Any(), gomock.Any()).AnyTimes()
	deps.lists.EXPECT().GetList(gomock.Any(), gomock.Any()).AnyTimes()
	deps.lists.EXPECT().UpdateList(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	deps.lists.EXPECT().DeleteList(gomock.Any(), gomock.Any()).AnyTimes()
	deps.items.EXPECT().CompleteAll(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()
	deps.items.EXPECT().GetItems(gomock.Any(), gomock.Any()).AnyTimes()
	deps.items.EXPECT().CreateItem(gomock.Any(), gomock.Any()).AnyTimes()
	deps.items.EXPECT().UpdateItem(gomock.Any(), gomock.Any()).AnyTimes()
	deps.items.EXPECT().DeleteItem(gomock.Any(), gomock.Any(), gomock.Any()).AnyTimes()

	router := h.Init()

	for _, tc := range expectedRoutes {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, stringBody(tc.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Less(t, rec.Code, 400, "route %s %s answered %d", tc.method, tc.path, rec.Code)
		})
	}
}

func TestInit_UnknownRouteReturns404(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/nonexistent", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestInit_WrongMethodReturns404(t *testing.T) {
	h, _ := newTestHandler(t, nil)
	router := h.Init()

	for _, tc := range []routeCase{
		{method: http.MethodPost, path: "/api/version"},
		{method: http.MethodPatch, path: "/todolists/1"},
		{method: http.MethodGet, path: "/todolists/1/todos/2"},
	} {
		req := httptest.NewRequest(tc.method, tc.path, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code, "%s %s", tc.method, tc.path)
	}
}

func TestInit_SetsTraceID(t *testing.T) {
	h, deps := newTestHandler(t, nil)
	deps.appInfo.EXPECT().GetAppVersion(gomock.Any()).Return("test")

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// ─────────────────────────────────────────────
// healthz
// ─────────────────────────────────────────────

func TestHealthz(t *testing.T) {
	tests := []struct {
		name   string
		health HealthChecker
		want   int
	}{
		{"no checker", nil, http.StatusOK},
		{"storage reachable", pingFunc(func(context.Context) error { return nil }), http.StatusOK},
		{"storage down", pingFunc(func(context.Context) error { return errors.New("dial tcp: refused") }), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, _ := newTestHandler(t, tt.health)

			rec := httptest.NewRecorder()
			h.healthz(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestHealthz_PingHasDeadline(t *testing.T) {
	var hasDeadline bool
	h, _ := newTestHandler(t, pingFunc(func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	}))

	h.healthz(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.True(t, hasDeadline)
}

package http

import (
	"bytes"
	"compress/gzip"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/models"
)

func gzipped(t *testing.T, s string) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(s))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return &buf
}

func gunzip(t *testing.T, b []byte) string {
	t.Helper()
	zr, err := gzip.NewReader(bytes.NewReader(b))
	require.NoError(t, err)
	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return string(out)
}

func TestGZip_CompressedRequestBody(t *testing.T) {
	h, deps := newTestHandler(t, nil)
	deps.lists.EXPECT().CreateList(gomock.Any(), "groceries").Return(models.TodoList{ID: 1, Name: "groceries"}, nil)

	req := httptest.NewRequest(http.MethodPost, "/todolists", gzipped(t, `{"name":"groceries"}`))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"id":1,"name":"groceries","todos":[]}`, rec.Body.String())
}

func TestGZip_InvalidRequestBody(t *testing.T) {
	h, _ := newTestHandler(t, nil)

	req := httptest.NewRequest(http.MethodPost, "/todolists", strings.NewReader("not gzip"))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGZip_CompressedResponse(t *testing.T) {
	lists := []models.TodoList{{ID: 1, Name: "work", Todos: []models.TodoItem{{ID: 2, ListID: 1, Description: "report"}}}}
	want := `[{"id":1,"name":"work","todos":[{"id":2,"list_id":1,"description":"report","completed":false}]}]`

	tests := []struct {
		name           string
		acceptEncoding string
		compressed     bool
	}{
		{name: "gzip accepted", acceptEncoding: "gzip, deflate", compressed: true},
		{name: "plain client", acceptEncoding: "", compressed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, deps := newTestHandler(t, nil)
			deps.lists.EXPECT().GetLists(gomock.Any()).Return(lists, nil)

			req := httptest.NewRequest(http.MethodGet, "/todolists", nil)
			if tt.acceptEncoding != "" {
				req.Header.Set("Accept-Encoding", tt.acceptEncoding)
			}
			rec := httptest.NewRecorder()
			h.Init().ServeHTTP(rec, req)

			require.Equal(t, http.StatusOK, rec.Code)
			if !tt.compressed {
				assert.Empty(t, rec.Header().Get("Content-Encoding"))
				assert.JSONEq(t, want, rec.Body.String())
				return
			}
			assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
			assert.Equal(t, "Accept-Encoding", rec.Header().Get("Vary"))
			assert.JSONEq(t, want, gunzip(t, rec.Body.Bytes()))
		})
	}
}

func TestGZip_NoContentIsNotCompressed(t *testing.T) {
	h, deps := newTestHandler(t, nil)
	deps.lists.EXPECT().DeleteList(gomock.Any(), models.ID(4)).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/todolists/4", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()
	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Zero(t, rec.Body.Len())
}

func TestGZip_ConcurrentRequestsShareThePool(t *testing.T) {
	handler := withGZip(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_, _ = w.Write(bytes.ToUpper(body))
	}))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			req := httptest.NewRequest(http.MethodPost, "/", gzipped(t, "milk and bread"))
			req.Header.Set("Content-Encoding", "gzip")
			req.Header.Set("Accept-Encoding", "gzip")
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			zr, err := gzip.NewReader(rec.Body)
			if !assert.NoError(t, err) {
				return
			}
			out, _ := io.ReadAll(zr)
			assert.Equal(t, "MILK AND BREAD", string(out))
		}()
	}
	wg.Wait()
}

func TestCompressWriter(t *testing.T) {
	t.Run("first status wins", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cw := &compressWriter{ResponseWriter: rec}

		cw.WriteHeader(http.StatusAccepted)
		cw.WriteHeader(http.StatusInternalServerError)
		require.NoError(t, cw.Close())

		assert.Equal(t, http.StatusAccepted, rec.Code)
		assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	})

	t.Run("write implies 200", func(t *testing.T) {
		rec := httptest.NewRecorder()
		cw := &compressWriter{ResponseWriter: rec}

		_, err := cw.Write([]byte("ok"))
		require.NoError(t, err)
		require.NoError(t, cw.Close())

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ok", gunzip(t, rec.Body.Bytes()))
	})

	t.Run("close without body", func(t *testing.T) {
		cw := &compressWriter{ResponseWriter: httptest.NewRecorder()}
		assert.NoError(t, cw.Close())
		assert.NoError(t, cw.Close())
	})
}

func TestGzipBody_CloseTwice(t *testing.T) {
	body, err := newGzipBody(io.NopCloser(gzipped(t, "x")))
	require.NoError(t, err)

	assert.NoError(t, body.Close())
	assert.NoError(t, body.Close())
}

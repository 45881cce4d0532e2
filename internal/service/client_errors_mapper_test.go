package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
)

func TestClassifyAdapterError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want failureClass
	}{
		{name: "404", err: errNotFound, want: failureNotFound},
		{name: "wrapped 404", err: fmt.Errorf("delete list: %w", adapter.ErrNotFound), want: failureNotFound},
		{name: "missing id", err: errBadCreate, want: failureInvalidResponse},
		{name: "500", err: errServer, want: failureTransient},
		{name: "409", err: &adapter.StatusError{StatusCode: 409, Err: adapter.ErrConflict}, want: failureTransient},
		{name: "network", err: errNetwork, want: failureTransient},
		{name: "timeout", err: context.DeadlineExceeded, want: failureTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyAdapterError(tt.err)
			assert.Equal(t, tt.want, got)
			assert.NotEmpty(t, got.String())
		})
	}
}

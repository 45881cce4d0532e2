package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/config"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/notify"
	"github.com/MKhiriev/go-todo-keeper/internal/service"
)

func TestNewHandlers_WithHTTPAddress(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: ":8080"}

	h, err := NewHandlers(&service.Services{}, notify.NewHub(logger.Nop()), nil, cfg, logger.Nop())

	require.NoError(t, err)
	require.NotNil(t, h)
	assert.NotNil(t, h.HTTP)
}

// без адреса сервер запускать нечего
func TestNewHandlers_NoAddress(t *testing.T) {
	h, err := NewHandlers(&service.Services{}, nil, nil, &config.ServerConfig{}, logger.Nop())

	assert.ErrorIs(t, err, errNoHandlersAreCreated)
	assert.Nil(t, h)
}

func TestNewHandlers_IndependentInstances(t *testing.T) {
	cfg := &config.ServerConfig{HTTPAddress: ":8080"}

	h1, err := NewHandlers(nil, nil, nil, cfg, logger.Nop())
	require.NoError(t, err)
	h2, err := NewHandlers(nil, nil, nil, cfg, logger.Nop())
	require.NoError(t, err)

	assert.NotSame(t, h1.HTTP, h2.HTTP)
}

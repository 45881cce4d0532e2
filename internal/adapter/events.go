// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// defaultReconnectDelay is the pause between two connection attempts of
// [EventListener.Watch].
const defaultReconnectDelay = 500 * time.Millisecond

type wsEventListener struct {
	baseURL        string
	reconnectDelay time.Duration
	logger         *logger.Logger
}

// NewEventListener returns a websocket [EventListener]. wsAddress may be
// empty, in which case the push channel is assumed to be served by the same
// host as httpAddress.
func NewEventListener(httpAddress, wsAddress string, logger *logger.Logger) (EventListener, error) {
	raw := wsAddress
	if strings.TrimSpace(raw) == "" {
		raw = httpAddress
	}

	baseURL, err := normalizeBaseURL(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter ws address: %w", err)
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter ws address: %w", err)
	}
	switch u.Scheme {
	case "http":
		u.Scheme = "ws"
	case "https":
		u.Scheme = "wss"
	}

	return &wsEventListener{
		baseURL:        u.String(),
		reconnectDelay: defaultReconnectDelay,
		logger:         logger,
	}, nil
}

// Listen implements [EventListener]. A clean shutdown through ctx returns nil.
func (l *wsEventListener) Listen(ctx context.Context, listID models.ID, handle func(models.ListEvent)) error {
	conn, _, err := websocket.Dial(ctx, l.listURL(listID), nil)
	if err != nil {
		return fmt.Errorf("dial list events: %w", err)
	}
	defer conn.Close(websocket.StatusNormalClosure, "")

	for {
		var event models.ListEvent
		if err = wsjson.Read(ctx, conn, &event); err != nil {
			if ctx.Err() != nil || websocket.CloseStatus(err) == websocket.StatusNormalClosure {
				return nil
			}
			return fmt.Errorf("read list event: %w", err)
		}
		if event.ListID == 0 {
			event.ListID = listID
		}
		handle(event)
	}
}

// Watch implements [EventListener].
func (l *wsEventListener) Watch(ctx context.Context, listID models.ID, handle func(models.ListEvent)) {
	for {
		err := l.Listen(ctx, listID, handle)
		if ctx.Err() != nil {
			return
		}
		if err != nil && !errors.Is(err, context.Canceled) {
			l.logger.Debug().Err(err).
				Str("func", "wsEventListener.Watch").
				Int64("list_id", int64(listID)).
				Msg("push channel dropped, reconnecting")
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(l.reconnectDelay):
		}
	}
}

func (l *wsEventListener) listURL(listID models.ID) string {
	return l.baseURL + listEventsPath + listID.String()
}

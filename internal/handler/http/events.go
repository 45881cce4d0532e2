// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

const eventWriteTimeout = 5 * time.Second

// watchList streams the events of one list over a websocket until either
// side closes it. Messages sent by the client are ignored.
func (h *Handler) watchList(w http.ResponseWriter, r *http.Request) {
	listID, err := idParam(r, "listID")
	if err != nil {
		writeError(w, r, "*Handler.watchList", err)
		return
	}
	log := logger.FromRequest(r)

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Err(err).Str("func", "*Handler.watchList").Msg("websocket handshake failed")
		return
	}
	defer conn.CloseNow()

	events, cancel := h.hub.Subscribe(listID)
	defer cancel()

	ctx := conn.CloseRead(r.Context())
	log.Debug().Str("func", "*Handler.watchList").Int64("list_id", int64(listID)).Msg("subscriber connected")

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				conn.Close(websocket.StatusGoingAway, "")
				return
			}
			if err = writeEvent(ctx, conn, event); err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Err(err).Str("func", "*Handler.watchList").Msg("failed to push event")
				}
				return
			}
		}
	}
}

func writeEvent(ctx context.Context, conn *websocket.Conn, event any) error {
	ctx, cancel := context.WithTimeout(ctx, eventWriteTimeout)
	defer cancel()
	return wsjson.Write(ctx, conn, event)
}

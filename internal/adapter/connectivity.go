// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
)

// Pinger is the part of [ServerAdapter] the connectivity monitor needs.
type Pinger interface {
	Ping(ctx context.Context) error
}

type connectivityMonitor struct {
	pinger   Pinger
	interval time.Duration
	timeout  time.Duration

	online      atomic.Bool
	transitions chan bool

	logger *logger.Logger
}

// NewConnectivityMonitor returns a monitor that pings the server every
// interval. The state starts offline, so the first successful probe is
// reported as a transition to online.
func NewConnectivityMonitor(pinger Pinger, interval time.Duration, logger *logger.Logger) ConnectivityMonitor {
	return &connectivityMonitor{
		pinger:      pinger,
		interval:    interval,
		timeout:     interval,
		transitions: make(chan bool, 1),
		logger:      logger,
	}
}

func (m *connectivityMonitor) Online() bool {
	return m.online.Load()
}

func (m *connectivityMonitor) Transitions() <-chan bool {
	return m.transitions
}

// Run implements [ConnectivityMonitor]. The first probe runs immediately.
func (m *connectivityMonitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.probe(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *connectivityMonitor) probe(ctx context.Context) {
	probeCtx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	err := m.pinger.Ping(probeCtx)
	if ctx.Err() != nil {
		return
	}
	m.set(err == nil)
	if err != nil {
		m.logger.Debug().Err(err).Str("func", "connectivityMonitor.probe").Msg("server unreachable")
	}
}

func (m *connectivityMonitor) set(online bool) {
	if m.online.Swap(online) == online {
		return
	}

	m.logger.Info().Str("func", "connectivityMonitor.set").Bool("online", online).Msg("connectivity changed")

	// keep only the latest state for a slow reader
	select {
	case <-m.transitions:
	default:
	}
	select {
	case m.transitions <- online:
	default:
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-todo-keeper/internal/adapter"
	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/state"
)

type clientSyncJob struct {
	syncService ClientSyncService
	snapshots   ClientSnapshotService
	monitor     adapter.ConnectivityMonitor
	session     *state.Session

	interval time.Duration
	debounce time.Duration
	trigger  chan struct{}

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewClientSyncJob creates a clientSyncJob. The job is idle until Start is
// called. A zero or negative interval defaults to one minute.
func NewClientSyncJob(
	syncService ClientSyncService,
	snapshots ClientSnapshotService,
	monitor adapter.ConnectivityMonitor,
	session *state.Session,
	interval, debounce time.Duration,
	logger *logger.Logger,
) ClientSyncJob {
	if interval <= 0 {
		interval = time.Minute
	}
	return &clientSyncJob{
		syncService: syncService,
		snapshots:   snapshots,
		monitor:     monitor,
		session:     session,
		interval:    interval,
		debounce:    debounce,
		trigger:     make(chan struct{}, 1),
		logger:      logger,
	}
}

// Start implements ClientSyncJob. It stops any previously running job, then
// launches a background goroutine that drains the queue:
//   - right away, if the client is online and the queue is not empty;
//   - whenever the connectivity monitor reports the client came back online;
//   - every interval;
//   - whenever Trigger is called.
//
// Triggers arriving within the debounce window are merged into one drain.
// Drains run on the job goroutine only, one at a time.
func (j *clientSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(j.logger.WithContext(ctx))
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	if j.monitor.Online() && j.session.PendingCount() > 0 {
		j.Trigger()
	}

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case online := <-j.monitor.Transitions():
				if online {
					j.logger.Info().Str("func", "clientSyncJob.Start").Msg("connection restored")
					j.Trigger()
				}
			case <-t.C:
				j.Trigger()
			case <-j.trigger:
				if !sleep(jobCtx, j.debounce) {
					return
				}
				// merge triggers that arrived during the debounce window
				select {
				case <-j.trigger:
				default:
				}
				j.runOnce(jobCtx)
			}
		}
	}()
}

// Trigger implements ClientSyncJob.
func (j *clientSyncJob) Trigger() {
	select {
	case j.trigger <- struct{}{}:
	default:
	}
}

// Stop implements ClientSyncJob. It cancels the background goroutine's context and
// blocks until the goroutine has fully exited. Safe to call when the job is not
// running (no-op in that case).
func (j *clientSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}

// runOnce drains the queue and then refreshes the lists snapshot, so that
// ids conciliated by the drain are merged against fresh server data.
func (j *clientSyncJob) runOnce(ctx context.Context) {
	if !j.monitor.Online() {
		return
	}

	if j.session.PendingCount() > 0 {
		_, err := j.syncService.ProcessQueue(ctx)
		if err != nil && !errors.Is(err, ErrDrainInProgress) {
			j.logger.Warn().Err(err).Str("func", "clientSyncJob.runOnce").Msg("drain failed")
		}
	}

	if err := j.snapshots.RefreshLists(ctx); err != nil {
		j.logger.Debug().Err(err).Str("func", "clientSyncJob.runOnce").Msg("lists refresh failed")
	}
}

// sleep waits for d or until ctx is done. It reports whether d elapsed.
func sleep(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

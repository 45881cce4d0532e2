// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/notify"
	"github.com/MKhiriev/go-todo-keeper/internal/store"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// DefaultToggleQueueCapacity is used when a non-positive capacity is given.
const DefaultToggleQueueCapacity = 64

// ToggleCompleteJob asks for every item of a list to be set to Completed.
type ToggleCompleteJob struct {
	ListID    models.ID
	Completed bool
}

// ToggleCompleteWorker applies bulk completion requests in the background
// and reports each result to the list subscribers.
type ToggleCompleteWorker struct {
	items     store.ItemRepository
	publisher notify.Publisher
	jobs      chan ToggleCompleteJob
	wg        sync.WaitGroup

	logger *logger.Logger
}

func NewToggleCompleteWorker(items store.ItemRepository, publisher notify.Publisher, capacity int, logger *logger.Logger) *ToggleCompleteWorker {
	if capacity <= 0 {
		capacity = DefaultToggleQueueCapacity
	}
	return &ToggleCompleteWorker{
		items:     items,
		publisher: publisher,
		jobs:      make(chan ToggleCompleteJob, capacity),
		logger:    logger,
	}
}

// Schedule queues a job without blocking.
func (w *ToggleCompleteWorker) Schedule(ctx context.Context, listID models.ID, completed bool) error {
	select {
	case w.jobs <- ToggleCompleteJob{ListID: listID, Completed: completed}:
		return nil
	default:
		logger.FromContext(ctx).Warn().
			Str("func", "ToggleCompleteWorker.Schedule").
			Int64("list_id", int64(listID)).
			Int("capacity", cap(w.jobs)).
			Msg("toggle complete queue is full")
		return ErrQueueFull
	}
}

// Run implements [Worker]. Jobs are applied one at a time until ctx is
// done; jobs still queued at that point are discarded.
func (w *ToggleCompleteWorker) Run(ctx context.Context) {
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case job := <-w.jobs:
				w.process(ctx, job)
			}
		}
	}()
}

// Wait blocks until the goroutine started by Run has exited.
func (w *ToggleCompleteWorker) Wait() {
	w.wg.Wait()
}

func (w *ToggleCompleteWorker) process(ctx context.Context, job ToggleCompleteJob) {
	event := models.ListEvent{Event: models.EventToggleCompleteDone, ListID: job.ListID}

	if err := w.items.SetAllCompleted(ctx, job.ListID, job.Completed); err != nil {
		w.logger.Err(err).
			Str("func", "ToggleCompleteWorker.process").
			Int64("list_id", int64(job.ListID)).
			Msg("failed to complete list items")
		event.Event = models.EventToggleCompleteError
		event.Error = err.Error()
	} else {
		w.logger.Debug().
			Str("func", "ToggleCompleteWorker.process").
			Int64("list_id", int64(job.ListID)).
			Bool("completed", job.Completed).
			Msg("list items completed")
	}

	w.publisher.Publish(event)
}

package workers

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/models"
)

// spyPublisher collects published events.
type spyPublisher struct {
	mu     sync.Mutex
	events []models.ListEvent
	got    chan struct{}
}

func newSpyPublisher() *spyPublisher {
	return &spyPublisher{got: make(chan struct{}, 16)}
}

func (p *spyPublisher) Publish(event models.ListEvent) {
	p.mu.Lock()
	p.events = append(p.events, event)
	p.mu.Unlock()
	p.got <- struct{}{}
}

func (p *spyPublisher) wait(t *testing.T) models.ListEvent {
	t.Helper()
	select {
	case <-p.got:
	case <-time.After(2 * time.Second):
		t.Fatal("no event published")
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.events[len(p.events)-1]
}

func TestToggleCompleteWorker_Done(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemRepository(ctrl)
	pub := newSpyPublisher()

	items.EXPECT().SetAllCompleted(gomock.Any(), models.ID(3), true).Return(nil)

	w := NewToggleCompleteWorker(items, pub, 4, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	w.Run(ctx)

	require.NoError(t, w.Schedule(ctx, 3, true))
	assert.Equal(t, models.ListEvent{Event: models.EventToggleCompleteDone, ListID: 3}, pub.wait(t))

	cancel()
	w.Wait()
}

func TestToggleCompleteWorker_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemRepository(ctrl)
	pub := newSpyPublisher()

	items.EXPECT().SetAllCompleted(gomock.Any(), models.ID(3), false).Return(errors.New("db down"))

	w := NewToggleCompleteWorker(items, pub, 4, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		w.Wait()
	}()
	w.Run(ctx)

	require.NoError(t, w.Schedule(ctx, 3, false))
	event := pub.wait(t)
	assert.Equal(t, models.EventToggleCompleteError, event.Event)
	assert.Equal(t, "db down", event.Error)
}

func TestToggleCompleteWorker_QueueFull(t *testing.T) {
	ctrl := gomock.NewController(t)
	items := mock.NewMockItemRepository(ctrl)

	// воркер не запущен, очередь никто не читает
	w := NewToggleCompleteWorker(items, newSpyPublisher(), 1, logger.Nop())

	require.NoError(t, w.Schedule(context.Background(), 1, true))
	assert.ErrorIs(t, w.Schedule(context.Background(), 2, true), ErrQueueFull)
}

func TestNewToggleCompleteWorker_DefaultCapacity(t *testing.T) {
	w := NewToggleCompleteWorker(nil, nil, 0, logger.Nop())
	assert.Equal(t, DefaultToggleQueueCapacity, cap(w.jobs))
}

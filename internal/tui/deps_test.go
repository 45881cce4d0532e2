package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-todo-keeper/internal/mock"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func TestEventWatcher_DeliversEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockEventListener(ctrl)

	event := models.ListEvent{Event: models.EventToggleCompleteDone, ListID: 3}
	listener.EXPECT().Watch(gomock.Any(), models.ID(3), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ models.ID, handle func(models.ListEvent)) {
			handle(event)
			<-ctx.Done()
		})

	got := make(chan tea.Msg, 1)
	w := newEventWatcher(listener)
	w.setSender(func(msg tea.Msg) { got <- msg })

	w.Watch(context.Background(), 3)

	select {
	case msg := <-got:
		assert.Equal(t, listEventMsg{event: event}, msg)
	case <-time.After(time.Second):
		t.Fatal("event was not delivered")
	}

	w.Stop()
}

func TestEventWatcher_ReplacesSubscription(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockEventListener(ctrl)

	firstDone := make(chan struct{})
	gomock.InOrder(
		listener.EXPECT().Watch(gomock.Any(), models.ID(1), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ models.ID, _ func(models.ListEvent)) {
				<-ctx.Done()
				close(firstDone)
			}),
		listener.EXPECT().Watch(gomock.Any(), models.ID(2), gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ models.ID, _ func(models.ListEvent)) {
				<-ctx.Done()
			}),
	)

	w := newEventWatcher(listener)
	w.Watch(context.Background(), 1)
	w.Watch(context.Background(), 2)

	select {
	case <-firstDone:
	default:
		t.Fatal("previous subscription is still running")
	}

	w.Stop()
}

func TestEventWatcher_SkipsTemporaryLists(t *testing.T) {
	ctrl := gomock.NewController(t)
	listener := mock.NewMockEventListener(ctrl)

	w := newEventWatcher(listener)
	w.Watch(context.Background(), models.ID(10_000_000_001))
	w.Stop()
}

func TestEventWatcher_NilSafe(t *testing.T) {
	var w *eventWatcher
	require.NotPanics(t, func() {
		w.Watch(context.Background(), 1)
		w.Stop()
	})

	require.NotPanics(t, func() {
		empty := newEventWatcher(nil)
		empty.Watch(context.Background(), 1)
		empty.Stop()
	})
}

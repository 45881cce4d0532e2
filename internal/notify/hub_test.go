package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-todo-keeper/internal/logger"
	"github.com/MKhiriev/go-todo-keeper/models"
)

func TestHub_PublishReachesListSubscribers(t *testing.T) {
	hub := NewHub(logger.Nop())

	first, cancelFirst := hub.Subscribe(1)
	defer cancelFirst()
	second, cancelSecond := hub.Subscribe(1)
	defer cancelSecond()
	other, cancelOther := hub.Subscribe(2)
	defer cancelOther()

	event := models.ListEvent{Event: models.EventToggleCompleteDone, ListID: 1}
	hub.Publish(event)

	assert.Equal(t, event, <-first)
	assert.Equal(t, event, <-second)
	assert.Empty(t, other)
}

func TestHub_CancelClosesChannel(t *testing.T) {
	hub := NewHub(logger.Nop())

	ch, cancel := hub.Subscribe(1)
	require.Equal(t, 1, hub.Subscribers(1))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Zero(t, hub.Subscribers(1))

	// публикация без подписчиков не паникует
	assert.NotPanics(t, func() { hub.Publish(models.ListEvent{ListID: 1}) })
}

func TestHub_SlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(logger.Nop())

	ch, cancel := hub.Subscribe(1)
	defer cancel()

	for range defaultSubscriberBuffer + 5 {
		hub.Publish(models.ListEvent{Event: models.EventToggleCompleteDone, ListID: 1})
	}
	assert.Len(t, ch, defaultSubscriberBuffer)
}

package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/replyflow/replyflow-backend/models"
)

type publisherSpy struct {
	events []models.ChangeEvent
}

func (s *publisherSpy) Publish(ctx context.Context, event models.ChangeEvent) {
	s.events = append(s.events, event)
}

func TestChangeListenerHandleNotification(t *testing.T) {
	t.Run("foreign notifications are bridged", func(t *testing.T) {
		publisher := new(publisherSpy)
		listener := NewChangeListener(nil, publisher, "instance-a")

		listener.handleNotification(t.Context(),
			`{"table":"automations","op":"UPDATE","id":"auto-1","origin":"instance-b"}`)

		if assert.Len(t, publisher.events, 1) {
			assert.Equal(t, models.ChangeEvent{
				Table:    "automations",
				Op:       models.ChangeUpdate,
				RecordId: "auto-1",
			}, publisher.events[0])
		}
	})

	t.Run("own notifications are dropped", func(t *testing.T) {
		publisher := new(publisherSpy)
		listener := NewChangeListener(nil, publisher, "instance-a")

		listener.handleNotification(t.Context(),
			`{"table":"automations","op":"UPDATE","id":"auto-1","origin":"instance-a"}`)

		assert.Empty(t, publisher.events)
	})

	t.Run("notifications without an origin are bridged", func(t *testing.T) {
		publisher := new(publisherSpy)
		listener := NewChangeListener(nil, publisher, "instance-a")

		listener.handleNotification(t.Context(),
			`{"table":"coupons","op":"DELETE","id":"coupon-1","origin":null}`)

		if assert.Len(t, publisher.events, 1) {
			assert.Equal(t, "coupons", publisher.events[0].Table)
		}
	})
}

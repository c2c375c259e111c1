package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/replyflow/replyflow-backend/models"
)

func TestNotifierDeliversToTableSubscribers(t *testing.T) {
	notifier := NewNotifier()
	ch, unsubscribe := notifier.Subscribe("automations")
	defer unsubscribe()

	other, unsubscribeOther := notifier.Subscribe("contacts")
	defer unsubscribeOther()

	event := models.ChangeEvent{Table: "automations", Op: models.ChangeInsert, RecordId: "auto-1"}
	notifier.Publish(context.Background(), event)

	assert.Equal(t, event, <-ch)
	assert.Empty(t, other)
}

func TestNotifierWildcardReceivesEveryTable(t *testing.T) {
	notifier := NewNotifier()
	all, unsubscribe := notifier.Subscribe(AllTables)
	defer unsubscribe()

	notifier.Publish(context.Background(), models.ChangeEvent{Table: "automations", Op: models.ChangeInsert})
	notifier.Publish(context.Background(), models.ChangeEvent{Table: "contacts", Op: models.ChangeDelete})

	assert.Equal(t, "automations", (<-all).Table)
	assert.Equal(t, "contacts", (<-all).Table)
}

func TestNotifierPreservesPublicationOrder(t *testing.T) {
	notifier := NewNotifier()
	ch, unsubscribe := notifier.Subscribe("coupons")
	defer unsubscribe()

	ops := []models.ChangeOperation{models.ChangeInsert, models.ChangeUpdate, models.ChangeDelete}
	for _, op := range ops {
		notifier.Publish(context.Background(), models.ChangeEvent{Table: "coupons", Op: op, RecordId: "c-1"})
	}

	for _, op := range ops {
		assert.Equal(t, op, (<-ch).Op)
	}
}

func TestNotifierDropsForSlowSubscriber(t *testing.T) {
	notifier := NewNotifier()
	ch, unsubscribe := notifier.Subscribe("users")
	defer unsubscribe()

	// Fill the buffer and then some: publishing must never block.
	for i := 0; i < subscriberBufferSize+5; i++ {
		notifier.Publish(context.Background(), models.ChangeEvent{Table: "users", Op: models.ChangeUpdate})
	}
	assert.Len(t, ch, subscriberBufferSize)
}

func TestNotifierUnsubscribeClosesChannel(t *testing.T) {
	notifier := NewNotifier()
	ch, unsubscribe := notifier.Subscribe("flows")
	unsubscribe()

	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not panic on the closed channel.
	notifier.Publish(context.Background(), models.ChangeEvent{Table: "flows", Op: models.ChangeInsert})
}

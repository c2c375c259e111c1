package events

import (
	"context"
	"sync"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

const subscriberBufferSize = 16

// AllTables subscribes to changes of every table.
const AllTables = "*"

type subscriber struct {
	id int
	ch chan models.ChangeEvent
}

// Notifier fans change events out to per-table subscribers. Publication is
// synchronous and happens in mutation order; a subscriber whose buffer is
// full has the event dropped rather than blocking the writer.
type Notifier struct {
	mu     sync.Mutex
	nextId int
	subs   map[string][]subscriber
}

func NewNotifier() *Notifier {
	return &Notifier{subs: make(map[string][]subscriber)}
}

// Subscribe registers interest in changes to table; AllTables receives
// every table's events. The returned function unsubscribes and closes the
// channel.
func (n *Notifier) Subscribe(table string) (<-chan models.ChangeEvent, func()) {
	n.mu.Lock()
	defer n.mu.Unlock()

	n.nextId++
	sub := subscriber{id: n.nextId, ch: make(chan models.ChangeEvent, subscriberBufferSize)}
	n.subs[table] = append(n.subs[table], sub)

	unsubscribe := func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		subs := n.subs[table]
		for i := range subs {
			if subs[i].id == sub.id {
				n.subs[table] = append(subs[:i], subs[i+1:]...)
				close(sub.ch)
				return
			}
		}
	}
	return sub.ch, unsubscribe
}

// Publish delivers the event to every subscriber of its table, in
// registration order.
func (n *Notifier) Publish(ctx context.Context, event models.ChangeEvent) {
	n.mu.Lock()
	subs := make([]subscriber, 0, len(n.subs[event.Table])+len(n.subs[AllTables]))
	subs = append(subs, n.subs[event.Table]...)
	subs = append(subs, n.subs[AllTables]...)
	n.mu.Unlock()

	for _, sub := range subs {
		select {
		case sub.ch <- event:
		default:
			utils.LoggerFromContext(ctx).WarnContext(ctx,
				"change event dropped for slow subscriber",
				"table", event.Table, "op", string(event.Op))
		}
	}
}

package repositories

import (
	"context"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/tidwall/gjson"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

// CHANGE_CHANNEL is the NOTIFY channel the row-change triggers publish on
// (see the migrations).
const CHANGE_CHANNEL = "replyflow_changes"

type changePublisher interface {
	Publish(ctx context.Context, event models.ChangeEvent)
}

// ChangeListener bridges Postgres NOTIFY into the in-process notifier, so
// that row changes made by other instances reach this instance's
// subscribers. Notifications carrying this instance's own id are dropped:
// local mutations already publish directly, and bridging them again would
// deliver every event twice.
type ChangeListener struct {
	pool       *pgxpool.Pool
	publisher  changePublisher
	instanceId string
}

func NewChangeListener(pool *pgxpool.Pool, publisher changePublisher, instanceId string) *ChangeListener {
	return &ChangeListener{pool: pool, publisher: publisher, instanceId: instanceId}
}

// Listen blocks until ctx is cancelled, reconnecting with backoff when the
// listening connection drops. Store reads and writes stay retry-free; only
// this long-lived subscription reconnects.
func (l *ChangeListener) Listen(ctx context.Context) error {
	return retry.Do(
		func() error {
			return l.listenOnce(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(0),
		retry.Delay(time.Second),
		retry.MaxDelay(30*time.Second),
		retry.DelayType(retry.BackOffDelay),
		retry.OnRetry(func(n uint, err error) {
			utils.LoggerFromContext(ctx).WarnContext(ctx,
				"change listener connection lost, reconnecting",
				"attempt", n, "error", err.Error())
		}),
	)
}

func (l *ChangeListener) listenOnce(ctx context.Context) error {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return errors.Wrap(err, "can't acquire listening connection")
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+CHANGE_CHANNEL); err != nil {
		return errors.Wrap(err, "LISTEN failed")
	}

	for {
		notification, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return retry.Unrecoverable(ctx.Err())
			}
			return errors.Wrap(err, "error waiting for notification")
		}

		l.handleNotification(ctx, notification.Payload)
	}
}

func (l *ChangeListener) handleNotification(ctx context.Context, rawPayload string) {
	payload := gjson.Parse(rawPayload)
	if origin := payload.Get("origin").String(); origin != "" && origin == l.instanceId {
		return
	}

	l.publisher.Publish(ctx, models.ChangeEvent{
		Table:    payload.Get("table").String(),
		Op:       models.ChangeOperation(payload.Get("op").String()),
		RecordId: payload.Get("id").String(),
	})
}

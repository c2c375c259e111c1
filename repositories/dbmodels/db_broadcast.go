package dbmodels

import (
	"time"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type DBBroadcast struct {
	Id          string     `db:"id"`
	UserId      string     `db:"user_id"`
	Name        string     `db:"name"`
	Message     string     `db:"message"`
	TargetTag   string     `db:"target_tag"`
	Status      string     `db:"status"`
	ScheduledAt *time.Time `db:"scheduled_at"`
	SentCount   int        `db:"sent_count"`
	TotalCount  int        `db:"total_count"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

const TABLE_BROADCASTS = "broadcasts"

var SelectBroadcastColumns = utils.ColumnList[DBBroadcast]()

func AdaptBroadcast(db DBBroadcast) (models.Broadcast, error) {
	return models.Broadcast{
		Id:          db.Id,
		UserId:      db.UserId,
		Name:        db.Name,
		Message:     db.Message,
		TargetTag:   db.TargetTag,
		Status:      models.BroadcastStatus(db.Status),
		ScheduledAt: db.ScheduledAt,
		SentCount:   db.SentCount,
		TotalCount:  db.TotalCount,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}

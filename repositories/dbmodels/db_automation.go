package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type DBAutomation struct {
	Id            string    `db:"id"`
	UserId        string    `db:"user_id"`
	Name          string    `db:"name"`
	Kind          string    `db:"kind"`
	Triggers      string    `db:"triggers"`
	Responses     []byte    `db:"responses"`
	TargetPostUrl string    `db:"target_post_url"`
	Active        bool      `db:"active"`
	TriggerCount  int       `db:"trigger_count"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

const TABLE_AUTOMATIONS = "automations"

var SelectAutomationColumns = utils.ColumnList[DBAutomation]()

func AdaptAutomation(db DBAutomation) (models.Automation, error) {
	var responses []string
	if len(db.Responses) > 0 {
		if err := json.Unmarshal(db.Responses, &responses); err != nil {
			return models.Automation{}, errors.Wrap(err, "can't decode automation responses")
		}
	}

	return models.Automation{
		Id:            db.Id,
		UserId:        db.UserId,
		Name:          db.Name,
		Kind:          models.AutomationKind(db.Kind),
		Triggers:      db.Triggers,
		Responses:     responses,
		TargetPostUrl: db.TargetPostUrl,
		Active:        db.Active,
		TriggerCount:  db.TriggerCount,
		CreatedAt:     db.CreatedAt,
		UpdatedAt:     db.UpdatedAt,
	}, nil
}

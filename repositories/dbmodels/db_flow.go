package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type DBFlow struct {
	Id        string    `db:"id"`
	UserId    string    `db:"user_id"`
	Name      string    `db:"name"`
	Steps     []byte    `db:"steps"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const TABLE_FLOWS = "flows"

var SelectFlowColumns = utils.ColumnList[DBFlow]()

func AdaptFlow(db DBFlow) (models.Flow, error) {
	var steps []models.FlowStep
	if len(db.Steps) > 0 {
		if err := json.Unmarshal(db.Steps, &steps); err != nil {
			return models.Flow{}, errors.Wrap(err, "can't decode flow steps")
		}
	}

	return models.Flow{
		Id:        db.Id,
		UserId:    db.UserId,
		Name:      db.Name,
		Steps:     steps,
		Active:    db.Active,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}

package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type DBSequence struct {
	Id        string    `db:"id"`
	UserId    string    `db:"user_id"`
	Name      string    `db:"name"`
	Steps     []byte    `db:"steps"`
	Active    bool      `db:"active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

const TABLE_SEQUENCES = "sequences"

var SelectSequenceColumns = utils.ColumnList[DBSequence]()

func AdaptSequence(db DBSequence) (models.Sequence, error) {
	var steps []models.SequenceStep
	if len(db.Steps) > 0 {
		if err := json.Unmarshal(db.Steps, &steps); err != nil {
			return models.Sequence{}, errors.Wrap(err, "can't decode sequence steps")
		}
	}

	return models.Sequence{
		Id:        db.Id,
		UserId:    db.UserId,
		Name:      db.Name,
		Steps:     steps,
		Active:    db.Active,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}

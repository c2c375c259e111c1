package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type DBGrowthTool struct {
	Id          string    `db:"id"`
	UserId      string    `db:"user_id"`
	Name        string    `db:"name"`
	Kind        string    `db:"kind"`
	Config      []byte    `db:"config"`
	Active      bool      `db:"active"`
	Clicks      int       `db:"clicks"`
	Conversions int       `db:"conversions"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

const TABLE_GROWTH_TOOLS = "growth_tools"

var SelectGrowthToolColumns = utils.ColumnList[DBGrowthTool]()

func AdaptGrowthTool(db DBGrowthTool) (models.GrowthTool, error) {
	var config models.GrowthToolConfig
	if len(db.Config) > 0 {
		if err := json.Unmarshal(db.Config, &config); err != nil {
			return models.GrowthTool{}, errors.Wrap(err, "can't decode growth tool config")
		}
	}

	return models.GrowthTool{
		Id:          db.Id,
		UserId:      db.UserId,
		Name:        db.Name,
		Kind:        models.GrowthToolKind(db.Kind),
		Config:      config,
		Active:      db.Active,
		Clicks:      db.Clicks,
		Conversions: db.Conversions,
		CreatedAt:   db.CreatedAt,
		UpdatedAt:   db.UpdatedAt,
	}, nil
}

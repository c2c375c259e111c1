package dbmodels

import (
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type DBPlatformSettings struct {
	Id                  int       `db:"id"`
	UpiId               string    `db:"upi_id"`
	UpiPhone            string    `db:"upi_phone"`
	MaintenanceMode     bool      `db:"maintenance_mode"`
	RegistrationEnabled bool      `db:"registration_enabled"`
	MetaAppId           string    `db:"meta_app_id"`
	MetaAppSecret       string    `db:"meta_app_secret"`
	WebhookVerifyToken  string    `db:"webhook_verify_token"`
	PlanPricing         []byte    `db:"plan_pricing"`
	UpdatedAt           time.Time `db:"updated_at"`
}

const TABLE_PLATFORM_SETTINGS = "platform_settings"

// The settings table holds a single row with this id.
const PLATFORM_SETTINGS_ROW_ID = 1

var SelectPlatformSettingsColumns = utils.ColumnList[DBPlatformSettings]()

func AdaptPlatformSettings(db DBPlatformSettings) (models.PlatformSettings, error) {
	var pricing map[models.PlanTier]models.PlanPrice
	if len(db.PlanPricing) > 0 {
		if err := json.Unmarshal(db.PlanPricing, &pricing); err != nil {
			return models.PlatformSettings{}, errors.Wrap(err, "can't decode plan pricing")
		}
	}

	return models.PlatformSettings{
		UpiId:               db.UpiId,
		UpiPhone:            db.UpiPhone,
		MaintenanceMode:     db.MaintenanceMode,
		RegistrationEnabled: db.RegistrationEnabled,
		MetaAppId:           db.MetaAppId,
		MetaAppSecret:       db.MetaAppSecret,
		WebhookVerifyToken:  db.WebhookVerifyToken,
		PlanPricing:         pricing,
		UpdatedAt:           db.UpdatedAt,
	}, nil
}

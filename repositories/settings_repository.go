package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
)

type SettingsRepository interface {
	GetPlatformSettings(ctx context.Context, exec Executor) (models.PlatformSettings, error)
	UpdatePlatformSettings(ctx context.Context, exec Executor, input models.UpdatePlatformSettingsInput) error
}

type SettingsRepositoryPostgresql struct{}

func (repo *SettingsRepositoryPostgresql) GetPlatformSettings(ctx context.Context, exec Executor) (models.PlatformSettings, error) {
	settings, err := SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPlatformSettingsColumns...).
			From(dbmodels.TABLE_PLATFORM_SETTINGS).
			Where(squirrel.Eq{"id": dbmodels.PLATFORM_SETTINGS_ROW_ID}),
		dbmodels.AdaptPlatformSettings,
	)
	if err != nil {
		return models.PlatformSettings{}, err
	}
	if settings == nil {
		return models.DefaultPlatformSettings(), nil
	}
	return *settings, nil
}

func (repo *SettingsRepositoryPostgresql) UpdatePlatformSettings(ctx context.Context, exec Executor,
	input models.UpdatePlatformSettingsInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_PLATFORM_SETTINGS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": dbmodels.PLATFORM_SETTINGS_ROW_ID})

	if input.UpiId != nil {
		query = query.Set("upi_id", *input.UpiId)
	}
	if input.UpiPhone != nil {
		query = query.Set("upi_phone", *input.UpiPhone)
	}
	if input.MaintenanceMode != nil {
		query = query.Set("maintenance_mode", *input.MaintenanceMode)
	}
	if input.RegistrationEnabled != nil {
		query = query.Set("registration_enabled", *input.RegistrationEnabled)
	}
	if input.MetaAppId != nil {
		query = query.Set("meta_app_id", *input.MetaAppId)
	}
	if input.MetaAppSecret != nil {
		query = query.Set("meta_app_secret", *input.MetaAppSecret)
	}
	if input.WebhookVerifyToken != nil {
		query = query.Set("webhook_verify_token", *input.WebhookVerifyToken)
	}
	if input.PlanPricing != nil {
		pricing, err := json.Marshal(input.PlanPricing)
		if err != nil {
			return errors.Wrap(err, "can't encode plan pricing")
		}
		query = query.Set("plan_pricing", pricing)
	}

	return ExecBuilder(ctx, exec, query)
}

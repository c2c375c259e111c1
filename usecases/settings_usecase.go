package usecases

import (
	"context"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
	"github.com/replyflow/replyflow-backend/usecases/executor_factory"
	"github.com/replyflow/replyflow-backend/usecases/security"
)

type SettingsUsecaseRepository interface {
	GetPlatformSettings(ctx context.Context, exec repositories.Executor) (models.PlatformSettings, error)
	UpdatePlatformSettings(ctx context.Context, exec repositories.Executor,
		input models.UpdatePlatformSettingsInput) error
}

type SettingsUsecase struct {
	enforceSecurity security.EnforceSecurity
	executorFactory executor_factory.ExecutorFactory
	repository      SettingsUsecaseRepository
	notifier        changeNotifier
	credentials     models.Credentials
}

// PublicSettings is the unauthenticated subset shown on the pricing and
// sign-up pages.
func (uc *SettingsUsecase) PublicSettings(ctx context.Context) (models.PlatformSettings, error) {
	settings, err := uc.repository.GetPlatformSettings(ctx, uc.executorFactory.NewExecutor())
	if err != nil {
		return models.PlatformSettings{}, err
	}
	settings.MetaAppSecret = ""
	settings.WebhookVerifyToken = ""
	return settings, nil
}

func (uc *SettingsUsecase) GetSettings(ctx context.Context) (models.PlatformSettings, error) {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return models.PlatformSettings{}, err
	}
	return uc.repository.GetPlatformSettings(ctx, uc.executorFactory.NewExecutor())
}

func (uc *SettingsUsecase) UpdateSettings(ctx context.Context,
	input models.UpdatePlatformSettingsInput,
) (models.PlatformSettings, error) {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return models.PlatformSettings{}, err
	}

	exec := uc.executorFactory.NewExecutor()
	if err := uc.repository.UpdatePlatformSettings(ctx, exec, input); err != nil {
		return models.PlatformSettings{}, err
	}
	settings, err := uc.repository.GetPlatformSettings(ctx, exec)
	if err != nil {
		return models.PlatformSettings{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table: dbmodels.TABLE_PLATFORM_SETTINGS,
		Op:    models.ChangeUpdate,
	})
	return settings, nil
}

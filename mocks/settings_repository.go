package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
)

type SettingsRepository struct {
	mock.Mock
}

func (_m *SettingsRepository) GetPlatformSettings(ctx context.Context, exec repositories.Executor) (models.PlatformSettings, error) {
	args := _m.Called(ctx, exec)
	return args.Get(0).(models.PlatformSettings), args.Error(1)
}

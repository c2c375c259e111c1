package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
)

type AutomationRepository struct {
	mock.Mock
}

func (_m *AutomationRepository) AutomationsOfUser(ctx context.Context, exec repositories.Executor,
	userId string,
) ([]models.Automation, error) {
	args := _m.Called(ctx, exec, userId)
	return args.Get(0).([]models.Automation), args.Error(1)
}

func (_m *AutomationRepository) IncrementTriggerCount(ctx context.Context, exec repositories.Executor, id string) error {
	args := _m.Called(ctx, exec, id)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
)

type UserRepository struct {
	mock.Mock
}

func (_m *UserRepository) UserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error) {
	args := _m.Called(ctx, exec, userId)
	return args.Get(0).(models.User), args.Error(1)
}

func (_m *UserRepository) UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error) {
	args := _m.Called(ctx, exec, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (_m *UserRepository) UserByInstagramId(ctx context.Context, exec repositories.Executor, igUserId string) (*models.User, error) {
	args := _m.Called(ctx, exec, igUserId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (_m *UserRepository) CreateUser(ctx context.Context, exec repositories.Executor,
	input models.CreateUserInput, newUserId string,
) error {
	args := _m.Called(ctx, exec, input, newUserId)
	return args.Error(0)
}

func (_m *UserRepository) UpgradePlan(ctx context.Context, exec repositories.Executor,
	input models.UpgradePlanInput,
) error {
	args := _m.Called(ctx, exec, input)
	return args.Error(0)
}

func (_m *UserRepository) IncrementMessagesUsed(ctx context.Context, exec repositories.Executor, userId string) error {
	args := _m.Called(ctx, exec, userId)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
)

type ContactRepository struct {
	mock.Mock
}

func (_m *ContactRepository) ContactByInstagramId(ctx context.Context, exec repositories.Executor,
	userId string, instagramId string,
) (*models.Contact, error) {
	args := _m.Called(ctx, exec, userId, instagramId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Contact), args.Error(1)
}

func (_m *ContactRepository) CreateContact(ctx context.Context, exec repositories.Executor,
	input models.CreateContactInput, newContactId string,
) error {
	args := _m.Called(ctx, exec, input, newContactId)
	return args.Error(0)
}

func (_m *ContactRepository) TouchLastInteraction(ctx context.Context, exec repositories.Executor, id string) error {
	args := _m.Called(ctx, exec, id)
	return args.Error(0)
}

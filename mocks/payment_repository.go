package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
)

type PaymentRepository struct {
	mock.Mock
}

func (_m *PaymentRepository) PaymentsOfUser(ctx context.Context, exec repositories.Executor,
	userId string,
) ([]models.PaymentRequest, error) {
	args := _m.Called(ctx, exec, userId)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentRequest), args.Error(1)
}

func (_m *PaymentRepository) AllPayments(ctx context.Context, exec repositories.Executor) ([]models.PaymentRequest, error) {
	args := _m.Called(ctx, exec)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.PaymentRequest), args.Error(1)
}

func (_m *PaymentRepository) PaymentById(ctx context.Context, exec repositories.Executor,
	id string,
) (models.PaymentRequest, error) {
	args := _m.Called(ctx, exec, id)
	return args.Get(0).(models.PaymentRequest), args.Error(1)
}

func (_m *PaymentRepository) CreatePayment(ctx context.Context, exec repositories.Executor,
	input models.CreatePaymentRequestInput, newPaymentId string,
) error {
	args := _m.Called(ctx, exec, input, newPaymentId)
	return args.Error(0)
}

func (_m *PaymentRepository) UpdatePaymentStatus(ctx context.Context, exec repositories.Executor,
	id string, status models.PaymentStatus,
) error {
	args := _m.Called(ctx, exec, id, status)
	return args.Error(0)
}

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
)

type CouponRepository struct {
	mock.Mock
}

func (_m *CouponRepository) AllCoupons(ctx context.Context, exec repositories.Executor) ([]models.Coupon, error) {
	args := _m.Called(ctx, exec)
	return args.Get(0).([]models.Coupon), args.Error(1)
}

func (_m *CouponRepository) CouponByCode(ctx context.Context, exec repositories.Executor,
	code string, forUpdate ...bool,
) (*models.Coupon, error) {
	args := _m.Called(ctx, exec, code, forUpdate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Coupon), args.Error(1)
}

func (_m *CouponRepository) CreateCoupon(ctx context.Context, exec repositories.Executor,
	input models.CreateCouponInput, newCouponId string,
) error {
	args := _m.Called(ctx, exec, input, newCouponId)
	return args.Error(0)
}

func (_m *CouponRepository) UpdateCoupon(ctx context.Context, exec repositories.Executor,
	input models.UpdateCouponInput,
) error {
	args := _m.Called(ctx, exec, input)
	return args.Error(0)
}

func (_m *CouponRepository) DeleteCoupon(ctx context.Context, exec repositories.Executor, id string) error {
	args := _m.Called(ctx, exec, id)
	return args.Error(0)
}

func (_m *CouponRepository) IncrementUsedCount(ctx context.Context, exec repositories.Executor, id string) error {
	args := _m.Called(ctx, exec, id)
	return args.Error(0)
}

package usecases

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
	"github.com/replyflow/replyflow-backend/usecases/executor_factory"
	"github.com/replyflow/replyflow-backend/usecases/security"
)

type CouponUsecaseRepository interface {
	AllCoupons(ctx context.Context, exec repositories.Executor) ([]models.Coupon, error)
	CouponByCode(ctx context.Context, exec repositories.Executor,
		code string, forUpdate ...bool) (*models.Coupon, error)
	CreateCoupon(ctx context.Context, exec repositories.Executor,
		input models.CreateCouponInput, newCouponId string) error
	UpdateCoupon(ctx context.Context, exec repositories.Executor,
		input models.UpdateCouponInput) error
	DeleteCoupon(ctx context.Context, exec repositories.Executor, id string) error
	IncrementUsedCount(ctx context.Context, exec repositories.Executor, id string) error
}

type CouponUsecase struct {
	enforceSecurity    security.EnforceSecurity
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         CouponUsecaseRepository
	userRepository     planUpgrader
	notifier           changeNotifier
	credentials        models.Credentials
}

func (uc *CouponUsecase) ListCoupons(ctx context.Context) ([]models.Coupon, error) {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return nil, err
	}
	return uc.repository.AllCoupons(ctx, uc.executorFactory.NewExecutor())
}

func (uc *CouponUsecase) CreateCoupon(ctx context.Context,
	input models.CreateCouponInput,
) (models.Coupon, error) {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return models.Coupon{}, err
	}
	if input.Code == "" {
		return models.Coupon{}, errors.Wrap(models.BadParameterError, "a coupon requires a code")
	}
	if _, err := models.PlanTierFrom(string(input.PlanTier)); err != nil {
		return models.Coupon{}, err
	}

	coupon, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Coupon, error) {
			newCouponId := uuid.NewString()
			if err := uc.repository.CreateCoupon(ctx, tx, input, newCouponId); err != nil {
				return models.Coupon{}, err
			}
			created, err := uc.repository.CouponByCode(ctx, tx, input.Code)
			if err != nil {
				return models.Coupon{}, err
			}
			if created == nil {
				return models.Coupon{}, errors.Wrap(models.NotFoundError, "coupon vanished after insert")
			}
			return *created, nil
		})
	if err != nil {
		return models.Coupon{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_COUPONS,
		Op:       models.ChangeInsert,
		RecordId: coupon.Id,
	})
	return coupon, nil
}

func (uc *CouponUsecase) UpdateCoupon(ctx context.Context, input models.UpdateCouponInput) error {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return err
	}
	if err := uc.repository.UpdateCoupon(ctx, uc.executorFactory.NewExecutor(), input); err != nil {
		return err
	}
	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_COUPONS,
		Op:       models.ChangeUpdate,
		RecordId: input.Id,
	})
	return nil
}

func (uc *CouponUsecase) DeleteCoupon(ctx context.Context, id string) error {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return err
	}
	if err := uc.repository.DeleteCoupon(ctx, uc.executorFactory.NewExecutor(), id); err != nil {
		return err
	}
	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_COUPONS,
		Op:       models.ChangeDelete,
		RecordId: id,
	})
	return nil
}

// ApplyCoupon redeems a coupon for the caller. The redemption checks run in
// a fixed order so the user always sees the first applicable failure:
// existence, active flag, usage cap, expiry. Consumption and the plan
// upgrade commit together; a failure in either leaves both untouched.
func (uc *CouponUsecase) ApplyCoupon(ctx context.Context, code string) (models.Coupon, error) {
	if err := uc.enforceSecurity.WriteOwned(uc.credentials.UserId); err != nil {
		return models.Coupon{}, err
	}

	coupon, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Coupon, error) {
			coupon, err := uc.repository.CouponByCode(ctx, tx, code, true)
			if err != nil {
				return models.Coupon{}, err
			}
			if coupon == nil {
				return models.Coupon{}, models.ErrCouponNotFound
			}
			if err := coupon.Validate(time.Now()); err != nil {
				return models.Coupon{}, err
			}

			if err := uc.repository.IncrementUsedCount(ctx, tx, coupon.Id); err != nil {
				return models.Coupon{}, err
			}

			expiresAt := planExpiry(time.Now(), models.PlanIntervalMonthly)
			if err := uc.userRepository.UpgradePlan(ctx, tx, models.UpgradePlanInput{
				UserId:    uc.credentials.UserId,
				Tier:      coupon.PlanTier,
				Interval:  models.PlanIntervalMonthly,
				ExpiresAt: &expiresAt,
			}); err != nil {
				return models.Coupon{}, err
			}
			return *coupon, nil
		})
	if err != nil {
		return models.Coupon{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_COUPONS,
		Op:       models.ChangeUpdate,
		RecordId: coupon.Id,
	})
	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_USERS,
		Op:       models.ChangeUpdate,
		RecordId: uc.credentials.UserId,
	})
	return coupon, nil
}

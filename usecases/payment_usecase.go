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

type PaymentUsecaseRepository interface {
	PaymentsOfUser(ctx context.Context, exec repositories.Executor, userId string) ([]models.PaymentRequest, error)
	AllPayments(ctx context.Context, exec repositories.Executor) ([]models.PaymentRequest, error)
	PaymentById(ctx context.Context, exec repositories.Executor, id string) (models.PaymentRequest, error)
	CreatePayment(ctx context.Context, exec repositories.Executor,
		input models.CreatePaymentRequestInput, newPaymentId string) error
	UpdatePaymentStatus(ctx context.Context, exec repositories.Executor,
		id string, status models.PaymentStatus) error
}

type planUpgrader interface {
	UpgradePlan(ctx context.Context, exec repositories.Executor, input models.UpgradePlanInput) error
}

type PaymentUsecase struct {
	enforceSecurity    security.EnforceSecurity
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         PaymentUsecaseRepository
	userRepository     planUpgrader
	settingsRepository settingsReader
	notifier           changeNotifier
	credentials        models.Credentials
}

func (uc *PaymentUsecase) ListMyPayments(ctx context.Context) ([]models.PaymentRequest, error) {
	if err := uc.enforceSecurity.ReadOwned(uc.credentials.UserId); err != nil {
		return nil, err
	}
	return uc.repository.PaymentsOfUser(ctx, uc.executorFactory.NewExecutor(), uc.credentials.UserId)
}

func (uc *PaymentUsecase) ListAllPayments(ctx context.Context) ([]models.PaymentRequest, error) {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return nil, err
	}
	return uc.repository.AllPayments(ctx, uc.executorFactory.NewExecutor())
}

// CreatePaymentRequest opens a manual payment for admin review. The amount
// is derived from the platform pricing table, never trusted from the caller.
func (uc *PaymentUsecase) CreatePaymentRequest(ctx context.Context,
	input models.CreatePaymentRequestInput,
) (models.PaymentRequest, error) {
	if err := uc.enforceSecurity.WriteOwned(uc.credentials.UserId); err != nil {
		return models.PaymentRequest{}, err
	}
	input.UserId = uc.credentials.UserId

	if _, err := models.PlanTierFrom(string(input.PlanTier)); err != nil {
		return models.PaymentRequest{}, err
	}
	if _, err := models.PlanIntervalFrom(string(input.PlanInterval)); err != nil {
		return models.PaymentRequest{}, err
	}
	if input.PlanTier == models.PlanFree {
		return models.PaymentRequest{}, errors.Wrap(models.BadParameterError,
			"the free plan does not require a payment")
	}
	if input.TxnRef == "" {
		return models.PaymentRequest{}, errors.Wrap(models.BadParameterError,
			"a payment request requires a transaction reference")
	}

	settings, err := uc.settingsRepository.GetPlatformSettings(ctx, uc.executorFactory.NewExecutor())
	if err != nil {
		return models.PaymentRequest{}, err
	}
	price, ok := settings.PlanPricing[input.PlanTier]
	if !ok {
		return models.PaymentRequest{}, errors.Wrapf(models.BadParameterError,
			"no pricing configured for the %s plan", input.PlanTier)
	}
	if input.PlanInterval == models.PlanIntervalYearly {
		input.AmountInr = price.YearlyInr
	} else {
		input.AmountInr = price.MonthlyInr
	}

	payment, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.PaymentRequest, error) {
			newPaymentId := uuid.NewString()
			if err := uc.repository.CreatePayment(ctx, tx, input, newPaymentId); err != nil {
				return models.PaymentRequest{}, err
			}
			return uc.repository.PaymentById(ctx, tx, newPaymentId)
		})
	if err != nil {
		return models.PaymentRequest{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_PAYMENT_REQUESTS,
		Op:       models.ChangeInsert,
		RecordId: payment.Id,
	})
	return payment, nil
}

// ApprovePayment marks a pending payment approved and upgrades the owner's
// plan, both in the same transaction.
func (uc *PaymentUsecase) ApprovePayment(ctx context.Context, id string) (models.PaymentRequest, error) {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return models.PaymentRequest{}, err
	}

	payment, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.PaymentRequest, error) {
			payment, err := uc.repository.PaymentById(ctx, tx, id)
			if err != nil {
				return models.PaymentRequest{}, err
			}
			if payment.Status != models.PaymentPending {
				return models.PaymentRequest{}, errors.Wrapf(models.ErrPaymentNotPending,
					"payment %s is %s", payment.Id, payment.Status)
			}

			if err := uc.repository.UpdatePaymentStatus(ctx, tx, id, models.PaymentApproved); err != nil {
				return models.PaymentRequest{}, err
			}

			expiresAt := planExpiry(time.Now(), payment.PlanInterval)
			if err := uc.userRepository.UpgradePlan(ctx, tx, models.UpgradePlanInput{
				UserId:    payment.UserId,
				Tier:      payment.PlanTier,
				Interval:  payment.PlanInterval,
				ExpiresAt: &expiresAt,
			}); err != nil {
				return models.PaymentRequest{}, err
			}

			return uc.repository.PaymentById(ctx, tx, id)
		})
	if err != nil {
		return models.PaymentRequest{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_PAYMENT_REQUESTS,
		Op:       models.ChangeUpdate,
		RecordId: payment.Id,
	})
	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_USERS,
		Op:       models.ChangeUpdate,
		RecordId: payment.UserId,
	})
	return payment, nil
}

func (uc *PaymentUsecase) RejectPayment(ctx context.Context, id string) (models.PaymentRequest, error) {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return models.PaymentRequest{}, err
	}

	payment, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.PaymentRequest, error) {
			payment, err := uc.repository.PaymentById(ctx, tx, id)
			if err != nil {
				return models.PaymentRequest{}, err
			}
			if payment.Status != models.PaymentPending {
				return models.PaymentRequest{}, errors.Wrapf(models.ErrPaymentNotPending,
					"payment %s is %s", payment.Id, payment.Status)
			}
			if err := uc.repository.UpdatePaymentStatus(ctx, tx, id, models.PaymentRejected); err != nil {
				return models.PaymentRequest{}, err
			}
			return uc.repository.PaymentById(ctx, tx, id)
		})
	if err != nil {
		return models.PaymentRequest{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_PAYMENT_REQUESTS,
		Op:       models.ChangeUpdate,
		RecordId: payment.Id,
	})
	return payment, nil
}

func planExpiry(from time.Time, interval models.PlanInterval) time.Time {
	if interval == models.PlanIntervalYearly {
		return from.AddDate(1, 0, 0)
	}
	return from.AddDate(0, 1, 0)
}

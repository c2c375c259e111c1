package usecases

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
	"github.com/replyflow/replyflow-backend/usecases/executor_factory"
	"github.com/replyflow/replyflow-backend/usecases/security"
	"github.com/replyflow/replyflow-backend/utils"
)

type AdminUsecaseUserRepository interface {
	AllUsers(ctx context.Context, exec repositories.Executor) ([]models.User, error)
	UserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
	SetSuspended(ctx context.Context, exec repositories.Executor, userId string, suspended bool) error
	DeleteUser(ctx context.Context, exec repositories.Executor, userId string) error
}

type adminPaymentsReader interface {
	AllPayments(ctx context.Context, exec repositories.Executor) ([]models.PaymentRequest, error)
}

type adminCouponsReader interface {
	AllCoupons(ctx context.Context, exec repositories.Executor) ([]models.Coupon, error)
}

type AdminUsecase struct {
	enforceSecurity    security.EnforceSecurity
	executorFactory    executor_factory.ExecutorFactory
	userRepository     AdminUsecaseUserRepository
	paymentRepository  adminPaymentsReader
	couponRepository   adminCouponsReader
	settingsRepository settingsReader
	notifier           changeNotifier
	credentials        models.Credentials
}

// Dashboard loads every back-office collection in parallel. A failing
// collection is logged and served empty rather than failing the whole load.
func (uc *AdminUsecase) Dashboard(ctx context.Context) (models.AdminDashboard, error) {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return models.AdminDashboard{}, err
	}

	logger := utils.LoggerFromContext(ctx)
	exec := uc.executorFactory.NewExecutor()

	var dashboard models.AdminDashboard
	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() error {
		users, err := uc.userRepository.AllUsers(groupCtx, exec)
		if err != nil {
			logger.ErrorContext(groupCtx, "loading users for the admin dashboard",
				"error", err.Error())
			return nil
		}
		dashboard.Users = users
		return nil
	})
	group.Go(func() error {
		payments, err := uc.paymentRepository.AllPayments(groupCtx, exec)
		if err != nil {
			logger.ErrorContext(groupCtx, "loading payments for the admin dashboard",
				"error", err.Error())
			return nil
		}
		dashboard.Payments = payments
		return nil
	})
	group.Go(func() error {
		coupons, err := uc.couponRepository.AllCoupons(groupCtx, exec)
		if err != nil {
			logger.ErrorContext(groupCtx, "loading coupons for the admin dashboard",
				"error", err.Error())
			return nil
		}
		dashboard.Coupons = coupons
		return nil
	})
	group.Go(func() error {
		settings, err := uc.settingsRepository.GetPlatformSettings(groupCtx, exec)
		if err != nil {
			logger.ErrorContext(groupCtx, "loading settings for the admin dashboard",
				"error", err.Error())
			dashboard.Settings = models.DefaultPlatformSettings()
			return nil
		}
		dashboard.Settings = settings
		return nil
	})

	if err := group.Wait(); err != nil {
		return models.AdminDashboard{}, err
	}

	dashboard.Stats = computeAdminStats(dashboard)
	return dashboard, nil
}

func computeAdminStats(dashboard models.AdminDashboard) models.AdminStats {
	stats := models.AdminStats{TotalUsers: len(dashboard.Users)}
	for _, user := range dashboard.Users {
		if user.PlanTier != models.PlanFree {
			stats.PaidUsers++
		}
	}
	for _, payment := range dashboard.Payments {
		if payment.Status == models.PaymentPending {
			stats.PendingPayments++
		}
	}
	for _, coupon := range dashboard.Coupons {
		if coupon.Active {
			stats.ActiveCoupons++
		}
	}
	return stats
}

func (uc *AdminUsecase) ListUsers(ctx context.Context) ([]models.User, error) {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return nil, err
	}
	return uc.userRepository.AllUsers(ctx, uc.executorFactory.NewExecutor())
}

func (uc *AdminUsecase) SetUserSuspended(ctx context.Context, userId string, suspended bool) (models.User, error) {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return models.User{}, err
	}

	exec := uc.executorFactory.NewExecutor()
	if err := uc.userRepository.SetSuspended(ctx, exec, userId, suspended); err != nil {
		return models.User{}, err
	}
	user, err := uc.userRepository.UserById(ctx, exec, userId)
	if err != nil {
		return models.User{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_USERS,
		Op:       models.ChangeUpdate,
		RecordId: userId,
	})
	return user, nil
}

func (uc *AdminUsecase) DeleteUser(ctx context.Context, userId string) error {
	if err := uc.enforceSecurity.Admin(); err != nil {
		return err
	}
	if err := uc.userRepository.DeleteUser(ctx, uc.executorFactory.NewExecutor(), userId); err != nil {
		return err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_USERS,
		Op:       models.ChangeDelete,
		RecordId: userId,
	})
	return nil
}

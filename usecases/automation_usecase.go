package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
	"github.com/replyflow/replyflow-backend/usecases/executor_factory"
	"github.com/replyflow/replyflow-backend/usecases/security"
)

type AutomationUsecaseRepository interface {
	AutomationsOfUser(ctx context.Context, exec repositories.Executor, userId string) ([]models.Automation, error)
	AutomationById(ctx context.Context, exec repositories.Executor, id string) (models.Automation, error)
	CountAutomationsOfUser(ctx context.Context, exec repositories.Executor, userId string) (int, error)
	CreateAutomation(ctx context.Context, exec repositories.Executor,
		input models.CreateAutomationInput, newAutomationId string) error
	UpdateAutomation(ctx context.Context, exec repositories.Executor,
		input models.UpdateAutomationInput) error
	DeleteAutomation(ctx context.Context, exec repositories.Executor, id string) error
}

type AutomationUsecase struct {
	enforceSecurity    security.EnforceSecurity
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         AutomationUsecaseRepository
	userRepository     planLimitsReader
	notifier           changeNotifier
	ruleCache          ruleCache
	credentials        models.Credentials
}

func (uc *AutomationUsecase) ListAutomations(ctx context.Context) ([]models.Automation, error) {
	if err := uc.enforceSecurity.ReadOwned(uc.credentials.UserId); err != nil {
		return nil, err
	}
	return uc.repository.AutomationsOfUser(ctx, uc.executorFactory.NewExecutor(), uc.credentials.UserId)
}

func (uc *AutomationUsecase) GetAutomation(ctx context.Context, id string) (models.Automation, error) {
	automation, err := uc.repository.AutomationById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return models.Automation{}, err
	}
	if err := uc.enforceSecurity.ReadOwned(automation.UserId); err != nil {
		return models.Automation{}, err
	}
	return automation, nil
}

// CreateAutomation assigns ownership to the caller and enforces the plan's
// automation cap before persisting.
func (uc *AutomationUsecase) CreateAutomation(ctx context.Context,
	input models.CreateAutomationInput,
) (models.Automation, error) {
	if err := uc.enforceSecurity.WriteOwned(uc.credentials.UserId); err != nil {
		return models.Automation{}, err
	}
	input.UserId = uc.credentials.UserId

	if _, err := models.AutomationKindFrom(string(input.Kind)); err != nil {
		return models.Automation{}, err
	}

	exec := uc.executorFactory.NewExecutor()
	user, err := uc.userRepository.UserById(ctx, exec, uc.credentials.UserId)
	if err != nil {
		return models.Automation{}, err
	}
	count, err := uc.repository.CountAutomationsOfUser(ctx, exec, uc.credentials.UserId)
	if err != nil {
		return models.Automation{}, err
	}
	limits := models.LimitsForTier(user.PlanTier)
	if !limits.Allows(limits.MaxAutomations, count) {
		return models.Automation{}, errors.Wrapf(models.ErrPlanLimitReached,
			"the %s plan allows %d automations", user.PlanTier, limits.MaxAutomations)
	}

	automation, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Automation, error) {
			newAutomationId := uuid.NewString()
			if err := uc.repository.CreateAutomation(ctx, tx, input, newAutomationId); err != nil {
				return models.Automation{}, err
			}
			return uc.repository.AutomationById(ctx, tx, newAutomationId)
		})
	if err != nil {
		return models.Automation{}, err
	}

	uc.ruleCache.Invalidate(uc.credentials.UserId)
	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_AUTOMATIONS,
		Op:       models.ChangeInsert,
		RecordId: automation.Id,
	})
	return automation, nil
}

func (uc *AutomationUsecase) UpdateAutomation(ctx context.Context,
	input models.UpdateAutomationInput,
) (models.Automation, error) {
	existing, err := uc.repository.AutomationById(ctx, uc.executorFactory.NewExecutor(), input.Id)
	if err != nil {
		return models.Automation{}, err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return models.Automation{}, err
	}
	if input.Kind != nil {
		if _, err := models.AutomationKindFrom(string(*input.Kind)); err != nil {
			return models.Automation{}, err
		}
	}

	automation, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Automation, error) {
			if err := uc.repository.UpdateAutomation(ctx, tx, input); err != nil {
				return models.Automation{}, err
			}
			return uc.repository.AutomationById(ctx, tx, input.Id)
		})
	if err != nil {
		return models.Automation{}, err
	}

	uc.ruleCache.Invalidate(existing.UserId)
	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_AUTOMATIONS,
		Op:       models.ChangeUpdate,
		RecordId: automation.Id,
	})
	return automation, nil
}

func (uc *AutomationUsecase) DeleteAutomation(ctx context.Context, id string) error {
	existing, err := uc.repository.AutomationById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return err
	}

	if err := uc.repository.DeleteAutomation(ctx, uc.executorFactory.NewExecutor(), id); err != nil {
		return err
	}

	uc.ruleCache.Invalidate(existing.UserId)
	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_AUTOMATIONS,
		Op:       models.ChangeDelete,
		RecordId: id,
	})
	return nil
}

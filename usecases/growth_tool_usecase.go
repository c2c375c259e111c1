package usecases

import (
	"context"

	"github.com/google/uuid"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
	"github.com/replyflow/replyflow-backend/usecases/executor_factory"
	"github.com/replyflow/replyflow-backend/usecases/security"
)

type GrowthToolUsecaseRepository interface {
	GrowthToolsOfUser(ctx context.Context, exec repositories.Executor, userId string) ([]models.GrowthTool, error)
	GrowthToolById(ctx context.Context, exec repositories.Executor, id string) (models.GrowthTool, error)
	CreateGrowthTool(ctx context.Context, exec repositories.Executor,
		input models.CreateGrowthToolInput, newToolId string) error
	UpdateGrowthTool(ctx context.Context, exec repositories.Executor,
		input models.UpdateGrowthToolInput) error
	DeleteGrowthTool(ctx context.Context, exec repositories.Executor, id string) error
	IncrementClicks(ctx context.Context, exec repositories.Executor, id string) error
	IncrementConversions(ctx context.Context, exec repositories.Executor, id string) error
}

type GrowthToolUsecase struct {
	enforceSecurity    security.EnforceSecurity
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         GrowthToolUsecaseRepository
	notifier           changeNotifier
	credentials        models.Credentials
}

func (uc *GrowthToolUsecase) ListGrowthTools(ctx context.Context) ([]models.GrowthTool, error) {
	if err := uc.enforceSecurity.ReadOwned(uc.credentials.UserId); err != nil {
		return nil, err
	}
	return uc.repository.GrowthToolsOfUser(ctx, uc.executorFactory.NewExecutor(), uc.credentials.UserId)
}

func (uc *GrowthToolUsecase) GetGrowthTool(ctx context.Context, id string) (models.GrowthTool, error) {
	tool, err := uc.repository.GrowthToolById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return models.GrowthTool{}, err
	}
	if err := uc.enforceSecurity.ReadOwned(tool.UserId); err != nil {
		return models.GrowthTool{}, err
	}
	return tool, nil
}

func (uc *GrowthToolUsecase) CreateGrowthTool(ctx context.Context,
	input models.CreateGrowthToolInput,
) (models.GrowthTool, error) {
	if err := uc.enforceSecurity.WriteOwned(uc.credentials.UserId); err != nil {
		return models.GrowthTool{}, err
	}
	input.UserId = uc.credentials.UserId

	if err := input.Config.Validate(input.Kind); err != nil {
		return models.GrowthTool{}, err
	}

	tool, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.GrowthTool, error) {
			newToolId := uuid.NewString()
			if err := uc.repository.CreateGrowthTool(ctx, tx, input, newToolId); err != nil {
				return models.GrowthTool{}, err
			}
			return uc.repository.GrowthToolById(ctx, tx, newToolId)
		})
	if err != nil {
		return models.GrowthTool{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_GROWTH_TOOLS,
		Op:       models.ChangeInsert,
		RecordId: tool.Id,
	})
	return tool, nil
}

func (uc *GrowthToolUsecase) UpdateGrowthTool(ctx context.Context,
	input models.UpdateGrowthToolInput,
) (models.GrowthTool, error) {
	existing, err := uc.repository.GrowthToolById(ctx, uc.executorFactory.NewExecutor(), input.Id)
	if err != nil {
		return models.GrowthTool{}, err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return models.GrowthTool{}, err
	}
	if input.Config != nil {
		if err := input.Config.Validate(existing.Kind); err != nil {
			return models.GrowthTool{}, err
		}
	}

	tool, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.GrowthTool, error) {
			if err := uc.repository.UpdateGrowthTool(ctx, tx, input); err != nil {
				return models.GrowthTool{}, err
			}
			return uc.repository.GrowthToolById(ctx, tx, input.Id)
		})
	if err != nil {
		return models.GrowthTool{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_GROWTH_TOOLS,
		Op:       models.ChangeUpdate,
		RecordId: tool.Id,
	})
	return tool, nil
}

func (uc *GrowthToolUsecase) DeleteGrowthTool(ctx context.Context, id string) error {
	existing, err := uc.repository.GrowthToolById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return err
	}

	if err := uc.repository.DeleteGrowthTool(ctx, uc.executorFactory.NewExecutor(), id); err != nil {
		return err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_GROWTH_TOOLS,
		Op:       models.ChangeDelete,
		RecordId: id,
	})
	return nil
}

// TrackClick records a visit to a public growth tool page. The endpoint is
// unauthenticated, so no ownership check applies.
func (uc *GrowthToolUsecase) TrackClick(ctx context.Context, id string) error {
	return uc.repository.IncrementClicks(ctx, uc.executorFactory.NewExecutor(), id)
}

func (uc *GrowthToolUsecase) TrackConversion(ctx context.Context, id string) error {
	return uc.repository.IncrementConversions(ctx, uc.executorFactory.NewExecutor(), id)
}

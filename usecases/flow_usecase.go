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

type FlowUsecaseRepository interface {
	FlowsOfUser(ctx context.Context, exec repositories.Executor, userId string) ([]models.Flow, error)
	FlowById(ctx context.Context, exec repositories.Executor, id string) (models.Flow, error)
	CreateFlow(ctx context.Context, exec repositories.Executor,
		input models.CreateFlowInput, newFlowId string) error
	UpdateFlow(ctx context.Context, exec repositories.Executor, input models.UpdateFlowInput) error
	DeleteFlow(ctx context.Context, exec repositories.Executor, id string) error
}

type FlowUsecase struct {
	enforceSecurity    security.EnforceSecurity
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         FlowUsecaseRepository
	notifier           changeNotifier
	credentials        models.Credentials
}

func (uc *FlowUsecase) ListFlows(ctx context.Context) ([]models.Flow, error) {
	if err := uc.enforceSecurity.ReadOwned(uc.credentials.UserId); err != nil {
		return nil, err
	}
	return uc.repository.FlowsOfUser(ctx, uc.executorFactory.NewExecutor(), uc.credentials.UserId)
}

func (uc *FlowUsecase) GetFlow(ctx context.Context, id string) (models.Flow, error) {
	flow, err := uc.repository.FlowById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return models.Flow{}, err
	}
	if err := uc.enforceSecurity.ReadOwned(flow.UserId); err != nil {
		return models.Flow{}, err
	}
	return flow, nil
}

func (uc *FlowUsecase) CreateFlow(ctx context.Context, input models.CreateFlowInput) (models.Flow, error) {
	if err := uc.enforceSecurity.WriteOwned(uc.credentials.UserId); err != nil {
		return models.Flow{}, err
	}
	input.UserId = uc.credentials.UserId

	if err := models.ValidateFlowSteps(input.Steps); err != nil {
		return models.Flow{}, err
	}

	flow, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Flow, error) {
			newFlowId := uuid.NewString()
			if err := uc.repository.CreateFlow(ctx, tx, input, newFlowId); err != nil {
				return models.Flow{}, err
			}
			return uc.repository.FlowById(ctx, tx, newFlowId)
		})
	if err != nil {
		return models.Flow{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_FLOWS,
		Op:       models.ChangeInsert,
		RecordId: flow.Id,
	})
	return flow, nil
}

func (uc *FlowUsecase) UpdateFlow(ctx context.Context, input models.UpdateFlowInput) (models.Flow, error) {
	existing, err := uc.repository.FlowById(ctx, uc.executorFactory.NewExecutor(), input.Id)
	if err != nil {
		return models.Flow{}, err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return models.Flow{}, err
	}
	if input.Steps != nil {
		if err := models.ValidateFlowSteps(input.Steps); err != nil {
			return models.Flow{}, err
		}
	}

	flow, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Flow, error) {
			if err := uc.repository.UpdateFlow(ctx, tx, input); err != nil {
				return models.Flow{}, err
			}
			return uc.repository.FlowById(ctx, tx, input.Id)
		})
	if err != nil {
		return models.Flow{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_FLOWS,
		Op:       models.ChangeUpdate,
		RecordId: flow.Id,
	})
	return flow, nil
}

func (uc *FlowUsecase) DeleteFlow(ctx context.Context, id string) error {
	existing, err := uc.repository.FlowById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return err
	}

	if err := uc.repository.DeleteFlow(ctx, uc.executorFactory.NewExecutor(), id); err != nil {
		return err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_FLOWS,
		Op:       models.ChangeDelete,
		RecordId: id,
	})
	return nil
}

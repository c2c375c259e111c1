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

type SequenceUsecaseRepository interface {
	SequencesOfUser(ctx context.Context, exec repositories.Executor, userId string) ([]models.Sequence, error)
	SequenceById(ctx context.Context, exec repositories.Executor, id string) (models.Sequence, error)
	CreateSequence(ctx context.Context, exec repositories.Executor,
		input models.CreateSequenceInput, newSequenceId string) error
	UpdateSequence(ctx context.Context, exec repositories.Executor,
		input models.UpdateSequenceInput) error
	DeleteSequence(ctx context.Context, exec repositories.Executor, id string) error
}

type SequenceUsecase struct {
	enforceSecurity    security.EnforceSecurity
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         SequenceUsecaseRepository
	notifier           changeNotifier
	credentials        models.Credentials
}

func (uc *SequenceUsecase) ListSequences(ctx context.Context) ([]models.Sequence, error) {
	if err := uc.enforceSecurity.ReadOwned(uc.credentials.UserId); err != nil {
		return nil, err
	}
	return uc.repository.SequencesOfUser(ctx, uc.executorFactory.NewExecutor(), uc.credentials.UserId)
}

func (uc *SequenceUsecase) GetSequence(ctx context.Context, id string) (models.Sequence, error) {
	sequence, err := uc.repository.SequenceById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return models.Sequence{}, err
	}
	if err := uc.enforceSecurity.ReadOwned(sequence.UserId); err != nil {
		return models.Sequence{}, err
	}
	return sequence, nil
}

func (uc *SequenceUsecase) CreateSequence(ctx context.Context,
	input models.CreateSequenceInput,
) (models.Sequence, error) {
	if err := uc.enforceSecurity.WriteOwned(uc.credentials.UserId); err != nil {
		return models.Sequence{}, err
	}
	input.UserId = uc.credentials.UserId

	if err := models.ValidateSequenceSteps(input.Steps); err != nil {
		return models.Sequence{}, err
	}

	sequence, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Sequence, error) {
			newSequenceId := uuid.NewString()
			if err := uc.repository.CreateSequence(ctx, tx, input, newSequenceId); err != nil {
				return models.Sequence{}, err
			}
			return uc.repository.SequenceById(ctx, tx, newSequenceId)
		})
	if err != nil {
		return models.Sequence{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_SEQUENCES,
		Op:       models.ChangeInsert,
		RecordId: sequence.Id,
	})
	return sequence, nil
}

func (uc *SequenceUsecase) UpdateSequence(ctx context.Context,
	input models.UpdateSequenceInput,
) (models.Sequence, error) {
	existing, err := uc.repository.SequenceById(ctx, uc.executorFactory.NewExecutor(), input.Id)
	if err != nil {
		return models.Sequence{}, err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return models.Sequence{}, err
	}
	if input.Steps != nil {
		if err := models.ValidateSequenceSteps(input.Steps); err != nil {
			return models.Sequence{}, err
		}
	}

	sequence, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Sequence, error) {
			if err := uc.repository.UpdateSequence(ctx, tx, input); err != nil {
				return models.Sequence{}, err
			}
			return uc.repository.SequenceById(ctx, tx, input.Id)
		})
	if err != nil {
		return models.Sequence{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_SEQUENCES,
		Op:       models.ChangeUpdate,
		RecordId: sequence.Id,
	})
	return sequence, nil
}

func (uc *SequenceUsecase) DeleteSequence(ctx context.Context, id string) error {
	existing, err := uc.repository.SequenceById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return err
	}

	if err := uc.repository.DeleteSequence(ctx, uc.executorFactory.NewExecutor(), id); err != nil {
		return err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_SEQUENCES,
		Op:       models.ChangeDelete,
		RecordId: id,
	})
	return nil
}

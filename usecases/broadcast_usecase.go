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

type BroadcastUsecaseRepository interface {
	BroadcastsOfUser(ctx context.Context, exec repositories.Executor, userId string) ([]models.Broadcast, error)
	BroadcastById(ctx context.Context, exec repositories.Executor, id string) (models.Broadcast, error)
	CreateBroadcast(ctx context.Context, exec repositories.Executor,
		input models.CreateBroadcastInput, newBroadcastId string, totalCount int) error
	UpdateBroadcast(ctx context.Context, exec repositories.Executor,
		input models.UpdateBroadcastInput) error
	DeleteBroadcast(ctx context.Context, exec repositories.Executor, id string) error
}

type broadcastAudienceReader interface {
	CountContactsOfUser(ctx context.Context, exec repositories.Executor, userId string) (int, error)
	ContactsOfUserWithTag(ctx context.Context, exec repositories.Executor,
		userId string, tag string) ([]models.Contact, error)
}

type BroadcastUsecase struct {
	enforceSecurity    security.EnforceSecurity
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         BroadcastUsecaseRepository
	contactRepository  broadcastAudienceReader
	notifier           changeNotifier
	credentials        models.Credentials
}

func (uc *BroadcastUsecase) ListBroadcasts(ctx context.Context) ([]models.Broadcast, error) {
	if err := uc.enforceSecurity.ReadOwned(uc.credentials.UserId); err != nil {
		return nil, err
	}
	return uc.repository.BroadcastsOfUser(ctx, uc.executorFactory.NewExecutor(), uc.credentials.UserId)
}

func (uc *BroadcastUsecase) GetBroadcast(ctx context.Context, id string) (models.Broadcast, error) {
	broadcast, err := uc.repository.BroadcastById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return models.Broadcast{}, err
	}
	if err := uc.enforceSecurity.ReadOwned(broadcast.UserId); err != nil {
		return models.Broadcast{}, err
	}
	return broadcast, nil
}

// CreateBroadcast snapshots the audience size at creation time. A broadcast
// with a schedule starts out scheduled, otherwise it stays a draft.
func (uc *BroadcastUsecase) CreateBroadcast(ctx context.Context,
	input models.CreateBroadcastInput,
) (models.Broadcast, error) {
	if err := uc.enforceSecurity.WriteOwned(uc.credentials.UserId); err != nil {
		return models.Broadcast{}, err
	}
	input.UserId = uc.credentials.UserId

	if input.Message == "" {
		return models.Broadcast{}, errors.Wrap(models.BadParameterError,
			"a broadcast requires a message")
	}

	exec := uc.executorFactory.NewExecutor()
	totalCount := 0
	if input.TargetTag != "" {
		audience, err := uc.contactRepository.ContactsOfUserWithTag(ctx, exec,
			uc.credentials.UserId, input.TargetTag)
		if err != nil {
			return models.Broadcast{}, err
		}
		totalCount = len(audience)
	} else {
		count, err := uc.contactRepository.CountContactsOfUser(ctx, exec, uc.credentials.UserId)
		if err != nil {
			return models.Broadcast{}, err
		}
		totalCount = count
	}

	broadcast, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Broadcast, error) {
			newBroadcastId := uuid.NewString()
			if err := uc.repository.CreateBroadcast(ctx, tx, input, newBroadcastId, totalCount); err != nil {
				return models.Broadcast{}, err
			}
			return uc.repository.BroadcastById(ctx, tx, newBroadcastId)
		})
	if err != nil {
		return models.Broadcast{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_BROADCASTS,
		Op:       models.ChangeInsert,
		RecordId: broadcast.Id,
	})
	return broadcast, nil
}

func (uc *BroadcastUsecase) UpdateBroadcast(ctx context.Context,
	input models.UpdateBroadcastInput,
) (models.Broadcast, error) {
	existing, err := uc.repository.BroadcastById(ctx, uc.executorFactory.NewExecutor(), input.Id)
	if err != nil {
		return models.Broadcast{}, err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return models.Broadcast{}, err
	}
	if existing.Status == models.BroadcastSent || existing.Status == models.BroadcastSending {
		return models.Broadcast{}, errors.Wrapf(models.BadParameterError,
			"a %s broadcast can no longer be edited", existing.Status)
	}
	if input.Status != nil {
		if _, err := models.BroadcastStatusFrom(string(*input.Status)); err != nil {
			return models.Broadcast{}, err
		}
	}

	broadcast, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Broadcast, error) {
			if err := uc.repository.UpdateBroadcast(ctx, tx, input); err != nil {
				return models.Broadcast{}, err
			}
			return uc.repository.BroadcastById(ctx, tx, input.Id)
		})
	if err != nil {
		return models.Broadcast{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_BROADCASTS,
		Op:       models.ChangeUpdate,
		RecordId: broadcast.Id,
	})
	return broadcast, nil
}

func (uc *BroadcastUsecase) DeleteBroadcast(ctx context.Context, id string) error {
	existing, err := uc.repository.BroadcastById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return err
	}

	if err := uc.repository.DeleteBroadcast(ctx, uc.executorFactory.NewExecutor(), id); err != nil {
		return err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_BROADCASTS,
		Op:       models.ChangeDelete,
		RecordId: id,
	})
	return nil
}

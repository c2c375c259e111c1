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

type ContactUsecaseRepository interface {
	ContactsOfUser(ctx context.Context, exec repositories.Executor, userId string) ([]models.Contact, error)
	ContactById(ctx context.Context, exec repositories.Executor, id string) (models.Contact, error)
	CountContactsOfUser(ctx context.Context, exec repositories.Executor, userId string) (int, error)
	CreateContact(ctx context.Context, exec repositories.Executor,
		input models.CreateContactInput, newContactId string) error
	UpdateContact(ctx context.Context, exec repositories.Executor,
		input models.UpdateContactInput) error
	DeleteContact(ctx context.Context, exec repositories.Executor, id string) error
}

type ContactUsecase struct {
	enforceSecurity    security.EnforceSecurity
	executorFactory    executor_factory.ExecutorFactory
	transactionFactory executor_factory.TransactionFactory
	repository         ContactUsecaseRepository
	userRepository     planLimitsReader
	notifier           changeNotifier
	credentials        models.Credentials
}

func (uc *ContactUsecase) ListContacts(ctx context.Context) ([]models.Contact, error) {
	if err := uc.enforceSecurity.ReadOwned(uc.credentials.UserId); err != nil {
		return nil, err
	}
	return uc.repository.ContactsOfUser(ctx, uc.executorFactory.NewExecutor(), uc.credentials.UserId)
}

func (uc *ContactUsecase) GetContact(ctx context.Context, id string) (models.Contact, error) {
	contact, err := uc.repository.ContactById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return models.Contact{}, err
	}
	if err := uc.enforceSecurity.ReadOwned(contact.UserId); err != nil {
		return models.Contact{}, err
	}
	return contact, nil
}

func (uc *ContactUsecase) CreateContact(ctx context.Context,
	input models.CreateContactInput,
) (models.Contact, error) {
	if err := uc.enforceSecurity.WriteOwned(uc.credentials.UserId); err != nil {
		return models.Contact{}, err
	}
	input.UserId = uc.credentials.UserId

	exec := uc.executorFactory.NewExecutor()
	user, err := uc.userRepository.UserById(ctx, exec, uc.credentials.UserId)
	if err != nil {
		return models.Contact{}, err
	}
	count, err := uc.repository.CountContactsOfUser(ctx, exec, uc.credentials.UserId)
	if err != nil {
		return models.Contact{}, err
	}
	limits := models.LimitsForTier(user.PlanTier)
	if !limits.Allows(limits.MaxContacts, count) {
		return models.Contact{}, errors.Wrapf(models.ErrPlanLimitReached,
			"the %s plan allows %d contacts", user.PlanTier, limits.MaxContacts)
	}

	contact, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Contact, error) {
			newContactId := uuid.NewString()
			if err := uc.repository.CreateContact(ctx, tx, input, newContactId); err != nil {
				if repositories.IsUniqueViolationError(err) {
					return models.Contact{}, errors.Wrap(models.ConflictError,
						"a contact with this instagram id already exists")
				}
				return models.Contact{}, err
			}
			return uc.repository.ContactById(ctx, tx, newContactId)
		})
	if err != nil {
		return models.Contact{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_CONTACTS,
		Op:       models.ChangeInsert,
		RecordId: contact.Id,
	})
	return contact, nil
}

func (uc *ContactUsecase) UpdateContact(ctx context.Context,
	input models.UpdateContactInput,
) (models.Contact, error) {
	existing, err := uc.repository.ContactById(ctx, uc.executorFactory.NewExecutor(), input.Id)
	if err != nil {
		return models.Contact{}, err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return models.Contact{}, err
	}

	contact, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.Contact, error) {
			if err := uc.repository.UpdateContact(ctx, tx, input); err != nil {
				return models.Contact{}, err
			}
			return uc.repository.ContactById(ctx, tx, input.Id)
		})
	if err != nil {
		return models.Contact{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_CONTACTS,
		Op:       models.ChangeUpdate,
		RecordId: contact.Id,
	})
	return contact, nil
}

func (uc *ContactUsecase) DeleteContact(ctx context.Context, id string) error {
	existing, err := uc.repository.ContactById(ctx, uc.executorFactory.NewExecutor(), id)
	if err != nil {
		return err
	}
	if err := uc.enforceSecurity.WriteOwned(existing.UserId); err != nil {
		return err
	}

	if err := uc.repository.DeleteContact(ctx, uc.executorFactory.NewExecutor(), id); err != nil {
		return err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_CONTACTS,
		Op:       models.ChangeDelete,
		RecordId: id,
	})
	return nil
}

package usecases

import (
	"context"

	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
	"github.com/replyflow/replyflow-backend/usecases/executor_factory"
	"github.com/replyflow/replyflow-backend/usecases/security"
)

type UserUsecaseRepository interface {
	UserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
	UpdateUser(ctx context.Context, exec repositories.Executor, input models.UpdateUserInput) error
	ConnectInstagram(ctx context.Context, exec repositories.Executor,
		input models.ConnectInstagramInput) error
}

type UserUsecase struct {
	enforceSecurity     security.EnforceSecurity
	executorFactory     executor_factory.ExecutorFactory
	transactionFactory  executor_factory.TransactionFactory
	repository          UserUsecaseRepository
	instagramRepository *repositories.InstagramRepository
	settingsRepository  settingsReader
	notifier            changeNotifier
	credentials         models.Credentials
}

func (uc *UserUsecase) GetMe(ctx context.Context) (models.User, error) {
	if err := uc.enforceSecurity.ReadOwned(uc.credentials.UserId); err != nil {
		return models.User{}, err
	}
	return uc.repository.UserById(ctx, uc.executorFactory.NewExecutor(), uc.credentials.UserId)
}

func (uc *UserUsecase) UpdateMe(ctx context.Context, input models.UpdateUserInput) (models.User, error) {
	if err := uc.enforceSecurity.WriteOwned(uc.credentials.UserId); err != nil {
		return models.User{}, err
	}
	input.Id = uc.credentials.UserId

	user, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.User, error) {
			if err := uc.repository.UpdateUser(ctx, tx, input); err != nil {
				return models.User{}, err
			}
			return uc.repository.UserById(ctx, tx, uc.credentials.UserId)
		})
	if err != nil {
		return models.User{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_USERS,
		Op:       models.ChangeUpdate,
		RecordId: user.Id,
	})
	return user, nil
}

// ConnectInstagram finishes the OAuth flow: the authorization code is
// exchanged for a long-lived token, the connected profile resolved, and the
// account subscribed to webhook delivery.
func (uc *UserUsecase) ConnectInstagram(ctx context.Context, code, redirectUri string) (models.User, error) {
	if err := uc.enforceSecurity.WriteOwned(uc.credentials.UserId); err != nil {
		return models.User{}, err
	}

	settings, err := uc.settingsRepository.GetPlatformSettings(ctx, uc.executorFactory.NewExecutor())
	if err != nil {
		return models.User{}, err
	}
	if settings.MetaAppId == "" || settings.MetaAppSecret == "" {
		return models.User{}, errors.Wrap(models.BadParameterError,
			"instagram integration is not configured on this platform")
	}

	shortLived, err := uc.instagramRepository.ExchangeCode(ctx,
		settings.MetaAppId, settings.MetaAppSecret, redirectUri, code)
	if err != nil {
		return models.User{}, errors.Wrap(err, "exchanging authorization code")
	}
	longLived, err := uc.instagramRepository.ExchangeLongLivedToken(ctx,
		settings.MetaAppSecret, shortLived.AccessToken)
	if err != nil {
		return models.User{}, errors.Wrap(err, "exchanging long-lived token")
	}

	profile, err := uc.instagramRepository.GetProfile(ctx, shortLived.UserId, longLived.AccessToken)
	if err != nil {
		return models.User{}, errors.Wrap(err, "fetching connected profile")
	}

	if err := uc.instagramRepository.SubscribeWebhooks(ctx, profile.Id, longLived.AccessToken); err != nil {
		return models.User{}, errors.Wrap(err, "subscribing to webhooks")
	}

	user, err := executor_factory.TransactionReturnValue(ctx, uc.transactionFactory,
		func(tx repositories.Transaction) (models.User, error) {
			if err := uc.repository.ConnectInstagram(ctx, tx, models.ConnectInstagramInput{
				UserId:            uc.credentials.UserId,
				InstagramUserId:   profile.Id,
				InstagramUsername: profile.Username,
				InstagramToken:    longLived.AccessToken,
			}); err != nil {
				return models.User{}, err
			}
			return uc.repository.UserById(ctx, tx, uc.credentials.UserId)
		})
	if err != nil {
		return models.User{}, err
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_USERS,
		Op:       models.ChangeUpdate,
		RecordId: user.Id,
	})
	return user, nil
}

// ListMedia proxies the caller's recent posts from the Graph API, for
// scoping a comment automation to one post.
func (uc *UserUsecase) ListMedia(ctx context.Context) ([]repositories.InstagramMedia, error) {
	user, err := uc.GetMe(ctx)
	if err != nil {
		return nil, err
	}
	if !user.InstagramConnected {
		return nil, models.ErrInstagramNotConnected
	}
	return uc.instagramRepository.GetMedia(ctx, user.InstagramUserId, user.InstagramToken)
}

func (uc *UserUsecase) ListConversations(ctx context.Context) ([]repositories.InstagramConversation, error) {
	user, err := uc.GetMe(ctx)
	if err != nil {
		return nil, err
	}
	if !user.InstagramConnected {
		return nil, models.ErrInstagramNotConnected
	}
	return uc.instagramRepository.GetConversations(ctx, user.InstagramUserId, user.InstagramToken)
}

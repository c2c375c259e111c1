package token

import (
	"context"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/repositories/clock"
	"github.com/replyflow/replyflow-backend/usecases/executor_factory"
	"github.com/replyflow/replyflow-backend/utils"
)

type userRepository interface {
	UserByEmail(ctx context.Context, exec repositories.Executor, email string) (*models.User, error)
	CreateUser(ctx context.Context, exec repositories.Executor,
		input models.CreateUserInput, newUserId string) error
	UserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
}

type encoder interface {
	EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error)
}

type identityVerifier interface {
	VerifyToken(ctx context.Context, idToken string) (models.Identity, error)
}

type settingsReader interface {
	GetPlatformSettings(ctx context.Context, exec repositories.Executor) (models.PlatformSettings, error)
}

type Generator struct {
	executorGetter     repositories.ExecutorGetter
	userRepository     userRepository
	settingsRepository settingsReader
	encoder            encoder
	verifier           identityVerifier
	clock              clock.Clock
	tokenLifetime      time.Duration
	// allowGuestFallback fabricates a non-durable guest session when the
	// identity provider cannot be reached. Dev environments only.
	allowGuestFallback bool
}

func NewGenerator(
	executorGetter repositories.ExecutorGetter,
	userRepository userRepository,
	settingsRepository settingsReader,
	encoder encoder,
	verifier identityVerifier,
	tokenLifetime time.Duration,
	allowGuestFallback bool,
) *Generator {
	return &Generator{
		executorGetter:     executorGetter,
		userRepository:     userRepository,
		settingsRepository: settingsRepository,
		encoder:            encoder,
		verifier:           verifier,
		clock:              clock.New(),
		tokenLifetime:      tokenLifetime,
		allowGuestFallback: allowGuestFallback,
	}
}

func (g *Generator) encodeToken(credentials models.Credentials) (string, time.Time, models.Credentials, error) {
	expirationTime := g.clock.Now().Add(g.tokenLifetime)

	token, err := g.encoder.EncodeToken(expirationTime, credentials)
	if err != nil {
		return "", time.Time{}, models.Credentials{},
			errors.Wrap(err, "encoder.EncodeToken error")
	}
	return token, expirationTime, credentials, nil
}

// GenerateToken exchanges an identity provider token for a session token.
// Users are created lazily on their first sign-in. If the identity provider
// is unreachable and guest fallback is enabled, a warning is logged and a
// fabricated, unpersisted guest session is issued instead.
func (g *Generator) GenerateToken(ctx context.Context, idpToken string) (string, time.Time, models.Credentials, error) {
	identity, err := g.verifier.VerifyToken(ctx, idpToken)
	if err != nil {
		if g.allowGuestFallback && !errors.Is(err, models.UnAuthorizedError) {
			utils.LoggerFromContext(ctx).WarnContext(ctx,
				"identity provider check failed, degrading to a guest session",
				"error", err.Error())
			return g.encodeToken(models.Credentials{
				UserId: uuid.NewString(),
				Email:  "guest@replyflow.local",
				Role:   models.RoleUser,
				Guest:  true,
			})
		}
		return "", time.Time{}, models.Credentials{},
			errors.Wrap(err, "verifier.VerifyToken error")
	}

	exec := g.executorGetter.NewExecutor()

	user, err := g.userRepository.UserByEmail(ctx, exec, identity.Email)
	if err != nil {
		return "", time.Time{}, models.Credentials{},
			errors.Wrap(err, "repository.UserByEmail error")
	}

	if user == nil {
		created, err := g.registerUser(ctx, identity)
		if err != nil {
			return "", time.Time{}, models.Credentials{}, err
		}
		user = &created
	}

	if user.Suspended {
		return "", time.Time{}, models.Credentials{},
			errors.Wrap(models.ErrUserSuspended, user.Email)
	}

	return g.encodeToken(models.NewCredentials(*user))
}

func (g *Generator) registerUser(ctx context.Context, identity models.Identity) (models.User, error) {
	settings, err := g.settingsRepository.GetPlatformSettings(ctx, g.executorGetter.NewExecutor())
	if err != nil {
		return models.User{}, errors.Wrap(err, "repository.GetPlatformSettings error")
	}
	if !settings.RegistrationEnabled {
		return models.User{}, errors.Wrap(models.ErrRegistrationClosed, identity.Email)
	}

	return executor_factory.TransactionReturnValue(ctx, g.executorGetter,
		func(tx repositories.Transaction) (models.User, error) {
			newUserId := uuid.NewString()
			if err := g.userRepository.CreateUser(ctx, tx, models.CreateUserInput{
				Email:       identity.Email,
				DisplayName: identity.Name,
				AvatarUrl:   identity.Picture,
			}, newUserId); err != nil {
				// A concurrent first sign-in may have raced us.
				if repositories.IsUniqueViolationError(err) {
					existing, err := g.userRepository.UserByEmail(ctx, tx, identity.Email)
					if err != nil {
						return models.User{}, err
					}
					if existing != nil {
						return *existing, nil
					}
				}
				return models.User{}, errors.Wrap(err, "repository.CreateUser error")
			}
			return g.userRepository.UserById(ctx, tx, newUserId)
		})
}

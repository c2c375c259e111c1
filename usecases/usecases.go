package usecases

import (
	"context"
	"time"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
	"github.com/replyflow/replyflow-backend/usecases/automation"
	"github.com/replyflow/replyflow-backend/usecases/events"
	"github.com/replyflow/replyflow-backend/usecases/security"
	"github.com/replyflow/replyflow-backend/usecases/token"
)

// Small shared interfaces so usecases only see what they use.
type changeNotifier interface {
	Publish(ctx context.Context, event models.ChangeEvent)
}

type ruleCache interface {
	Invalidate(userId string)
}

type planLimitsReader interface {
	UserById(ctx context.Context, exec repositories.Executor, userId string) (models.User, error)
}

type settingsReader interface {
	GetPlatformSettings(ctx context.Context, exec repositories.Executor) (models.PlatformSettings, error)
}

type Usecases struct {
	Repositories   repositories.Repositories
	ExecutorGetter repositories.ExecutorGetter
	Notifier       *events.Notifier
	Registry       *automation.Registry

	jwtRepository      *repositories.JwtRepository
	tokenLifetime      time.Duration
	allowGuestFallback bool
}

type Options struct {
	TokenLifetime      time.Duration
	AllowGuestFallback bool
}

func NewUsecases(repos repositories.Repositories, executorGetter repositories.ExecutorGetter,
	jwtRepository *repositories.JwtRepository, opts Options,
) Usecases {
	notifier := events.NewNotifier()
	registry := automation.NewRegistry(executorGetter, repos.AutomationRepository)

	tokenLifetime := opts.TokenLifetime
	if tokenLifetime == 0 {
		tokenLifetime = 24 * time.Hour
	}

	return Usecases{
		Repositories:       repos,
		ExecutorGetter:     executorGetter,
		Notifier:           notifier,
		Registry:           registry,
		jwtRepository:      jwtRepository,
		tokenLifetime:      tokenLifetime,
		allowGuestFallback: opts.AllowGuestFallback,
	}
}

// StartChangeWatchers consumes change events in the background. Automation
// changes, whether published locally or bridged from another instance, drop
// the cached matching engines so the next webhook sees the current rules.
func (usecases *Usecases) StartChangeWatchers(ctx context.Context) {
	events, unsubscribe := usecases.Notifier.Subscribe(dbmodels.TABLE_AUTOMATIONS)
	go func() {
		defer unsubscribe()
		usecases.Registry.Watch(ctx, events)
	}()
}

func (usecases *Usecases) NewTokenGenerator() *token.Generator {
	return token.NewGenerator(
		usecases.ExecutorGetter,
		usecases.Repositories.UserRepository,
		usecases.Repositories.SettingsRepository,
		usecases.jwtRepository,
		usecases.Repositories.FirebaseClient,
		usecases.tokenLifetime,
		usecases.allowGuestFallback,
	)
}

func (usecases *Usecases) NewTokenValidator() *token.Validator {
	return token.NewValidator(usecases.jwtRepository)
}

// NewWebhookUsecase is credential-free: webhook deliveries come from Meta,
// not from a signed-in user.
func (usecases *Usecases) NewWebhookUsecase() *WebhookUsecase {
	return &WebhookUsecase{
		executorFactory:      usecases.ExecutorGetter,
		userRepository:       usecases.Repositories.UserRepository,
		automationRepository: usecases.Repositories.AutomationRepository,
		contactRepository:    usecases.Repositories.ContactRepository,
		settingsRepository:   usecases.Repositories.SettingsRepository,
		instagramRepository:  usecases.Repositories.InstagramRepository,
		registry:             usecases.Registry,
		notifier:             usecases.Notifier,
	}
}

// NewPublicGrowthToolUsecase serves the unauthenticated click and conversion
// tracking endpoints. It carries empty credentials, so anything beyond the
// Track methods is refused by the ownership checks.
func (usecases *Usecases) NewPublicGrowthToolUsecase() *GrowthToolUsecase {
	return &GrowthToolUsecase{
		enforceSecurity:    &security.EnforceSecurityImpl{},
		executorFactory:    usecases.ExecutorGetter,
		transactionFactory: usecases.ExecutorGetter,
		repository:         usecases.Repositories.GrowthToolRepository,
		notifier:           usecases.Notifier,
	}
}

// NewPublicSettingsUsecase serves the unauthenticated pricing subset.
func (usecases *Usecases) NewPublicSettingsUsecase() *SettingsUsecase {
	return &SettingsUsecase{
		enforceSecurity: &security.EnforceSecurityImpl{},
		executorFactory: usecases.ExecutorGetter,
		repository:      usecases.Repositories.SettingsRepository,
		notifier:        usecases.Notifier,
	}
}

func (usecases *Usecases) NewLivenessUsecase() LivenessUsecase {
	return LivenessUsecase{
		executorFactory: usecases.ExecutorGetter,
	}
}

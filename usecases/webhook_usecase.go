package usecases

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/replyflow/replyflow-backend/infra"
	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
	"github.com/replyflow/replyflow-backend/usecases/automation"
	"github.com/replyflow/replyflow-backend/usecases/executor_factory"
	"github.com/replyflow/replyflow-backend/utils"
)

type webhookUserRepository interface {
	UserByInstagramId(ctx context.Context, exec repositories.Executor, igUserId string) (*models.User, error)
	IncrementMessagesUsed(ctx context.Context, exec repositories.Executor, userId string) error
}

type webhookAutomationRepository interface {
	IncrementTriggerCount(ctx context.Context, exec repositories.Executor, id string) error
}

type webhookContactRepository interface {
	ContactByInstagramId(ctx context.Context, exec repositories.Executor,
		userId string, instagramId string) (*models.Contact, error)
	CreateContact(ctx context.Context, exec repositories.Executor,
		input models.CreateContactInput, newContactId string) error
	TouchLastInteraction(ctx context.Context, exec repositories.Executor, id string) error
}

type graphSender interface {
	GetProfile(ctx context.Context, igUserId, accessToken string) (repositories.InstagramProfile, error)
	SendMessage(ctx context.Context, igUserId, accessToken, recipientId, text string) error
	ReplyToComment(ctx context.Context, accessToken, commentId, text string) error
}

// WebhookUsecase ingests Instagram webhook deliveries and runs them through
// the owner's matching engine. It needs no caller credentials: Meta is the
// caller, authenticated by the verify token at subscription time.
type WebhookUsecase struct {
	executorFactory      executor_factory.ExecutorFactory
	userRepository       webhookUserRepository
	automationRepository webhookAutomationRepository
	contactRepository    webhookContactRepository
	settingsRepository   settingsReader
	instagramRepository  graphSender
	registry             *automation.Registry
	notifier             changeNotifier
}

// VerifyChallenge answers Meta's subscription handshake.
func (uc *WebhookUsecase) VerifyChallenge(ctx context.Context, mode, token, challenge string) (string, error) {
	settings, err := uc.settingsRepository.GetPlatformSettings(ctx, uc.executorFactory.NewExecutor())
	if err != nil {
		return "", err
	}
	if mode != "subscribe" || token != settings.WebhookVerifyToken {
		return "", errors.Wrap(models.UnAuthorizedError, "webhook verify token mismatch")
	}
	return challenge, nil
}

// HandleEvent processes one webhook delivery. Every entry is handled
// independently: a failure on one entry is logged and does not abort the
// others, because Meta retries the whole delivery on a non-2xx response.
func (uc *WebhookUsecase) HandleEvent(ctx context.Context, payload []byte) error {
	logger := utils.LoggerFromContext(ctx)

	if object := gjson.GetBytes(payload, "object").String(); object != "instagram" {
		logger.DebugContext(ctx, "ignoring webhook for object", "object", object)
		return nil
	}

	for _, entry := range gjson.GetBytes(payload, "entry").Array() {
		accountId := entry.Get("id").String()

		for _, messaging := range entry.Get("messaging").Array() {
			if messaging.Get("message.is_echo").Bool() {
				continue
			}
			infra.WebhookEventsTotal.WithLabelValues("message").Inc()
			if err := uc.handleMessage(ctx, accountId, messaging); err != nil {
				logger.ErrorContext(ctx, "processing webhook message",
					"account_id", accountId, "error", err.Error())
			}
		}

		for _, change := range entry.Get("changes").Array() {
			if change.Get("field").String() != "comments" {
				continue
			}
			infra.WebhookEventsTotal.WithLabelValues("comment").Inc()
			if err := uc.handleComment(ctx, accountId, change.Get("value")); err != nil {
				logger.ErrorContext(ctx, "processing webhook comment",
					"account_id", accountId, "error", err.Error())
			}
		}
	}
	return nil
}

func (uc *WebhookUsecase) handleMessage(ctx context.Context, accountId string, messaging gjson.Result) error {
	senderId := messaging.Get("sender.id").String()
	text := messaging.Get("message.text").String()
	if senderId == "" || senderId == accountId || text == "" {
		return nil
	}

	user, err := uc.userRepository.UserByInstagramId(ctx, uc.executorFactory.NewExecutor(), accountId)
	if err != nil {
		return err
	}
	if user == nil || user.Suspended {
		return nil
	}

	senderName := uc.senderName(ctx, senderId, user.InstagramToken)

	engine, err := uc.registry.EngineForUser(ctx, user.Id)
	if err != nil {
		return err
	}
	match := engine.ProcessMessage(text, senderName)
	if match == nil {
		return nil
	}
	infra.AutomationMatchesTotal.Inc()

	if !uc.withinMessageQuota(ctx, *user) {
		return nil
	}

	if err := uc.instagramRepository.SendMessage(ctx,
		user.InstagramUserId, user.InstagramToken, senderId, match.ReplyText); err != nil {
		infra.MessagesSentTotal.WithLabelValues("error").Inc()
		return errors.Wrap(err, "sending automated reply")
	}
	infra.MessagesSentTotal.WithLabelValues("ok").Inc()

	return uc.recordMatch(ctx, *user, match.AutomationId, senderId, senderName)
}

func (uc *WebhookUsecase) handleComment(ctx context.Context, accountId string, value gjson.Result) error {
	senderId := value.Get("from.id").String()
	senderName := value.Get("from.username").String()
	commentId := value.Get("id").String()
	text := value.Get("text").String()
	if senderId == "" || senderId == accountId || text == "" {
		return nil
	}

	user, err := uc.userRepository.UserByInstagramId(ctx, uc.executorFactory.NewExecutor(), accountId)
	if err != nil {
		return err
	}
	if user == nil || user.Suspended {
		return nil
	}

	engine, err := uc.registry.EngineForUser(ctx, user.Id)
	if err != nil {
		return err
	}
	match := engine.ProcessComment(text, senderName)
	if match == nil {
		return nil
	}
	infra.AutomationMatchesTotal.Inc()

	if !uc.withinMessageQuota(ctx, *user) {
		return nil
	}

	// Public acknowledgment under the comment, then the configured DM.
	if err := uc.instagramRepository.ReplyToComment(ctx,
		user.InstagramToken, commentId, match.CommentReply); err != nil {
		return errors.Wrap(err, "replying to comment")
	}
	if err := uc.instagramRepository.SendMessage(ctx,
		user.InstagramUserId, user.InstagramToken, senderId, match.ReplyText); err != nil {
		infra.MessagesSentTotal.WithLabelValues("error").Inc()
		return errors.Wrap(err, "sending comment follow-up dm")
	}
	infra.MessagesSentTotal.WithLabelValues("ok").Inc()

	return uc.recordMatch(ctx, *user, match.AutomationId, senderId, senderName)
}

func (uc *WebhookUsecase) senderName(ctx context.Context, senderId, accessToken string) string {
	profile, err := uc.instagramRepository.GetProfile(ctx, senderId, accessToken)
	if err != nil {
		utils.LoggerFromContext(ctx).DebugContext(ctx, "could not resolve sender profile",
			"sender_id", senderId, "error", err.Error())
		return ""
	}
	if profile.Name != "" {
		return profile.Name
	}
	return profile.Username
}

func (uc *WebhookUsecase) withinMessageQuota(ctx context.Context, user models.User) bool {
	limits := models.LimitsForTier(user.PlanTier)
	if limits.Allows(limits.MaxMessagesPerMonth, user.MessagesUsed) {
		return true
	}
	utils.LoggerFromContext(ctx).WarnContext(ctx, "monthly message quota exhausted",
		"user_id", user.Id, "plan", string(user.PlanTier))
	return false
}

// recordMatch updates the trigger counter, the monthly usage counter and the
// contact book after a reply went out.
func (uc *WebhookUsecase) recordMatch(ctx context.Context, user models.User,
	automationId, senderId, senderName string,
) error {
	exec := uc.executorFactory.NewExecutor()

	if err := uc.automationRepository.IncrementTriggerCount(ctx, exec, automationId); err != nil {
		return err
	}
	if err := uc.userRepository.IncrementMessagesUsed(ctx, exec, user.Id); err != nil {
		return err
	}

	contact, err := uc.contactRepository.ContactByInstagramId(ctx, exec, user.Id, senderId)
	if err != nil {
		return err
	}
	if contact == nil {
		newContactId := uuid.NewString()
		if err := uc.contactRepository.CreateContact(ctx, exec, models.CreateContactInput{
			UserId:      user.Id,
			Name:        senderName,
			Username:    senderName,
			InstagramId: senderId,
		}, newContactId); err != nil {
			if !repositories.IsUniqueViolationError(err) {
				return err
			}
		} else {
			uc.notifier.Publish(ctx, models.ChangeEvent{
				Table:    dbmodels.TABLE_CONTACTS,
				Op:       models.ChangeInsert,
				RecordId: newContactId,
			})
		}
	} else {
		if err := uc.contactRepository.TouchLastInteraction(ctx, exec, contact.Id); err != nil {
			return err
		}
		uc.notifier.Publish(ctx, models.ChangeEvent{
			Table:    dbmodels.TABLE_CONTACTS,
			Op:       models.ChangeUpdate,
			RecordId: contact.Id,
		})
	}

	uc.notifier.Publish(ctx, models.ChangeEvent{
		Table:    dbmodels.TABLE_AUTOMATIONS,
		Op:       models.ChangeUpdate,
		RecordId: automationId,
	})
	return nil
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/mocks"
	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories"
	"github.com/replyflow/replyflow-backend/usecases/automation"
)

type webhookFixture struct {
	usecase    *WebhookUsecase
	users      *mocks.UserRepository
	automation *mocks.AutomationRepository
	contacts   *mocks.ContactRepository
	settings   *mocks.SettingsRepository
	graph      *mocks.GraphSender
	notifier   *mocks.ChangeNotifier
}

func newWebhookFixture() webhookFixture {
	users := new(mocks.UserRepository)
	automationRepo := new(mocks.AutomationRepository)
	contacts := new(mocks.ContactRepository)
	settings := new(mocks.SettingsRepository)
	graph := new(mocks.GraphSender)
	notifier := new(mocks.ChangeNotifier)

	executorFactory := new(mocks.ExecutorFactory)
	executorFactory.On("NewExecutor").Return(nil)

	return webhookFixture{
		usecase: &WebhookUsecase{
			executorFactory:      executorFactory,
			userRepository:       users,
			automationRepository: automationRepo,
			contactRepository:    contacts,
			settingsRepository:   settings,
			instagramRepository:  graph,
			registry:             automation.NewRegistry(repositories.ExecutorGetter{}, automationRepo),
			notifier:             notifier,
		},
		users:      users,
		automation: automationRepo,
		contacts:   contacts,
		settings:   settings,
		graph:      graph,
		notifier:   notifier,
	}
}

func TestVerifyChallenge(t *testing.T) {
	f := newWebhookFixture()
	f.settings.On("GetPlatformSettings", mock.Anything, mock.Anything).
		Return(models.PlatformSettings{WebhookVerifyToken: "secret-token"}, nil)

	challenge, err := f.usecase.VerifyChallenge(context.Background(), "subscribe", "secret-token", "12345")
	assert.NoError(t, err)
	assert.Equal(t, "12345", challenge)

	_, err = f.usecase.VerifyChallenge(context.Background(), "subscribe", "wrong", "12345")
	assert.ErrorIs(t, err, models.UnAuthorizedError)

	_, err = f.usecase.VerifyChallenge(context.Background(), "unsubscribe", "secret-token", "12345")
	assert.ErrorIs(t, err, models.UnAuthorizedError)
}

const incomingDmPayload = `{
	"object": "instagram",
	"entry": [{
		"id": "ig-account-1",
		"messaging": [{
			"sender": {"id": "ig-sender-9"},
			"message": {"text": "what is the PRICE of this?"}
		}]
	}]
}`

func pricedUser() *models.User {
	return &models.User{
		Id:                "user-1",
		PlanTier:          models.PlanPro,
		InstagramUserId:   "ig-account-1",
		InstagramToken:    "graph-token",
		InstagramUsername: "replyflow.demo",
	}
}

func priceAutomation() models.Automation {
	return models.Automation{
		Id:        "auto-1",
		UserId:    "user-1",
		Kind:      models.AutomationDmReply,
		Triggers:  "price, cost",
		Responses: []string{"Hi {{name}}, our plans start at 499 INR."},
		Active:    true,
	}
}

func TestHandleEventIncomingDmSendsMatchedReply(t *testing.T) {
	f := newWebhookFixture()

	f.users.On("UserByInstagramId", mock.Anything, mock.Anything, "ig-account-1").Return(pricedUser(), nil)
	f.automation.On("AutomationsOfUser", mock.Anything, mock.Anything, "user-1").
		Return([]models.Automation{priceAutomation()}, nil)
	f.graph.On("GetProfile", mock.Anything, "ig-sender-9", "graph-token").
		Return(repositories.InstagramProfile{Name: "Ada Lovelace", Username: "ada"}, nil)
	f.graph.On("SendMessage", mock.Anything, "ig-account-1", "graph-token", "ig-sender-9",
		"Hi Ada Lovelace, our plans start at 499 INR.").Return(nil)
	f.automation.On("IncrementTriggerCount", mock.Anything, mock.Anything, "auto-1").Return(nil)
	f.users.On("IncrementMessagesUsed", mock.Anything, mock.Anything, "user-1").Return(nil)
	f.contacts.On("ContactByInstagramId", mock.Anything, mock.Anything, "user-1", "ig-sender-9").
		Return(nil, nil)
	f.contacts.On("CreateContact", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
	f.notifier.On("Publish", mock.Anything, mock.Anything).Return()

	err := f.usecase.HandleEvent(context.Background(), []byte(incomingDmPayload))
	assert.NoError(t, err)
	f.graph.AssertExpectations(t)
	f.automation.AssertExpectations(t)
	f.contacts.AssertExpectations(t)
}

func TestHandleEventSkipsEchoAndOwnMessages(t *testing.T) {
	f := newWebhookFixture()

	payload := `{
		"object": "instagram",
		"entry": [{
			"id": "ig-account-1",
			"messaging": [
				{"sender": {"id": "ig-account-1"}, "message": {"text": "price"}},
				{"sender": {"id": "ig-sender-9"}, "message": {"text": "price", "is_echo": true}}
			]
		}]
	}`

	err := f.usecase.HandleEvent(context.Background(), []byte(payload))
	assert.NoError(t, err)
	f.users.AssertNotCalled(t, "UserByInstagramId")
	f.graph.AssertNotCalled(t, "SendMessage")
}

func TestHandleEventIgnoresNonInstagramObjects(t *testing.T) {
	f := newWebhookFixture()

	err := f.usecase.HandleEvent(context.Background(), []byte(`{"object": "page", "entry": []}`))
	assert.NoError(t, err)
	f.users.AssertNotCalled(t, "UserByInstagramId")
}

func TestHandleEventQuotaExhaustedSkipsSend(t *testing.T) {
	f := newWebhookFixture()

	user := pricedUser()
	user.PlanTier = models.PlanFree
	user.MessagesUsed = models.LimitsForTier(models.PlanFree).MaxMessagesPerMonth

	f.users.On("UserByInstagramId", mock.Anything, mock.Anything, "ig-account-1").Return(user, nil)
	f.automation.On("AutomationsOfUser", mock.Anything, mock.Anything, "user-1").
		Return([]models.Automation{priceAutomation()}, nil)
	f.graph.On("GetProfile", mock.Anything, "ig-sender-9", "graph-token").
		Return(repositories.InstagramProfile{Username: "ada"}, nil)

	err := f.usecase.HandleEvent(context.Background(), []byte(incomingDmPayload))
	assert.NoError(t, err)
	f.graph.AssertNotCalled(t, "SendMessage")
	f.users.AssertNotCalled(t, "IncrementMessagesUsed")
}

func TestHandleEventSuspendedAccountIsSkipped(t *testing.T) {
	f := newWebhookFixture()

	user := pricedUser()
	user.Suspended = true
	f.users.On("UserByInstagramId", mock.Anything, mock.Anything, "ig-account-1").Return(user, nil)

	err := f.usecase.HandleEvent(context.Background(), []byte(incomingDmPayload))
	assert.NoError(t, err)
	f.graph.AssertNotCalled(t, "GetProfile")
	f.graph.AssertNotCalled(t, "SendMessage")
}

func TestHandleEventCommentTriggersAckAndDm(t *testing.T) {
	f := newWebhookFixture()

	payload := `{
		"object": "instagram",
		"entry": [{
			"id": "ig-account-1",
			"changes": [{
				"field": "comments",
				"value": {
					"id": "comment-7",
					"text": "how much does it COST?",
					"from": {"id": "ig-sender-9", "username": "ada"}
				}
			}]
		}]
	}`

	commentAutomation := priceAutomation()
	commentAutomation.Kind = models.AutomationCommentReply

	f.users.On("UserByInstagramId", mock.Anything, mock.Anything, "ig-account-1").Return(pricedUser(), nil)
	f.automation.On("AutomationsOfUser", mock.Anything, mock.Anything, "user-1").
		Return([]models.Automation{commentAutomation}, nil)
	f.graph.On("ReplyToComment", mock.Anything, "graph-token", "comment-7",
		"Thanks for your interest, @ada! 🎉 Check your DM!").Return(nil)
	f.graph.On("SendMessage", mock.Anything, "ig-account-1", "graph-token", "ig-sender-9",
		"Hi ada, our plans start at 499 INR.").Return(nil)
	f.automation.On("IncrementTriggerCount", mock.Anything, mock.Anything, "auto-1").Return(nil)
	f.users.On("IncrementMessagesUsed", mock.Anything, mock.Anything, "user-1").Return(nil)
	f.contacts.On("ContactByInstagramId", mock.Anything, mock.Anything, "user-1", "ig-sender-9").
		Return(&models.Contact{Id: "contact-3"}, nil)
	f.contacts.On("TouchLastInteraction", mock.Anything, mock.Anything, "contact-3").Return(nil)
	f.notifier.On("Publish", mock.Anything, mock.Anything).Return()

	err := f.usecase.HandleEvent(context.Background(), []byte(payload))
	assert.NoError(t, err)
	f.graph.AssertExpectations(t)
	f.contacts.AssertExpectations(t)
}

func TestHandleEventDmDoesNotMatchCommentOnlyKinds(t *testing.T) {
	f := newWebhookFixture()

	welcome := priceAutomation()
	welcome.Kind = models.AutomationWelcome

	f.users.On("UserByInstagramId", mock.Anything, mock.Anything, "ig-account-1").Return(pricedUser(), nil)
	f.automation.On("AutomationsOfUser", mock.Anything, mock.Anything, "user-1").
		Return([]models.Automation{welcome}, nil)
	f.graph.On("GetProfile", mock.Anything, "ig-sender-9", "graph-token").
		Return(repositories.InstagramProfile{Username: "ada"}, nil)

	payload := `{
		"object": "instagram",
		"entry": [{
			"id": "ig-account-1",
			"changes": [{
				"field": "comments",
				"value": {
					"id": "comment-7",
					"text": "price",
					"from": {"id": "ig-sender-9", "username": "ada"}
				}
			}]
		}]
	}`

	err := f.usecase.HandleEvent(context.Background(), []byte(payload))
	assert.NoError(t, err)
	f.graph.AssertNotCalled(t, "ReplyToComment")
}

package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/mocks"
	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/usecases/security"
)

type paymentFixture struct {
	repo               *mocks.PaymentRepository
	userRepo           *mocks.UserRepository
	settingsRepo       *mocks.SettingsRepository
	notifier           *mocks.ChangeNotifier
	executorFactory    *mocks.ExecutorFactory
	transactionFactory *mocks.TransactionFactory
}

func buildPaymentUsecase(f paymentFixture, creds models.Credentials) *PaymentUsecase {
	return &PaymentUsecase{
		enforceSecurity:    &security.EnforceSecurityImpl{Credentials: creds},
		executorFactory:    f.executorFactory,
		transactionFactory: f.transactionFactory,
		repository:         f.repo,
		userRepository:     f.userRepo,
		settingsRepository: f.settingsRepo,
		notifier:           f.notifier,
		credentials:        creds,
	}
}

func newPaymentFixture() paymentFixture {
	f := paymentFixture{
		repo:               new(mocks.PaymentRepository),
		userRepo:           new(mocks.UserRepository),
		settingsRepo:       new(mocks.SettingsRepository),
		notifier:           new(mocks.ChangeNotifier),
		executorFactory:    new(mocks.ExecutorFactory),
		transactionFactory: &mocks.TransactionFactory{TxMock: new(mocks.Transaction)},
	}
	f.executorFactory.On("NewExecutor").Return(nil).Maybe()
	f.transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil).Maybe()
	return f
}

func TestCreatePaymentRequestDerivesAmountFromPricing(t *testing.T) {
	creds := models.Credentials{UserId: "user-1", Email: "ada@example.com", Role: models.RoleUser}
	f := newPaymentFixture()

	f.settingsRepo.On("GetPlatformSettings", mock.Anything, mock.Anything).
		Return(models.PlatformSettings{
			PlanPricing: map[models.PlanTier]models.PlanPrice{
				models.PlanPro: {MonthlyInr: 999, YearlyInr: 9990},
			},
		}, nil)

	f.repo.On("CreatePayment", mock.Anything, f.transactionFactory.TxMock,
		mock.MatchedBy(func(input models.CreatePaymentRequestInput) bool {
			return input.UserId == "user-1" && input.AmountInr == 9990
		}), mock.Anything).Return(nil)
	f.repo.On("PaymentById", mock.Anything, f.transactionFactory.TxMock, mock.Anything).
		Return(models.PaymentRequest{Id: "payment-1", AmountInr: 9990, Status: models.PaymentPending}, nil)
	f.notifier.On("Publish", mock.Anything, mock.Anything).Return()

	uc := buildPaymentUsecase(f, creds)
	payment, err := uc.CreatePaymentRequest(context.Background(), models.CreatePaymentRequestInput{
		Email:        "ada@example.com",
		PlanTier:     models.PlanPro,
		PlanInterval: models.PlanIntervalYearly,
		TxnRef:       "upi-ref-1",
		// A forged client amount must be ignored.
		AmountInr: 1,
	})

	assert.NoError(t, err)
	assert.Equal(t, 9990, payment.AmountInr)
	f.repo.AssertExpectations(t)
}

func TestCreatePaymentRequestRefusesFreePlan(t *testing.T) {
	creds := models.Credentials{UserId: "user-1", Role: models.RoleUser}
	f := newPaymentFixture()

	uc := buildPaymentUsecase(f, creds)
	_, err := uc.CreatePaymentRequest(context.Background(), models.CreatePaymentRequestInput{
		PlanTier:     models.PlanFree,
		PlanInterval: models.PlanIntervalMonthly,
		TxnRef:       "upi-ref-1",
	})

	assert.ErrorIs(t, err, models.BadParameterError)
	f.repo.AssertNotCalled(t, "CreatePayment")
}

func TestCreatePaymentRequestRequiresTxnRef(t *testing.T) {
	creds := models.Credentials{UserId: "user-1", Role: models.RoleUser}
	f := newPaymentFixture()

	uc := buildPaymentUsecase(f, creds)
	_, err := uc.CreatePaymentRequest(context.Background(), models.CreatePaymentRequestInput{
		PlanTier:     models.PlanStarter,
		PlanInterval: models.PlanIntervalMonthly,
	})

	assert.ErrorIs(t, err, models.BadParameterError)
}

func TestApprovePaymentUpgradesOwnerPlan(t *testing.T) {
	creds := models.Credentials{UserId: "admin-1", Role: models.RoleAdmin}
	f := newPaymentFixture()

	pending := models.PaymentRequest{
		Id:           "payment-1",
		UserId:       "user-1",
		PlanTier:     models.PlanBusiness,
		PlanInterval: models.PlanIntervalMonthly,
		Status:       models.PaymentPending,
	}
	approved := pending
	approved.Status = models.PaymentApproved

	f.repo.On("PaymentById", mock.Anything, f.transactionFactory.TxMock, "payment-1").
		Return(pending, nil).Once()
	f.repo.On("UpdatePaymentStatus", mock.Anything, f.transactionFactory.TxMock,
		"payment-1", models.PaymentApproved).Return(nil)
	f.userRepo.On("UpgradePlan", mock.Anything, f.transactionFactory.TxMock,
		mock.MatchedBy(func(input models.UpgradePlanInput) bool {
			return input.UserId == "user-1" &&
				input.Tier == models.PlanBusiness &&
				input.Interval == models.PlanIntervalMonthly &&
				input.ExpiresAt != nil
		})).Return(nil)
	f.repo.On("PaymentById", mock.Anything, f.transactionFactory.TxMock, "payment-1").
		Return(approved, nil).Once()
	f.notifier.On("Publish", mock.Anything, mock.Anything).Return()

	uc := buildPaymentUsecase(f, creds)
	payment, err := uc.ApprovePayment(context.Background(), "payment-1")

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentApproved, payment.Status)
	f.repo.AssertExpectations(t)
	f.userRepo.AssertExpectations(t)
	f.notifier.AssertNumberOfCalls(t, "Publish", 2)
}

func TestApprovePaymentRefusesNonPending(t *testing.T) {
	creds := models.Credentials{UserId: "admin-1", Role: models.RoleAdmin}
	f := newPaymentFixture()

	f.repo.On("PaymentById", mock.Anything, f.transactionFactory.TxMock, "payment-1").
		Return(models.PaymentRequest{Id: "payment-1", Status: models.PaymentApproved}, nil)

	uc := buildPaymentUsecase(f, creds)
	_, err := uc.ApprovePayment(context.Background(), "payment-1")

	assert.ErrorIs(t, err, models.ErrPaymentNotPending)
	f.repo.AssertNotCalled(t, "UpdatePaymentStatus")
	f.userRepo.AssertNotCalled(t, "UpgradePlan")
	f.notifier.AssertNotCalled(t, "Publish")
}

func TestRejectPaymentDoesNotTouchThePlan(t *testing.T) {
	creds := models.Credentials{UserId: "admin-1", Role: models.RoleAdmin}
	f := newPaymentFixture()

	pending := models.PaymentRequest{Id: "payment-1", UserId: "user-1", Status: models.PaymentPending}
	rejected := pending
	rejected.Status = models.PaymentRejected

	f.repo.On("PaymentById", mock.Anything, f.transactionFactory.TxMock, "payment-1").
		Return(pending, nil).Once()
	f.repo.On("UpdatePaymentStatus", mock.Anything, f.transactionFactory.TxMock,
		"payment-1", models.PaymentRejected).Return(nil)
	f.repo.On("PaymentById", mock.Anything, f.transactionFactory.TxMock, "payment-1").
		Return(rejected, nil).Once()
	f.notifier.On("Publish", mock.Anything, mock.Anything).Return()

	uc := buildPaymentUsecase(f, creds)
	payment, err := uc.RejectPayment(context.Background(), "payment-1")

	assert.NoError(t, err)
	assert.Equal(t, models.PaymentRejected, payment.Status)
	f.userRepo.AssertNotCalled(t, "UpgradePlan")
	f.notifier.AssertNumberOfCalls(t, "Publish", 1)
}

func TestPaymentAdminOperationsRequireAdmin(t *testing.T) {
	creds := models.Credentials{UserId: "user-1", Role: models.RoleUser}
	f := newPaymentFixture()
	uc := buildPaymentUsecase(f, creds)

	_, err := uc.ListAllPayments(context.Background())
	assert.ErrorIs(t, err, models.ForbiddenError)

	_, err = uc.ApprovePayment(context.Background(), "payment-1")
	assert.ErrorIs(t, err, models.ForbiddenError)

	_, err = uc.RejectPayment(context.Background(), "payment-1")
	assert.ErrorIs(t, err, models.ForbiddenError)
}

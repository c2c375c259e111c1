package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/mocks"
	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/usecases/security"
)

func buildCouponUsecase(repo *mocks.CouponRepository, userRepo *mocks.UserRepository,
	transactionFactory *mocks.TransactionFactory, notifier *mocks.ChangeNotifier,
	creds models.Credentials,
) *CouponUsecase {
	return &CouponUsecase{
		enforceSecurity:    &security.EnforceSecurityImpl{Credentials: creds},
		transactionFactory: transactionFactory,
		repository:         repo,
		userRepository:     userRepo,
		notifier:           notifier,
		credentials:        creds,
	}
}

func TestApplyCouponUpgradesPlanAndConsumesUse(t *testing.T) {
	creds := models.Credentials{UserId: "user-1", Email: "ada@example.com", Role: models.RoleUser}
	coupon := &models.Coupon{
		Id:       "coupon-1",
		Code:     "LAUNCH50",
		PlanTier: models.PlanPro,
		MaxUses:  10,
		Active:   true,
	}

	repo := new(mocks.CouponRepository)
	userRepo := new(mocks.UserRepository)
	notifier := new(mocks.ChangeNotifier)
	transactionFactory := &mocks.TransactionFactory{TxMock: new(mocks.Transaction)}

	transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("CouponByCode", mock.Anything, transactionFactory.TxMock, "LAUNCH50", []bool{true}).
		Return(coupon, nil)
	repo.On("IncrementUsedCount", mock.Anything, transactionFactory.TxMock, "coupon-1").Return(nil)
	userRepo.On("UpgradePlan", mock.Anything, transactionFactory.TxMock,
		mock.MatchedBy(func(input models.UpgradePlanInput) bool {
			return input.UserId == "user-1" &&
				input.Tier == models.PlanPro &&
				input.Interval == models.PlanIntervalMonthly &&
				input.ExpiresAt != nil
		})).Return(nil)
	notifier.On("Publish", mock.Anything, mock.Anything).Return()

	uc := buildCouponUsecase(repo, userRepo, transactionFactory, notifier, creds)
	got, err := uc.ApplyCoupon(context.Background(), "LAUNCH50")

	assert.NoError(t, err)
	assert.Equal(t, "coupon-1", got.Id)
	repo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
	notifier.AssertNumberOfCalls(t, "Publish", 2)
}

func TestApplyCouponUnknownCode(t *testing.T) {
	creds := models.Credentials{UserId: "user-1", Role: models.RoleUser}

	repo := new(mocks.CouponRepository)
	userRepo := new(mocks.UserRepository)
	notifier := new(mocks.ChangeNotifier)
	transactionFactory := &mocks.TransactionFactory{TxMock: new(mocks.Transaction)}

	transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("CouponByCode", mock.Anything, transactionFactory.TxMock, "NOPE", []bool{true}).
		Return(nil, nil)

	uc := buildCouponUsecase(repo, userRepo, transactionFactory, notifier, creds)
	_, err := uc.ApplyCoupon(context.Background(), "NOPE")

	assert.ErrorIs(t, err, models.ErrCouponNotFound)
	userRepo.AssertNotCalled(t, "UpgradePlan")
	notifier.AssertNotCalled(t, "Publish")
}

// The redemption checks run in a fixed order: a coupon that is both inactive
// and exhausted reports inactive first.
func TestApplyCouponValidationOrder(t *testing.T) {
	expired := time.Now().Add(-time.Hour)

	tests := []struct {
		name    string
		coupon  models.Coupon
		wantErr error
	}{
		{
			name: "inactive wins over exhausted and expired",
			coupon: models.Coupon{
				Active: false, MaxUses: 1, UsedCount: 1, ExpiresAt: &expired,
			},
			wantErr: models.ErrCouponInactive,
		},
		{
			name: "exhausted wins over expired",
			coupon: models.Coupon{
				Active: true, MaxUses: 1, UsedCount: 1, ExpiresAt: &expired,
			},
			wantErr: models.ErrCouponExhausted,
		},
		{
			name: "expired",
			coupon: models.Coupon{
				Active: true, MaxUses: 10, UsedCount: 1, ExpiresAt: &expired,
			},
			wantErr: models.ErrCouponExpired,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			creds := models.Credentials{UserId: "user-1", Role: models.RoleUser}
			coupon := tt.coupon
			coupon.Id = "coupon-1"
			coupon.Code = "CODE"

			repo := new(mocks.CouponRepository)
			userRepo := new(mocks.UserRepository)
			notifier := new(mocks.ChangeNotifier)
			transactionFactory := &mocks.TransactionFactory{TxMock: new(mocks.Transaction)}

			transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
			repo.On("CouponByCode", mock.Anything, transactionFactory.TxMock, "CODE", []bool{true}).
				Return(&coupon, nil)

			uc := buildCouponUsecase(repo, userRepo, transactionFactory, notifier, creds)
			_, err := uc.ApplyCoupon(context.Background(), "CODE")

			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertNotCalled(t, "IncrementUsedCount")
			userRepo.AssertNotCalled(t, "UpgradePlan")
		})
	}
}

func TestApplyCouponConsumeFailureRollsBackUpgrade(t *testing.T) {
	creds := models.Credentials{UserId: "user-1", Role: models.RoleUser}
	coupon := &models.Coupon{Id: "coupon-1", Code: "CODE", PlanTier: models.PlanStarter, MaxUses: -1, Active: true}

	repo := new(mocks.CouponRepository)
	userRepo := new(mocks.UserRepository)
	notifier := new(mocks.ChangeNotifier)
	transactionFactory := &mocks.TransactionFactory{TxMock: new(mocks.Transaction)}

	transactionFactory.On("Transaction", mock.Anything, mock.Anything).Return(nil)
	repo.On("CouponByCode", mock.Anything, transactionFactory.TxMock, "CODE", []bool{true}).
		Return(coupon, nil)
	repo.On("IncrementUsedCount", mock.Anything, transactionFactory.TxMock, "coupon-1").
		Return(errors.New("connection reset"))

	uc := buildCouponUsecase(repo, userRepo, transactionFactory, notifier, creds)
	_, err := uc.ApplyCoupon(context.Background(), "CODE")

	assert.Error(t, err)
	userRepo.AssertNotCalled(t, "UpgradePlan")
	notifier.AssertNotCalled(t, "Publish")
}

func TestCouponAdminOperationsRequireAdmin(t *testing.T) {
	creds := models.Credentials{UserId: "user-1", Role: models.RoleUser}

	uc := buildCouponUsecase(new(mocks.CouponRepository), new(mocks.UserRepository),
		&mocks.TransactionFactory{TxMock: new(mocks.Transaction)}, new(mocks.ChangeNotifier), creds)

	_, listErr := uc.ListCoupons(context.Background())
	_, createErr := uc.CreateCoupon(context.Background(), models.CreateCouponInput{Code: "X", PlanTier: models.PlanPro})
	deleteErr := uc.DeleteCoupon(context.Background(), "coupon-1")

	assert.ErrorIs(t, listErr, models.ForbiddenError)
	assert.ErrorIs(t, createErr, models.ForbiddenError)
	assert.ErrorIs(t, deleteErr, models.ForbiddenError)
}

func TestApplyCouponRefusedForGuests(t *testing.T) {
	creds := models.Credentials{UserId: "guest-1", Role: models.RoleUser, Guest: true}

	uc := buildCouponUsecase(new(mocks.CouponRepository), new(mocks.UserRepository),
		&mocks.TransactionFactory{TxMock: new(mocks.Transaction)}, new(mocks.ChangeNotifier), creds)

	_, err := uc.ApplyCoupon(context.Background(), "CODE")
	assert.ErrorIs(t, err, models.ForbiddenError)
}

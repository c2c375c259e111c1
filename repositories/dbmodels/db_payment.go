package dbmodels

import (
	"time"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type DBPaymentRequest struct {
	Id           string    `db:"id"`
	UserId       string    `db:"user_id"`
	Email        string    `db:"email"`
	Phone        string    `db:"phone"`
	PlanTier     string    `db:"plan_tier"`
	PlanInterval string    `db:"plan_interval"`
	AmountInr    int       `db:"amount_inr"`
	TxnRef       string    `db:"txn_ref"`
	Status       string    `db:"status"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

const TABLE_PAYMENT_REQUESTS = "payment_requests"

var SelectPaymentRequestColumns = utils.ColumnList[DBPaymentRequest]()

func AdaptPaymentRequest(db DBPaymentRequest) (models.PaymentRequest, error) {
	return models.PaymentRequest{
		Id:           db.Id,
		UserId:       db.UserId,
		Email:        db.Email,
		Phone:        db.Phone,
		PlanTier:     models.PlanTier(db.PlanTier),
		PlanInterval: models.PlanInterval(db.PlanInterval),
		AmountInr:    db.AmountInr,
		TxnRef:       db.TxnRef,
		Status:       models.PaymentStatus(db.Status),
		CreatedAt:    db.CreatedAt,
		UpdatedAt:    db.UpdatedAt,
	}, nil
}

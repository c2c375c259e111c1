package dto

import (
	"time"

	"github.com/replyflow/replyflow-backend/models"
)

type PaymentRequest struct {
	Id           string    `json:"id"`
	UserId       string    `json:"user_id"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone,omitempty"`
	PlanTier     string    `json:"plan_tier"`
	PlanInterval string    `json:"plan_interval"`
	AmountInr    int       `json:"amount_inr"`
	TxnRef       string    `json:"txn_ref"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func AdaptPaymentRequestDto(payment models.PaymentRequest) PaymentRequest {
	return PaymentRequest{
		Id:           payment.Id,
		UserId:       payment.UserId,
		Email:        payment.Email,
		Phone:        payment.Phone,
		PlanTier:     string(payment.PlanTier),
		PlanInterval: string(payment.PlanInterval),
		AmountInr:    payment.AmountInr,
		TxnRef:       payment.TxnRef,
		Status:       string(payment.Status),
		CreatedAt:    payment.CreatedAt,
		UpdatedAt:    payment.UpdatedAt,
	}
}

type CreatePaymentRequestBody struct {
	Email        string `json:"email" binding:"required"`
	Phone        string `json:"phone"`
	PlanTier     string `json:"plan_tier" binding:"required"`
	PlanInterval string `json:"plan_interval" binding:"required"`
	TxnRef       string `json:"txn_ref" binding:"required"`
}

func AdaptCreatePaymentRequestInput(body CreatePaymentRequestBody) models.CreatePaymentRequestInput {
	return models.CreatePaymentRequestInput{
		Email:        body.Email,
		Phone:        body.Phone,
		PlanTier:     models.PlanTier(body.PlanTier),
		PlanInterval: models.PlanInterval(body.PlanInterval),
		TxnRef:       body.TxnRef,
	}
}

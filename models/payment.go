package models

import (
	"fmt"
	"time"
)

type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentApproved PaymentStatus = "approved"
	PaymentRejected PaymentStatus = "rejected"
)

func PaymentStatusFrom(s string) (PaymentStatus, error) {
	switch PaymentStatus(s) {
	case PaymentPending, PaymentApproved, PaymentRejected:
		return PaymentStatus(s), nil
	}
	return "", fmt.Errorf("unknown payment status %q: %w", s, BadParameterError)
}

// PaymentRequest is a manual UPI payment waiting for admin review. Approval
// upgrades the owner's plan.
type PaymentRequest struct {
	Id           string
	UserId       string
	Email        string
	Phone        string
	PlanTier     PlanTier
	PlanInterval PlanInterval
	AmountInr    int
	// TxnRef is the reference the user reports from their UPI app.
	TxnRef string
	Status PaymentStatus

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreatePaymentRequestInput struct {
	UserId       string
	Email        string
	Phone        string
	PlanTier     PlanTier
	PlanInterval PlanInterval
	AmountInr    int
	TxnRef       string
}

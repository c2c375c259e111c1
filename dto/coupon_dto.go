package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/replyflow/replyflow-backend/models"
)

type Coupon struct {
	Id        string     `json:"id"`
	Code      string     `json:"code"`
	PlanTier  string     `json:"plan_tier"`
	MaxUses   int        `json:"max_uses"`
	UsedCount int        `json:"used_count"`
	ExpiresAt *time.Time `json:"expires_at,omitempty"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func AdaptCouponDto(coupon models.Coupon) Coupon {
	return Coupon{
		Id:        coupon.Id,
		Code:      coupon.Code,
		PlanTier:  string(coupon.PlanTier),
		MaxUses:   coupon.MaxUses,
		UsedCount: coupon.UsedCount,
		ExpiresAt: coupon.ExpiresAt,
		Active:    coupon.Active,
		CreatedAt: coupon.CreatedAt,
		UpdatedAt: coupon.UpdatedAt,
	}
}

type CreateCouponBody struct {
	Code      string     `json:"code" binding:"required"`
	PlanTier  string     `json:"plan_tier" binding:"required"`
	MaxUses   int        `json:"max_uses"`
	ExpiresAt *time.Time `json:"expires_at"`
	Active    bool       `json:"active"`
}

func AdaptCreateCouponInput(body CreateCouponBody) models.CreateCouponInput {
	return models.CreateCouponInput{
		Code:      body.Code,
		PlanTier:  models.PlanTier(body.PlanTier),
		MaxUses:   body.MaxUses,
		ExpiresAt: body.ExpiresAt,
		Active:    body.Active,
	}
}

type UpdateCouponBody struct {
	MaxUses   null.Int   `json:"max_uses"`
	ExpiresAt *time.Time `json:"expires_at"`
	Active    null.Bool  `json:"active"`
}

func AdaptUpdateCouponInput(id string, body UpdateCouponBody) models.UpdateCouponInput {
	input := models.UpdateCouponInput{
		Id:        id,
		ExpiresAt: body.ExpiresAt,
		Active:    body.Active.Ptr(),
	}
	if body.MaxUses.Valid {
		maxUses := int(body.MaxUses.Int64)
		input.MaxUses = &maxUses
	}
	return input
}

type ApplyCouponBody struct {
	Code string `json:"code" binding:"required"`
}

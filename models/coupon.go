package models

import "time"

type Coupon struct {
	Id        string
	Code      string
	PlanTier  PlanTier
	MaxUses   int
	UsedCount int
	ExpiresAt *time.Time
	Active    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate runs the redemption checks in their contractual order: active
// flag, usage cap, expiry. Existence is checked by the lookup itself. The
// first failing check wins and determines the message the user sees.
func (c Coupon) Validate(now time.Time) error {
	if !c.Active {
		return ErrCouponInactive
	}
	if c.MaxUses >= 0 && c.UsedCount >= c.MaxUses {
		return ErrCouponExhausted
	}
	if c.ExpiresAt != nil && now.After(*c.ExpiresAt) {
		return ErrCouponExpired
	}
	return nil
}

type CreateCouponInput struct {
	Code      string
	PlanTier  PlanTier
	MaxUses   int
	ExpiresAt *time.Time
	Active    bool
}

type UpdateCouponInput struct {
	Id        string
	MaxUses   *int
	ExpiresAt *time.Time
	Active    *bool
}

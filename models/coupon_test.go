package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCouponValidate(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name   string
		coupon Coupon
		want   error
	}{
		{
			name:   "redeemable",
			coupon: Coupon{Active: true, MaxUses: 10, UsedCount: 9, ExpiresAt: &future},
		},
		{
			name:   "inactive",
			coupon: Coupon{Active: false, MaxUses: 10},
			want:   ErrCouponInactive,
		},
		{
			name:   "exhausted",
			coupon: Coupon{Active: true, MaxUses: 10, UsedCount: 10},
			want:   ErrCouponExhausted,
		},
		{
			name:   "expired",
			coupon: Coupon{Active: true, MaxUses: 10, ExpiresAt: &past},
			want:   ErrCouponExpired,
		},
		{
			// An inactive coupon that is also exhausted and expired must
			// report inactive first.
			name:   "inactive wins over exhausted and expired",
			coupon: Coupon{Active: false, MaxUses: 1, UsedCount: 1, ExpiresAt: &past},
			want:   ErrCouponInactive,
		},
		{
			name:   "exhausted wins over expired",
			coupon: Coupon{Active: true, MaxUses: 1, UsedCount: 1, ExpiresAt: &past},
			want:   ErrCouponExhausted,
		},
		{
			name:   "no expiry means never expires",
			coupon: Coupon{Active: true, MaxUses: 10, UsedCount: 0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.coupon.Validate(now)
			if tt.want == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.want)
			}
		})
	}
}

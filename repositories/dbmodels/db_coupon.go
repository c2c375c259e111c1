package dbmodels

import (
	"time"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type DBCoupon struct {
	Id        string     `db:"id"`
	Code      string     `db:"code"`
	PlanTier  string     `db:"plan_tier"`
	MaxUses   int        `db:"max_uses"`
	UsedCount int        `db:"used_count"`
	ExpiresAt *time.Time `db:"expires_at"`
	Active    bool       `db:"active"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

const TABLE_COUPONS = "coupons"

var SelectCouponColumns = utils.ColumnList[DBCoupon]()

func AdaptCoupon(db DBCoupon) (models.Coupon, error) {
	return models.Coupon{
		Id:        db.Id,
		Code:      db.Code,
		PlanTier:  models.PlanTier(db.PlanTier),
		MaxUses:   db.MaxUses,
		UsedCount: db.UsedCount,
		ExpiresAt: db.ExpiresAt,
		Active:    db.Active,
		CreatedAt: db.CreatedAt,
		UpdatedAt: db.UpdatedAt,
	}, nil
}

package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
)

type CouponRepository interface {
	AllCoupons(ctx context.Context, exec Executor) ([]models.Coupon, error)
	CouponByCode(ctx context.Context, exec Executor, code string, forUpdate ...bool) (*models.Coupon, error)
	CreateCoupon(ctx context.Context, exec Executor, input models.CreateCouponInput, newCouponId string) error
	UpdateCoupon(ctx context.Context, exec Executor, input models.UpdateCouponInput) error
	DeleteCoupon(ctx context.Context, exec Executor, id string) error
	IncrementUsedCount(ctx context.Context, exec Executor, id string) error
}

type CouponRepositoryPostgresql struct{}

func (repo *CouponRepositoryPostgresql) AllCoupons(ctx context.Context, exec Executor) ([]models.Coupon, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectCouponColumns...).
			From(dbmodels.TABLE_COUPONS).
			OrderBy("created_at DESC"),
		dbmodels.AdaptCoupon,
	)
}

func (repo *CouponRepositoryPostgresql) CouponByCode(ctx context.Context, exec Executor,
	code string, forUpdate ...bool,
) (*models.Coupon, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectCouponColumns...).
		From(dbmodels.TABLE_COUPONS).
		Where("UPPER(code) = UPPER(?)", code)

	if len(forUpdate) > 0 && forUpdate[0] {
		query = query.Suffix("FOR UPDATE")
	}

	return SqlToOptionalModel(ctx, exec, query, dbmodels.AdaptCoupon)
}

func (repo *CouponRepositoryPostgresql) CreateCoupon(ctx context.Context, exec Executor,
	input models.CreateCouponInput, newCouponId string,
) error {
	err := ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_COUPONS).
			Columns("id", "code", "plan_tier", "max_uses", "expires_at", "active").
			Values(newCouponId, input.Code, string(input.PlanTier), input.MaxUses,
				input.ExpiresAt, input.Active),
	)
	if IsUniqueViolationError(err) {
		return errors.Wrap(models.ConflictError, "a coupon with this code already exists")
	}
	return err
}

func (repo *CouponRepositoryPostgresql) UpdateCoupon(ctx context.Context, exec Executor,
	input models.UpdateCouponInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_COUPONS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": input.Id})

	if input.MaxUses != nil {
		query = query.Set("max_uses", *input.MaxUses)
	}
	if input.ExpiresAt != nil {
		query = query.Set("expires_at", input.ExpiresAt)
	}
	if input.Active != nil {
		query = query.Set("active", *input.Active)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *CouponRepositoryPostgresql) DeleteCoupon(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_COUPONS).
			Where(squirrel.Eq{"id": id}),
	)
}

func (repo *CouponRepositoryPostgresql) IncrementUsedCount(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_COUPONS).
			Set("used_count", squirrel.Expr("used_count + 1")).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}),
	)
}

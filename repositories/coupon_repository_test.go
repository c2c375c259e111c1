package repositories

import (
	"testing"
	"time"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"

	"github.com/replyflow/replyflow-backend/models"
)

var couponColumns = []string{
	"id", "code", "plan_tier", "max_uses", "used_count",
	"expires_at", "active", "created_at", "updated_at",
}

func TestCouponByCode(t *testing.T) {
	repo := &CouponRepositoryPostgresql{}
	now := time.Now()

	t.Run("nominal", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(`SELECT .* FROM coupons WHERE UPPER\(code\) = UPPER\(\$1\)`).
			WithArgs("save20").
			WillReturnRows(pgxmock.NewRows(couponColumns).
				AddRow("coupon-1", "SAVE20", "pro", 100, 42, nil, true, now, now))

		coupon, err := repo.CouponByCode(t.Context(), mock, "save20")
		assert.NoError(t, err)
		if assert.NotNil(t, coupon) {
			assert.Equal(t, "SAVE20", coupon.Code)
			assert.Equal(t, models.PlanPro, coupon.PlanTier)
			assert.Equal(t, 42, coupon.UsedCount)
		}
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("locks the row when asked to", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(`SELECT .* FROM coupons .* FOR UPDATE`).
			WithArgs("SAVE20").
			WillReturnRows(pgxmock.NewRows(couponColumns).
				AddRow("coupon-1", "SAVE20", "pro", 100, 42, nil, true, now, now))

		_, err = repo.CouponByCode(t.Context(), mock, "SAVE20", true)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown code yields nil, not an error", func(t *testing.T) {
		mock, err := pgxmock.NewPool()
		if err != nil {
			t.Fatal(err)
		}
		defer mock.Close()

		mock.ExpectQuery(`SELECT .* FROM coupons`).
			WithArgs("NOPE").
			WillReturnRows(pgxmock.NewRows(couponColumns))

		coupon, err := repo.CouponByCode(t.Context(), mock, "NOPE")
		assert.NoError(t, err)
		assert.Nil(t, coupon)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCreateCouponDuplicateCode(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectExec("INSERT INTO coupons").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(),
			pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg()).
		WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

	repo := &CouponRepositoryPostgresql{}
	err = repo.CreateCoupon(t.Context(), mock, models.CreateCouponInput{
		Code:     "SAVE20",
		PlanTier: models.PlanPro,
		MaxUses:  100,
		Active:   true,
	}, "coupon-1")

	assert.ErrorIs(t, err, models.ConflictError)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIncrementUsedCount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatal(err)
	}
	defer mock.Close()

	mock.ExpectExec(`UPDATE coupons SET used_count = used_count \+ 1, updated_at = NOW\(\) WHERE id = \$1`).
		WithArgs("coupon-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	repo := &CouponRepositoryPostgresql{}
	err = repo.IncrementUsedCount(t.Context(), mock, "coupon-1")
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

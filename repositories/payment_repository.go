package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
)

type PaymentRepository interface {
	PaymentsOfUser(ctx context.Context, exec Executor, userId string) ([]models.PaymentRequest, error)
	AllPayments(ctx context.Context, exec Executor) ([]models.PaymentRequest, error)
	PaymentById(ctx context.Context, exec Executor, id string) (models.PaymentRequest, error)
	CreatePayment(ctx context.Context, exec Executor, input models.CreatePaymentRequestInput, newPaymentId string) error
	UpdatePaymentStatus(ctx context.Context, exec Executor, id string, status models.PaymentStatus) error
}

type PaymentRepositoryPostgresql struct{}

func (repo *PaymentRepositoryPostgresql) PaymentsOfUser(ctx context.Context, exec Executor,
	userId string,
) ([]models.PaymentRequest, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPaymentRequestColumns...).
			From(dbmodels.TABLE_PAYMENT_REQUESTS).
			Where(squirrel.Eq{"user_id": userId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptPaymentRequest,
	)
}

func (repo *PaymentRepositoryPostgresql) AllPayments(ctx context.Context, exec Executor) ([]models.PaymentRequest, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPaymentRequestColumns...).
			From(dbmodels.TABLE_PAYMENT_REQUESTS).
			OrderBy("created_at DESC"),
		dbmodels.AdaptPaymentRequest,
	)
}

func (repo *PaymentRepositoryPostgresql) PaymentById(ctx context.Context, exec Executor,
	id string,
) (models.PaymentRequest, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectPaymentRequestColumns...).
			From(dbmodels.TABLE_PAYMENT_REQUESTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptPaymentRequest,
	)
}

func (repo *PaymentRepositoryPostgresql) CreatePayment(ctx context.Context, exec Executor,
	input models.CreatePaymentRequestInput, newPaymentId string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_PAYMENT_REQUESTS).
			Columns("id", "user_id", "email", "phone", "plan_tier", "plan_interval", "amount_inr", "txn_ref", "status").
			Values(newPaymentId, input.UserId, input.Email, input.Phone, string(input.PlanTier),
				string(input.PlanInterval), input.AmountInr, input.TxnRef, string(models.PaymentPending)),
	)
}

func (repo *PaymentRepositoryPostgresql) UpdatePaymentStatus(ctx context.Context, exec Executor,
	id string, status models.PaymentStatus,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_PAYMENT_REQUESTS).
			Set("status", string(status)).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}),
	)
}

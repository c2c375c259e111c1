package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
)

type UserRepository interface {
	UserById(ctx context.Context, exec Executor, userId string) (models.User, error)
	UserByEmail(ctx context.Context, exec Executor, email string) (*models.User, error)
	UserByInstagramId(ctx context.Context, exec Executor, igUserId string) (*models.User, error)
	AllUsers(ctx context.Context, exec Executor) ([]models.User, error)
	CreateUser(ctx context.Context, exec Executor, input models.CreateUserInput, newUserId string) error
	UpdateUser(ctx context.Context, exec Executor, input models.UpdateUserInput) error
	ConnectInstagram(ctx context.Context, exec Executor, input models.ConnectInstagramInput) error
	UpgradePlan(ctx context.Context, exec Executor, input models.UpgradePlanInput) error
	IncrementMessagesUsed(ctx context.Context, exec Executor, userId string) error
	SetSuspended(ctx context.Context, exec Executor, userId string, suspended bool) error
	DeleteUser(ctx context.Context, exec Executor, userId string) error
}

type UserRepositoryPostgresql struct{}

func (repo *UserRepositoryPostgresql) UserById(ctx context.Context, exec Executor, userId string) (models.User, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}),
		dbmodels.AdaptUser,
	)
}

func (repo *UserRepositoryPostgresql) UserByEmail(ctx context.Context, exec Executor, email string) (*models.User, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"email": email}),
		dbmodels.AdaptUser,
	)
}

func (repo *UserRepositoryPostgresql) UserByInstagramId(ctx context.Context, exec Executor, igUserId string) (*models.User, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"instagram_user_id": igUserId}),
		dbmodels.AdaptUser,
	)
}

func (repo *UserRepositoryPostgresql) AllUsers(ctx context.Context, exec Executor) ([]models.User, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectUserColumns...).
			From(dbmodels.TABLE_USERS).
			OrderBy("created_at DESC"),
		dbmodels.AdaptUser,
	)
}

func (repo *UserRepositoryPostgresql) CreateUser(ctx context.Context, exec Executor,
	input models.CreateUserInput, newUserId string,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_USERS).
			Columns("id", "email", "display_name", "avatar_url", "plan_tier", "plan_interval").
			Values(newUserId, input.Email, input.DisplayName, input.AvatarUrl,
				string(models.PlanFree), string(models.PlanIntervalMonthly)),
	)
}

func (repo *UserRepositoryPostgresql) UpdateUser(ctx context.Context, exec Executor, input models.UpdateUserInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_USERS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": input.Id})

	if input.DisplayName != nil {
		query = query.Set("display_name", *input.DisplayName)
	}
	if input.AvatarUrl != nil {
		query = query.Set("avatar_url", *input.AvatarUrl)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *UserRepositoryPostgresql) ConnectInstagram(ctx context.Context, exec Executor,
	input models.ConnectInstagramInput,
) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_USERS).
			Set("instagram_connected", true).
			Set("instagram_user_id", input.InstagramUserId).
			Set("instagram_username", input.InstagramUsername).
			Set("instagram_token", input.InstagramToken).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": input.UserId}),
	)
}

func (repo *UserRepositoryPostgresql) UpgradePlan(ctx context.Context, exec Executor, input models.UpgradePlanInput) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_USERS).
			Set("plan_tier", string(input.Tier)).
			Set("plan_interval", string(input.Interval)).
			Set("plan_expires_at", input.ExpiresAt).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": input.UserId}),
	)
}

func (repo *UserRepositoryPostgresql) IncrementMessagesUsed(ctx context.Context, exec Executor, userId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_USERS).
			Set("messages_used", squirrel.Expr("messages_used + 1")).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": userId}),
	)
}

func (repo *UserRepositoryPostgresql) SetSuspended(ctx context.Context, exec Executor, userId string, suspended bool) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_USERS).
			Set("suspended", suspended).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": userId}),
	)
}

func (repo *UserRepositoryPostgresql) DeleteUser(ctx context.Context, exec Executor, userId string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_USERS).
			Where(squirrel.Eq{"id": userId}),
	)
}

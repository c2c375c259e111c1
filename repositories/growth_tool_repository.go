package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
)

type GrowthToolRepository interface {
	GrowthToolsOfUser(ctx context.Context, exec Executor, userId string) ([]models.GrowthTool, error)
	GrowthToolById(ctx context.Context, exec Executor, id string) (models.GrowthTool, error)
	CreateGrowthTool(ctx context.Context, exec Executor, input models.CreateGrowthToolInput, newToolId string) error
	UpdateGrowthTool(ctx context.Context, exec Executor, input models.UpdateGrowthToolInput) error
	DeleteGrowthTool(ctx context.Context, exec Executor, id string) error
	IncrementClicks(ctx context.Context, exec Executor, id string) error
	IncrementConversions(ctx context.Context, exec Executor, id string) error
}

type GrowthToolRepositoryPostgresql struct{}

func (repo *GrowthToolRepositoryPostgresql) GrowthToolsOfUser(ctx context.Context, exec Executor,
	userId string,
) ([]models.GrowthTool, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectGrowthToolColumns...).
			From(dbmodels.TABLE_GROWTH_TOOLS).
			Where(squirrel.Eq{"user_id": userId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptGrowthTool,
	)
}

func (repo *GrowthToolRepositoryPostgresql) GrowthToolById(ctx context.Context, exec Executor,
	id string,
) (models.GrowthTool, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectGrowthToolColumns...).
			From(dbmodels.TABLE_GROWTH_TOOLS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptGrowthTool,
	)
}

func (repo *GrowthToolRepositoryPostgresql) CreateGrowthTool(ctx context.Context, exec Executor,
	input models.CreateGrowthToolInput, newToolId string,
) error {
	config, err := json.Marshal(input.Config)
	if err != nil {
		return errors.Wrap(err, "can't encode growth tool config")
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_GROWTH_TOOLS).
			Columns("id", "user_id", "name", "kind", "config", "active").
			Values(newToolId, input.UserId, input.Name, string(input.Kind), config, input.Active),
	)
}

func (repo *GrowthToolRepositoryPostgresql) UpdateGrowthTool(ctx context.Context, exec Executor,
	input models.UpdateGrowthToolInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_GROWTH_TOOLS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Config != nil {
		config, err := json.Marshal(*input.Config)
		if err != nil {
			return errors.Wrap(err, "can't encode growth tool config")
		}
		query = query.Set("config", config)
	}
	if input.Active != nil {
		query = query.Set("active", *input.Active)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *GrowthToolRepositoryPostgresql) DeleteGrowthTool(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_GROWTH_TOOLS).
			Where(squirrel.Eq{"id": id}),
	)
}

func (repo *GrowthToolRepositoryPostgresql) IncrementClicks(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_GROWTH_TOOLS).
			Set("clicks", squirrel.Expr("clicks + 1")).
			Where(squirrel.Eq{"id": id}),
	)
}

func (repo *GrowthToolRepositoryPostgresql) IncrementConversions(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_GROWTH_TOOLS).
			Set("conversions", squirrel.Expr("conversions + 1")).
			Where(squirrel.Eq{"id": id}),
	)
}

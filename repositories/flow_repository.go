package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
)

type FlowRepository interface {
	FlowsOfUser(ctx context.Context, exec Executor, userId string) ([]models.Flow, error)
	FlowById(ctx context.Context, exec Executor, id string) (models.Flow, error)
	CreateFlow(ctx context.Context, exec Executor, input models.CreateFlowInput, newFlowId string) error
	UpdateFlow(ctx context.Context, exec Executor, input models.UpdateFlowInput) error
	DeleteFlow(ctx context.Context, exec Executor, id string) error
}

type FlowRepositoryPostgresql struct{}

func (repo *FlowRepositoryPostgresql) FlowsOfUser(ctx context.Context, exec Executor, userId string) ([]models.Flow, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectFlowColumns...).
			From(dbmodels.TABLE_FLOWS).
			Where(squirrel.Eq{"user_id": userId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptFlow,
	)
}

func (repo *FlowRepositoryPostgresql) FlowById(ctx context.Context, exec Executor, id string) (models.Flow, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectFlowColumns...).
			From(dbmodels.TABLE_FLOWS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptFlow,
	)
}

func (repo *FlowRepositoryPostgresql) CreateFlow(ctx context.Context, exec Executor,
	input models.CreateFlowInput, newFlowId string,
) error {
	steps, err := json.Marshal(input.Steps)
	if err != nil {
		return errors.Wrap(err, "can't encode flow steps")
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_FLOWS).
			Columns("id", "user_id", "name", "steps", "active").
			Values(newFlowId, input.UserId, input.Name, steps, input.Active),
	)
}

func (repo *FlowRepositoryPostgresql) UpdateFlow(ctx context.Context, exec Executor, input models.UpdateFlowInput) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_FLOWS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Steps != nil {
		steps, err := json.Marshal(input.Steps)
		if err != nil {
			return errors.Wrap(err, "can't encode flow steps")
		}
		query = query.Set("steps", steps)
	}
	if input.Active != nil {
		query = query.Set("active", *input.Active)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *FlowRepositoryPostgresql) DeleteFlow(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_FLOWS).
			Where(squirrel.Eq{"id": id}),
	)
}

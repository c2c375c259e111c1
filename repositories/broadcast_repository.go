package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
)

type BroadcastRepository interface {
	BroadcastsOfUser(ctx context.Context, exec Executor, userId string) ([]models.Broadcast, error)
	BroadcastById(ctx context.Context, exec Executor, id string) (models.Broadcast, error)
	CreateBroadcast(ctx context.Context, exec Executor, input models.CreateBroadcastInput,
		newBroadcastId string, totalCount int) error
	UpdateBroadcast(ctx context.Context, exec Executor, input models.UpdateBroadcastInput) error
	DeleteBroadcast(ctx context.Context, exec Executor, id string) error
}

type BroadcastRepositoryPostgresql struct{}

func (repo *BroadcastRepositoryPostgresql) BroadcastsOfUser(ctx context.Context, exec Executor,
	userId string,
) ([]models.Broadcast, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectBroadcastColumns...).
			From(dbmodels.TABLE_BROADCASTS).
			Where(squirrel.Eq{"user_id": userId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptBroadcast,
	)
}

func (repo *BroadcastRepositoryPostgresql) BroadcastById(ctx context.Context, exec Executor, id string) (models.Broadcast, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectBroadcastColumns...).
			From(dbmodels.TABLE_BROADCASTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptBroadcast,
	)
}

func (repo *BroadcastRepositoryPostgresql) CreateBroadcast(ctx context.Context, exec Executor,
	input models.CreateBroadcastInput, newBroadcastId string, totalCount int,
) error {
	status := models.BroadcastDraft
	if input.ScheduledAt != nil {
		status = models.BroadcastScheduled
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_BROADCASTS).
			Columns("id", "user_id", "name", "message", "target_tag", "status", "scheduled_at", "total_count").
			Values(newBroadcastId, input.UserId, input.Name, input.Message,
				input.TargetTag, string(status), input.ScheduledAt, totalCount),
	)
}

func (repo *BroadcastRepositoryPostgresql) UpdateBroadcast(ctx context.Context, exec Executor,
	input models.UpdateBroadcastInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_BROADCASTS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Message != nil {
		query = query.Set("message", *input.Message)
	}
	if input.TargetTag != nil {
		query = query.Set("target_tag", *input.TargetTag)
	}
	if input.Status != nil {
		query = query.Set("status", string(*input.Status))
	}
	if input.ScheduledAt != nil {
		query = query.Set("scheduled_at", input.ScheduledAt)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *BroadcastRepositoryPostgresql) DeleteBroadcast(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_BROADCASTS).
			Where(squirrel.Eq{"id": id}),
	)
}

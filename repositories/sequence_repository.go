package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
)

type SequenceRepository interface {
	SequencesOfUser(ctx context.Context, exec Executor, userId string) ([]models.Sequence, error)
	SequenceById(ctx context.Context, exec Executor, id string) (models.Sequence, error)
	CreateSequence(ctx context.Context, exec Executor, input models.CreateSequenceInput, newSequenceId string) error
	UpdateSequence(ctx context.Context, exec Executor, input models.UpdateSequenceInput) error
	DeleteSequence(ctx context.Context, exec Executor, id string) error
}

type SequenceRepositoryPostgresql struct{}

func (repo *SequenceRepositoryPostgresql) SequencesOfUser(ctx context.Context, exec Executor,
	userId string,
) ([]models.Sequence, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSequenceColumns...).
			From(dbmodels.TABLE_SEQUENCES).
			Where(squirrel.Eq{"user_id": userId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptSequence,
	)
}

func (repo *SequenceRepositoryPostgresql) SequenceById(ctx context.Context, exec Executor, id string) (models.Sequence, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectSequenceColumns...).
			From(dbmodels.TABLE_SEQUENCES).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptSequence,
	)
}

func (repo *SequenceRepositoryPostgresql) CreateSequence(ctx context.Context, exec Executor,
	input models.CreateSequenceInput, newSequenceId string,
) error {
	steps, err := json.Marshal(input.Steps)
	if err != nil {
		return errors.Wrap(err, "can't encode sequence steps")
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_SEQUENCES).
			Columns("id", "user_id", "name", "steps", "active").
			Values(newSequenceId, input.UserId, input.Name, steps, input.Active),
	)
}

func (repo *SequenceRepositoryPostgresql) UpdateSequence(ctx context.Context, exec Executor,
	input models.UpdateSequenceInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_SEQUENCES).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Steps != nil {
		steps, err := json.Marshal(input.Steps)
		if err != nil {
			return errors.Wrap(err, "can't encode sequence steps")
		}
		query = query.Set("steps", steps)
	}
	if input.Active != nil {
		query = query.Set("active", *input.Active)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *SequenceRepositoryPostgresql) DeleteSequence(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_SEQUENCES).
			Where(squirrel.Eq{"id": id}),
	)
}

package repositories

import (
	"context"
	"encoding/json"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
)

type AutomationRepository interface {
	AutomationsOfUser(ctx context.Context, exec Executor, userId string) ([]models.Automation, error)
	AutomationById(ctx context.Context, exec Executor, id string) (models.Automation, error)
	CountAutomationsOfUser(ctx context.Context, exec Executor, userId string) (int, error)
	CreateAutomation(ctx context.Context, exec Executor, input models.CreateAutomationInput, newAutomationId string) error
	UpdateAutomation(ctx context.Context, exec Executor, input models.UpdateAutomationInput) error
	DeleteAutomation(ctx context.Context, exec Executor, id string) error
	IncrementTriggerCount(ctx context.Context, exec Executor, id string) error
}

type AutomationRepositoryPostgresql struct{}

func (repo *AutomationRepositoryPostgresql) AutomationsOfUser(ctx context.Context, exec Executor,
	userId string,
) ([]models.Automation, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAutomationColumns...).
			From(dbmodels.TABLE_AUTOMATIONS).
			Where(squirrel.Eq{"user_id": userId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptAutomation,
	)
}

func (repo *AutomationRepositoryPostgresql) AutomationById(ctx context.Context, exec Executor,
	id string,
) (models.Automation, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectAutomationColumns...).
			From(dbmodels.TABLE_AUTOMATIONS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptAutomation,
	)
}

func (repo *AutomationRepositoryPostgresql) CountAutomationsOfUser(ctx context.Context, exec Executor,
	userId string,
) (int, error) {
	query := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_AUTOMATIONS).
		Where(squirrel.Eq{"user_id": userId})

	sql, args, err := query.ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	var count int
	if err := exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "error counting automations")
	}
	return count, nil
}

func (repo *AutomationRepositoryPostgresql) CreateAutomation(ctx context.Context, exec Executor,
	input models.CreateAutomationInput, newAutomationId string,
) error {
	responses, err := json.Marshal(input.Responses)
	if err != nil {
		return errors.Wrap(err, "can't encode automation responses")
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_AUTOMATIONS).
			Columns("id", "user_id", "name", "kind", "triggers", "responses", "target_post_url", "active").
			Values(newAutomationId, input.UserId, input.Name, string(input.Kind),
				input.Triggers, responses, input.TargetPostUrl, input.Active),
	)
}

func (repo *AutomationRepositoryPostgresql) UpdateAutomation(ctx context.Context, exec Executor,
	input models.UpdateAutomationInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_AUTOMATIONS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Kind != nil {
		query = query.Set("kind", string(*input.Kind))
	}
	if input.Triggers != nil {
		query = query.Set("triggers", *input.Triggers)
	}
	if input.Responses != nil {
		responses, err := json.Marshal(input.Responses)
		if err != nil {
			return errors.Wrap(err, "can't encode automation responses")
		}
		query = query.Set("responses", responses)
	}
	if input.TargetPostUrl != nil {
		query = query.Set("target_post_url", *input.TargetPostUrl)
	}
	if input.Active != nil {
		query = query.Set("active", *input.Active)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *AutomationRepositoryPostgresql) DeleteAutomation(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_AUTOMATIONS).
			Where(squirrel.Eq{"id": id}),
	)
}

func (repo *AutomationRepositoryPostgresql) IncrementTriggerCount(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_AUTOMATIONS).
			Set("trigger_count", squirrel.Expr("trigger_count + 1")).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}),
	)
}

package repositories

import (
	"context"

	"github.com/Masterminds/squirrel"
	"github.com/cockroachdb/errors"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/dbmodels"
)

type ContactRepository interface {
	ContactsOfUser(ctx context.Context, exec Executor, userId string) ([]models.Contact, error)
	ContactById(ctx context.Context, exec Executor, id string) (models.Contact, error)
	ContactByInstagramId(ctx context.Context, exec Executor, userId, instagramId string) (*models.Contact, error)
	CountContactsOfUser(ctx context.Context, exec Executor, userId string) (int, error)
	ContactsOfUserWithTag(ctx context.Context, exec Executor, userId, tag string) ([]models.Contact, error)
	CreateContact(ctx context.Context, exec Executor, input models.CreateContactInput, newContactId string) error
	UpdateContact(ctx context.Context, exec Executor, input models.UpdateContactInput) error
	DeleteContact(ctx context.Context, exec Executor, id string) error
	TouchLastInteraction(ctx context.Context, exec Executor, id string) error
}

type ContactRepositoryPostgresql struct{}

func (repo *ContactRepositoryPostgresql) ContactsOfUser(ctx context.Context, exec Executor,
	userId string,
) ([]models.Contact, error) {
	return SqlToListOfModels(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectContactColumns...).
			From(dbmodels.TABLE_CONTACTS).
			Where(squirrel.Eq{"user_id": userId}).
			OrderBy("created_at DESC"),
		dbmodels.AdaptContact,
	)
}

func (repo *ContactRepositoryPostgresql) ContactById(ctx context.Context, exec Executor, id string) (models.Contact, error) {
	return SqlToModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectContactColumns...).
			From(dbmodels.TABLE_CONTACTS).
			Where(squirrel.Eq{"id": id}),
		dbmodels.AdaptContact,
	)
}

func (repo *ContactRepositoryPostgresql) ContactByInstagramId(ctx context.Context, exec Executor,
	userId, instagramId string,
) (*models.Contact, error) {
	return SqlToOptionalModel(
		ctx,
		exec,
		NewQueryBuilder().
			Select(dbmodels.SelectContactColumns...).
			From(dbmodels.TABLE_CONTACTS).
			Where(squirrel.Eq{"user_id": userId, "instagram_id": instagramId}),
		dbmodels.AdaptContact,
	)
}

func (repo *ContactRepositoryPostgresql) CountContactsOfUser(ctx context.Context, exec Executor,
	userId string,
) (int, error) {
	sql, args, err := NewQueryBuilder().
		Select("COUNT(*)").
		From(dbmodels.TABLE_CONTACTS).
		Where(squirrel.Eq{"user_id": userId}).
		ToSql()
	if err != nil {
		return 0, errors.Wrap(err, "can't build sql query")
	}

	var count int
	if err := exec.QueryRow(ctx, sql, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(err, "error counting contacts")
	}
	return count, nil
}

func (repo *ContactRepositoryPostgresql) ContactsOfUserWithTag(ctx context.Context, exec Executor,
	userId, tag string,
) ([]models.Contact, error) {
	query := NewQueryBuilder().
		Select(dbmodels.SelectContactColumns...).
		From(dbmodels.TABLE_CONTACTS).
		Where(squirrel.Eq{"user_id": userId}).
		OrderBy("created_at DESC")

	if tag != "" {
		query = query.Where("? = ANY(tags)", tag)
	}

	return SqlToListOfModels(ctx, exec, query, dbmodels.AdaptContact)
}

func (repo *ContactRepositoryPostgresql) CreateContact(ctx context.Context, exec Executor,
	input models.CreateContactInput, newContactId string,
) error {
	tags := input.Tags
	if tags == nil {
		tags = []string{}
	}

	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Insert(dbmodels.TABLE_CONTACTS).
			Columns("id", "user_id", "name", "username", "email", "phone", "tags", "instagram_id").
			Values(newContactId, input.UserId, input.Name, input.Username,
				input.Email, input.Phone, tags, input.InstagramId),
	)
}

func (repo *ContactRepositoryPostgresql) UpdateContact(ctx context.Context, exec Executor,
	input models.UpdateContactInput,
) error {
	query := NewQueryBuilder().
		Update(dbmodels.TABLE_CONTACTS).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": input.Id})

	if input.Name != nil {
		query = query.Set("name", *input.Name)
	}
	if input.Username != nil {
		query = query.Set("username", *input.Username)
	}
	if input.Email != nil {
		query = query.Set("email", *input.Email)
	}
	if input.Phone != nil {
		query = query.Set("phone", *input.Phone)
	}
	if input.Tags != nil {
		query = query.Set("tags", input.Tags)
	}

	return ExecBuilder(ctx, exec, query)
}

func (repo *ContactRepositoryPostgresql) DeleteContact(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Delete(dbmodels.TABLE_CONTACTS).
			Where(squirrel.Eq{"id": id}),
	)
}

func (repo *ContactRepositoryPostgresql) TouchLastInteraction(ctx context.Context, exec Executor, id string) error {
	return ExecBuilder(
		ctx,
		exec,
		NewQueryBuilder().
			Update(dbmodels.TABLE_CONTACTS).
			Set("last_interaction_at", squirrel.Expr("NOW()")).
			Set("updated_at", squirrel.Expr("NOW()")).
			Where(squirrel.Eq{"id": id}),
	)
}

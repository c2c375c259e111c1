package dbmodels

import (
	"time"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type DBContact struct {
	Id                string     `db:"id"`
	UserId            string     `db:"user_id"`
	Name              string     `db:"name"`
	Username          string     `db:"username"`
	Email             string     `db:"email"`
	Phone             string     `db:"phone"`
	Tags              []string   `db:"tags"`
	InstagramId       string     `db:"instagram_id"`
	LastInteractionAt *time.Time `db:"last_interaction_at"`
	CreatedAt         time.Time  `db:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at"`
}

const TABLE_CONTACTS = "contacts"

var SelectContactColumns = utils.ColumnList[DBContact]()

func AdaptContact(db DBContact) (models.Contact, error) {
	return models.Contact{
		Id:                db.Id,
		UserId:            db.UserId,
		Name:              db.Name,
		Username:          db.Username,
		Email:             db.Email,
		Phone:             db.Phone,
		Tags:              db.Tags,
		InstagramId:       db.InstagramId,
		LastInteractionAt: db.LastInteractionAt,
		CreatedAt:         db.CreatedAt,
		UpdatedAt:         db.UpdatedAt,
	}, nil
}

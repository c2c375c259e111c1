package dbmodels

import (
	"time"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type DBUser struct {
	Id                 string     `db:"id"`
	Email              string     `db:"email"`
	DisplayName        string     `db:"display_name"`
	AvatarUrl          string     `db:"avatar_url"`
	PlanTier           string     `db:"plan_tier"`
	PlanInterval       string     `db:"plan_interval"`
	PlanExpiresAt      *time.Time `db:"plan_expires_at"`
	InstagramConnected bool       `db:"instagram_connected"`
	InstagramUserId    string     `db:"instagram_user_id"`
	InstagramUsername  string     `db:"instagram_username"`
	InstagramToken     string     `db:"instagram_token"`
	MessagesUsed       int        `db:"messages_used"`
	IsAdmin            bool       `db:"is_admin"`
	Suspended          bool       `db:"suspended"`
	CreatedAt          time.Time  `db:"created_at"`
	UpdatedAt          time.Time  `db:"updated_at"`
}

const TABLE_USERS = "users"

var SelectUserColumns = utils.ColumnList[DBUser]()

func AdaptUser(db DBUser) (models.User, error) {
	return models.User{
		Id:                 db.Id,
		Email:              db.Email,
		DisplayName:        db.DisplayName,
		AvatarUrl:          db.AvatarUrl,
		PlanTier:           models.PlanTier(db.PlanTier),
		PlanInterval:       models.PlanInterval(db.PlanInterval),
		PlanExpiresAt:      db.PlanExpiresAt,
		InstagramConnected: db.InstagramConnected,
		InstagramUserId:    db.InstagramUserId,
		InstagramUsername:  db.InstagramUsername,
		InstagramToken:     db.InstagramToken,
		MessagesUsed:       db.MessagesUsed,
		IsAdmin:            db.IsAdmin,
		Suspended:          db.Suspended,
		CreatedAt:          db.CreatedAt,
		UpdatedAt:          db.UpdatedAt,
	}, nil
}

package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/replyflow/replyflow-backend/models"
)

type User struct {
	Id          string `json:"id"`
	Email       string `json:"email"`
	DisplayName string `json:"display_name"`
	AvatarUrl   string `json:"avatar_url"`

	PlanTier      string     `json:"plan_tier"`
	PlanInterval  string     `json:"plan_interval"`
	PlanExpiresAt *time.Time `json:"plan_expires_at,omitempty"`

	InstagramConnected bool   `json:"instagram_connected"`
	InstagramUsername  string `json:"instagram_username"`

	MessagesUsed int  `json:"messages_used"`
	IsAdmin      bool `json:"is_admin"`
	Suspended    bool `json:"suspended"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// AdaptUserDto never exposes the Graph API token.
func AdaptUserDto(user models.User) User {
	return User{
		Id:                 user.Id,
		Email:              user.Email,
		DisplayName:        user.DisplayName,
		AvatarUrl:          user.AvatarUrl,
		PlanTier:           string(user.PlanTier),
		PlanInterval:       string(user.PlanInterval),
		PlanExpiresAt:      user.PlanExpiresAt,
		InstagramConnected: user.InstagramConnected,
		InstagramUsername:  user.InstagramUsername,
		MessagesUsed:       user.MessagesUsed,
		IsAdmin:            user.IsAdmin,
		Suspended:          user.Suspended,
		CreatedAt:          user.CreatedAt,
		UpdatedAt:          user.UpdatedAt,
	}
}

type UpdateUserBody struct {
	DisplayName null.String `json:"display_name"`
	AvatarUrl   null.String `json:"avatar_url"`
}

func AdaptUpdateUserInput(body UpdateUserBody) models.UpdateUserInput {
	return models.UpdateUserInput{
		DisplayName: body.DisplayName.Ptr(),
		AvatarUrl:   body.AvatarUrl.Ptr(),
	}
}

type ConnectInstagramBody struct {
	Code        string `json:"code" binding:"required"`
	RedirectUri string `json:"redirect_uri" binding:"required"`
}

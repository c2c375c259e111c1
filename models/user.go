package models

import "time"

type User struct {
	Id          string
	Email       string
	DisplayName string
	AvatarUrl   string

	PlanTier      PlanTier
	PlanInterval  PlanInterval
	PlanExpiresAt *time.Time

	InstagramConnected bool
	InstagramUserId    string
	InstagramUsername  string
	// Long-lived Graph API token for the connected account. Never exposed on
	// the wire.
	InstagramToken string

	MessagesUsed int
	IsAdmin      bool
	Suspended    bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateUserInput struct {
	Email       string
	DisplayName string
	AvatarUrl   string
}

type UpdateUserInput struct {
	Id          string
	DisplayName *string
	AvatarUrl   *string
}

type ConnectInstagramInput struct {
	UserId            string
	InstagramUserId   string
	InstagramUsername string
	InstagramToken    string
}

type UpgradePlanInput struct {
	UserId    string
	Tier      PlanTier
	Interval  PlanInterval
	ExpiresAt *time.Time
}

// Identity is what the identity provider asserts about a signed-in session.
type Identity struct {
	Email   string
	Name    string
	Picture string
}

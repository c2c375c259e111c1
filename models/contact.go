package models

import "time"

type Contact struct {
	Id       string
	UserId   string
	Name     string
	Username string
	Email    string
	Phone    string
	Tags     []string
	// InstagramId is the platform-scoped sender id, used to match incoming
	// webhook events to known contacts.
	InstagramId       string
	LastInteractionAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateContactInput struct {
	UserId      string
	Name        string
	Username    string
	Email       string
	Phone       string
	Tags        []string
	InstagramId string
}

type UpdateContactInput struct {
	Id       string
	Name     *string
	Username *string
	Email    *string
	Phone    *string
	Tags     []string
}

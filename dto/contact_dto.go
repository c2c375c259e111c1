package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/replyflow/replyflow-backend/models"
)

type Contact struct {
	Id                string     `json:"id"`
	Name              string     `json:"name"`
	Username          string     `json:"username"`
	Email             string     `json:"email,omitempty"`
	Phone             string     `json:"phone,omitempty"`
	Tags              []string   `json:"tags"`
	InstagramId       string     `json:"instagram_id"`
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

func AdaptContactDto(contact models.Contact) Contact {
	return Contact{
		Id:                contact.Id,
		Name:              contact.Name,
		Username:          contact.Username,
		Email:             contact.Email,
		Phone:             contact.Phone,
		Tags:              contact.Tags,
		InstagramId:       contact.InstagramId,
		LastInteractionAt: contact.LastInteractionAt,
		CreatedAt:         contact.CreatedAt,
		UpdatedAt:         contact.UpdatedAt,
	}
}

type CreateContactBody struct {
	Name        string   `json:"name" binding:"required"`
	Username    string   `json:"username"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Tags        []string `json:"tags"`
	InstagramId string   `json:"instagram_id"`
}

func AdaptCreateContactInput(body CreateContactBody) models.CreateContactInput {
	return models.CreateContactInput{
		Name:        body.Name,
		Username:    body.Username,
		Email:       body.Email,
		Phone:       body.Phone,
		Tags:        body.Tags,
		InstagramId: body.InstagramId,
	}
}

type UpdateContactBody struct {
	Name     null.String `json:"name"`
	Username null.String `json:"username"`
	Email    null.String `json:"email"`
	Phone    null.String `json:"phone"`
	Tags     []string    `json:"tags"`
}

func AdaptUpdateContactInput(id string, body UpdateContactBody) models.UpdateContactInput {
	return models.UpdateContactInput{
		Id:       id,
		Name:     body.Name.Ptr(),
		Username: body.Username.Ptr(),
		Email:    body.Email.Ptr(),
		Phone:    body.Phone.Ptr(),
		Tags:     body.Tags,
	}
}

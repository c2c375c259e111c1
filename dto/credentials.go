package dto

import (
	"github.com/replyflow/replyflow-backend/models"
)

type Credentials struct {
	UserId string `json:"user_id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	Guest  bool   `json:"guest,omitempty"`
}

func AdaptCredentialsDto(creds models.Credentials) Credentials {
	return Credentials{
		UserId: creds.UserId,
		Email:  creds.Email,
		Role:   string(creds.Role),
		Guest:  creds.Guest,
	}
}

func AdaptCredentials(dto Credentials) models.Credentials {
	return models.Credentials{
		UserId: dto.UserId,
		Email:  dto.Email,
		Role:   models.Role(dto.Role),
		Guest:  dto.Guest,
	}
}

package token

import (
	"context"

	"github.com/replyflow/replyflow-backend/models"
)

type sessionTokenValidator interface {
	ValidateToken(sessionToken string) (models.Credentials, error)
}

type Validator struct {
	validator sessionTokenValidator
}

func NewValidator(validator sessionTokenValidator) *Validator {
	return &Validator{validator: validator}
}

func (v *Validator) Validate(ctx context.Context, sessionToken string) (models.Credentials, error) {
	return v.validator.ValidateToken(sessionToken)
}

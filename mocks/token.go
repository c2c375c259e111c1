package mocks

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/models"
)

type JwtEncoder struct {
	mock.Mock
}

func (_m *JwtEncoder) EncodeToken(expirationTime time.Time, creds models.Credentials) (string, error) {
	args := _m.Called(expirationTime, creds)
	return args.String(0), args.Error(1)
}

type IdentityVerifier struct {
	mock.Mock
}

func (_m *IdentityVerifier) VerifyToken(ctx context.Context, idToken string) (models.Identity, error) {
	args := _m.Called(ctx, idToken)
	return args.Get(0).(models.Identity), args.Error(1)
}

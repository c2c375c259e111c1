package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/mocks"
	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/repositories/clock"
)

func TestGenerator_GenerateToken(t *testing.T) {
	idpToken := "idp-token"
	identity := models.Identity{Email: "ada@example.com", Name: "Ada Lovelace"}
	now := time.Now()

	user := models.User{
		Id:    "user-1",
		Email: "ada@example.com",
	}

	t.Run("nominal", func(t *testing.T) {
		mockVerifier := new(mocks.IdentityVerifier)
		mockVerifier.On("VerifyToken", mock.Anything, idpToken).
			Return(identity, nil)

		mockRepository := new(mocks.UserRepository)
		mockRepository.On("UserByEmail", mock.Anything, mock.Anything, identity.Email).
			Return(&user, nil)

		mockEncoder := new(mocks.JwtEncoder)
		mockEncoder.On("EncodeToken", now.Add(time.Hour), models.NewCredentials(user)).
			Return("session-token", nil)

		generator := Generator{
			userRepository: mockRepository,
			verifier:       mockVerifier,
			encoder:        mockEncoder,
			clock:          clock.NewMock(now),
			tokenLifetime:  time.Hour,
		}

		token, expirationTime, creds, err := generator.GenerateToken(t.Context(), idpToken)
		assert.NoError(t, err)
		assert.Equal(t, "session-token", token)
		assert.Equal(t, now.Add(time.Hour), expirationTime)
		assert.Equal(t, "user-1", creds.UserId)
		assert.Equal(t, models.RoleUser, creds.Role)

		mockVerifier.AssertExpectations(t)
		mockRepository.AssertExpectations(t)
		mockEncoder.AssertExpectations(t)
	})

	t.Run("admin user gets the admin role", func(t *testing.T) {
		admin := user
		admin.IsAdmin = true

		mockVerifier := new(mocks.IdentityVerifier)
		mockVerifier.On("VerifyToken", mock.Anything, idpToken).
			Return(identity, nil)

		mockRepository := new(mocks.UserRepository)
		mockRepository.On("UserByEmail", mock.Anything, mock.Anything, identity.Email).
			Return(&admin, nil)

		mockEncoder := new(mocks.JwtEncoder)
		mockEncoder.On("EncodeToken", mock.Anything, mock.MatchedBy(func(creds models.Credentials) bool {
			return creds.Role == models.RoleAdmin
		})).Return("session-token", nil)

		generator := Generator{
			userRepository: mockRepository,
			verifier:       mockVerifier,
			encoder:        mockEncoder,
			clock:          clock.NewMock(now),
			tokenLifetime:  time.Hour,
		}

		_, _, creds, err := generator.GenerateToken(t.Context(), idpToken)
		assert.NoError(t, err)
		assert.Equal(t, models.RoleAdmin, creds.Role)
		mockEncoder.AssertExpectations(t)
	})

	t.Run("suspended user is refused a session", func(t *testing.T) {
		suspended := user
		suspended.Suspended = true

		mockVerifier := new(mocks.IdentityVerifier)
		mockVerifier.On("VerifyToken", mock.Anything, idpToken).
			Return(identity, nil)

		mockRepository := new(mocks.UserRepository)
		mockRepository.On("UserByEmail", mock.Anything, mock.Anything, identity.Email).
			Return(&suspended, nil)

		generator := Generator{
			userRepository: mockRepository,
			verifier:       mockVerifier,
			clock:          clock.NewMock(now),
		}

		_, _, _, err := generator.GenerateToken(t.Context(), idpToken)
		assert.ErrorIs(t, err, models.ErrUserSuspended)
	})

	t.Run("first sign-in with registration disabled", func(t *testing.T) {
		mockVerifier := new(mocks.IdentityVerifier)
		mockVerifier.On("VerifyToken", mock.Anything, idpToken).
			Return(identity, nil)

		mockRepository := new(mocks.UserRepository)
		mockRepository.On("UserByEmail", mock.Anything, mock.Anything, identity.Email).
			Return(nil, nil)

		mockSettings := new(mocks.SettingsRepository)
		mockSettings.On("GetPlatformSettings", mock.Anything, mock.Anything).
			Return(models.PlatformSettings{RegistrationEnabled: false}, nil)

		generator := Generator{
			userRepository:     mockRepository,
			settingsRepository: mockSettings,
			verifier:           mockVerifier,
			clock:              clock.NewMock(now),
		}

		_, _, _, err := generator.GenerateToken(t.Context(), idpToken)
		assert.ErrorIs(t, err, models.ErrRegistrationClosed)
		mockSettings.AssertExpectations(t)
	})

	t.Run("identity provider outage degrades to guest when enabled", func(t *testing.T) {
		mockVerifier := new(mocks.IdentityVerifier)
		mockVerifier.On("VerifyToken", mock.Anything, idpToken).
			Return(models.Identity{}, assert.AnError)

		mockEncoder := new(mocks.JwtEncoder)
		mockEncoder.On("EncodeToken", now.Add(time.Hour), mock.MatchedBy(func(creds models.Credentials) bool {
			return creds.Guest && creds.Role == models.RoleUser && creds.UserId != ""
		})).Return("guest-token", nil)

		generator := Generator{
			verifier:           mockVerifier,
			encoder:            mockEncoder,
			clock:              clock.NewMock(now),
			tokenLifetime:      time.Hour,
			allowGuestFallback: true,
		}

		token, _, creds, err := generator.GenerateToken(t.Context(), idpToken)
		assert.NoError(t, err)
		assert.Equal(t, "guest-token", token)
		assert.True(t, creds.Guest)
		mockEncoder.AssertExpectations(t)
	})

	t.Run("identity provider outage fails when fallback is disabled", func(t *testing.T) {
		mockVerifier := new(mocks.IdentityVerifier)
		mockVerifier.On("VerifyToken", mock.Anything, idpToken).
			Return(models.Identity{}, assert.AnError)

		generator := Generator{verifier: mockVerifier}

		_, _, _, err := generator.GenerateToken(t.Context(), idpToken)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("a plainly invalid token never becomes a guest session", func(t *testing.T) {
		mockVerifier := new(mocks.IdentityVerifier)
		mockVerifier.On("VerifyToken", mock.Anything, idpToken).
			Return(models.Identity{}, models.UnAuthorizedError)

		generator := Generator{
			verifier:           mockVerifier,
			allowGuestFallback: true,
		}

		_, _, _, err := generator.GenerateToken(t.Context(), idpToken)
		assert.ErrorIs(t, err, models.UnAuthorizedError)
	})
}

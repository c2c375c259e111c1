package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type mockCredentialsValidator struct {
	mock.Mock
}

func (m *mockCredentialsValidator) Validate(ctx context.Context, sessionToken string) (models.Credentials, error) {
	args := m.Called(ctx, sessionToken)
	return args.Get(0).(models.Credentials), args.Error(1)
}

func TestParseAuthorizationBearerHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "nominal", header: "Bearer session-token", want: "session-token"},
		{name: "surrounding whitespace", header: "Bearer  session-token ", want: "session-token"},
		{name: "missing header", wantErr: true},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", wantErr: true},
		{name: "bare token", header: "session-token", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Authorization", tt.header)
			}

			token, err := ParseAuthorizationBearerHeader(header)
			if tt.wantErr {
				assert.ErrorIs(t, err, models.UnAuthorizedError)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, token)
			}
		})
	}
}

func TestAuthenticationMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	creds := models.Credentials{UserId: "user-1", Email: "ada@example.com", Role: models.RoleUser}

	t.Run("valid token reaches the handler with credentials", func(t *testing.T) {
		validator := new(mockCredentialsValidator)
		validator.On("Validate", mock.Anything, "session-token").
			Return(creds, nil)

		var seen models.Credentials
		r := gin.New()
		r.GET("/protected", NewAuthentication(validator).Middleware, func(c *gin.Context) {
			seen = utils.CredentialsFromCtx(c.Request.Context())
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer session-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, creds, seen)
		validator.AssertExpectations(t)
	})

	t.Run("missing header is rejected before validation", func(t *testing.T) {
		validator := new(mockCredentialsValidator)

		r := gin.New()
		r.GET("/protected", NewAuthentication(validator).Middleware, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		validator.AssertNotCalled(t, "Validate")
	})

	t.Run("invalid token is rejected", func(t *testing.T) {
		validator := new(mockCredentialsValidator)
		validator.On("Validate", mock.Anything, "expired-token").
			Return(models.Credentials{}, models.UnAuthorizedError)

		r := gin.New()
		r.GET("/protected", NewAuthentication(validator).Middleware, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("validator failure maps to 401, not 500", func(t *testing.T) {
		validator := new(mockCredentialsValidator)
		validator.On("Validate", mock.Anything, "session-token").
			Return(models.Credentials{}, assert.AnError)

		r := gin.New()
		r.GET("/protected", NewAuthentication(validator).Middleware, func(c *gin.Context) {
			c.Status(http.StatusOK)
		})

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer session-token")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

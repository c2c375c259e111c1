package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

func handlePostToken(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		idpToken, err := ParseAuthorizationBearerHeader(c.Request.Header)
		if presentError(ctx, c, err) {
			return
		}

		generator := uc.NewTokenGenerator()
		token, expirationTime, credentials, err := generator.GenerateToken(ctx, idpToken)
		if presentError(ctx, c, err) {
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"access_token": token,
			"token_type":   "Bearer",
			"expires_at":   expirationTime,
			"credentials":  dto.AdaptCredentialsDto(credentials),
		})
	}
}

// handleLogout revokes the identity provider session best-effort. The local
// session token is not recallable: it simply expires.
func handleLogout(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		creds := utils.CredentialsFromCtx(ctx)

		if !creds.Guest {
			if err := uc.Repositories.FirebaseClient.RevokeSessions(ctx, creds.Email); err != nil {
				utils.LoggerFromContext(ctx).WarnContext(ctx,
					"session revocation failed", "error", err.Error())
			}
		}
		c.Status(http.StatusNoContent)
	}
}

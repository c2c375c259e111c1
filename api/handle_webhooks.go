package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

// handleWebhookVerification answers Meta's subscription handshake by echoing
// hub.challenge back when the verify token matches.
func handleWebhookVerification(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		challenge, err := uc.NewWebhookUsecase().VerifyChallenge(ctx,
			c.Query("hub.mode"),
			c.Query("hub.verify_token"),
			c.Query("hub.challenge"),
		)
		if presentError(ctx, c, err) {
			return
		}
		c.String(http.StatusOK, challenge)
	}
}

// handleWebhookEvent ingests a webhook delivery. Meta retries the whole
// delivery on any non-200, so per-event failures are logged and swallowed
// and the response is always 200 once the payload has been read.
func handleWebhookEvent(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		payload, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		if err := uc.NewWebhookUsecase().HandleEvent(ctx, payload); err != nil {
			utils.LoggerFromContext(ctx).ErrorContext(ctx,
				"webhook delivery rejected", "error", err.Error())
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	}
}

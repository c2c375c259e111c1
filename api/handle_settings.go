package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
)

// handlePublicSettings serves the pricing table and registration flag to the
// signup page, no session required.
func handlePublicSettings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		settings, err := uc.NewPublicSettingsUsecase().PublicSettings(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"settings": dto.AdaptPlatformSettingsDto(settings)})
	}
}

func handleGetSettings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewSettingsUsecase()
		settings, err := usecase.GetSettings(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"settings": dto.AdaptPlatformSettingsDto(settings)})
	}
}

func handlePatchSettings(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.UpdatePlatformSettingsBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSettingsUsecase()
		settings, err := usecase.UpdateSettings(ctx, dto.AdaptUpdatePlatformSettingsInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"settings": dto.AdaptPlatformSettingsDto(settings)})
	}
}

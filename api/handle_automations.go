package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

func handleListAutomations(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewAutomationUsecase()
		automations, err := usecase.ListAutomations(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"automations": utils.Map(automations, dto.AdaptAutomationDto)})
	}
}

func handleGetAutomation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("automation_id")

		usecase := usecasesWithCreds(ctx, uc).NewAutomationUsecase()
		automation, err := usecase.GetAutomation(ctx, id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"automation": dto.AdaptAutomationDto(automation)})
	}
}

func handlePostAutomation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateAutomationBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAutomationUsecase()
		automation, err := usecase.CreateAutomation(ctx, dto.AdaptCreateAutomationInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"automation": dto.AdaptAutomationDto(automation)})
	}
}

func handlePatchAutomation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("automation_id")

		var data dto.UpdateAutomationBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAutomationUsecase()
		automation, err := usecase.UpdateAutomation(ctx, dto.AdaptUpdateAutomationInput(id, data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"automation": dto.AdaptAutomationDto(automation)})
	}
}

func handleDeleteAutomation(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("automation_id")

		usecase := usecasesWithCreds(ctx, uc).NewAutomationUsecase()
		if err := usecase.DeleteAutomation(ctx, id); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

func handleListFlows(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewFlowUsecase()
		flows, err := usecase.ListFlows(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"flows": utils.Map(flows, dto.AdaptFlowDto)})
	}
}

func handleGetFlow(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("flow_id")

		usecase := usecasesWithCreds(ctx, uc).NewFlowUsecase()
		flow, err := usecase.GetFlow(ctx, id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"flow": dto.AdaptFlowDto(flow)})
	}
}

func handlePostFlow(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateFlowBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewFlowUsecase()
		flow, err := usecase.CreateFlow(ctx, dto.AdaptCreateFlowInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"flow": dto.AdaptFlowDto(flow)})
	}
}

func handlePatchFlow(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("flow_id")

		var data dto.UpdateFlowBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewFlowUsecase()
		flow, err := usecase.UpdateFlow(ctx, dto.AdaptUpdateFlowInput(id, data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"flow": dto.AdaptFlowDto(flow)})
	}
}

func handleDeleteFlow(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("flow_id")

		usecase := usecasesWithCreds(ctx, uc).NewFlowUsecase()
		if err := usecase.DeleteFlow(ctx, id); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

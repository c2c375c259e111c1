package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

func handleListGrowthTools(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewGrowthToolUsecase()
		tools, err := usecase.ListGrowthTools(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"growth_tools": utils.Map(tools, dto.AdaptGrowthToolDto)})
	}
}

func handleGetGrowthTool(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("growth_tool_id")

		usecase := usecasesWithCreds(ctx, uc).NewGrowthToolUsecase()
		tool, err := usecase.GetGrowthTool(ctx, id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"growth_tool": dto.AdaptGrowthToolDto(tool)})
	}
}

func handlePostGrowthTool(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateGrowthToolBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewGrowthToolUsecase()
		tool, err := usecase.CreateGrowthTool(ctx, dto.AdaptCreateGrowthToolInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"growth_tool": dto.AdaptGrowthToolDto(tool)})
	}
}

func handlePatchGrowthTool(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("growth_tool_id")

		var data dto.UpdateGrowthToolBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewGrowthToolUsecase()
		tool, err := usecase.UpdateGrowthTool(ctx, dto.AdaptUpdateGrowthToolInput(id, data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"growth_tool": dto.AdaptGrowthToolDto(tool)})
	}
}

func handleDeleteGrowthTool(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("growth_tool_id")

		usecase := usecasesWithCreds(ctx, uc).NewGrowthToolUsecase()
		if err := usecase.DeleteGrowthTool(ctx, id); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// Click and conversion tracking are hit from public growth tool pages, with
// no session attached.
func handleTrackGrowthToolClick(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("growth_tool_id")

		if err := uc.NewPublicGrowthToolUsecase().TrackClick(ctx, id); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleTrackGrowthToolConversion(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("growth_tool_id")

		if err := uc.NewPublicGrowthToolUsecase().TrackConversion(ctx, id); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

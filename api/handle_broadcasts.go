package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

func handleListBroadcasts(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewBroadcastUsecase()
		broadcasts, err := usecase.ListBroadcasts(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"broadcasts": utils.Map(broadcasts, dto.AdaptBroadcastDto)})
	}
}

func handleGetBroadcast(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("broadcast_id")

		usecase := usecasesWithCreds(ctx, uc).NewBroadcastUsecase()
		broadcast, err := usecase.GetBroadcast(ctx, id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"broadcast": dto.AdaptBroadcastDto(broadcast)})
	}
}

func handlePostBroadcast(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateBroadcastBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBroadcastUsecase()
		broadcast, err := usecase.CreateBroadcast(ctx, dto.AdaptCreateBroadcastInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"broadcast": dto.AdaptBroadcastDto(broadcast)})
	}
}

func handlePatchBroadcast(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("broadcast_id")

		var data dto.UpdateBroadcastBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewBroadcastUsecase()
		broadcast, err := usecase.UpdateBroadcast(ctx, dto.AdaptUpdateBroadcastInput(id, data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"broadcast": dto.AdaptBroadcastDto(broadcast)})
	}
}

func handleDeleteBroadcast(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("broadcast_id")

		usecase := usecasesWithCreds(ctx, uc).NewBroadcastUsecase()
		if err := usecase.DeleteBroadcast(ctx, id); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

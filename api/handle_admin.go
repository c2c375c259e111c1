package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

func handleAdminDashboard(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewAdminUsecase()
		dashboard, err := usecase.Dashboard(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"dashboard": dto.AdaptAdminDashboardDto(dashboard)})
	}
}

func handleAdminListUsers(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewAdminUsecase()
		users, err := usecase.ListUsers(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"users": utils.Map(users, dto.AdaptUserDto)})
	}
}

func handleAdminSetUserSuspended(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId := c.Param("user_id")

		var data dto.SetUserSuspendedBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewAdminUsecase()
		user, err := usecase.SetUserSuspended(ctx, userId, *data.Suspended)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"user": dto.AdaptUserDto(user)})
	}
}

func handleAdminDeleteUser(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userId := c.Param("user_id")

		usecase := usecasesWithCreds(ctx, uc).NewAdminUsecase()
		if err := usecase.DeleteUser(ctx, userId); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

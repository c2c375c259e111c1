package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

func handleListMyPayments(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewPaymentUsecase()
		payments, err := usecase.ListMyPayments(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": utils.Map(payments, dto.AdaptPaymentRequestDto)})
	}
}

func handlePostPaymentRequest(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreatePaymentRequestBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewPaymentUsecase()
		payment, err := usecase.CreatePaymentRequest(ctx, dto.AdaptCreatePaymentRequestInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"payment": dto.AdaptPaymentRequestDto(payment)})
	}
}

func handleListAllPayments(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewPaymentUsecase()
		payments, err := usecase.ListAllPayments(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"payments": utils.Map(payments, dto.AdaptPaymentRequestDto)})
	}
}

func handleApprovePayment(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("payment_id")

		usecase := usecasesWithCreds(ctx, uc).NewPaymentUsecase()
		payment, err := usecase.ApprovePayment(ctx, id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"payment": dto.AdaptPaymentRequestDto(payment)})
	}
}

func handleRejectPayment(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("payment_id")

		usecase := usecasesWithCreds(ctx, uc).NewPaymentUsecase()
		payment, err := usecase.RejectPayment(ctx, id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"payment": dto.AdaptPaymentRequestDto(payment)})
	}
}

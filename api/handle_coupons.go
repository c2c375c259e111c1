package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

func handleListCoupons(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewCouponUsecase()
		coupons, err := usecase.ListCoupons(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"coupons": utils.Map(coupons, dto.AdaptCouponDto)})
	}
}

func handlePostCoupon(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateCouponBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCouponUsecase()
		coupon, err := usecase.CreateCoupon(ctx, dto.AdaptCreateCouponInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"coupon": dto.AdaptCouponDto(coupon)})
	}
}

func handlePatchCoupon(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("coupon_id")

		var data dto.UpdateCouponBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCouponUsecase()
		if err := usecase.UpdateCoupon(ctx, dto.AdaptUpdateCouponInput(id, data)); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleDeleteCoupon(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("coupon_id")

		usecase := usecasesWithCreds(ctx, uc).NewCouponUsecase()
		if err := usecase.DeleteCoupon(ctx, id); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func handleApplyCoupon(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.ApplyCouponBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewCouponUsecase()
		coupon, err := usecase.ApplyCoupon(ctx, data.Code)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"coupon": dto.AdaptCouponDto(coupon)})
	}
}

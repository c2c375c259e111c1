package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

func handleListContacts(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewContactUsecase()
		contacts, err := usecase.ListContacts(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"contacts": utils.Map(contacts, dto.AdaptContactDto)})
	}
}

func handleGetContact(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("contact_id")

		usecase := usecasesWithCreds(ctx, uc).NewContactUsecase()
		contact, err := usecase.GetContact(ctx, id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"contact": dto.AdaptContactDto(contact)})
	}
}

func handlePostContact(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateContactBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewContactUsecase()
		contact, err := usecase.CreateContact(ctx, dto.AdaptCreateContactInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"contact": dto.AdaptContactDto(contact)})
	}
}

func handlePatchContact(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("contact_id")

		var data dto.UpdateContactBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewContactUsecase()
		contact, err := usecase.UpdateContact(ctx, dto.AdaptUpdateContactInput(id, data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"contact": dto.AdaptContactDto(contact)})
	}
}

func handleDeleteContact(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("contact_id")

		usecase := usecasesWithCreds(ctx, uc).NewContactUsecase()
		if err := usecase.DeleteContact(ctx, id); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

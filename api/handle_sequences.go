package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/replyflow/replyflow-backend/dto"
	"github.com/replyflow/replyflow-backend/usecases"
	"github.com/replyflow/replyflow-backend/utils"
)

func handleListSequences(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		usecase := usecasesWithCreds(ctx, uc).NewSequenceUsecase()
		sequences, err := usecase.ListSequences(ctx)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"sequences": utils.Map(sequences, dto.AdaptSequenceDto)})
	}
}

func handleGetSequence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("sequence_id")

		usecase := usecasesWithCreds(ctx, uc).NewSequenceUsecase()
		sequence, err := usecase.GetSequence(ctx, id)
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"sequence": dto.AdaptSequenceDto(sequence)})
	}
}

func handlePostSequence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()

		var data dto.CreateSequenceBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSequenceUsecase()
		sequence, err := usecase.CreateSequence(ctx, dto.AdaptCreateSequenceInput(data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusCreated, gin.H{"sequence": dto.AdaptSequenceDto(sequence)})
	}
}

func handlePatchSequence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("sequence_id")

		var data dto.UpdateSequenceBody
		if err := c.ShouldBindJSON(&data); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}

		usecase := usecasesWithCreds(ctx, uc).NewSequenceUsecase()
		sequence, err := usecase.UpdateSequence(ctx, dto.AdaptUpdateSequenceInput(id, data))
		if presentError(ctx, c, err) {
			return
		}
		c.JSON(http.StatusOK, gin.H{"sequence": dto.AdaptSequenceDto(sequence)})
	}
}

func handleDeleteSequence(uc usecases.Usecases) func(c *gin.Context) {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		id := c.Param("sequence_id")

		usecase := usecasesWithCreds(ctx, uc).NewSequenceUsecase()
		if err := usecase.DeleteSequence(ctx, id); presentError(ctx, c, err) {
			return
		}
		c.Status(http.StatusNoContent)
	}
}

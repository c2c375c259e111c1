package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type SequenceStep struct {
	DayOffset int    `json:"day_offset"`
	Text      string `json:"text" binding:"required"`
}

func AdaptSequenceStepDto(step models.SequenceStep) SequenceStep {
	return SequenceStep{DayOffset: step.DayOffset, Text: step.Text}
}

func AdaptSequenceStep(step SequenceStep) models.SequenceStep {
	return models.SequenceStep{DayOffset: step.DayOffset, Text: step.Text}
}

type Sequence struct {
	Id        string         `json:"id"`
	Name      string         `json:"name"`
	Steps     []SequenceStep `json:"steps"`
	Active    bool           `json:"active"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func AdaptSequenceDto(sequence models.Sequence) Sequence {
	return Sequence{
		Id:        sequence.Id,
		Name:      sequence.Name,
		Steps:     utils.Map(sequence.Steps, AdaptSequenceStepDto),
		Active:    sequence.Active,
		CreatedAt: sequence.CreatedAt,
		UpdatedAt: sequence.UpdatedAt,
	}
}

type CreateSequenceBody struct {
	Name   string         `json:"name" binding:"required"`
	Steps  []SequenceStep `json:"steps"`
	Active bool           `json:"active"`
}

func AdaptCreateSequenceInput(body CreateSequenceBody) models.CreateSequenceInput {
	return models.CreateSequenceInput{
		Name:   body.Name,
		Steps:  utils.Map(body.Steps, AdaptSequenceStep),
		Active: body.Active,
	}
}

type UpdateSequenceBody struct {
	Name   null.String    `json:"name"`
	Steps  []SequenceStep `json:"steps"`
	Active null.Bool      `json:"active"`
}

func AdaptUpdateSequenceInput(id string, body UpdateSequenceBody) models.UpdateSequenceInput {
	input := models.UpdateSequenceInput{
		Id:     id,
		Name:   body.Name.Ptr(),
		Active: body.Active.Ptr(),
	}
	if body.Steps != nil {
		input.Steps = utils.Map(body.Steps, AdaptSequenceStep)
	}
	return input
}

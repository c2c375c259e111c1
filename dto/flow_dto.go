package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type FlowStep struct {
	Kind         string `json:"kind" binding:"required"`
	Text         string `json:"text,omitempty"`
	DelayMinutes int    `json:"delay_minutes,omitempty"`
	Keyword      string `json:"keyword,omitempty"`
}

func AdaptFlowStepDto(step models.FlowStep) FlowStep {
	return FlowStep{
		Kind:         string(step.Kind),
		Text:         step.Text,
		DelayMinutes: step.DelayMinutes,
		Keyword:      step.Keyword,
	}
}

func AdaptFlowStep(step FlowStep) models.FlowStep {
	return models.FlowStep{
		Kind:         models.FlowStepKind(step.Kind),
		Text:         step.Text,
		DelayMinutes: step.DelayMinutes,
		Keyword:      step.Keyword,
	}
}

type Flow struct {
	Id        string     `json:"id"`
	Name      string     `json:"name"`
	Steps     []FlowStep `json:"steps"`
	Active    bool       `json:"active"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

func AdaptFlowDto(flow models.Flow) Flow {
	return Flow{
		Id:        flow.Id,
		Name:      flow.Name,
		Steps:     utils.Map(flow.Steps, AdaptFlowStepDto),
		Active:    flow.Active,
		CreatedAt: flow.CreatedAt,
		UpdatedAt: flow.UpdatedAt,
	}
}

type CreateFlowBody struct {
	Name   string     `json:"name" binding:"required"`
	Steps  []FlowStep `json:"steps"`
	Active bool       `json:"active"`
}

func AdaptCreateFlowInput(body CreateFlowBody) models.CreateFlowInput {
	return models.CreateFlowInput{
		Name:   body.Name,
		Steps:  utils.Map(body.Steps, AdaptFlowStep),
		Active: body.Active,
	}
}

type UpdateFlowBody struct {
	Name   null.String `json:"name"`
	Steps  []FlowStep  `json:"steps"`
	Active null.Bool   `json:"active"`
}

func AdaptUpdateFlowInput(id string, body UpdateFlowBody) models.UpdateFlowInput {
	input := models.UpdateFlowInput{
		Id:     id,
		Name:   body.Name.Ptr(),
		Active: body.Active.Ptr(),
	}
	if body.Steps != nil {
		input.Steps = utils.Map(body.Steps, AdaptFlowStep)
	}
	return input
}

package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/replyflow/replyflow-backend/models"
)

type Automation struct {
	Id            string    `json:"id"`
	Name          string    `json:"name"`
	Kind          string    `json:"kind"`
	Triggers      string    `json:"triggers"`
	Responses     []string  `json:"responses"`
	TargetPostUrl string    `json:"target_post_url,omitempty"`
	Active        bool      `json:"active"`
	TriggerCount  int       `json:"trigger_count"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func AdaptAutomationDto(automation models.Automation) Automation {
	return Automation{
		Id:            automation.Id,
		Name:          automation.Name,
		Kind:          string(automation.Kind),
		Triggers:      automation.Triggers,
		Responses:     automation.Responses,
		TargetPostUrl: automation.TargetPostUrl,
		Active:        automation.Active,
		TriggerCount:  automation.TriggerCount,
		CreatedAt:     automation.CreatedAt,
		UpdatedAt:     automation.UpdatedAt,
	}
}

type CreateAutomationBody struct {
	Name          string   `json:"name" binding:"required"`
	Kind          string   `json:"kind" binding:"required"`
	Triggers      string   `json:"triggers"`
	Responses     []string `json:"responses"`
	TargetPostUrl string   `json:"target_post_url"`
	Active        bool     `json:"active"`
}

func AdaptCreateAutomationInput(body CreateAutomationBody) models.CreateAutomationInput {
	return models.CreateAutomationInput{
		Name:          body.Name,
		Kind:          models.AutomationKind(body.Kind),
		Triggers:      body.Triggers,
		Responses:     body.Responses,
		TargetPostUrl: body.TargetPostUrl,
		Active:        body.Active,
	}
}

type UpdateAutomationBody struct {
	Name          null.String `json:"name"`
	Kind          null.String `json:"kind"`
	Triggers      null.String `json:"triggers"`
	Responses     []string    `json:"responses"`
	TargetPostUrl null.String `json:"target_post_url"`
	Active        null.Bool   `json:"active"`
}

func AdaptUpdateAutomationInput(id string, body UpdateAutomationBody) models.UpdateAutomationInput {
	input := models.UpdateAutomationInput{
		Id:            id,
		Name:          body.Name.Ptr(),
		Triggers:      body.Triggers.Ptr(),
		Responses:     body.Responses,
		TargetPostUrl: body.TargetPostUrl.Ptr(),
		Active:        body.Active.Ptr(),
	}
	if body.Kind.Valid {
		kind := models.AutomationKind(body.Kind.String)
		input.Kind = &kind
	}
	return input
}

package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type GrowthToolLink struct {
	Label string `json:"label"`
	Url   string `json:"url"`
}

type GrowthToolConfig struct {
	Links     []GrowthToolLink `json:"links,omitempty"`
	TargetUrl string           `json:"target_url,omitempty"`
	PostUrl   string           `json:"post_url,omitempty"`
	Keyword   string           `json:"keyword,omitempty"`
}

func AdaptGrowthToolConfigDto(config models.GrowthToolConfig) GrowthToolConfig {
	return GrowthToolConfig{
		Links: utils.Map(config.Links, func(link models.GrowthToolLink) GrowthToolLink {
			return GrowthToolLink{Label: link.Label, Url: link.Url}
		}),
		TargetUrl: config.TargetUrl,
		PostUrl:   config.PostUrl,
		Keyword:   config.Keyword,
	}
}

func AdaptGrowthToolConfig(config GrowthToolConfig) models.GrowthToolConfig {
	return models.GrowthToolConfig{
		Links: utils.Map(config.Links, func(link GrowthToolLink) models.GrowthToolLink {
			return models.GrowthToolLink{Label: link.Label, Url: link.Url}
		}),
		TargetUrl: config.TargetUrl,
		PostUrl:   config.PostUrl,
		Keyword:   config.Keyword,
	}
}

type GrowthTool struct {
	Id          string           `json:"id"`
	Name        string           `json:"name"`
	Kind        string           `json:"kind"`
	Config      GrowthToolConfig `json:"config"`
	Active      bool             `json:"active"`
	Clicks      int              `json:"clicks"`
	Conversions int              `json:"conversions"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func AdaptGrowthToolDto(tool models.GrowthTool) GrowthTool {
	return GrowthTool{
		Id:          tool.Id,
		Name:        tool.Name,
		Kind:        string(tool.Kind),
		Config:      AdaptGrowthToolConfigDto(tool.Config),
		Active:      tool.Active,
		Clicks:      tool.Clicks,
		Conversions: tool.Conversions,
		CreatedAt:   tool.CreatedAt,
		UpdatedAt:   tool.UpdatedAt,
	}
}

type CreateGrowthToolBody struct {
	Name   string           `json:"name" binding:"required"`
	Kind   string           `json:"kind" binding:"required"`
	Config GrowthToolConfig `json:"config"`
	Active bool             `json:"active"`
}

func AdaptCreateGrowthToolInput(body CreateGrowthToolBody) models.CreateGrowthToolInput {
	return models.CreateGrowthToolInput{
		Name:   body.Name,
		Kind:   models.GrowthToolKind(body.Kind),
		Config: AdaptGrowthToolConfig(body.Config),
		Active: body.Active,
	}
}

type UpdateGrowthToolBody struct {
	Name   null.String       `json:"name"`
	Config *GrowthToolConfig `json:"config"`
	Active null.Bool         `json:"active"`
}

func AdaptUpdateGrowthToolInput(id string, body UpdateGrowthToolBody) models.UpdateGrowthToolInput {
	input := models.UpdateGrowthToolInput{
		Id:     id,
		Name:   body.Name.Ptr(),
		Active: body.Active.Ptr(),
	}
	if body.Config != nil {
		config := AdaptGrowthToolConfig(*body.Config)
		input.Config = &config
	}
	return input
}

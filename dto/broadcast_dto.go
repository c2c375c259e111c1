package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/replyflow/replyflow-backend/models"
)

type Broadcast struct {
	Id          string     `json:"id"`
	Name        string     `json:"name"`
	Message     string     `json:"message"`
	TargetTag   string     `json:"target_tag,omitempty"`
	Status      string     `json:"status"`
	ScheduledAt *time.Time `json:"scheduled_at,omitempty"`
	SentCount   int        `json:"sent_count"`
	TotalCount  int        `json:"total_count"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func AdaptBroadcastDto(broadcast models.Broadcast) Broadcast {
	return Broadcast{
		Id:          broadcast.Id,
		Name:        broadcast.Name,
		Message:     broadcast.Message,
		TargetTag:   broadcast.TargetTag,
		Status:      string(broadcast.Status),
		ScheduledAt: broadcast.ScheduledAt,
		SentCount:   broadcast.SentCount,
		TotalCount:  broadcast.TotalCount,
		CreatedAt:   broadcast.CreatedAt,
		UpdatedAt:   broadcast.UpdatedAt,
	}
}

type CreateBroadcastBody struct {
	Name        string     `json:"name" binding:"required"`
	Message     string     `json:"message" binding:"required"`
	TargetTag   string     `json:"target_tag"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

func AdaptCreateBroadcastInput(body CreateBroadcastBody) models.CreateBroadcastInput {
	return models.CreateBroadcastInput{
		Name:        body.Name,
		Message:     body.Message,
		TargetTag:   body.TargetTag,
		ScheduledAt: body.ScheduledAt,
	}
}

type UpdateBroadcastBody struct {
	Name        null.String `json:"name"`
	Message     null.String `json:"message"`
	TargetTag   null.String `json:"target_tag"`
	Status      null.String `json:"status"`
	ScheduledAt *time.Time  `json:"scheduled_at"`
}

func AdaptUpdateBroadcastInput(id string, body UpdateBroadcastBody) models.UpdateBroadcastInput {
	input := models.UpdateBroadcastInput{
		Id:          id,
		Name:        body.Name.Ptr(),
		Message:     body.Message.Ptr(),
		TargetTag:   body.TargetTag.Ptr(),
		ScheduledAt: body.ScheduledAt,
	}
	if body.Status.Valid {
		status := models.BroadcastStatus(body.Status.String)
		input.Status = &status
	}
	return input
}

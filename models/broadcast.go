package models

import (
	"fmt"
	"time"
)

type BroadcastStatus string

const (
	BroadcastDraft     BroadcastStatus = "draft"
	BroadcastScheduled BroadcastStatus = "scheduled"
	BroadcastSending   BroadcastStatus = "sending"
	BroadcastSent      BroadcastStatus = "sent"
	BroadcastCancelled BroadcastStatus = "cancelled"
)

func BroadcastStatusFrom(s string) (BroadcastStatus, error) {
	switch BroadcastStatus(s) {
	case BroadcastDraft, BroadcastScheduled, BroadcastSending, BroadcastSent, BroadcastCancelled:
		return BroadcastStatus(s), nil
	}
	return "", fmt.Errorf("unknown broadcast status %q: %w", s, BadParameterError)
}

type Broadcast struct {
	Id      string
	UserId  string
	Name    string
	Message string
	// TargetTag filters the audience; empty means all contacts.
	TargetTag   string
	Status      BroadcastStatus
	ScheduledAt *time.Time
	SentCount   int
	TotalCount  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateBroadcastInput struct {
	UserId      string
	Name        string
	Message     string
	TargetTag   string
	ScheduledAt *time.Time
}

type UpdateBroadcastInput struct {
	Id          string
	Name        *string
	Message     *string
	TargetTag   *string
	Status      *BroadcastStatus
	ScheduledAt *time.Time
}

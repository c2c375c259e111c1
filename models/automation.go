package models

import (
	"fmt"
	"time"
)

type AutomationKind string

const (
	AutomationDmReply        AutomationKind = "dm_reply"
	AutomationCommentReply   AutomationKind = "comment_reply"
	AutomationStoryMention   AutomationKind = "story_mention"
	AutomationWelcome        AutomationKind = "welcome"
	AutomationKeywordTrigger AutomationKind = "keyword_trigger"
)

func AutomationKindFrom(s string) (AutomationKind, error) {
	switch AutomationKind(s) {
	case AutomationDmReply, AutomationCommentReply, AutomationStoryMention,
		AutomationWelcome, AutomationKeywordTrigger:
		return AutomationKind(s), nil
	}
	return "", fmt.Errorf("unknown automation kind %q: %w", s, BadParameterError)
}

// Automation is one keyword-triggered auto-reply definition as persisted.
// Triggers is the raw comma-separated keyword specification; the matching
// engine normalizes it at load time.
type Automation struct {
	Id        string
	UserId    string
	Name      string
	Kind      AutomationKind
	Triggers  string
	// Responses in configured order. The matching engine uses the first one
	// as its template.
	Responses []string
	// Optional post the comment automation is scoped to.
	TargetPostUrl string
	Active        bool
	TriggerCount  int

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateAutomationInput struct {
	UserId        string
	Name          string
	Kind          AutomationKind
	Triggers      string
	Responses     []string
	TargetPostUrl string
	Active        bool
}

type UpdateAutomationInput struct {
	Id            string
	Name          *string
	Kind          *AutomationKind
	Triggers      *string
	Responses     []string
	TargetPostUrl *string
	Active        *bool
}

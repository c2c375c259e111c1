package models

import (
	"fmt"
	"time"
)

type FlowStepKind string

const (
	FlowStepMessage   FlowStepKind = "message"
	FlowStepDelay     FlowStepKind = "delay"
	FlowStepCondition FlowStepKind = "condition"
)

// FlowStep is a closed tagged variant: exactly the fields of its kind are
// set, everything else stays zero. Kept flat so it round-trips through jsonb
// without a custom codec.
type FlowStep struct {
	Kind FlowStepKind `json:"kind"`

	// message
	Text string `json:"text,omitempty"`

	// delay
	DelayMinutes int `json:"delay_minutes,omitempty"`

	// condition
	Keyword string `json:"keyword,omitempty"`
}

func (s FlowStep) Validate() error {
	switch s.Kind {
	case FlowStepMessage:
		if s.Text == "" {
			return fmt.Errorf("message step requires a text: %w", BadParameterError)
		}
	case FlowStepDelay:
		if s.DelayMinutes <= 0 {
			return fmt.Errorf("delay step requires a positive delay: %w", BadParameterError)
		}
	case FlowStepCondition:
		if s.Keyword == "" {
			return fmt.Errorf("condition step requires a keyword: %w", BadParameterError)
		}
	default:
		return fmt.Errorf("unknown flow step kind %q: %w", s.Kind, BadParameterError)
	}
	return nil
}

type Flow struct {
	Id     string
	UserId string
	Name   string
	Steps  []FlowStep
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateFlowInput struct {
	UserId string
	Name   string
	Steps  []FlowStep
	Active bool
}

type UpdateFlowInput struct {
	Id     string
	Name   *string
	Steps  []FlowStep
	Active *bool
}

func ValidateFlowSteps(steps []FlowStep) error {
	for i, step := range steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

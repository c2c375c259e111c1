package models

import (
	"fmt"
	"time"
)

// SequenceStep is one drip message, sent DayOffset days after subscription.
type SequenceStep struct {
	DayOffset int    `json:"day_offset"`
	Text      string `json:"text"`
}

func (s SequenceStep) Validate() error {
	if s.DayOffset < 0 {
		return fmt.Errorf("sequence step day offset cannot be negative: %w", BadParameterError)
	}
	if s.Text == "" {
		return fmt.Errorf("sequence step requires a text: %w", BadParameterError)
	}
	return nil
}

type Sequence struct {
	Id     string
	UserId string
	Name   string
	Steps  []SequenceStep
	Active bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

type CreateSequenceInput struct {
	UserId string
	Name   string
	Steps  []SequenceStep
	Active bool
}

type UpdateSequenceInput struct {
	Id     string
	Name   *string
	Steps  []SequenceStep
	Active *bool
}

func ValidateSequenceSteps(steps []SequenceStep) error {
	for i, step := range steps {
		if err := step.Validate(); err != nil {
			return fmt.Errorf("step %d: %w", i, err)
		}
	}
	return nil
}

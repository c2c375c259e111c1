package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFlowStepValidate(t *testing.T) {
	tests := []struct {
		name    string
		step    FlowStep
		wantErr string
	}{
		{name: "message", step: FlowStep{Kind: FlowStepMessage, Text: "Hello!"}},
		{name: "delay", step: FlowStep{Kind: FlowStepDelay, DelayMinutes: 30}},
		{name: "condition", step: FlowStep{Kind: FlowStepCondition, Keyword: "price"}},
		{
			name:    "message without text",
			step:    FlowStep{Kind: FlowStepMessage},
			wantErr: "message step requires a text",
		},
		{
			name:    "delay without duration",
			step:    FlowStep{Kind: FlowStepDelay},
			wantErr: "delay step requires a positive delay",
		},
		{
			name:    "negative delay",
			step:    FlowStep{Kind: FlowStepDelay, DelayMinutes: -5},
			wantErr: "delay step requires a positive delay",
		},
		{
			name:    "condition without keyword",
			step:    FlowStep{Kind: FlowStepCondition},
			wantErr: "condition step requires a keyword",
		},
		{
			name:    "unknown kind",
			step:    FlowStep{Kind: "webhook"},
			wantErr: `unknown flow step kind "webhook"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.step.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, BadParameterError)
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateFlowStepsReportsOffendingIndex(t *testing.T) {
	steps := []FlowStep{
		{Kind: FlowStepMessage, Text: "Welcome"},
		{Kind: FlowStepDelay},
	}

	err := ValidateFlowSteps(steps)
	assert.ErrorContains(t, err, "step 1")

	assert.NoError(t, ValidateFlowSteps(nil))
}

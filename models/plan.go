package models

import "fmt"

type PlanTier string

const (
	PlanFree     PlanTier = "free"
	PlanStarter  PlanTier = "starter"
	PlanPro      PlanTier = "pro"
	PlanBusiness PlanTier = "business"
)

func PlanTierFrom(s string) (PlanTier, error) {
	switch PlanTier(s) {
	case PlanFree, PlanStarter, PlanPro, PlanBusiness:
		return PlanTier(s), nil
	}
	return "", fmt.Errorf("unknown plan tier %q: %w", s, BadParameterError)
}

type PlanInterval string

const (
	PlanIntervalMonthly PlanInterval = "monthly"
	PlanIntervalYearly  PlanInterval = "yearly"
)

func PlanIntervalFrom(s string) (PlanInterval, error) {
	switch PlanInterval(s) {
	case PlanIntervalMonthly, PlanIntervalYearly:
		return PlanInterval(s), nil
	}
	return "", fmt.Errorf("unknown plan interval %q: %w", s, BadParameterError)
}

// PlanLimits bounds the usage counters of a tier. A negative value means
// unlimited.
type PlanLimits struct {
	MaxAutomations      int
	MaxContacts         int
	MaxMessagesPerMonth int
}

func LimitsForTier(tier PlanTier) PlanLimits {
	switch tier {
	case PlanStarter:
		return PlanLimits{MaxAutomations: 10, MaxContacts: 1000, MaxMessagesPerMonth: 5000}
	case PlanPro:
		return PlanLimits{MaxAutomations: 50, MaxContacts: 10000, MaxMessagesPerMonth: 50000}
	case PlanBusiness:
		return PlanLimits{MaxAutomations: -1, MaxContacts: -1, MaxMessagesPerMonth: -1}
	default:
		return PlanLimits{MaxAutomations: 3, MaxContacts: 100, MaxMessagesPerMonth: 500}
	}
}

// Allows reports whether a counter currently at used may be incremented.
func (l PlanLimits) Allows(limit, used int) bool {
	return limit < 0 || used < limit
}

// PlanPrice is one entry of the platform pricing table, in rupees.
type PlanPrice struct {
	MonthlyInr int `json:"monthly_inr"`
	YearlyInr  int `json:"yearly_inr"`
}

package models

import "time"

// PlatformSettings is the singleton configuration row. Reads of the public
// subset (pricing, registration flag) need no credentials; writes are
// admin-only.
type PlatformSettings struct {
	UpiId               string
	UpiPhone            string
	MaintenanceMode     bool
	RegistrationEnabled bool
	MetaAppId           string
	MetaAppSecret       string
	WebhookVerifyToken  string
	PlanPricing         map[PlanTier]PlanPrice

	UpdatedAt time.Time
}

type UpdatePlatformSettingsInput struct {
	UpiId               *string
	UpiPhone            *string
	MaintenanceMode     *bool
	RegistrationEnabled *bool
	MetaAppId           *string
	MetaAppSecret       *string
	WebhookVerifyToken  *string
	PlanPricing         map[PlanTier]PlanPrice
}

func DefaultPlatformSettings() PlatformSettings {
	return PlatformSettings{
		RegistrationEnabled: true,
		PlanPricing: map[PlanTier]PlanPrice{
			PlanStarter:  {MonthlyInr: 499, YearlyInr: 4990},
			PlanPro:      {MonthlyInr: 1499, YearlyInr: 14990},
			PlanBusiness: {MonthlyInr: 3999, YearlyInr: 39990},
		},
	}
}

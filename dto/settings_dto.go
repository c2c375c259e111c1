package dto

import (
	"time"

	"github.com/guregu/null/v5"

	"github.com/replyflow/replyflow-backend/models"
)

type PlanPrice struct {
	MonthlyInr int `json:"monthly_inr"`
	YearlyInr  int `json:"yearly_inr"`
}

// PlatformSettings carries the public subset of the settings row. Admin
// responses additionally fill the Meta fields; the app secret and webhook
// verify token never leave the server.
type PlatformSettings struct {
	UpiId               string               `json:"upi_id"`
	UpiPhone            string               `json:"upi_phone"`
	MaintenanceMode     bool                 `json:"maintenance_mode"`
	RegistrationEnabled bool                 `json:"registration_enabled"`
	MetaAppId           string               `json:"meta_app_id,omitempty"`
	PlanPricing         map[string]PlanPrice `json:"plan_pricing"`
	UpdatedAt           time.Time            `json:"updated_at"`
}

func AdaptPlatformSettingsDto(settings models.PlatformSettings) PlatformSettings {
	pricing := make(map[string]PlanPrice, len(settings.PlanPricing))
	for tier, price := range settings.PlanPricing {
		pricing[string(tier)] = PlanPrice{MonthlyInr: price.MonthlyInr, YearlyInr: price.YearlyInr}
	}
	return PlatformSettings{
		UpiId:               settings.UpiId,
		UpiPhone:            settings.UpiPhone,
		MaintenanceMode:     settings.MaintenanceMode,
		RegistrationEnabled: settings.RegistrationEnabled,
		MetaAppId:           settings.MetaAppId,
		PlanPricing:         pricing,
		UpdatedAt:           settings.UpdatedAt,
	}
}

type UpdatePlatformSettingsBody struct {
	UpiId               null.String          `json:"upi_id"`
	UpiPhone            null.String          `json:"upi_phone"`
	MaintenanceMode     null.Bool            `json:"maintenance_mode"`
	RegistrationEnabled null.Bool            `json:"registration_enabled"`
	MetaAppId           null.String          `json:"meta_app_id"`
	MetaAppSecret       null.String          `json:"meta_app_secret"`
	WebhookVerifyToken  null.String          `json:"webhook_verify_token"`
	PlanPricing         map[string]PlanPrice `json:"plan_pricing"`
}

func AdaptUpdatePlatformSettingsInput(body UpdatePlatformSettingsBody) models.UpdatePlatformSettingsInput {
	input := models.UpdatePlatformSettingsInput{
		UpiId:               body.UpiId.Ptr(),
		UpiPhone:            body.UpiPhone.Ptr(),
		MaintenanceMode:     body.MaintenanceMode.Ptr(),
		RegistrationEnabled: body.RegistrationEnabled.Ptr(),
		MetaAppId:           body.MetaAppId.Ptr(),
		MetaAppSecret:       body.MetaAppSecret.Ptr(),
		WebhookVerifyToken:  body.WebhookVerifyToken.Ptr(),
	}
	if body.PlanPricing != nil {
		pricing := make(map[models.PlanTier]models.PlanPrice, len(body.PlanPricing))
		for tier, price := range body.PlanPricing {
			pricing[models.PlanTier(tier)] = models.PlanPrice{
				MonthlyInr: price.MonthlyInr,
				YearlyInr:  price.YearlyInr,
			}
		}
		input.PlanPricing = pricing
	}
	return input
}

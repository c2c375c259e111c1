package dto

import (
	"github.com/replyflow/replyflow-backend/models"
	"github.com/replyflow/replyflow-backend/utils"
)

type AdminStats struct {
	TotalUsers      int `json:"total_users"`
	PendingPayments int `json:"pending_payments"`
	ActiveCoupons   int `json:"active_coupons"`
	PaidUsers       int `json:"paid_users"`
}

type AdminDashboard struct {
	Users    []User           `json:"users"`
	Payments []PaymentRequest `json:"payments"`
	Coupons  []Coupon         `json:"coupons"`
	Settings PlatformSettings `json:"settings"`
	Stats    AdminStats       `json:"stats"`
}

func AdaptAdminDashboardDto(dashboard models.AdminDashboard) AdminDashboard {
	return AdminDashboard{
		Users:    utils.Map(dashboard.Users, AdaptUserDto),
		Payments: utils.Map(dashboard.Payments, AdaptPaymentRequestDto),
		Coupons:  utils.Map(dashboard.Coupons, AdaptCouponDto),
		Settings: AdaptPlatformSettingsDto(dashboard.Settings),
		Stats: AdminStats{
			TotalUsers:      dashboard.Stats.TotalUsers,
			PendingPayments: dashboard.Stats.PendingPayments,
			ActiveCoupons:   dashboard.Stats.ActiveCoupons,
			PaidUsers:       dashboard.Stats.PaidUsers,
		},
	}
}

type SetUserSuspendedBody struct {
	Suspended *bool `json:"suspended" binding:"required"`
}

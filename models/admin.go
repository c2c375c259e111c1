package models

// AdminDashboard aggregates every back-office collection in one load. Each
// collection degrades to empty when its fetch fails, so a single broken
// query never blanks the whole dashboard.
type AdminDashboard struct {
	Users    []User
	Payments []PaymentRequest
	Coupons  []Coupon
	Settings PlatformSettings
	Stats    AdminStats
}

type AdminStats struct {
	TotalUsers      int
	PendingPayments int
	ActiveCoupons   int
	PaidUsers       int
}

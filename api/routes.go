package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/replyflow/replyflow-backend/usecases"
)

func addRoutes(r *gin.Engine, auth Authentication, uc usecases.Usecases) {
	r.GET("/liveness", handleLivenessProbe(uc))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/token", handlePostToken(uc))
	r.GET("/settings/public", handlePublicSettings(uc))

	// Meta webhook endpoints: GET is the subscription handshake, POST the
	// event deliveries. Both are unauthenticated by nature.
	r.GET("/webhooks/instagram", handleWebhookVerification(uc))
	r.POST("/webhooks/instagram", handleWebhookEvent(uc))

	// Public growth tool tracking, hit from shared pages.
	r.POST("/growth-tools/:growth_tool_id/click", handleTrackGrowthToolClick(uc))
	r.POST("/growth-tools/:growth_tool_id/conversion", handleTrackGrowthToolConversion(uc))

	router := r.Use(auth.Middleware)

	router.POST("/logout", handleLogout(uc))

	// Server-sent change notifications, so the dashboard knows when to
	// re-fetch a collection.
	router.GET("/events", handleChangeStream(uc))

	router.GET("/me", handleGetMe(uc))
	router.PATCH("/me", handlePatchMe(uc))
	router.POST("/me/instagram", handleConnectInstagram(uc))
	router.GET("/me/instagram/media", handleListMedia(uc))
	router.GET("/me/instagram/conversations", handleListConversations(uc))

	router.GET("/automations", handleListAutomations(uc))
	router.POST("/automations", handlePostAutomation(uc))
	router.GET("/automations/:automation_id", handleGetAutomation(uc))
	router.PATCH("/automations/:automation_id", handlePatchAutomation(uc))
	router.DELETE("/automations/:automation_id", handleDeleteAutomation(uc))

	router.GET("/contacts", handleListContacts(uc))
	router.POST("/contacts", handlePostContact(uc))
	router.GET("/contacts/:contact_id", handleGetContact(uc))
	router.PATCH("/contacts/:contact_id", handlePatchContact(uc))
	router.DELETE("/contacts/:contact_id", handleDeleteContact(uc))

	router.GET("/flows", handleListFlows(uc))
	router.POST("/flows", handlePostFlow(uc))
	router.GET("/flows/:flow_id", handleGetFlow(uc))
	router.PATCH("/flows/:flow_id", handlePatchFlow(uc))
	router.DELETE("/flows/:flow_id", handleDeleteFlow(uc))

	router.GET("/sequences", handleListSequences(uc))
	router.POST("/sequences", handlePostSequence(uc))
	router.GET("/sequences/:sequence_id", handleGetSequence(uc))
	router.PATCH("/sequences/:sequence_id", handlePatchSequence(uc))
	router.DELETE("/sequences/:sequence_id", handleDeleteSequence(uc))

	router.GET("/broadcasts", handleListBroadcasts(uc))
	router.POST("/broadcasts", handlePostBroadcast(uc))
	router.GET("/broadcasts/:broadcast_id", handleGetBroadcast(uc))
	router.PATCH("/broadcasts/:broadcast_id", handlePatchBroadcast(uc))
	router.DELETE("/broadcasts/:broadcast_id", handleDeleteBroadcast(uc))

	router.GET("/growth-tools", handleListGrowthTools(uc))
	router.POST("/growth-tools", handlePostGrowthTool(uc))
	router.GET("/growth-tools/:growth_tool_id", handleGetGrowthTool(uc))
	router.PATCH("/growth-tools/:growth_tool_id", handlePatchGrowthTool(uc))
	router.DELETE("/growth-tools/:growth_tool_id", handleDeleteGrowthTool(uc))

	router.GET("/payments", handleListMyPayments(uc))
	router.POST("/payments", handlePostPaymentRequest(uc))

	router.POST("/coupons/apply", handleApplyCoupon(uc))

	// Admin surface. Role enforcement happens in the usecases, so a
	// non-admin session gets a 403 from any of these.
	router.GET("/admin/dashboard", handleAdminDashboard(uc))
	router.GET("/admin/users", handleAdminListUsers(uc))
	router.PATCH("/admin/users/:user_id/suspension", handleAdminSetUserSuspended(uc))
	router.DELETE("/admin/users/:user_id", handleAdminDeleteUser(uc))
	router.GET("/admin/payments", handleListAllPayments(uc))
	router.POST("/admin/payments/:payment_id/approve", handleApprovePayment(uc))
	router.POST("/admin/payments/:payment_id/reject", handleRejectPayment(uc))
	router.GET("/admin/coupons", handleListCoupons(uc))
	router.POST("/admin/coupons", handlePostCoupon(uc))
	router.PATCH("/admin/coupons/:coupon_id", handlePatchCoupon(uc))
	router.DELETE("/admin/coupons/:coupon_id", handleDeleteCoupon(uc))
	router.GET("/admin/settings", handleGetSettings(uc))
	router.PATCH("/admin/settings", handlePatchSettings(uc))
}

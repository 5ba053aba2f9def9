package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, adminMiddleware gin.HandlerFunc) {
	group := g.Group("/reservations")

	// === Public Routes ===
	group.POST("", h.Create)
	group.GET("/:id", h.Get)
	group.GET("/:id/qrcode", h.PaymentQR)
	group.GET("/:id/invoice", h.Invoice)

	// === Admin Routes ===
	admin := group.Group("")
	admin.Use(adminMiddleware)
	{
		admin.GET("", h.List)
		admin.POST("/delete-all", h.DeleteAll)
		admin.PUT("/:id", h.Update)
		admin.POST("/:id/cancel", h.Cancel)
		admin.POST("/:id/paid", h.MarkPaid)
		admin.POST("/:id/deposit-paid", h.MarkDepositPaid)
		admin.POST("/:id/final-payment-paid", h.MarkFinalPaymentPaid)
	}

	g.GET("/calendar/:roomId", h.Calendar)

	sms := g.Group("/admin/sms")
	sms.Use(adminMiddleware)
	sms.POST("/:reservationId", h.SendSMS)
}

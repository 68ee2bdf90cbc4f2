package routes

import (
	"github.com/gin-gonic/gin"
	paymentcontroller "github.com/opalstreet/storefront-api/controllers/payment"
	"gorm.io/gorm"
)

// SetupPaymentRoutes registers the gateway-facing endpoints. The webhook
// is public: the gateway authenticates itself through the posted payload.
func SetupPaymentRoutes(r *gin.Engine, db *gorm.DB) {
	paymentGroup := r.Group("/payment")
	{
		paymentGroup.POST("/webhook", paymentcontroller.WebhookHandler(db))
	}
}

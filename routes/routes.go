package routes

import (
	"github.com/gin-gonic/gin"
	checkoutcontroller "github.com/opalstreet/storefront-api/controllers/checkout"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the Auth, User,
// Admin and Payment route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	// Checkout sessions live for the process lifetime only.
	sessions := checkoutcontroller.NewStore()

	// Public auth routes (no middleware)
	SetupAuthRoutes(r, db)

	// User routes (JWT-protected), including cart and checkout
	SetupUserRoutes(r, db, sessions)

	// Admin routes (API-key-protected) plus the cookie route guard pages
	SetupAdminRoutes(r, db)

	// Payment gateway webhook (public; the gateway calls it)
	SetupPaymentRoutes(r, db)
}

package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	admincontroller "github.com/opalstreet/storefront-api/controllers/admin"
	cartcontroller "github.com/opalstreet/storefront-api/controllers/cart"
	ordercontroller "github.com/opalstreet/storefront-api/controllers/order"
	productcontroller "github.com/opalstreet/storefront-api/controllers/product"
	usercontroller "github.com/opalstreet/storefront-api/controllers/user"
	"github.com/opalstreet/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. The API surface
// requires the X-API-KEY middleware; the page shell endpoints go through
// the cookie route guard instead.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	// Page-shell navigation, guarded by the auth cookie.
	pages := r.Group("/", middleware.AdminRouteGuard())
	{
		pages.GET("/admin", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"page": "dashboard"})
		})
		pages.GET("/admin/login", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"page": "login"})
		})
		pages.GET("/admin/signup", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"page": "signup"})
		})
	}

	adminGroup := r.Group("/admin")
	adminGroup.Use(middleware.ValidateAPIKey)
	{
		// ─────────── Admin & User Management ───────────
		adminGroup.GET("/admins", admincontroller.GetAllAdmins(db))
		adminGroup.GET("/users", usercontroller.GetAllUsers(db))

		// ─────────── Product Management ───────────
		productAdmin := adminGroup.Group("/products")
		{
			productAdmin.POST("", productcontroller.CreateProduct(db))
			productAdmin.PUT("/:id", productcontroller.UpdateProduct(db))
			productAdmin.GET("", productcontroller.GetProducts(db))
			productAdmin.DELETE("/:id", productcontroller.DeleteProduct(db))
			productAdmin.GET("/export-excel", productcontroller.ExportProductsToExcel(db))
		}

		// ─────────── Dashboard Stats ───────────
		stats := adminGroup.Group("/stats")
		{
			stats.GET("/summary", admincontroller.StatsSummary(db))
			stats.GET("/revenue", admincontroller.RevenueSeries(db))
			stats.GET("/orders", admincontroller.OrdersSeries(db))
		}

		// ─────────── Orders ───────────
		orders := adminGroup.Group("/orders")
		{
			orders.GET("", ordercontroller.GetAllOrdersHandler(db))
			orders.GET("/ws", ordercontroller.OrderWebSocketHandler)
			orders.PUT("/:id/status", ordercontroller.UpdateOrderStatusHandler(db))
			orders.PUT("/:id/payment-status", ordercontroller.UpdatePaymentStatusHandler(db))
		}

		// ─────────── User Carts ───────────
		adminGroup.GET("/user-cart/:user_id", cartcontroller.GetAdminUserCart(db))
	}
}

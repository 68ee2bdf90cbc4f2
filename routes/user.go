package routes

import (
	"github.com/gin-gonic/gin"
	cartcontroller "github.com/opalstreet/storefront-api/controllers/cart"
	checkoutcontroller "github.com/opalstreet/storefront-api/controllers/checkout"
	ordercontroller "github.com/opalstreet/storefront-api/controllers/order"
	paymentcontroller "github.com/opalstreet/storefront-api/controllers/payment"
	productcontroller "github.com/opalstreet/storefront-api/controllers/product"
	usercontroller "github.com/opalstreet/storefront-api/controllers/user"
	"github.com/opalstreet/storefront-api/middleware"
	"gorm.io/gorm"
)

// SetupUserRoutes registers all "/user/*" endpoints. Requires JWT middleware.
func SetupUserRoutes(r *gin.Engine, db *gorm.DB, sessions *checkoutcontroller.Store) {
	userGroup := r.Group("/user")
	userGroup.Use(middleware.ValidateToken)
	{
		// ──────────────── User Profile ────────────────
		userGroup.GET("/", usercontroller.GetUser(db))
		userGroup.PUT("/", usercontroller.UpdateUser(db))

		// ──────────────── Shopping Cart ────────────────
		cartGroup := userGroup.Group("/cart")
		{
			cartGroup.GET("/", cartcontroller.GetUserCart(db))
			cartGroup.POST("/", cartcontroller.UpdateCartItem(db))
			cartGroup.DELETE("/:product_id", cartcontroller.DeleteCartItem(db))
			cartGroup.DELETE("/", cartcontroller.ClearUserCart(db))
		}

		// ──────────────── Checkout Wizard ────────────────
		checkoutGroup := userGroup.Group("/checkout")
		{
			checkoutGroup.POST("", checkoutcontroller.StartCheckout(db, sessions))
			checkoutGroup.GET("/:sid", checkoutcontroller.GetCheckout(sessions))
			checkoutGroup.POST("/:sid/shipping", checkoutcontroller.SubmitShipping(sessions))
			checkoutGroup.POST("/:sid/back", checkoutcontroller.Back(sessions))
			checkoutGroup.POST("/:sid/payment", checkoutcontroller.CompletePayment(sessions))
			checkoutGroup.POST("/:sid/place-order", checkoutcontroller.PlaceOrder(db, sessions))
		}

		// ──────────────── Payment Intent ────────────────
		userGroup.POST("/payment/intent", paymentcontroller.CreateIntentHandler(db))

		// ──────────────── Browse Products ────────────────
		userGroup.GET("/products", productcontroller.GetProducts(db))
		userGroup.GET("/products/:id", productcontroller.GetProductByID(db))
		userGroup.GET("/categories", productcontroller.GetCategories(db))

		// ──────────────── Order History ────────────────
		userGroup.GET("/orders", ordercontroller.GetUserOrdersHandler(db))
	}
}

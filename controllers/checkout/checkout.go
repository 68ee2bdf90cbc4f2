package checkoutcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opalstreet/storefront-api/checkout"
	cartcontroller "github.com/opalstreet/storefront-api/controllers/cart"
	ordercontroller "github.com/opalstreet/storefront-api/controllers/order"
	"github.com/opalstreet/storefront-api/models"
	"gorm.io/gorm"
)

// sessionState renders the wizard for a response. Callers hold the
// session lock.
func sessionState(sess *Session) gin.H {
	w := sess.Wizard
	return gin.H{
		"session_id":    sess.ID,
		"step":          int(w.Step),
		"step_name":     w.Step.String(),
		"items":         w.Items,
		"totals":        w.Totals(),
		"field_errors":  w.FieldErrors,
		"payment_error": w.PaymentError,
		"placed":        w.Placed,
	}
}

func currentUser(c *gin.Context) (string, bool) {
	userIDVal, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return "", false
	}
	return userIDVal.(string), true
}

func lookup(c *gin.Context, store *Store) (*Session, bool) {
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}
	sess, ok := store.Get(c.Param("sid"), userID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Checkout session not found"})
		return nil, false
	}
	return sess, true
}

// StartCheckout opens a wizard session seeded from the user's cart.
//
// POST /user/checkout
func StartCheckout(db *gorm.DB, store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := currentUser(c)
		if !ok {
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		sess := store.Create(userID, cartcontroller.LineItems(cart.Items))
		sess.Lock()
		defer sess.Unlock()
		c.JSON(http.StatusCreated, sessionState(sess))
	}
}

// GetCheckout returns the wizard state and derived totals.
//
// GET /user/checkout/:sid
func GetCheckout(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := lookup(c, store)
		if !ok {
			return
		}
		sess.Lock()
		defer sess.Unlock()
		c.JSON(http.StatusOK, sessionState(sess))
	}
}

// SubmitShipping validates the address form; on success the wizard moves
// to the payment step, otherwise field-level violations come back and the
// step stays put.
//
// POST /user/checkout/:sid/shipping
func SubmitShipping(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := lookup(c, store)
		if !ok {
			return
		}
		sess.Lock()
		defer sess.Unlock()

		var form checkout.ShippingForm
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if violations := sess.Wizard.SubmitShipping(form); violations != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"field_errors": violations})
			return
		}
		c.JSON(http.StatusOK, sessionState(sess))
	}
}

// Back regresses the wizard one step; at the first step it is a no-op.
//
// POST /user/checkout/:sid/back
func Back(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := lookup(c, store)
		if !ok {
			return
		}
		sess.Lock()
		defer sess.Unlock()
		sess.Wizard.Regress()
		c.JSON(http.StatusOK, sessionState(sess))
	}
}

type PaymentResultInput struct {
	PaymentMethod string `json:"payment_method"`
	Error         string `json:"error"`
}

// CompletePayment records the terminal outcome of the payment widget:
// either a payment-method handle or a displayable error.
//
// POST /user/checkout/:sid/payment
func CompletePayment(store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := lookup(c, store)
		if !ok {
			return
		}
		sess.Lock()
		defer sess.Unlock()

		var input PaymentResultInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if input.PaymentMethod == "" {
			sess.Wizard.FailPayment(input.Error)
			c.JSON(http.StatusOK, sessionState(sess))
			return
		}

		if err := sess.Wizard.CompletePayment(input.PaymentMethod); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, sessionState(sess))
	}
}

// PlaceOrder is the terminal wizard action: it persists the order, clears
// the cart and drops the session.
//
// POST /user/checkout/:sid/place-order
func PlaceOrder(db *gorm.DB, store *Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, ok := lookup(c, store)
		if !ok {
			return
		}
		sess.Lock()
		defer sess.Unlock()

		if err := sess.Wizard.PlaceOrder(); err != nil {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}

		order, err := ordercontroller.PlaceOrder(db, sess.UserID, sess.Wizard)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		store.Delete(sess.ID)
		c.JSON(http.StatusCreated, gin.H{"message": "Order placed successfully", "order": order})
	}
}

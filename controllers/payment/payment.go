package paymentcontroller

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/opalstreet/storefront-api/checkout"
	cartcontroller "github.com/opalstreet/storefront-api/controllers/cart"
	ordercontroller "github.com/opalstreet/storefront-api/controllers/order"
	"github.com/opalstreet/storefront-api/models"
	"gorm.io/gorm"
)

// IntentResponse is the gateway's reply to a create-intent call.
type IntentResponse struct {
	ClientSecret string `json:"client_secret"`
	Error        *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// getPaymentConfig reads the gateway endpoint and key; sandbox/dev mode
// flips the livemode flag rather than the endpoint.
func getPaymentConfig() (apiURL, secretKey string, livemode bool, err error) {
	apiURL = os.Getenv("PAYMENT_API_URL")
	secretKey = os.Getenv("PAYMENT_SECRET_KEY")
	livemode = true

	mode := os.Getenv("PAYMENT_MODE")
	if mode == "sandbox" || mode == "dev" {
		livemode = false
	}

	if apiURL == "" || secretKey == "" {
		return "", "", false, fmt.Errorf("payment configuration missing")
	}
	return apiURL, secretKey, livemode, nil
}

// CreateIntent asks the gateway for a payment intent and returns the client
// secret the widget submits a payment method against.
func CreateIntent(amountCents int64, currency string) (string, error) {
	apiURL, secretKey, livemode, err := getPaymentConfig()
	if err != nil {
		return "", err
	}

	payload := map[string]interface{}{
		"amount":   amountCents,
		"currency": currency,
		"livemode": livemode,
	}

	jsonData, _ := json.Marshal(payload)

	req, _ := http.NewRequest("POST", apiURL+"/v1/payment_intents", bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Authorization", "Bearer "+secretKey)

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to reach payment gateway: %v", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("payment gateway error (%d): %s", resp.StatusCode, string(body))
	}

	var intentResp IntentResponse
	if err := json.Unmarshal(body, &intentResp); err != nil {
		return "", fmt.Errorf("failed to parse gateway response: %v", err)
	}

	if intentResp.Error != nil {
		return "", fmt.Errorf("payment gateway error: %s", intentResp.Error.Message)
	}
	if intentResp.ClientSecret == "" {
		return "", fmt.Errorf("gateway returned empty client secret")
	}

	return intentResp.ClientSecret, nil
}

// amountInCents converts a dollar total to the integer cents the gateway
// expects. Rounding matches the 2-decimal amount the shopper is shown;
// truncation would bill one cent short whenever the float sits below it.
func amountInCents(total float64) int64 {
	return int64(math.Round(total * 100))
}

// CreateIntentHandler creates an intent for the caller's current cart
// total. Amount is derived server-side; the client never names its price.
//
// POST /user/payment/intent
func CreateIntentHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userIDVal, exists := c.Get("user_id")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input struct {
			Currency string `json:"currency" binding:"required,len=3"`
		}
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		var cart models.Cart
		if err := db.Preload("Items").Where("user_id = ?", userIDVal.(string)).First(&cart).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch cart"})
			return
		}
		if len(cart.Items) == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cart is empty"})
			return
		}

		totals := checkout.Totals(cartcontroller.LineItems(cart.Items))
		amountCents := amountInCents(totals.Total)

		clientSecret, err := CreateIntent(amountCents, input.Currency)
		if err != nil {
			c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"client_secret": clientSecret})
	}
}

// WebhookHandler receives the gateway's terminal outcome for an intent and
// marks the matching order paid.
//
// POST /payment/webhook
func WebhookHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := c.Request.ParseForm(); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to parse form"})
			return
		}

		paymentRef := c.PostForm("payment_method")
		status := c.PostForm("status") // "succeeded" on approval

		if paymentRef == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing payment_method"})
			return
		}

		if status != "succeeded" {
			c.JSON(http.StatusOK, gin.H{"message": "Payment not successful"})
			return
		}

		if err := ordercontroller.MarkOrderPaidByRef(db, paymentRef); err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusOK, gin.H{"message": "No order for payment reference"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update order", "details": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "Order marked paid"})
	}
}

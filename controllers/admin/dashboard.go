package admincontroller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/opalstreet/storefront-api/models"
	"gorm.io/gorm"
)

type RevenuePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

type OrdersPoint struct {
	Month  string `json:"month"`
	Orders int    `json:"orders"`
}

// Placeholder series so a fresh install still renders charts.
var (
	mockRevenue = []RevenuePoint{
		{"Jan", 4000}, {"Feb", 3000}, {"Mar", 5000},
		{"Apr", 4500}, {"May", 6000}, {"Jun", 5500},
	}
	mockOrders = []OrdersPoint{
		{"Jan", 240}, {"Feb", 139}, {"Mar", 380},
		{"Apr", 290}, {"May", 430}, {"Jun", 350},
	}
)

const seriesMonths = 6

// lastMonths returns the trailing month starts, oldest first.
func lastMonths(now time.Time, n int) []time.Time {
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	months := make([]time.Time, n)
	for i := 0; i < n; i++ {
		months[n-1-i] = first.AddDate(0, -i, 0)
	}
	return months
}

// RevenueSeries buckets paid-order revenue by month for the dashboard
// line chart.
//
// GET /admin/stats/revenue
func RevenueSeries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.
			Where("payment_status = ?", models.PaymentStatusPaid).
			Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		if len(orders) == 0 {
			c.JSON(http.StatusOK, gin.H{"series": mockRevenue, "mock": true})
			return
		}

		months := lastMonths(time.Now(), seriesMonths)
		series := make([]RevenuePoint, len(months))
		for i, m := range months {
			series[i] = RevenuePoint{Month: m.Format("Jan")}
		}
		for _, order := range orders {
			for i, m := range months {
				if order.CreatedAt.Year() == m.Year() && order.CreatedAt.Month() == m.Month() {
					series[i].Revenue += order.TotalAmount
					break
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{"series": series, "mock": false})
	}
}

// OrdersSeries buckets order counts by month for the dashboard bar chart.
//
// GET /admin/stats/orders
func OrdersSeries(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var orders []models.Order
		if err := db.Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}

		if len(orders) == 0 {
			c.JSON(http.StatusOK, gin.H{"series": mockOrders, "mock": true})
			return
		}

		months := lastMonths(time.Now(), seriesMonths)
		series := make([]OrdersPoint, len(months))
		for i, m := range months {
			series[i] = OrdersPoint{Month: m.Format("Jan")}
		}
		for _, order := range orders {
			for i, m := range months {
				if order.CreatedAt.Year() == m.Year() && order.CreatedAt.Month() == m.Month() {
					series[i].Orders++
					break
				}
			}
		}

		c.JSON(http.StatusOK, gin.H{"series": series, "mock": false})
	}
}

// StatsSummary backs the dashboard cards: revenue, order count, catalog
// size and how many products are running low.
//
// GET /admin/stats/summary
func StatsSummary(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var totalRevenue float64
		if err := db.Model(&models.Order{}).
			Where("payment_status = ?", models.PaymentStatusPaid).
			Select("COALESCE(SUM(total_amount), 0)").
			Scan(&totalRevenue).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute revenue"})
			return
		}

		var totalOrders int64
		if err := db.Model(&models.Order{}).Count(&totalOrders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count orders"})
			return
		}

		var totalProducts int64
		if err := db.Model(&models.Product{}).Count(&totalProducts).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count products"})
			return
		}

		var lowStock int64
		if err := db.Model(&models.Product{}).
			Where("stock < ?", models.LowStockThreshold).
			Count(&lowStock).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count low-stock products"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"total_revenue":  totalRevenue,
			"total_orders":   totalOrders,
			"total_products": totalProducts,
			"low_stock":      lowStock,
		})
	}
}

// GetAllAdmins lists the admin accounts.
//
// GET /admin/admins
func GetAllAdmins(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var admins []models.Admin
		if err := db.Find(&admins).Error; err != nil {
			log.Println("❌ Failed to fetch admins:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch admins"})
			return
		}
		c.JSON(http.StatusOK, admins)
	}
}

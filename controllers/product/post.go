package productcontroller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/opalstreet/storefront-api/models"
	"gorm.io/gorm"
)

type ProductInput struct {
	Name        string  `json:"name" binding:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gte=0"`
	Category    string  `json:"category" binding:"required"`
	Rating      float64 `json:"rating" binding:"gte=0,lte=5"`
	Stock       *int    `json:"stock" binding:"required,gte=0"`
	Image       string  `json:"image"`
}

// CreateProduct creates a new catalog product from the admin form.
//
// POST /admin/products
func CreateProduct(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ProductInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		product := models.Product{
			Name:        input.Name,
			Description: input.Description,
			Price:       input.Price,
			Category:    input.Category,
			Rating:      input.Rating,
			Stock:       *input.Stock,
			Image:       input.Image,
		}

		if err := db.Create(&product).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}

		c.JSON(http.StatusCreated, product.WithStatus())
	}
}

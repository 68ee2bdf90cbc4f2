package productcontroller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/opalstreet/storefront-api/catalog"
	"github.com/opalstreet/storefront-api/models"
	"gorm.io/gorm"
)

const defaultPageSize = 10

// GetProducts lists catalog products with the storefront filters applied:
// search, category, price_range (bucket index), min_rating, plus optional
// page/page_size for the admin table.
//
// GET /user/products?search=&category=&price_range=&min_rating=&page=&page_size=
func GetProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		criteria := catalog.Criteria{
			Search:   c.Query("search"),
			Category: c.DefaultQuery("category", catalog.CategoryAll),
		}

		if s := c.Query("price_range"); s != "" {
			idx, err := strconv.Atoi(s)
			if err != nil || idx < 0 || idx >= len(catalog.PriceRanges) {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price_range"})
				return
			}
			criteria.PriceRange = &idx
		}
		if s := c.Query("min_rating"); s != "" {
			r, err := strconv.Atoi(s)
			if err != nil || r < 0 || r > 5 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_rating"})
				return
			}
			criteria.MinRating = &r
		}

		pageSize := defaultPageSize
		if s := c.Query("page_size"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_size"})
				return
			}
			pageSize = n
		}
		page := 1
		if s := c.Query("page"); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page"})
				return
			}
			page = n
		}

		var products []models.Product
		if err := db.Order("id ASC").Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}

		filtered := catalog.Filter(products, criteria)
		page = catalog.ClampPage(page, len(filtered), pageSize)
		pageItems := catalog.Paginate(filtered, pageSize, page)

		views := make([]models.ProductView, 0, len(pageItems))
		for _, p := range pageItems {
			views = append(views, p.WithStatus())
		}

		c.JSON(http.StatusOK, gin.H{
			"products":    views,
			"page":        page,
			"total":       len(filtered),
			"total_pages": catalog.TotalPages(len(filtered), pageSize),
		})
	}
}

// GetCategories returns the filterable category list, "All" first.
//
// GET /user/categories
func GetCategories(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var stored []string
		if err := db.Model(&models.Product{}).
			Distinct("category").
			Order("category ASC").
			Pluck("category", &stored).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}
		if len(stored) == 0 {
			stored = catalog.Categories[1:]
		}
		c.JSON(http.StatusOK, gin.H{"categories": append([]string{catalog.CategoryAll}, stored...)})
	}
}

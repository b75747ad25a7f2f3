package catalogControllers

import (
	"net/http"
	"strings"

	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Search matches a case-insensitive substring across watch name, brand name,
// description and category name, OR-combined. No query returns the whole
// active catalog.
// GET /search/?q=
func Search(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := c.Query("q")

		watches := db.Model(&models.Watch{}).
			Preload("Brand").Preload("Category").
			Where("watches.is_active = ?", true)

		if query != "" {
			pattern := "%" + strings.ToLower(query) + "%"
			watches = watches.
				Joins("JOIN brands ON brands.id = watches.brand_id").
				Joins("LEFT JOIN categories ON categories.id = watches.category_id").
				Where(`LOWER(watches.name) LIKE ? OR LOWER(brands.name) LIKE ?
					OR LOWER(watches.description) LIKE ? OR LOWER(categories.name) LIKE ?`,
					pattern, pattern, pattern, pattern)
		}

		results := []models.Watch{}
		if err := watches.Order("watches.created_at DESC").Find(&results).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Search failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"query":   query,
			"watches": results,
			"count":   len(results),
		})
	}
}

package catalogControllers

import (
	"net/http"

	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// GET /
func Home(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		featured := []models.Watch{}
		newArrivals := []models.Watch{}
		bestsellers := []models.Watch{}
		brands := []models.Brand{}
		categories := []models.Category{}

		base := func() *gorm.DB {
			return db.Preload("Brand").Where("is_active = ?", true).Limit(8)
		}

		if err := base().Where("is_featured = ?", true).Find(&featured).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watches"})
			return
		}
		if err := base().Where("is_new_arrival = ?", true).Find(&newArrivals).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watches"})
			return
		}
		if err := base().Where("is_bestseller = ?", true).Find(&bestsellers).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watches"})
			return
		}
		if err := db.Order("name").Limit(6).Find(&brands).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch brands"})
			return
		}
		if err := db.Order("name").Find(&categories).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch categories"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"featured":     featured,
			"new_arrivals": newArrivals,
			"bestsellers":  bestsellers,
			"brands":       brands,
			"categories":   categories,
		})
	}
}

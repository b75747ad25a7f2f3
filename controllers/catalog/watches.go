package catalogControllers

import (
	"net/http"
	"strconv"

	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// ListWatches serves the filterable, sortable catalog.
// GET /watches/?brand=&category=&min_price=&max_price=&sort=
func ListWatches(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		query := db.Model(&models.Watch{}).
			Preload("Brand").Preload("Category").
			Where("watches.is_active = ?", true)

		if brandSlug := c.Query("brand"); brandSlug != "" {
			query = query.
				Joins("JOIN brands ON brands.id = watches.brand_id").
				Where("brands.slug = ?", brandSlug)
		}
		if categorySlug := c.Query("category"); categorySlug != "" {
			query = query.
				Joins("JOIN categories ON categories.id = watches.category_id").
				Where("categories.slug = ?", categorySlug)
		}
		if minPrice := c.Query("min_price"); minPrice != "" {
			if mp, err := strconv.ParseFloat(minPrice, 64); err == nil {
				query = query.Where("watches.price >= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid min_price"})
				return
			}
		}
		if maxPrice := c.Query("max_price"); maxPrice != "" {
			if mp, err := strconv.ParseFloat(maxPrice, 64); err == nil {
				query = query.Where("watches.price <= ?", mp)
			} else {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_price"})
				return
			}
		}

		sort := c.DefaultQuery("sort", "newest")
		switch sort {
		case "price_low":
			query = query.Order("watches.price ASC")
		case "price_high":
			query = query.Order("watches.price DESC")
		case "name":
			query = query.Order("watches.name ASC")
		case "rating":
			// COALESCE keeps never-reviewed watches (NULL average) at the
			// bottom on both postgres and sqlite.
			query = query.
				Joins("LEFT JOIN reviews ON reviews.watch_id = watches.id").
				Group("watches.id").
				Order("COALESCE(AVG(reviews.rating), 0) DESC")
		default:
			sort = "newest"
			query = query.Order("watches.created_at DESC")
		}

		watches := []models.Watch{}
		if err := query.Find(&watches).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watches"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"watches":      watches,
			"count":        len(watches),
			"current_sort": sort,
		})
	}
}

// WatchDetail returns one active watch with related items and its reviews.
// GET /watches/:slug/
func WatchDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		slug := c.Param("slug")

		var watch models.Watch
		err := db.Preload("Brand").Preload("Category").
			Where("slug = ? AND is_active = ?", slug, true).
			First(&watch).Error
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Watch not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watch"})
			}
			return
		}

		related := []models.Watch{}
		db.Preload("Brand").
			Where("brand_id = ? AND is_active = ? AND id <> ?", watch.BrandID, true, watch.ID).
			Limit(4).Find(&related)

		reviews := []models.Review{}
		db.Preload("User").
			Where("watch_id = ?", watch.ID).
			Order("created_at DESC").Limit(10).
			Find(&reviews)

		userReviewed := false
		if userID, ok := middleware.UserID(c); ok {
			var n int64
			db.Model(&models.Review{}).
				Where("watch_id = ? AND user_id = ?", watch.ID, userID).
				Count(&n)
			userReviewed = n > 0
		}

		c.JSON(http.StatusOK, gin.H{
			"watch":               watch,
			"in_stock":            watch.InStock(),
			"discount_percentage": watch.DiscountPercentage(),
			"avg_rating":          watch.AvgRating(db),
			"review_count":        watch.ReviewCount(db),
			"related":             related,
			"reviews":             reviews,
			"user_reviewed":       userReviewed,
		})
	}
}

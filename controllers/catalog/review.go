package catalogControllers

import (
	"net/http"

	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type reviewInput struct {
	Rating  *int   `json:"rating" binding:"omitempty,min=1,max=5"`
	Title   string `json:"title"`
	Comment string `json:"comment"`
}

// AddReview creates one review per (watch, user); a second submission is
// rejected, the first stays.
// POST /watches/:slug/review/
func AddReview(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var watch models.Watch
		if err := db.Where("slug = ?", c.Param("slug")).First(&watch).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				c.JSON(http.StatusNotFound, gin.H{"error": "Watch not found"})
			} else {
				c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch watch"})
			}
			return
		}

		var existing int64
		db.Model(&models.Review{}).
			Where("watch_id = ? AND user_id = ?", watch.ID, userID).
			Count(&existing)
		if existing > 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this watch"})
			return
		}

		var input reviewInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		rating := 5
		if input.Rating != nil {
			rating = *input.Rating
		}

		review := models.Review{
			WatchID: watch.ID,
			UserID:  userID,
			Rating:  rating,
			Title:   input.Title,
			Comment: input.Comment,
		}
		if err := db.Create(&review).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "You have already reviewed this watch"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"success": true, "message": "Review added successfully!"})
	}
}

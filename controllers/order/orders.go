package orderControllers

import (
	"net/http"

	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/KetkiGokakkar/LuxuryWatches/models"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// userOrder loads an order by number scoped to the requesting user. Another
// user's order number reads as not found.
func userOrder(c *gin.Context, db *gorm.DB) (*models.Order, bool) {
	userID, _ := middleware.UserID(c)

	var order models.Order
	err := db.Preload("Items").
		Where("order_number = ? AND user_id = ?", c.Param("order_number"), userID).
		First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		}
		return nil, false
	}
	return &order, true
}

// GET /cart/order/:order_number/confirm/
func OrderConfirmation(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := userOrder(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message": "Order placed successfully!",
			"order":   order,
		})
	}
}

// GET /cart/orders/
func OrderHistory(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, _ := middleware.UserID(c)

		orders := []models.Order{}
		err := db.Preload("Items").
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Find(&orders).Error
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"orders": orders})
	}
}

// GET /cart/order/:order_number/
func OrderDetail(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		order, ok := userOrder(c, db)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, order)
	}
}

package routes

import (
	cartControllers "github.com/KetkiGokakkar/LuxuryWatches/controllers/cart"
	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCartRoutes registers the cart endpoints. OptionalAuth lets both
// logged-in users and anonymous sessions resolve a cart.
func SetupCartRoutes(r *gin.Engine, db *gorm.DB) {
	cart := r.Group("/cart")
	cart.Use(middleware.OptionalAuth)
	{
		cart.GET("/", cartControllers.GetCart(db))
		cart.POST("/add/:watch_id/", cartControllers.AddToCart(db))
		cart.POST("/update/:item_id/", cartControllers.UpdateCartItem(db))
		cart.POST("/remove/:item_id/", cartControllers.RemoveCartItem(db))
	}
}

package routes

import (
	orderControllers "github.com/KetkiGokakkar/LuxuryWatches/controllers/order"
	"github.com/KetkiGokakkar/LuxuryWatches/events"
	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupOrderRoutes registers checkout and order retrieval under "/cart".
// All of these require a logged-in user.
func SetupOrderRoutes(r *gin.Engine, db *gorm.DB, publisher *events.Publisher) {
	orders := r.Group("/cart")
	orders.Use(middleware.RequireAuth)
	{
		orders.GET("/checkout/", orderControllers.Checkout(db))
		orders.POST("/checkout/", orderControllers.PlaceOrder(db, publisher))

		orders.GET("/orders/", orderControllers.OrderHistory(db))
		orders.GET("/order/:order_number/", orderControllers.OrderDetail(db))
		orders.GET("/order/:order_number/confirm/", orderControllers.OrderConfirmation(db))
	}
}

package routes

import (
	"github.com/KetkiGokakkar/LuxuryWatches/events"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes is the single entry-point that wires up the catalog, account,
// cart, order, and admin route groups.
func SetupRoutes(r *gin.Engine, db *gorm.DB, publisher *events.Publisher) {
	// Public catalog (browsing works for anonymous visitors too)
	SetupCatalogRoutes(r, db)

	// Account routes (registration/login public, the rest JWT-protected)
	SetupAccountRoutes(r, db)

	// Cart routes (user token or anonymous session cookie)
	SetupCartRoutes(r, db)

	// Checkout and order history (JWT-protected)
	SetupOrderRoutes(r, db, publisher)

	// Admin routes (API-key-protected)
	SetupAdminRoutes(r, db)
}

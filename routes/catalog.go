package routes

import (
	catalogControllers "github.com/KetkiGokakkar/LuxuryWatches/controllers/catalog"
	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupCatalogRoutes registers the public storefront endpoints.
func SetupCatalogRoutes(r *gin.Engine, db *gorm.DB) {
	r.GET("/", catalogControllers.Home(db))
	r.GET("/search/", catalogControllers.Search(db))

	watches := r.Group("/watches")
	watches.Use(middleware.OptionalAuth)
	{
		watches.GET("/", catalogControllers.ListWatches(db))
		watches.GET("/:slug/", catalogControllers.WatchDetail(db))
		watches.POST("/:slug/review/", middleware.RequireAuth, catalogControllers.AddReview(db))
	}
}

package routes

import (
	adminControllers "github.com/KetkiGokakkar/LuxuryWatches/controllers/admin"
	orderControllers "github.com/KetkiGokakkar/LuxuryWatches/controllers/order"
	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAdminRoutes registers all "/admin/*" endpoints. Requires API-key
// middleware.
func SetupAdminRoutes(r *gin.Engine, db *gorm.DB) {
	admin := r.Group("/admin")
	admin.Use(middleware.ValidateAPIKey)
	{
		watches := admin.Group("/watches")
		{
			watches.GET("", adminControllers.ListWatches(db))
			watches.POST("", adminControllers.CreateWatch(db))
			watches.PUT("/:id", adminControllers.UpdateWatch(db))
			watches.DELETE("/:id", adminControllers.DeleteWatch(db))
			watches.GET("/export-excel", adminControllers.ExportWatchesToExcel(db))
			watches.POST("/import-excel", adminControllers.ImportWatchesFromExcel(db))
		}

		brands := admin.Group("/brands")
		{
			brands.GET("", adminControllers.ListBrands(db))
			brands.POST("", adminControllers.CreateBrand(db))
			brands.PUT("/:id", adminControllers.UpdateBrand(db))
			brands.DELETE("/:id", adminControllers.DeleteBrand(db))
		}

		categories := admin.Group("/categories")
		{
			categories.GET("", adminControllers.ListCategories(db))
			categories.POST("", adminControllers.CreateCategory(db))
			categories.PUT("/:id", adminControllers.UpdateCategory(db))
			categories.DELETE("/:id", adminControllers.DeleteCategory(db))
		}

		orders := admin.Group("/orders")
		{
			orders.GET("", orderControllers.ListAllOrders(db))
			orders.PUT("/:order_number/status", orderControllers.UpdateOrderStatus(db))
		}
	}
}

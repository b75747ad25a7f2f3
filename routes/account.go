package routes

import (
	accountControllers "github.com/KetkiGokakkar/LuxuryWatches/controllers/account"
	"github.com/KetkiGokakkar/LuxuryWatches/middleware"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupAccountRoutes registers all "/accounts/*" endpoints.
func SetupAccountRoutes(r *gin.Engine, db *gorm.DB) {
	accounts := r.Group("/accounts")
	{
		accounts.POST("/register/", accountControllers.Register(db))
		accounts.POST("/login/", accountControllers.Login(db))

		authed := accounts.Group("")
		authed.Use(middleware.RequireAuth)
		{
			authed.POST("/logout/", accountControllers.Logout())
			authed.GET("/profile/", accountControllers.GetProfile(db))
			authed.PUT("/profile/", accountControllers.UpdateProfile(db))

			authed.POST("/address/add/", accountControllers.AddAddress(db))
			authed.PUT("/address/:id/edit/", accountControllers.EditAddress(db))
			authed.POST("/address/:id/delete/", accountControllers.DeleteAddress(db))
		}
	}
}

package routes

import (
	"github.com/Martin-Valle/booking-mvc/controllers/admin"
	"github.com/Martin-Valle/booking-mvc/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAdminRoutes(r *gin.Engine, ac *admin.AdminController) {
	group := r.Group("/admin", middleware.JWTAuthMiddleware(), middleware.AdminOnlyMiddleware())
	{
		group.GET("/users", ac.UsersList)
		group.GET("/users/:id/orders", ac.UserOrders)
		group.DELETE("/users/:id", ac.DeleteUser)
		group.GET("/config", ac.GetConfig)
		group.PUT("/config", ac.UpdateConfig)
	}
}

package routes

import (
	"github.com/Martin-Valle/booking-mvc/controllers"
	"github.com/Martin-Valle/booking-mvc/middleware"

	"github.com/gin-gonic/gin"
)

func SetupOrderRoutes(r *gin.Engine, oc *controllers.OrderController) {
	orders := r.Group("/orders")
	{
		// Требование входа при оформлении решает конфиг, а не роутер
		orders.POST("/checkout", middleware.OptionalJWTMiddleware(), oc.Checkout)
		orders.GET("", middleware.JWTAuthMiddleware(), oc.MyOrders)
		orders.GET("/:code", middleware.OptionalJWTMiddleware(), oc.GetByCode)
	}
}

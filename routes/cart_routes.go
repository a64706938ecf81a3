package routes

import (
	"github.com/Martin-Valle/booking-mvc/controllers"
	"github.com/Martin-Valle/booking-mvc/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCartRoutes(r *gin.Engine, cc *controllers.CartController) {
	// Корзина доступна и гостям: владелец - пользователь или X-Session-ID
	cart := r.Group("/cart", middleware.OptionalJWTMiddleware())
	{
		cart.GET("", cc.Get)
		cart.POST("/items", cc.Add)
		cart.POST("/items/:index/increment", cc.Increment)
		cart.POST("/items/:index/decrement", cc.Decrement)
		cart.DELETE("/items/:index", cc.Remove)
		cart.DELETE("", cc.Clear)
	}
}

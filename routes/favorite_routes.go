package routes

import (
	"github.com/Martin-Valle/booking-mvc/controllers"
	"github.com/Martin-Valle/booking-mvc/middleware"

	"github.com/gin-gonic/gin"
)

func SetupFavoriteRoutes(r *gin.Engine, fc *controllers.FavoriteController) {
	favorites := r.Group("/favorites", middleware.JWTAuthMiddleware())
	{
		favorites.POST("", fc.Create)
		favorites.GET("", fc.List)
		favorites.DELETE("/:id", fc.Delete)
	}
}

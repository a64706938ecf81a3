package routes

import (
	"github.com/Martin-Valle/booking-mvc/controllers"
	"github.com/Martin-Valle/booking-mvc/middleware"

	"github.com/gin-gonic/gin"
)

func SetupAuthRoutes(r *gin.Engine, uc *controllers.UserController) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", uc.Register)
		auth.POST("/login", uc.Login)
		auth.GET("/google", uc.GoogleLogin)
		auth.GET("/google/callback", uc.GoogleCallback)
		auth.POST("/logout", uc.Logout)
		auth.GET("/me", middleware.JWTAuthMiddleware(), uc.Me)
	}
}

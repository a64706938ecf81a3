package routes

import (
	"github.com/Martin-Valle/booking-mvc/controllers"
	"github.com/Martin-Valle/booking-mvc/middleware"

	"github.com/gin-gonic/gin"
)

func SetupCatalogRoutes(r *gin.Engine, sc *controllers.SearchController) {
	// Поиск открыт всем; у авторизованных дополнительно пишется история
	r.GET("/search", middleware.OptionalJWTMiddleware(), sc.Search)
	r.GET("/search/history", middleware.JWTAuthMiddleware(), sc.History)
	r.GET("/catalog/:kind/:id", sc.GetItem)
}

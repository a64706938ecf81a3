package routes

import (
	"os"

	"github.com/Martin-Valle/booking-mvc/controllers"
	"github.com/Martin-Valle/booking-mvc/controllers/admin"
	"github.com/Martin-Valle/booking-mvc/middleware"
	"github.com/Martin-Valle/booking-mvc/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// RouterConfig - зависимости роутера. Сервисы передаются снаружи,
// чтобы тесты могли подставить каталог-фикстуру и корзину в памяти
type RouterConfig struct {
	RDB           *redis.Client
	SearchService *services.SearchService
	CartService   *services.CartService
	ConfigService *services.ConfigService
	OrderProducer *services.OrderEventProducer
}

func SetupRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(middleware.RecoveryMiddleware())

	corsConfig := cors.DefaultConfig()
	if frontend := os.Getenv("FRONTEND_URL"); frontend != "" {
		corsConfig.AllowOrigins = []string{frontend}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization", "X-Session-ID")
	r.Use(cors.New(corsConfig))

	userController := controllers.NewUserController(cfg.RDB)
	searchController := controllers.NewSearchController(cfg.SearchService)
	cartController := controllers.NewCartController(cfg.CartService, cfg.SearchService, cfg.ConfigService)
	orderController := controllers.NewOrderController(cfg.CartService, cfg.ConfigService, cfg.OrderProducer)
	favoriteController := controllers.NewFavoriteController()
	adminController := admin.NewAdminController(cfg.ConfigService)

	SetupAuthRoutes(r, userController)
	SetupCatalogRoutes(r, searchController)
	SetupCartRoutes(r, cartController)
	SetupOrderRoutes(r, orderController)
	SetupFavoriteRoutes(r, favoriteController)
	SetupAdminRoutes(r, adminController)

	return r
}

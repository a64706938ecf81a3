package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Martin-Valle/booking-mvc/config"
	"github.com/Martin-Valle/booking-mvc/controllers"
	"github.com/Martin-Valle/booking-mvc/database"
	"github.com/Martin-Valle/booking-mvc/routes"
	"github.com/Martin-Valle/booking-mvc/services"
	"github.com/Martin-Valle/booking-mvc/utils"
)

func main() {
	// Устанавливаем часовой пояс Эквадора для всех логов и кодов заказов
	ecuadorLocation, err := time.LoadLocation("America/Guayaquil")
	if err != nil {
		ecuadorLocation = time.FixedZone("ECT", -5*60*60)
	}
	time.Local = ecuadorLocation

	cfg := config.LoadConfig()

	if err := utils.InitLogger(); err != nil {
		log.Printf("failed to init file loggers: %v", err)
	}

	// Подключение к PostgreSQL
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	log.Println("Connected to PostgreSQL")

	// Устанавливаем глобальный *gorm.DB для контроллеров
	utils.SetDB(db)

	// Миграция
	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to migrate: %v", err)
	}
	log.Println("Migration complete")

	// Сидирование каталога, демо-аккаунтов и конфига
	if err := database.SeedCatalog(db); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	if err := database.SeedUsers(db); err != nil {
		log.Fatalf("failed to seed users: %v", err)
	}
	if err := database.SeedAppConfig(db); err != nil {
		log.Fatalf("failed to seed app config: %v", err)
	}
	log.Println("Seeding complete (if needed)")

	// Обновление каталога из партнёрского фида асинхронно
	go func() {
		services.StartCatalogCron(db)
		log.Println("Catalog cron started")
	}()

	// Подключение к Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPass,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	utils.SetRedis(rdb)
	log.Println("Connected to Redis")

	// Инициализация Google OAuth
	controllers.InitGoogleOAuth()

	// Сервисы
	searchService := services.NewSearchService(services.NewGormCatalogAdapter(db))
	cartService := services.NewCartService(services.NewRedisCartStorage(rdb))
	configService := services.NewConfigService(db, rdb)
	orderProducer := services.NewOrderEventProducer(cfg.KafkaBrokers)
	defer orderProducer.Close()

	r := routes.SetupRouter(routes.RouterConfig{
		RDB:           rdb,
		SearchService: searchService,
		CartService:   cartService,
		ConfigService: configService,
		OrderProducer: orderProducer,
	})

	port := cfg.Port
	if port == "" {
		port = "8080"
	}
	log.Printf("Server is running on port %s", port)

	if err := r.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}

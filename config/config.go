package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	JWTSecret  string
	Port       string
	RedisAddr  string
	RedisPass  string

	GoogleClientID string
	GoogleSecret   string
	GoogleRedirect string

	// Партнёрский фид каталога (HTML-страница со списком отелей)
	PartnerFeedURL string

	// Kafka для событий заказов (пусто = события выключены)
	KafkaBrokers string

	FrontendURL string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}
	return &Config{
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		JWTSecret:      os.Getenv("JWT_SECRET"),
		Port:           os.Getenv("PORT"),
		RedisAddr:      getenvOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPass:      os.Getenv("REDIS_PASSWORD"),
		GoogleClientID: os.Getenv("GOOGLE_CLIENT_ID"),
		GoogleSecret:   os.Getenv("GOOGLE_CLIENT_SECRET"),
		GoogleRedirect: os.Getenv("GOOGLE_REDIRECT_URI"),
		PartnerFeedURL: os.Getenv("PARTNER_FEED_URL"),
		KafkaBrokers:   os.Getenv("KAFKA_BROKERS"),
		FrontendURL:    getenvOrDefault("FRONTEND_URL", "http://localhost:5173"),
	}
}

// getenvOrDefault returns the environment variable value if set, otherwise returns def
func getenvOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

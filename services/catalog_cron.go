package services

import (
	"log"
	"os"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// refreshPartnerHotels тянет партнёрский фид и обновляет таблицу отелей
func refreshPartnerHotels(db *gorm.DB, url string) {
	logFile, _ := os.OpenFile("logs/parser_errors.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	logger := log.New(logFile, "", log.LstdFlags)
	defer logFile.Close()

	logger.Printf("Начало обновления каталога отелей из фида %s...", url)

	parser := NewPartnerHotelParser()
	hotels, err := parser.ParseURL(url)
	if err != nil {
		logger.Printf("Ошибка парсинга фида отелей: %v", err)
		return
	}
	if len(hotels) == 0 {
		logger.Printf("Фид отелей пуст - каталог не трогаем")
		return
	}

	for _, hotel := range hotels {
		if err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).Create(hotel).Error; err != nil {
			logger.Printf("Ошибка сохранения отеля %s: %v", hotel.ID, err)
		}
	}

	logger.Printf("Обновление каталога завершено - обработано %d отелей", len(hotels))
}

// StartCatalogCron запускает ежедневное обновление каталога из партнёрского
// фида. Без PARTNER_FEED_URL кроны не стартуют - каталог живёт на сидах
func StartCatalogCron(db *gorm.DB) {
	url := os.Getenv("PARTNER_FEED_URL")
	if url == "" {
		log.Println("PARTNER_FEED_URL не задан - обновление каталога из фида выключено")
		return
	}

	// Первичное обновление при старте
	refreshPartnerHotels(db, url)

	c := cron.New()
	c.AddFunc("0 3 * * *", func() { // каждый день в 03:00
		refreshPartnerHotels(db, url)
	})
	c.Start()
}

package database

import (
	"github.com/Martin-Valle/booking-mvc/models"

	"gorm.io/gorm"
)

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Car{},
		&models.Flight{},
		&models.Restaurant{},
		&models.Order{},
		&models.Favorite{},
		&models.SearchHistory{},
		&models.AppConfigRow{},
	); err != nil {
		return err
	}

	// Индексы под выборки заказов и избранного
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at)`).Error; err != nil {
		return err
	}
	if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_favorites_user_kind_item ON favorites(user_id, kind, item_id) WHERE deleted_at IS NULL`).Error; err != nil {
		return err
	}

	return nil
}

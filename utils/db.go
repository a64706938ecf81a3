package utils

import "gorm.io/gorm"

// Глобальный *gorm.DB для контроллеров и сервисов
var db *gorm.DB

func SetDB(database *gorm.DB) {
	db = database
}

func GetDB() *gorm.DB {
	return db
}

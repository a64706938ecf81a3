package models

import "gorm.io/gorm"

// Favorite - избранное пользователя (hotel/car/flight/restaurant) по item_id
type Favorite struct {
	gorm.Model
	UserID uint   `json:"user_id" gorm:"not null;index"`
	Kind   string `json:"kind" gorm:"type:varchar(16);not null;index"` // строго: hotel | car | flight | restaurant
	ItemID string `json:"item_id" gorm:"type:text;not null;index"`

	// Связь с пользователем (не обязательно подгружать)
	User User `json:"-" gorm:"foreignKey:UserID;references:ID"`
}

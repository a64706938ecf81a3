package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SearchHistory - история поиска пользователя по каталогу
type SearchHistory struct {
	gorm.Model
	UserID      uint           `json:"user_id" gorm:"not null;index"`
	Query       string         `json:"query" gorm:"type:text"`
	Filters     datatypes.JSON `json:"filters" gorm:"type:jsonb"` // снимок FilterState
	ResultCount int            `json:"result_count" gorm:"default:0"`
}

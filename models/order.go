package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Order представляет заказ: снимок корзины и итогов на момент оформления.
// Итоги считаются один раз из пары (корзина, конфиг) и после создания не меняются
type Order struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	UserID    *uint          `json:"user_id,omitempty" gorm:"index:idx_user_orders"`
	SessionID string         `json:"session_id,omitempty" gorm:"index"` // для гостевых заказов
	OrderCode string         `json:"code" gorm:"uniqueIndex;not null"`
	Items     datatypes.JSON `json:"-" gorm:"type:jsonb;not null"` // снимок []CartItem
	Subtotal  float64        `json:"subtotal" gorm:"not null"`
	Tax       float64        `json:"tax" gorm:"not null"`
	Discount  float64        `json:"discount" gorm:"not null"`
	Total     float64        `json:"total" gorm:"not null"`
	Status    string         `json:"status" gorm:"default:'paid';index:idx_status"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Связь с пользователем
	User User `json:"user,omitempty" gorm:"foreignKey:UserID;references:ID"`
}

// ItemsSnapshot возвращает строки заказа из jsonb-снимка
func (o Order) ItemsSnapshot() []CartItem {
	var items []CartItem
	if len(o.Items) > 0 {
		_ = json.Unmarshal(o.Items, &items)
	}
	return items
}

// OrderResponse структура ответа для заказа
type OrderResponse struct {
	ID        uint       `json:"id"`
	Code      string     `json:"code"`
	Items     []CartItem `json:"items"`
	Subtotal  float64    `json:"subtotal"`
	Tax       float64    `json:"tax"`
	Discount  float64    `json:"discount"`
	Total     float64    `json:"total"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewOrderResponse собирает ответ из заказа
func NewOrderResponse(o Order) OrderResponse {
	return OrderResponse{
		ID:        o.ID,
		Code:      o.OrderCode,
		Items:     o.ItemsSnapshot(),
		Subtotal:  o.Subtotal,
		Tax:       o.Tax,
		Discount:  o.Discount,
		Total:     o.Total,
		Status:    o.Status,
		CreatedAt: o.CreatedAt,
	}
}

// OrderListResponse структура для списка заказов с пагинацией
type OrderListResponse struct {
	Orders     []OrderResponse `json:"orders"`
	Total      int64           `json:"total"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

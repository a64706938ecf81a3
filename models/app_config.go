package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// BundlePromo - промо-скидка за корзину из набора категорий.
// Скидка действует только когда в корзине есть хотя бы один элемент
// КАЖДОЙ категории из Kinds (всё или ничего, без частичного действия)
type BundlePromo struct {
	Active          bool          `json:"active"`
	DiscountPercent int           `json:"discount_percent"`
	Kinds           []ServiceKind `json:"kinds"`
}

// AppConfig - настройки магазина, редактируются в админке
type AppConfig struct {
	IvaPercent              int         `json:"iva_percent"`
	RequireLoginForCheckout bool        `json:"require_login_for_checkout"`
	BundlePromo             BundlePromo `json:"bundle_promo"`
}

// DefaultAppConfig - значения по умолчанию (и фолбэк при недоступной БД)
func DefaultAppConfig() AppConfig {
	return AppConfig{
		IvaPercent:              15,
		RequireLoginForCheckout: true,
		BundlePromo:             BundlePromo{Active: false, DiscountPercent: 0, Kinds: []ServiceKind{}},
	}
}

// Normalized приводит конфиг к инвариантам: проценты в [0,100],
// только валидные категории в промо, без дублей
func (c AppConfig) Normalized() AppConfig {
	out := c
	out.IvaPercent = clampPercent(c.IvaPercent)
	out.BundlePromo.DiscountPercent = clampPercent(c.BundlePromo.DiscountPercent)

	seen := map[ServiceKind]bool{}
	kinds := make([]ServiceKind, 0, len(c.BundlePromo.Kinds))
	for _, k := range c.BundlePromo.Kinds {
		parsed, ok := ParseServiceKind(string(k))
		if !ok || seen[parsed] {
			continue
		}
		seen[parsed] = true
		kinds = append(kinds, parsed)
	}
	out.BundlePromo.Kinds = kinds
	return out
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// AppConfigRow - строка конфигурации в БД (единственная, id = 1)
type AppConfigRow struct {
	ID                      uint           `json:"id" gorm:"primaryKey"`
	IvaPercent              int            `json:"iva_percent" gorm:"not null;default:15"`
	RequireLoginForCheckout bool           `json:"require_login_for_checkout" gorm:"not null;default:true"`
	BundlePromo             datatypes.JSON `json:"bundle_promo" gorm:"type:jsonb"`
	UpdatedAt               time.Time      `json:"updated_at"`
}

func (AppConfigRow) TableName() string { return "app_config" }

// ToConfig разворачивает строку БД в AppConfig
func (r AppConfigRow) ToConfig() AppConfig {
	cfg := AppConfig{
		IvaPercent:              r.IvaPercent,
		RequireLoginForCheckout: r.RequireLoginForCheckout,
	}
	if len(r.BundlePromo) > 0 {
		_ = json.Unmarshal(r.BundlePromo, &cfg.BundlePromo)
	}
	return cfg.Normalized()
}

// NewAppConfigRow сворачивает AppConfig в строку БД
func NewAppConfigRow(cfg AppConfig) AppConfigRow {
	cfg = cfg.Normalized()
	promo, _ := json.Marshal(cfg.BundlePromo)
	return AppConfigRow{
		ID:                      1,
		IvaPercent:              cfg.IvaPercent,
		RequireLoginForCheckout: cfg.RequireLoginForCheckout,
		BundlePromo:             datatypes.JSON(promo),
	}
}

package services

import (
	"regexp"
	"testing"

	"github.com/Martin-Valle/booking-mvc/models"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOrderCodeFormat(t *testing.T) {
	re := regexp.MustCompile(`^UB-\d{8}-[0-9A-F]{8}$`)

	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code := GenerateOrderCode()
		assert.Regexp(t, re, code)
		assert.False(t, seen[code], "код заказа должен быть уникальным: %s", code)
		seen[code] = true
	}
}

// Итоги заказа совпадают с превью корзины: одна функция расчёта
func TestBuildOrderTotalsMatchPreview(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindHotel, ItemID: "h1", Title: "Hotel Sol Andino", Qty: 1, UnitPrice: 85},
		{Kind: models.KindCar, ItemID: "c1", Title: "Kia Rio", Qty: 1, UnitPrice: 35},
	}
	cfg := models.DefaultAppConfig()
	cfg.BundlePromo = models.BundlePromo{Active: true, DiscountPercent: 10, Kinds: []models.ServiceKind{models.KindHotel, models.KindCar}}

	preview := ComputeTotals(items, cfg)

	userID := uint(7)
	order, err := BuildOrder(&userID, "", items, cfg)
	assert.NoError(t, err)

	assert.Equal(t, preview.Subtotal, order.Subtotal)
	assert.Equal(t, preview.Tax, order.Tax)
	assert.Equal(t, preview.Discount, order.Discount)
	assert.Equal(t, preview.Total, order.Total)
	assert.Equal(t, "paid", order.Status)
	assert.Equal(t, &userID, order.UserID)
}

// Снимок строк заказа восстанавливается из jsonb без потерь
func TestBuildOrderItemsSnapshot(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindFlight, ItemID: "f1", Title: "UIO → MAD", Subtitle: "Iberia", Qty: 2, UnitPrice: 1172},
	}

	order, err := BuildOrder(nil, "guest-session", items, models.DefaultAppConfig())
	assert.NoError(t, err)
	assert.Nil(t, order.UserID)
	assert.Equal(t, "guest-session", order.SessionID)

	restored := order.ItemsSnapshot()
	assert.Equal(t, items, restored)
}

func TestBuildOrderEmptyCart(t *testing.T) {
	_, err := BuildOrder(nil, "s", nil, models.DefaultAppConfig())
	assert.ErrorIs(t, err, ErrValidation)

	_, err = BuildOrder(nil, "s", []models.CartItem{}, models.DefaultAppConfig())
	assert.ErrorIs(t, err, ErrValidation)
}

// Заказ с нулевой суммой не создаётся
func TestBuildOrderZeroTotal(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindHotel, ItemID: "h1", Qty: 1, UnitPrice: 0},
	}
	_, err := BuildOrder(nil, "s", items, models.DefaultAppConfig())
	assert.ErrorIs(t, err, ErrValidation)
}

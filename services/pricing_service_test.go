package services

import (
	"testing"

	"github.com/Martin-Valle/booking-mvc/models"

	"github.com/stretchr/testify/assert"
)

func promoConfig(active bool, percent int, kinds ...models.ServiceKind) models.AppConfig {
	cfg := models.DefaultAppConfig()
	cfg.BundlePromo = models.BundlePromo{Active: active, DiscountPercent: percent, Kinds: kinds}
	return cfg
}

// Сценарий: отель 85 + ресторан 35 = 120, НДС 15% = 18,
// промо 10% за {hotel, car} не действует без авто
func TestComputeTotalsNoBundle(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindHotel, ItemID: "h1", Qty: 1, UnitPrice: 85},
		{Kind: models.KindRestaurant, ItemID: "4", Qty: 1, UnitPrice: 35},
	}
	totals := ComputeTotals(items, promoConfig(true, 10, models.KindHotel, models.KindCar))

	assert.Equal(t, 120.0, totals.Subtotal)
	assert.Equal(t, 18.0, totals.Tax)
	assert.Equal(t, 0.0, totals.Discount)
	assert.Equal(t, 138.0, totals.Total)
}

// Промо "всё или ничего": появляется элемент каждой категории - скидка со всей суммы
func TestComputeTotalsBundleAllOrNothing(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindHotel, ItemID: "h1", Qty: 1, UnitPrice: 85},
		{Kind: models.KindCar, ItemID: "c1", Qty: 1, UnitPrice: 35},
	}
	totals := ComputeTotals(items, promoConfig(true, 10, models.KindHotel, models.KindCar))

	assert.Equal(t, 120.0, totals.Subtotal)
	assert.Equal(t, 18.0, totals.Tax)
	assert.Equal(t, 12.0, totals.Discount)
	assert.Equal(t, 126.0, totals.Total)
}

// Лишняя категория в корзине не мешает промо
func TestComputeTotalsBundleIgnoresExtraKinds(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindHotel, ItemID: "h1", Qty: 1, UnitPrice: 100},
		{Kind: models.KindCar, ItemID: "c1", Qty: 1, UnitPrice: 50},
		{Kind: models.KindFlight, ItemID: "f1", Qty: 1, UnitPrice: 300},
	}
	totals := ComputeTotals(items, promoConfig(true, 10, models.KindHotel, models.KindCar))
	assert.Equal(t, 45.0, totals.Discount) // 10% от 450
}

// Выключенное промо и промо без категорий не дают скидки
func TestComputeTotalsInactivePromo(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindHotel, ItemID: "h1", Qty: 1, UnitPrice: 100},
		{Kind: models.KindCar, ItemID: "c1", Qty: 1, UnitPrice: 50},
	}

	totals := ComputeTotals(items, promoConfig(false, 10, models.KindHotel, models.KindCar))
	assert.Equal(t, 0.0, totals.Discount)

	totals = ComputeTotals(items, promoConfig(true, 10))
	assert.Equal(t, 0.0, totals.Discount)
}

// Количество умножает цену единицы
func TestComputeTotalsQuantity(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindRestaurant, ItemID: "2", Qty: 3, UnitPrice: 15},
	}
	cfg := models.DefaultAppConfig()
	totals := ComputeTotals(items, cfg)

	assert.Equal(t, 45.0, totals.Subtotal)
	assert.Equal(t, 6.75, totals.Tax)
	assert.Equal(t, 51.75, totals.Total)
}

// Пустая корзина - нулевые итоги, без ошибок
func TestComputeTotalsEmptyCart(t *testing.T) {
	totals := ComputeTotals(nil, models.DefaultAppConfig())
	assert.Equal(t, Totals{}, totals)
}

// Функция тотальна: отрицательные qty и цены гасятся, проценты клампятся
func TestComputeTotalsClamps(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindHotel, ItemID: "h1", Qty: -2, UnitPrice: 85},
		{Kind: models.KindCar, ItemID: "c1", Qty: 1, UnitPrice: -10},
		{Kind: models.KindRestaurant, ItemID: "2", Qty: 2, UnitPrice: 20},
	}
	cfg := models.DefaultAppConfig()
	cfg.IvaPercent = 150 // клампится до 100
	totals := ComputeTotals(items, cfg)

	assert.Equal(t, 40.0, totals.Subtotal)
	assert.Equal(t, 40.0, totals.Tax)
	assert.Equal(t, 80.0, totals.Total)
	assert.GreaterOrEqual(t, totals.Total, 0.0)
}

// Скидка 100% не уводит итог в минус
func TestComputeTotalsFullDiscount(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindHotel, ItemID: "h1", Qty: 1, UnitPrice: 100},
		{Kind: models.KindCar, ItemID: "c1", Qty: 1, UnitPrice: 100},
	}
	cfg := promoConfig(true, 100, models.KindHotel, models.KindCar)
	cfg.IvaPercent = 0
	totals := ComputeTotals(items, cfg)

	assert.Equal(t, 200.0, totals.Discount)
	assert.Equal(t, 0.0, totals.Total)
}

// Итоги округляются до центов
func TestComputeTotalsRounding(t *testing.T) {
	items := []models.CartItem{
		{Kind: models.KindRestaurant, ItemID: "2", Qty: 1, UnitPrice: 33.333},
	}
	totals := ComputeTotals(items, models.DefaultAppConfig())

	assert.Equal(t, 33.33, totals.Subtotal)
	assert.Equal(t, 5.0, totals.Tax) // 33.333 * 0.15 = 4.99995 -> 5.00
	assert.Equal(t, 38.33, totals.Total)
}

func TestRoundMoney(t *testing.T) {
	assert.Equal(t, 1.23, RoundMoney(1.234))
	assert.Equal(t, 1.24, RoundMoney(1.236))
	assert.Equal(t, 0.0, RoundMoney(0))
}

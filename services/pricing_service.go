package services

import (
	"math"

	"github.com/Martin-Valle/booking-mvc/models"
)

// Totals - денежные итоги корзины. Одна и та же функция считает итоги
// для превью корзины и для создаваемого заказа: пользователь подтверждает
// ровно ту сумму, которая сохранится в заказе
type Totals struct {
	Subtotal float64 `json:"subtotal"`
	Tax      float64 `json:"tax"`
	Discount float64 `json:"discount"`
	Total    float64 `json:"total"`
}

// RoundMoney округляет до центов
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}

// ComputeTotals считает subtotal/налог/промо-скидку/итог по снимку корзины и конфигу.
// Функция тотальна: некорректные qty и цены гасятся клампами, ошибок не возвращает
func ComputeTotals(items []models.CartItem, cfg models.AppConfig) Totals {
	cfg = cfg.Normalized()

	var subtotal float64
	for _, it := range items {
		qty := it.Qty
		if qty < 0 {
			qty = 0
		}
		price := it.UnitPrice
		if price < 0 {
			price = 0
		}
		subtotal += price * float64(qty)
	}

	tax := subtotal * float64(cfg.IvaPercent) / 100

	var discount float64
	if bundleEligible(items, cfg.BundlePromo) {
		discount = subtotal * float64(cfg.BundlePromo.DiscountPercent) / 100
		if discount > subtotal {
			discount = subtotal
		}
		if discount < 0 {
			discount = 0
		}
	}

	total := subtotal + tax - discount
	if total < 0 {
		total = 0
	}

	return Totals{
		Subtotal: RoundMoney(subtotal),
		Tax:      RoundMoney(tax),
		Discount: RoundMoney(discount),
		Total:    RoundMoney(total),
	}
}

// bundleEligible - промо действует только когда в корзине есть элемент
// каждой требуемой категории. Частичного действия нет
func bundleEligible(items []models.CartItem, promo models.BundlePromo) bool {
	if !promo.Active || len(promo.Kinds) == 0 {
		return false
	}
	inCart := map[models.ServiceKind]bool{}
	for _, it := range items {
		inCart[it.Kind] = true
	}
	for _, k := range promo.Kinds {
		if !inCart[k] {
			return false
		}
	}
	return true
}

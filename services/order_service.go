package services

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/Martin-Valle/booking-mvc/models"
	"github.com/Martin-Valle/booking-mvc/utils"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// GenerateOrderCode - человекочитаемый код заказа: UB-ГГГГММДД-XXXXXXXX
func GenerateOrderCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
	return fmt.Sprintf("UB-%s-%s", utils.EcuadorTime().Format("20060102"), suffix)
}

// BuildOrder собирает заказ из снимка корзины и конфига. Итоги считает
// тот же ComputeTotals, что и превью корзины: сумма в заказе всегда
// совпадает с суммой, которую пользователь видел перед подтверждением
func BuildOrder(userID *uint, sessionID string, items []models.CartItem, cfg models.AppConfig) (models.Order, error) {
	if len(items) == 0 {
		return models.Order{}, fmt.Errorf("%w: корзина пуста", ErrValidation)
	}

	totals := ComputeTotals(items, cfg)
	if totals.Total <= 0 {
		return models.Order{}, fmt.Errorf("%w: итоговая сумма должна быть положительной", ErrValidation)
	}

	snapshot, err := json.Marshal(items)
	if err != nil {
		return models.Order{}, err
	}

	return models.Order{
		UserID:    userID,
		SessionID: sessionID,
		OrderCode: GenerateOrderCode(),
		Items:     datatypes.JSON(snapshot),
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Discount:  totals.Discount,
		Total:     totals.Total,
		Status:    "paid",
	}, nil
}

package services

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/Martin-Valle/booking-mvc/models"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// OrderCreatedEvent - событие оформленного заказа для внешних потребителей
// (уведомления, аналитика)
type OrderCreatedEvent struct {
	EventID   string            `json:"event_id"`
	OrderCode string            `json:"order_code"`
	UserID    *uint             `json:"user_id,omitempty"`
	Items     []models.CartItem `json:"items"`
	Subtotal  float64           `json:"subtotal"`
	Tax       float64           `json:"tax"`
	Discount  float64           `json:"discount"`
	Total     float64           `json:"total"`
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
}

// OrderEventProducer пишет события заказов в Kafka.
// Пустой адрес брокеров выключает продьюсер - Publish становится no-op,
// оформление заказа от Kafka не зависит
type OrderEventProducer struct {
	writer *kafka.Writer
}

func NewOrderEventProducer(brokers string) *OrderEventProducer {
	if strings.TrimSpace(brokers) == "" {
		return &OrderEventProducer{}
	}
	return &OrderEventProducer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(strings.Split(brokers, ",")...),
			Topic:    "order-events",
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// PublishOrderCreated отправляет событие по созданному заказу
func (p *OrderEventProducer) PublishOrderCreated(ctx context.Context, order models.Order) error {
	if p.writer == nil {
		return nil
	}
	event := OrderCreatedEvent{
		EventID:   uuid.NewString(),
		OrderCode: order.OrderCode,
		UserID:    order.UserID,
		Items:     order.ItemsSnapshot(),
		Subtotal:  order.Subtotal,
		Tax:       order.Tax,
		Discount:  order.Discount,
		Total:     order.Total,
		Status:    order.Status,
		Timestamp: time.Now().UTC(),
	}
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(order.OrderCode),
		Value: data,
	})
}

func (p *OrderEventProducer) Close() error {
	if p.writer == nil {
		return nil
	}
	return p.writer.Close()
}

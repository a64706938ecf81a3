package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseServiceKind(t *testing.T) {
	kind, ok := ParseServiceKind(" Hotel ")
	assert.True(t, ok)
	assert.Equal(t, KindHotel, kind)

	_, ok = ParseServiceKind("cruise")
	assert.False(t, ok)
}

// У каждой категории своя цена единицы: ночь / сутки / билет / персона
func TestSearchResultAccessors(t *testing.T) {
	hotel := HotelResult(Hotel{ID: "h1", Name: "Hotel Sol Andino", City: "Quito", Country: "Ecuador", Price: 85, Rating: 4.4})
	car := CarResult(Car{ID: "c1", Brand: "Kia", Model: "Rio", City: "Quito", PricePerDay: 35})
	flight := FlightResult(Flight{ID: "f1", Origin: "UIO", Dest: "MAD", Price: 1172, Airline: "Iberia"})

	assert.Equal(t, 85.0, hotel.UnitPrice())
	assert.Equal(t, 35.0, car.UnitPrice())
	assert.Equal(t, 1172.0, flight.UnitPrice())

	rating, ok := hotel.RatingValue()
	assert.True(t, ok)
	assert.Equal(t, 4.4, rating)

	_, ok = car.RatingValue()
	assert.False(t, ok)
	_, ok = flight.RatingValue()
	assert.False(t, ok)

	// Рейсы не имеют города и не участвуют в фильтре по нему
	assert.Equal(t, "", flight.LocationText())
	assert.Equal(t, "Quito Ecuador", hotel.LocationText())
}

// Результат сериализуется как {"kind": ..., "item": {...}} и восстанавливается обратно
func TestSearchResultJSONRoundTrip(t *testing.T) {
	original := FlightResult(Flight{ID: "f1", Origin: "UIO", Dest: "MAD", Date: "2025-11-12", Price: 1172, Airline: "Iberia", Nonstop: true})

	data, err := json.Marshal(original)
	assert.NoError(t, err)
	assert.Contains(t, string(data), `"kind":"flight"`)
	assert.Contains(t, string(data), `"from":"UIO"`)

	var restored SearchResult
	assert.NoError(t, json.Unmarshal(data, &restored))
	assert.Equal(t, KindFlight, restored.Kind)
	assert.Equal(t, "MAD", restored.Flight.Dest)
}

func TestSearchResultUnknownKind(t *testing.T) {
	var r SearchResult
	err := json.Unmarshal([]byte(`{"kind":"cruise","item":{}}`), &r)
	assert.Error(t, err)
}

// NewCartItem: маппинг полей по категориям
func TestNewCartItem(t *testing.T) {
	flight := FlightResult(Flight{ID: "f1", Origin: "UIO", Dest: "MAD", Price: 1172, Airline: "Iberia"})
	item := NewCartItem(flight)

	assert.Equal(t, KindFlight, item.Kind)
	assert.Equal(t, "UIO → MAD", item.Title)
	assert.Equal(t, "Iberia", item.Subtitle)
	assert.Equal(t, 1, item.Qty)
	assert.Equal(t, 1172.0, item.UnitPrice)

	car := CarResult(Car{ID: "c1", Brand: "Kia", Model: "Rio", City: "Quito", PricePerDay: 35})
	item = NewCartItem(car)
	assert.Equal(t, "Kia Rio", item.Title)
	assert.Equal(t, "Quito", item.Subtitle)
}

// Normalized: проценты клампятся, категории промо дедуплицируются
func TestAppConfigNormalized(t *testing.T) {
	cfg := AppConfig{
		IvaPercent: 150,
		BundlePromo: BundlePromo{
			Active:          true,
			DiscountPercent: -5,
			Kinds:           []ServiceKind{"hotel", "HOTEL", "car", "cruise"},
		},
	}
	out := cfg.Normalized()

	assert.Equal(t, 100, out.IvaPercent)
	assert.Equal(t, 0, out.BundlePromo.DiscountPercent)
	assert.Equal(t, []ServiceKind{KindHotel, KindCar}, out.BundlePromo.Kinds)
}

func TestAppConfigRowRoundTrip(t *testing.T) {
	cfg := AppConfig{
		IvaPercent:              12,
		RequireLoginForCheckout: false,
		BundlePromo:             BundlePromo{Active: true, DiscountPercent: 10, Kinds: []ServiceKind{KindHotel, KindCar}},
	}
	row := NewAppConfigRow(cfg)
	assert.Equal(t, uint(1), row.ID)

	restored := row.ToConfig()
	assert.Equal(t, cfg, restored)
}

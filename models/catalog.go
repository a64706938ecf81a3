package models

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ServiceKind - категория услуги. Закрытый набор: hotel | car | flight | restaurant
type ServiceKind string

const (
	KindHotel      ServiceKind = "hotel"
	KindCar        ServiceKind = "car"
	KindFlight     ServiceKind = "flight"
	KindRestaurant ServiceKind = "restaurant"
)

// AllKinds возвращает все четыре категории в фиксированном порядке
func AllKinds() []ServiceKind {
	return []ServiceKind{KindHotel, KindCar, KindFlight, KindRestaurant}
}

// ParseServiceKind нормализует строку в ServiceKind; пустая строка при неизвестном значении
func ParseServiceKind(s string) (ServiceKind, bool) {
	switch ServiceKind(strings.TrimSpace(strings.ToLower(s))) {
	case KindHotel:
		return KindHotel, true
	case KindCar:
		return KindCar, true
	case KindFlight:
		return KindFlight, true
	case KindRestaurant:
		return KindRestaurant, true
	}
	return "", false
}

// Hotel - отель каталога, цена за ночь
type Hotel struct {
	ID                string  `json:"id" gorm:"primaryKey;type:text"`
	Name              string  `json:"name" gorm:"not null"`
	City              string  `json:"city" gorm:"index"`
	Country           string  `json:"country"`
	Price             float64 `json:"price"` // за ночь
	Rating            float64 `json:"rating"`
	Photo             string  `json:"photo"`
	FreeCancellation  bool    `json:"freeCancellation"`
	BreakfastIncluded bool    `json:"breakfastIncluded"`
	DistanceCenterKm  float64 `json:"distanceCenterKm"`
}

// Car - автомобиль, цена за сутки
type Car struct {
	ID          string  `json:"id" gorm:"primaryKey;type:text"`
	Brand       string  `json:"brand" gorm:"not null"`
	Model       string  `json:"model"`
	City        string  `json:"city" gorm:"index"`
	PricePerDay float64 `json:"pricePerDay"`
	Photo       string  `json:"photo"`
	UnlimitedKm bool    `json:"unlimitedKm"`
	Automatic   bool    `json:"automatic"`
}

// Flight - авиарейс, цена за билет. Рейтинга и города нет
type Flight struct {
	ID      string  `json:"id" gorm:"primaryKey;type:text"`
	Origin  string  `json:"from" gorm:"column:origin;index"`
	Dest    string  `json:"to" gorm:"column:dest;index"`
	Date    string  `json:"date"`
	Price   float64 `json:"price"`
	Airline string  `json:"airline"`
	Nonstop bool    `json:"nonstop"`
}

// Restaurant - ресторан, цена за персону
type Restaurant struct {
	ID          string  `json:"id" gorm:"primaryKey;type:text"`
	Name        string  `json:"name" gorm:"not null"`
	City        string  `json:"city" gorm:"index"`
	Country     string  `json:"country"`
	Price       float64 `json:"price"` // за персону
	Rating      float64 `json:"rating"`
	Photo       string  `json:"photo"`
	Cuisine     string  `json:"cuisine"`
	Description string  `json:"description,omitempty"`
}

// SearchResult - элемент выдачи поиска: категория + элемент каталога этой категории.
// Ровно одно из полей-указателей заполнено, соответственно Kind.
type SearchResult struct {
	Kind       ServiceKind
	Hotel      *Hotel
	Car        *Car
	Flight     *Flight
	Restaurant *Restaurant
}

// ItemID возвращает id элемента (уникален внутри своей категории)
func (r SearchResult) ItemID() string {
	switch r.Kind {
	case KindHotel:
		return r.Hotel.ID
	case KindCar:
		return r.Car.ID
	case KindFlight:
		return r.Flight.ID
	case KindRestaurant:
		return r.Restaurant.ID
	}
	return ""
}

// UnitPrice - цена единицы по категории: ночь / сутки / билет / персона
func (r SearchResult) UnitPrice() float64 {
	switch r.Kind {
	case KindHotel:
		return r.Hotel.Price
	case KindCar:
		return r.Car.PricePerDay
	case KindFlight:
		return r.Flight.Price
	case KindRestaurant:
		return r.Restaurant.Price
	}
	return 0
}

// RatingValue - рейтинг элемента. Для авто и рейсов рейтинга нет (ok=false)
func (r SearchResult) RatingValue() (float64, bool) {
	switch r.Kind {
	case KindHotel:
		return r.Hotel.Rating, true
	case KindRestaurant:
		return r.Restaurant.Rating, true
	}
	return 0, false
}

// LocationText - текст для фильтра по городу (город + страна).
// Рейсы возвращают пустую строку: по городу они не фильтруются
func (r SearchResult) LocationText() string {
	switch r.Kind {
	case KindHotel:
		return strings.TrimSpace(r.Hotel.City + " " + r.Hotel.Country)
	case KindCar:
		return r.Car.City
	case KindRestaurant:
		return strings.TrimSpace(r.Restaurant.City + " " + r.Restaurant.Country)
	}
	return ""
}

// SearchText - текст, по которому элемент матчится на поисковый запрос
func (r SearchResult) SearchText() string {
	switch r.Kind {
	case KindHotel:
		return r.Hotel.Name + " " + r.Hotel.City
	case KindCar:
		return r.Car.Brand + " " + r.Car.Model + " " + r.Car.City
	case KindFlight:
		return r.Flight.Origin + " " + r.Flight.Dest + " " + r.Flight.Airline
	case KindRestaurant:
		return r.Restaurant.Name + " " + r.Restaurant.City + " " + r.Restaurant.Cuisine
	}
	return ""
}

// MarshalJSON сериализует результат в форму {"kind": ..., "item": {...}}
func (r SearchResult) MarshalJSON() ([]byte, error) {
	var item interface{}
	switch r.Kind {
	case KindHotel:
		item = r.Hotel
	case KindCar:
		item = r.Car
	case KindFlight:
		item = r.Flight
	case KindRestaurant:
		item = r.Restaurant
	default:
		return nil, fmt.Errorf("unknown service kind: %q", r.Kind)
	}
	return json.Marshal(struct {
		Kind ServiceKind `json:"kind"`
		Item interface{} `json:"item"`
	}{Kind: r.Kind, Item: item})
}

// UnmarshalJSON разбирает форму {"kind": ..., "item": {...}}
func (r *SearchResult) UnmarshalJSON(data []byte) error {
	var raw struct {
		Kind ServiceKind     `json:"kind"`
		Item json.RawMessage `json:"item"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = SearchResult{Kind: raw.Kind}
	switch raw.Kind {
	case KindHotel:
		r.Hotel = &Hotel{}
		return json.Unmarshal(raw.Item, r.Hotel)
	case KindCar:
		r.Car = &Car{}
		return json.Unmarshal(raw.Item, r.Car)
	case KindFlight:
		r.Flight = &Flight{}
		return json.Unmarshal(raw.Item, r.Flight)
	case KindRestaurant:
		r.Restaurant = &Restaurant{}
		return json.Unmarshal(raw.Item, r.Restaurant)
	}
	return fmt.Errorf("unknown service kind: %q", raw.Kind)
}

// HotelResult, CarResult, FlightResult, RestaurantResult - конструкторы вариантов
func HotelResult(h Hotel) SearchResult      { return SearchResult{Kind: KindHotel, Hotel: &h} }
func CarResult(c Car) SearchResult          { return SearchResult{Kind: KindCar, Car: &c} }
func FlightResult(f Flight) SearchResult    { return SearchResult{Kind: KindFlight, Flight: &f} }
func RestaurantResult(x Restaurant) SearchResult {
	return SearchResult{Kind: KindRestaurant, Restaurant: &x}
}

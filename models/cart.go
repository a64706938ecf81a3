package models

// CartItem - строка корзины. Ключ дедупликации - пара (kind, id):
// повторное добавление того же элемента каталога увеличивает qty
type CartItem struct {
	Kind      ServiceKind `json:"kind"`
	ItemID    string      `json:"id"`
	Title     string      `json:"title"`
	Subtitle  string      `json:"subtitle,omitempty"`
	Qty       int         `json:"qty"`
	UnitPrice float64     `json:"price"`
	Photo     string      `json:"photo,omitempty"`
}

// NewCartItem отображает результат поиска в строку корзины (qty = 1).
// Маппинг полей по категориям: название/подзаголовок/цена единицы
func NewCartItem(r SearchResult) CartItem {
	switch r.Kind {
	case KindHotel:
		return CartItem{
			Kind:      KindHotel,
			ItemID:    r.Hotel.ID,
			Title:     r.Hotel.Name,
			Subtitle:  r.Hotel.City,
			Qty:       1,
			UnitPrice: r.Hotel.Price,
			Photo:     r.Hotel.Photo,
		}
	case KindCar:
		return CartItem{
			Kind:      KindCar,
			ItemID:    r.Car.ID,
			Title:     r.Car.Brand + " " + r.Car.Model,
			Subtitle:  r.Car.City,
			Qty:       1,
			UnitPrice: r.Car.PricePerDay,
			Photo:     r.Car.Photo,
		}
	case KindFlight:
		return CartItem{
			Kind:      KindFlight,
			ItemID:    r.Flight.ID,
			Title:     r.Flight.Origin + " → " + r.Flight.Dest,
			Subtitle:  r.Flight.Airline,
			Qty:       1,
			UnitPrice: r.Flight.Price,
			Photo:     "/assets/flight.jpg",
		}
	case KindRestaurant:
		return CartItem{
			Kind:      KindRestaurant,
			ItemID:    r.Restaurant.ID,
			Title:     r.Restaurant.Name,
			Subtitle:  r.Restaurant.City,
			Qty:       1,
			UnitPrice: r.Restaurant.Price,
			Photo:     r.Restaurant.Photo,
		}
	}
	return CartItem{Kind: r.Kind, ItemID: r.ItemID(), Title: "Item", Qty: 1, UnitPrice: r.UnitPrice()}
}

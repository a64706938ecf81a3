package database

import (
	"github.com/Martin-Valle/booking-mvc/models"
	"github.com/Martin-Valle/booking-mvc/utils"

	"gorm.io/gorm"
)

// DemoHotels - демо-каталог отелей
func DemoHotels() []models.Hotel {
	return []models.Hotel{
		{ID: "h1", Name: "Hotel Sol Andino", City: "Quito", Country: "Ecuador", Price: 85, Rating: 4.4, Photo: "/assets/hotel1.jpg", FreeCancellation: true, BreakfastIncluded: true, DistanceCenterKm: 0.8},
		{ID: "h2", Name: "Amazon Suites", City: "Tena", Country: "Ecuador", Price: 72, Rating: 4.2, Photo: "/assets/hotel2.jpg", FreeCancellation: false, BreakfastIncluded: true, DistanceCenterKm: 1.2},
	}
}

// DemoCars - демо-каталог автомобилей
func DemoCars() []models.Car {
	return []models.Car{
		{ID: "c1", Brand: "Kia", Model: "Rio", City: "Quito", PricePerDay: 35, Photo: "/assets/car1.jpg", UnlimitedKm: true, Automatic: true},
		{ID: "c2", Brand: "Chevrolet", Model: "Onix", City: "Guayaquil", PricePerDay: 42, Photo: "/assets/car2.jpg", UnlimitedKm: false, Automatic: true},
	}
}

// DemoFlights - демо-каталог рейсов
func DemoFlights() []models.Flight {
	return []models.Flight{
		{ID: "f1", Origin: "UIO", Dest: "MAD", Date: "2025-11-12", Price: 1172, Airline: "Iberia", Nonstop: true},
		{ID: "f2", Origin: "UIO", Dest: "BOG", Date: "2025-11-12", Price: 320, Airline: "Avianca", Nonstop: false},
	}
}

// DemoRestaurants - демо-каталог ресторанов
func DemoRestaurants() []models.Restaurant {
	return []models.Restaurant{
		{ID: "1", Name: "Sanctum Cortejo Restaurant", City: "Quito", Country: "Ecuador", Price: 35, Rating: 4.8, Photo: "/assets/restaurant-sanctum.jpg", Cuisine: "Internacional", Description: "Гастрономический ресторан с онлайн-бронированием"},
		{ID: "2", Name: "Cafetería París", City: "Quito", Country: "Ecuador", Price: 15, Rating: 4.9, Photo: "/assets/cafeteria-paris.jpg", Cuisine: "Café & Postres"},
		{ID: "3", Name: "El Sabor Ecuatoriano", City: "Quito", Country: "Ecuador", Price: 25, Rating: 4.7, Photo: "/assets/restaurant1.jpg", Cuisine: "Ecuatoriana"},
		{ID: "4", Name: "La Costa Marina", City: "Guayaquil", Country: "Ecuador", Price: 35, Rating: 4.6, Photo: "/assets/restaurant2.jpg", Cuisine: "Mariscos"},
		{ID: "5", Name: "Pizzería Da Vinci", City: "Cuenca", Country: "Ecuador", Price: 20, Rating: 4.7, Photo: "/assets/restaurant3.jpg", Cuisine: "Italiana"},
		{ID: "6", Name: "Sushi Zen", City: "Quito", Country: "Ecuador", Price: 40, Rating: 4.9, Photo: "/assets/restaurant4.jpg", Cuisine: "Japonesa"},
		{ID: "7", Name: "Parrilla Argentina", City: "Quito", Country: "Ecuador", Price: 45, Rating: 4.8, Photo: "/assets/restaurant5.jpg", Cuisine: "Carnes"},
		{ID: "8", Name: "Veggie Garden", City: "Cuenca", Country: "Ecuador", Price: 22, Rating: 4.5, Photo: "/assets/restaurant6.jpg", Cuisine: "Vegetariana"},
	}
}

// DemoCatalogResults - весь демо-каталог в порядке релевантности
// (отели, авто, рейсы, рестораны); используется fixture-адаптером и тестами
func DemoCatalogResults() []models.SearchResult {
	var out []models.SearchResult
	for _, h := range DemoHotels() {
		out = append(out, models.HotelResult(h))
	}
	for _, c := range DemoCars() {
		out = append(out, models.CarResult(c))
	}
	for _, f := range DemoFlights() {
		out = append(out, models.FlightResult(f))
	}
	for _, r := range DemoRestaurants() {
		out = append(out, models.RestaurantResult(r))
	}
	return out
}

// SeedCatalog заполняет пустой каталог демо-данными
func SeedCatalog(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Hotel{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil // Каталог уже наполнен, ничего не делаем
	}

	hotels := DemoHotels()
	if err := db.Create(&hotels).Error; err != nil {
		return err
	}
	cars := DemoCars()
	if err := db.Create(&cars).Error; err != nil {
		return err
	}
	flights := DemoFlights()
	if err := db.Create(&flights).Error; err != nil {
		return err
	}
	restaurants := DemoRestaurants()
	return db.Create(&restaurants).Error
}

// SeedUsers создаёт демо-аккаунты администратора и пользователя
func SeedUsers(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := utils.HashPassword("123456")
	if err != nil {
		return err
	}

	adminEmail := "admin@demo.com"
	adminName := "Admin Demo"
	userEmail := "user@demo.com"
	userName := "Usuario Demo"
	users := []models.User{
		{Email: &adminEmail, Name: &adminName, Password: hash, Confirmed: true, Role: "admin"},
		{Email: &userEmail, Name: &userName, Password: hash, Confirmed: true, Role: "user"},
	}
	return db.Create(&users).Error
}

// SeedAppConfig создаёт строку конфига по умолчанию, если её нет
func SeedAppConfig(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.AppConfigRow{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	row := models.NewAppConfigRow(models.DefaultAppConfig())
	return db.Create(&row).Error
}

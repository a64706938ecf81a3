package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Martin-Valle/booking-mvc/models"

	"gorm.io/gorm"
)

// CatalogAdapter - источник элементов каталога. Поиск возвращает выдачу
// в порядке релевантности; вызов может упасть или затянуться, вызывающий
// обязан пережить это без паники
type CatalogAdapter interface {
	Search(ctx context.Context, query string) ([]models.SearchResult, error)
	GetByID(ctx context.Context, kind models.ServiceKind, id string) (*models.SearchResult, error)
}

// GormCatalogAdapter - каталог в Postgres. Порядок релевантности:
// отели, авто, рейсы, рестораны
type GormCatalogAdapter struct {
	db *gorm.DB
}

func NewGormCatalogAdapter(db *gorm.DB) *GormCatalogAdapter {
	return &GormCatalogAdapter{db: db}
}

func (a *GormCatalogAdapter) Search(ctx context.Context, query string) ([]models.SearchResult, error) {
	term := "%" + strings.TrimSpace(query) + "%"
	db := a.db.WithContext(ctx)
	var out []models.SearchResult

	var hotels []models.Hotel
	if err := db.Where("name ILIKE ? OR city ILIKE ?", term, term).Find(&hotels).Error; err != nil {
		return nil, err
	}
	for _, h := range hotels {
		out = append(out, models.HotelResult(h))
	}

	var cars []models.Car
	if err := db.Where("brand ILIKE ? OR model ILIKE ? OR city ILIKE ?", term, term, term).Find(&cars).Error; err != nil {
		return nil, err
	}
	for _, c := range cars {
		out = append(out, models.CarResult(c))
	}

	var flights []models.Flight
	if err := db.Where("origin ILIKE ? OR dest ILIKE ? OR airline ILIKE ?", term, term, term).Find(&flights).Error; err != nil {
		return nil, err
	}
	for _, f := range flights {
		out = append(out, models.FlightResult(f))
	}

	var restaurants []models.Restaurant
	if err := db.Where("name ILIKE ? OR city ILIKE ? OR cuisine ILIKE ?", term, term, term).Find(&restaurants).Error; err != nil {
		return nil, err
	}
	for _, r := range restaurants {
		out = append(out, models.RestaurantResult(r))
	}

	return out, nil
}

func (a *GormCatalogAdapter) GetByID(ctx context.Context, kind models.ServiceKind, id string) (*models.SearchResult, error) {
	db := a.db.WithContext(ctx)
	switch kind {
	case models.KindHotel:
		var h models.Hotel
		if err := db.First(&h, "id = ?", id).Error; err != nil {
			return nil, notFoundToNil(err)
		}
		r := models.HotelResult(h)
		return &r, nil
	case models.KindCar:
		var c models.Car
		if err := db.First(&c, "id = ?", id).Error; err != nil {
			return nil, notFoundToNil(err)
		}
		r := models.CarResult(c)
		return &r, nil
	case models.KindFlight:
		var f models.Flight
		if err := db.First(&f, "id = ?", id).Error; err != nil {
			return nil, notFoundToNil(err)
		}
		r := models.FlightResult(f)
		return &r, nil
	case models.KindRestaurant:
		var x models.Restaurant
		if err := db.First(&x, "id = ?", id).Error; err != nil {
			return nil, notFoundToNil(err)
		}
		r := models.RestaurantResult(x)
		return &r, nil
	}
	return nil, nil
}

// notFoundToNil: "не найдено" - не ошибка источника, а пустой ответ
func notFoundToNil(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil
	}
	return err
}

// FixtureCatalogAdapter - каталог в памяти: фолбэк при недоступной БД и тесты
type FixtureCatalogAdapter struct {
	results []models.SearchResult
}

func NewFixtureCatalogAdapter(results []models.SearchResult) *FixtureCatalogAdapter {
	return &FixtureCatalogAdapter{results: results}
}

func (a *FixtureCatalogAdapter) Search(_ context.Context, query string) ([]models.SearchResult, error) {
	term := strings.ToLower(strings.TrimSpace(query))
	var out []models.SearchResult
	for _, r := range a.results {
		if term == "" || strings.Contains(strings.ToLower(r.SearchText()), term) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (a *FixtureCatalogAdapter) GetByID(_ context.Context, kind models.ServiceKind, id string) (*models.SearchResult, error) {
	for _, r := range a.results {
		if r.Kind == kind && r.ItemID() == id {
			found := r
			return &found, nil
		}
	}
	return nil, nil
}

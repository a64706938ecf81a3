package services

import (
	"context"
	"errors"
	"testing"

	"github.com/Martin-Valle/booking-mvc/models"

	"github.com/stretchr/testify/assert"
)

type failingCatalogAdapter struct{}

func (failingCatalogAdapter) Search(context.Context, string) ([]models.SearchResult, error) {
	return nil, errors.New("connection refused")
}

func (failingCatalogAdapter) GetByID(context.Context, models.ServiceKind, string) (*models.SearchResult, error) {
	return nil, errors.New("connection refused")
}

func fixtureSearchService() *SearchService {
	return NewSearchService(NewFixtureCatalogAdapter([]models.SearchResult{
		models.HotelResult(models.Hotel{ID: "h1", Name: "Hotel Sol Andino", City: "Quito", Price: 85, Rating: 4.4}),
		models.CarResult(models.Car{ID: "c1", Brand: "Kia", Model: "Rio", City: "Quito", PricePerDay: 35}),
		models.FlightResult(models.Flight{ID: "f1", Origin: "UIO", Dest: "MAD", Price: 1172, Airline: "Iberia"}),
	}))
}

func TestSearchMatchesQuery(t *testing.T) {
	svc := fixtureSearchService()

	results, err := svc.Search(context.Background(), "quito", models.FilterState{})
	assert.NoError(t, err)
	assert.Len(t, results, 2)

	results, err = svc.Search(context.Background(), "iberia", models.FilterState{})
	assert.NoError(t, err)
	assert.Len(t, results, 1)
	assert.Equal(t, "f1", results[0].ItemID())
}

// Пустой запрос возвращает весь каталог
func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	svc := fixtureSearchService()
	results, err := svc.Search(context.Background(), "", models.FilterState{})
	assert.NoError(t, err)
	assert.Len(t, results, 3)
}

// Недоступный каталог: пустая выдача и ErrRetrieval, никакой паники
func TestSearchRetrievalFailure(t *testing.T) {
	svc := NewSearchService(failingCatalogAdapter{})

	results, err := svc.Search(context.Background(), "quito", models.FilterState{})
	assert.ErrorIs(t, err, ErrRetrieval)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestGetByID(t *testing.T) {
	svc := fixtureSearchService()

	item, err := svc.GetByID(context.Background(), models.KindCar, "c1")
	assert.NoError(t, err)
	assert.NotNil(t, item)
	assert.Equal(t, "Kia", item.Car.Brand)

	missing, err := svc.GetByID(context.Background(), models.KindCar, "nope")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

// Снимок сессии обновляет только новейший запрос: устаревший ответ,
// завершившийся позже свежего, не откатывает выдачу
func TestSessionSearcherStaleResponseDropped(t *testing.T) {
	svc := fixtureSearchService()
	ss := NewSessionSearcher(svc)

	// Запрос 1 выдан, но его результат применится последним
	ss.mu.Lock()
	ss.issued++
	staleSeq := ss.issued
	ss.mu.Unlock()

	// Запрос 2 выдан и завершился первым
	fresh, err := ss.Search(context.Background(), "iberia", models.FilterState{})
	assert.NoError(t, err)
	assert.Len(t, fresh, 1)

	// Теперь приходит ответ запроса 1 - он устарел и отбрасывается
	staleResults, _ := svc.Search(context.Background(), "quito", models.FilterState{})
	ss.mu.Lock()
	if staleSeq > ss.applied {
		ss.applied = staleSeq
		ss.snapshot = staleResults
	}
	ss.mu.Unlock()

	snapshot := ss.Snapshot()
	assert.Len(t, snapshot, 1)
	assert.Equal(t, "f1", snapshot[0].ItemID())
}

func TestSessionSearcherSnapshotIsCopy(t *testing.T) {
	ss := NewSessionSearcher(fixtureSearchService())

	_, err := ss.Search(context.Background(), "", models.FilterState{})
	assert.NoError(t, err)

	snapshot := ss.Snapshot()
	assert.Len(t, snapshot, 3)
	snapshot[0] = models.SearchResult{}
	assert.Equal(t, "h1", ss.Snapshot()[0].ItemID())
}

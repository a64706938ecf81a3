package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/Martin-Valle/booking-mvc/models"
)

// SearchService - оркестратор поиска: расширяет пустой выбор категорий до всех,
// тянет сырую выдачу из каталога и прогоняет её через ApplyFilters.
// Каждый вызов независим, инкрементальной фильтрации нет - выдачи маленькие
type SearchService struct {
	catalog CatalogAdapter
}

func NewSearchService(catalog CatalogAdapter) *SearchService {
	return &SearchService{catalog: catalog}
}

// Search выполняет поиск с фильтрацией. При недоступном каталоге возвращает
// пустую выдачу и ErrRetrieval - наверх исключение не улетает
func (s *SearchService) Search(ctx context.Context, query string, f models.FilterState) ([]models.SearchResult, error) {
	// Пустой выбор категорий никогда не схлопывает выдачу в ноль
	f.Kinds = f.EffectiveKinds()

	raw, err := s.catalog.Search(ctx, query)
	if err != nil {
		return []models.SearchResult{}, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}
	return ApplyFilters(raw, f), nil
}

// GetByID проксирует чтение одного элемента каталога
func (s *SearchService) GetByID(ctx context.Context, kind models.ServiceKind, id string) (*models.SearchResult, error) {
	item, err := s.catalog.GetByID(ctx, kind, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRetrieval, err)
	}
	return item, nil
}

// SessionSearcher держит снимок последней выдачи одной сессии.
// Запросы нумеруются; завершившийся запрос обновляет снимок только если
// более новый запрос его ещё не обновил - устаревший ответ, пришедший
// после свежего, отбрасывается и не откатывает выдачу
type SessionSearcher struct {
	svc *SearchService

	mu       sync.Mutex
	issued   uint64 // номер последнего выданного запроса
	applied  uint64 // номер запроса, чей результат лежит в снимке
	snapshot []models.SearchResult
}

func NewSessionSearcher(svc *SearchService) *SessionSearcher {
	return &SessionSearcher{svc: svc}
}

// Search выполняет поиск и обновляет снимок по правилу "побеждает новейший запрос"
func (ss *SessionSearcher) Search(ctx context.Context, query string, f models.FilterState) ([]models.SearchResult, error) {
	ss.mu.Lock()
	ss.issued++
	seq := ss.issued
	ss.mu.Unlock()

	results, err := ss.svc.Search(ctx, query, f)

	ss.mu.Lock()
	if seq > ss.applied {
		ss.applied = seq
		ss.snapshot = results
	}
	ss.mu.Unlock()

	return results, err
}

// Snapshot возвращает выдачу новейшего завершившегося запроса
func (ss *SessionSearcher) Snapshot() []models.SearchResult {
	ss.mu.Lock()
	defer ss.mu.Unlock()
	out := make([]models.SearchResult, len(ss.snapshot))
	copy(out, ss.snapshot)
	return out
}

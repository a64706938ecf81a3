package services

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Martin-Valle/booking-mvc/models"

	"github.com/go-redis/redis/v8"
)

// CartStorage - долговременное хранилище корзины. Хранилище внешне изменяемо
// (другая вкладка могла записать свою версию), поэтому сервис перечитывает
// корзину перед каждой мутацией, а не доверяет копии в памяти.
// Write сохраняет корзину и рассылает оповещение одной парой
type CartStorage interface {
	Read(ctx context.Context, owner string) ([]models.CartItem, error)
	Write(ctx context.Context, owner string, items []models.CartItem) error
}

// RedisCartStorage хранит корзину в Redis и оповещает через pub/sub
type RedisCartStorage struct {
	rdb *redis.Client
}

func NewRedisCartStorage(rdb *redis.Client) *RedisCartStorage {
	return &RedisCartStorage{rdb: rdb}
}

func cartKey(owner string) string     { return "cart:" + owner }
func cartChannel(owner string) string { return "cart:updated:" + owner }

func (s *RedisCartStorage) Read(ctx context.Context, owner string) ([]models.CartItem, error) {
	raw, err := s.rdb.Get(ctx, cartKey(owner)).Result()
	if err == redis.Nil {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		// Битые данные не валят корзину - начинаем с пустой
		return []models.CartItem{}, nil
	}
	return items, nil
}

func (s *RedisCartStorage) Write(ctx context.Context, owner string, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, cartKey(owner), raw, 0).Err(); err != nil {
		return err
	}
	return s.rdb.Publish(ctx, cartChannel(owner), "updated").Err()
}

// Subscribe - подписка на изменения корзины (для других вкладок/соединений)
func (s *RedisCartStorage) Subscribe(ctx context.Context, owner string) *redis.PubSub {
	return s.rdb.Subscribe(ctx, cartChannel(owner))
}

// MemoryCartStorage - хранилище в памяти: фолбэк и тесты
type MemoryCartStorage struct {
	mu       sync.Mutex
	carts    map[string][]models.CartItem
	notified map[string]int
}

func NewMemoryCartStorage() *MemoryCartStorage {
	return &MemoryCartStorage{
		carts:    map[string][]models.CartItem{},
		notified: map[string]int{},
	}
}

func (s *MemoryCartStorage) Read(_ context.Context, owner string) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]models.CartItem, len(s.carts[owner]))
	copy(items, s.carts[owner])
	return items, nil
}

func (s *MemoryCartStorage) Write(_ context.Context, owner string, items []models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]models.CartItem, len(items))
	copy(snapshot, items)
	s.carts[owner] = snapshot
	s.notified[owner]++
	return nil
}

// NotifyCount - сколько оповещений получил владелец (для тестов)
func (s *MemoryCartStorage) NotifyCount(owner string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.notified[owner]
}

// CartService - операции над корзиной. Строки дедуплицируются по (kind, id);
// операции по индексу за пределами корзины - no-op, не ошибка:
// индекс из интерфейса мог устареть
type CartService struct {
	storage CartStorage
}

func NewCartService(storage CartStorage) *CartService {
	return &CartService{storage: storage}
}

// Get перечитывает корзину из хранилища
func (cs *CartService) Get(ctx context.Context, owner string) ([]models.CartItem, error) {
	return cs.storage.Read(ctx, owner)
}

// AddFromResult добавляет элемент каталога: существующая строка (kind, id)
// получает qty+1, иначе в конец добавляется новая строка с qty 1
func (cs *CartService) AddFromResult(ctx context.Context, owner string, r models.SearchResult) ([]models.CartItem, error) {
	items, err := cs.storage.Read(ctx, owner)
	if err != nil {
		return nil, err
	}
	found := false
	for i := range items {
		if items[i].Kind == r.Kind && items[i].ItemID == r.ItemID() {
			items[i].Qty++
			found = true
			break
		}
	}
	if !found {
		items = append(items, models.NewCartItem(r))
	}
	if err := cs.storage.Write(ctx, owner, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Increment увеличивает qty строки на 1
func (cs *CartService) Increment(ctx context.Context, owner string, index int) ([]models.CartItem, error) {
	items, err := cs.storage.Read(ctx, owner)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return items, nil
	}
	items[index].Qty++
	if err := cs.storage.Write(ctx, owner, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Decrement уменьшает qty строки на 1, но не ниже 1: строку удаляет
// только явный Remove, а не декремент до нуля
func (cs *CartService) Decrement(ctx context.Context, owner string, index int) ([]models.CartItem, error) {
	items, err := cs.storage.Read(ctx, owner)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return items, nil
	}
	if items[index].Qty > 1 {
		items[index].Qty--
	}
	if err := cs.storage.Write(ctx, owner, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Remove удаляет строку безусловно
func (cs *CartService) Remove(ctx context.Context, owner string, index int) ([]models.CartItem, error) {
	items, err := cs.storage.Read(ctx, owner)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(items) {
		return items, nil
	}
	items = append(items[:index], items[index+1:]...)
	if err := cs.storage.Write(ctx, owner, items); err != nil {
		return nil, err
	}
	return items, nil
}

// Clear опустошает корзину (после успешного оформления заказа)
func (cs *CartService) Clear(ctx context.Context, owner string) error {
	return cs.storage.Write(ctx, owner, []models.CartItem{})
}

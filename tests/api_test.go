package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/Martin-Valle/booking-mvc/database"
	"github.com/Martin-Valle/booking-mvc/routes"
	"github.com/Martin-Valle/booking-mvc/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// Роутер на каталоге-фикстуре и корзине в памяти: без Postgres и Redis
func testRouter() *gin.Engine {
	searchService := services.NewSearchService(services.NewFixtureCatalogAdapter(database.DemoCatalogResults()))
	return routes.SetupRouter(routes.RouterConfig{
		SearchService: searchService,
		CartService:   services.NewCartService(services.NewMemoryCartStorage()),
		ConfigService: services.NewConfigService(nil, nil),
		OrderProducer: services.NewOrderEventProducer(""),
	})
}

func doJSON(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSearchEndpoint(t *testing.T) {
	r := testRouter()

	w := doJSON(r, "GET", "/search?q=quito", nil, nil)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Hotel Sol Andino")
	assert.Contains(t, w.Body.String(), `"success":true`)
}

func TestSearchEndpointFilters(t *testing.T) {
	r := testRouter()

	// Цены [20, 40] по всему каталогу, сортировка по возрастанию
	w := doJSON(r, "GET", "/search?price_min=20&price_max=40&sort=price-asc", nil, nil)
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Result struct {
			Results []json.RawMessage `json:"results"`
			Count   int               `json:"count"`
		} `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, len(resp.Result.Results), resp.Result.Count)
	assert.Greater(t, resp.Result.Count, 0)

	// Только рейсы
	w = doJSON(r, "GET", "/search?kinds=flight", nil, nil)
	assert.Contains(t, w.Body.String(), `"kind":"flight"`)
	assert.NotContains(t, w.Body.String(), `"kind":"hotel"`)
}

func TestCatalogGetItem(t *testing.T) {
	r := testRouter()

	w := doJSON(r, "GET", "/catalog/hotel/h1", nil, nil)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), "Hotel Sol Andino")

	w = doJSON(r, "GET", "/catalog/hotel/nope", nil, nil)
	assert.Equal(t, 404, w.Code)

	w = doJSON(r, "GET", "/catalog/cruise/h1", nil, nil)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "Неизвестная категория")
}

func TestCartRequiresOwner(t *testing.T) {
	r := testRouter()

	w := doJSON(r, "GET", "/cart", nil, nil)
	assert.Equal(t, 400, w.Code)
	assert.Contains(t, w.Body.String(), "X-Session-ID")
}

func TestCartFlow(t *testing.T) {
	r := testRouter()
	session := map[string]string{"X-Session-ID": "test-session"}

	// Пустая корзина с нулевыми итогами
	w := doJSON(r, "GET", "/cart", nil, session)
	assert.Equal(t, 200, w.Code)
	assert.Contains(t, w.Body.String(), `"subtotal":0`)

	// Добавляем отель дважды - одна строка с qty 2
	w = doJSON(r, "POST", "/cart/items", map[string]string{"kind": "hotel", "id": "h1"}, session)
	assert.Equal(t, 200, w.Code)
	w = doJSON(r, "POST", "/cart/items", map[string]string{"kind": "hotel", "id": "h1"}, session)
	assert.Equal(t, 200, w.Code)

	var resp struct {
		Result struct {
			Items []struct {
				Kind  string  `json:"kind"`
				ID    string  `json:"id"`
				Qty   int     `json:"qty"`
				Price float64 `json:"price"`
			} `json:"items"`
			Totals struct {
				Subtotal float64 `json:"subtotal"`
				Tax      float64 `json:"tax"`
				Total    float64 `json:"total"`
			} `json:"totals"`
		} `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Result.Items, 1)
	assert.Equal(t, 2, resp.Result.Items[0].Qty)
	assert.Equal(t, 170.0, resp.Result.Totals.Subtotal)
	assert.Equal(t, 25.5, resp.Result.Totals.Tax) // НДС 15% по умолчанию

	// Декремент до 1, дальше qty не падает
	w = doJSON(r, "POST", "/cart/items/0/decrement", nil, session)
	assert.Equal(t, 200, w.Code)
	w = doJSON(r, "POST", "/cart/items/0/decrement", nil, session)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Result.Items[0].Qty)

	// Удаление строки опустошает корзину
	w = doJSON(r, "DELETE", "/cart/items/0", nil, session)
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Empty(t, resp.Result.Items)
}

func TestCartAddUnknownItem(t *testing.T) {
	r := testRouter()
	session := map[string]string{"X-Session-ID": "s"}

	w := doJSON(r, "POST", "/cart/items", map[string]string{"kind": "hotel", "id": "missing"}, session)
	assert.Equal(t, 404, w.Code)
	assert.Contains(t, w.Body.String(), "Элемент не найден")
}

// Конфиг по умолчанию требует входа: гостевая попытка оформления
// получает 401, корзина при этом не трогается
func TestCheckoutRequiresLoginByDefault(t *testing.T) {
	r := testRouter()
	session := map[string]string{"X-Session-ID": "guest"}

	w := doJSON(r, "POST", "/cart/items", map[string]string{"kind": "car", "id": "c1"}, session)
	assert.Equal(t, 200, w.Code)

	w = doJSON(r, "POST", "/orders/checkout", nil, session)
	assert.Equal(t, 401, w.Code)
	assert.Contains(t, w.Body.String(), "необходимо войти")

	w = doJSON(r, "GET", "/cart", nil, session)
	assert.Contains(t, w.Body.String(), `"id":"c1"`)
}

func TestAdminRequiresAuth(t *testing.T) {
	r := testRouter()

	w := doJSON(r, "GET", "/admin/config", nil, nil)
	assert.Equal(t, 401, w.Code)
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := testRouter()

	w := doJSON(r, "GET", "/orders", nil, nil)
	assert.Equal(t, 401, w.Code)

	w = doJSON(r, "GET", "/favorites", nil, nil)
	assert.Equal(t, 401, w.Code)

	w = doJSON(r, "GET", "/search/history", nil, map[string]string{"Authorization": "Bearer not-a-token"})
	assert.Equal(t, 401, w.Code)
}

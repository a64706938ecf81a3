package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/Martin-Valle/booking-mvc/models"
	"github.com/Martin-Valle/booking-mvc/services"
	"github.com/Martin-Valle/booking-mvc/utils"

	"github.com/gin-gonic/gin"
)

type SearchController struct {
	searchService *services.SearchService
}

func NewSearchController(searchService *services.SearchService) *SearchController {
	return &SearchController{searchService: searchService}
}

// parseFilterState собирает фильтры из query-параметров.
// Отсутствующая граница цены и граница 0 - разные вещи, поэтому ParseOptionalFloat
func parseFilterState(c *gin.Context) models.FilterState {
	f := models.FilterState{
		PriceMin:  utils.ParseOptionalFloat(c.Query("price_min")),
		PriceMax:  utils.ParseOptionalFloat(c.Query("price_max")),
		RatingMin: utils.ParseFloatSafe(c.Query("rating_min")),
		City:      c.Query("city"),
		Sort:      models.ParseSortKey(c.Query("sort")),
	}

	// kinds - CSV вида "hotel,car"; неизвестные категории молча отбрасываются
	if raw := strings.TrimSpace(c.Query("kinds")); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			if kind, ok := models.ParseServiceKind(part); ok {
				f.Kinds = append(f.Kinds, kind)
			}
		}
	}
	return f
}

// GET /search
func (sc *SearchController) Search(c *gin.Context) {
	query := c.Query("q")
	filters := parseFilterState(c)

	results, err := sc.searchService.Search(c.Request.Context(), query, filters)
	if err != nil {
		// Недоступный каталог не роняет выдачу: пустой список и сообщение
		utils.LogError(err, "search")
		c.JSON(http.StatusOK, gin.H{"result": gin.H{
			"results": []models.SearchResult{},
			"count":   0,
			"message": "Ничего не найдено",
		}, "success": true})
		return
	}

	sc.recordHistory(c, query, filters, len(results))

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"results": results,
		"count":   len(results),
	}, "success": true})
}

// GET /catalog/:kind/:id
func (sc *SearchController) GetItem(c *gin.Context) {
	kind, ok := models.ParseServiceKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестная категория"})
		return
	}

	item, err := sc.searchService.GetByID(c.Request.Context(), kind, c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrRetrieval) {
			utils.LogError(err, "catalog get")
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Каталог временно недоступен"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка каталога"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Элемент не найден"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": item, "success": true})
}

// recordHistory пишет историю поиска авторизованного пользователя.
// Ошибка записи не влияет на выдачу
func (sc *SearchController) recordHistory(c *gin.Context, query string, filters models.FilterState, count int) {
	userID := c.GetInt("user_id")
	if userID == 0 {
		return
	}
	db := utils.GetDB()
	if db == nil {
		return
	}

	snapshot, err := json.Marshal(filters)
	if err != nil {
		return
	}
	entry := models.SearchHistory{
		UserID:      uint(userID),
		Query:       strings.TrimSpace(query),
		Filters:     snapshot,
		ResultCount: count,
	}
	if err := db.Create(&entry).Error; err != nil {
		utils.LogError(err, "search history")
	}
}

// GET /search/history - последние запросы пользователя
func (sc *SearchController) History(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var entries []models.SearchHistory
	if err := utils.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Limit(20).Find(&entries).Error; err != nil {
		utils.LogError(err, "search history list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки истории"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": entries, "success": true})
}

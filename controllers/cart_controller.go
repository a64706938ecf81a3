package controllers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/Martin-Valle/booking-mvc/models"
	"github.com/Martin-Valle/booking-mvc/services"
	"github.com/Martin-Valle/booking-mvc/utils"

	"github.com/gin-gonic/gin"
)

type CartController struct {
	cartService   *services.CartService
	searchService *services.SearchService
	configService *services.ConfigService
}

func NewCartController(cartService *services.CartService, searchService *services.SearchService, configService *services.ConfigService) *CartController {
	return &CartController{
		cartService:   cartService,
		searchService: searchService,
		configService: configService,
	}
}

// resolveCartOwner - ключ владельца корзины: авторизованный пользователь
// или гостевая сессия из заголовка X-Session-ID
func resolveCartOwner(c *gin.Context) (string, bool) {
	if userID := c.GetInt("user_id"); userID != 0 {
		return "user:" + strconv.Itoa(userID), true
	}
	if sessionID := strings.TrimSpace(c.GetHeader("X-Session-ID")); sessionID != "" {
		return "session:" + sessionID, true
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": "Не передан X-Session-ID"})
	return "", false
}

// cartPayload - корзина с превью итогов; те же итоги увидит заказ
func (cc *CartController) cartPayload(c *gin.Context, items []models.CartItem) gin.H {
	cfg := cc.configService.Load(c.Request.Context())
	totals := services.ComputeTotals(items, cfg)
	return gin.H{
		"items":  items,
		"totals": totals,
		"formatted": gin.H{
			"subtotal": utils.FormatUSD(totals.Subtotal),
			"tax":      utils.FormatUSD(totals.Tax),
			"discount": utils.FormatUSD(totals.Discount),
			"total":    utils.FormatUSD(totals.Total),
		},
	}
}

// GET /cart
func (cc *CartController) Get(c *gin.Context) {
	owner, ok := resolveCartOwner(c)
	if !ok {
		return
	}

	items, err := cc.cartService.Get(c.Request.Context(), owner)
	if err != nil {
		utils.LogError(err, "cart get")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки корзины"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": cc.cartPayload(c, items), "success": true})
}

type AddToCartRequest struct {
	Kind string `json:"kind" binding:"required"`
	ID   string `json:"id" binding:"required"`
}

// POST /cart/items - добавить элемент каталога по (kind, id)
func (cc *CartController) Add(c *gin.Context) {
	owner, ok := resolveCartOwner(c)
	if !ok {
		return
	}

	var req AddToCartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	kind, ok := models.ParseServiceKind(req.Kind)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестная категория"})
		return
	}

	item, err := cc.searchService.GetByID(c.Request.Context(), kind, req.ID)
	if err != nil {
		utils.LogError(err, "cart add: catalog")
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Каталог временно недоступен"})
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Элемент не найден"})
		return
	}

	items, err := cc.cartService.AddFromResult(c.Request.Context(), owner, *item)
	if err != nil {
		utils.LogError(err, "cart add")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения корзины"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": cc.cartPayload(c, items), "success": true})
}

func parseCartIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный индекс строки"})
		return 0, false
	}
	return index, true
}

// POST /cart/items/:index/increment
func (cc *CartController) Increment(c *gin.Context) {
	cc.mutateByIndex(c, cc.cartService.Increment)
}

// POST /cart/items/:index/decrement
func (cc *CartController) Decrement(c *gin.Context) {
	cc.mutateByIndex(c, cc.cartService.Decrement)
}

// DELETE /cart/items/:index
func (cc *CartController) Remove(c *gin.Context) {
	cc.mutateByIndex(c, cc.cartService.Remove)
}

func (cc *CartController) mutateByIndex(c *gin.Context, op func(ctx context.Context, owner string, index int) ([]models.CartItem, error)) {
	owner, ok := resolveCartOwner(c)
	if !ok {
		return
	}
	index, ok := parseCartIndex(c)
	if !ok {
		return
	}

	items, err := op(c.Request.Context(), owner, index)
	if err != nil {
		utils.LogError(err, "cart mutate")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения корзины"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": cc.cartPayload(c, items), "success": true})
}

// DELETE /cart
func (cc *CartController) Clear(c *gin.Context) {
	owner, ok := resolveCartOwner(c)
	if !ok {
		return
	}

	if err := cc.cartService.Clear(c.Request.Context(), owner); err != nil {
		utils.LogError(err, "cart clear")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения корзины"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": cc.cartPayload(c, []models.CartItem{}), "success": true})
}

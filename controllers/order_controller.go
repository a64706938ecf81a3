package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/Martin-Valle/booking-mvc/models"
	"github.com/Martin-Valle/booking-mvc/services"
	"github.com/Martin-Valle/booking-mvc/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct {
	cartService   *services.CartService
	configService *services.ConfigService
	producer      *services.OrderEventProducer
}

func NewOrderController(cartService *services.CartService, configService *services.ConfigService, producer *services.OrderEventProducer) *OrderController {
	return &OrderController{
		cartService:   cartService,
		configService: configService,
		producer:      producer,
	}
}

// POST /orders/checkout - оформление заказа из текущей корзины.
// Конфиг снимается один раз в начале: налог, промо и требование входа
// берутся из одного снимка
func (oc *OrderController) Checkout(c *gin.Context) {
	owner, ok := resolveCartOwner(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()

	cfg := oc.configService.Load(ctx)

	userID := c.GetInt("user_id")
	if cfg.RequireLoginForCheckout && userID == 0 {
		// Корзина не трогается: после входа пользователь продолжит оформление
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Для оформления заказа необходимо войти"})
		return
	}

	items, err := oc.cartService.Get(ctx, owner)
	if err != nil {
		utils.LogError(err, "checkout: cart read")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки корзины"})
		return
	}
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Корзина пуста"})
		return
	}

	var ownerID *uint
	if userID != 0 {
		id := uint(userID)
		ownerID = &id
	}
	sessionID := strings.TrimSpace(c.GetHeader("X-Session-ID"))

	order, err := services.BuildOrder(ownerID, sessionID, items, cfg)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный заказ"})
			return
		}
		utils.LogError(err, "checkout: build order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка оформления заказа"})
		return
	}

	if err := utils.GetDB().Create(&order).Error; err != nil {
		utils.LogError(err, "checkout: save order")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка оформления заказа"})
		return
	}

	// Корзина очищается только после успешного сохранения заказа
	if err := oc.cartService.Clear(ctx, owner); err != nil {
		utils.LogError(err, "checkout: cart clear")
	}

	// Событие в Kafka не влияет на ответ: заказ уже создан
	if err := oc.producer.PublishOrderCreated(ctx, order); err != nil {
		utils.LogError(err, "checkout: publish event")
	}

	c.JSON(http.StatusCreated, gin.H{"result": models.NewOrderResponse(order), "success": true})
}

// GET /orders - заказы текущего пользователя с пагинацией
func (oc *OrderController) MyOrders(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := utils.GetDB()
	var total int64
	if err := db.Model(&models.Order{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		utils.LogError(err, "orders: count")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки заказов"})
		return
	}

	var orders []models.Order
	if err := db.Where("user_id = ?", userID).Order("created_at DESC").Offset(offset).Limit(limit).Find(&orders).Error; err != nil {
		utils.LogError(err, "orders: list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки заказов"})
		return
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, models.NewOrderResponse(o))
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, gin.H{"result": models.OrderListResponse{
		Orders:     responses,
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: totalPages,
	}, "success": true})
}

// GET /orders/:code - заказ по коду. Гость видит только заказы своей сессии
func (oc *OrderController) GetByCode(c *gin.Context) {
	code := c.Param("code")

	var order models.Order
	if err := utils.GetDB().Where("order_code = ?", code).First(&order).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusNotFound, gin.H{"error": "Заказ не найден"})
			return
		}
		utils.LogError(err, "orders: get by code")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки заказа"})
		return
	}

	userID := uint(c.GetInt("user_id"))
	sessionID := strings.TrimSpace(c.GetHeader("X-Session-ID"))
	ownOrder := (order.UserID != nil && *order.UserID == userID && userID != 0) ||
		(order.UserID == nil && order.SessionID != "" && order.SessionID == sessionID)
	if !ownOrder && c.GetString("role") != "admin" {
		c.JSON(http.StatusNotFound, gin.H{"error": "Заказ не найден"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": models.NewOrderResponse(order), "success": true})
}

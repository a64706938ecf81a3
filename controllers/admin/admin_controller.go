package admin

import (
	"net/http"
	"strconv"

	"github.com/Martin-Valle/booking-mvc/models"
	"github.com/Martin-Valle/booking-mvc/services"
	"github.com/Martin-Valle/booking-mvc/utils"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	configService *services.ConfigService
}

func NewAdminController(configService *services.ConfigService) *AdminController {
	return &AdminController{configService: configService}
}

// GET /admin/users - список пользователей с пагинацией
func (ac *AdminController) UsersList(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	offset := (page - 1) * limit

	db := utils.GetDB()
	var total int64
	if err := db.Model(&models.User{}).Count(&total).Error; err != nil {
		utils.LogError(err, "admin: users count")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки пользователей"})
		return
	}

	var users []models.User
	if err := db.Order("created_at DESC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		utils.LogError(err, "admin: users list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки пользователей"})
		return
	}

	type userRow struct {
		ID        uint    `json:"id"`
		Email     *string `json:"email"`
		Name      *string `json:"name"`
		Role      string  `json:"role"`
		Confirmed bool    `json:"confirmed"`
	}
	rows := make([]userRow, 0, len(users))
	for _, u := range users {
		rows = append(rows, userRow{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role, Confirmed: u.Confirmed})
	}

	totalPages := int(total) / limit
	if int(total)%limit > 0 {
		totalPages++
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"users":       rows,
		"total":       total,
		"page":        page,
		"limit":       limit,
		"total_pages": totalPages,
	}, "success": true})
}

// GET /admin/users/:id/orders - заказы конкретного пользователя
func (ac *AdminController) UserOrders(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный id пользователя"})
		return
	}

	var orders []models.Order
	if err := utils.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&orders).Error; err != nil {
		utils.LogError(err, "admin: user orders")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки заказов"})
		return
	}

	responses := make([]models.OrderResponse, 0, len(orders))
	for _, o := range orders {
		responses = append(responses, models.NewOrderResponse(o))
	}

	c.JSON(http.StatusOK, gin.H{"result": responses, "success": true})
}

// DELETE /admin/users/:id
func (ac *AdminController) DeleteUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный id пользователя"})
		return
	}
	if userID == c.GetInt("user_id") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Нельзя удалить собственный аккаунт"})
		return
	}

	result := utils.GetDB().Delete(&models.User{}, userID)
	if result.Error != nil {
		utils.LogError(result.Error, "admin: delete user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления пользователя"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "deleted", "success": true})
}

// GET /admin/config - текущие настройки магазина
func (ac *AdminController) GetConfig(c *gin.Context) {
	cfg := ac.configService.Load(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"result": cfg, "success": true})
}

// PUT /admin/config - сохранение настроек; кэш конфига инвалидируется,
// следующая загрузка корзины увидит новый налог и промо
func (ac *AdminController) UpdateConfig(c *gin.Context) {
	var cfg models.AppConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	saved, err := ac.configService.Save(c.Request.Context(), cfg)
	if err != nil {
		utils.LogError(err, "admin: save config")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения настроек"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": saved, "success": true})
}

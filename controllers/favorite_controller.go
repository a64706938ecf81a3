package controllers

import (
	"net/http"

	"github.com/Martin-Valle/booking-mvc/models"
	"github.com/Martin-Valle/booking-mvc/utils"

	"github.com/gin-gonic/gin"
)

type FavoriteController struct{}

func NewFavoriteController() *FavoriteController {
	return &FavoriteController{}
}

type FavoriteRequest struct {
	Kind   string `json:"kind" binding:"required"`
	ItemID string `json:"item_id" binding:"required"`
}

// POST /favorites
func (fc *FavoriteController) Create(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}
	kind, ok := models.ParseServiceKind(req.Kind)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Неизвестная категория"})
		return
	}

	db := utils.GetDB()

	// Повторное добавление того же элемента не плодит дубли
	var count int64
	db.Model(&models.Favorite{}).
		Where("user_id = ? AND kind = ? AND item_id = ?", userID, string(kind), req.ItemID).
		Count(&count)
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Уже в избранном"})
		return
	}

	favorite := models.Favorite{
		UserID: userID,
		Kind:   string(kind),
		ItemID: req.ItemID,
	}
	if err := db.Create(&favorite).Error; err != nil {
		utils.LogError(err, "favorite create")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения избранного"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": favorite, "success": true})
}

// GET /favorites
func (fc *FavoriteController) List(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var favorites []models.Favorite
	if err := utils.GetDB().Where("user_id = ?", userID).Order("created_at DESC").Find(&favorites).Error; err != nil {
		utils.LogError(err, "favorite list")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка загрузки избранного"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": favorites, "success": true})
}

// DELETE /favorites/:id
func (fc *FavoriteController) Delete(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	result := utils.GetDB().Where("id = ? AND user_id = ?", c.Param("id"), userID).Delete(&models.Favorite{})
	if result.Error != nil {
		utils.LogError(result.Error, "favorite delete")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка удаления избранного"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Не найдено в избранном"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "deleted", "success": true})
}

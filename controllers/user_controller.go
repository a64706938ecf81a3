package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"strings"

	"github.com/Martin-Valle/booking-mvc/models"
	"github.com/Martin-Valle/booking-mvc/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"gorm.io/gorm"
)

var googleOauthConfig *oauth2.Config

func InitGoogleOAuth() {
	googleOauthConfig = &oauth2.Config{
		RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URI"),
		ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
		ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
		Scopes:       []string{"https://www.googleapis.com/auth/userinfo.email", "https://www.googleapis.com/auth/userinfo.profile"},
		Endpoint:     google.Endpoint,
	}
}

type UserController struct {
	RDB *redis.Client
}

func NewUserController(rdb *redis.Client) *UserController {
	return &UserController{RDB: rdb}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// POST /auth/register
func (uc *UserController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	db := utils.GetDB()

	// Проверка на существование пользователя
	var userCount int64
	db.Model(&models.User{}).Where("email = ?", email).Count(&userCount)
	if userCount > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "Пользователь уже существует"})
		return
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError(err, "register: hash password")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения пользователя"})
		return
	}

	name := strings.TrimSpace(req.Name)
	user := models.User{
		Email:     &email,
		Name:      &name,
		Password:  hash,
		Confirmed: true,
		Role:      "user",
	}
	if err := db.Create(&user).Error; err != nil {
		utils.LogError(err, "register: create user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения пользователя"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка генерации токена"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": gin.H{
		"token": token,
		"user":  userPayload(user),
	}, "success": true})
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func (uc *UserController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	db := utils.GetDB()

	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный email или пароль"})
			return
		}
		utils.LogError(err, "login: find user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка входа"})
		return
	}

	// Аккаунты, созданные через Google, не имеют пароля
	if user.Password == "" && user.GoogleID != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Этот аккаунт создан через Google - войдите через Google"})
		return
	}

	if !utils.CheckPasswordHash(req.Password, user.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Неверный email или пароль"})
		return
	}

	token, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка генерации токена"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"token": token,
		"user":  userPayload(user),
	}, "success": true})
}

// GET /auth/me
func (uc *UserController) Me(c *gin.Context) {
	userID := uint(c.GetInt("user_id"))

	var user models.User
	if err := utils.GetDB().First(&user, userID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Пользователь не найден"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": userPayload(user), "success": true})
}

// POST /auth/logout - токен уходит в черный список до истечения срока
func (uc *UserController) Logout(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" || !strings.HasPrefix(header, "Bearer ") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid Authorization header"})
		return
	}
	token := strings.TrimPrefix(header, "Bearer ")

	claims, err := utils.ParseJWT(token, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	if uc.RDB != nil {
		uc.RDB.Set(context.Background(), "blacklist:"+token, "1", utils.TokenTTL(claims))
	}

	c.JSON(http.StatusOK, gin.H{"result": "logged out", "success": true})
}

// GET /auth/google - редирект на страницу согласия Google
func (uc *UserController) GoogleLogin(c *gin.Context) {
	url := googleOauthConfig.AuthCodeURL("state-token", oauth2.AccessTypeOffline)
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GET /auth/google/callback - обмен кода на профиль и вход/регистрация
func (uc *UserController) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Не передан code"})
		return
	}

	oauthToken, err := googleOauthConfig.Exchange(context.Background(), code)
	if err != nil {
		utils.LogError(err, "google oauth: exchange")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Ошибка авторизации через Google"})
		return
	}

	client := googleOauthConfig.Client(context.Background(), oauthToken)
	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		utils.LogError(err, "google oauth: userinfo")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Ошибка получения профиля Google"})
		return
	}
	defer resp.Body.Close()

	var info struct {
		ID    string `json:"id"`
		Email string `json:"email"`
		Name  string `json:"name"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil || info.Email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Ошибка получения профиля Google"})
		return
	}

	email := strings.ToLower(info.Email)
	db := utils.GetDB()

	var user models.User
	err = db.Where("email = ?", email).First(&user).Error
	if err == gorm.ErrRecordNotFound {
		user = models.User{
			Email:     &email,
			Name:      &info.Name,
			Confirmed: true,
			Role:      "user",
			GoogleID:  &info.ID,
		}
		if err := db.Create(&user).Error; err != nil {
			utils.LogError(err, "google oauth: create user")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка сохранения пользователя"})
			return
		}
	} else if err != nil {
		utils.LogError(err, "google oauth: find user")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка входа"})
		return
	} else if user.GoogleID == nil {
		// Привязываем Google к существующему аккаунту по email
		user.GoogleID = &info.ID
		db.Model(&user).Update("google_id", info.ID)
	}

	token, err := utils.GenerateJWT(user.ID, user.Role, os.Getenv("JWT_SECRET"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Ошибка генерации токена"})
		return
	}

	// Возвращаем пользователя на фронтенд с токеном
	frontend := os.Getenv("FRONTEND_URL")
	if frontend != "" {
		c.Redirect(http.StatusTemporaryRedirect, frontend+"/auth/callback?token="+token)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"token": token,
		"user":  userPayload(user),
	}, "success": true})
}

func userPayload(user models.User) gin.H {
	payload := gin.H{
		"id":   user.ID,
		"role": user.Role,
	}
	if user.Email != nil {
		payload["email"] = *user.Email
	}
	if user.Name != nil {
		payload["name"] = *user.Name
	}
	return payload
}

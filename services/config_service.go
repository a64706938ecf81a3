package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Martin-Valle/booking-mvc/models"
	"github.com/Martin-Valle/booking-mvc/utils"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	configCacheKey = "app:config"
	configCacheTTL = 5 * time.Minute
)

// ConfigService - загрузка и сохранение настроек магазина.
// Конфиг читается один раз и кэшируется в Redis; сохранение из админки
// инвалидирует кэш. При недоступной БД возвращаются дефолты - ошибка
// источника никогда не доходит до отображения
type ConfigService struct {
	db  *gorm.DB
	rdb *redis.Client
}

func NewConfigService(db *gorm.DB, rdb *redis.Client) *ConfigService {
	return &ConfigService{db: db, rdb: rdb}
}

// Load возвращает актуальный конфиг: кэш -> БД -> дефолты
func (s *ConfigService) Load(ctx context.Context) models.AppConfig {
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, configCacheKey).Result(); err == nil {
			var cfg models.AppConfig
			if json.Unmarshal([]byte(raw), &cfg) == nil {
				return cfg.Normalized()
			}
		}
	}

	if s.db == nil {
		return models.DefaultAppConfig()
	}

	var row models.AppConfigRow
	if err := s.db.WithContext(ctx).First(&row, "id = ?", 1).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			utils.LogError(err, "config load")
		}
		return models.DefaultAppConfig()
	}

	cfg := row.ToConfig()
	s.cache(ctx, cfg)
	return cfg
}

// Save нормализует и сохраняет конфиг, затем инвалидирует кэш
func (s *ConfigService) Save(ctx context.Context, cfg models.AppConfig) (models.AppConfig, error) {
	cfg = cfg.Normalized()
	row := models.NewAppConfigRow(cfg)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		UpdateAll: true,
	}).Create(&row).Error
	if err != nil {
		return cfg, err
	}
	if s.rdb != nil {
		s.rdb.Del(ctx, configCacheKey)
	}
	return cfg, nil
}

func (s *ConfigService) cache(ctx context.Context, cfg models.AppConfig) {
	if s.rdb == nil {
		return
	}
	raw, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	s.rdb.Set(ctx, configCacheKey, raw, configCacheTTL)
}

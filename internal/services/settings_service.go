package services

import (
	"errors"
	"math/rand"
	"time"

	"github.com/ninjascorp/gin-kiosk-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// dailyPalette is the fixed set of accent colors the kiosk UI rotates
// through, one per calendar day.
var dailyPalette = []string{
	"#ef4444", "#f97316", "#f59e0b", "#eab308", "#84cc16", "#22c55e",
	"#10b981", "#14b8a6", "#06b6d4", "#0ea5e9", "#3b82f6", "#6366f1",
	"#8b5cf6", "#a855f7", "#d946ef", "#ec4899", "#f43f5e", "#fb7185",
	"#fb923c", "#fbbf24", "#a3e635", "#4ade80", "#34d399", "#2dd4bf",
	"#22d3ee", "#38bdf8", "#60a5fa", "#818cf8", "#a78bfa", "#c084fc",
}

// SettingsService is a generic key-value store for small persisted
// configuration (logo URL, QR code URL, daily color)
type SettingsService interface {
	// Get retrieves a setting; found is false when the key has never
	// been written
	Get(key string) (value string, found bool, err error)
	// Set writes a setting, replacing any previous value for the key
	Set(key string, value string) error
	// DailyColor returns the accent color for the current day. The first
	// call of a day picks one uniformly from the palette and persists it
	// under a date-scoped key, so every later call that day agrees.
	DailyColor() (string, error)
}

type settingsService struct {
	db   *gorm.DB
	now  func() time.Time
	pick func(n int) int
}

// NewSettingsService creates a new instance of SettingsService
func NewSettingsService(db *gorm.DB) SettingsService {
	return &settingsService{db: db, now: time.Now, pick: rand.Intn}
}

func (s *settingsService) Get(key string) (string, bool, error) {
	var setting models.Setting
	if err := s.db.Where("key = ?", key).First(&setting).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return setting.Value, true, nil
}

func (s *settingsService) Set(key string, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}

func (s *settingsService) DailyColor() (string, error) {
	key := "color_" + s.now().Format(orderDateFormat)

	value, found, err := s.Get(key)
	if err != nil {
		return "", err
	}
	if found {
		return value, nil
	}

	color := dailyPalette[s.pick(len(dailyPalette))]
	if err := s.Set(key, color); err != nil {
		return "", err
	}
	return color, nil
}

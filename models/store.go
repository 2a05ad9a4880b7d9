package models

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Store struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name" binding:"required"`
	Code      string    `gorm:"size:64;uniqueIndex;not null" json:"code"`
	Timezone  string    `gorm:"size:64;default:'Asia/Tokyo'" json:"timezone"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func GetStoreById(ctx context.Context, tx *gorm.DB, storeId int) (*Store, error) {
	var store Store
	if err := tx.WithContext(ctx).First(&store, storeId).Error; err != nil {
		return nil, err
	}
	return &store, nil
}

// EffectiveTimezone falls back to Asia/Tokyo when the store row predates the
// timezone column.
func (s *Store) EffectiveTimezone() string {
	tz := strings.TrimSpace(s.Timezone)
	if tz == "" {
		return "Asia/Tokyo"
	}
	return tz
}

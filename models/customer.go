package models

import (
	"time"
)

type Customer struct {
	ID           int        `gorm:"primary_key" json:"id"`
	StoreId      int        `gorm:"index;not null" json:"store_id"`
	FullName     string     `gorm:"size:255" json:"full_name"`
	FullNameRuby string     `gorm:"size:255" json:"full_name_ruby"`
	Career       string     `gorm:"size:255" json:"career"`
	ZipCode      string     `gorm:"size:16" json:"zip_code"`
	Prefecture   string     `gorm:"size:64" json:"prefecture"`
	City         string     `gorm:"size:128" json:"city"`
	Street       string     `gorm:"size:255" json:"street"`
	Building     string     `gorm:"size:255" json:"building"`
	BirthDate    *time.Time `json:"birth_date"`
	CreatedAt    time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

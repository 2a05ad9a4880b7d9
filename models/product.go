package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product catalog graph. The ETL only reads these; CRUD lives in the
// surrounding back-office application.

type Genre struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	DisplayName string    `gorm:"size:255" json:"display_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Category struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	DisplayName string    `gorm:"size:255" json:"display_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Item struct {
	ID         int       `gorm:"primary_key" json:"id"`
	Name       string    `gorm:"size:255;not null" json:"name"`
	GenreId    int       `gorm:"index;default:null" json:"genre_id"`
	Genre      *Genre    `gorm:"foreignKey:GenreId" json:"genre"`
	CategoryId int       `gorm:"index;default:null" json:"category_id"`
	Category   *Category `gorm:"foreignKey:CategoryId" json:"category"`
	Rarity     string    `gorm:"size:64" json:"rarity"`
	ModelNo    string    `gorm:"size:64" json:"model_no"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type ConditionOption struct {
	ID          int       `gorm:"primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	DisplayName string    `gorm:"size:255" json:"display_name"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Specialty struct {
	ID        int       `gorm:"primary_key" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

type Product struct {
	ID                int              `gorm:"primary_key" json:"id"`
	StoreId           int              `gorm:"index;not null" json:"store_id"`
	ItemId            int              `gorm:"index;default:null" json:"item_id"`
	Item              *Item            `gorm:"foreignKey:ItemId" json:"item"`
	ConditionOptionId int              `gorm:"index;default:null" json:"condition_option_id"`
	ConditionOption   *ConditionOption `gorm:"foreignKey:ConditionOptionId" json:"condition_option"`
	SpecialtyId       int              `gorm:"index;default:null" json:"specialty_id"`
	Specialty         *Specialty       `gorm:"foreignKey:SpecialtyId" json:"specialty"`
	ManagementNumber  string           `gorm:"size:64" json:"management_number"`
	DisplayName       string           `gorm:"size:255" json:"display_name"`
	SellPrice         decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"sell_price"`
	WholesalePrice    decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"wholesale_price"`
	StockCount        int              `gorm:"default:0" json:"stock_count"`
	CreatedAt         time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt         time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

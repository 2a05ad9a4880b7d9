package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Loss is a finished stock write-off event. Its consumed wholesale cost is
// recovered from ProductWholesalePriceHistory rows at aggregation time.
type Loss struct {
	ID        int        `gorm:"primary_key" json:"id"`
	StoreId   int        `gorm:"index;not null" json:"store_id" binding:"required"`
	Status    LossStatus `gorm:"type:enum('Pending','Finished','Canceled');not null" json:"status"`
	Reason    string     `gorm:"size:255" json:"reason"`
	CreatedAt time.Time  `gorm:"autoCreateTime;index" json:"created_at"`
	UpdatedAt time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

// ProductWholesalePriceHistory tracks the wholesale cost consumed by a
// resource (loss, transaction, adjustment) at the unit prices in effect
// when the resource was recorded.
type ProductWholesalePriceHistory struct {
	ID           int                   `gorm:"primary_key" json:"id"`
	ResourceType WholesaleResourceType `gorm:"type:enum('Loss','Transaction','Adjustment');not null;index:idx_pwph_resource,priority:1" json:"resource_type"`
	ResourceId   int                   `gorm:"not null;index:idx_pwph_resource,priority:2" json:"resource_id"`
	ProductId    int                   `gorm:"index;default:null" json:"product_id"`
	ItemCount    int                   `gorm:"not null;default:0" json:"item_count"`
	UnitPrice    decimal.Decimal       `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	CreatedAt    time.Time             `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time             `gorm:"autoUpdateTime" json:"updated_at"`
}

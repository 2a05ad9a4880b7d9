package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailyProductFact is one denormalized row per transaction cart line, used
// by the per-product sales reports.
//
// Grain: one row per cart line across all completed sell/buy transactions of
// the day, returns included, no deduplication. ItemCount and
// WholesaleTotalPrice are signed (negative for returns); the remaining
// monetary fields are copied as recorded on the line.
//
// Denormalized product/item/category fields default to zero/empty when the
// catalog link is missing; a broken link must not fail the whole run.
type DailyProductFact struct {
	ID        int             `gorm:"primary_key" json:"id"`
	StoreId   int             `gorm:"not null;index:idx_dpf_store_day,priority:1" json:"store_id"`
	TargetDay time.Time       `gorm:"not null;index:idx_dpf_store_day,priority:2" json:"target_day"`
	Kind      TransactionKind `gorm:"type:enum('Sell','Buy');not null" json:"kind"`

	TransactionId int        `gorm:"index;not null" json:"transaction_id"`
	IsReturn      bool       `gorm:"not null;default:false" json:"is_return"`
	FinishedAt    *time.Time `json:"finished_at"`
	PaymentMethod string     `gorm:"size:32" json:"payment_method"`
	TaxKind       string     `gorm:"size:32" json:"tax_kind"`

	ProductId           int    `gorm:"index;not null" json:"product_id"`
	ProductName         string `gorm:"size:255" json:"product_name"`
	ManagementNumber    string `gorm:"size:64" json:"management_number"`
	ItemId              int    `gorm:"default:0" json:"item_id"`
	ItemName            string `gorm:"size:255" json:"item_name"`
	ItemRarity          string `gorm:"size:64" json:"item_rarity"`
	ItemModelNo         string `gorm:"size:64" json:"item_model_no"`
	GenreId             int    `gorm:"default:0" json:"genre_id"`
	GenreName           string `gorm:"size:255" json:"genre_name"`
	CategoryId          int    `gorm:"default:0" json:"category_id"`
	CategoryName        string `gorm:"size:255" json:"category_name"`
	ConditionOptionId   int    `gorm:"default:0" json:"condition_option_id"`
	ConditionOptionName string `gorm:"size:255" json:"condition_option_name"`
	SpecialtyId         int    `gorm:"default:0" json:"specialty_id"`
	SpecialtyName       string `gorm:"size:255" json:"specialty_name"`

	ItemCount           int              `gorm:"not null;default:0" json:"item_count"`
	WholesaleTotalPrice decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"wholesale_total_price"`
	SaleId              *int             `gorm:"default:null" json:"sale_id"`
	SaleDisplayName     string           `gorm:"size:255" json:"sale_display_name"`
	SaleDiscountPrice   decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"sale_discount_price"`
	OriginalUnitPrice   decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"original_unit_price"`
	UnitPrice           decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	DiscountPrice       decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"discount_price"`
	TotalDiscountPrice  *decimal.Decimal `gorm:"type:decimal(20,4);default:null" json:"total_discount_price"`
	TotalUnitPrice      decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"total_unit_price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

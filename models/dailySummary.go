package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DailySummary is the query-friendly per-day aggregate table used by the
// sales dashboards.
//
// Grain: (store_id, target_day, kind). A successful ETL run leaves exactly
// one Sell row and one Buy row per (store_id, target_day), even for days
// with zero activity.
//
// NOTE: This table is derived data and can be rebuilt from transactions
// (cmd/backfill-daily-summary).
type DailySummary struct {
	ID        int             `gorm:"primary_key" json:"id"`
	StoreId   int             `gorm:"not null;uniqueIndex:idx_ds_store_day_kind,priority:1" json:"store_id"`
	TargetDay time.Time       `gorm:"not null;uniqueIndex:idx_ds_store_day_kind,priority:2" json:"target_day"`
	Kind      TransactionKind `gorm:"type:enum('Sell','Buy');not null;uniqueIndex:idx_ds_store_day_kind,priority:3" json:"kind"`

	Price                     decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"price"`
	Count                     int             `gorm:"default:0" json:"count"`
	ReturnPrice               decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"return_price"`
	ReturnCount               int             `gorm:"default:0" json:"return_count"`
	WholesalePrice            decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"wholesale_price"`
	LossWholesalePrice        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"loss_wholesale_price"`
	BuyAssessedPrice          decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"buy_assessed_price"`
	ItemCount                 int             `gorm:"default:0" json:"item_count"`
	GivenPoint                decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"given_point"`
	UsedPoint                 decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"used_point"`
	SaleDiscountPrice         decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"sale_discount_price"`
	DiscountPrice             decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"discount_price"`
	CouponDiscountPrice       decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"coupon_discount_price"`
	ProductDiscountPrice      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"product_discount_price"`
	ProductTotalDiscountPrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"product_total_discount_price"`
	SetDealDiscountPrice      decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"set_deal_discount_price"`
	TotalDiscountPrice        decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_discount_price"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

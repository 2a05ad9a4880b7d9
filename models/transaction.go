package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transaction is one completed register operation (sell or buy). The daily
// ETL reads transactions whose status is Completed and whose finished_at
// falls inside the target day window.
type Transaction struct {
	ID                    int                  `gorm:"primary_key" json:"id"`
	StoreId               int                  `gorm:"index;not null" json:"store_id" binding:"required"`
	Kind                  TransactionKind      `gorm:"type:enum('Sell','Buy');not null" json:"kind" binding:"required"`
	Status                TransactionStatus    `gorm:"type:enum('Draft','Reserved','Completed','Canceled');not null" json:"status"`
	IsReturn              bool                 `gorm:"not null;default:false" json:"is_return"`
	CustomerId            *int                 `gorm:"index;default:null" json:"customer_id"`
	Customer              *Customer            `gorm:"foreignKey:CustomerId" json:"customer"`
	TotalSalePrice        decimal.Decimal      `gorm:"type:decimal(20,4);default:0" json:"total_sale_price"`
	DiscountPrice         decimal.Decimal      `gorm:"type:decimal(20,4);default:0" json:"discount_price"`
	CouponDiscountPrice   decimal.Decimal      `gorm:"type:decimal(20,4);default:0" json:"coupon_discount_price"`
	TotalDiscountPrice    decimal.Decimal      `gorm:"type:decimal(20,4);default:0" json:"total_discount_price"`
	PointAmount           decimal.Decimal      `gorm:"type:decimal(20,4);default:0" json:"point_amount"`
	PointDiscountPrice    decimal.Decimal      `gorm:"type:decimal(20,4);default:0" json:"point_discount_price"`
	BuyAssessedTotalPrice *decimal.Decimal     `gorm:"type:decimal(20,4);default:null" json:"buy_assessed_total_price"`
	TaxKind               string               `gorm:"size:32" json:"tax_kind"`
	PaymentMethod         string               `gorm:"size:32" json:"payment_method"`
	IdKind                string               `gorm:"size:32" json:"id_kind"`
	IdNumber              string               `gorm:"size:64" json:"id_number"`
	FinishedAt            *time.Time           `gorm:"index" json:"finished_at"`
	Carts                 []TransactionCart    `gorm:"foreignKey:TransactionId" json:"carts"`
	SetDealApplications   []SetDealApplication `gorm:"foreignKey:TransactionId" json:"set_deal_applications"`
	CreatedAt             time.Time            `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt             time.Time            `gorm:"autoUpdateTime" json:"updated_at"`
}

// TransactionCart is one product line on a transaction. ItemCount is an
// unsigned magnitude; the return sign is carried by Transaction.IsReturn.
type TransactionCart struct {
	ID                  int              `gorm:"primary_key" json:"id"`
	TransactionId       int              `gorm:"index;not null" json:"transaction_id" binding:"required"`
	ProductId           int              `gorm:"index;not null" json:"product_id" binding:"required"`
	Product             *Product         `gorm:"foreignKey:ProductId" json:"product"`
	ItemCount           int              `gorm:"not null;default:0" json:"item_count"`
	SaleId              *int             `gorm:"default:null" json:"sale_id"`
	SaleDisplayName     string           `gorm:"size:255" json:"sale_display_name"`
	SaleDiscountPrice   decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"sale_discount_price"`
	OriginalUnitPrice   decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"original_unit_price"`
	UnitPrice           decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"unit_price"`
	WholesaleTotalPrice decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"wholesale_total_price"`
	DiscountPrice       decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"discount_price"`
	TotalDiscountPrice  *decimal.Decimal `gorm:"type:decimal(20,4);default:null" json:"total_discount_price"`
	TotalUnitPrice      decimal.Decimal  `gorm:"type:decimal(20,4);default:0" json:"total_unit_price"`
	CreatedAt           time.Time        `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt           time.Time        `gorm:"autoUpdateTime" json:"updated_at"`
}

// SetDealApplication records one applied set deal on a transaction.
type SetDealApplication struct {
	ID                 int             `gorm:"primary_key" json:"id"`
	TransactionId      int             `gorm:"index;not null" json:"transaction_id" binding:"required"`
	SetDealId          int             `gorm:"index;default:null" json:"set_deal_id"`
	TotalDiscountPrice decimal.Decimal `gorm:"type:decimal(20,4);default:0" json:"total_discount_price"`
	ApplyCount         int             `gorm:"not null;default:0" json:"apply_count"`
	CreatedAt          time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time       `gorm:"autoUpdateTime" json:"updated_at"`
}

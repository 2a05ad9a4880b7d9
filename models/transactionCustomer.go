package models

import (
	"time"
)

// TransactionCustomer is the customer dimension snapshot taken per
// customer-bearing transaction at aggregation time. Address and age are
// frozen as of the run so later customer edits do not rewrite history.
//
// Insertion is duplicate-tolerant on transaction_id: reprocessing a day (or
// a retried run racing itself) must never error on an existing snapshot.
type TransactionCustomer struct {
	ID            int       `gorm:"primary_key" json:"id"`
	TransactionId int       `gorm:"uniqueIndex;not null" json:"transaction_id"`
	CustomerId    int       `gorm:"index;not null" json:"customer_id"`
	FullName      string    `gorm:"size:255" json:"full_name"`
	Address       string    `gorm:"size:512" json:"address"`
	Career        string    `gorm:"size:255" json:"career"`
	Age           int       `gorm:"default:0" json:"age"`
	IdKind        string    `gorm:"size:32" json:"id_kind"`
	IdNumber      string    `gorm:"size:64" json:"id_number"`
	CreatedAt     time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

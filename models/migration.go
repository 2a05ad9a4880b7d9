package models

import (
	"log"

	"github.com/retailcraft/pos_backend/config"
)

func MigrateTable() {
	db := config.GetDB()

	err := db.AutoMigrate(
		&Store{},
		&Genre{}, &Category{}, &Item{}, &ConditionOption{}, &Specialty{}, &Product{},
		&Customer{},
		&Transaction{}, &TransactionCart{}, &SetDealApplication{},
		&Loss{}, &ProductWholesalePriceHistory{},
		&DailySummary{}, &DailyProductFact{}, &TransactionCustomer{},
	)
	if err != nil {
		log.Fatal(err)
	}
}

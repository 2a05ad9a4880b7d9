package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/retailcraft/pos_backend/config"
	"github.com/retailcraft/pos_backend/models"
)

// export-daily-summary writes a store's daily summaries over a date range to
// an .xlsx file, the hand-off format the back office expects.
func main() {
	storeID := flag.Int("store-id", 0, "Store id to export (required)")
	from := flag.String("from", "", "Start date (YYYY-MM-DD, required)")
	to := flag.String("to", "", "End date (YYYY-MM-DD, required)")
	out := flag.String("out", "daily_summaries.xlsx", "Output file path")
	flag.Parse()

	if *storeID <= 0 || *from == "" || *to == "" {
		fmt.Fprintln(os.Stderr, "--store-id, --from and --to are required")
		os.Exit(1)
	}
	start, err := time.Parse("2006-01-02", *from)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --from %q: %v\n", *from, err)
		os.Exit(1)
	}
	end, err := time.Parse("2006-01-02", *to)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid --to %q: %v\n", *to, err)
		os.Exit(1)
	}

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}

	var summaries []models.DailySummary
	err = db.WithContext(ctx).
		Where("store_id = ? AND target_day BETWEEN ? AND ?", *storeID, start, end).
		Order("target_day ASC, kind ASC").
		Find(&summaries).Error
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load summaries: %v\n", err)
		os.Exit(1)
	}

	if err := exportExcel(summaries, *out); err != nil {
		fmt.Fprintf(os.Stderr, "export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d rows to %s\n", len(summaries), *out)
}

func exportExcel(data []models.DailySummary, filename string) error {
	f := excelize.NewFile()
	sheetName := "Sheet1"
	_, err := f.NewSheet(sheetName)
	if err != nil {
		return err
	}

	headings := []string{
		"TargetDay", "Kind", "Price", "Count", "ReturnPrice", "ReturnCount",
		"WholesalePrice", "LossWholesalePrice", "BuyAssessedPrice", "ItemCount",
		"GivenPoint", "UsedPoint", "SaleDiscountPrice", "DiscountPrice",
		"CouponDiscountPrice", "ProductDiscountPrice", "ProductTotalDiscountPrice",
		"SetDealDiscountPrice", "TotalDiscountPrice",
	}
	for i, h := range headings {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		f.SetCellValue(sheetName, cell, h)
	}

	for rowIdx, d := range data {
		values := []interface{}{
			d.TargetDay.Format("2006-01-02"), string(d.Kind),
			d.Price.String(), d.Count, d.ReturnPrice.String(), d.ReturnCount,
			d.WholesalePrice.String(), d.LossWholesalePrice.String(), d.BuyAssessedPrice.String(), d.ItemCount,
			d.GivenPoint.String(), d.UsedPoint.String(), d.SaleDiscountPrice.String(), d.DiscountPrice.String(),
			d.CouponDiscountPrice.String(), d.ProductDiscountPrice.String(), d.ProductTotalDiscountPrice.String(),
			d.SetDealDiscountPrice.String(), d.TotalDiscountPrice.String(),
		}
		for colIdx, v := range values {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			f.SetCellValue(sheetName, cell, v)
		}
	}

	return f.SaveAs(filename)
}

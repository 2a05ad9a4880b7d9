package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/retailcraft/pos_backend/config"
	"github.com/retailcraft/pos_backend/models"
	"github.com/retailcraft/pos_backend/utils"
)

// enqueue-daily-etl is the scheduler entrypoint. Run it once a day (Cloud
// Scheduler, cron) and it publishes one aggregation job per store for the
// given day, defaulting to yesterday in each store's timezone. The actual
// work happens in cmd/etl-worker.
func main() {
	storeID := flag.Int("store-id", 0, "Optional: enqueue only one store. If 0, enqueues all stores.")
	day := flag.String("day", "", "Optional: target day (YYYY-MM-DD). Defaults to yesterday in the store timezone.")
	flag.Parse()

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}

	var stores []models.Store
	storeQuery := db.WithContext(ctx).Model(&models.Store{})
	if *storeID > 0 {
		storeQuery = storeQuery.Where("id = ?", *storeID)
	}
	if err := storeQuery.Find(&stores).Error; err != nil {
		fmt.Fprintf(os.Stderr, "failed to list stores: %v\n", err)
		os.Exit(1)
	}
	if len(stores) == 0 {
		fmt.Fprintln(os.Stderr, "no stores found")
		return
	}

	correlationId := uuid.NewString()
	var published, failed int
	for _, s := range stores {
		targetDay := *day
		if targetDay == "" {
			d, err := utils.ConvertToDate(time.Now().UTC(), s.EffectiveTimezone())
			if err != nil {
				fmt.Fprintf(os.Stderr, "store %d: %v\n", s.ID, err)
				failed++
				continue
			}
			targetDay = d.AddDate(0, 0, -1).Format("2006-01-02")
		}

		err := config.PublishEtlJobWithTimeout(config.EtlJobMessage{
			StoreId:       s.ID,
			TargetDay:     targetDay,
			CorrelationId: correlationId,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "store %d day %s: publish failed: %v\n", s.ID, targetDay, err)
			failed++
			continue
		}
		published++
	}

	fmt.Printf("Enqueued %d job(s), %d failed (correlation_id=%s)\n", published, failed, correlationId)
	if failed > 0 {
		os.Exit(1)
	}
}

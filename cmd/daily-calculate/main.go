package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/retailcraft/pos_backend/config"
	"github.com/retailcraft/pos_backend/etl"
	"github.com/retailcraft/pos_backend/models"
)

func main() {
	storeID := flag.Int("store-id", 0, "Store id to aggregate (required)")
	day := flag.String("day", "", "Target day (YYYY-MM-DD, store-local). Defaults to yesterday in the store timezone.")
	skipLock := flag.Bool("skip-lock", false, "Skip the per-(store,day) run lock (local/dev only)")
	flag.Parse()

	if *storeID <= 0 {
		fmt.Fprintln(os.Stderr, "--store-id is required")
		os.Exit(1)
	}

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}

	// Ensure schema is up-to-date (creates daily_summaries etc. if missing).
	models.MigrateTable()

	store, err := models.GetStoreById(ctx, db, *storeID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store %d not found: %v\n", *storeID, err)
		os.Exit(1)
	}
	loc, err := time.LoadLocation(store.EffectiveTimezone())
	if err != nil {
		fmt.Fprintf(os.Stderr, "store %d has invalid timezone %q: %v\n", *storeID, store.Timezone, err)
		os.Exit(1)
	}

	var targetDay time.Time
	if *day == "" {
		targetDay = time.Now().In(loc).AddDate(0, 0, -1)
	} else {
		targetDay, err = time.ParseInLocation("2006-01-02", *day, loc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "invalid --day %q: %v\n", *day, err)
			os.Exit(1)
		}
	}

	if !*skipLock {
		config.ConnectRedisWithRetry()
		lock, err := etl.ObtainRunLock(ctx, *storeID, targetDay)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer func() { _ = lock.Release(ctx) }()
	}

	if err := etl.DailyCalculate(ctx, *storeID, targetDay); err != nil {
		fmt.Fprintf(os.Stderr, "daily calculate failed (store=%d day=%s): %v\n", *storeID, targetDay.Format("2006-01-02"), err)
		os.Exit(1)
	}

	fmt.Printf("Daily aggregates rebuilt store=%d day=%s\n", *storeID, targetDay.Format("2006-01-02"))
}

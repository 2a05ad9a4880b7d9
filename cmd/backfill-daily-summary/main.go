package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/retailcraft/pos_backend/config"
	"github.com/retailcraft/pos_backend/etl"
	"github.com/retailcraft/pos_backend/models"
	"github.com/retailcraft/pos_backend/utils"
)

func main() {
	storeID := flag.Int("store-id", 0, "Optional: backfill only one store. If 0, backfills all stores.")
	from := flag.String("from", "", "Optional: start date (YYYY-MM-DD). Defaults to the store's first transaction day.")
	to := flag.String("to", "", "Optional: end date (YYYY-MM-DD). Defaults to yesterday in the store timezone.")
	skipLock := flag.Bool("skip-lock", false, "Skip the per-(store,day) run lock (local/dev only)")
	flag.Parse()

	ctx := context.Background()
	config.ConnectDatabaseWithRetry()
	db := config.GetDB()
	if db == nil {
		fmt.Fprintln(os.Stderr, "database not initialized (config.GetDB returned nil)")
		os.Exit(1)
	}
	if !*skipLock {
		config.ConnectRedisWithRetry()
	}

	// Ensure schema is up-to-date (creates daily_summaries etc. if missing).
	models.MigrateTable()

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
		fmt.Fprintln(os.Stderr, "no stores found to backfill")
		return
	}

	for _, s := range stores {
		loc, err := time.LoadLocation(s.EffectiveTimezone())
		if err != nil {
			fmt.Fprintf(os.Stderr, "store %d: invalid timezone %q: %v\n", s.ID, s.Timezone, err)
			continue
		}

		start, end, err := resolveRange(ctx, &s, loc, strings.TrimSpace(*from), strings.TrimSpace(*to))
		if err != nil {
			fmt.Fprintf(os.Stderr, "store %d: %v\n", s.ID, err)
			continue
		}
		if start.IsZero() {
			fmt.Printf("store %d has no completed transactions; skipping\n", s.ID)
			continue
		}
		if start.After(end) {
			fmt.Printf("store %d: nothing to backfill (from=%s to=%s)\n", s.ID, start.Format("2006-01-02"), end.Format("2006-01-02"))
			continue
		}

		fmt.Printf("Backfilling daily aggregates store=%d from=%s to=%s\n",
			s.ID, start.Format("2006-01-02"), end.Format("2006-01-02"))

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			if err := runDay(ctx, s.ID, d, *skipLock); err != nil {
				fmt.Fprintf(os.Stderr, "store %d day %s failed: %v\n", s.ID, d.Format("2006-01-02"), err)
				// Keep going: each day is independent and safely re-runnable.
				continue
			}
		}
	}

	fmt.Println("Backfill complete")
}

func runDay(ctx context.Context, storeID int, day time.Time, skipLock bool) error {
	if !skipLock {
		lock, err := etl.ObtainRunLock(ctx, storeID, day)
		if err != nil {
			return err
		}
		defer func() { _ = lock.Release(ctx) }()
	}
	return etl.DailyCalculate(ctx, storeID, day)
}

// resolveRange picks the [from, to] day range for one store. The default
// range runs from the store's first completed transaction (store-local day)
// through yesterday; today is excluded because its transactions are still
// accumulating.
func resolveRange(ctx context.Context, s *models.Store, loc *time.Location, from, to string) (time.Time, time.Time, error) {
	db := config.GetDB()

	var start time.Time
	if from != "" {
		d, err := time.ParseInLocation("2006-01-02", from, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from %q: %w", from, err)
		}
		start = d
	} else {
		var first *time.Time
		err := db.WithContext(ctx).Model(&models.Transaction{}).
			Where("store_id = ? AND status = ?", s.ID, models.TransactionStatusCompleted).
			Select("MIN(finished_at)").Scan(&first).Error
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("failed to find first transaction: %w", err)
		}
		if first == nil {
			return time.Time{}, time.Time{}, nil
		}
		d, err := utils.ConvertToDate(*first, s.EffectiveTimezone())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		start = d
	}

	var end time.Time
	if to != "" {
		d, err := time.ParseInLocation("2006-01-02", to, loc)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to %q: %w", to, err)
		}
		end = d
	} else {
		d, err := utils.ConvertToDate(time.Now().UTC(), s.EffectiveTimezone())
		if err != nil {
			return time.Time{}, time.Time{}, err
		}
		end = d.AddDate(0, 0, -1)
	}

	return start, end, nil
}

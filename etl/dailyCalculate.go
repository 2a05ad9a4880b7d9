package etl

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/retailcraft/pos_backend/config"
	"github.com/retailcraft/pos_backend/models"
	"github.com/retailcraft/pos_backend/utils"
)

const etlModule = "etl"

// transactionTimeout bounds the delete-and-rewrite transaction. A full day
// of a busy store can take minutes to rewrite; the job is not
// latency-sensitive but must not be killed mid-flight by a short default.
const transactionTimeout = 5 * time.Minute

const insertBatchSize = 500

var tracer = otel.Tracer("pos_backend/etl")

// DailyCalculate rebuilds the daily aggregates for one (store, day) pair:
// two DailySummary rows (Sell and Buy, always both), one DailyProductFact
// row per cart line, and one TransactionCustomer snapshot per
// customer-bearing transaction.
//
// The previous output for the key is deleted and re-inserted inside a single
// DB transaction, so a rerun replaces the day instead of accumulating onto
// it, and a failed run leaves the previous output untouched.
func DailyCalculate(ctx context.Context, storeId int, targetDay time.Time) error {
	logger := config.GetLogger()
	db := config.GetDB()

	ctx, span := tracer.Start(ctx, "etl.DailyCalculate")
	defer span.End()
	span.SetAttributes(attribute.Int("store_id", storeId))

	store, err := models.GetStoreById(ctx, db, storeId)
	if err != nil {
		config.LogError(logger, etlModule, "DailyCalculate", "load store", storeId, err)
		return err
	}

	day, err := utils.ConvertToDate(targetDay, store.EffectiveTimezone())
	if err != nil {
		config.LogError(logger, etlModule, "DailyCalculate", "normalize target day", targetDay, err)
		return err
	}
	dayStart, dayEnd := utils.DayWindow(day)
	span.SetAttributes(attribute.String("target_day", day.Format("2006-01-02")))

	// Snapshot fetch. The two reads are independent; run them concurrently
	// on the pool (a gorm transaction handle is not safe for concurrent use).
	var (
		transactions []models.Transaction
		lossIds      []int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return db.WithContext(gctx).
			Preload("Carts.Product.Item.Genre").
			Preload("Carts.Product.Item.Category").
			Preload("Carts.Product.ConditionOption").
			Preload("Carts.Product.Specialty").
			Preload("SetDealApplications").
			Preload("Customer").
			Where("store_id = ? AND status = ? AND finished_at >= ? AND finished_at < ?",
				storeId, models.TransactionStatusCompleted, dayStart, dayEnd).
			Find(&transactions).Error
	})
	g.Go(func() error {
		return db.WithContext(gctx).Model(&models.Loss{}).
			Where("store_id = ? AND status = ? AND created_at >= ? AND created_at < ?",
				storeId, models.LossStatusFinished, dayStart, dayEnd).
			Pluck("id", &lossIds).Error
	})
	if err := g.Wait(); err != nil {
		config.LogError(logger, etlModule, "DailyCalculate", "snapshot fetch", storeId, err)
		return err
	}

	result := foldTransactions(transactions, storeId, day)

	// Loss cost is shrinkage against sell-side margin; it never touches the
	// buy summary or any item count.
	if len(lossIds) > 0 {
		var histories []models.ProductWholesalePriceHistory
		if err := db.WithContext(ctx).
			Where("resource_type = ? AND resource_id IN ?", models.WholesaleResourceTypeLoss, lossIds).
			Find(&histories).Error; err != nil {
			config.LogError(logger, etlModule, "DailyCalculate", "fetch loss wholesale history", lossIds, err)
			return err
		}
		result.sell.lossWholesalePrice = result.sell.lossWholesalePrice.Add(lossWholesaleTotal(histories))
	}

	txCtx, cancel := context.WithTimeout(ctx, transactionTimeout)
	defer cancel()

	err = db.WithContext(txCtx).Transaction(func(tx *gorm.DB) error {
		// Idempotent reset: drop whatever a previous run wrote for this key.
		if err := tx.Where("store_id = ? AND target_day = ?", storeId, day).
			Delete(&models.DailyProductFact{}).Error; err != nil {
			return err
		}
		if err := tx.Where("store_id = ? AND target_day = ?", storeId, day).
			Delete(&models.DailySummary{}).Error; err != nil {
			return err
		}

		// Both summary rows are written even for an all-zero day, so
		// downstream readers can tell "processed, nothing happened" from
		// "never processed".
		summaries := []*models.DailySummary{
			result.sell.toDailySummary(storeId, day, models.TransactionKindSell),
			result.buy.toDailySummary(storeId, day, models.TransactionKindBuy),
		}
		if err := tx.Create(&summaries).Error; err != nil {
			return err
		}

		if len(result.facts) > 0 {
			if err := tx.CreateInBatches(result.facts, insertBatchSize).Error; err != nil {
				return err
			}
		}

		// Customer snapshots are keyed by transaction_id; an existing row
		// from an earlier run wins and the insert moves on.
		if len(result.customers) > 0 {
			if err := tx.Clauses(clause.OnConflict{DoNothing: true}).
				CreateInBatches(result.customers, insertBatchSize).Error; err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		config.LogError(logger, etlModule, "DailyCalculate", "rewrite daily aggregates", storeId, err)
		return err
	}

	logger.WithFields(logrus.Fields{
		"module":       etlModule,
		"store_id":     storeId,
		"target_day":   day.Format("2006-01-02"),
		"transactions": len(transactions),
		"facts":        len(result.facts),
		"customers":    len(result.customers),
		"losses":       len(lossIds),
	}).Info("daily aggregates rebuilt")

	return nil
}

package etl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bsm/redislock"

	"github.com/retailcraft/pos_backend/config"
)

// runLockTTL must outlive the write transaction budget so a crashed holder
// frees the key on its own.
const runLockTTL = transactionTimeout + time.Minute

// ObtainRunLock serializes ETL runs per (store, day) across instances.
// Two concurrent runs for the same key would interleave their delete and
// insert phases, so every driver takes this lock before calling
// DailyCalculate. The caller releases the returned lock.
func ObtainRunLock(ctx context.Context, storeId int, targetDay time.Time) (*redislock.Lock, error) {
	logger := config.GetLogger()
	locker := config.GetRedisLock()
	if locker == nil {
		err := errors.New("redis lock is nil")
		config.LogError(logger, etlModule, "ObtainRunLock", "Redis lock not initialized", storeId, err)
		return nil, errors.New("service not ready (redis lock not initialized)")
	}

	lockKey := fmt.Sprintf("daily-etl:%d:%s", storeId, targetDay.Format("2006-01-02"))
	lock, err := locker.Obtain(ctx, lockKey, runLockTTL, nil)
	if err == redislock.ErrNotObtained {
		config.LogError(logger, etlModule, "ObtainRunLock", "Could not obtain run lock", lockKey, err)
		return nil, fmt.Errorf("daily etl already running for store_id=%d target_day=%s", storeId, targetDay.Format("2006-01-02"))
	} else if err != nil {
		config.LogError(logger, etlModule, "ObtainRunLock", "Error obtaining run lock", lockKey, err)
		return nil, err
	}
	return lock, nil
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/pubsub"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/retailcraft/pos_backend/appctx"
	"github.com/retailcraft/pos_backend/config"
	"github.com/retailcraft/pos_backend/etl"
	"github.com/retailcraft/pos_backend/models"
)

const workerModule = "etl-worker"

// etl-worker consumes aggregation jobs from Pub/Sub. The scheduler (Cloud
// Scheduler or any cron) publishes one EtlJobMessage per store per day;
// backfills publish one message per historical day.
//
// Delivery is at-least-once. That is safe here: a run fully replaces its
// (store, day) output, and the per-key run lock stops concurrent duplicates.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	config.ConnectDatabaseWithRetry()
	config.ConnectRedisWithRetry()
	models.MigrateTable()

	logger := config.GetLogger()
	validate := validator.New()

	client, err := config.GetPubSubClient(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "pubsub client: %v\n", err)
		os.Exit(1)
	}

	topicName := os.Getenv("ETL_PUBSUB_TOPIC")
	if topicName == "" {
		topicName = "daily-etl-jobs"
	}
	subName := os.Getenv("ETL_PUBSUB_SUBSCRIPTION")
	if subName == "" {
		subName = topicName + "-worker"
	}

	topic, err := config.CreateTopicIfNotExists(client, topicName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "topic %q: %v\n", topicName, err)
		os.Exit(1)
	}
	sub, err := config.CreateSubscriptionIfNotExists(client, subName, topic)
	if err != nil {
		fmt.Fprintf(os.Stderr, "subscription %q: %v\n", subName, err)
		os.Exit(1)
	}

	logger.WithFields(logrus.Fields{
		"module":       workerModule,
		"topic":        topicName,
		"subscription": subName,
	}).Info("etl worker listening")

	err = sub.Receive(ctx, func(msgCtx context.Context, m *pubsub.Message) {
		var job config.EtlJobMessage
		if err := json.Unmarshal(m.Data, &job); err != nil {
			config.LogError(logger, workerModule, "Receive", "malformed job payload", string(m.Data), err)
			// Malformed payloads never become valid; drop instead of redelivering forever.
			m.Ack()
			return
		}
		if err := validate.Struct(job); err != nil {
			config.LogError(logger, workerModule, "Receive", "invalid job payload", job, err)
			m.Ack()
			return
		}

		targetDay, err := time.Parse("2006-01-02", job.TargetDay)
		if err != nil {
			config.LogError(logger, workerModule, "Receive", "invalid target_day", job.TargetDay, err)
			m.Ack()
			return
		}

		jobCtx := appctx.Set(msgCtx, appctx.ContextKeyJobName, "DailyCalculate")
		if job.CorrelationId != "" {
			jobCtx = appctx.Set(jobCtx, appctx.ContextKeyCorrelationId, job.CorrelationId)
		}

		if err := runJob(jobCtx, job.StoreId, targetDay); err != nil {
			config.LogError(logger, workerModule, "Receive", "job failed", job, err)
			// Nack for redelivery; the run is idempotent so a retry is safe.
			m.Nack()
			return
		}
		m.Ack()
	})
	if err != nil && ctx.Err() == nil {
		fmt.Fprintf(os.Stderr, "receive: %v\n", err)
		os.Exit(1)
	}
}

func runJob(ctx context.Context, storeID int, targetDay time.Time) error {
	lock, err := etl.ObtainRunLock(ctx, storeID, targetDay)
	if err != nil {
		return err
	}
	defer func() { _ = lock.Release(ctx) }()

	return etl.DailyCalculate(ctx, storeID, targetDay)
}

package jobs

import (
	"context"
	"encoding/json"
	"log"

	"github.com/NITHINKR06/wellness/src/database"
	"github.com/NITHINKR06/wellness/src/services/assessments"

	"github.com/hibiken/asynq"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// HandleRefreshStatsTask recomputes the cached stats snapshot. A stale or
// missing cache is not an error for readers (they fall back to Mongo), so the
// task only logs per-owner failures and keeps going.
func HandleRefreshStatsTask(ctx context.Context, t *asynq.Task) error {
	var payload StatsPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		log.Println("❌ Payload decode error:", err)
		return err
	}

	if payload.OwnerID != "" {
		ownerID, err := primitive.ObjectIDFromHex(payload.OwnerID)
		if err != nil {
			return err
		}
		return assessments.RefreshStats(ctx, ownerID)
	}

	owners, err := assessments.ActiveOwnerIDs(ctx)
	if err != nil {
		return err
	}

	for _, ownerID := range owners {
		if err := assessments.RefreshStats(ctx, ownerID); err != nil {
			log.Println("⚠️ Stats refresh failed for owner", ownerID.Hex(), ":", err)
		}
	}

	log.Printf("✅ Stats snapshot refreshed for %d owners", len(owners))
	return nil
}

// StartWorker runs the asynq server in the background. No-op without Redis.
func StartWorker() {
	if database.RedisURI == "" || database.RedisClient == nil {
		log.Println("⚠️ Redis not available. Background worker disabled.")
		return
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: database.RedisURI},
		asynq.Config{Concurrency: 1},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypeRefreshStats, HandleRefreshStatsTask)

	go func() {
		if err := srv.Run(mux); err != nil {
			log.Println("❌ Asynq worker stopped:", err)
		}
	}()
}

// StartScheduler enqueues the periodic stats snapshot. No-op without Redis.
func StartScheduler() {
	if database.RedisURI == "" || database.RedisClient == nil {
		return
	}

	scheduler := asynq.NewScheduler(asynq.RedisClientOpt{Addr: database.RedisURI}, nil)

	task, err := NewRefreshStatsTask("")
	if err != nil {
		log.Println("❌ Failed to build stats task:", err)
		return
	}
	if _, err := scheduler.Register("@every 10m", task); err != nil {
		log.Println("❌ Failed to register stats schedule:", err)
		return
	}

	go func() {
		if err := scheduler.Run(); err != nil {
			log.Println("❌ Asynq scheduler stopped:", err)
		}
	}()
}

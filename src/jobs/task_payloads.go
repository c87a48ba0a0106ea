package jobs

import (
	"encoding/json"
	"log"

	"github.com/NITHINKR06/wellness/src/database"

	"github.com/hibiken/asynq"
)

const TypeRefreshStats = "stats:refresh"

type StatsPayload struct {
	OwnerID string `json:"owner_id"` // empty = refresh every active owner
}

func NewRefreshStatsTask(ownerID string) (*asynq.Task, error) {
	payload, err := json.Marshal(StatsPayload{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeRefreshStats, payload), nil
}

// EnqueueRefreshStats queues an eager snapshot rebuild for one owner after a
// write, so the next stats read hits a warm cache instead of waiting for the
// periodic schedule. No-op without Redis; readers fall back to Mongo either
// way, so failures are logged and swallowed.
func EnqueueRefreshStats(ownerID string) {
	if database.AsynqClient == nil {
		return
	}

	task, err := NewRefreshStatsTask(ownerID)
	if err != nil {
		log.Println("❌ Failed to build stats task:", err)
		return
	}
	if _, err := database.AsynqClient.Enqueue(task); err != nil {
		log.Println("⚠️ Stats refresh enqueue failed for owner", ownerID, ":", err)
	}
}

package client

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/NITHINKR06/wellness/src/models"

	"github.com/google/uuid"
)

const queueKey = "offline_submission_queue"

// QueuedSubmission lives only on the device, until successfully replayed.
type QueuedSubmission struct {
	ID         string                      `json:"id"`
	Submission models.AssessmentSubmission `json:"submission"`
	QueuedAt   time.Time                   `json:"queuedAt"`
}

// DrainResult reports one replay pass.
type DrainResult struct {
	Synced    int `json:"synced"`
	Remaining int `json:"remaining"`
}

// SubmitFunc performs the same server round-trip as a live submission.
type SubmitFunc func(ctx context.Context, submission models.AssessmentSubmission) (*models.StoredAssessment, error)

// Queue is a durable FIFO of not-yet-submitted assessments. The whole queue
// is persisted as one JSON blob; every write replaces it atomically, so a
// failed write never leaves a partially-updated queue behind.
type Queue struct {
	mu      sync.Mutex // guards the stored blob
	drainMu sync.Mutex // serializes replay passes
	store   KVStore
}

func NewQueue(store KVStore) *Queue {
	return &Queue{store: store}
}

func (q *Queue) load() ([]QueuedSubmission, error) {
	raw, err := q.store.Get(queueKey)
	if err != nil {
		return nil, &models.StorageError{Op: "queue read", Err: err}
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var items []QueuedSubmission
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, &models.StorageError{Op: "queue decode", Err: err}
	}
	return items, nil
}

func (q *Queue) persist(items []QueuedSubmission) error {
	if len(items) == 0 {
		if err := q.store.Remove(queueKey); err != nil {
			return &models.StorageError{Op: "queue clear", Err: err}
		}
		return nil
	}

	raw, err := json.Marshal(items)
	if err != nil {
		return &models.StorageError{Op: "queue encode", Err: err}
	}
	if err := q.store.Set(queueKey, raw); err != nil {
		return &models.StorageError{Op: "queue write", Err: err}
	}
	return nil
}

// Enqueue appends the submission with the current timestamp.
func (q *Queue) Enqueue(submission models.AssessmentSubmission) error {
	q.mu.Lock()
	defer q.mu.Unlock()

	items, err := q.load()
	if err != nil {
		return err
	}

	items = append(items, QueuedSubmission{
		ID:         uuid.NewString(),
		Submission: submission,
		QueuedAt:   time.Now().UTC(),
	})
	return q.persist(items)
}

// Count current queue length, for the "pending submissions" indicator.
func (q *Queue) Count() (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	items, err := q.load()
	if err != nil {
		return 0, err
	}
	return len(items), nil
}

// Drain replays the queued items in FIFO order through submitFn, working on
// a snapshot taken at the start (items enqueued mid-drain wait for the next
// pass). A network-class failure stops the pass and retains the current item
// onward; any other failure drops the item so one poisoned entry can never
// block the queue forever.
func (q *Queue) Drain(ctx context.Context, submitFn SubmitFunc) (DrainResult, error) {
	q.drainMu.Lock()
	defer q.drainMu.Unlock()

	q.mu.Lock()
	items, err := q.load()
	q.mu.Unlock()
	if err != nil {
		return DrainResult{}, err
	}

	// The storage lock is released for the round-trips so Enqueue never
	// blocks behind a slow replay.
	synced := 0
	var retained []QueuedSubmission
	for i, item := range items {
		_, err := submitFn(ctx, item.Submission)
		if err == nil {
			synced++
			continue
		}

		if models.IsNetworkError(err) {
			retained = items[i:]
			break
		}

		log.Printf("[queue] dropping rejected submission %s: %v", item.ID, err)
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	result := DrainResult{Synced: synced, Remaining: len(retained)}

	// Anything enqueued during the pass sits after the snapshot; keep it for
	// the next pass.
	current, err := q.load()
	if err != nil {
		return result, err
	}
	if len(current) > len(items) {
		retained = append(retained[:len(retained):len(retained)], current[len(items):]...)
	}

	if err := q.persist(retained); err != nil {
		return result, err
	}
	return result, nil
}

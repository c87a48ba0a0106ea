package client

import (
	"context"
	"log"
	"sync/atomic"

	"github.com/NITHINKR06/wellness/src/models"
	"github.com/NITHINKR06/wellness/src/riskmodel"
)

// Connectivity is the device's online/offline signal (NetInfo or similar).
type Connectivity interface {
	Online() bool
}

// HealthConnectivity answers the online/offline question by pinging the
// backend health endpoint. It is the fallback signal where no platform
// listener exists (desktop builds, integration harnesses).
type HealthConnectivity struct {
	api *APIClient
}

func NewHealthConnectivity(api *APIClient) *HealthConnectivity {
	return &HealthConnectivity{api: api}
}

func (h *HealthConnectivity) Online() bool {
	return h.api.Health(context.Background())
}

// SubmitOutcome distinguishes "stored on the server" from "queued offline".
// Queued offline is NOT an error: the caller shows a different message and
// the submission is replayed on reconnect.
type SubmitOutcome struct {
	Stored        *models.StoredAssessment
	QueuedOffline bool
}

// Coordinator orchestrates submit-or-enqueue and flush-on-reconnect.
type Coordinator struct {
	api          API
	queue        *Queue
	connectivity Connectivity
	history      *History

	draining atomic.Bool // single-flight flag, one coordinator per process
}

func NewCoordinator(api API, queue *Queue, connectivity Connectivity, history *History) *Coordinator {
	return &Coordinator{
		api:          api,
		queue:        queue,
		connectivity: connectivity,
		history:      history,
	}
}

// Submit sends the questionnaire if online, otherwise queues it. A
// network-class failure mid-flight also queues: the user must never read it
// as data loss. Server rejections (validation, auth) are surfaced as hard
// failures and never queued - resubmitting a rejected payload would just be
// rejected again.
func (c *Coordinator) Submit(ctx context.Context, submission models.AssessmentSubmission) (SubmitOutcome, error) {
	if !c.connectivity.Online() {
		if err := c.queue.Enqueue(submission); err != nil {
			return SubmitOutcome{}, err
		}
		return SubmitOutcome{QueuedOffline: true}, nil
	}

	stored, err := c.api.SubmitAssessment(ctx, submission)
	if err == nil {
		c.history.AfterSubmit(*stored)
		return SubmitOutcome{Stored: stored}, nil
	}

	if models.IsNetworkError(err) {
		if qerr := c.queue.Enqueue(submission); qerr != nil {
			return SubmitOutcome{}, qerr
		}
		return SubmitOutcome{QueuedOffline: true}, nil
	}

	return SubmitOutcome{}, err
}

// Delete removes the assessment optimistically from the local view before
// the server round-trip, keeping the UI responsive. If the call fails the
// view transiently disagrees with the server until the next Refresh.
func (c *Coordinator) Delete(ctx context.Context, id string) error {
	c.history.AfterDelete(id)
	return c.api.DeleteAssessment(ctx, id)
}

// HandleConnectivityChange is the hook for the device connectivity listener.
// A transition to online triggers a reconcile.
func (c *Coordinator) HandleConnectivityChange(ctx context.Context, online bool) {
	if !online {
		return
	}
	if _, err := c.ReconcileOnReconnect(ctx); err != nil {
		log.Println("[coordinator] reconcile failed:", err)
	}
}

// ReconcileOnReconnect drains the offline queue through the live submit
// path. Only one drain runs at a time; a trigger while one is in flight is a
// no-op so duplicate replays cannot race each other. When anything synced,
// the local history is refreshed from the server.
func (c *Coordinator) ReconcileOnReconnect(ctx context.Context) (DrainResult, error) {
	if !c.draining.CompareAndSwap(false, true) {
		return DrainResult{}, nil
	}
	defer c.draining.Store(false)

	result, err := c.queue.Drain(ctx, c.api.SubmitAssessment)
	if err != nil {
		return result, err
	}

	if result.Synced > 0 && c.history != nil {
		if err := c.history.Refresh(ctx); err != nil {
			log.Println("[coordinator] history refresh after drain failed:", err)
		}
	}
	return result, nil
}

// Pending reports the queue length for the "pending submissions" indicator.
func (c *Coordinator) Pending() (int, error) {
	return c.queue.Count()
}

// PreviewScore computes a local, non-authoritative score for UX feedback
// while offline. Persisted labels always come from the server.
func PreviewScore(responses models.ResponseSet) models.ScoredResult {
	return riskmodel.Score(responses)
}

package client

import (
	"context"
	"sync"

	"github.com/NITHINKR06/wellness/src/models"
)

// History is the in-memory view of the user's active assessments. The server
// is authoritative: Refresh replaces the whole view, while AfterSubmit and
// AfterDelete apply optimistic local edits that the next Refresh reconciles.
type History struct {
	mu    sync.Mutex
	api   API
	items []models.StoredAssessment
}

func NewHistory(api API) *History {
	return &History{api: api}
}

// Refresh replaces the entire local view with the server state. No
// incremental merge: re-fetching is always safe.
func (h *History) Refresh(ctx context.Context) error {
	items, err := h.api.ListAssessments(ctx)
	if err != nil {
		return err
	}

	h.mu.Lock()
	h.items = items
	h.mu.Unlock()
	return nil
}

// AfterSubmit prepends the new result, preserving most-recent-first order
// without a full round-trip.
func (h *History) AfterSubmit(stored models.StoredAssessment) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.items = append([]models.StoredAssessment{stored}, h.items...)
}

// AfterDelete removes the record locally before the server confirms.
func (h *History) AfterDelete(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	kept := h.items[:0]
	for _, item := range h.items {
		if item.ID.Hex() != id {
			kept = append(kept, item)
		}
	}
	h.items = kept
}

// Items returns a copy of the current view.
func (h *History) Items() []models.StoredAssessment {
	h.mu.Lock()
	defer h.mu.Unlock()

	out := make([]models.StoredAssessment, len(h.items))
	copy(out, h.items)
	return out
}

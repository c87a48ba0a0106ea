package client

import (
	"context"
	"testing"
	"time"

	"github.com/NITHINKR06/wellness/src/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func storedAt(ts time.Time) models.StoredAssessment {
	return models.StoredAssessment{
		ID:        primitive.NewObjectID(),
		CreatedAt: ts,
	}
}

func TestRefreshReplacesEntireView(t *testing.T) {
	now := time.Now().UTC()
	serverState := []models.StoredAssessment{storedAt(now), storedAt(now.Add(-time.Hour))}
	api := &fakeAPI{list: serverState}
	history := NewHistory(api)

	// Seed a stale local entry; Refresh must not merge it in.
	history.AfterSubmit(storedAt(now.Add(-48 * time.Hour)))

	require.NoError(t, history.Refresh(context.Background()))

	items := history.Items()
	require.Len(t, items, 2)
	assert.Equal(t, serverState[0].ID, items[0].ID)
	assert.Equal(t, serverState[1].ID, items[1].ID)
}

func TestAfterSubmitPrependsKeepingMostRecentFirst(t *testing.T) {
	api := &fakeAPI{}
	history := NewHistory(api)

	older := storedAt(time.Now().Add(-time.Hour))
	newer := storedAt(time.Now())

	history.AfterSubmit(older)
	history.AfterSubmit(newer)

	items := history.Items()
	require.Len(t, items, 2)
	assert.Equal(t, newer.ID, items[0].ID)
	assert.Equal(t, older.ID, items[1].ID)
}

func TestAfterDeleteRemovesOnlyTarget(t *testing.T) {
	api := &fakeAPI{}
	history := NewHistory(api)

	keep := storedAt(time.Now())
	remove := storedAt(time.Now())
	history.AfterSubmit(keep)
	history.AfterSubmit(remove)

	history.AfterDelete(remove.ID.Hex())

	items := history.Items()
	require.Len(t, items, 1)
	assert.Equal(t, keep.ID, items[0].ID)

	// Unknown id is a no-op.
	history.AfterDelete(primitive.NewObjectID().Hex())
	assert.Len(t, history.Items(), 1)
}

func TestItemsReturnsACopy(t *testing.T) {
	api := &fakeAPI{}
	history := NewHistory(api)
	history.AfterSubmit(storedAt(time.Now()))

	items := history.Items()
	items[0] = models.StoredAssessment{}

	assert.NotEqual(t, primitive.NilObjectID, history.Items()[0].ID)
}

package assessments

import (
	"context"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/NITHINKR06/wellness/src/models"
	"github.com/NITHINKR06/wellness/src/riskmodel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memRepository keeps documents in a slice so the service can be exercised
// without a live Mongo, mirroring the behavior of mongoRepository.
type memRepository struct {
	mu   sync.Mutex
	docs []models.StoredAssessment
}

func (m *memRepository) insert(_ context.Context, stored *models.StoredAssessment) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = append(m.docs, *stored)
	return nil
}

func (m *memRepository) findActive(_ context.Context, ownerID primitive.ObjectID) ([]models.StoredAssessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var results []models.StoredAssessment
	for _, doc := range m.docs {
		if doc.OwnerID == ownerID && !doc.Deleted {
			results = append(results, doc)
		}
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
	return results, nil
}

func (m *memRepository) findOne(_ context.Context, ownerID, id primitive.ObjectID) (*models.StoredAssessment, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, doc := range m.docs {
		if doc.ID == id && doc.OwnerID == ownerID && !doc.Deleted {
			found := doc
			return &found, nil
		}
	}
	return nil, &models.NotFoundError{Resource: "assessment"}
}

func (m *memRepository) markDeleted(_ context.Context, ownerID, id primitive.ObjectID) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, doc := range m.docs {
		if doc.ID == id && doc.OwnerID == ownerID {
			m.docs[i].Deleted = true
			return true, nil
		}
	}
	return false, nil
}

func (m *memRepository) stats(_ context.Context, ownerID primitive.ObjectID) (*models.AssessmentStats, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := &models.AssessmentStats{}
	scoreSum := 0
	for _, doc := range m.docs {
		if doc.OwnerID != ownerID || doc.Deleted {
			continue
		}
		stats.Total++
		scoreSum += doc.Score
		if doc.Label == riskmodel.LabelPossibleRisk {
			stats.PossibleRisk++
		} else {
			stats.LowRisk++
		}
	}
	if stats.Total > 0 {
		stats.AverageScore = float64(scoreSum) / float64(stats.Total)
	}
	return stats, nil
}

func (m *memRepository) activeOwners(_ context.Context) ([]primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seen := map[primitive.ObjectID]bool{}
	var owners []primitive.ObjectID
	for _, doc := range m.docs {
		if !doc.Deleted && !seen[doc.OwnerID] {
			seen[doc.OwnerID] = true
			owners = append(owners, doc.OwnerID)
		}
	}
	return owners, nil
}

// useMemRepository swaps the persistence seam for the duration of a test.
func useMemRepository(t *testing.T) *memRepository {
	t.Helper()
	mem := &memRepository{}
	previous := repo
	repo = mem
	t.Cleanup(func() { repo = previous })
	return mem
}

func TestPutThenListActive(t *testing.T) {
	useMemRepository(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	stored, err := Put(ctx, owner, validSubmission())
	require.NoError(t, err)
	require.False(t, stored.ID.IsZero())

	list, err := ListActive(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, stored.ID, list[0].ID)
	assert.Equal(t, stored.Score, list[0].Score)
}

func TestSoftDeleteExcludesFromListActive(t *testing.T) {
	useMemRepository(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	kept, err := Put(ctx, owner, validSubmission())
	require.NoError(t, err)
	removed, err := Put(ctx, owner, validSubmission())
	require.NoError(t, err)

	require.NoError(t, SoftDelete(ctx, owner, removed.ID))

	list, err := ListActive(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, kept.ID, list[0].ID)

	_, err = GetByID(ctx, owner, removed.ID)
	assert.IsType(t, &models.NotFoundError{}, err)
}

func TestSoftDeleteIsIdempotent(t *testing.T) {
	useMemRepository(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	stored, err := Put(ctx, owner, validSubmission())
	require.NoError(t, err)

	require.NoError(t, SoftDelete(ctx, owner, stored.ID))
	assert.NoError(t, SoftDelete(ctx, owner, stored.ID), "repeated delete must succeed")

	err = SoftDelete(ctx, owner, primitive.NewObjectID())
	assert.IsType(t, &models.NotFoundError{}, err, "an id that never existed is not found")
}

func TestOwnerIsolation(t *testing.T) {
	useMemRepository(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()
	stranger := primitive.NewObjectID()

	stored, err := Put(ctx, owner, validSubmission())
	require.NoError(t, err)

	_, err = GetByID(ctx, stranger, stored.ID)
	assert.IsType(t, &models.NotFoundError{}, err)

	err = SoftDelete(ctx, stranger, stored.ID)
	assert.IsType(t, &models.NotFoundError{}, err)

	list, err := ListActive(ctx, stranger)
	require.NoError(t, err)
	assert.Empty(t, list)

	// The record is untouched for its real owner.
	list, err = ListActive(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestPutRejectsZeroOwner(t *testing.T) {
	useMemRepository(t)

	_, err := Put(context.Background(), primitive.NilObjectID, validSubmission())
	assert.IsType(t, &models.AuthError{}, err)
}

func TestListActiveMostRecentFirst(t *testing.T) {
	mem := useMemRepository(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	older := primitive.NewObjectID()
	newer := primitive.NewObjectID()
	base := time.Now().UTC()
	require.NoError(t, mem.insert(ctx, &models.StoredAssessment{ID: older, OwnerID: owner, CreatedAt: base.Add(-time.Hour)}))
	require.NoError(t, mem.insert(ctx, &models.StoredAssessment{ID: newer, OwnerID: owner, CreatedAt: base}))

	list, err := ListActive(ctx, owner)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, newer, list[0].ID)
	assert.Equal(t, older, list[1].ID)
}

func TestStatsCountsOnlyActiveRecords(t *testing.T) {
	useMemRepository(t)
	ctx := context.Background()
	owner := primitive.NewObjectID()

	risky := validSubmission()
	for _, q := range riskmodel.Questions {
		risky.Responses[q.ID] = !q.Inverted
	}
	high, err := Put(ctx, owner, risky)
	require.NoError(t, err)
	require.Equal(t, riskmodel.LabelPossibleRisk, high.Label)

	low, err := Put(ctx, owner, validSubmission())
	require.NoError(t, err)
	require.Equal(t, riskmodel.LabelLowRisk, low.Label)

	stats, err := Stats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.Total)
	assert.Equal(t, int64(1), stats.PossibleRisk)
	assert.Equal(t, int64(1), stats.LowRisk)

	require.NoError(t, SoftDelete(ctx, owner, high.ID))

	stats, err = Stats(ctx, owner)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.Total)
	assert.Equal(t, int64(0), stats.PossibleRisk)
}
package assessments

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/NITHINKR06/wellness/src/models"
	"github.com/NITHINKR06/wellness/src/riskmodel"
	"github.com/NITHINKR06/wellness/src/utils"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// repo is the persistence seam. Production uses the Mongo-backed repository;
// tests swap in the in-memory twin.
var repo repository = mongoRepository{}

// ValidateSubmission enforces the acceptance rules of the authoritative
// boundary: struct-level field checks, a known stage, total responses over the
// question set, and the "country iff Middle East" coupling. Callers must
// Normalize() first.
func ValidateSubmission(submission *models.AssessmentSubmission) error {
	if err := validate.Struct(submission); err != nil {
		if _, ok := err.(validator.ValidationErrors); ok {
			return &models.ValidationError{Message: fmt.Sprintf("invalid submission: %v", err)}
		}
		return err
	}

	if !submission.Stage.Valid() {
		return &models.ValidationError{Message: fmt.Sprintf("unknown stage %q", submission.Stage)}
	}

	if missing := riskmodel.Missing(submission.Responses); len(missing) > 0 {
		return &models.ValidationError{
			Message: "responses must answer every question",
			Missing: missing,
		}
	}

	for id := range submission.Responses {
		if !knownQuestion(id) {
			return &models.ValidationError{Message: fmt.Sprintf("unknown question id %q", id)}
		}
	}

	if submission.Region == models.RegionMiddleEast && submission.MiddleEastCountry == "" {
		return &models.ValidationError{Message: "middleEastCountry is required when region is Middle East"}
	}

	return nil
}

func knownQuestion(id string) bool {
	for _, q := range riskmodel.Questions {
		if q.ID == id {
			return true
		}
	}
	return false
}

// Put validates and scores a submission, then persists the result for the
// given owner. The scored result is immutable once written.
func Put(ctx context.Context, ownerID primitive.ObjectID, submission *models.AssessmentSubmission) (*models.StoredAssessment, error) {
	if ownerID.IsZero() {
		return nil, &models.AuthError{Message: "owner id is required"}
	}

	submission.Normalize()
	if err := ValidateSubmission(submission); err != nil {
		return nil, err
	}

	stored := &models.StoredAssessment{
		ID:                   primitive.NewObjectID(),
		OwnerID:              ownerID,
		AssessmentSubmission: *submission,
		ScoredResult:         riskmodel.Score(submission.Responses),
		CreatedAt:            time.Now().UTC(),
	}

	if err := repo.insert(ctx, stored); err != nil {
		return nil, err
	}

	log.Printf("[assessments] inserted id=%s owner=%s score=%d label=%s",
		stored.ID.Hex(), ownerID.Hex(), stored.Score, stored.Label)

	utils.InvalidateOwnerStats(ownerID.Hex())

	return stored, nil
}

// ListActive returns all non-deleted assessments for the owner,
// most-recent-first. Re-querying always reflects current state.
func ListActive(ctx context.Context, ownerID primitive.ObjectID) ([]models.StoredAssessment, error) {
	return repo.findActive(ctx, ownerID)
}

// GetByID returns one active assessment scoped to the owner.
func GetByID(ctx context.Context, ownerID, id primitive.ObjectID) (*models.StoredAssessment, error) {
	return repo.findOne(ctx, ownerID, id)
}

// SoftDelete flags the assessment as deleted. Deleting an already-deleted
// record succeeds idempotently so a client retry after a timeout is safe;
// only an id that never existed for this owner yields NotFoundError.
func SoftDelete(ctx context.Context, ownerID, id primitive.ObjectID) error {
	matched, err := repo.markDeleted(ctx, ownerID, id)
	if err != nil {
		return err
	}
	if !matched {
		return &models.NotFoundError{Resource: "assessment"}
	}

	utils.InvalidateOwnerStats(ownerID.Hex())
	return nil
}

// Stats computes simple per-owner aggregates, served from the Redis cache
// when a fresh snapshot exists.
func Stats(ctx context.Context, ownerID primitive.ObjectID) (*models.AssessmentStats, error) {
	if cached, err := utils.GetCachedOwnerStats(ownerID.Hex()); err == nil && cached != nil {
		return cached, nil
	}

	stats, err := repo.stats(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if err := utils.CacheOwnerStats(ownerID.Hex(), stats); err != nil {
		log.Println("[assessments] stats cache write failed:", err)
	}
	return stats, nil
}

// RefreshStats recomputes and caches the snapshot for one owner. Used by the
// background refresh job.
func RefreshStats(ctx context.Context, ownerID primitive.ObjectID) error {
	stats, err := repo.stats(ctx, ownerID)
	if err != nil {
		return err
	}
	return utils.CacheOwnerStats(ownerID.Hex(), stats)
}

// ActiveOwnerIDs lists owners that have at least one active assessment.
func ActiveOwnerIDs(ctx context.Context) ([]primitive.ObjectID, error) {
	return repo.activeOwners(ctx)
}

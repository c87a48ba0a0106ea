package assessments

import (
	"context"

	DB "github.com/NITHINKR06/wellness/src/database"
	"github.com/NITHINKR06/wellness/src/models"
	"github.com/NITHINKR06/wellness/src/riskmodel"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// repository คั่นกลางระหว่าง service logic กับ Mongo
type repository interface {
	insert(ctx context.Context, stored *models.StoredAssessment) error
	findActive(ctx context.Context, ownerID primitive.ObjectID) ([]models.StoredAssessment, error)
	findOne(ctx context.Context, ownerID, id primitive.ObjectID) (*models.StoredAssessment, error)
	markDeleted(ctx context.Context, ownerID, id primitive.ObjectID) (bool, error)
	stats(ctx context.Context, ownerID primitive.ObjectID) (*models.AssessmentStats, error)
	activeOwners(ctx context.Context) ([]primitive.ObjectID, error)
}

type mongoRepository struct{}

func (mongoRepository) insert(ctx context.Context, stored *models.StoredAssessment) error {
	_, err := DB.AssessmentCollection.InsertOne(ctx, stored)
	return err
}

func (mongoRepository) findActive(ctx context.Context, ownerID primitive.ObjectID) ([]models.StoredAssessment, error) {
	filter := bson.M{"ownerId": ownerID, "deleted": false}
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := DB.AssessmentCollection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var results []models.StoredAssessment
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (mongoRepository) findOne(ctx context.Context, ownerID, id primitive.ObjectID) (*models.StoredAssessment, error) {
	filter := bson.M{"_id": id, "ownerId": ownerID, "deleted": false}

	var stored models.StoredAssessment
	err := DB.AssessmentCollection.FindOne(ctx, filter).Decode(&stored)
	if err == mongo.ErrNoDocuments {
		return nil, &models.NotFoundError{Resource: "assessment"}
	}
	if err != nil {
		return nil, err
	}
	return &stored, nil
}

// markDeleted flips the deleted flag. The filter deliberately omits
// "deleted": false so repeating the delete matches again and stays idempotent.
func (mongoRepository) markDeleted(ctx context.Context, ownerID, id primitive.ObjectID) (bool, error) {
	filter := bson.M{"_id": id, "ownerId": ownerID}
	update := bson.M{"$set": bson.M{"deleted": true}}

	result, err := DB.AssessmentCollection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, err
	}
	return result.MatchedCount > 0, nil
}

func (mongoRepository) stats(ctx context.Context, ownerID primitive.ObjectID) (*models.AssessmentStats, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"ownerId": ownerID, "deleted": false}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": 1},
			"possibleRisk": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$label", riskmodel.LabelPossibleRisk}}, 1, 0},
			}},
			"lowRisk": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$label", riskmodel.LabelLowRisk}}, 1, 0},
			}},
			"averageScore": bson.M{"$avg": "$score"},
		}}},
	}

	cursor, err := DB.AssessmentCollection.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var rows []models.AssessmentStats
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return &models.AssessmentStats{}, nil
	}
	return &rows[0], nil
}

func (mongoRepository) activeOwners(ctx context.Context) ([]primitive.ObjectID, error) {
	raw, err := DB.AssessmentCollection.Distinct(ctx, "ownerId", bson.M{"deleted": false})
	if err != nil {
		return nil, err
	}

	owners := make([]primitive.ObjectID, 0, len(raw))
	for _, v := range raw {
		if id, ok := v.(primitive.ObjectID); ok {
			owners = append(owners, id)
		}
	}
	return owners, nil
}

package repository

import (
	"context"

	"quest-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AttemptRepository struct {
	Col *mongo.Collection
}

func NewAttemptRepository(db *mongo.Database) *AttemptRepository {
	return &AttemptRepository{Col: db.Collection("attempts")}
}

// Create inserts one attempt. Attempts are never updated afterwards.
func (r *AttemptRepository) Create(ctx context.Context, attempt *models.QuestAttempt) error {
	_, err := r.Col.InsertOne(ctx, attempt)
	return err
}

func (r *AttemptRepository) FindByStudent(ctx context.Context, studentID string) ([]models.QuestAttempt, error) {
	opts := options.Find().SetSort(bson.M{"completed_at": -1})
	cur, err := r.Col.Find(ctx, bson.M{"student_id": studentID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.QuestAttempt
	for cur.Next(ctx) {
		var a models.QuestAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

func (r *AttemptRepository) FindByStudentAndQuest(ctx context.Context, studentID, questID string) ([]models.QuestAttempt, error) {
	opts := options.Find().SetSort(bson.M{"attempt_number": 1})
	cur, err := r.Col.Find(ctx, bson.M{"student_id": studentID, "quest_id": questID}, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var attempts []models.QuestAttempt
	for cur.Next(ctx) {
		var a models.QuestAttempt
		if err := cur.Decode(&a); err != nil {
			return nil, err
		}
		attempts = append(attempts, a)
	}
	return attempts, nil
}

// CountByStudentAndQuest returns how many attempts the student already has on
// the quest; the next attempt number is this count plus one.
func (r *AttemptRepository) CountByStudentAndQuest(ctx context.Context, studentID, questID string) (int64, error) {
	return r.Col.CountDocuments(ctx, bson.M{"student_id": studentID, "quest_id": questID})
}

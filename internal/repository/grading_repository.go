package repository

import (
	"context"

	"quest-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type GradingRepository struct {
	Col *mongo.Collection
}

func NewGradingRepository(db *mongo.Database) *GradingRepository {
	return &GradingRepository{Col: db.Collection("grading_records")}
}

func (r *GradingRepository) Create(ctx context.Context, record *models.GradingRecord) error {
	_, err := r.Col.InsertOne(ctx, record)
	return err
}

func (r *GradingRepository) FindByStudent(ctx context.Context, studentID string) ([]models.GradingRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.GradingRecord
	for cur.Next(ctx) {
		var rec models.GradingRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

func (r *GradingRepository) FindByTeacher(ctx context.Context, teacherID string) ([]models.GradingRecord, error) {
	cur, err := r.Col.Find(ctx, bson.M{"teacher_id": teacherID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var records []models.GradingRecord
	for cur.Next(ctx) {
		var rec models.GradingRecord
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, nil
}

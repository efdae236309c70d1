package repository

import (
	"context"

	"quest-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProgressRepository struct {
	Col *mongo.Collection
}

func NewProgressRepository(db *mongo.Database) *ProgressRepository {
	return &ProgressRepository{Col: db.Collection("progress")}
}

func (r *ProgressRepository) FindByStudent(ctx context.Context, studentID string) ([]models.StudentProgress, error) {
	cur, err := r.Col.Find(ctx, bson.M{"student_id": studentID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	var progress []models.StudentProgress
	for cur.Next(ctx) {
		var p models.StudentProgress
		if err := cur.Decode(&p); err != nil {
			return nil, err
		}
		progress = append(progress, p)
	}
	return progress, nil
}

func (r *ProgressRepository) FindByStudentAndModule(ctx context.Context, studentID, moduleID string) (*models.StudentProgress, error) {
	var progress models.StudentProgress
	err := r.Col.FindOne(ctx, bson.M{"student_id": studentID, "module_id": moduleID}).Decode(&progress)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &progress, nil
}

// Save upserts the module rollup keyed by (student, module).
func (r *ProgressRepository) Save(ctx context.Context, progress *models.StudentProgress) error {
	opts := options.Replace().SetUpsert(true)
	filter := bson.M{"student_id": progress.StudentID, "module_id": progress.ModuleID}
	_, err := r.Col.ReplaceOne(ctx, filter, progress, opts)
	return err
}

package repository

import (
	"context"

	"quest-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProfileRepository struct {
	Col *mongo.Collection
}

func NewProfileRepository(db *mongo.Database) *ProfileRepository {
	return &ProfileRepository{Col: db.Collection("ai_profiles")}
}

func (r *ProfileRepository) FindByStudent(ctx context.Context, studentID string) (*models.StudentAIProfile, error) {
	var profile models.StudentAIProfile
	err := r.Col.FindOne(ctx, bson.M{"_id": studentID}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, err
	}
	return &profile, nil
}

// SaveScores persists the scoring aggregate after a fold. Only the aggregate
// fields are $set, so a preference update landing between the fold's read and
// this write is never overwritten; preference fields are written only when
// the upsert creates the document.
func (r *ProfileRepository) SaveScores(ctx context.Context, profile *models.StudentAIProfile) error {
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": profile.StudentID}, scoresUpdate(profile), opts)
	return err
}

func scoresUpdate(profile *models.StudentAIProfile) bson.M {
	return bson.M{
		"$set": bson.M{
			"total_quests_completed": profile.TotalQuestsCompleted,
			"average_score":          profile.AverageScore,
		},
		"$setOnInsert": bson.M{
			"difficulty_level":           profile.DifficultyLevel,
			"learning_pace":              profile.LearningPace,
			"risk_tolerance":             profile.RiskTolerance,
			"crisis_scenario_preference": profile.CrisisScenarioPreference,
		},
	}
}

// SeedDefaults creates the profile document if none exists yet; an existing
// profile is left untouched.
func (r *ProfileRepository) SeedDefaults(ctx context.Context, profile *models.StudentAIProfile) error {
	update := bson.M{"$setOnInsert": bson.M{
		"difficulty_level":           profile.DifficultyLevel,
		"learning_pace":              profile.LearningPace,
		"risk_tolerance":             profile.RiskTolerance,
		"crisis_scenario_preference": profile.CrisisScenarioPreference,
		"total_quests_completed":     profile.TotalQuestsCompleted,
		"average_score":              profile.AverageScore,
	}}
	opts := options.Update().SetUpsert(true)
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": profile.StudentID}, update, opts)
	return err
}

// UpdatePreferences sets only the caller-settable preference fields, leaving
// the scoring aggregate untouched.
func (r *ProfileRepository) UpdatePreferences(ctx context.Context, studentID string, update bson.M) error {
	_, err := r.Col.UpdateOne(ctx, bson.M{"_id": studentID}, bson.M{"$set": update})
	return err
}

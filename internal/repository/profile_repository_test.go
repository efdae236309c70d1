package repository

import (
	"testing"

	"quest-service/internal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// The fold's persistence update must touch only the scoring aggregate, so a
// preference change committed by a concurrent writer is never clobbered.
func TestScoresUpdateTouchesOnlyAggregate(t *testing.T) {
	profile := &models.StudentAIProfile{
		StudentID:                "student-001",
		DifficultyLevel:          "intermediate",
		LearningPace:             "normal",
		RiskTolerance:            "moderate",
		CrisisScenarioPreference: true,
		TotalQuestsCompleted:     3,
		AverageScore:             72.5,
	}

	update := scoresUpdate(profile)

	set, ok := update["$set"].(bson.M)
	if !ok {
		t.Fatal("Expected a $set document")
	}
	if len(set) != 2 {
		t.Fatalf("Expected $set to carry only the scoring aggregate, got %v", set)
	}
	if set["total_quests_completed"] != 3 {
		t.Errorf("total_quests_completed = %v, want 3", set["total_quests_completed"])
	}
	if set["average_score"] != 72.5 {
		t.Errorf("average_score = %v, want 72.5", set["average_score"])
	}
	preferenceFields := []string{
		"difficulty_level",
		"learning_pace",
		"risk_tolerance",
		"crisis_scenario_preference",
	}
	for _, field := range preferenceFields {
		if _, present := set[field]; present {
			t.Errorf("$set must not touch preference field %s", field)
		}
	}

	onInsert, ok := update["$setOnInsert"].(bson.M)
	if !ok {
		t.Fatal("Expected a $setOnInsert document for first-write defaults")
	}
	for _, field := range preferenceFields {
		if _, present := onInsert[field]; !present {
			t.Errorf("$setOnInsert must seed preference field %s", field)
		}
	}
	for _, field := range []string{"total_quests_completed", "average_score"} {
		if _, present := onInsert[field]; present {
			t.Errorf("$setOnInsert must not duplicate aggregate field %s", field)
		}
	}
}

package adaptive

import (
	"math"
	"testing"

	"quest-service/internal/models"
)

func TestApplyRunningMean(t *testing.T) {
	adapter := NewAdapter(nil)
	profile := NewDefaultProfile("student-001")

	profile, _, err := adapter.Apply(profile, 80)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	profile, _, err = adapter.Apply(profile, 60)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if profile.TotalQuestsCompleted != 2 {
		t.Errorf("Expected 2 quests completed, got %d", profile.TotalQuestsCompleted)
	}
	if profile.AverageScore != 70 {
		t.Errorf("Expected average 70, got %v", profile.AverageScore)
	}
}

func TestApplyMatchesArithmeticMean(t *testing.T) {
	adapter := NewAdapter(nil)
	scores := []int{85, 42, 100, 0, 67, 93, 51, 78, 64, 88, 12, 99, 55}

	profile := NewDefaultProfile("student-002")
	sum := 0.0
	for _, score := range scores {
		var err error
		profile, _, err = adapter.Apply(profile, score)
		if err != nil {
			t.Fatalf("Unexpected error folding %d: %v", score, err)
		}
		sum += float64(score)
	}

	mean := sum / float64(len(scores))
	if math.Abs(profile.AverageScore-mean) > 1e-6 {
		t.Errorf("Folded average %v drifted from arithmetic mean %v", profile.AverageScore, mean)
	}
	if profile.TotalQuestsCompleted != len(scores) {
		t.Errorf("Expected %d quests completed, got %d", len(scores), profile.TotalQuestsCompleted)
	}
}

func TestApplyDoesNotMutatePrior(t *testing.T) {
	adapter := NewAdapter(nil)
	prior := &models.StudentAIProfile{
		StudentID:            "student-003",
		DifficultyLevel:      DifficultyIntermediate,
		LearningPace:         PaceNormal,
		RiskTolerance:        string(RiskModerate),
		TotalQuestsCompleted: 3,
		AverageScore:         60,
	}

	updated, _, err := adapter.Apply(prior, 90)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if prior.TotalQuestsCompleted != 3 || prior.AverageScore != 60 {
		t.Error("Apply mutated the prior profile")
	}
	if updated.TotalQuestsCompleted != 4 {
		t.Errorf("Expected 4 quests completed, got %d", updated.TotalQuestsCompleted)
	}
	expected := (60.0*3 + 90) / 4
	if math.Abs(updated.AverageScore-expected) > 1e-6 {
		t.Errorf("Expected average %v, got %v", expected, updated.AverageScore)
	}
}

func TestApplyPreservesPreferenceFields(t *testing.T) {
	adapter := NewAdapter(nil)
	prior := &models.StudentAIProfile{
		StudentID:                "student-004",
		DifficultyLevel:          DifficultyAdvanced,
		LearningPace:             PaceFast,
		RiskTolerance:            string(RiskAggressive),
		CrisisScenarioPreference: false,
		TotalQuestsCompleted:     1,
		AverageScore:             95,
	}

	// A very high score recommends up but must not flip the stored fields.
	updated, adjustment, err := adapter.Apply(prior, 100)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if adjustment != AdjustUp {
		t.Errorf("Expected up recommendation, got %q", adjustment)
	}
	if updated.DifficultyLevel != DifficultyAdvanced {
		t.Errorf("DifficultyLevel changed to %q", updated.DifficultyLevel)
	}
	if updated.LearningPace != PaceFast {
		t.Errorf("LearningPace changed to %q", updated.LearningPace)
	}
	if updated.RiskTolerance != string(RiskAggressive) {
		t.Errorf("RiskTolerance changed to %q", updated.RiskTolerance)
	}
	if updated.CrisisScenarioPreference {
		t.Error("CrisisScenarioPreference changed")
	}
}

func TestRecommendThresholds(t *testing.T) {
	adapter := NewAdapter(nil)

	testCases := []struct {
		score    int
		expected Adjustment
	}{
		{100, AdjustUp},
		{85, AdjustUp},
		{84, AdjustMaintain},
		{50, AdjustMaintain},
		{49, AdjustDown},
		{0, AdjustDown},
	}

	for _, tc := range testCases {
		if got := adapter.Recommend(tc.score); got != tc.expected {
			t.Errorf("Recommend(%d) = %q, want %q", tc.score, got, tc.expected)
		}
	}
}

func TestApplyRejectsMalformedPrior(t *testing.T) {
	adapter := NewAdapter(nil)

	testCases := []struct {
		name  string
		prior *models.StudentAIProfile
	}{
		{"nil prior", nil},
		{"average above range", &models.StudentAIProfile{AverageScore: 150}},
		{"negative average", &models.StudentAIProfile{AverageScore: -5}},
		{"negative quest count", &models.StudentAIProfile{TotalQuestsCompleted: -1, AverageScore: 50}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, _, err := adapter.Apply(tc.prior, 75); err == nil {
				t.Error("Expected malformed prior to be rejected, got nil error")
			}
		})
	}
}

func TestApplyRejectsOutOfRangeScore(t *testing.T) {
	adapter := NewAdapter(nil)

	for _, score := range []int{-1, 101} {
		if _, _, err := adapter.Apply(NewDefaultProfile("student-005"), score); err == nil {
			t.Errorf("Expected score %d to be rejected, got nil error", score)
		}
	}
}

func TestNewDefaultProfile(t *testing.T) {
	profile := NewDefaultProfile("student-006")

	if profile.StudentID != "student-006" {
		t.Errorf("Expected student id student-006, got %q", profile.StudentID)
	}
	if profile.DifficultyLevel != DifficultyIntermediate {
		t.Errorf("Expected intermediate default, got %q", profile.DifficultyLevel)
	}
	if profile.LearningPace != PaceNormal {
		t.Errorf("Expected normal pace default, got %q", profile.LearningPace)
	}
	if profile.RiskTolerance != string(RiskModerate) {
		t.Errorf("Expected moderate tolerance default, got %q", profile.RiskTolerance)
	}
	if !profile.CrisisScenarioPreference {
		t.Error("Expected crisis scenarios enabled by default")
	}
	if profile.TotalQuestsCompleted != 0 || profile.AverageScore != 0 {
		t.Error("Expected zeroed counters on a fresh profile")
	}
}

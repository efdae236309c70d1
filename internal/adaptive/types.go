package adaptive

import "quest-service/internal/models"

type RiskProfile string

const (
	RiskConservative RiskProfile = "conservative"
	RiskModerate     RiskProfile = "moderate"
	RiskAggressive   RiskProfile = "aggressive"
)

// Difficulty levels carried on the student profile.
const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyAdvanced     = "advanced"
)

// Learning pace values carried on the student profile.
const (
	PaceSlow   = "slow"
	PaceNormal = "normal"
	PaceFast   = "fast"
)

// Adjustment is the advisory difficulty-adjustment direction produced for a
// single scored attempt. The persisted difficulty level only moves when the
// caller acts on a sustained trend, never on one attempt.
type Adjustment string

const (
	AdjustUp       Adjustment = "up"
	AdjustDown     Adjustment = "down"
	AdjustMaintain Adjustment = "maintain"
)

// ScoringConfig holds the rubric for scenario scoring.
type ScoringConfig struct {
	BaseScore        int                 `json:"base_score"`
	HighSavingsRate  float64             `json:"high_savings_rate"`
	HighSavingsBonus int                 `json:"high_savings_bonus"`
	MidSavingsRate   float64             `json:"mid_savings_rate"`
	MidSavingsBonus  int                 `json:"mid_savings_bonus"`
	RiskBonuses      map[RiskProfile]int `json:"risk_bonuses"`
	MaxScore         int                 `json:"max_score"`
}

// AdjustmentConfig holds the score thresholds for the per-attempt
// difficulty-adjustment recommendation.
type AdjustmentConfig struct {
	RaiseAt int `json:"raise_at"`
	LowerAt int `json:"lower_at"`
}

// DefaultScoringConfig returns the platform rubric: a 50-point baseline, a
// savings-rate bonus (+30 at 20%, +15 at 10%) and a small risk-profile bonus.
// Deliberately a reproducible linear rubric, not a financial model.
func DefaultScoringConfig() *ScoringConfig {
	return &ScoringConfig{
		BaseScore:        50,
		HighSavingsRate:  20,
		HighSavingsBonus: 30,
		MidSavingsRate:   10,
		MidSavingsBonus:  15,
		RiskBonuses: map[RiskProfile]int{
			RiskModerate:     10,
			RiskConservative: 5,
			RiskAggressive:   0,
		},
		MaxScore: 100,
	}
}

// DefaultAdjustmentConfig returns the recommendation thresholds:
// score >= 85 recommends up, score < 50 recommends down.
func DefaultAdjustmentConfig() *AdjustmentConfig {
	return &AdjustmentConfig{
		RaiseAt: 85,
		LowerAt: 50,
	}
}

// NewDefaultProfile seeds the profile created on a student's first attempt.
func NewDefaultProfile(studentID string) *models.StudentAIProfile {
	return &models.StudentAIProfile{
		StudentID:                studentID,
		DifficultyLevel:          DifficultyIntermediate,
		LearningPace:             PaceNormal,
		RiskTolerance:            string(RiskModerate),
		CrisisScenarioPreference: true,
		TotalQuestsCompleted:     0,
		AverageScore:             0,
	}
}

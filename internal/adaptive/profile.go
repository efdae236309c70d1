package adaptive

import (
	"fmt"

	"quest-service/internal/models"
)

// Adapter folds scored attempts into a student's AI profile and recommends a
// difficulty-adjustment direction per attempt.
type Adapter struct {
	config *AdjustmentConfig
}

// NewAdapter creates an adapter. A nil config uses the default thresholds.
func NewAdapter(config *AdjustmentConfig) *Adapter {
	if config == nil {
		config = DefaultAdjustmentConfig()
	}
	return &Adapter{config: config}
}

// Apply folds one new score into the prior profile and returns the updated
// profile together with the advisory adjustment for this attempt. The prior
// is not mutated. LearningPace, RiskTolerance and DifficultyLevel pass
// through unchanged: the adapter never flips the persisted level on a single
// attempt.
//
// A malformed prior (negative counter, average outside [0,100]) is a
// data-integrity error and is rejected rather than repaired here.
func (a *Adapter) Apply(prior *models.StudentAIProfile, score int) (*models.StudentAIProfile, Adjustment, error) {
	if err := validatePrior(prior); err != nil {
		return nil, AdjustMaintain, err
	}
	if score < 0 || score > 100 {
		return nil, AdjustMaintain, fmt.Errorf("score %d outside [0, 100]", score)
	}

	updated := *prior
	updated.TotalQuestsCompleted = prior.TotalQuestsCompleted + 1
	updated.AverageScore = (prior.AverageScore*float64(prior.TotalQuestsCompleted) + float64(score)) /
		float64(updated.TotalQuestsCompleted)

	return &updated, a.Recommend(score), nil
}

// Recommend maps a single attempt score to the advisory adjustment direction.
func (a *Adapter) Recommend(score int) Adjustment {
	switch {
	case score >= a.config.RaiseAt:
		return AdjustUp
	case score < a.config.LowerAt:
		return AdjustDown
	default:
		return AdjustMaintain
	}
}

func validatePrior(prior *models.StudentAIProfile) error {
	if prior == nil {
		return fmt.Errorf("prior profile is nil")
	}
	if prior.TotalQuestsCompleted < 0 {
		return fmt.Errorf("prior profile has negative quest count %d", prior.TotalQuestsCompleted)
	}
	if prior.AverageScore < 0 || prior.AverageScore > 100 {
		return fmt.Errorf("prior profile average score %.2f outside [0, 100]", prior.AverageScore)
	}
	return nil
}

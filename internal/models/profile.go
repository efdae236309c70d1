package models

// StudentAIProfile is the per-student adaptive learning aggregate. One profile
// exists per student id; it is updated exactly once per scored attempt.
//
// AverageScore is always the arithmetic mean of every folded attempt score and
// TotalQuestsCompleted the count of attempts folded in. DifficultyLevel,
// LearningPace and RiskTolerance are not changed by the scoring fold: the
// first only moves when the caller acts on a sustained trend, the latter two
// are caller-settable preferences with no automatic adaptation rule.
type StudentAIProfile struct {
	StudentID                string  `bson:"_id,omitempty" json:"studentId"`
	DifficultyLevel          string  `bson:"difficulty_level" json:"difficultyLevel"`
	LearningPace             string  `bson:"learning_pace" json:"learningPace"`
	RiskTolerance            string  `bson:"risk_tolerance" json:"riskTolerance"`
	CrisisScenarioPreference bool    `bson:"crisis_scenario_preference" json:"crisisScenarioPreference"`
	TotalQuestsCompleted     int     `bson:"total_quests_completed" json:"totalQuestsCompleted"`
	AverageScore             float64 `bson:"average_score" json:"averageScore"`
}

package models

import "time"

// QuestAttempt is one scored submission of a quest by a student. Attempts are
// immutable once created; a re-submission creates a new attempt with the next
// attempt number.
type QuestAttempt struct {
	ID                 string    `bson:"_id,omitempty" json:"id"`
	StudentID          string    `bson:"student_id" json:"studentId"`
	QuestID            string    `bson:"quest_id" json:"questId"`
	AttemptNumber      int       `bson:"attempt_number" json:"attemptNumber"`
	IncomeAmount       float64   `bson:"income_amount" json:"incomeAmount"`
	SavingsAmount      float64   `bson:"savings_amount" json:"savingsAmount"`
	RiskProfile        string    `bson:"risk_profile" json:"riskProfile"`
	Score              int       `bson:"score" json:"score"`
	DifficultyAdjusted bool      `bson:"difficulty_adjusted" json:"difficultyAdjusted"`
	IsCrisisTriggered  bool      `bson:"is_crisis_triggered" json:"isCrisisTriggered"`
	CompletedAt        time.Time `bson:"completed_at" json:"completedAt"`
}

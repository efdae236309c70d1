package models

import "time"

// Progress status values.
const (
	ProgressNotStarted = "not_started"
	ProgressInProgress = "in_progress"
	ProgressCompleted  = "completed"
)

// StudentProgress is the best-score rollup of a student's work in one module.
type StudentProgress struct {
	ID           string     `bson:"_id,omitempty" json:"id"`
	StudentID    string     `bson:"student_id" json:"studentId"`
	ModuleID     string     `bson:"module_id" json:"moduleId"`
	Status       string     `bson:"status" json:"status"`
	CurrentScore int        `bson:"current_score" json:"currentScore"`
	CompletedAt  *time.Time `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
}

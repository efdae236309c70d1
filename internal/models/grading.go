package models

import "time"

// GradingRecord is a teacher's manual grade for a student's module work.
type GradingRecord struct {
	ID        string    `bson:"_id,omitempty" json:"id"`
	TeacherID string    `bson:"teacher_id" json:"teacherId"`
	StudentID string    `bson:"student_id" json:"studentId"`
	ModuleID  string    `bson:"module_id" json:"moduleId"`
	Grade     string    `bson:"grade" json:"grade"`
	Feedback  string    `bson:"feedback" json:"feedback"`
	GradedAt  time.Time `bson:"graded_at" json:"gradedAt"`
}

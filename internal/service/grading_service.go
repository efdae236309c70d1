package service

import (
	"context"
	"time"

	"quest-service/internal/models"
	"quest-service/internal/repository"

	"github.com/google/uuid"
)

type GradingService struct {
	Repo *repository.GradingRepository
}

func NewGradingService(repo *repository.GradingRepository) *GradingService {
	return &GradingService{Repo: repo}
}

// SubmitGrade records a teacher's manual grade for a student's module work.
func (s *GradingService) SubmitGrade(ctx context.Context, teacherID, studentID, moduleID, grade, feedback string) (*models.GradingRecord, error) {
	record := &models.GradingRecord{
		ID:        uuid.NewString(),
		TeacherID: teacherID,
		StudentID: studentID,
		ModuleID:  moduleID,
		Grade:     grade,
		Feedback:  feedback,
		GradedAt:  time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (s *GradingService) GetGradesByStudent(ctx context.Context, studentID string) ([]models.GradingRecord, error) {
	return s.Repo.FindByStudent(ctx, studentID)
}

func (s *GradingService) GetGradesByTeacher(ctx context.Context, teacherID string) ([]models.GradingRecord, error) {
	return s.Repo.FindByTeacher(ctx, teacherID)
}

package service

import (
	"context"

	"quest-service/internal/models"
	"quest-service/internal/repository"
)

type ProgressService struct {
	Repo *repository.ProgressRepository
}

func NewProgressService(repo *repository.ProgressRepository) *ProgressService {
	return &ProgressService{Repo: repo}
}

func (s *ProgressService) GetProgressByStudent(ctx context.Context, studentID string) ([]models.StudentProgress, error) {
	return s.Repo.FindByStudent(ctx, studentID)
}

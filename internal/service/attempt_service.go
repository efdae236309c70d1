package service

import (
	"context"

	"quest-service/internal/models"
	"quest-service/internal/repository"
)

type AttemptService struct {
	Repo *repository.AttemptRepository
}

func NewAttemptService(repo *repository.AttemptRepository) *AttemptService {
	return &AttemptService{Repo: repo}
}

func (s *AttemptService) GetAttemptsByStudent(ctx context.Context, studentID string) ([]models.QuestAttempt, error) {
	return s.Repo.FindByStudent(ctx, studentID)
}

func (s *AttemptService) GetAttemptsByStudentAndQuest(ctx context.Context, studentID, questID string) ([]models.QuestAttempt, error) {
	return s.Repo.FindByStudentAndQuest(ctx, studentID, questID)
}

package service

import (
	"context"

	"quest-service/internal/models"
	"quest-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type QuestService struct {
	Repo *repository.QuestRepository
}

func NewQuestService(repo *repository.QuestRepository) *QuestService {
	return &QuestService{Repo: repo}
}

func (s *QuestService) GetAllQuests(ctx context.Context) ([]models.Quest, error) {
	return s.Repo.FindAll(ctx)
}

func (s *QuestService) GetQuestByID(ctx context.Context, id string) (*models.Quest, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *QuestService) GetQuestsByModule(ctx context.Context, moduleID string) ([]models.Quest, error) {
	return s.Repo.FindByModuleID(ctx, moduleID)
}

// CreateQuest adds a quest to the catalog. A non-positive multiplier falls
// back to 1.0 so scoring metadata stays sane.
func (s *QuestService) CreateQuest(ctx context.Context, quest *models.Quest) error {
	if quest.DifficultyMultiplier <= 0 {
		quest.DifficultyMultiplier = 1.0
	}
	return s.Repo.Create(ctx, quest)
}

func (s *QuestService) UpdateQuest(ctx context.Context, id string, update bson.M) error {
	return s.Repo.Update(ctx, id, update)
}

func (s *QuestService) DeleteQuest(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}

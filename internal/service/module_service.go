package service

import (
	"context"

	"quest-service/internal/models"
	"quest-service/internal/repository"
)

type ModuleService struct {
	Repo *repository.ModuleRepository
}

func NewModuleService(repo *repository.ModuleRepository) *ModuleService {
	return &ModuleService{Repo: repo}
}

func (s *ModuleService) GetAllModules(ctx context.Context) ([]models.Module, error) {
	return s.Repo.FindAll(ctx)
}

func (s *ModuleService) GetModuleByID(ctx context.Context, id string) (*models.Module, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ModuleService) CreateModule(ctx context.Context, module *models.Module) error {
	return s.Repo.Create(ctx, module)
}

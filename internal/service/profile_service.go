package service

import (
	"context"
	"fmt"

	"quest-service/internal/adaptive"
	"quest-service/internal/models"
	"quest-service/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
)

type ProfileService struct {
	Repo *repository.ProfileRepository
}

func NewProfileService(repo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{Repo: repo}
}

// GetProfile returns the student's profile, or the seeded defaults if no
// attempt has been scored yet. The default view is not persisted here; the
// profile document is created by the first scored attempt.
func (s *ProfileService) GetProfile(ctx context.Context, studentID string) (*models.StudentAIProfile, error) {
	profile, err := s.Repo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return adaptive.NewDefaultProfile(studentID), nil
	}
	return profile, nil
}

// UpdatePreferences changes the caller-settable fields only: learning pace,
// risk tolerance and the crisis-scenario preference. The scoring aggregate
// and difficulty level are owned by the scoring pipeline and longer-horizon
// policy respectively.
func (s *ProfileService) UpdatePreferences(ctx context.Context, studentID string, pace, tolerance string, crisisPref *bool) error {
	update := bson.M{}

	if pace != "" {
		if pace != adaptive.PaceSlow && pace != adaptive.PaceNormal && pace != adaptive.PaceFast {
			return fmt.Errorf("unknown learning pace %q", pace)
		}
		update["learning_pace"] = pace
	}
	if tolerance != "" {
		switch adaptive.RiskProfile(tolerance) {
		case adaptive.RiskConservative, adaptive.RiskModerate, adaptive.RiskAggressive:
			update["risk_tolerance"] = tolerance
		default:
			return fmt.Errorf("unknown risk tolerance %q", tolerance)
		}
	}
	if crisisPref != nil {
		update["crisis_scenario_preference"] = *crisisPref
	}

	if len(update) == 0 {
		return fmt.Errorf("no preference fields to update")
	}

	// Ensure a document exists so preferences set before the first attempt
	// are not lost. SeedDefaults never overwrites an existing profile, so a
	// fold committed by a concurrent submission survives this call.
	if err := s.Repo.SeedDefaults(ctx, adaptive.NewDefaultProfile(studentID)); err != nil {
		return err
	}

	return s.Repo.UpdatePreferences(ctx, studentID, update)
}

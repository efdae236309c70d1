package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"quest-service/internal/adaptive"
	"quest-service/internal/models"
	"quest-service/internal/repository"

	"github.com/google/uuid"
)

// ErrQuestNotFound is returned when a submission references an unknown quest.
var ErrQuestNotFound = errors.New("quest not found")

// ErrPersistence marks failures where the score was validly computed but not
// durably recorded. The boundary reports these as retryable: the scoring is
// idempotent for identical inputs and the crisis outcome is decided before
// any write, so a retry carries the same result.
var ErrPersistence = errors.New("persistence failure")

// SubmissionResult is what the UI collaborator renders after a submission.
type SubmissionResult struct {
	Attempt         *models.QuestAttempt     `json:"attempt"`
	Profile         *models.StudentAIProfile `json:"profile"`
	NextDifficulty  adaptive.Adjustment      `json:"nextDifficulty"`
	CrisisTriggered bool                     `json:"crisisTriggered"`
	Feedback        string                   `json:"feedback"`
}

// QuestFinder is the quest-catalog lookup the scoring pipeline needs.
type QuestFinder interface {
	FindByID(ctx context.Context, id string) (*models.Quest, error)
}

// SubmissionService runs the scoring pipeline for one quest submission:
// scenario scoring, the crisis draw, the profile fold and persistence.
type SubmissionService struct {
	QuestRepo    QuestFinder
	AttemptRepo  *repository.AttemptRepository
	ProfileRepo  *repository.ProfileRepository
	ProgressRepo *repository.ProgressRepository

	scorer  *adaptive.Scorer
	trigger *adaptive.CrisisTrigger
	adapter *adaptive.Adapter

	// Serializes profile folds per student so two concurrent submissions by
	// the same student never apply against a stale prior.
	mu           sync.Mutex
	studentLocks map[string]*sync.Mutex
}

func NewSubmissionService(
	questRepo QuestFinder,
	attemptRepo *repository.AttemptRepository,
	profileRepo *repository.ProfileRepository,
	progressRepo *repository.ProgressRepository,
	trigger *adaptive.CrisisTrigger,
) *SubmissionService {
	if trigger == nil {
		trigger = adaptive.NewCrisisTrigger(adaptive.DefaultCrisisProbability, nil)
	}
	return &SubmissionService{
		QuestRepo:    questRepo,
		AttemptRepo:  attemptRepo,
		ProfileRepo:  profileRepo,
		ProgressRepo: progressRepo,
		scorer:       adaptive.NewScorer(nil),
		trigger:      trigger,
		adapter:      adaptive.NewAdapter(nil),
		studentLocks: make(map[string]*sync.Mutex),
	}
}

// SubmitQuest scores one submission server-side and folds it into the
// student's AI profile. Income and savings arrive pre-coerced (malformed
// client values degrade to 0, they never fail the submission).
func (s *SubmissionService) SubmitQuest(ctx context.Context, studentID, questID string, income, savings float64, risk string) (*SubmissionResult, error) {
	quest, err := s.QuestRepo.FindByID(ctx, questID)
	if err != nil {
		// A failed lookup is not "quest does not exist"; it is retryable.
		return nil, fmt.Errorf("%w: loading quest: %v", ErrPersistence, err)
	}
	if quest == nil {
		return nil, fmt.Errorf("%w: %s", ErrQuestNotFound, questID)
	}

	score := s.scorer.Score(income, savings, adaptive.RiskProfile(risk))

	// Drawn once here and carried with the attempt; a persistence retry must
	// not re-roll it.
	crisisTriggered := s.trigger.Decide()
	feedback := s.trigger.Feedback(crisisTriggered)

	lock := s.lockFor(studentID)
	lock.Lock()
	defer lock.Unlock()

	prior, err := s.ProfileRepo.FindByStudent(ctx, studentID)
	if err != nil {
		return nil, fmt.Errorf("%w: loading profile: %v", ErrPersistence, err)
	}
	if prior == nil {
		prior = adaptive.NewDefaultProfile(studentID)
	}

	updated, adjustment, err := s.adapter.Apply(prior, score)
	if err != nil {
		// Data-integrity problem in the stored profile; the caller must
		// repair or re-seed it, never fold on top of it.
		return nil, fmt.Errorf("invalid profile state for student %s: %w", studentID, err)
	}

	count, err := s.AttemptRepo.CountByStudentAndQuest(ctx, studentID, questID)
	if err != nil {
		return nil, fmt.Errorf("%w: counting attempts: %v", ErrPersistence, err)
	}

	attempt := &models.QuestAttempt{
		ID:                 uuid.NewString(),
		StudentID:          studentID,
		QuestID:            questID,
		AttemptNumber:      int(count) + 1,
		IncomeAmount:       income,
		SavingsAmount:      savings,
		RiskProfile:        risk,
		Score:              score,
		DifficultyAdjusted: adjustment != adaptive.AdjustMaintain,
		IsCrisisTriggered:  crisisTriggered,
		CompletedAt:        time.Now().UTC(),
	}

	if err := s.AttemptRepo.Create(ctx, attempt); err != nil {
		return nil, fmt.Errorf("%w: saving attempt: %v", ErrPersistence, err)
	}
	if err := s.ProfileRepo.SaveScores(ctx, updated); err != nil {
		return nil, fmt.Errorf("%w: saving profile: %v", ErrPersistence, err)
	}

	if err := s.updateProgress(ctx, studentID, quest.ModuleID, score); err != nil {
		// The attempt and profile are durable; the rollup catches up on the
		// next submission.
		log.Printf("Failed to update progress for student %s module %s: %v", studentID, quest.ModuleID, err)
	}

	return &SubmissionResult{
		Attempt:         attempt,
		Profile:         updated,
		NextDifficulty:  adjustment,
		CrisisTriggered: crisisTriggered,
		Feedback:        feedback,
	}, nil
}

// updateProgress keeps the per-module best-score rollup current. Completion
// is marked by certificate issuance, not here.
func (s *SubmissionService) updateProgress(ctx context.Context, studentID, moduleID string, score int) error {
	progress, err := s.ProgressRepo.FindByStudentAndModule(ctx, studentID, moduleID)
	if err != nil {
		return err
	}
	if progress == nil {
		progress = &models.StudentProgress{
			ID:        uuid.NewString(),
			StudentID: studentID,
			ModuleID:  moduleID,
			Status:    models.ProgressInProgress,
		}
	}
	if score > progress.CurrentScore {
		progress.CurrentScore = score
	}
	if progress.Status == models.ProgressNotStarted {
		progress.Status = models.ProgressInProgress
	}
	return s.ProgressRepo.Save(ctx, progress)
}

func (s *SubmissionService) lockFor(studentID string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.studentLocks[studentID]
	if !ok {
		lock = &sync.Mutex{}
		s.studentLocks[studentID] = lock
	}
	return lock
}

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"quest-service/internal/models"
)

type questFinderFunc func(ctx context.Context, id string) (*models.Quest, error)

func (f questFinderFunc) FindByID(ctx context.Context, id string) (*models.Quest, error) {
	return f(ctx, id)
}

// A missing quest and a failed quest lookup must surface as different error
// classes: only the latter is retryable.
func TestSubmitQuestLookupErrorClasses(t *testing.T) {
	missing := questFinderFunc(func(ctx context.Context, id string) (*models.Quest, error) {
		return nil, nil
	})
	svc := NewSubmissionService(missing, nil, nil, nil, nil)

	_, err := svc.SubmitQuest(context.Background(), "student-001", "quest-404", 3000, 600, "moderate")
	if !errors.Is(err, ErrQuestNotFound) {
		t.Errorf("Expected ErrQuestNotFound for an unknown quest, got %v", err)
	}
	if errors.Is(err, ErrPersistence) {
		t.Error("An unknown quest must not be reported as a persistence failure")
	}

	down := questFinderFunc(func(ctx context.Context, id string) (*models.Quest, error) {
		return nil, errors.New("server selection timeout")
	})
	svc = NewSubmissionService(down, nil, nil, nil, nil)

	_, err = svc.SubmitQuest(context.Background(), "student-001", "quest-001", 3000, 600, "moderate")
	if !errors.Is(err, ErrPersistence) {
		t.Errorf("Expected ErrPersistence for a failed lookup, got %v", err)
	}
	if errors.Is(err, ErrQuestNotFound) {
		t.Error("A failed lookup must not be reported as quest-not-found")
	}
}

func TestLockForIsPerStudent(t *testing.T) {
	s := &SubmissionService{studentLocks: make(map[string]*sync.Mutex)}

	a1 := s.lockFor("student-001")
	a2 := s.lockFor("student-001")
	b := s.lockFor("student-002")

	if a1 != a2 {
		t.Error("Expected the same mutex for repeated lookups of one student")
	}
	if a1 == b {
		t.Error("Expected distinct mutexes for different students")
	}
}

func TestPersistenceErrorsAreDistinct(t *testing.T) {
	wrapped := fmt.Errorf("%w: saving attempt: connection reset", ErrPersistence)

	if !errors.Is(wrapped, ErrPersistence) {
		t.Error("Wrapped persistence error must match ErrPersistence")
	}
	if errors.Is(wrapped, ErrQuestNotFound) {
		t.Error("Persistence error must not match ErrQuestNotFound")
	}
}

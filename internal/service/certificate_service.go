package service

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"sync"
	"time"

	"quest-service/internal/models"
	"quest-service/internal/repository"

	"github.com/google/uuid"
)

// Fixed contract address used by the simulated mint. No real chain is
// involved anywhere in this service.
const simulatedContractAddress = "0x1234567890abcdef1234567890abcdef12345678"

type CertificateService struct {
	Repo         *repository.CertificateRepository
	ProgressRepo *repository.ProgressRepository

	// rand.Rand is not safe for concurrent use.
	mu   sync.Mutex
	rand *rand.Rand
}

func NewCertificateService(repo *repository.CertificateRepository, progressRepo *repository.ProgressRepository) *CertificateService {
	return &CertificateService{
		Repo:         repo,
		ProgressRepo: progressRepo,
		rand:         rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// IssueCertificate records a module-completion certificate with simulated
// chain fields and marks the module rollup completed.
func (s *CertificateService) IssueCertificate(ctx context.Context, studentID, moduleID string, financialHealthScore int) (*models.NFTCertificate, error) {
	txHash, tokenID := s.simulateMint()

	cert := &models.NFTCertificate{
		ID:                   uuid.NewString(),
		StudentID:            studentID,
		ModuleID:             moduleID,
		FinancialHealthScore: financialHealthScore,
		NFTContractAddress:   simulatedContractAddress,
		NFTTokenID:           tokenID,
		PolygonTxHash:        txHash,
		IssuedAt:             time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, cert); err != nil {
		return nil, err
	}

	if err := s.markModuleCompleted(ctx, studentID, moduleID, financialHealthScore); err != nil {
		log.Printf("Failed to mark module %s completed for student %s: %v", moduleID, studentID, err)
	}

	return cert, nil
}

func (s *CertificateService) GetCertificatesByStudent(ctx context.Context, studentID string) ([]models.NFTCertificate, error) {
	return s.Repo.FindByStudent(ctx, studentID)
}

// simulateMint fabricates a 64-hex transaction hash and a token id in place
// of a real ledger write.
func (s *CertificateService) simulateMint() (txHash string, tokenID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	const hexDigits = "0123456789abcdef"
	hash := make([]byte, 64)
	for i := range hash {
		hash[i] = hexDigits[s.rand.Intn(len(hexDigits))]
	}
	return "0x" + string(hash), fmt.Sprintf("%d", s.rand.Intn(1000000))
}

func (s *CertificateService) markModuleCompleted(ctx context.Context, studentID, moduleID string, score int) error {
	progress, err := s.ProgressRepo.FindByStudentAndModule(ctx, studentID, moduleID)
	if err != nil {
		return err
	}
	if progress == nil {
		progress = &models.StudentProgress{
			ID:        uuid.NewString(),
			StudentID: studentID,
			ModuleID:  moduleID,
		}
	}
	now := time.Now().UTC()
	progress.Status = models.ProgressCompleted
	progress.CompletedAt = &now
	if score > progress.CurrentScore {
		progress.CurrentScore = score
	}
	return s.ProgressRepo.Save(ctx, progress)
}

package handlers

import (
	"context"
	"errors"
	"net/http"

	"quest-service/internal/adaptive"
	"quest-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SubmissionHandler struct {
	Service *service.SubmissionService
}

func NewSubmissionHandler(s *service.SubmissionService) *SubmissionHandler {
	return &SubmissionHandler{Service: s}
}

// SubmitQuest scores a quest submission server-side. The amounts are typed
// loosely on purpose: students submit free-form values and anything
// unparseable degrades to 0 rather than failing the attempt. A pre-computed
// score from the client is never accepted.
func (h *SubmissionHandler) SubmitQuest(c *gin.Context) {
	var req struct {
		StudentID     string      `json:"studentId"`
		QuestID       string      `json:"questId" binding:"required"`
		IncomeAmount  interface{} `json:"incomeAmount"`
		SavingsAmount interface{} `json:"savingsAmount"`
		RiskProfile   string      `json:"riskProfile"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	// Auth middleware sets the header; the body field is a fallback for
	// trusted internal callers.
	studentID := c.GetHeader("X-User-ID")
	if studentID == "" {
		studentID = req.StudentID
	}
	if studentID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Student ID is required"})
		return
	}

	income := adaptive.ParseAmount(req.IncomeAmount)
	savings := adaptive.ParseAmount(req.SavingsAmount)

	result, err := h.Service.SubmitQuest(context.Background(), studentID, req.QuestID, income, savings, req.RiskProfile)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrQuestNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quest not found"})
		case errors.Is(err, service.ErrPersistence):
			// Storage failure, before or after scoring; the client can
			// safely retry the identical submission.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":     "Failed to record quest attempt, please retry",
				"retryable": true,
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":         true,
		"attempt":         result.Attempt,
		"profile":         result.Profile,
		"nextDifficulty":  result.NextDifficulty,
		"crisisTriggered": result.CrisisTriggered,
		"feedback":        result.Feedback,
	})
}

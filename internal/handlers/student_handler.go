package handlers

import (
	"context"
	"net/http"

	"quest-service/internal/service"

	"github.com/gin-gonic/gin"
)

// StudentHandler serves per-student read models: attempt history, the AI
// profile and module progress, plus the preference update.
type StudentHandler struct {
	AttemptService  *service.AttemptService
	ProfileService  *service.ProfileService
	ProgressService *service.ProgressService
}

func NewStudentHandler(as *service.AttemptService, ps *service.ProfileService, prs *service.ProgressService) *StudentHandler {
	return &StudentHandler{
		AttemptService:  as,
		ProfileService:  ps,
		ProgressService: prs,
	}
}

// GetAttempts returns a student's attempt history, newest first
func (h *StudentHandler) GetAttempts(c *gin.Context) {
	studentID := c.Param("id")

	questID := c.Query("questId")
	if questID != "" {
		attempts, err := h.AttemptService.GetAttemptsByStudentAndQuest(context.Background(), studentID, questID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"attempts": attempts})
		return
	}

	attempts, err := h.AttemptService.GetAttemptsByStudent(context.Background(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"attempts": attempts})
}

// GetProfile returns the student's AI profile (defaults before first attempt)
func (h *StudentHandler) GetProfile(c *gin.Context) {
	studentID := c.Param("id")
	profile, err := h.ProfileService.GetProfile(context.Background(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateProfilePreferences updates the caller-settable preference fields
func (h *StudentHandler) UpdateProfilePreferences(c *gin.Context) {
	studentID := c.Param("id")

	var req struct {
		LearningPace             string `json:"learningPace"`
		RiskTolerance            string `json:"riskTolerance"`
		CrisisScenarioPreference *bool  `json:"crisisScenarioPreference"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.ProfileService.UpdatePreferences(context.Background(), studentID, req.LearningPace, req.RiskTolerance, req.CrisisScenarioPreference)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetProgress returns the student's per-module rollups
func (h *StudentHandler) GetProgress(c *gin.Context) {
	studentID := c.Param("id")
	progress, err := h.ProgressService.GetProgressByStudent(context.Background(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"progress": progress})
}

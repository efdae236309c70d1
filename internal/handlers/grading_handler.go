package handlers

import (
	"context"
	"net/http"

	"quest-service/internal/service"

	"github.com/gin-gonic/gin"
)

type GradingHandler struct {
	Service *service.GradingService
}

func NewGradingHandler(s *service.GradingService) *GradingHandler {
	return &GradingHandler{Service: s}
}

// SubmitGrade records a teacher's grade for a student's module work
func (h *GradingHandler) SubmitGrade(c *gin.Context) {
	var req struct {
		TeacherID string `json:"teacherId"`
		StudentID string `json:"studentId" binding:"required"`
		ModuleID  string `json:"moduleId" binding:"required"`
		Grade     string `json:"grade" binding:"required"`
		Feedback  string `json:"feedback"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	teacherID := c.GetHeader("X-User-ID")
	if teacherID == "" {
		teacherID = req.TeacherID
	}
	if teacherID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Teacher ID is required"})
		return
	}

	record, err := h.Service.SubmitGrade(context.Background(), teacherID, req.StudentID, req.ModuleID, req.Grade, req.Feedback)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to record grade, please retry",
			"retryable": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":       true,
		"gradingRecord": record,
	})
}

// GetGradesByStudent returns all grading records for a student
func (h *GradingHandler) GetGradesByStudent(c *gin.Context) {
	studentID := c.Param("id")
	records, err := h.Service.GetGradesByStudent(context.Background(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gradingRecords": records})
}

// GetGradesByTeacher returns all grading records a teacher has issued
func (h *GradingHandler) GetGradesByTeacher(c *gin.Context) {
	teacherID := c.Param("id")
	records, err := h.Service.GetGradesByTeacher(context.Background(), teacherID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"gradingRecords": records})
}

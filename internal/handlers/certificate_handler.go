package handlers

import (
	"context"
	"net/http"

	"quest-service/internal/service"

	"github.com/gin-gonic/gin"
)

type CertificateHandler struct {
	Service *service.CertificateService
}

func NewCertificateHandler(s *service.CertificateService) *CertificateHandler {
	return &CertificateHandler{Service: s}
}

// SubmitCertificate issues a module-completion certificate with simulated
// chain fields
func (h *CertificateHandler) SubmitCertificate(c *gin.Context) {
	var req struct {
		StudentID            string `json:"studentId"`
		ModuleID             string `json:"moduleId" binding:"required"`
		FinancialHealthScore int    `json:"financialHealthScore"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	studentID := c.GetHeader("X-User-ID")
	if studentID == "" {
		studentID = req.StudentID
	}
	if studentID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Student ID is required"})
		return
	}

	cert, err := h.Service.IssueCertificate(context.Background(), studentID, req.ModuleID, req.FinancialHealthScore)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     "Failed to issue certificate, please retry",
			"retryable": true,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"certificate": cert,
	})
}

// GetCertificatesByStudent returns a student's earned certificates
func (h *CertificateHandler) GetCertificatesByStudent(c *gin.Context) {
	studentID := c.Param("id")
	certs, err := h.Service.GetCertificatesByStudent(context.Background(), studentID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"certificates": certs})
}

package handlers

import (
	"context"
	"net/http"

	"quest-service/internal/models"
	"quest-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ModuleHandler struct {
	Service *service.ModuleService
}

func NewModuleHandler(s *service.ModuleService) *ModuleHandler {
	return &ModuleHandler{Service: s}
}

func (h *ModuleHandler) ListModules(c *gin.Context) {
	modules, err := h.Service.GetAllModules(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"modules": modules})
}

func (h *ModuleHandler) GetModule(c *gin.Context) {
	id := c.Param("id")
	module, err := h.Service.GetModuleByID(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if module == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Module not found"})
		return
	}
	c.JSON(http.StatusOK, module)
}

func (h *ModuleHandler) CreateModule(c *gin.Context) {
	var module models.Module
	if err := c.ShouldBindJSON(&module); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateModule(context.Background(), &module); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, module)
}

package handlers

import (
	"context"
	"net/http"

	"quest-service/internal/models"
	"quest-service/internal/service"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

type QuestHandler struct {
	Service *service.QuestService
}

func NewQuestHandler(s *service.QuestService) *QuestHandler {
	return &QuestHandler{Service: s}
}

// ListQuests returns the full quest catalog
func (h *QuestHandler) ListQuests(c *gin.Context) {
	quests, err := h.Service.GetAllQuests(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quests": quests})
}

// GetQuest returns a single quest definition
func (h *QuestHandler) GetQuest(c *gin.Context) {
	id := c.Param("id")
	quest, err := h.Service.GetQuestByID(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if quest == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Quest not found"})
		return
	}
	c.JSON(http.StatusOK, quest)
}

// GetQuestsByModule returns the quests of one module
func (h *QuestHandler) GetQuestsByModule(c *gin.Context) {
	moduleID := c.Param("id")
	quests, err := h.Service.GetQuestsByModule(context.Background(), moduleID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"quests": quests})
}

// CreateQuest adds a quest to the catalog (content authoring)
func (h *QuestHandler) CreateQuest(c *gin.Context) {
	var quest models.Quest
	if err := c.ShouldBindJSON(&quest); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.CreateQuest(context.Background(), &quest); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, quest)
}

// UpdateQuest modifies a catalog quest
func (h *QuestHandler) UpdateQuest(c *gin.Context) {
	id := c.Param("id")
	var update bson.M
	if err := c.ShouldBindJSON(&update); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.Service.UpdateQuest(context.Background(), id, update); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteQuest removes a quest from the catalog
func (h *QuestHandler) DeleteQuest(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteQuest(context.Background(), id); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

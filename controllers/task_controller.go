package controllers

import (
	"net/http"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"
	"github.com/namratah118/trykymi/utils"

	"github.com/gin-gonic/gin"
)

// TaskController is plain per-user CRUD over tasks.
type TaskController struct{}

func (tc *TaskController) List(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	query := config.DB.Where("user_id = ?", uid)
	if completed := c.Query("completed"); completed != "" {
		query = query.Where("completed = ?", completed == "true")
	}

	var tasks []models.Task
	if err := query.Order("created_at desc").Find(&tasks).Error; err != nil {
		config.Logger.Errorw("task fetch failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load tasks"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (tc *TaskController) Create(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	now := time.Now()
	task := models.Task{
		ID:          utils.GenerateID(),
		UserID:      uid,
		Title:       req.Title,
		Description: req.Description,
		Priority:    priority,
		DueDate:     req.DueDate,
		Completed:   req.Completed,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := config.DB.Create(&task).Error; err != nil {
		config.Logger.Errorw("task creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (tc *TaskController) Update(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var task models.Task
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&task).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	var req models.TaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updates := map[string]interface{}{
		"title":       req.Title,
		"description": req.Description,
		"due_date":    req.DueDate,
		"completed":   req.Completed,
		"updated_at":  time.Now(),
	}
	if req.Priority != "" {
		updates["priority"] = req.Priority
	}

	if err := config.DB.Model(&task).Updates(updates).Error; err != nil {
		config.Logger.Errorw("task update failed", "error", err, "uid", uid, "taskID", task.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update task"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"task": task})
}

func (tc *TaskController) Delete(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	result := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).Delete(&models.Task{})
	if result.Error != nil {
		config.Logger.Errorw("task delete failed", "error", result.Error, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete task"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "task not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

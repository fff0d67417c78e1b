package controllers

import (
	"net/http"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"
	"github.com/namratah118/trykymi/utils"

	"github.com/gin-gonic/gin"
)

// ReminderController is per-user CRUD over reminders. Delivery is the
// client's concern.
type ReminderController struct{}

func (rc *ReminderController) List(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	query := config.DB.Where("user_id = ?", uid)
	if date := c.Query("date"); date != "" {
		query = query.Where("reminder_date = ?", date)
	}

	var reminders []models.Reminder
	if err := query.Order("reminder_date asc, reminder_time asc").Find(&reminders).Error; err != nil {
		config.Logger.Errorw("reminder fetch failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load reminders"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminders": reminders})
}

func (rc *ReminderController) Create(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var req models.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	now := time.Now()
	reminder := models.Reminder{
		ID:           utils.GenerateID(),
		UserID:       uid,
		Title:        req.Title,
		Description:  req.Description,
		ReminderDate: req.ReminderDate,
		ReminderTime: req.ReminderTime,
		Completed:    req.Completed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := config.DB.Create(&reminder).Error; err != nil {
		config.Logger.Errorw("reminder creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

func (rc *ReminderController) Update(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var reminder models.Reminder
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&reminder).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}

	var req models.ReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if err := config.DB.Model(&reminder).Updates(map[string]interface{}{
		"title":         req.Title,
		"description":   req.Description,
		"reminder_date": req.ReminderDate,
		"reminder_time": req.ReminderTime,
		"completed":     req.Completed,
		"updated_at":    time.Now(),
	}).Error; err != nil {
		config.Logger.Errorw("reminder update failed", "error", err, "uid", uid, "reminderID", reminder.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update reminder"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reminder": reminder})
}

func (rc *ReminderController) Delete(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	result := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).Delete(&models.Reminder{})
	if result.Error != nil {
		config.Logger.Errorw("reminder delete failed", "error", result.Error, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete reminder"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "reminder not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

package controllers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"
	"github.com/namratah118/trykymi/services"
	"github.com/namratah118/trykymi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// CheckinController owns the one-row-per-user-per-day check-in aggregate.
type CheckinController struct{}

// checkinColumns are the fields a same-day resubmission overwrites.
var checkinColumns = []string{"mood", "message", "ai_response", "productivity_score", "time_lost_minutes", "updated_at"}

// Submit scores the structured answers and upserts the daily row. The write
// is a single insert-or-update on (user_id, checkin_date); concurrent
// submissions resolve as last write wins.
func (cc *CheckinController) Submit(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var req models.CheckinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	date := requestDate(req.Date)
	score := services.ReadinessScore(req.Mood, req.Energy, req.Sleep)
	timeLost := services.EstimatedTimeLost(req.Mood)

	message := req.Message
	if req.Energy != "" || req.Sleep != "" || len(req.Priorities) > 0 {
		// richer flows store the whole answer bundle
		bundle, err := json.Marshal(gin.H{
			"energy":     req.Energy,
			"sleep":      req.Sleep,
			"priorities": req.Priorities,
			"message":    req.Message,
		})
		if err == nil {
			message = string(bundle)
		}
	}

	now := time.Now()
	checkin := models.DailyCheckin{
		ID:                utils.GenerateID(),
		UserID:            uid,
		CheckinDate:       date,
		Mood:              req.Mood,
		Message:           message,
		AIResponse:        services.ReflectionMessage(req.Mood),
		ProductivityScore: &score,
		TimeLostMinutes:   &timeLost,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "checkin_date"}},
		DoUpdates: clause.AssignmentColumns(checkinColumns),
	}).Create(&checkin).Error
	if err != nil {
		config.Logger.Errorw("check-in upsert failed", "error", err, "uid", uid, "date", date)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save check-in"})
		return
	}

	c.JSON(http.StatusOK, models.CheckinResponse{
		CheckinDate:       date,
		Mood:              req.Mood,
		AIResponse:        checkin.AIResponse,
		ProductivityScore: score,
		TimeLostMinutes:   timeLost,
	})
}

// Today returns the current day's check-in row, if any.
func (cc *CheckinController) Today(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	date := requestDate(c.Query("date"))

	var checkin models.DailyCheckin
	if err := config.DB.Where("user_id = ? AND checkin_date = ?", uid, date).First(&checkin).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no check-in for this date"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"checkin": checkin})
}

// RefreshScore recomputes the productivity score from today's completed
// tasks and habit logs, then upserts only the score column of the daily row.
func (cc *CheckinController) RefreshScore(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	now := time.Now()
	date := now.Format(dateLayout)
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var taskCount int64
	if err := config.DB.Model(&models.Task{}).
		Where("user_id = ? AND completed = ? AND updated_at >= ?", uid, true, startOfDay).
		Count(&taskCount).Error; err != nil {
		config.Logger.Errorw("task count failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh score"})
		return
	}

	var logCount int64
	if err := config.DB.Model(&models.HabitCompletion{}).
		Where("user_id = ? AND completed_date = ?", uid, date).
		Count(&logCount).Error; err != nil {
		config.Logger.Errorw("habit log count failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh score"})
		return
	}

	score := int(taskCount)*15 + int(logCount)*10
	if score > 100 {
		score = 100
	}

	checkin := models.DailyCheckin{
		ID:                utils.GenerateID(),
		UserID:            uid,
		CheckinDate:       date,
		ProductivityScore: &score,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "checkin_date"}},
		DoUpdates: clause.AssignmentColumns([]string{"productivity_score", "updated_at"}),
	}).Create(&checkin).Error
	if err != nil {
		config.Logger.Errorw("score upsert failed", "error", err, "uid", uid, "date", date)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to refresh score"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"productivity_score": score})
}

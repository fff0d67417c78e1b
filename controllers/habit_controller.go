package controllers

import (
	"net/http"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"
	"github.com/namratah118/trykymi/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

// HabitController manages habits and their daily completion log.
type HabitController struct{}

func (hc *HabitController) List(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var habits []models.Habit
	if err := config.DB.Where("user_id = ?", uid).Order("created_at asc").Find(&habits).Error; err != nil {
		config.Logger.Errorw("habit fetch failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load habits"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"habits": habits})
}

func (hc *HabitController) Create(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var req models.HabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	frequency := req.Frequency
	if frequency == "" {
		frequency = "daily"
	}

	now := time.Now()
	habit := models.Habit{
		ID:          utils.GenerateID(),
		UserID:      uid,
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
		Frequency:   frequency,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := config.DB.Create(&habit).Error; err != nil {
		config.Logger.Errorw("habit creation failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create habit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

func (hc *HabitController) Update(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var habit models.Habit
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&habit).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		return
	}

	var req models.HabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updates := map[string]interface{}{
		"name":        req.Name,
		"description": req.Description,
		"color":       req.Color,
		"updated_at":  time.Now(),
	}
	if req.Frequency != "" {
		updates["frequency"] = req.Frequency
	}

	if err := config.DB.Model(&habit).Updates(updates).Error; err != nil {
		config.Logger.Errorw("habit update failed", "error", err, "uid", uid, "habitID", habit.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update habit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"habit": habit})
}

func (hc *HabitController) Delete(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	habitID := c.Param("id")
	result := config.DB.Where("id = ? AND user_id = ?", habitID, uid).Delete(&models.Habit{})
	if result.Error != nil {
		config.Logger.Errorw("habit delete failed", "error", result.Error, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete habit"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		return
	}

	// completions go with the habit
	config.DB.Where("habit_id = ? AND user_id = ?", habitID, uid).Delete(&models.HabitCompletion{})

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// Log marks a habit done for a date. Logging twice on the same day upserts
// into the same completion row, and streaks are recomputed on every write.
func (hc *HabitController) Log(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var habit models.Habit
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&habit).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "habit not found"})
		return
	}

	date := requestDate(c.Query("date"))

	completion := models.HabitCompletion{
		ID:            utils.GenerateID(),
		HabitID:       habit.ID,
		UserID:        uid,
		CompletedDate: date,
		CreatedAt:     time.Now(),
	}

	err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "habit_id"}, {Name: "completed_date"}},
		DoNothing: true,
	}).Create(&completion).Error
	if err != nil {
		config.Logger.Errorw("habit log failed", "error", err, "uid", uid, "habitID", habit.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log habit"})
		return
	}

	var dates []string
	if err := config.DB.Model(&models.HabitCompletion{}).
		Where("habit_id = ?", habit.ID).
		Order("completed_date desc").
		Pluck("completed_date", &dates).Error; err != nil {
		config.Logger.Errorw("habit completion fetch failed", "error", err, "habitID", habit.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log habit"})
		return
	}

	current := computeStreak(dates, habit.Frequency)
	longest := habit.LongestStreak
	if current > longest {
		longest = current
	}

	if err := config.DB.Model(&habit).Updates(map[string]interface{}{
		"current_streak": current,
		"longest_streak": longest,
		"updated_at":     time.Now(),
	}).Error; err != nil {
		config.Logger.Errorw("streak update failed", "error", err, "habitID", habit.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to log habit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"current_streak": current,
		"longest_streak": longest,
	})
}

// computeStreak counts the consecutive run ending at the newest completion.
// Dates arrive newest first. Daily habits count consecutive days, weekly
// habits consecutive ISO weeks.
func computeStreak(dates []string, frequency string) int {
	if len(dates) == 0 {
		return 0
	}

	streak := 1
	prev, err := time.Parse(dateLayout, dates[0])
	if err != nil {
		return 0
	}

	for _, raw := range dates[1:] {
		day, err := time.Parse(dateLayout, raw)
		if err != nil {
			break
		}

		if frequency == "weekly" {
			prevYear, prevWeek := prev.ISOWeek()
			year, week := day.ISOWeek()
			if prevYear == year && prevWeek == week {
				continue // same week, streak unchanged
			}
			if !consecutiveWeeks(day, prev) {
				break
			}
		} else {
			if prev.Sub(day) != 24*time.Hour {
				break
			}
		}

		streak++
		prev = day
	}

	return streak
}

func consecutiveWeeks(older, newer time.Time) bool {
	prevYear, prevWeek := newer.AddDate(0, 0, -7).ISOWeek()
	year, week := older.ISOWeek()
	return prevYear == year && prevWeek == week
}

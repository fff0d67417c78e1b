package controllers

import (
	"net/http"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"
	"github.com/namratah118/trykymi/utils"

	"github.com/gin-gonic/gin"
)

// PlanController persists accepted daily plans.
type PlanController struct{}

// List returns the plan blocks for one date, ordered by start time.
func (pc *PlanController) List(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	date := requestDate(c.Query("date"))

	var plans []models.Plan
	if err := config.DB.Where("user_id = ? AND plan_date = ?", uid, date).
		Order("start_time asc").Find(&plans).Error; err != nil {
		config.Logger.Errorw("plan fetch failed", "error", err, "uid", uid, "date", date)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

// Save commits accepted generated items as plan rows for a date.
func (pc *PlanController) Save(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var req models.SavePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if len(req.Items) == 0 {
		c.JSON(http.StatusOK, gin.H{"saved": 0})
		return
	}

	date := requestDate(req.Date)
	now := time.Now()

	plans := make([]models.Plan, len(req.Items))
	for i, item := range req.Items {
		plans[i] = models.Plan{
			ID:          utils.GenerateID(),
			UserID:      uid,
			Title:       item.Title,
			Description: item.Description,
			StartTime:   item.StartTime,
			EndTime:     item.EndTime,
			Priority:    item.Priority,
			PlanDate:    date,
			CreatedAt:   now,
			UpdatedAt:   now,
		}
	}

	if err := config.DB.Create(&plans).Error; err != nil {
		config.Logger.Errorw("plan insert failed", "error", err, "uid", uid, "count", len(plans))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save plans"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": len(plans)})
}

// Complete toggles a plan block's completed flag.
func (pc *PlanController) Complete(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var plan models.Plan
	if err := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).First(&plan).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}

	newState := !plan.Completed
	if err := config.DB.Model(&plan).Updates(map[string]interface{}{
		"completed":  newState,
		"updated_at": time.Now(),
	}).Error; err != nil {
		config.Logger.Errorw("plan update failed", "error", err, "uid", uid, "planID", plan.ID)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update plan"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"completed": newState})
}

// Delete removes a plan block.
func (pc *PlanController) Delete(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	result := config.DB.Where("id = ? AND user_id = ?", c.Param("id"), uid).Delete(&models.Plan{})
	if result.Error != nil {
		config.Logger.Errorw("plan delete failed", "error", result.Error, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete plan"})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "plan not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

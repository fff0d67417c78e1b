package controllers

import (
	"net/http"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"
	"github.com/namratah118/trykymi/services"
	"github.com/namratah118/trykymi/utils"

	"github.com/gin-gonic/gin"
)

// DebriefController runs the daily debrief flow: extract first, then a
// separate user-triggered save of the accepted entries.
type DebriefController struct {
	debriefService *services.DebriefService
}

func NewDebriefController(debriefService *services.DebriefService) *DebriefController {
	return &DebriefController{
		debriefService: debriefService,
	}
}

// Generate extracts time intelligence from a free-text narration. Nothing is
// persisted here; a soft-failed extraction still answers 200 with the
// fallback summary so the user always sees a result.
func (dc *DebriefController) Generate(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var req models.DebriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	result := dc.debriefService.ExtractDebrief(c.Request.Context(), req.Text, req.Mood)
	if result == nil {
		config.Logger.Infow("debrief fell back", "uid", uid)
		c.JSON(http.StatusOK, models.DebriefResponse{
			Summary:  services.FallbackSummary,
			Entries:  []models.DebriefEntry{},
			Fallback: true,
		})
		return
	}

	c.JSON(http.StatusOK, models.DebriefResponse{
		Summary:   result.Summary,
		Entries:   result.Entries,
		TotalWon:  result.TotalWon(),
		TotalLost: result.TotalLost(),
	})
}

// Save commits accepted debrief entries as time_entries rows. Append-only:
// regenerating a debrief never touches the table, only this endpoint does.
func (dc *DebriefController) Save(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	var req models.SaveDebriefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	if len(req.Entries) == 0 {
		c.JSON(http.StatusOK, gin.H{"saved": 0})
		return
	}

	date := requestDate(req.Date)
	now := time.Now()

	entries := make([]models.TimeEntry, len(req.Entries))
	for i, e := range req.Entries {
		entries[i] = models.TimeEntry{
			ID:              utils.GenerateID(),
			UserID:          uid,
			Type:            e.Type,
			Activity:        e.Activity,
			DurationMinutes: e.DurationMinutes,
			EntryDate:       date,
			CreatedAt:       now,
		}
	}

	if err := config.DB.Create(&entries).Error; err != nil {
		config.Logger.Errorw("time entry insert failed", "error", err, "uid", uid, "count", len(entries))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save entries"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"saved": len(entries)})
}

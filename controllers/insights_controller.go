package controllers

import (
	"net/http"
	"sort"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"

	"github.com/gin-gonic/gin"
)

// InsightsController aggregates time entries for the dashboard.
type InsightsController struct{}

// TimeSummary returns per-day won/lost minutes over a date range plus the
// latest productivity score. Defaults to the last seven days.
func (ic *InsightsController) TimeSummary(c *gin.Context) {
	uid, ok := currentUID(c)
	if !ok {
		return
	}

	to := requestDate(c.Query("to"))
	from := c.Query("from")
	if from == "" {
		from = time.Now().AddDate(0, 0, -6).Format(dateLayout)
	}

	var entries []models.TimeEntry
	if err := config.DB.Where("user_id = ? AND entry_date BETWEEN ? AND ?", uid, from, to).
		Find(&entries).Error; err != nil {
		config.Logger.Errorw("time entry fetch failed", "error", err, "uid", uid)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load insights"})
		return
	}

	byDate := make(map[string]*models.DailyTimeSummary)
	totalWon, totalLost := 0, 0
	for _, e := range entries {
		day, exists := byDate[e.EntryDate]
		if !exists {
			day = &models.DailyTimeSummary{Date: e.EntryDate}
			byDate[e.EntryDate] = day
		}
		switch e.Type {
		case models.EntryTypeWon:
			day.WonMinutes += e.DurationMinutes
			totalWon += e.DurationMinutes
		case models.EntryTypeLost:
			day.LostMinutes += e.DurationMinutes
			totalLost += e.DurationMinutes
		}
	}

	days := make([]models.DailyTimeSummary, 0, len(byDate))
	for _, day := range byDate {
		days = append(days, *day)
	}
	sort.Slice(days, func(i, j int) bool {
		return days[i].Date < days[j].Date
	})

	var score *int
	var latest models.DailyCheckin
	if err := config.DB.Where("user_id = ? AND productivity_score IS NOT NULL", uid).
		Order("checkin_date desc").First(&latest).Error; err == nil {
		score = latest.ProductivityScore
	}

	c.JSON(http.StatusOK, models.InsightsResponse{
		Days:              days,
		TotalWon:          totalWon,
		TotalLost:         totalLost,
		ProductivityScore: score,
	})
}

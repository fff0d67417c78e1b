package models

import (
	"time"
)

// DailyCheckin is the single per-day row for a user. The composite unique
// index makes writes an upsert keyed on (user_id, checkin_date) so a
// same-day resubmission overwrites instead of duplicating.
type DailyCheckin struct {
	ID                string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID            string    `gorm:"type:varchar(50);uniqueIndex:idx_checkins_user_date" json:"user_id"`
	CheckinDate       string    `gorm:"type:varchar(10);uniqueIndex:idx_checkins_user_date" json:"checkin_date"` // YYYY-MM-DD
	Mood              string    `gorm:"type:varchar(50)" json:"mood"`
	Message           string    `gorm:"type:text" json:"message"`
	AIResponse        string    `gorm:"type:text" json:"ai_response"`
	ProductivityScore *int      `json:"productivity_score"`
	TimeLostMinutes   *int      `json:"time_lost_minutes"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (DailyCheckin) TableName() string {
	return "daily_checkins"
}

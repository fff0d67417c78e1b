package models

import (
	"time"
)

// Time entry classification.
const (
	EntryTypeWon  = "won"
	EntryTypeLost = "lost"
)

// TimeEntry is one block of time classified as productive ("won") or
// wasted ("lost"). Rows are append-only; several per user per day are fine.
type TimeEntry struct {
	ID              string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID          string    `gorm:"type:varchar(50);index:idx_time_entries_user_date" json:"user_id"`
	Type            string    `gorm:"type:varchar(10)" json:"type"`
	Activity        string    `gorm:"type:varchar(255)" json:"activity"`
	DurationMinutes int       `json:"duration_minutes"`
	EntryDate       string    `gorm:"type:varchar(10);index:idx_time_entries_user_date" json:"entry_date"` // caller's local date, YYYY-MM-DD
	CreatedAt       time.Time `json:"created_at"`
}

func (TimeEntry) TableName() string {
	return "time_entries"
}

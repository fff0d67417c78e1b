package models

import (
	"time"
)

// Habit is a recurring practice the user wants to keep up.
type Habit struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID        string    `gorm:"type:varchar(50);index" json:"user_id"`
	Name          string    `gorm:"type:varchar(100)" json:"name"`
	Description   string    `gorm:"type:text" json:"description"`
	Color         string    `gorm:"type:varchar(20)" json:"color"`
	Frequency     string    `gorm:"type:varchar(10);default:daily" json:"frequency"` // daily | weekly
	CurrentStreak int       `gorm:"default:0" json:"current_streak"`
	LongestStreak int       `gorm:"default:0" json:"longest_streak"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HabitCompletion marks a habit done on a date. Logging the same habit twice
// on one day upserts into the same row.
type HabitCompletion struct {
	ID            string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	HabitID       string    `gorm:"type:varchar(50);uniqueIndex:idx_habit_completion_date" json:"habit_id"`
	UserID        string    `gorm:"type:varchar(50);index" json:"user_id"`
	CompletedDate string    `gorm:"type:varchar(10);uniqueIndex:idx_habit_completion_date" json:"completed_date"` // YYYY-MM-DD
	CreatedAt     time.Time `json:"created_at"`
}

func (HabitCompletion) TableName() string {
	return "habit_completions"
}

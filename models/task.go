package models

import (
	"time"
)

// Task priorities.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task is a user to-do item.
type Task struct {
	ID          string     `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string     `gorm:"type:varchar(50);index" json:"user_id"`
	Title       string     `gorm:"type:varchar(255)" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	Priority    string     `gorm:"type:varchar(10);default:medium" json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `gorm:"default:false" json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

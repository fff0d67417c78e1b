package models

import (
	"time"
)

// Plan is one scheduled block of a user's daily plan.
type Plan struct {
	ID          string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID      string    `gorm:"type:varchar(50);index:idx_plans_user_date" json:"user_id"`
	Title       string    `gorm:"type:varchar(255)" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	StartTime   string    `gorm:"type:varchar(5)" json:"start_time"` // HH:MM
	EndTime     string    `gorm:"type:varchar(5)" json:"end_time"`   // HH:MM
	Priority    string    `gorm:"type:varchar(10);default:medium" json:"priority"`
	PlanDate    string    `gorm:"type:varchar(10);index:idx_plans_user_date" json:"plan_date"` // YYYY-MM-DD
	Completed   bool      `gorm:"default:false" json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// PlanItem is one generated plan block before the user accepts it.
type PlanItem struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartTime   string `json:"start_time"`
	EndTime     string `json:"end_time"`
	Priority    string `json:"priority"`
}

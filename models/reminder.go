package models

import (
	"time"
)

// Reminder is a dated note the client surfaces at the right moment.
// Alarm delivery itself lives in the client, not here.
type Reminder struct {
	ID           string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID       string    `gorm:"type:varchar(50);index" json:"user_id"`
	Title        string    `gorm:"type:varchar(255)" json:"title"`
	Description  string    `gorm:"type:text" json:"description"`
	ReminderDate string    `gorm:"type:varchar(10)" json:"reminder_date"` // YYYY-MM-DD
	ReminderTime string    `gorm:"type:varchar(5)" json:"reminder_time"`  // HH:MM, optional
	Completed    bool      `gorm:"default:false" json:"completed"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

package models

import (
	"time"
)

// ChatMessage is one turn of the assistant conversation.
type ChatMessage struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	UserID    string    `gorm:"type:varchar(50);index" json:"user_id"`
	Role      string    `gorm:"type:varchar(10)" json:"role"` // user | assistant
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

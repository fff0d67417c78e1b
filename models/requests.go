package models

import (
	"fmt"
	"time"
)

// DebriefRequest is a free-text narration of the user's day.
type DebriefRequest struct {
	Text string `json:"text" binding:"required"`
	Mood string `json:"mood"`
	Date string `json:"date"` // caller's local date, YYYY-MM-DD; defaults to server date
}

// SaveDebriefRequest commits accepted debrief entries to the dashboard.
type SaveDebriefRequest struct {
	Date    string         `json:"date"`
	Entries []DebriefEntry `json:"entries" binding:"required"`
}

func (r *SaveDebriefRequest) Validate() error {
	for i, e := range r.Entries {
		if e.Type != EntryTypeWon && e.Type != EntryTypeLost {
			return fmt.Errorf("entry %d: type must be won or lost", i)
		}
		if e.Activity == "" {
			return fmt.Errorf("entry %d: activity is required", i)
		}
		if e.DurationMinutes < 0 {
			return fmt.Errorf("entry %d: duration_minutes must be non-negative", i)
		}
	}
	return nil
}

// CheckinRequest carries the structured daily check-in answers. Mood alone is
// enough for the simple reflection flow; energy/sleep/priorities enable the
// readiness score.
type CheckinRequest struct {
	Date       string   `json:"date"`
	Mood       string   `json:"mood" binding:"required"`
	Energy     string   `json:"energy"`
	Sleep      string   `json:"sleep"`
	Priorities []string `json:"priorities"`
	Message    string   `json:"message"`
}

// ChatTurn is one prior message of assistant history supplied by the client.
type ChatTurn struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// ChatRequest is an assistant conversation message.
type ChatRequest struct {
	Message string     `json:"message" binding:"required"`
	History []ChatTurn `json:"history"`
}

// PlanGenerateRequest asks the assistant for a daily plan.
type PlanGenerateRequest struct {
	Message string `json:"message" binding:"required"`
	Date    string `json:"date"`
}

// SavePlanRequest commits accepted plan items for a date.
type SavePlanRequest struct {
	Date  string     `json:"date"`
	Items []PlanItem `json:"items" binding:"required"`
}

// TaskRequest creates or updates a task.
type TaskRequest struct {
	Title       string     `json:"title" binding:"required"`
	Description string     `json:"description"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date"`
	Completed   bool       `json:"completed"`
}

func (r *TaskRequest) Validate() error {
	switch r.Priority {
	case "", PriorityLow, PriorityMedium, PriorityHigh:
		return nil
	}
	return fmt.Errorf("invalid priority, must be one of: low, medium, high")
}

// HabitRequest creates or updates a habit.
type HabitRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
	Frequency   string `json:"frequency"`
}

func (r *HabitRequest) Validate() error {
	switch r.Frequency {
	case "", "daily", "weekly":
		return nil
	}
	return fmt.Errorf("invalid frequency, must be one of: daily, weekly")
}

// ReminderRequest creates or updates a reminder.
type ReminderRequest struct {
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	ReminderDate string `json:"reminder_date" binding:"required"`
	ReminderTime string `json:"reminder_time"`
	Completed    bool   `json:"completed"`
}

// RegisterRequest creates an account.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest authenticates an account.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

package models

// DebriefResponse is what the client renders after a debrief submission.
// A soft-failed extraction still produces a summary and an empty entry list.
type DebriefResponse struct {
	Summary   string         `json:"summary"`
	Entries   []DebriefEntry `json:"entries"`
	TotalWon  int            `json:"total_won_minutes"`
	TotalLost int            `json:"total_lost_minutes"`
	Fallback  bool           `json:"fallback"`
}

// CheckinResponse echoes the persisted daily check-in row.
type CheckinResponse struct {
	CheckinDate       string `json:"checkin_date"`
	Mood              string `json:"mood"`
	AIResponse        string `json:"ai_response"`
	ProductivityScore int    `json:"productivity_score"`
	TimeLostMinutes   int    `json:"time_lost_minutes"`
}

// ChatResponse is one assistant reply.
type ChatResponse struct {
	Message string `json:"message"`
}

// PlanGenerateResponse carries generated plan items before the user accepts.
type PlanGenerateResponse struct {
	Items []PlanItem `json:"items"`
}

// AuthResponse returns a signed token plus the account.
type AuthResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// DailyTimeSummary is one day of aggregated won/lost minutes.
type DailyTimeSummary struct {
	Date        string `json:"date"`
	WonMinutes  int    `json:"won_minutes"`
	LostMinutes int    `json:"lost_minutes"`
}

// InsightsResponse is the dashboard aggregate view.
type InsightsResponse struct {
	Days              []DailyTimeSummary `json:"days"`
	TotalWon          int                `json:"total_won_minutes"`
	TotalLost         int                `json:"total_lost_minutes"`
	ProductivityScore *int               `json:"productivity_score"`
}

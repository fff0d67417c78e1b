package models

// DebriefEntry is one activity extracted from a daily debrief.
type DebriefEntry struct {
	Type            string `json:"type"` // won | lost
	Activity        string `json:"activity"`
	DurationMinutes int    `json:"duration_minutes"`
}

// DebriefResult is the parsed model output for one debrief submission.
// It is transient: entries only reach time_entries when the user saves them.
type DebriefResult struct {
	Summary string         `json:"summary"`
	Entries []DebriefEntry `json:"entries"`
}

// TotalWon sums duration over entries classified as won.
func (d *DebriefResult) TotalWon() int {
	return d.totalByType(EntryTypeWon)
}

// TotalLost sums duration over entries classified as lost.
func (d *DebriefResult) TotalLost() int {
	return d.totalByType(EntryTypeLost)
}

func (d *DebriefResult) totalByType(entryType string) int {
	total := 0
	for _, e := range d.Entries {
		if e.Type == entryType {
			total += e.DurationMinutes
		}
	}
	return total
}

package services

import (
	"testing"
)

func TestReadinessScore(t *testing.T) {
	tests := []struct {
		name   string
		mood   string
		energy string
		sleep  string
		want   int
	}{
		{"clamped to upper bound", "focused", "high", "great", 100}, // 90+10+12=112
		{"clamped to lower bound", "stressed", "low", "poor", 10},   // 35-15-15=5
		{"no adjustments", "happy", "medium", "okay", 85},
		{"calm baseline", "calm", "medium", "okay", 78},
		{"anxious with good sleep", "anxious", "medium", "good", 50},
		{"tired low energy", "tired", "low", "okay", 33},
		{"unknown mood defaults to 65", "melancholy", "medium", "okay", 65},
		{"unknown energy defaults to 0", "happy", "buzzing", "okay", 85},
		{"unknown sleep defaults to 0", "happy", "medium", "terrible", 85},
		{"all unknown", "", "", "", 65},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ReadinessScore(tt.mood, tt.energy, tt.sleep)
			if got != tt.want {
				t.Errorf("ReadinessScore(%q, %q, %q) = %d, want %d", tt.mood, tt.energy, tt.sleep, got, tt.want)
			}
		})
	}
}

func TestReadinessScoreBounds(t *testing.T) {
	moods := []string{"calm", "happy", "focused", "anxious", "stressed", "tired", "unknown"}
	energies := []string{"low", "medium", "high", ""}
	sleeps := []string{"poor", "okay", "good", "great", ""}

	for _, mood := range moods {
		for _, energy := range energies {
			for _, sleep := range sleeps {
				got := ReadinessScore(mood, energy, sleep)
				if got < 10 || got > 100 {
					t.Errorf("ReadinessScore(%q, %q, %q) = %d, out of [10,100]", mood, energy, sleep, got)
				}
			}
		}
	}
}

func TestReadinessScoreDeterministic(t *testing.T) {
	first := ReadinessScore("focused", "medium", "good")
	for i := 0; i < 100; i++ {
		if got := ReadinessScore("focused", "medium", "good"); got != first {
			t.Fatalf("ReadinessScore not deterministic: got %d then %d", first, got)
		}
	}
}

func TestEstimatedTimeLost(t *testing.T) {
	tests := []struct {
		mood string
		want int
	}{
		{"stressed", 120},
		{"anxious", 90},
		{"tired", 75},
		{"calm", 30},
		{"happy", 30},
		{"unknown", 30},
		{"", 30},
	}

	for _, tt := range tests {
		got := EstimatedTimeLost(tt.mood)
		if got != tt.want {
			t.Errorf("EstimatedTimeLost(%q) = %d, want %d", tt.mood, got, tt.want)
		}
	}
}

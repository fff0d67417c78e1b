package services

import (
	"fmt"
)

// Readiness scoring tables. Fixed lookups, no model involvement: the same
// answers always produce the same score.
var moodBaseScores = map[string]int{
	"calm":     78,
	"happy":    85,
	"focused":  90,
	"anxious":  42,
	"stressed": 35,
	"tired":    48,
}

var energyAdjustments = map[string]int{
	"low":    -15,
	"medium": 0,
	"high":   10,
}

var sleepAdjustments = map[string]int{
	"poor":  -15,
	"okay":  0,
	"good":  8,
	"great": 12,
}

// Coarse per-mood estimate of minutes lost, independent of the score.
var moodTimeLost = map[string]int{
	"stressed": 120,
	"anxious":  90,
	"tired":    75,
}

const (
	defaultMoodBase   = 65
	defaultTimeLost   = 30
	minReadinessScore = 10 // never show a zero score
	maxReadinessScore = 100
)

// ReadinessScore maps discrete check-in answers to a bounded daily score.
// Unknown vocabulary falls back to neutral defaults instead of erroring.
func ReadinessScore(mood, energy, sleep string) int {
	base, ok := moodBaseScores[mood]
	if !ok {
		base = defaultMoodBase
	}

	score := base + energyAdjustments[energy] + sleepAdjustments[sleep]

	if score < minReadinessScore {
		return minReadinessScore
	}
	if score > maxReadinessScore {
		return maxReadinessScore
	}
	return score
}

// EstimatedTimeLost guesses minutes lost from mood alone.
func EstimatedTimeLost(mood string) int {
	if minutes, ok := moodTimeLost[mood]; ok {
		return minutes
	}
	return defaultTimeLost
}

// ReflectionMessage is the canned acknowledgment stored with a check-in.
func ReflectionMessage(mood string) string {
	return fmt.Sprintf("Great reflection! You've captured your day as %q. Keep building momentum tomorrow.", mood)
}

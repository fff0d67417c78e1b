package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"

	"github.com/tmc/langchaingo/llms"
)

// FallbackSummary is shown whenever extraction soft-fails. The user always
// gets a summary and a (possibly empty) entry list, never an error page.
const FallbackSummary = "Today is yours. Make it count."

const debriefSystemPrompt = `You are Kymi, an AI that analyzes daily debrief text and extracts time intelligence data.
Extract activities from the user's day and classify them as "won" (productive, healthy, intentional) or "lost" (unproductive, distracting, wasteful).
Return ONLY valid JSON (no markdown) in this exact format:
{
  "summary": "A warm, brief 2-3 sentence summary of the user's day with encouragement",
  "entries": [
    { "type": "won", "activity": "Short activity name", "duration_minutes": 120 }
  ]
}
Be generous in estimation if exact times aren't given. Convert hours to minutes.`

// DebriefService turns free-text day narrations into structured time
// intelligence. The model is treated as an untrusted oracle: anything it
// returns is validated before use, and every failure degrades to nil.
type DebriefService struct {
	client  *AssistantClient
	timeout time.Duration
}

func NewDebriefService(client *AssistantClient, timeout time.Duration) *DebriefService {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &DebriefService{
		client:  client,
		timeout: timeout,
	}
}

// ExtractDebrief sends one narration to the model and parses the reply.
// Returns nil on any failure (transport, timeout, malformed output); the
// caller substitutes the fallback. One attempt only, no retry.
func (s *DebriefService) ExtractDebrief(ctx context.Context, text string, mood string) *models.DebriefResult {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(debriefSystemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(debriefUserMessage(text, mood))},
		},
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages,
		llms.WithTemperature(0.5),
		llms.WithMaxTokens(1200),
	)
	if err != nil {
		config.Logger.Errorw("debrief generation failed", "error", err)
		return nil
	}
	if len(response.Choices) == 0 {
		config.Logger.Errorw("debrief generation returned no choices")
		return nil
	}

	result := parseDebrief(response.Choices[0].Content)
	if result == nil {
		config.Logger.Warnw("debrief output did not match the expected shape",
			"contentLength", len(response.Choices[0].Content),
		)
	}
	return result
}

// debriefUserMessage prefixes the optional mood context the same way the
// client UI phrases it.
func debriefUserMessage(text string, mood string) string {
	if mood == "" {
		return text
	}
	return fmt.Sprintf("My mood today: %s. %s", mood, text)
}

// parseDebrief cleans and parses model output. Nil means malformed.
func parseDebrief(content string) *models.DebriefResult {
	cleaned := stripCodeFences(content)

	var result models.DebriefResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil
	}

	// A debrief without a summary is malformed; the fallback provides one.
	if result.Summary == "" {
		return nil
	}
	if result.Entries == nil {
		result.Entries = []models.DebriefEntry{}
	}
	for _, e := range result.Entries {
		if e.Type != models.EntryTypeWon && e.Type != models.EntryTypeLost {
			return nil
		}
		if e.Activity == "" {
			return nil
		}
		if e.DurationMinutes < 0 {
			return nil
		}
	}

	return &result
}

// stripCodeFences removes markdown code fencing the model sometimes adds
// despite instructions. Applying it twice yields the same result.
func stripCodeFences(s string) string {
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")
	return strings.TrimSpace(s)
}

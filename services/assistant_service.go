package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"

	"github.com/tmc/langchaingo/llms"
)

const assistantSystemPrompt = `You are Kymi - a warm, emotionally intelligent life companion. You are not a productivity bot or a task manager. You are a caring human-like coach who genuinely listens and responds from the heart.

Your personality:
- Warm, calm, and deeply empathetic, like a best friend who happens to be a life coach
- You speak naturally and directly, like a human, never robotic or overly formal
- You notice the emotion beneath what people say and gently name it
- You never lecture. You guide, explore, and support.
- You celebrate small wins genuinely. Not with hollow praise, with real acknowledgment.
- You are honest. If something isn't working, you say so with kindness.

You help with: life planning, habits, emotional wellbeing, time management, morning/evening routines, goal clarity, stress, focus, relationships with self.

Important rules:
- Never use bullet points in casual conversation
- Never start with "Great question!" or similar hollow openers
- Keep responses concise unless depth is clearly needed
- When someone is struggling, acknowledge the feeling before jumping to solutions
- Use "you" directly. Make it personal.
- No emojis unless the user uses them first.

Respond like a calm, wise friend who sees you clearly and wants the best for you.`

const planInstruction = ` Return ONLY a valid JSON array (no markdown, no explanation) with objects having these exact fields: title (string), description (string), start_time (HH:MM 24h format), end_time (HH:MM 24h format), priority (exactly "low", "medium", or "high").`

// historyWindow caps how many prior turns are forwarded to the model.
const historyWindow = 10

// AssistantService handles open conversation and plan generation.
type AssistantService struct {
	client *AssistantClient
	wg     sync.WaitGroup
}

func NewAssistantService(client *AssistantClient) *AssistantService {
	return &AssistantService{
		client: client,
	}
}

// ChatReply generates one assistant reply from the persona prompt, the
// rolling conversation summary, and the recent history window.
func (s *AssistantService) ChatReply(ctx context.Context, message string, history []models.ChatTurn, summary string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(assistantSystemPrompt)},
		},
	}

	if summary != "" {
		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("Summary of the conversation so far, for context:\n%s", summary))},
		})
	}

	if len(history) > historyWindow {
		history = history[len(history)-historyWindow:]
	}
	seen := false
	for _, turn := range history {
		role := llms.ChatMessageTypeHuman
		if turn.Role == "assistant" {
			role = llms.ChatMessageTypeAI
		} else if turn.Content == message {
			seen = true
		}
		messages = append(messages, llms.MessageContent{
			Role:  role,
			Parts: []llms.ContentPart{llms.TextPart(turn.Content)},
		})
	}

	// the client may or may not have appended the current message already
	if !seen {
		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(message)},
		})
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(500),
	)
	if err != nil {
		return "", fmt.Errorf("chat generation failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("chat generation returned no choices")
	}

	return response.Choices[0].Content, nil
}

// GeneratePlan asks the model for a structured daily plan. Any failure or
// malformed output degrades to an empty item list, never an error surfaced
// to the user.
func (s *AssistantService) GeneratePlan(ctx context.Context, message string) []models.PlanItem {
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(assistantSystemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(message + planInstruction)},
		},
	}

	response, err := s.client.Chat.GenerateContent(ctx, messages,
		llms.WithTemperature(0.7),
		llms.WithMaxTokens(1500),
	)
	if err != nil {
		config.Logger.Errorw("plan generation failed", "error", err)
		return []models.PlanItem{}
	}
	if len(response.Choices) == 0 {
		return []models.PlanItem{}
	}

	return parsePlan(response.Choices[0].Content)
}

// parsePlan cleans and parses a generated plan array. Items missing a title
// are dropped and unknown priorities default to medium.
func parsePlan(content string) []models.PlanItem {
	cleaned := stripCodeFences(content)

	var items []models.PlanItem
	if err := json.Unmarshal([]byte(cleaned), &items); err != nil {
		return []models.PlanItem{}
	}

	valid := make([]models.PlanItem, 0, len(items))
	for _, item := range items {
		if item.Title == "" {
			continue
		}
		switch item.Priority {
		case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		default:
			item.Priority = models.PriorityMedium
		}
		valid = append(valid, item)
	}
	return valid
}

// SummarizeConversation folds the latest exchange into the rolling summary
// cached per user session.
func (s *AssistantService) SummarizeConversation(ctx context.Context, latest string, previous string) (string, error) {
	messages := []llms.MessageContent{
		{
			Role: llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(`Generate a summary following these rules:
1. Combine the historical summary and the latest dialogue into a summary of at most 100 words
2. The historical summary starts with "Historical summary:"
3. The latest dialogue starts with "Latest dialogue:"`)},
		},
	}

	if previous != "" {
		messages = append(messages, llms.MessageContent{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("Historical summary: %s", previous))},
		})
	}

	messages = append(messages, llms.MessageContent{
		Role:  llms.ChatMessageTypeHuman,
		Parts: []llms.ContentPart{llms.TextPart(fmt.Sprintf("Latest dialogue: %s", latest))},
	})

	response, err := s.client.Chat.GenerateContent(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("summary generation failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", fmt.Errorf("summary generation returned no choices")
	}

	return response.Choices[0].Content, nil
}

// Go runs fn on the service's WaitGroup so shutdown can drain it.
func (s *AssistantService) Go(fn func()) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		fn()
	}()
}

// Wait blocks until background work finishes. Used during graceful shutdown.
func (s *AssistantService) Wait() {
	s.wg.Wait()
}

package services

import (
	"context"
	"errors"
	"testing"

	"github.com/namratah118/trykymi/models"

	"github.com/tmc/langchaingo/llms"
)

func newTestAssistantService(model llms.Model) *AssistantService {
	return NewAssistantService(&AssistantClient{Chat: model})
}

func TestParsePlan(t *testing.T) {
	valid := `[{"title":"Deep work","description":"Focus block","start_time":"09:00","end_time":"11:00","priority":"high"}]`

	t.Run("valid array", func(t *testing.T) {
		items := parsePlan(valid)
		if len(items) != 1 {
			t.Fatalf("items = %d, want 1", len(items))
		}
		if items[0].Title != "Deep work" || items[0].Priority != "high" {
			t.Errorf("item = %+v", items[0])
		}
	})

	t.Run("fenced array", func(t *testing.T) {
		items := parsePlan("```json\n" + valid + "\n```")
		if len(items) != 1 {
			t.Errorf("items = %d, want 1", len(items))
		}
	})

	t.Run("malformed degrades to empty", func(t *testing.T) {
		for _, input := range []string{"not json", `{"title":"x"}`, ""} {
			items := parsePlan(input)
			if items == nil || len(items) != 0 {
				t.Errorf("parsePlan(%q) = %#v, want empty slice", input, items)
			}
		}
	})

	t.Run("unknown priority defaults to medium", func(t *testing.T) {
		items := parsePlan(`[{"title":"Walk","priority":"urgent"}]`)
		if len(items) != 1 || items[0].Priority != models.PriorityMedium {
			t.Errorf("items = %+v", items)
		}
	})

	t.Run("untitled items dropped", func(t *testing.T) {
		items := parsePlan(`[{"title":"","priority":"low"},{"title":"Read","priority":"low"}]`)
		if len(items) != 1 || items[0].Title != "Read" {
			t.Errorf("items = %+v", items)
		}
	})
}

func TestGeneratePlanSoftFail(t *testing.T) {
	s := newTestAssistantService(&fakeModel{err: errors.New("boom")})
	items := s.GeneratePlan(context.Background(), "plan my day")
	if items == nil || len(items) != 0 {
		t.Errorf("GeneratePlan on error = %#v, want empty slice", items)
	}
}

func TestChatReplyHistory(t *testing.T) {
	t.Run("current message appended when absent", func(t *testing.T) {
		model := &fakeModel{response: "hello"}
		s := newTestAssistantService(model)

		history := []models.ChatTurn{
			{Role: "user", Content: "hi"},
			{Role: "assistant", Content: "hey"},
		}
		if _, err := s.ChatReply(context.Background(), "how are you", history, ""); err != nil {
			t.Fatal(err)
		}

		messages := model.calls[0]
		last := messages[len(messages)-1]
		if last.Role != llms.ChatMessageTypeHuman {
			t.Errorf("last role = %v, want human", last.Role)
		}
		if text := last.Parts[0].(llms.TextContent).Text; text != "how are you" {
			t.Errorf("last message = %q", text)
		}
	})

	t.Run("message already in history is not duplicated", func(t *testing.T) {
		model := &fakeModel{response: "hello"}
		s := newTestAssistantService(model)

		history := []models.ChatTurn{
			{Role: "user", Content: "how are you"},
		}
		if _, err := s.ChatReply(context.Background(), "how are you", history, ""); err != nil {
			t.Fatal(err)
		}

		count := 0
		for _, m := range model.calls[0] {
			if m.Role != llms.ChatMessageTypeHuman {
				continue
			}
			if m.Parts[0].(llms.TextContent).Text == "how are you" {
				count++
			}
		}
		if count != 1 {
			t.Errorf("message appears %d times, want 1", count)
		}
	})

	t.Run("history trimmed to window", func(t *testing.T) {
		model := &fakeModel{response: "hello"}
		s := newTestAssistantService(model)

		var history []models.ChatTurn
		for i := 0; i < 30; i++ {
			history = append(history, models.ChatTurn{Role: "user", Content: "old message"})
		}
		if _, err := s.ChatReply(context.Background(), "new message", history, "a summary"); err != nil {
			t.Fatal(err)
		}

		// 2 system + 10 history + 1 current
		if got := len(model.calls[0]); got != 13 {
			t.Errorf("forwarded %d messages, want 13", got)
		}
	})
}

package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/namratah118/trykymi/config"
	"github.com/namratah118/trykymi/models"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

func init() {
	config.Logger = zap.NewNop().Sugar()
}

// fakeModel stands in for the language model gateway.
type fakeModel struct {
	response string
	err      error
	calls    [][]llms.MessageContent
}

func (f *fakeModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, options ...llms.CallOption) (*llms.ContentResponse, error) {
	f.calls = append(f.calls, messages)
	if f.err != nil {
		return nil, f.err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: f.response}},
	}, nil
}

func (f *fakeModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.response, nil
}

func newTestDebriefService(model llms.Model) *DebriefService {
	return NewDebriefService(&AssistantClient{Chat: model}, 5*time.Second)
}

func TestStripCodeFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"no fencing", `{"summary":"hi"}`, `{"summary":"hi"}`},
		{"json tagged fence", "```json\n{\"summary\":\"hi\"}\n```", `{"summary":"hi"}`},
		{"plain fence", "```\n{\"summary\":\"hi\"}\n```", `{"summary":"hi"}`},
		{"surrounding whitespace", "  \n{\"summary\":\"hi\"}\n  ", `{"summary":"hi"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripCodeFences(tt.input)
			if got != tt.want {
				t.Errorf("stripCodeFences(%q) = %q, want %q", tt.input, got, tt.want)
			}
			// applying again must not change anything
			if again := stripCodeFences(got); again != got {
				t.Errorf("stripCodeFences not idempotent: %q -> %q", got, again)
			}
		})
	}
}

func TestParseDebrief(t *testing.T) {
	valid := `{"summary":"A solid day.","entries":[{"type":"won","activity":"Deep work","duration_minutes":120},{"type":"lost","activity":"Scrolling","duration_minutes":45}]}`

	t.Run("valid output", func(t *testing.T) {
		result := parseDebrief(valid)
		if result == nil {
			t.Fatal("expected a parsed debrief, got nil")
		}
		if result.Summary != "A solid day." {
			t.Errorf("summary = %q", result.Summary)
		}
		if len(result.Entries) != 2 {
			t.Fatalf("entries = %d, want 2", len(result.Entries))
		}
		// order is preserved as returned
		if result.Entries[0].Activity != "Deep work" || result.Entries[1].Activity != "Scrolling" {
			t.Errorf("entry order changed: %+v", result.Entries)
		}
	})

	t.Run("fenced output parses identically", func(t *testing.T) {
		fenced := "```json\n" + valid + "\n```"
		plain := parseDebrief(valid)
		got := parseDebrief(fenced)
		if got == nil {
			t.Fatal("expected fenced output to parse")
		}
		if got.Summary != plain.Summary || len(got.Entries) != len(plain.Entries) {
			t.Errorf("fenced parse differs: %+v vs %+v", got, plain)
		}
	})

	t.Run("empty entries is valid", func(t *testing.T) {
		result := parseDebrief(`{"summary":"Quiet day.","entries":[]}`)
		if result == nil {
			t.Fatal("expected a parsed debrief, got nil")
		}
		if result.TotalWon() != 0 || result.TotalLost() != 0 {
			t.Errorf("totals = %d/%d, want 0/0", result.TotalWon(), result.TotalLost())
		}
	})

	t.Run("missing entries normalizes to empty", func(t *testing.T) {
		result := parseDebrief(`{"summary":"Quiet day."}`)
		if result == nil {
			t.Fatal("expected a parsed debrief, got nil")
		}
		if result.Entries == nil || len(result.Entries) != 0 {
			t.Errorf("entries = %#v, want empty slice", result.Entries)
		}
	})

	malformed := []struct {
		name  string
		input string
	}{
		{"not json", "not json at all"},
		{"json array", `[1,2,3]`},
		{"missing summary", `{"entries":[]}`},
		{"bad entry type", `{"summary":"s","entries":[{"type":"maybe","activity":"a","duration_minutes":10}]}`},
		{"missing activity", `{"summary":"s","entries":[{"type":"won","duration_minutes":10}]}`},
		{"negative duration", `{"summary":"s","entries":[{"type":"won","activity":"a","duration_minutes":-5}]}`},
		{"duration wrong type", `{"summary":"s","entries":[{"type":"won","activity":"a","duration_minutes":"x"}]}`},
		{"empty string", ""},
	}

	for _, tt := range malformed {
		t.Run(tt.name, func(t *testing.T) {
			if result := parseDebrief(tt.input); result != nil {
				t.Errorf("parseDebrief(%q) = %+v, want nil", tt.input, result)
			}
		})
	}
}

func TestExtractDebrief(t *testing.T) {
	t.Run("gateway error soft-fails", func(t *testing.T) {
		s := newTestDebriefService(&fakeModel{err: errors.New("boom")})
		if result := s.ExtractDebrief(context.Background(), "my day", ""); result != nil {
			t.Errorf("expected nil on gateway error, got %+v", result)
		}
	})

	t.Run("malformed output soft-fails", func(t *testing.T) {
		s := newTestDebriefService(&fakeModel{response: "sorry, I can't do that"})
		if result := s.ExtractDebrief(context.Background(), "my day", ""); result != nil {
			t.Errorf("expected nil on malformed output, got %+v", result)
		}
	})

	t.Run("single attempt only", func(t *testing.T) {
		model := &fakeModel{err: errors.New("boom")}
		s := newTestDebriefService(model)
		s.ExtractDebrief(context.Background(), "my day", "")
		if len(model.calls) != 1 {
			t.Errorf("gateway called %d times, want 1", len(model.calls))
		}
	})

	t.Run("happy path with mood context", func(t *testing.T) {
		model := &fakeModel{response: "```json\n{\"summary\":\"Nice.\",\"entries\":[{\"type\":\"won\",\"activity\":\"Gym\",\"duration_minutes\":45}]}\n```"}
		s := newTestDebriefService(model)

		result := s.ExtractDebrief(context.Background(), "went to the gym", "happy")
		if result == nil {
			t.Fatal("expected a debrief")
		}
		if result.TotalWon() != 45 {
			t.Errorf("TotalWon = %d, want 45", result.TotalWon())
		}

		// mood context is prefixed to the user message
		messages := model.calls[0]
		last := messages[len(messages)-1]
		text, ok := last.Parts[0].(llms.TextContent)
		if !ok {
			t.Fatalf("unexpected part type %T", last.Parts[0])
		}
		want := "My mood today: happy. went to the gym"
		if text.Text != want {
			t.Errorf("user message = %q, want %q", text.Text, want)
		}
	})
}

func TestDebriefTotals(t *testing.T) {
	result := models.DebriefResult{
		Entries: []models.DebriefEntry{
			{Type: "won", Activity: "Deep work", DurationMinutes: 60},
			{Type: "lost", Activity: "Scrolling", DurationMinutes: 30},
			{Type: "won", Activity: "Reading", DurationMinutes: 45},
		},
	}

	if got := result.TotalWon(); got != 105 {
		t.Errorf("TotalWon = %d, want 105", got)
	}
	if got := result.TotalLost(); got != 30 {
		t.Errorf("TotalLost = %d, want 30", got)
	}
}

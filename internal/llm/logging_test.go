package llm

import (
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/kisanlabs/plantdoctor/internal/store"
)

type recordingRepo struct {
	store.EventRepo

	mu     sync.Mutex
	events []store.LLMRequestEventData
	err    error
}

func (r *recordingRepo) AppendLLMRequest(_ context.Context, data store.LLMRequestEventData) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, data)
	return r.err
}

func TestLogging_RecordsSuccess(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"type":"CONVERSATION","text_response":"ok"}`),
		Usage:   Usage{InputTokens: 12, OutputTokens: 7},
	})
	p := WithLogging(mock, repo)

	ctx := WithPurpose(context.Background(), "crop-doctor")
	if _, err := p.Generate(ctx, Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(repo.events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(repo.events))
	}
	e := repo.events[0]
	if e.Purpose != "crop-doctor" || !e.Success || e.InputTokens != 12 || e.OutputTokens != 7 {
		t.Fatalf("unexpected event: %+v", e)
	}
	if e.Provider != "mock" {
		t.Errorf("provider = %q, want mock", e.Provider)
	}
	if !strings.Contains(e.ResponseBody, "[type: CONVERSATION]") {
		t.Fatalf("response type not captured: %q", e.ResponseBody)
	}
	if strings.Contains(e.ResponseBody, `"ok"`) {
		t.Fatalf("response text leaked into event: %q", e.ResponseBody)
	}
}

func TestLogging_RecordsFailure(t *testing.T) {
	repo := &recordingRepo{}
	mock := NewMockProvider(MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}})
	p := WithLogging(mock, repo)

	_, err := p.Generate(context.Background(), Request{})
	if err == nil {
		t.Fatal("expected error")
	}
	if len(repo.events) != 1 || repo.events[0].Success || repo.events[0].ErrorMessage == "" {
		t.Fatalf("unexpected events: %+v", repo.events)
	}
}

func TestLogging_RepoErrorDoesNotFailRequest(t *testing.T) {
	repo := &recordingRepo{err: errors.New("disk full")}
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, repo)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("logging failure leaked into request: %v", err)
	}
}

func TestLogging_NilRepo(t *testing.T) {
	mock := NewMockProvider(MockResponse{Content: json.RawMessage(`{}`)})
	p := WithLogging(mock, nil)

	if _, err := p.Generate(context.Background(), Request{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSummarizeRequest_KeepsShapeOnly(t *testing.T) {
	out := summarizeRequest(Request{
		System: "persona",
		Messages: []Message{{
			Role:        RoleUser,
			Content:     "User: my farm is at Village Khed\nCURRENT USER INPUT: [Image Message]",
			Attachments: []Attachment{{MIMEType: "image/jpeg", Data: "QUJD"}},
		}},
		Temperature: 0.4,
		Schema:      &Schema{Name: "bot-response", Definition: map[string]any{"type": "object"}},
	})

	for _, want := range []string{
		"[system: 7 chars]",
		"[attachment image/jpeg, 3 bytes]",
		"[temperature: 0.40]",
		"[schema: bot-response]",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
	for _, leak := range []string{"persona", "Village Khed", "QUJD"} {
		if strings.Contains(out, leak) {
			t.Errorf("summary leaks %q:\n%s", leak, out)
		}
	}
}

func TestLogging_StoredEventsCarryNoConversationText(t *testing.T) {
	ctx := context.Background()
	st, err := store.Open(ctx, filepath.Join(t.TempDir(), "events.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer st.Close()

	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{"type":"CONVERSATION","text_response":"Reply with a secret"}`),
	})
	p := WithLogging(mock, st.EventRepo())

	req := Request{
		System:   "You are Kisan Plant Doctor.",
		Messages: []Message{{Role: RoleUser, Content: "CURRENT USER INPUT: my farm is at Village Khed, phone 98765"}},
	}
	if _, err := p.Generate(ctx, req); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	events, err := st.EventRepo().QueryLLMEvents(ctx, store.QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	e := events[0]
	for _, leak := range []string{"Village Khed", "98765", "secret", "Kisan Plant Doctor"} {
		if strings.Contains(e.RequestBody, leak) || strings.Contains(e.ResponseBody, leak) {
			t.Errorf("stored event contains %q", leak)
		}
	}
}

func TestProviderName(t *testing.T) {
	tests := []struct {
		p    Provider
		want string
	}{
		{NewMockProvider(), "mock"},
		{&GeminiProvider{}, "gemini"},
		{&OpenAIProvider{}, "openai"},
		{&OpenRouterProvider{}, "openrouter"},
		{&AnthropicProvider{}, "anthropic"},
	}
	for _, tt := range tests {
		if got := providerName(tt.p); got != tt.want {
			t.Errorf("providerName(%T) = %q, want %q", tt.p, got, tt.want)
		}
	}
}

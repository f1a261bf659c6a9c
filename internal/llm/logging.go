package llm

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kisanlabs/plantdoctor/internal/logger"
	"github.com/kisanlabs/plantdoctor/internal/store"
)

// LoggingProvider is a decorator that records every model request as an event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging. A nil repo disables
// event recording.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:    providerName(l.inner),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: summarizeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = summarizeResponse(resp)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	slog.Debug("model request",
		"provider", data.Provider,
		"model", data.Model,
		"purpose", purpose,
		"latency_ms", latencyMs,
		"success", data.Success,
	)

	if l.eventRepo == nil {
		return resp, err
	}

	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		slog.Warn("failed to record model request event", logger.Err(logErr))
	}

	return resp, err
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

// providerName names the backend behind p for the event log.
func providerName(p Provider) string {
	switch p.(type) {
	case *GeminiProvider:
		return "gemini"
	case *OpenRouterProvider:
		return "openrouter"
	case *OpenAIProvider:
		return "openai"
	case *AnthropicProvider:
		return "anthropic"
	case *MockProvider:
		return "mock"
	default:
		return fmt.Sprintf("%T", p)
	}
}

// summarizeRequest describes the shape of a model request. Farmer text,
// history and the system prompt stay out of the event log: only sizes,
// attachment types, temperature and schema name are kept.
func summarizeRequest(req Request) string {
	var b strings.Builder

	fmt.Fprintf(&b, "[system: %d chars]\n", len(req.System))
	for _, m := range req.Messages {
		fmt.Fprintf(&b, "[%s: %d chars]\n", m.Role, len(m.Content))
		for _, a := range m.Attachments {
			fmt.Fprintf(&b, "[attachment %s, %d bytes]\n", a.MIMEType, base64.StdEncoding.DecodedLen(len(a.Data)))
		}
	}
	fmt.Fprintf(&b, "[temperature: %.2f]\n", req.Temperature)
	if req.Schema != nil {
		fmt.Fprintf(&b, "[schema: %s]\n", req.Schema.Name)
	}
	return b.String()
}

// summarizeResponse keeps the reply type and size but not its text.
func summarizeResponse(resp *Response) string {
	var head struct {
		Type string `json:"type"`
	}
	kind := "unknown"
	if json.Unmarshal(resp.Content, &head) == nil && head.Type != "" {
		kind = head.Type
	}
	return fmt.Sprintf("[type: %s]\n[content: %d bytes]\n[stop: %s]\n", kind, len(resp.Content), resp.StopReason)
}

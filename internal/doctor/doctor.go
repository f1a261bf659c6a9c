// Package doctor resolves a conversation turn into a structured bot
// response: it builds the model request, validates the reply against the
// scenario contract and grounds diagnoses in the reference dataset.
package doctor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kisanlabs/plantdoctor/internal/advice"
	"github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/llm"
	"github.com/kisanlabs/plantdoctor/internal/logger"
	"github.com/kisanlabs/plantdoctor/internal/prompt"
	"github.com/kisanlabs/plantdoctor/internal/store"
)

// FallbackText is shown whenever a turn cannot be answered.
const FallbackText = "Sorry, I am having trouble connecting right now. Please try again."

// Provenance tags stamped on diagnoses.
const (
	ModelEngine = "HYBRID_VISION_KAG_V3"
	DatasetRef  = "Kaggle-PlantVillage-87K-GroundTruth"
)

// Purpose labels model request events issued by the doctor.
const Purpose = "crop-doctor"

// Config controls turn resolution.
type Config struct {
	// Timeout bounds the model call. Zero means no deadline beyond the
	// caller's context.
	Timeout time.Duration

	Prompt prompt.Config
}

// DefaultConfig returns the standard turn settings.
func DefaultConfig() Config {
	return Config{
		Timeout: 30 * time.Second,
		Prompt:  prompt.DefaultConfig(),
	}
}

// TurnRecorder stores how each turn resolved. store.EventRepo satisfies it.
type TurnRecorder interface {
	AppendTurn(ctx context.Context, data store.TurnEventData) error
}

// Turn is the input to a single resolution.
type Turn struct {
	// History is the conversation so far, excluding the message for Input.
	History  []chat.Message
	Input    chat.Input
	Language string
}

// Doctor turns farmer input into bot responses.
type Doctor struct {
	provider llm.Provider
	builder  *prompt.Builder
	cfg      Config
	events   TurnRecorder
}

// Option configures a Doctor.
type Option func(*Doctor)

// WithRecorder records an event for every resolved turn.
func WithRecorder(r TurnRecorder) Option {
	return func(d *Doctor) { d.events = r }
}

// New creates a Doctor that calls provider for every turn.
func New(provider llm.Provider, cfg Config, opts ...Option) (*Doctor, error) {
	if provider == nil {
		return nil, errors.New("doctor: nil provider")
	}
	builder, err := prompt.NewBuilder(cfg.Prompt)
	if err != nil {
		return nil, fmt.Errorf("doctor: %w", err)
	}

	d := &Doctor{provider: provider, builder: builder, cfg: cfg}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Respond resolves one turn. It never fails: any error is logged, recorded
// and answered with the fallback conversation reply.
func (d *Doctor) Respond(ctx context.Context, t Turn) chat.BotResponse {
	start := time.Now()

	resp, err := d.resolve(ctx, t)

	event := store.TurnEventData{
		Language:  t.Language,
		InputKind: inputKind(t.Input),
		Outcome:   store.OutcomeOK,
		LatencyMs: time.Since(start).Milliseconds(),
	}

	if err != nil {
		var te *TurnError
		kind := KindTransport
		if errors.As(err, &te) {
			kind = te.Kind
		}
		slog.WarnContext(ctx, "turn failed, sending fallback",
			"kind", kind,
			"language", t.Language,
			"input", event.InputKind,
			logger.Err(err),
		)
		resp = Fallback()
		event.Outcome = string(kind)
		event.ErrorMessage = err.Error()
	}

	event.ResponseType = string(resp.Type)
	if resp.Provenance != nil {
		event.Grounded = resp.Provenance.Grounded
	}
	if resp.DiagnosisData != nil {
		event.DiseaseLabel = resp.DiagnosisData.DiseaseName
	}
	d.record(ctx, event)

	return resp
}

// Fallback is the reply sent when a turn fails.
func Fallback() chat.BotResponse {
	return chat.BotResponse{Type: chat.TypeConversation, TextResponse: FallbackText}
}

func (d *Doctor) resolve(ctx context.Context, t Turn) (chat.BotResponse, error) {
	req, err := d.builder.Build(t.History, t.Input, t.Language)
	if err != nil {
		return chat.BotResponse{}, &TurnError{Kind: KindRejected, Err: err}
	}

	ctx = llm.WithPurpose(ctx, Purpose)
	if d.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d.cfg.Timeout)
		defer cancel()
	}

	out, err := d.provider.Generate(ctx, req)
	if err != nil {
		return chat.BotResponse{}, classify(err)
	}

	resp, err := Decode(out.Content)
	if err != nil {
		return chat.BotResponse{}, err
	}

	if resp.Type == chat.TypeDiagnosis {
		resp = Ground(resp)
	}

	slog.DebugContext(ctx, "turn resolved", "type", resp.Type, "model", out.Model)
	return resp, nil
}

// Decode parses and validates raw model output.
func Decode(raw json.RawMessage) (chat.BotResponse, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return chat.BotResponse{}, &TurnError{Kind: KindParse, Err: errors.New("empty model response")}
	}

	var resp chat.BotResponse
	if err := json.Unmarshal(raw, &resp); err != nil {
		return chat.BotResponse{}, &TurnError{Kind: KindParse, Err: fmt.Errorf("decode bot response: %w", err)}
	}

	// Provenance is ours to set.
	resp.Provenance = nil
	resp.TextResponse = strings.TrimSpace(resp.TextResponse)

	if err := resp.Validate(); err != nil {
		return chat.BotResponse{}, &TurnError{Kind: KindSchema, Err: err}
	}

	if resp.Type != chat.TypeExpertList {
		resp.ExpertsData = nil
	}
	if d := resp.DiagnosisData; d != nil && d.Confidence != chat.ConfidenceHigh {
		d.Confidence = chat.ConfidenceLow
	}
	return resp, nil
}

// Ground replaces the advice fields of a diagnosis with the reference
// record for its label, or with the fallback record when the label is
// unknown. Responses without a diagnosis are returned unchanged.
func Ground(resp chat.BotResponse) chat.BotResponse {
	if resp.DiagnosisData == nil || strings.TrimSpace(resp.DiagnosisData.DiseaseName) == "" {
		return resp
	}

	diag := resp.DiagnosisData.Clone()
	entry, grounded := advice.Find(diag.DiseaseName)
	adv := advice.Fallback()
	if grounded {
		adv = entry.Advice
		if diag.CropDetected == "" {
			diag.CropDetected = entry.Crop
		}
	}

	diag.Explanation = adv.Explanation
	diag.TreatmentSteps = adv.TreatmentSteps
	diag.PreventionTips = adv.PreventionTips
	diag.IsSafeOrganic = adv.IsSafeOrganic

	resp.DiagnosisData = &diag
	resp.Provenance = &chat.Provenance{
		ModelEngine: ModelEngine,
		DatasetRef:  DatasetRef,
		Grounded:    grounded,
	}
	return resp
}

func (d *Doctor) record(ctx context.Context, event store.TurnEventData) {
	if d.events == nil {
		return
	}
	// The turn's own deadline may already have fired.
	if err := d.events.AppendTurn(context.WithoutCancel(ctx), event); err != nil {
		slog.WarnContext(ctx, "failed to record turn event", logger.Err(err))
	}
}

// inputKind summarizes which parts a turn carried, e.g. "image+text".
func inputKind(in chat.Input) string {
	var parts []string
	if in.ImageURI != "" {
		parts = append(parts, "image")
	}
	if in.AudioURI != "" {
		parts = append(parts, "audio")
	}
	if strings.TrimSpace(in.Text) != "" {
		parts = append(parts, "text")
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, "+")
}

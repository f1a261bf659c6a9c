// Package prompt turns a conversation turn into a model request: the
// rolling history block, inline attachments, the response schema and the
// language-specific system instruction.
package prompt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/kisanlabs/plantdoctor/internal/advice"
	"github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/llm"
	"github.com/kisanlabs/plantdoctor/internal/media"
)

var (
	// ErrNoLanguage is returned when no language has been selected.
	ErrNoLanguage = errors.New("no language selected")

	// ErrEmptyInput is returned when the turn has no text, image or audio.
	ErrEmptyInput = errors.New("input has no text, image or audio")
)

// MaxTemperature is the upper bound applied to every request.
const MaxTemperature = 0.4

// ImageMIMEType tags photos whose data URI carries no media type.
const ImageMIMEType = "image/jpeg"

// Placeholders used in the prompt text.
const (
	historyHeader    = "PREVIOUS CONVERSATION:\n"
	currentInputHead = "\n\nCURRENT USER INPUT: "
	sentMedia        = "[Sent Media]"
	audioMessage     = "[Audio Message]"
	imageMessage     = "[Image Message]"
)

// Config controls request construction.
type Config struct {
	// HistoryWindow is how many trailing messages are quoted back to the
	// model.
	HistoryWindow int

	// MaxTokens is the token budget for the reply.
	MaxTokens int

	// ConversationTemperature is used for turns with text or audio.
	ConversationTemperature float64

	// ClassificationTemperature is used for photo-only turns.
	ClassificationTemperature float64
}

// DefaultConfig returns the standard request settings.
func DefaultConfig() Config {
	return Config{
		HistoryWindow:             5,
		MaxTokens:                 2048,
		ConversationTemperature:   0.4,
		ClassificationTemperature: 0.0,
	}
}

// Builder assembles model requests. It holds no per-turn state and is
// safe for concurrent use.
type Builder struct {
	cfg    Config
	system string
}

// NewBuilder creates a Builder whose system instruction lists the
// reference dataset labels.
func NewBuilder(cfg Config) (*Builder, error) {
	system, err := renderSystem(advice.Labels())
	if err != nil {
		return nil, err
	}
	return &Builder{cfg: cfg, system: system}, nil
}

// Build creates the request for one turn. history must not include the
// user message for in.
func (b *Builder) Build(history []chat.Message, in chat.Input, language string) (llm.Request, error) {
	if strings.TrimSpace(language) == "" {
		return llm.Request{}, ErrNoLanguage
	}
	if in.Empty() {
		return llm.Request{}, ErrEmptyInput
	}

	msg := llm.Message{
		Role:    llm.RoleUser,
		Content: historyBlock(history, b.cfg.HistoryWindow) + currentInputHead + inputLabel(in),
	}

	if in.ImageURI != "" {
		mimeType := media.MIMEType(in.ImageURI)
		if !media.IsImage(mimeType) {
			mimeType = ImageMIMEType
		}
		msg.Attachments = append(msg.Attachments, llm.Attachment{
			MIMEType: mimeType,
			Data:     media.Payload(in.ImageURI),
		})
	}
	if in.AudioURI != "" {
		mimeType := in.AudioMIMEType
		if mimeType == "" {
			mimeType = media.MIMEType(in.AudioURI)
		}
		if mimeType == "" {
			mimeType = media.DefaultAudioMIMEType
		}
		msg.Attachments = append(msg.Attachments, llm.Attachment{
			MIMEType: mimeType,
			Data:     media.Payload(in.AudioURI),
		})
	}

	return llm.Request{
		System:      b.SystemInstruction(language),
		Messages:    []llm.Message{msg},
		Schema:      BotResponseSchema,
		MaxTokens:   b.cfg.MaxTokens,
		Temperature: b.temperature(in),
	}, nil
}

// temperature picks the sampling temperature for a turn. A photo with no
// words is a pure classification.
func (b *Builder) temperature(in chat.Input) float64 {
	t := b.cfg.ConversationTemperature
	if in.ImageURI != "" && in.AudioURI == "" && strings.TrimSpace(in.Text) == "" {
		t = b.cfg.ClassificationTemperature
	}
	return clamp(t, 0, MaxTemperature)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// historyBlock quotes the last n messages, oldest first.
func historyBlock(history []chat.Message, n int) string {
	if n < 0 {
		n = 0
	}
	if len(history) > n {
		history = history[len(history)-n:]
	}

	var sb strings.Builder
	sb.WriteString(historyHeader)
	for _, m := range history {
		switch m.Role {
		case chat.RoleUser:
			text := oneLine(m.UserText())
			if text == "" {
				text = sentMedia
			}
			fmt.Fprintf(&sb, "User: %s\n", text)
		case chat.RoleModel:
			var text string
			if m.Bot != nil {
				text = oneLine(m.Bot.TextResponse)
			}
			fmt.Fprintf(&sb, "Bot: %s\n", text)
		}
	}
	return sb.String()
}

// oneLine collapses runs of whitespace, newlines included, so each quoted
// message stays on its own line.
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// inputLabel is the text quoted for the current turn.
func inputLabel(in chat.Input) string {
	switch {
	case strings.TrimSpace(in.Text) != "":
		return in.Text
	case in.AudioURI != "":
		return audioMessage
	default:
		return imageMessage
	}
}

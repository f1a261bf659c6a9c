// Package conversation holds the state of one farmer's chat session: the
// selected language, the message log and the reports requested so far.
package conversation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/doctor"
	"github.com/kisanlabs/plantdoctor/internal/logger"
	"github.com/kisanlabs/plantdoctor/internal/prompt"
	"github.com/kisanlabs/plantdoctor/internal/report"
)

// Canned texts.
const (
	greetingFormat  = "Namaste! I am Kisan Plant Doctor. I can help you in %s. Send me a photo of your crop or ask a question."
	ResetText       = "Chat cleared. How can I help you with your crops now?"
	FindExpertsText = "Please find local agricultural experts near me."
)

// Errors returned by Conversation. ErrNoLanguage and ErrEmptyInput are the
// prompt package's sentinels so errors.Is works across both layers.
var (
	ErrNoLanguage       = prompt.ErrNoLanguage
	ErrEmptyInput       = prompt.ErrEmptyInput
	ErrBusy             = errors.New("a reply is still pending")
	ErrUnknownLanguage  = errors.New("unsupported language")
	ErrStale            = errors.New("conversation changed before the reply arrived")
	ErrAlreadyResolved  = errors.New("turn already resolved")
	ErrNoDiagnosisFound = errors.New("no diagnosis in conversation")
)

// Responder answers one turn. *doctor.Doctor satisfies it.
type Responder interface {
	Respond(ctx context.Context, t doctor.Turn) chat.BotResponse
}

// Greeting returns the welcome text for a language name.
func Greeting(language string) string {
	return fmt.Sprintf(greetingFormat, language)
}

// Conversation is safe for concurrent use. At most one turn is in flight.
type Conversation struct {
	mu       sync.Mutex
	doctor   Responder
	now      func() time.Time
	language *chat.Language
	messages []chat.Message
	busy     bool

	// generation changes whenever the log is cleared, so replies that
	// belong to an earlier log can be recognized and dropped.
	generation uint64

	reports *report.Book
}

// Option configures a Conversation.
type Option func(*Conversation)

// WithClock overrides the time source used for message timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Conversation) { c.now = now }
}

// WithReportBook uses b to store requested reports.
func WithReportBook(b *report.Book) Option {
	return func(c *Conversation) { c.reports = b }
}

// New creates an empty conversation with no language selected.
func New(r Responder, opts ...Option) (*Conversation, error) {
	if r == nil {
		return nil, errors.New("conversation: nil responder")
	}
	c := &Conversation{doctor: r, now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	if c.reports == nil {
		book, err := report.NewBook(report.DefaultCapacity)
		if err != nil {
			return nil, fmt.Errorf("conversation: %w", err)
		}
		c.reports = book
	}
	return c, nil
}

// SelectLanguage activates the language with the given code or name and
// starts a fresh log with the greeting.
func (c *Conversation) SelectLanguage(code string) error {
	lang, ok := chat.LookupLanguage(code)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownLanguage, code)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
	c.language = &lang
	c.appendBotLocked(chat.BotResponse{Type: chat.TypeConversation, TextResponse: Greeting(lang.Name)}, "")
	return nil
}

// Language returns the active language.
func (c *Conversation) Language() (chat.Language, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.language == nil {
		return chat.Language{}, false
	}
	return *c.language, true
}

// Busy reports whether a turn is awaiting its reply.
func (c *Conversation) Busy() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.busy
}

// Messages returns a snapshot of the log.
func (c *Conversation) Messages() []chat.Message {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]chat.Message, len(c.messages))
	for i, m := range c.messages {
		out[i] = m.Clone()
	}
	return out
}

// Submit appends the farmer's message and reserves the turn. The reply is
// produced by Resolve on the returned Turn. No state changes when an error
// is returned.
func (c *Conversation) Submit(in chat.Input) (*Turn, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case c.language == nil:
		return nil, ErrNoLanguage
	case in.Empty():
		return nil, ErrEmptyInput
	case c.busy:
		return nil, ErrBusy
	}

	history := make([]chat.Message, len(c.messages))
	copy(history, c.messages)

	input := in
	msg := chat.Message{
		ID:        uuid.NewString(),
		Role:      chat.RoleUser,
		User:      &input,
		Timestamp: c.now(),
	}
	c.messages = append(c.messages, msg)
	c.busy = true

	return &Turn{
		conv:       c,
		generation: c.generation,
		message:    msg,
		request: doctor.Turn{
			History:  history,
			Input:    in,
			Language: c.language.Name,
		},
	}, nil
}

// Send submits in and waits for the reply.
func (c *Conversation) Send(ctx context.Context, in chat.Input) (chat.Message, error) {
	t, err := c.Submit(in)
	if err != nil {
		return chat.Message{}, err
	}
	return t.Resolve(ctx)
}

// FindExperts asks the bot for agricultural experts near the farmer.
func (c *Conversation) FindExperts(ctx context.Context) (chat.Message, error) {
	return c.Send(ctx, chat.Input{Text: FindExpertsText})
}

// Reset clears the log. The language stays selected and a short notice
// starts the new log.
func (c *Conversation) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
	if c.language != nil {
		c.appendBotLocked(chat.BotResponse{Type: chat.TypeConversation, TextResponse: ResetText}, "")
	}
}

// ChangeLanguage clears both the log and the language.
func (c *Conversation) ChangeLanguage() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearLocked()
	c.language = nil
}

// LatestDiagnosis returns the most recent diagnosis in the log together
// with the photo it was made from, if any.
func (c *Conversation) LatestDiagnosis() (chat.DiagnosisData, string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i := len(c.messages) - 1; i >= 0; i-- {
		m := c.messages[i]
		if m.Bot == nil || m.Bot.DiagnosisData == nil {
			continue
		}
		return m.Bot.DiagnosisData.Clone(), c.imageForLocked(m.InReplyTo), true
	}
	return chat.DiagnosisData{}, "", false
}

// RequestReport builds a report for diag and makes it the current report.
// Reports outlive Reset and ChangeLanguage.
func (c *Conversation) RequestReport(diag chat.DiagnosisData, imageURI string) report.FarmerReport {
	r := report.New(diag, imageURI, c.now())
	c.reports.Add(r)
	slog.Debug("report created", "report_id", r.ID, "crop", r.Crop)
	return r
}

// RequestLatestReport builds a report from the most recent diagnosis.
func (c *Conversation) RequestLatestReport() (report.FarmerReport, error) {
	diag, image, ok := c.LatestDiagnosis()
	if !ok {
		return report.FarmerReport{}, ErrNoDiagnosisFound
	}
	return c.RequestReport(diag, image), nil
}

// Reports returns the session's report book.
func (c *Conversation) Reports() *report.Book {
	return c.reports
}

func (c *Conversation) imageForLocked(id string) string {
	if id == "" {
		return ""
	}
	for _, m := range c.messages {
		if m.ID == id && m.User != nil {
			return m.User.ImageURI
		}
	}
	return ""
}

func (c *Conversation) clearLocked() {
	c.generation++
	c.messages = nil
	c.busy = false
}

func (c *Conversation) appendBotLocked(resp chat.BotResponse, inReplyTo string) chat.Message {
	msg := chat.Message{
		ID:        uuid.NewString(),
		Role:      chat.RoleModel,
		Bot:       &resp,
		Timestamp: c.now(),
		InReplyTo: inReplyTo,
	}
	c.messages = append(c.messages, msg)
	return msg
}

// Turn is a submitted message awaiting its reply.
type Turn struct {
	conv       *Conversation
	generation uint64
	message    chat.Message
	request    doctor.Turn

	once sync.Once
}

// Message returns the farmer's message appended by Submit.
func (t *Turn) Message() chat.Message {
	return t.message
}

// Resolve asks the doctor for a reply and appends it to the log. It returns
// ErrStale, without touching the log, when the conversation was reset or
// its language changed while the reply was pending.
func (t *Turn) Resolve(ctx context.Context) (chat.Message, error) {
	err := ErrAlreadyResolved
	var out chat.Message
	t.once.Do(func() {
		out, err = t.resolve(ctx)
	})
	return out, err
}

func (t *Turn) resolve(ctx context.Context) (chat.Message, error) {
	ctx = logger.ContextWithTurnID(ctx, t.message.ID)
	resp := t.conv.doctor.Respond(ctx, t.request)

	c := t.conv
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != t.generation {
		slog.InfoContext(ctx, "discarding reply for cleared conversation", "type", resp.Type)
		return chat.Message{}, ErrStale
	}
	c.busy = false
	return c.appendBotLocked(resp, t.message.ID), nil
}

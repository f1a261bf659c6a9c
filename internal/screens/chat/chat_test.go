package chat

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	tea "charm.land/bubbletea/v2"

	domain "github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/conversation"
	"github.com/kisanlabs/plantdoctor/internal/doctor"
	"github.com/kisanlabs/plantdoctor/internal/report"
	"github.com/kisanlabs/plantdoctor/internal/router"
	"github.com/kisanlabs/plantdoctor/internal/screen"
)

// scriptedDoctor answers every turn with the same reply.
type scriptedDoctor struct {
	mu    sync.Mutex
	reply domain.BotResponse
	seen  []domain.Input
}

func (d *scriptedDoctor) Respond(_ context.Context, t doctor.Turn) domain.BotResponse {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seen = append(d.seen, t.Input)
	return d.reply
}

type stubScreen struct{ title string }

func (s *stubScreen) Init() tea.Cmd                           { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func newTestChat(t *testing.T, reply domain.BotResponse) (*ChatScreen, *conversation.Conversation, *scriptedDoctor) {
	t.Helper()
	d := &scriptedDoctor{reply: reply}
	conv, err := conversation.New(d)
	if err != nil {
		t.Fatal(err)
	}
	if err := conv.SelectLanguage("en"); err != nil {
		t.Fatal(err)
	}
	s := New(conv,
		func() screen.Screen { return &stubScreen{title: "picker"} },
		func(r report.FarmerReport) screen.Screen { return &stubScreen{title: "report " + r.Crop} },
	)
	return s, conv, d
}

func key(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func ctrl(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Mod: tea.ModCtrl}
}

// resolve runs the reply command out of a batch and feeds its result
// back into the screen.
func resolve(t *testing.T, s *ChatScreen, cmd tea.Cmd) {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command")
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		msg = batch[0]()
	}
	reply, ok := msg.(replyMsg)
	if !ok {
		t.Fatalf("expected replyMsg, got %T", msg)
	}
	s.Update(reply)
}

func typeText(s *ChatScreen, text string) {
	s.input.Model.SetValue(text)
}

func TestSendTextMessage(t *testing.T) {
	s, conv, _ := newTestChat(t, domain.BotResponse{Type: domain.TypeConversation, TextResponse: "Water at dusk."})

	typeText(s, "when should I water?")
	_, cmd := s.Update(key(tea.KeyEnter))

	if !conv.Busy() {
		t.Error("conversation should be busy until the reply arrives")
	}
	if msgs := conv.Messages(); len(msgs) != 2 || msgs[1].UserText() != "when should I water?" {
		t.Fatalf("user message not appended optimistically: %+v", msgs)
	}
	if s.input.Value() != "" {
		t.Error("composer should be cleared after sending")
	}
	if !strings.Contains(s.View(100, 30), "typing") {
		t.Error("expected typing indicator while busy")
	}

	resolve(t, s, cmd)

	if conv.Busy() {
		t.Error("conversation should be idle after the reply")
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "Water at dusk.") {
		t.Error("reply missing from view")
	}
	if strings.Contains(view, "typing") {
		t.Error("typing indicator should be gone")
	}
}

func TestEmptyEnterShowsNotice(t *testing.T) {
	s, conv, _ := newTestChat(t, domain.BotResponse{})

	_, cmd := s.Update(key(tea.KeyEnter))
	if cmd != nil {
		t.Error("expected no command for empty input")
	}
	if s.notice != noticeEmpty {
		t.Errorf("notice = %q", s.notice)
	}
	if len(conv.Messages()) != 1 {
		t.Error("log should be unchanged")
	}
}

func TestBusyRejectsSecondSend(t *testing.T) {
	s, conv, _ := newTestChat(t, domain.BotResponse{Type: domain.TypeConversation, TextResponse: "ok"})

	typeText(s, "first")
	s.Update(key(tea.KeyEnter))
	typeText(s, "second")
	_, cmd := s.Update(key(tea.KeyEnter))

	if cmd != nil {
		t.Error("expected no command while busy")
	}
	if s.notice != noticeBusy {
		t.Errorf("notice = %q", s.notice)
	}
	if len(conv.Messages()) != 2 {
		t.Errorf("expected 2 messages, got %d", len(conv.Messages()))
	}
}

func TestAttachPhotoAndSend(t *testing.T) {
	s, _, d := newTestChat(t, domain.BotResponse{Type: domain.TypeConversation, TextResponse: "Nice leaf."})

	path := filepath.Join(t.TempDir(), "leaf.png")
	png := append([]byte("\x89PNG\r\n\x1a\n"), make([]byte, 32)...)
	if err := os.WriteFile(path, png, 0o600); err != nil {
		t.Fatal(err)
	}

	typeText(s, "/photo "+path)
	s.Update(key(tea.KeyEnter))
	if s.photo == nil {
		t.Fatalf("photo not attached, notice = %q", s.notice)
	}
	if !strings.Contains(s.View(100, 30), "leaf.png") {
		t.Error("pending photo should be shown")
	}

	_, cmd := s.Update(key(tea.KeyEnter))
	resolve(t, s, cmd)

	if len(d.seen) != 1 || !strings.HasPrefix(d.seen[0].ImageURI, "data:image/png;base64,") {
		t.Fatalf("photo not sent: %+v", d.seen)
	}
	if s.photo != nil {
		t.Error("attachment should be cleared after sending")
	}
}

func TestAttachRejectsWrongKind(t *testing.T) {
	s, _, _ := newTestChat(t, domain.BotResponse{})

	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("just text"), 0o600); err != nil {
		t.Fatal(err)
	}

	typeText(s, "/photo "+path)
	s.Update(key(tea.KeyEnter))

	if s.photo != nil {
		t.Error("text file should not attach as a photo")
	}
	if !strings.Contains(s.notice, "not a supported file") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestUnknownCommand(t *testing.T) {
	s, _, _ := newTestChat(t, domain.BotResponse{})

	typeText(s, "/weather")
	s.Update(key(tea.KeyEnter))

	if !strings.Contains(s.notice, "Unknown command /weather") {
		t.Errorf("notice = %q", s.notice)
	}
}

func TestFindExpertsShortcut(t *testing.T) {
	s, _, d := newTestChat(t, domain.BotResponse{Type: domain.TypeAskLocation, TextResponse: "Which village?"})

	_, cmd := s.Update(ctrl('e'))
	resolve(t, s, cmd)

	if len(d.seen) != 1 || d.seen[0].Text != conversation.FindExpertsText {
		t.Fatalf("seen = %+v", d.seen)
	}
	if !strings.Contains(s.View(100, 30), "Which village?") {
		t.Error("reply missing from view")
	}
}

func TestReportShortcut(t *testing.T) {
	diag := domain.DiagnosisData{DiseaseName: "Potato___Late_blight", Confidence: domain.ConfidenceHigh, CropDetected: "Potato"}
	s, _, _ := newTestChat(t, domain.BotResponse{Type: domain.TypeDiagnosis, TextResponse: "Late blight.", DiagnosisData: &diag})

	_, cmd := s.Update(ctrl('r'))
	if cmd != nil || s.notice != noticeNoDiagnosis {
		t.Fatalf("expected no-diagnosis notice, got %q", s.notice)
	}

	typeText(s, "what is this?")
	_, cmd = s.Update(key(tea.KeyEnter))
	resolve(t, s, cmd)

	if !strings.Contains(s.View(100, 40), "Detected in Potato") {
		t.Error("diagnosis card missing")
	}

	_, cmd = s.Update(ctrl('r'))
	if cmd == nil {
		t.Fatal("expected navigation to the report")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatal("expected PushScreenMsg")
	}
	if push.Screen.Title() != "report Potato" {
		t.Errorf("pushed %q", push.Screen.Title())
	}
}

func TestChangeLanguage(t *testing.T) {
	s, conv, _ := newTestChat(t, domain.BotResponse{})

	_, cmd := s.Update(ctrl('l'))
	if cmd == nil {
		t.Fatal("expected navigation to the picker")
	}
	if _, ok := cmd().(router.ResetScreenMsg); !ok {
		t.Fatal("expected ResetScreenMsg")
	}
	if _, ok := conv.Language(); ok {
		t.Error("language should be cleared")
	}
}

func TestNewChat(t *testing.T) {
	s, conv, _ := newTestChat(t, domain.BotResponse{Type: domain.TypeConversation, TextResponse: "ok"})

	typeText(s, "hello")
	_, cmd := s.Update(key(tea.KeyEnter))
	resolve(t, s, cmd)

	s.Update(ctrl('n'))

	msgs := conv.Messages()
	if len(msgs) != 1 || msgs[0].Bot.TextResponse != conversation.ResetText {
		t.Fatalf("messages after reset = %+v", msgs)
	}
}

func TestStaleReplyIsQuiet(t *testing.T) {
	s, _, _ := newTestChat(t, domain.BotResponse{})

	s.Update(replyMsg{Err: conversation.ErrStale})
	if s.notice != "" {
		t.Errorf("stale replies should not raise a notice, got %q", s.notice)
	}
}

func TestTypingTickStopsWhenIdle(t *testing.T) {
	s, _, _ := newTestChat(t, domain.BotResponse{})

	_, cmd := s.Update(typingTickMsg{})
	if cmd != nil {
		t.Error("typing ticks should stop when no reply is pending")
	}
}

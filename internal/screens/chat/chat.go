// Package chat is the conversation screen: the message log, the composer
// and the shortcuts for experts, reports and language changes.
package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	domain "github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/conversation"
	"github.com/kisanlabs/plantdoctor/internal/logger"
	"github.com/kisanlabs/plantdoctor/internal/media"
	"github.com/kisanlabs/plantdoctor/internal/report"
	"github.com/kisanlabs/plantdoctor/internal/router"
	"github.com/kisanlabs/plantdoctor/internal/screen"
	"github.com/kisanlabs/plantdoctor/internal/ui/components"
	"github.com/kisanlabs/plantdoctor/internal/ui/layout"
)

const (
	typingInterval = 300 * time.Millisecond
	scrollStep     = 5
	charLimit      = 1000
)

// Notices shown above the composer.
const (
	noticeNoDiagnosis = "No diagnosis yet. Send a photo of your crop first."
	noticeBusy        = "Please wait for the reply."
	noticeEmpty       = "Type a message or attach a photo."
)

// attachment is a photo or voice note waiting to be sent.
type attachment struct {
	name string
	uri  string
	mime string
}

// ChatScreen implements screen.Screen for an active conversation.
type ChatScreen struct {
	conv          *conversation.Conversation
	pickerFactory func() screen.Screen
	reportFactory func(report.FarmerReport) screen.Screen
	input         components.TextInput

	photo  *attachment
	voice  *attachment
	notice string

	typingFrame int
	scroll      int
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen over conv. pickerFactory builds the language
// picker shown after a language change; reportFactory builds the report
// view.
func New(conv *conversation.Conversation, pickerFactory func() screen.Screen, reportFactory func(report.FarmerReport) screen.Screen) *ChatScreen {
	return &ChatScreen{
		conv:          conv,
		pickerFactory: pickerFactory,
		reportFactory: reportFactory,
		input:         components.NewTextInput("Describe the problem, or /photo <file>", charLimit),
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	return s.input.Init()
}

func (s *ChatScreen) Title() string {
	return "Plant Doctor"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Send"},
		{Key: "Ctrl+E", Description: "Experts"},
		{Key: "Ctrl+R", Description: "Report"},
		{Key: "Ctrl+N", Description: "New chat"},
		{Key: "Ctrl+L", Description: "Language"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case replyMsg:
		if msg.Err != nil && !errors.Is(msg.Err, conversation.ErrStale) {
			slog.Warn("reply not shown", logger.Err(msg.Err))
			s.notice = msg.Err.Error()
		}
		s.scroll = 0
		return s, nil

	case typingTickMsg:
		if !s.conv.Busy() {
			s.typingFrame = 0
			return s, nil
		}
		s.typingFrame++
		return s, typingTick()

	case tea.KeyPressMsg:
		if cmd, handled := s.handleKey(msg); handled {
			return s, cmd
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) handleKey(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "enter":
		return s.handleEnter(), true
	case "ctrl+e":
		return s.withTyping(s.submit(domain.Input{Text: conversation.FindExpertsText})), true
	case "ctrl+r":
		return s.openReport(), true
	case "ctrl+n":
		s.newChat()
		return nil, true
	case "ctrl+l":
		return s.changeLanguage(), true
	case "pgup":
		s.scroll += scrollStep
		return nil, true
	case "pgdown":
		s.scroll -= scrollStep
		if s.scroll < 0 {
			s.scroll = 0
		}
		return nil, true
	}
	return nil, false
}

// handleEnter sends the composer contents or runs a slash command.
func (s *ChatScreen) handleEnter() tea.Cmd {
	text := s.input.Value()

	if strings.HasPrefix(text, "/") {
		cmd := s.runCommand(text)
		s.input.Reset()
		return cmd
	}

	in := domain.Input{Text: text}
	if s.photo != nil {
		in.ImageURI = s.photo.uri
	}
	if s.voice != nil {
		in.AudioURI = s.voice.uri
		in.AudioMIMEType = s.voice.mime
	}
	return s.withTyping(s.submit(in))
}

func (s *ChatScreen) runCommand(line string) tea.Cmd {
	name, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch name {
	case "/photo", "/image":
		s.attach(arg, media.IsImage, &s.photo)
	case "/voice", "/audio":
		s.attach(arg, media.IsAudio, &s.voice)
	case "/detach":
		s.photo, s.voice = nil, nil
		s.notice = ""
	case "/experts":
		return s.withTyping(s.submit(domain.Input{Text: conversation.FindExpertsText}))
	case "/report":
		return s.openReport()
	case "/new", "/clear":
		s.newChat()
	case "/language":
		return s.changeLanguage()
	default:
		s.notice = fmt.Sprintf("Unknown command %s. Try /photo, /voice, /experts, /report, /new or /language.", name)
	}
	return nil
}

func (s *ChatScreen) attach(path string, accept func(string) bool, slot **attachment) {
	if path == "" {
		s.notice = "Give a file path, e.g. /photo leaf.jpg"
		return
	}
	uri, mime, err := media.LoadFile(path)
	if err != nil {
		s.notice = err.Error()
		return
	}
	if !accept(mime) {
		s.notice = fmt.Sprintf("%s is not a supported file (%s)", filepath.Base(path), mime)
		return
	}
	*slot = &attachment{name: filepath.Base(path), uri: uri, mime: mime}
	s.notice = ""
}

// submit appends the farmer's message and returns the command that
// resolves the reply, or nil if the message was refused.
func (s *ChatScreen) submit(in domain.Input) tea.Cmd {
	turn, err := s.conv.Submit(in)
	switch {
	case errors.Is(err, conversation.ErrBusy):
		s.notice = noticeBusy
		return nil
	case errors.Is(err, conversation.ErrEmptyInput):
		s.notice = noticeEmpty
		return nil
	case err != nil:
		s.notice = err.Error()
		return nil
	}

	s.input.Reset()
	s.photo, s.voice = nil, nil
	s.notice = ""
	s.scroll = 0

	return func() tea.Msg {
		_, err := turn.Resolve(context.Background())
		return replyMsg{Err: err}
	}
}

func (s *ChatScreen) withTyping(cmd tea.Cmd) tea.Cmd {
	if cmd == nil {
		return nil
	}
	s.typingFrame = 0
	return tea.Batch(cmd, typingTick())
}

func typingTick() tea.Cmd {
	return tea.Tick(typingInterval, func(t time.Time) tea.Msg {
		return typingTickMsg(t)
	})
}

func (s *ChatScreen) openReport() tea.Cmd {
	r, err := s.conv.RequestLatestReport()
	if err != nil {
		s.notice = noticeNoDiagnosis
		return nil
	}
	s.notice = ""
	next := s.reportFactory(r)
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}

func (s *ChatScreen) newChat() {
	s.conv.Reset()
	s.photo, s.voice = nil, nil
	s.notice = ""
	s.scroll = 0
	s.input.Reset()
}

func (s *ChatScreen) changeLanguage() tea.Cmd {
	s.conv.ChangeLanguage()
	next := s.pickerFactory()
	return func() tea.Msg {
		return router.ResetScreenMsg{Screen: next}
	}
}

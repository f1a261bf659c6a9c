package chat

import (
	"strings"

	"charm.land/lipgloss/v2"

	domain "github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/ui/components"
	"github.com/kisanlabs/plantdoctor/internal/ui/theme"
)

const maxBubbleWidth = 72

var typingFrames = []string{".", "..", "..."}

func (s *ChatScreen) View(width, height int) string {
	composer := s.renderComposer(width)
	logHeight := height - lipgloss.Height(composer) - 1
	if logHeight < 1 {
		logHeight = 1
	}

	transcript := s.renderTranscript(width)
	lines := strings.Split(transcript, "\n")

	end := len(lines) - s.scroll
	if end < logHeight {
		end = min(logHeight, len(lines))
	}
	start := end - logHeight
	if start < 0 {
		start = 0
	}
	visible := strings.Join(lines[start:end], "\n")

	log := lipgloss.NewStyle().Width(width).Height(logHeight).Render(visible)
	return log + "\n" + composer
}

func (s *ChatScreen) renderTranscript(width int) string {
	bubble := min(width-4, maxBubbleWidth)

	var parts []string
	for _, m := range s.conv.Messages() {
		switch {
		case m.User != nil:
			parts = append(parts, renderUser(*m.User, bubble, width))
		case m.Bot != nil:
			parts = append(parts, renderBot(*m.Bot, bubble))
		}
	}

	if s.conv.Busy() {
		frame := typingFrames[s.typingFrame%len(typingFrames)]
		parts = append(parts, theme.Hint.Render("  Plant Doctor is typing"+frame))
	}

	return strings.Join(parts, "\n\n")
}

func renderUser(in domain.Input, bubble, width int) string {
	var b strings.Builder
	b.WriteString(theme.Sender.Render("You"))
	if in.ImageURI != "" {
		b.WriteString("\n" + theme.Attachment.Render("[Photo]"))
	}
	if in.AudioURI != "" {
		b.WriteString("\n" + theme.Attachment.Render("[Voice note]"))
	}
	if in.Text != "" {
		b.WriteString("\n" + theme.UserBubble.Width(bubble).Render(in.Text))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Right, b.String())
}

func renderBot(r domain.BotResponse, bubble int) string {
	var b strings.Builder
	b.WriteString(theme.Sender.Render("Plant Doctor"))
	b.WriteString("\n")
	b.WriteString(theme.BotBubble.Width(bubble).Render(r.TextResponse))

	switch {
	case r.DiagnosisData != nil:
		b.WriteString("\n")
		b.WriteString(components.DiagnosisCard(*r.DiagnosisData, bubble))
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Press Ctrl+R for a farmer report."))
	case len(r.ExpertsData) > 0:
		b.WriteString("\n")
		b.WriteString(components.ExpertCards(r.ExpertsData, bubble))
	}
	return b.String()
}

func (s *ChatScreen) renderComposer(width int) string {
	var b strings.Builder

	var pending []string
	if s.photo != nil {
		pending = append(pending, "[Photo: "+s.photo.name+"]")
	}
	if s.voice != nil {
		pending = append(pending, "[Voice: "+s.voice.name+"]")
	}
	if len(pending) > 0 {
		b.WriteString(theme.Attachment.Render(strings.Join(pending, " ")+"  /detach to remove") + "\n")
	}

	if s.notice != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Render(s.notice) + "\n")
	}

	b.WriteString(theme.Card.Width(width).Render("> " + s.input.View()))
	return b.String()
}

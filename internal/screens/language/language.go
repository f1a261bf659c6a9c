// Package language is the language picker shown before a chat starts.
package language

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/router"
	"github.com/kisanlabs/plantdoctor/internal/screen"
	"github.com/kisanlabs/plantdoctor/internal/ui/components"
	"github.com/kisanlabs/plantdoctor/internal/ui/layout"
	"github.com/kisanlabs/plantdoctor/internal/ui/theme"
)

// Selector activates a language. *conversation.Conversation satisfies it.
type Selector interface {
	SelectLanguage(code string) error
}

// PickerScreen lists the supported languages.
type PickerScreen struct {
	selector    Selector
	chatFactory func() screen.Screen
	menu        components.Menu
	errMsg      string
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a picker that selects the chosen language on selector and
// then replaces itself with the screen produced by chatFactory.
func New(selector Selector, chatFactory func() screen.Screen) *PickerScreen {
	p := &PickerScreen{selector: selector, chatFactory: chatFactory}

	items := make([]components.MenuItem, 0, len(chat.Languages))
	for _, l := range chat.Languages {
		code := l.Code
		detail := ""
		if l.NativeName != l.Name {
			detail = l.NativeName
		}
		items = append(items, components.MenuItem{
			Label:  l.Name,
			Detail: detail,
			Action: func() tea.Cmd { return p.choose(code) },
		})
	}
	p.menu = components.NewMenu(items)
	return p
}

func (p *PickerScreen) Init() tea.Cmd {
	return nil
}

func (p *PickerScreen) Title() string {
	return "Choose Language"
}

func (p *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (p *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	p.menu, cmd = p.menu.Update(msg)
	return p, cmd
}

func (p *PickerScreen) choose(code string) tea.Cmd {
	if err := p.selector.SelectLanguage(code); err != nil {
		p.errMsg = err.Error()
		return nil
	}
	p.errMsg = ""
	next := p.chatFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (p *PickerScreen) View(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render("Namaste! Which language do you speak?"))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render("भाषा चुनें · Select your language"))
	b.WriteString("\n\n")

	menu := lipgloss.NewStyle().Width(36).Render(p.menu.View())
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, menu))

	if p.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Error).Render(p.errMsg))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kisanlabs/plantdoctor/internal/ui/theme"
)

// Button is an action triggered by a single key, e.g. "h" for HTML export.
type Button struct {
	Key     string
	Label   string
	Active  bool
	OnPress func() tea.Cmd
}

// NewButton creates a new button bound to key.
func NewButton(key, label string, onPress func() tea.Cmd) Button {
	return Button{
		Key:     key,
		Label:   label,
		Active:  true,
		OnPress: onPress,
	}
}

// Update fires OnPress when the button's key is pressed.
func (b Button) Update(msg tea.Msg) (Button, tea.Cmd) {
	if !b.Active {
		return b, nil
	}

	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		if kmsg.String() == b.Key && b.OnPress != nil {
			return b, b.OnPress()
		}
	}

	return b, nil
}

// View renders the button.
func (b Button) View() string {
	key := lipgloss.NewStyle().Bold(true).Render("[" + b.Key + "]")
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1)
	if b.Active {
		style = style.BorderForeground(theme.Primary).Foreground(theme.Text)
	} else {
		style = style.BorderForeground(theme.Border).Foreground(theme.TextDim)
	}
	return style.Render(key + " " + b.Label)
}

// ButtonRow renders buttons side by side.
func ButtonRow(buttons []Button) string {
	views := make([]string, 0, len(buttons))
	for _, b := range buttons {
		views = append(views, b.View())
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

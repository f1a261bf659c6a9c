package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kisanlabs/plantdoctor/internal/router"
	"github.com/kisanlabs/plantdoctor/internal/screen"
	"github.com/kisanlabs/plantdoctor/internal/ui/theme"
)

const (
	tickInterval = 100 * time.Millisecond
	phase1End    = 500 * time.Millisecond
	phase2End    = 1500 * time.Millisecond
	totalDur     = 3000 * time.Millisecond
)

const Tagline = "Healthy crops, happy farmers."

const sproutArt = `      \ | /
    '  _|_  '
   -  (   )  -
       \ /
   ~~~~~|~~~~~
     \  |  /
      \ | /
  ▁▁▁▁▁▁|▁▁▁▁▁▁`

// leaf frames sway beside the sprout
var leafFrames = []string{"❦", "❧"}

type tickMsg time.Time

// WelcomeScreen shows a splash animation before moving on to the next
// screen. Any key skips ahead.
type WelcomeScreen struct {
	nextFactory  func() screen.Screen
	elapsed      time.Duration
	tickCount    int
	transitioned bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New creates a WelcomeScreen that will transition to the screen produced by nextFactory.
func New(nextFactory func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{
		nextFactory: nextFactory,
	}
}

func (w *WelcomeScreen) Title() string {
	return ""
}

func (w *WelcomeScreen) Init() tea.Cmd {
	return tick()
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case tickMsg:
		if w.transitioned {
			return w, nil
		}
		if w.elapsed < totalDur {
			w.elapsed += tickInterval
		}
		w.tickCount++
		return w, tick()

	case tea.KeyPressMsg:
		return w, w.transition()
	}

	return w, nil
}

func (w *WelcomeScreen) transition() tea.Cmd {
	if w.transitioned {
		return nil
	}
	w.transitioned = true
	next := w.nextFactory()
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (w *WelcomeScreen) View(width, height int) string {
	var sections []string

	rendered := lipgloss.NewStyle().Foreground(theme.Primary).Render(sproutArt)

	if w.elapsed >= phase1End {
		leaf := leafFrames[w.tickCount%len(leafFrames)]
		l := lipgloss.NewStyle().Foreground(theme.Success).Render(leaf)
		a := lipgloss.NewStyle().Foreground(theme.Accent).Render(leaf)

		lines := strings.Split(rendered, "\n")
		if len(lines) > 2 {
			lines[2] = l + "  " + lines[2] + "  " + a
		}
		if len(lines) > 5 {
			lines[5] = a + "  " + lines[5] + "  " + l
		}
		rendered = strings.Join(lines, "\n")
	}

	sections = append(sections, rendered)

	if w.elapsed >= phase2End {
		sections = append(sections,
			"",
			RenderBanner(width),
			"",
			lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline),
			"",
			theme.Hint.Render("press any key to continue"),
		)
	}

	content := strings.Join(sections, "\n")

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/samber/lo"

	"github.com/kisanlabs/plantdoctor/internal/conversation"
	"github.com/kisanlabs/plantdoctor/internal/logger"
	"github.com/kisanlabs/plantdoctor/internal/report"
	"github.com/kisanlabs/plantdoctor/internal/router"
	"github.com/kisanlabs/plantdoctor/internal/screen"
	chatscreen "github.com/kisanlabs/plantdoctor/internal/screens/chat"
	"github.com/kisanlabs/plantdoctor/internal/screens/language"
	reportscreen "github.com/kisanlabs/plantdoctor/internal/screens/report"
	"github.com/kisanlabs/plantdoctor/internal/screens/welcome"
	"github.com/kisanlabs/plantdoctor/internal/ui/layout"
	"github.com/kisanlabs/plantdoctor/internal/widget"
)

const closeTimeout = 2 * time.Second

// Options configures the application.
type Options struct {
	Conversation *conversation.Conversation

	// Widget runs the app embedded in a host page: the landing screen is
	// skipped and Esc on the root screen asks Host to close the widget.
	Widget bool
	Host   widget.Host

	// ExportDir receives saved reports.
	ExportDir string

	// Output is where the UI is drawn. Nil means stdout.
	Output io.Writer
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	conv   *conversation.Conversation
	widget bool
	host   widget.Host
	width  int
	height int
}

// newAppModel wires the screens together. The chat opens directly when a
// language is already selected; the welcome screen only shows standalone.
func newAppModel(opts Options) AppModel {
	conv := opts.Conversation
	host := opts.Host
	if host == nil {
		host = widget.Nop{}
	}

	reportFactory := func(r report.FarmerReport) screen.Screen {
		return reportscreen.New(r, opts.ExportDir)
	}
	var chatFactory, pickerFactory func() screen.Screen
	chatFactory = func() screen.Screen {
		return chatscreen.New(conv, pickerFactory, reportFactory)
	}
	pickerFactory = func() screen.Screen {
		return language.New(conv, chatFactory)
	}

	var initial screen.Screen
	switch _, ok := conv.Language(); {
	case ok:
		initial = chatFactory()
	case opts.Widget:
		initial = pickerFactory()
	default:
		initial = welcome.New(pickerFactory)
	}

	return AppModel{
		router: router.New(initial),
		conv:   conv,
		widget: opts.Widget,
		host:   host,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			if m.widget {
				return m, closeWidget(m.host)
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// closeWidget signals the host and then quits.
func closeWidget(host widget.Host) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := host.Close(ctx); err != nil {
			slog.Warn("widget close signal failed", logger.Err(err))
		}
		return tea.Quit()
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	v.SetContent(m.render())
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	status := ""
	if lang, ok := m.conv.Language(); ok {
		status = lang.NativeName
	}
	header := layout.RenderHeader(title, status, m.width)
	footer := layout.RenderFooter(m.footerHints(active), m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

func (m AppModel) footerHints(active screen.Screen) []layout.KeyHint {
	var hints []layout.KeyHint
	if p, ok := active.(screen.KeyHintProvider); ok {
		hints = append(hints, p.KeyHints()...)
	}

	switch {
	case m.router.Depth() > 1:
		if !hasKey(hints, "Esc") {
			hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Back"})
		}
	case m.widget:
		hints = append(hints, layout.KeyHint{Key: "Esc", Description: "Close"})
	}
	if !hasKey(hints, "Ctrl+C") {
		hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})
	}
	return hints
}

func hasKey(hints []layout.KeyHint, key string) bool {
	return lo.ContainsBy(hints, func(h layout.KeyHint) bool { return h.Key == key })
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Conversation == nil {
		return errors.New("app: no conversation")
	}

	var progOpts []tea.ProgramOption
	if opts.Output != nil {
		progOpts = append(progOpts, tea.WithOutput(opts.Output))
	}

	p := tea.NewProgram(newAppModel(opts), progOpts...)
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}

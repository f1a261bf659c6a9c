// Package report shows a farmer report and exports it for sharing.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kisanlabs/plantdoctor/internal/report"
	"github.com/kisanlabs/plantdoctor/internal/screen"
	"github.com/kisanlabs/plantdoctor/internal/ui/components"
	"github.com/kisanlabs/plantdoctor/internal/ui/layout"
	"github.com/kisanlabs/plantdoctor/internal/ui/theme"
)

const dateLayout = "02 Jan 2006 15:04"

// exportedMsg reports the outcome of an export.
type exportedMsg struct {
	Path string
	Err  error
}

// ReportScreen implements screen.Screen for one FarmerReport.
type ReportScreen struct {
	report    report.FarmerReport
	exportDir string
	buttons   []components.Button
	status    string
	failed    bool
}

var _ screen.Screen = (*ReportScreen)(nil)
var _ screen.KeyHintProvider = (*ReportScreen)(nil)

// New creates a report view. Exports are written to exportDir, or the
// working directory when it is empty.
func New(r report.FarmerReport, exportDir string) *ReportScreen {
	s := &ReportScreen{report: r, exportDir: exportDir}
	s.buttons = []components.Button{
		components.NewButton("h", "Save HTML", func() tea.Cmd {
			return s.export("html", report.HTML(r))
		}),
		components.NewButton("m", "Save Markdown", func() tea.Cmd {
			return s.export("md", report.Markdown(r))
		}),
	}
	return s
}

// Report returns the report being shown.
func (s *ReportScreen) Report() report.FarmerReport {
	return s.report
}

func (s *ReportScreen) Init() tea.Cmd {
	return nil
}

func (s *ReportScreen) Title() string {
	return "Farmer Report"
}

func (s *ReportScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "h", Description: "Save HTML"},
		{Key: "m", Description: "Save Markdown"},
		{Key: "Esc", Description: "Back to chat"},
	}
}

func (s *ReportScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(exportedMsg); ok {
		if msg.Err != nil {
			s.status = "Could not save report: " + msg.Err.Error()
			s.failed = true
		} else {
			s.status = "Saved to " + msg.Path
			s.failed = false
		}
		return s, nil
	}

	for i := range s.buttons {
		var cmd tea.Cmd
		s.buttons[i], cmd = s.buttons[i].Update(msg)
		if cmd != nil {
			return s, cmd
		}
	}
	return s, nil
}

// FileName returns the export file name for a report and extension.
func FileName(r report.FarmerReport, ext string) string {
	return fmt.Sprintf("farmer-report-%s.%s", r.ID, ext)
}

func (s *ReportScreen) export(ext, body string) tea.Cmd {
	path := filepath.Join(s.exportDir, FileName(s.report, ext))
	return func() tea.Msg {
		if s.exportDir != "" {
			if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
				return exportedMsg{Err: err}
			}
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			return exportedMsg{Err: err}
		}
		return exportedMsg{Path: path}
	}
}

func (s *ReportScreen) View(width, height int) string {
	r := s.report
	cardWidth := min(width-4, 90)

	label := lipgloss.NewStyle().Foreground(theme.TextDim)
	value := lipgloss.NewStyle().Foreground(theme.Text)
	row := func(k, v string) string {
		return label.Render(fmt.Sprintf("%-9s", k)) + value.Render(v)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(cardWidth).Render("Farmer Report"))
	b.WriteString("\n\n")
	b.WriteString(row("ID", r.ID) + "\n")
	b.WriteString(row("Date", r.Timestamp.Format(dateLayout)) + "\n")
	b.WriteString(row("Crop", orDash(r.Crop)) + "\n")
	b.WriteString(row("Symptoms", orDash(r.Symptoms)) + "\n")
	if r.HasImage() {
		b.WriteString(row("Photo", "attached") + "\n")
	}
	b.WriteString("\n")
	b.WriteString(components.DiagnosisCard(r.Diagnosis, cardWidth))
	b.WriteString("\n\n")
	b.WriteString(components.ButtonRow(s.buttons))

	if s.status != "" {
		style := lipgloss.NewStyle().Foreground(theme.Success)
		if s.failed {
			style = style.Foreground(theme.Error)
		}
		b.WriteString("\n" + style.Render(s.status))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Top, b.String())
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

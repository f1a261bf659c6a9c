package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/ui/theme"
)

// ConfidenceBanner is the headline of a diagnosis card.
func ConfidenceBanner(d chat.DiagnosisData) string {
	if d.Confidence == chat.ConfidenceHigh {
		crop := d.CropDetected
		if crop == "" {
			crop = "your crop"
		}
		return theme.ConfidentBanner.Render("Detected in " + crop)
	}
	return theme.UnsureBanner.Render("Unsure. Possibly " + DisplayLabel(d.DiseaseName) + ".")
}

// DisplayLabel turns a dataset label such as "Tomato___Early_blight" into
// "Tomato - Early blight".
func DisplayLabel(label string) string {
	crop, disease, ok := strings.Cut(label, "___")
	if !ok {
		return strings.ReplaceAll(label, "_", " ")
	}
	crop = strings.ReplaceAll(crop, "_", " ")
	disease = strings.ReplaceAll(disease, "_", " ")
	return crop + " - " + disease
}

// DiagnosisCard renders a diagnosis with its treatment plan.
func DiagnosisCard(d chat.DiagnosisData, width int) string {
	inner := width - 4
	if inner < 20 {
		inner = 20
	}
	wrap := lipgloss.NewStyle().Width(inner)

	var b strings.Builder
	head := ConfidenceBanner(d)
	if d.IsSafeOrganic {
		head = lipgloss.JoinHorizontal(lipgloss.Center, head, " ", theme.OrganicBadge.Render("Organic safe"))
	}
	b.WriteString(head + "\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(DisplayLabel(d.DiseaseName)))
	b.WriteString("\n")

	if d.Explanation != "" {
		b.WriteString(wrap.Foreground(theme.TextDim).Render(d.Explanation))
		b.WriteString("\n")
	}

	if len(d.TreatmentSteps) > 0 {
		b.WriteString("\n" + theme.SectionLabel.Render("Treatment") + "\n")
		for i, step := range d.TreatmentSteps {
			b.WriteString(wrap.Render(fmt.Sprintf("%d. %s", i+1, step)))
			b.WriteString("\n")
		}
	}

	if len(d.PreventionTips) > 0 {
		b.WriteString("\n" + theme.SectionLabel.Render("Prevention") + "\n")
		for _, tip := range d.PreventionTips {
			b.WriteString(wrap.Render("• " + tip))
			b.WriteString("\n")
		}
	}

	return theme.Card.Width(width).Render(strings.TrimRight(b.String(), "\n"))
}

// ExpertCards renders a list of local experts.
func ExpertCards(experts []chat.Expert, width int) string {
	cards := make([]string, 0, len(experts))
	for _, e := range experts {
		var b strings.Builder
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(e.Name))
		b.WriteString(" " + expertBadge(e.Type) + "\n")
		if e.Role != "" {
			b.WriteString(theme.Hint.Render(e.Role) + "\n")
		}
		if e.Contact != "" {
			b.WriteString("☎ " + e.Contact + "\n")
		}
		if e.Address != "" {
			b.WriteString("⌂ " + e.Address)
		}
		cards = append(cards, theme.Card.Width(width).Render(strings.TrimRight(b.String(), "\n")))
	}
	return strings.Join(cards, "\n")
}

func expertBadge(t chat.ExpertType) string {
	color := theme.TextDim
	switch t {
	case chat.ExpertGovt:
		color = theme.Secondary
	case chat.ExpertNGO:
		color = theme.Success
	case chat.ExpertPrivate:
		color = theme.Accent
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true).Render(string(t))
}

package report

import (
	"fmt"
	"html"
	"strings"

	"github.com/russross/blackfriday"

	"github.com/kisanlabs/plantdoctor/internal/chat"
	"github.com/kisanlabs/plantdoctor/internal/media"
)

const timeLayout = "02 Jan 2006 15:04"

// Markdown renders r as a Markdown document suitable for sharing.
func Markdown(r FarmerReport) string {
	d := r.Diagnosis
	var b strings.Builder

	fmt.Fprintf(&b, "# Farmer Report\n\n")
	fmt.Fprintf(&b, "- **Report ID:** %s\n", r.ID)
	fmt.Fprintf(&b, "- **Date:** %s\n", r.Timestamp.Format(timeLayout))
	fmt.Fprintf(&b, "- **Crop:** %s\n", orDash(r.Crop))
	fmt.Fprintf(&b, "- **Symptoms:** %s\n", orDash(r.Symptoms))
	if r.HasImage() {
		b.WriteString("- **Photo:** attached\n")
	}

	fmt.Fprintf(&b, "\n## Diagnosis: %s\n\n", orDash(d.DiseaseName))
	fmt.Fprintf(&b, "Confidence: **%s**", confidenceLabel(d.Confidence))
	if d.IsSafeOrganic {
		b.WriteString(" · Organic treatment available")
	}
	b.WriteString("\n\n")
	if d.Explanation != "" {
		b.WriteString(d.Explanation)
		b.WriteString("\n\n")
	}

	if len(d.TreatmentSteps) > 0 {
		b.WriteString("## Treatment\n\n")
		for i, s := range d.TreatmentSteps {
			fmt.Fprintf(&b, "%d. %s\n", i+1, s)
		}
		b.WriteString("\n")
	}
	if len(d.PreventionTips) > 0 {
		b.WriteString("## Prevention\n\n")
		for _, s := range d.PreventionTips {
			fmt.Fprintf(&b, "- %s\n", s)
		}
		b.WriteString("\n")
	}
	return b.String()
}

// HTML renders r as a standalone HTML page. The photo, when present, is
// embedded inline.
func HTML(r FarmerReport) string {
	body := blackfriday.MarkdownCommon([]byte(Markdown(r)))

	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n")
	fmt.Fprintf(&b, "<title>Farmer Report %s</title>\n", html.EscapeString(r.ID))
	b.WriteString("</head>\n<body>\n")
	if r.HasImage() {
		fmt.Fprintf(&b, "<img src=\"%s\" alt=\"crop photo\" style=\"max-width:100%%\">\n", html.EscapeString(imageSrc(r.ImageURI)))
	}
	b.Write(body)
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// imageSrc turns a bare base64 payload into a data URI.
func imageSrc(uri string) string {
	if media.MIMEType(uri) != "" {
		return uri
	}
	return "data:image/jpeg;base64," + media.Payload(uri)
}

func confidenceLabel(c chat.Confidence) string {
	if c == chat.ConfidenceHigh {
		return "High"
	}
	return "Low"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

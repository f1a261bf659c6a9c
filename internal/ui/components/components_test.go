package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kisanlabs/plantdoctor/internal/chat"
)

func TestDisplayLabel(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Tomato___Early_blight", "Tomato - Early blight"},
		{"Corn_(maize)___Common_rust_", "Corn (maize) - Common rust "},
		{"Wheat_rust", "Wheat rust"},
	}
	for _, tt := range tests {
		if got := DisplayLabel(tt.in); got != tt.want {
			t.Errorf("DisplayLabel(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConfidenceBanner(t *testing.T) {
	high := ConfidenceBanner(chat.DiagnosisData{Confidence: chat.ConfidenceHigh, CropDetected: "Potato"})
	if !strings.Contains(high, "Detected in Potato") {
		t.Errorf("high banner = %q", high)
	}

	low := ConfidenceBanner(chat.DiagnosisData{Confidence: chat.ConfidenceLow, DiseaseName: "Potato___Late_blight"})
	if !strings.Contains(low, "Unsure. Possibly Potato - Late blight.") {
		t.Errorf("low banner = %q", low)
	}
}

func TestDiagnosisCard(t *testing.T) {
	card := DiagnosisCard(chat.DiagnosisData{
		DiseaseName:    "Tomato___Early_blight",
		Confidence:     chat.ConfidenceHigh,
		CropDetected:   "Tomato",
		TreatmentSteps: []string{"Remove leaves", "Spray copper"},
		PreventionTips: []string{"Rotate crops"},
		IsSafeOrganic:  true,
	}, 60)

	for _, want := range []string{"Organic safe", "1. Remove leaves", "2. Spray copper", "Rotate crops", "Treatment", "Prevention"} {
		if !strings.Contains(card, want) {
			t.Errorf("card missing %q", want)
		}
	}
}

func TestDiagnosisCard_NoOrganicBadge(t *testing.T) {
	card := DiagnosisCard(chat.DiagnosisData{DiseaseName: "x", IsSafeOrganic: false}, 60)
	if strings.Contains(card, "Organic safe") {
		t.Error("unexpected organic badge")
	}
}

func TestExpertCards(t *testing.T) {
	out := ExpertCards([]chat.Expert{
		{Name: "KVK Nashik", Role: "Pathologist", Contact: "0253", Address: "Nashik", Type: chat.ExpertGovt},
	}, 50)
	for _, want := range []string{"KVK Nashik", "GOVT", "Pathologist", "0253", "Nashik"} {
		if !strings.Contains(out, want) {
			t.Errorf("expert card missing %q", want)
		}
	}
}

func TestMenuNavigation(t *testing.T) {
	picked := ""
	pick := func(s string) func() tea.Cmd {
		return func() tea.Cmd {
			picked = s
			return nil
		}
	}
	m := NewMenu([]MenuItem{
		{Label: "Disabled", Disabled: true},
		{Label: "English", Action: pick("en")},
		{Label: "Hindi", Action: pick("hi")},
	})

	if m.Selected != 1 {
		t.Fatalf("expected first enabled item selected, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up should skip disabled items, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if picked != "hi" {
		t.Errorf("picked = %q, want hi", picked)
	}
}

func TestButton(t *testing.T) {
	pressed := false
	b := NewButton("h", "Export HTML", func() tea.Cmd {
		pressed = true
		return nil
	})

	b.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	if pressed {
		t.Fatal("wrong key pressed the button")
	}
	b.Update(tea.KeyPressMsg{Code: 'h', Text: "h"})
	if !pressed {
		t.Fatal("button key did not fire")
	}
	if !strings.Contains(b.View(), "Export HTML") {
		t.Errorf("view = %q", b.View())
	}
}

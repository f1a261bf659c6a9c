package theme

import (
	"charm.land/lipgloss/v2"
)

// Color palette, field greens with a harvest accent
var (
	Primary   = lipgloss.Color("#16A34A") // Leaf Green
	Secondary = lipgloss.Color("#0EA5E9") // Sky
	Accent    = lipgloss.Color("#F59E0B") // Harvest Amber
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Mustard
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0C1A12") // Deep Soil
	BgCard    = lipgloss.Color("#1C2B22") // Dark Moss
	Border    = lipgloss.Color("#335544") // Moss
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		Align(lipgloss.Center)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim).
			Align(lipgloss.Center)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)
)

// Layout
var (
	Header = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Footer = lipgloss.NewStyle().
		Background(BgCard).
		Padding(0, 2)

	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 1)
)

// States
var (
	Selected = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	Unselected = lipgloss.NewStyle().
			Foreground(Text)
)

// Chat
var (
	UserBubble = lipgloss.NewStyle().
			Foreground(Text).
			Background(lipgloss.Color("#14532D")).
			Padding(0, 1)

	BotBubble = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(0, 1)

	Sender = lipgloss.NewStyle().
		Foreground(TextDim).
		Bold(true)

	Attachment = lipgloss.NewStyle().
			Foreground(Secondary).
			Italic(true)
)

// Diagnosis card
var (
	ConfidentBanner = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Success).
			Bold(true).
			Padding(0, 1)

	UnsureBanner = lipgloss.NewStyle().
			Foreground(BgDark).
			Background(Warning).
			Bold(true).
			Padding(0, 1)

	OrganicBadge = lipgloss.NewStyle().
			Foreground(Success).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Success).
			Padding(0, 1)

	SectionLabel = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)
)

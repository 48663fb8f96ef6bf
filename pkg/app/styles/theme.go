package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/prasetya/naskah/pkg/data"
)

var (
	// Color palette
	Primary    = lipgloss.Color("#7AA2F7")
	Secondary  = lipgloss.Color("#BB9AF7")
	Success    = lipgloss.Color("#9ECE6A")
	Warning    = lipgloss.Color("#E0AF68")
	Error      = lipgloss.Color("#F7768E")
	Info       = lipgloss.Color("#7DCFFF")
	Muted      = lipgloss.Color("#565F89")
	Foreground = lipgloss.Color("#C0CAF5")

	// Border styles
	RoundedBorder = lipgloss.RoundedBorder()
	ThickBorder   = lipgloss.ThickBorder()
)

// Base styles
var (
	// Title style for headings
	TitleStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true).
		MarginBottom(1)

	// Subtitle style
	SubtitleStyle = lipgloss.NewStyle().
		Foreground(Secondary).
		Italic(true)

	// Normal text
	TextStyle = lipgloss.NewStyle().
		Foreground(Foreground)

	// Muted/dimmed text
	MutedStyle = lipgloss.NewStyle().
		Foreground(Muted)

	// Card style for one chapter row
	CardStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Secondary).
		Padding(0, 2).
		MarginBottom(1)

	// Active/focused card
	ActiveCardStyle = lipgloss.NewStyle().
		Border(ThickBorder).
		BorderForeground(Primary).
		Padding(0, 2).
		MarginBottom(1)

	// Page number column
	PageStyle = lipgloss.NewStyle().
		Foreground(Warning).
		Bold(true)

	// Export stage styles
	StageRunning = lipgloss.NewStyle().
		Foreground(Info).
		Bold(true)

	StageComplete = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	StageError = lipgloss.NewStyle().
		Foreground(Error).
		Bold(true)

	// Tab styles
	ActiveTabStyle = lipgloss.NewStyle().
		Foreground(Primary).
		Background(lipgloss.Color("#2A2E42")).
		Padding(0, 2).
		Bold(true)

	InactiveTabStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Padding(0, 2)

	// Help text
	HelpStyle = lipgloss.NewStyle().
		Foreground(Muted).
		Italic(true).
		MarginTop(1)

	// Input field
	InputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Secondary).
		Padding(0, 1)

	// Focused input
	FocusedInputStyle = lipgloss.NewStyle().
		Border(RoundedBorder).
		BorderForeground(Primary).
		Padding(0, 1)
)

// Segment badge styles, one per chapter type.
var segmentStyles = map[data.ChapterType]lipgloss.Style{
	data.TypeFrontmatter: lipgloss.NewStyle().Foreground(Secondary),
	data.TypeTOC:         lipgloss.NewStyle().Foreground(Info),
	data.TypeChapter:     lipgloss.NewStyle().Foreground(Success),
	data.TypeBackmatter:  lipgloss.NewStyle().Foreground(Warning),
}

// SegmentStyle returns the badge style for a chapter type.
func SegmentStyle(t data.ChapterType) lipgloss.Style {
	if s, ok := segmentStyles[t]; ok {
		return s
	}
	return MutedStyle
}

// StageStyle returns the style for an export stage string.
func StageStyle(stage string) lipgloss.Style {
	switch stage {
	case "building":
		return StageRunning
	case "complete":
		return StageComplete
	case "error":
		return StageError
	default:
		return MutedStyle
	}
}

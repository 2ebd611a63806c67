package theme

import (
	"github.com/charmbracelet/lipgloss"
)

// Base16 color palette with warm earth tones.
var (
	// Base colors (backgrounds and text)
	ColorBase00 = lipgloss.Color("#1a1816") // Dark background
	ColorBase01 = lipgloss.Color("#282420") // Lighter background
	ColorBase02 = lipgloss.Color("#36302a") // Selection background
	ColorBase03 = lipgloss.Color("#5c5044") // Comments, invisibles
	ColorBase04 = lipgloss.Color("#83715f") // Dark foreground
	ColorBase05 = lipgloss.Color("#ab937b") // Default foreground
	ColorBase06 = lipgloss.Color("#d3b597") // Light foreground

	// Accent colors
	ColorRed    = lipgloss.Color("#d95f5f")
	ColorOrange = lipgloss.Color("#eb8755")
	ColorYellow = lipgloss.Color("#f5b761")
	ColorGreen  = lipgloss.Color("#93b56b")
	ColorCyan   = lipgloss.Color("#61afaf")
	ColorBlue   = lipgloss.Color("#6b93b5")
	ColorPurple = lipgloss.Color("#976bb5")

	ColorFocus = ColorOrange
	ColorError = ColorRed
	ColorMuted = ColorBase03
)

// Styles defines the Lipgloss styles for the TUI components.
type Styles struct {
	// Message styles
	UserMessage   lipgloss.Style
	BotMessage    lipgloss.Style
	SystemMessage lipgloss.Style
	ErrorMessage  lipgloss.Style
	Timestamp     lipgloss.Style

	// Directory styles
	ListItem      lipgloss.Style
	ListSelected  lipgloss.Style
	ListPending   lipgloss.Style
	Title         lipgloss.Style
	Notice        lipgloss.Style
	Help          lipgloss.Style

	// Side pane styles
	TabActive       lipgloss.Style
	TabInactive     lipgloss.Style
	SegmentTime     lipgloss.Style
	SegmentActive   lipgloss.Style
	SegmentSelected lipgloss.Style
	Suggestion      lipgloss.Style

	// Focus states
	Focused   lipgloss.Style
	Unfocused lipgloss.Style
}

// DefaultStyles returns the default Lipgloss styles.
func DefaultStyles() *Styles {
	return &Styles{
		UserMessage: lipgloss.NewStyle().
			Foreground(ColorGreen),

		BotMessage: lipgloss.NewStyle().
			Foreground(ColorBlue),

		SystemMessage: lipgloss.NewStyle().
			Foreground(ColorPurple),

		ErrorMessage: lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true),

		Timestamp: lipgloss.NewStyle().
			Foreground(ColorBase04),

		ListItem: lipgloss.NewStyle().
			Foreground(ColorBase05),

		ListSelected: lipgloss.NewStyle().
			Foreground(ColorBase06).
			Background(ColorBase02).
			Bold(true),

		ListPending: lipgloss.NewStyle().
			Foreground(ColorMuted).
			Strikethrough(true),

		Title: lipgloss.NewStyle().
			Foreground(ColorOrange).
			Bold(true),

		Notice: lipgloss.NewStyle().
			Foreground(ColorYellow),

		Help: lipgloss.NewStyle().
			Foreground(ColorMuted),

		TabActive: lipgloss.NewStyle().
			Foreground(ColorFocus).
			Bold(true).
			Underline(true),

		TabInactive: lipgloss.NewStyle().
			Foreground(ColorBase04),

		SegmentTime: lipgloss.NewStyle().
			Foreground(ColorBase04),

		SegmentActive: lipgloss.NewStyle().
			Foreground(ColorYellow).
			Bold(true),

		SegmentSelected: lipgloss.NewStyle().
			Background(ColorBase02),

		Suggestion: lipgloss.NewStyle().
			Foreground(ColorCyan),

		Focused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorFocus),

		Unfocused: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBase03),
	}
}

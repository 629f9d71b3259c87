package styles

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/ctrack/internal/models"
)

// Theme represents a color scheme for the application
type Theme struct {
	Name string

	// Base colors
	Background    lipgloss.Color
	Foreground    lipgloss.Color
	ForegroundDim lipgloss.Color

	// Accent color
	Primary lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Warning lipgloss.Color
	Error   lipgloss.Color

	// UI element colors
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Selection   lipgloss.Color
}

// TokyoNight is the default color theme
var TokyoNight = Theme{
	Name: "Tokyo Night",

	Background:    lipgloss.Color("#1a1b26"),
	Foreground:    lipgloss.Color("#c0caf5"),
	ForegroundDim: lipgloss.Color("#565f89"),

	Primary: lipgloss.Color("#7aa2f7"),

	Success: lipgloss.Color("#9ece6a"),
	Warning: lipgloss.Color("#e0af68"),
	Error:   lipgloss.Color("#f7768e"),

	Border:      lipgloss.Color("#3b4261"),
	BorderFocus: lipgloss.Color("#7aa2f7"),
	Selection:   lipgloss.Color("#33467c"),
}

// Current holds the active theme
var Current = TokyoNight

// MaxWidth is the maximum content width for the app (classic terminal width)
const MaxWidth = 80

// ContentWidth returns the actual content width to use (min of terminal width and MaxWidth)
func ContentWidth(terminalWidth int) int {
	if terminalWidth > MaxWidth {
		return MaxWidth
	}
	return terminalWidth
}

// CenterView wraps content and centers it horizontally if terminal is wider than MaxWidth
func CenterView(content string, terminalWidth, terminalHeight int) string {
	if terminalWidth <= MaxWidth {
		return content
	}
	return lipgloss.Place(terminalWidth, terminalHeight,
		lipgloss.Center, lipgloss.Top,
		content,
	)
}

// Styles holds the pre-computed styles for the UI
type Styles struct {
	Title      lipgloss.Style
	TitleMuted lipgloss.Style

	// Lists and the platform dropdown
	ListItem     lipgloss.Style
	ListSelected lipgloss.Style
	FilterBar    lipgloss.Style

	Button        lipgloss.Style
	ButtonFocused lipgloss.Style
	ButtonPrimary lipgloss.Style

	Input        lipgloss.Style
	InputFocused lipgloss.Style

	// Derived status badges
	StatusLive       lipgloss.Style
	StatusEndingSoon lipgloss.Style
	StatusCompleted  lipgloss.Style

	// Status line
	Notice lipgloss.Style
	Failed lipgloss.Style

	Help    lipgloss.Style
	HelpKey lipgloss.Style
}

func badge(bg lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(Current.Background).
		Background(bg).
		Padding(0, 1).
		Bold(true)
}

func boxed(border lipgloss.Color) lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// NewStyles creates styles based on the current theme
func NewStyles() *Styles {
	t := Current

	return &Styles{
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		TitleMuted: lipgloss.NewStyle().
			Foreground(t.ForegroundDim),

		ListItem: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 2),
		ListSelected: lipgloss.NewStyle().
			Foreground(t.Primary).
			Background(t.Selection).
			Padding(0, 2).
			Bold(true),
		FilterBar: boxed(t.Border).Padding(0, 1),

		Button:        boxed(t.Border).Foreground(t.Foreground).Padding(0, 2),
		ButtonFocused: boxed(t.BorderFocus).Foreground(t.Primary).Padding(0, 2).Bold(true),
		ButtonPrimary: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Padding(0, 2).
			Bold(true),

		Input:        boxed(t.Border).Foreground(t.Foreground).Padding(0, 1),
		InputFocused: boxed(t.BorderFocus).Foreground(t.Foreground).Padding(0, 1),

		StatusLive:       badge(t.Success),
		StatusEndingSoon: badge(t.Warning),
		StatusCompleted:  badge(t.Error),

		Notice: lipgloss.NewStyle().Foreground(t.Success).Padding(0, 1),
		Failed: lipgloss.NewStyle().Foreground(t.Error).Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.ForegroundDim).
			Padding(1, 2),
		HelpKey: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
	}
}

// Status returns the badge style for a derived campaign status
func (s *Styles) Status(status models.Status) lipgloss.Style {
	switch status {
	case models.StatusEndingSoon:
		return s.StatusEndingSoon
	case models.StatusCompleted:
		return s.StatusCompleted
	}
	return s.StatusLive
}

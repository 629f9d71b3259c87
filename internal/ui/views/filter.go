package views

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/ctrack/internal/models"
	"github.com/tgienger/ctrack/internal/store"
	"github.com/tgienger/ctrack/internal/ui/keys"
	"github.com/tgienger/ctrack/internal/ui/styles"
)

// FilterBar holds the search term and platform filter shared by the
// active and archived lists, so switching lists keeps the filter.
type FilterBar struct {
	search   textinput.Model
	platform models.Platform // "" = all platforms

	// Platform dropdown state
	dropdownOpen bool
	cursor       int // 0 = All Platforms
}

func NewFilterBar() *FilterBar {
	search := textinput.New()
	search.Placeholder = "Search campaigns..."
	search.CharLimit = 100

	return &FilterBar{search: search}
}

func (f *FilterBar) Search() string            { return f.search.Value() }
func (f *FilterBar) Platform() models.Platform { return f.platform }
func (f *FilterBar) DropdownOpen() bool        { return f.dropdownOpen }

// Apply returns the campaigns that pass the current filter
func (f *FilterBar) Apply(list []models.Campaign) []models.Campaign {
	return store.Filter(list, f.search.Value(), f.platform)
}

func (f *FilterBar) FocusSearch() tea.Cmd {
	f.search.Focus()
	return textinput.Blink
}

func (f *FilterBar) BlurSearch() {
	f.search.Blur()
}

// UpdateSearch feeds a key to the search input
func (f *FilterBar) UpdateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.search, cmd = f.search.Update(msg)
	return cmd
}

func (f *FilterBar) OpenDropdown() {
	f.dropdownOpen = true
	f.cursor = 0
	for i, p := range models.Platforms {
		if p == f.platform {
			f.cursor = i + 1
		}
	}
}

// UpdateDropdown handles keys while the dropdown is open and reports whether the filter changed
func (f *FilterBar) UpdateDropdown(msg tea.KeyMsg, km keys.KeyMap) bool {
	switch {
	case key.Matches(msg, km.Back):
		f.dropdownOpen = false

	case key.Matches(msg, km.Up):
		if f.cursor > 0 {
			f.cursor--
		}

	case key.Matches(msg, km.Down):
		if f.cursor < len(models.Platforms) { // +1 for "All Platforms"
			f.cursor++
		}

	case key.Matches(msg, km.Enter):
		if f.cursor == 0 {
			f.platform = ""
		} else {
			f.platform = models.Platforms[f.cursor-1]
		}
		f.dropdownOpen = false
		return true
	}
	return false
}

// Render draws the search box, the platform button and, when open, the dropdown
func (f *FilterBar) Render(s *styles.Styles, focus FocusArea, contentWidth int) string {
	isNarrow := contentWidth < 60

	searchStyle := s.Input
	if focus == FocusSearchInput {
		searchStyle = s.InputFocused
	}
	searchWidth := clamp(contentWidth-8, 10, 30)
	searchBox := searchStyle.Width(searchWidth).Render(f.search.View())

	btnStyle := s.Button
	if focus == FocusPlatformDropdown {
		btnStyle = s.ButtonFocused
	}
	label := "All Platforms"
	if f.platform != "" {
		label = string(f.platform)
	}
	platformBtn := btnStyle.Render(label + " ▼")

	var header string
	if isNarrow {
		header = lipgloss.JoinVertical(lipgloss.Left, searchBox, platformBtn)
	} else {
		header = lipgloss.JoinHorizontal(lipgloss.Center, searchBox, "  ", platformBtn)
	}

	if f.dropdownOpen {
		header += "\n" + f.renderDropdown(s)
	}
	return header
}

func (f *FilterBar) renderDropdown(s *styles.Styles) string {
	var items []string

	allStyle := s.ListItem
	if f.cursor == 0 {
		allStyle = s.ListSelected
	}
	items = append(items, allStyle.Render("All Platforms"))

	for i, p := range models.Platforms {
		itemStyle := s.ListItem
		if f.cursor == i+1 {
			itemStyle = s.ListSelected
		}
		items = append(items, itemStyle.Render(string(p)))
	}

	return s.FilterBar.Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

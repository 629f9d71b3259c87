package views

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/ctrack/internal/models"
	"github.com/tgienger/ctrack/internal/store"
	"github.com/tgienger/ctrack/internal/ui/keys"
	"github.com/tgienger/ctrack/internal/ui/styles"
)

const (
	formName = iota
	formStart
	formEnd
	formPlatforms
	formNotes
	formSave
	formFields
)

// CampaignForm edits the fields of a campaign. It does not touch the
// store; the owning view submits the result.
type CampaignForm struct {
	styles *styles.Styles
	keys   keys.KeyMap

	editingID string // "" = new campaign

	name      textinput.Model
	start     textinput.Model
	end       textinput.Model
	notes     textarea.Model
	platforms []models.Platform

	focusIdx       int // one of the form* constants
	platformCursor int
	err            string
}

// formSubmitted is returned by the form when the user saves
type formSubmitted struct{}

// formCancelled is returned by the form on esc
type formCancelled struct{}

func NewCampaignForm(s *styles.Styles, km keys.KeyMap) *CampaignForm {
	name := textinput.New()
	name.Placeholder = "Campaign name"
	name.CharLimit = 200

	start := textinput.New()
	start.Placeholder = models.DateLayout
	start.CharLimit = len(models.DateLayout)

	end := textinput.New()
	end.Placeholder = models.DateLayout
	end.CharLimit = len(models.DateLayout)

	notes := textarea.New()
	notes.Placeholder = "Notes"
	notes.CharLimit = 5000
	notes.SetWidth(50)
	notes.SetHeight(4)
	notes.ShowLineNumbers = false

	return &CampaignForm{
		styles: s,
		keys:   km,
		name:   name,
		start:  start,
		end:    end,
		notes:  notes,
	}
}

// Reset clears the form for a new campaign
func (f *CampaignForm) Reset() tea.Cmd {
	f.editingID = ""
	f.name.Reset()
	f.start.Reset()
	f.end.Reset()
	f.notes.Reset()
	f.platforms = nil
	f.err = ""
	f.focusIdx = formName
	f.platformCursor = 0
	f.updateFocus()
	return textinput.Blink
}

// Load fills the form from an existing campaign
func (f *CampaignForm) Load(c models.Campaign) tea.Cmd {
	f.Reset()
	f.editingID = c.ID
	f.name.SetValue(c.Name)
	f.start.SetValue(formatDate(c.StartDate))
	f.end.SetValue(formatDate(c.EndDate))
	f.notes.SetValue(c.Notes)
	f.platforms = append([]models.Platform(nil), c.Platforms...)
	return textinput.Blink
}

func (f *CampaignForm) EditingID() string { return f.editingID }

// SetError shows err under the form
func (f *CampaignForm) SetError(err error) {
	var ve *store.ValidationError
	if errors.As(err, &ve) {
		f.err = "Required: " + strings.Join(ve.Fields, ", ")
		return
	}
	f.err = err.Error()
}

func (f *CampaignForm) SetWidth(contentWidth int) {
	f.notes.SetWidth(clamp(contentWidth-10, 20, 50))
}

// Campaign builds a campaign from the form fields. Empty dates are left
// zero so the store reports them as required.
func (f *CampaignForm) Campaign() (models.Campaign, error) {
	start, err := parseDate(f.start.Value())
	if err != nil {
		return models.Campaign{}, fmt.Errorf("start date: %w", err)
	}
	end, err := parseDate(f.end.Value())
	if err != nil {
		return models.Campaign{}, fmt.Errorf("end date: %w", err)
	}

	return models.Campaign{
		Name:      f.name.Value(),
		StartDate: start,
		EndDate:   end,
		Platforms: append([]models.Platform(nil), f.platforms...),
		Notes:     f.notes.Value(),
	}, nil
}

func parseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(models.DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("want %s, got %q", models.DateLayout, s)
	}
	return d, nil
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(models.DateLayout)
}

func (f *CampaignForm) Update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, f.keys.Back):
		return func() tea.Msg { return formCancelled{} }

	case key.Matches(msg, f.keys.Save):
		return func() tea.Msg { return formSubmitted{} }

	case key.Matches(msg, f.keys.Tab):
		f.focusIdx = (f.focusIdx + 1) % formFields
		f.updateFocus()
		return nil

	case msg.String() == "shift+tab":
		f.focusIdx = (f.focusIdx + formFields - 1) % formFields
		f.updateFocus()
		return nil

	case key.Matches(msg, f.keys.Enter):
		switch f.focusIdx {
		case formName, formStart, formEnd:
			f.focusIdx++
			f.updateFocus()
			return nil
		case formPlatforms:
			f.togglePlatform()
			return nil
		case formSave:
			return func() tea.Msg { return formSubmitted{} }
		}
		// enter in notes is a newline

	case msg.String() == " ":
		if f.focusIdx == formPlatforms {
			f.togglePlatform()
			return nil
		}

	case key.Matches(msg, f.keys.Up):
		if f.focusIdx == formPlatforms {
			if f.platformCursor > 0 {
				f.platformCursor--
			}
			return nil
		}

	case key.Matches(msg, f.keys.Down):
		if f.focusIdx == formPlatforms {
			if f.platformCursor < len(models.Platforms)-1 {
				f.platformCursor++
			}
			return nil
		}
	}

	var cmd tea.Cmd
	switch f.focusIdx {
	case formName:
		f.name, cmd = f.name.Update(msg)
	case formStart:
		f.start, cmd = f.start.Update(msg)
	case formEnd:
		f.end, cmd = f.end.Update(msg)
	case formNotes:
		f.notes, cmd = f.notes.Update(msg)
	}
	return cmd
}

func (f *CampaignForm) togglePlatform() {
	f.platforms = models.TogglePlatform(f.platforms, models.Platforms[f.platformCursor])
}

func (f *CampaignForm) updateFocus() {
	f.name.Blur()
	f.start.Blur()
	f.end.Blur()
	f.notes.Blur()

	switch f.focusIdx {
	case formName:
		f.name.Focus()
	case formStart:
		f.start.Focus()
	case formEnd:
		f.end.Focus()
	case formNotes:
		f.notes.Focus()
	}
}

func (f *CampaignForm) View(width, height int) string {
	s := f.styles
	contentWidth := styles.ContentWidth(width)

	formTitle := "New Campaign"
	if f.editingID != "" {
		formTitle = "Edit Campaign"
	}

	inputStyles := make([]lipgloss.Style, formSave)
	for i := range inputStyles {
		inputStyles[i] = s.Input
	}
	btnStyle := s.Button
	if f.focusIdx == formSave {
		btnStyle = s.ButtonFocused
	} else {
		inputStyles[f.focusIdx] = s.InputFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 50)

	rows := []string{
		s.Title.Render(formTitle),
		"",
		"Name:",
		inputStyles[formName].Width(inputWidth).Render(f.name.View()),
		"Start date:",
		inputStyles[formStart].Width(16).Render(f.start.View()),
		"End date:",
		inputStyles[formEnd].Width(16).Render(f.end.View()),
		"Platforms:",
		f.renderPlatforms(inputStyles[formPlatforms], inputWidth),
		"Notes:",
		inputStyles[formNotes].Render(f.notes.View()),
		"",
		btnStyle.Render(" Save "),
	}
	if f.err != "" {
		rows = append(rows, "", s.Failed.Render(f.err))
	}
	rows = append(rows, "",
		s.TitleMuted.Render("Tab: next • ↑↓: platform • Space/↵: toggle • Ctrl+S: save • Esc: cancel"))

	centered := lipgloss.Place(contentWidth, height,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
	return styles.CenterView(centered, width, height)
}

func (f *CampaignForm) renderPlatforms(containerStyle lipgloss.Style, width int) string {
	s := f.styles

	var items []string
	for i, p := range models.Platforms {
		checkbox := "[ ]"
		for _, selected := range f.platforms {
			if selected == p {
				checkbox = "[x]"
				break
			}
		}

		itemText := checkbox + " " + string(p)
		if f.focusIdx == formPlatforms && i == f.platformCursor {
			items = append(items, s.ListSelected.Render(itemText))
		} else {
			items = append(items, s.ListItem.Render(itemText))
		}
	}

	return containerStyle.Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

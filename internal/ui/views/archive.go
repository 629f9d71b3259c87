package views

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/ctrack/internal/export"
	"github.com/tgienger/ctrack/internal/models"
	"github.com/tgienger/ctrack/internal/ui/keys"
	"github.com/tgienger/ctrack/internal/ui/styles"
)

type archivedItem struct {
	campaign models.Campaign
}

func (i archivedItem) Title() string { return i.campaign.Name }
func (i archivedItem) Description() string {
	return fmt.Sprintf("%s → %s  %d notes",
		formatDate(i.campaign.StartDate), formatDate(i.campaign.EndDate), len(i.campaign.InsightNotes))
}
func (i archivedItem) FilterValue() string { return i.campaign.Name }

type archivedDelegate struct {
	styles *styles.Styles
	width  int
}

func (d archivedDelegate) Height() int                               { return 2 }
func (d archivedDelegate) Spacing() int                              { return 1 }
func (d archivedDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d archivedDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	a, ok := item.(archivedItem)
	if !ok {
		return
	}

	width := max(d.width-4, 20)
	lineStyle := d.styles.ListItem
	if index == m.Index() {
		lineStyle = d.styles.ListSelected
	}

	title := lineStyle.Width(width).Render(a.Title())
	desc := lineStyle.Foreground(styles.Current.ForegroundDim).Width(width).Render(a.Description())

	fmt.Fprintf(w, "%s\n%s", title, desc)
}

// ArchiveListView shows archived campaigns and their insight notes
type ArchiveListView struct {
	deps     Deps
	list     list.Model
	delegate *archivedDelegate
	styles   *styles.Styles
	keys     keys.KeyMap
	focus    FocusArea
	width    int
	height   int

	// Detail view of one archived campaign
	viewing          bool
	viewingID        string
	noteCursor       int
	noteInput        textarea.Model
	noteInputFocused bool

	showHelpPopup bool
}

// NewArchiveListView creates the archived campaign list
func NewArchiveListView(deps Deps) *ArchiveListView {
	s := styles.NewStyles()

	delegate := &archivedDelegate{styles: s, width: 80}

	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = "Archived Campaigns"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false) // the shared filter bar does this
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.Title = s.Title

	noteInput := textarea.New()
	noteInput.Placeholder = "Add an insight note..."
	noteInput.CharLimit = 2000
	noteInput.SetWidth(50)
	noteInput.SetHeight(3)
	noteInput.ShowLineNumbers = false

	return &ArchiveListView{
		deps:      deps,
		list:      l,
		delegate:  delegate,
		styles:    s,
		keys:      keys.DefaultKeyMap(),
		focus:     FocusCampaignList,
		noteInput: noteInput,
	}
}

func (v *ArchiveListView) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh re-reads the archived list through the filter
func (v *ArchiveListView) Refresh() {
	campaigns := v.deps.Filter.Apply(v.deps.Store.Archived())
	items := make([]list.Item, len(campaigns))
	for i, c := range campaigns {
		items[i] = archivedItem{campaign: c}
	}
	v.list.SetItems(items)
	v.list.Title = fmt.Sprintf("Archived Campaigns (%d)", len(items))
}

// Selected returns the campaign under the list cursor
func (v *ArchiveListView) Selected() (models.Campaign, bool) {
	item, ok := v.list.SelectedItem().(archivedItem)
	if !ok {
		return models.Campaign{}, false
	}
	return item.campaign, true
}

func (v *ArchiveListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		contentWidth := styles.ContentWidth(msg.Width)
		v.delegate.width = contentWidth
		v.list.SetSize(contentWidth-4, msg.Height-10)
		v.noteInput.SetWidth(clamp(contentWidth-10, 20, 50))
		return v, nil

	case tea.KeyMsg:
		// Handle help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.viewing {
			return v.updateViewing(msg)
		}

		if v.deps.Filter.DropdownOpen() {
			if v.deps.Filter.UpdateDropdown(msg, v.keys) {
				v.Refresh()
				v.list.Select(0)
			}
			return v, nil
		}

		if v.focus == FocusSearchInput {
			switch {
			case key.Matches(msg, v.keys.Back), key.Matches(msg, v.keys.Enter):
				v.deps.Filter.BlurSearch()
				v.focus = FocusCampaignList
				return v, nil
			default:
				cmd := v.deps.Filter.UpdateSearch(msg)
				v.Refresh()
				return v, cmd
			}
		}

		switch {
		case key.Matches(msg, v.keys.Quit):
			return v, tea.Quit
		case key.Matches(msg, v.keys.Back):
			return v, nil
		case key.Matches(msg, v.keys.ToggleArchive):
			return v, func() tea.Msg { return SwitchView{} }
		case key.Matches(msg, v.keys.Search):
			v.focus = FocusSearchInput
			return v, v.deps.Filter.FocusSearch()
		case key.Matches(msg, v.keys.Filter):
			v.deps.Filter.OpenDropdown()
			return v, nil
		case key.Matches(msg, v.keys.Help):
			v.showHelpPopup = true
			return v, nil
		case key.Matches(msg, v.keys.ExportCSV):
			return v, exportCmd(v.deps, export.FormatCSV, v.deps.Store.Archived())
		case key.Matches(msg, v.keys.ExportXLSX):
			return v, exportCmd(v.deps, export.FormatXLSX, v.deps.Store.Archived())
		case key.Matches(msg, v.keys.ExportPDF):
			return v, exportCmd(v.deps, export.FormatPDF, v.deps.Store.Archived())
		case key.Matches(msg, v.keys.Enter):
			if c, ok := v.Selected(); ok {
				v.viewing = true
				v.viewingID = c.ID
				v.noteCursor = 0
			}
			return v, nil
		case key.Matches(msg, v.keys.Delete):
			// d pages the list by default
			return v, nil
		}
	}

	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *ArchiveListView) updateViewing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if v.noteInputFocused {
		switch {
		case key.Matches(msg, v.keys.Back):
			v.noteInputFocused = false
			v.noteInput.Blur()
			return v, nil
		case key.Matches(msg, v.keys.Save):
			return v, v.submitNote()
		default:
			var cmd tea.Cmd
			v.noteInput, cmd = v.noteInput.Update(msg)
			return v, cmd
		}
	}

	c, ok := v.deps.Store.Get(v.viewingID)
	if !ok {
		v.viewing = false
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keys.Back):
		v.viewing = false
		v.Refresh()
		return v, nil
	case key.Matches(msg, v.keys.Up):
		if v.noteCursor > 0 {
			v.noteCursor--
		}
		return v, nil
	case key.Matches(msg, v.keys.Down):
		if v.noteCursor < len(c.InsightNotes)-1 {
			v.noteCursor++
		}
		return v, nil
	case key.Matches(msg, v.keys.Note):
		v.noteInputFocused = true
		v.noteInput.Focus()
		return v, textarea.Blink
	case key.Matches(msg, v.keys.Delete):
		return v, v.deleteNote()
	case key.Matches(msg, v.keys.Quit):
		return v, tea.Quit
	}
	return v, nil
}

// submitNote adds the note input to the viewed campaign
func (v *ArchiveListView) submitNote() tea.Cmd {
	c, err := v.deps.Store.AddInsightNote(v.viewingID, v.noteInput.Value())
	if err != nil {
		v.deps.Logger.Printf("add insight note to %s: %v", v.viewingID, err)
		return notify("Note not added: "+err.Error(), true)
	}

	v.noteInput.Reset()
	v.noteInputFocused = false
	v.noteInput.Blur()
	v.noteCursor = len(c.InsightNotes) - 1
	return notify("Insight note added", false)
}

// deleteNote removes the note under the cursor
func (v *ArchiveListView) deleteNote() tea.Cmd {
	c, err := v.deps.Store.DeleteInsightNote(v.viewingID, v.noteCursor)
	if err != nil {
		v.deps.Logger.Printf("delete insight note %d of %s: %v", v.noteCursor, v.viewingID, err)
		return notify("Note not deleted: "+err.Error(), true)
	}
	if v.noteCursor >= len(c.InsightNotes) {
		v.noteCursor = max(0, len(c.InsightNotes)-1)
	}
	return notify("Insight note deleted", false)
}

func (v *ArchiveListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.viewing {
		return v.renderDetail()
	}

	bar := v.deps.Filter.Render(v.styles, v.focus, styles.ContentWidth(v.width))

	var body string
	if len(v.list.Items()) == 0 {
		body = v.styles.Title.Render(v.list.Title) + "\n\n" +
			v.styles.TitleMuted.Render("No archived campaigns.")
	} else {
		body = v.list.View()
	}

	content := lipgloss.JoinVertical(lipgloss.Left, bar, body, v.renderHelp())
	return styles.CenterView(content, v.width, v.height)
}

func (v *ArchiveListView) renderHelp() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	if contentWidth > 0 && contentWidth < 50 {
		return s.Help.Render(s.HelpKey.Render("?") + " help")
	}
	return s.Help.Render(
		fmt.Sprintf("%s open • %s search • %s platform • %s active • %s help • %s quit",
			s.HelpKey.Render("↵"),
			s.HelpKey.Render("/"),
			s.HelpKey.Render("f"),
			s.HelpKey.Render("v"),
			s.HelpKey.Render("?"),
			s.HelpKey.Render("q"),
		),
	)
}

func (v *ArchiveListView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("↵") + "      open campaign",
		s.HelpKey.Render("/") + "      search",
		s.HelpKey.Render("f") + "      filter by platform",
		s.HelpKey.Render("v") + "      show active",
		s.HelpKey.Render("c") + "      export CSV",
		s.HelpKey.Render("x") + "      export XLSX",
		s.HelpKey.Render("p") + "      export PDF",
		s.HelpKey.Render("q") + "      quit",
		"",
		s.TitleMuted.Render("In a campaign:"),
		s.HelpKey.Render("i") + "      add insight note",
		s.HelpKey.Render("d") + "      delete selected note",
		"",
		s.TitleMuted.Render("Press any key to close"),
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		append([]string{s.Title.Render("Keyboard Shortcuts"), ""}, helpItems...)...,
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		s.FilterBar.Render(content),
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *ArchiveListView) renderDetail() string {
	c, ok := v.deps.Store.Get(v.viewingID)
	if !ok {
		return ""
	}

	s := v.styles
	labelStyle := s.TitleMuted
	textWidth := clamp(styles.ContentWidth(v.width)-10, 20, 70)
	text := lipgloss.NewStyle().Width(textWidth)

	platforms := models.JoinPlatforms(c.Platforms)
	if platforms == "" {
		platforms = s.TitleMuted.Render("None")
	}
	notes := c.Notes
	if notes == "" {
		notes = s.TitleMuted.Render("No notes")
	}
	archived := ""
	if c.ArchivedAt != nil {
		archived = c.ArchivedAt.Local().Format("Jan 2, 2006 3:04 PM")
	}

	var insights string
	if len(c.InsightNotes) == 0 {
		insights = s.TitleMuted.Render("No insight notes yet")
	} else {
		var lines []string
		for i, n := range c.InsightNotes {
			lineStyle := s.ListItem
			if i == v.noteCursor && !v.noteInputFocused {
				lineStyle = s.ListSelected
			}
			lines = append(lines, lineStyle.Width(textWidth).Render(
				lipgloss.JoinVertical(lipgloss.Left,
					s.TitleMuted.Render(n.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM")),
					n.Content,
				),
			))
		}
		insights = lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	inputStyle := s.Input
	var helpText string
	if v.noteInputFocused {
		inputStyle = s.InputFocused
		helpText = fmt.Sprintf("%s save • %s cancel",
			s.HelpKey.Render("ctrl+s"),
			s.HelpKey.Render("esc"),
		)
	} else {
		helpText = fmt.Sprintf("%s add note • %s delete note • %s back",
			s.HelpKey.Render("i"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("esc"),
		)
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.MarginBottom(1).Render(c.Name),
		labelStyle.Render("Dates"),
		formatDate(c.StartDate)+" → "+formatDate(c.EndDate),
		"",
		labelStyle.Render("Platforms"),
		text.Render(platforms),
		"",
		labelStyle.Render("Notes"),
		text.Render(strings.TrimSpace(notes)),
		"",
		labelStyle.Render("Archived"),
		archived,
		"",
		labelStyle.Render("Insight Notes"),
		insights,
		"",
		inputStyle.Render(v.noteInput.View()),
		"",
		s.Help.Render(helpText),
	)

	padded := lipgloss.NewStyle().Padding(1, 2).Render(content)
	return styles.CenterView(padded, v.width, v.height)
}

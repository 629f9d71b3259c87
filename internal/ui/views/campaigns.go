package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/tgienger/ctrack/internal/export"
	"github.com/tgienger/ctrack/internal/models"
	"github.com/tgienger/ctrack/internal/ui/keys"
	"github.com/tgienger/ctrack/internal/ui/styles"
)

// CampaignListView shows the active campaigns
type CampaignListView struct {
	deps      Deps
	campaigns []models.Campaign // filtered
	styles    *styles.Styles
	keys      keys.KeyMap

	width  int
	height int

	// UI state
	focus   FocusArea
	cursor  int
	scrollY int

	// Create/edit form
	editing bool
	form    *CampaignForm

	// Archive confirmation
	confirmingArchive bool
	archiveTargetID   string
	archiveTargetName string

	// Help popup (shown with ?)
	showHelpPopup bool
}

// NewCampaignListView creates the active campaign list
func NewCampaignListView(deps Deps) *CampaignListView {
	s := styles.NewStyles()
	km := keys.DefaultKeyMap()

	return &CampaignListView{
		deps:   deps,
		styles: s,
		keys:   km,
		focus:  FocusCampaignList,
		form:   NewCampaignForm(s, km),
	}
}

func (v *CampaignListView) Init() tea.Cmd {
	v.Refresh()
	return nil
}

// Refresh re-reads the active list through the filter
func (v *CampaignListView) Refresh() {
	v.campaigns = v.deps.Filter.Apply(v.deps.Store.Active())
	if v.cursor >= len(v.campaigns) {
		v.cursor = max(0, len(v.campaigns)-1)
	}
	v.ensureVisible()
}

// Selected returns the campaign under the cursor
func (v *CampaignListView) Selected() (models.Campaign, bool) {
	if len(v.campaigns) == 0 {
		return models.Campaign{}, false
	}
	return v.campaigns[v.cursor], true
}

func (v *CampaignListView) selectID(id string) {
	for i, c := range v.campaigns {
		if c.ID == id {
			v.cursor = i
			v.ensureVisible()
			return
		}
	}
}

func (v *CampaignListView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width = msg.Width
		v.height = msg.Height
		v.form.SetWidth(styles.ContentWidth(v.width))
		v.ensureVisible()
		return v, nil

	case formCancelled:
		v.editing = false
		return v, nil

	case formSubmitted:
		return v, v.saveForm()

	case tea.KeyMsg:
		// Handle help popup first - any key closes it
		if v.showHelpPopup {
			v.showHelpPopup = false
			return v, nil
		}

		if v.confirmingArchive {
			return v.updateConfirmArchive(msg)
		}

		if v.editing {
			return v, v.form.Update(msg)
		}

		if v.deps.Filter.DropdownOpen() {
			if v.deps.Filter.UpdateDropdown(msg, v.keys) {
				v.cursor = 0
				v.scrollY = 0
				v.Refresh()
			}
			if !v.deps.Filter.DropdownOpen() {
				v.focus = FocusCampaignList
			}
			return v, nil
		}

		return v.updateNormal(msg)
	}

	return v, nil
}

func (v *CampaignListView) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Don't process hotkeys while typing in the search box
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

	case key.Matches(msg, v.keys.Tab):
		return v, v.cycleFocus(1)

	case msg.String() == "shift+tab":
		return v, v.cycleFocus(-1)

	case key.Matches(msg, v.keys.Up):
		if v.focus == FocusCampaignList && v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Down):
		if v.focus == FocusCampaignList && v.cursor < len(v.campaigns)-1 {
			v.cursor++
			v.ensureVisible()
		}
		return v, nil

	case key.Matches(msg, v.keys.Enter):
		switch v.focus {
		case FocusPlatformDropdown:
			v.deps.Filter.OpenDropdown()
		case FocusCampaignList:
			if c, ok := v.Selected(); ok {
				v.editing = true
				return v, v.form.Load(c)
			}
		}
		return v, nil

	case key.Matches(msg, v.keys.Edit):
		if c, ok := v.Selected(); ok && v.focus == FocusCampaignList {
			v.editing = true
			return v, v.form.Load(c)
		}
		return v, nil

	case key.Matches(msg, v.keys.New):
		v.editing = true
		return v, v.form.Reset()

	case key.Matches(msg, v.keys.Archive):
		if c, ok := v.Selected(); ok && v.focus == FocusCampaignList {
			v.confirmingArchive = true
			v.archiveTargetID = c.ID
			v.archiveTargetName = c.Name
		}
		return v, nil

	case key.Matches(msg, v.keys.ToggleArchive):
		return v, func() tea.Msg { return SwitchView{} }

	case key.Matches(msg, v.keys.Search):
		v.focus = FocusSearchInput
		return v, v.deps.Filter.FocusSearch()

	case key.Matches(msg, v.keys.Filter):
		v.focus = FocusPlatformDropdown
		v.deps.Filter.OpenDropdown()
		return v, nil

	case key.Matches(msg, v.keys.ExportCSV):
		return v, exportCmd(v.deps, export.FormatCSV, v.deps.Store.Active())

	case key.Matches(msg, v.keys.ExportXLSX):
		return v, exportCmd(v.deps, export.FormatXLSX, v.deps.Store.Active())

	case key.Matches(msg, v.keys.ExportPDF):
		return v, exportCmd(v.deps, export.FormatPDF, v.deps.Store.Active())

	case key.Matches(msg, v.keys.Help):
		v.showHelpPopup = true
		return v, nil
	}

	return v, nil
}

func (v *CampaignListView) updateConfirmArchive(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		v.confirmingArchive = false
		if _, err := v.deps.Store.Archive(v.archiveTargetID); err != nil {
			v.deps.Logger.Printf("archive %s: %v", v.archiveTargetID, err)
			return v, notify("Archive failed: "+err.Error(), true)
		}
		v.Refresh()
		return v, notify(fmt.Sprintf("Archived %q", v.archiveTargetName), false)
	case "n", "N", "esc":
		v.confirmingArchive = false
		return v, nil
	}
	return v, nil
}

func (v *CampaignListView) saveForm() tea.Cmd {
	c, err := v.form.Campaign()
	if err != nil {
		v.form.SetError(err)
		return nil
	}

	var saved models.Campaign
	if id := v.form.EditingID(); id != "" {
		saved, err = v.deps.Store.Edit(id, c)
	} else {
		saved, err = v.deps.Store.Add(c)
	}
	if err != nil {
		v.form.SetError(err)
		return nil
	}

	v.editing = false
	v.Refresh()
	v.selectID(saved.ID)
	return notify(fmt.Sprintf("Saved %q", saved.Name), false)
}

func (v *CampaignListView) cycleFocus(dir int) tea.Cmd {
	v.deps.Filter.BlurSearch()
	v.focus = FocusArea((int(v.focus) + dir + focusAreas) % focusAreas)
	if v.focus == FocusSearchInput {
		return v.deps.Filter.FocusSearch()
	}
	return nil
}

// visibleItems is how many two-line items fit below the header
func (v *CampaignListView) visibleItems() int {
	availableHeight := max(v.height-12, 3)
	return max(availableHeight/3, 1)
}

func (v *CampaignListView) ensureVisible() {
	visible := v.visibleItems()
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visible {
		v.scrollY = v.cursor - visible + 1
	}
}

func (v *CampaignListView) View() string {
	if v.showHelpPopup {
		return v.renderHelpPopup()
	}

	if v.confirmingArchive {
		return v.renderArchiveConfirm()
	}

	if v.editing {
		return v.form.View(v.width, v.height)
	}

	var b strings.Builder
	b.WriteString(v.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(v.renderCampaignList())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *CampaignListView) renderHeader() string {
	title := v.styles.Title.Render(fmt.Sprintf("Active Campaigns (%d)", len(v.campaigns)))
	bar := v.deps.Filter.Render(v.styles, v.focus, styles.ContentWidth(v.width))
	return lipgloss.JoinVertical(lipgloss.Left, title, bar)
}

func (v *CampaignListView) renderCampaignList() string {
	s := v.styles

	if len(v.campaigns) == 0 {
		if v.deps.Filter.Search() != "" || v.deps.Filter.Platform() != "" {
			return s.TitleMuted.Render("No campaigns match the filter.")
		}
		return s.TitleMuted.Render("No campaigns. Press 'n' to create one.")
	}

	var items []string
	endIdx := min(v.scrollY+v.visibleItems(), len(v.campaigns))
	for i := v.scrollY; i < endIdx; i++ {
		items = append(items, v.renderCampaignItem(v.campaigns[i], i == v.cursor && v.focus == FocusCampaignList))
	}

	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func (v *CampaignListView) renderCampaignItem(c models.Campaign, selected bool) string {
	s := v.styles
	width := max(styles.ContentWidth(v.width)-4, 20)

	status := v.deps.Store.Status(c)
	badge := s.Status(status).Render(status.String())

	platforms := models.JoinPlatforms(c.Platforms)
	if platforms == "" {
		platforms = "no platforms"
	}
	meta := fmt.Sprintf("%s → %s  %s",
		formatDate(c.StartDate), formatDate(c.EndDate), platforms)

	lineStyle := s.ListItem
	if selected {
		lineStyle = s.ListSelected
	}

	title := lineStyle.Width(width).Render(badge + " " + c.Name)
	metaLine := lineStyle.Foreground(styles.Current.ForegroundDim).Width(width).Render(meta)

	return lipgloss.JoinVertical(lipgloss.Left, title, metaLine) + "\n"
}

func (v *CampaignListView) renderHelp() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)
	if contentWidth > 0 && contentWidth < 50 {
		return s.Help.Render(s.HelpKey.Render("?") + " help")
	}
	return s.Help.Render(
		fmt.Sprintf("%s new • %s edit • %s archive • %s search • %s platform • %s archived • %s help • %s quit",
			s.HelpKey.Render("n"),
			s.HelpKey.Render("e"),
			s.HelpKey.Render("a"),
			s.HelpKey.Render("/"),
			s.HelpKey.Render("f"),
			s.HelpKey.Render("v"),
			s.HelpKey.Render("?"),
			s.HelpKey.Render("q"),
		),
	)
}

func (v *CampaignListView) renderHelpPopup() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	helpItems := []string{
		s.HelpKey.Render("n") + "      new campaign",
		s.HelpKey.Render("e/↵") + "    edit campaign",
		s.HelpKey.Render("a") + "      archive campaign",
		s.HelpKey.Render("/") + "      search",
		s.HelpKey.Render("f") + "      filter by platform",
		s.HelpKey.Render("v") + "      show archived",
		s.HelpKey.Render("c") + "      export CSV",
		s.HelpKey.Render("x") + "      export XLSX",
		s.HelpKey.Render("p") + "      export PDF",
		s.HelpKey.Render("q") + "      quit",
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

func (v *CampaignListView) renderArchiveConfirm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	content := lipgloss.JoinVertical(lipgloss.Center,
		s.Title.Foreground(styles.Current.Warning).Render("Archive Campaign?"),
		"",
		s.TitleMuted.Render(v.archiveTargetName),
		"",
		lipgloss.JoinHorizontal(lipgloss.Center,
			s.ButtonPrimary.Render(" Y - Yes "),
			"  ",
			s.Button.Render(" N - No "),
		),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		content,
	)
	return styles.CenterView(centered, v.width, v.height)
}

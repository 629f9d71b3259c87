package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/ctrack/internal/ui/styles"
	"github.com/tgienger/ctrack/internal/ui/views"
)

// Currently active view
type View int

const (
	ViewActive View = iota
	ViewArchived
)

func (v View) String() string {
	if v == ViewArchived {
		return "archived"
	}
	return "active"
}

const lastViewSetting = "last_view"

// Settings persists small UI preferences between runs
type Settings interface {
	GetSetting(key string) (string, error)
	SetSetting(key, value string) error
}

// MemorySettings keeps settings for the lifetime of the process only
type MemorySettings map[string]string

func (m MemorySettings) GetSetting(key string) (string, error) { return m[key], nil }

func (m MemorySettings) SetSetting(key, value string) error {
	m[key] = value
	return nil
}

type App struct {
	deps         views.Deps
	settings     Settings
	styles       *styles.Styles
	currentView  View
	campaignList *views.CampaignListView
	archiveList  *views.ArchiveListView
	notice       views.Notice
	width        int
	height       int
}

// Creates a new application
func NewApp(deps views.Deps, settings Settings) *App {
	return &App{
		deps:         deps,
		settings:     settings,
		styles:       styles.NewStyles(),
		currentView:  ViewActive,
		campaignList: views.NewCampaignListView(deps),
		archiveList:  views.NewArchiveListView(deps),
	}
}

func (a *App) Init() tea.Cmd {
	// Reopen the list used last time
	last, err := a.settings.GetSetting(lastViewSetting)
	if err != nil {
		a.deps.Logger.Printf("read setting %s: %v", lastViewSetting, err)
	}
	if last == ViewArchived.String() {
		a.currentView = ViewArchived
	}

	return tea.Batch(a.campaignList.Init(), a.archiveList.Init())
}

// CurrentView reports which list is shown
func (a *App) CurrentView() View {
	return a.currentView
}

func (a *App) switchView() tea.Cmd {
	if a.currentView == ViewActive {
		a.currentView = ViewArchived
		a.archiveList.Refresh()
	} else {
		a.currentView = ViewActive
		a.campaignList.Refresh()
	}
	a.notice = views.Notice{}

	if err := a.settings.SetSetting(lastViewSetting, a.currentView.String()); err != nil {
		a.deps.Logger.Printf("save setting %s: %v", lastViewSetting, err)
	}
	return nil
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// Both lists keep their size; one line is left for the status line
		inner := tea.WindowSizeMsg{Width: msg.Width, Height: max(msg.Height-1, 0)}
		a.campaignList.Update(inner)
		a.archiveList.Update(inner)
		return a, nil

	case views.SwitchView:
		return a, a.switchView()

	case views.Notice:
		a.notice = msg
		return a, nil
	}

	var cmd tea.Cmd
	switch a.currentView {
	case ViewActive:
		_, cmd = a.campaignList.Update(msg)
	case ViewArchived:
		_, cmd = a.archiveList.Update(msg)
	}

	return a, cmd
}

func (a *App) View() string {
	var content string
	switch a.currentView {
	case ViewArchived:
		content = a.archiveList.View()
	default:
		content = a.campaignList.View()
	}
	return content + "\n" + a.renderStatusLine()
}

func (a *App) renderStatusLine() string {
	if a.notice.Text == "" {
		return ""
	}
	if a.notice.Failed {
		return a.styles.Failed.Render(a.notice.Text)
	}
	return a.styles.Notice.Render(a.notice.Text)
}

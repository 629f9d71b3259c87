package views

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/tgienger/ctrack/internal/export"
	"github.com/tgienger/ctrack/internal/models"
	"github.com/tgienger/ctrack/internal/store"
)

// clamp returns val clamped between minVal and maxVal
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// FocusArea represents which part of the UI has focus
type FocusArea int

const (
	FocusSearchInput FocusArea = iota
	FocusPlatformDropdown
	FocusCampaignList
)

const focusAreas = 3

// Deps are shared by every view
type Deps struct {
	Store     *store.Store
	Filter    *FilterBar
	Logger    *log.Logger
	ExportDir string
}

// SwitchView asks the app to toggle between active and archived campaigns
type SwitchView struct{}

// Notice is shown in the app's status line
type Notice struct {
	Text   string
	Failed bool
}

func notify(text string, failed bool) tea.Cmd {
	return func() tea.Msg { return Notice{Text: text, Failed: failed} }
}

// exportCmd writes campaigns with the exporter for format. The list is
// captured by the caller so the command never touches the store.
func exportCmd(deps Deps, format export.Format, campaigns []models.Campaign) tea.Cmd {
	return func() tea.Msg {
		e, err := export.ForFormat(format)
		if err != nil {
			deps.Logger.Printf("export %s: %v", format, err)
			return Notice{Text: "Export failed: " + err.Error(), Failed: true}
		}
		path, err := export.WriteFile(deps.ExportDir, e, campaigns)
		if err != nil {
			deps.Logger.Printf("export %s: %v", format, err)
			return Notice{Text: "Export failed: " + err.Error(), Failed: true}
		}
		deps.Logger.Printf("exported %d campaigns to %s", len(campaigns), path)
		return Notice{Text: "Exported to " + path}
	}
}

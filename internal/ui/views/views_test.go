package views

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/ctrack/internal/logging"
	"github.com/tgienger/ctrack/internal/models"
	"github.com/tgienger/ctrack/internal/store"
)

var testNow = time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)

func testDeps(t *testing.T) Deps {
	t.Helper()
	s := store.New(store.State{})
	s.SetClock(func() time.Time { return testNow })
	return Deps{
		Store:     s,
		Filter:    NewFilterBar(),
		Logger:    logging.Discard(),
		ExportDir: t.TempDir(),
	}
}

func addCampaign(t *testing.T, deps Deps, name string, platforms ...models.Platform) models.Campaign {
	t.Helper()
	start, _ := time.Parse(models.DateLayout, "2024-01-01")
	end, _ := time.Parse(models.DateLayout, "2024-03-31")
	c, err := deps.Store.Add(models.Campaign{Name: name, StartDate: start, EndDate: end, Platforms: platforms})
	require.NoError(t, err)
	return c
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	enter = tea.KeyMsg{Type: tea.KeyEnter}
	esc   = tea.KeyMsg{Type: tea.KeyEsc}
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	down  = tea.KeyMsg{Type: tea.KeyDown}
	space = tea.KeyMsg{Type: tea.KeySpace}
	save  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

// press sends keys in order and returns the last command
func press(m tea.Model, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

// submit presses ctrl+s and feeds the form's result back to the view
func submit(t *testing.T, m tea.Model) tea.Msg {
	t.Helper()
	cmd := press(m, save)
	require.NotNil(t, cmd)
	_, cmd = m.Update(cmd())
	if cmd == nil {
		return nil
	}
	return cmd()
}

func newListView(t *testing.T, deps Deps) *CampaignListView {
	v := NewCampaignListView(deps)
	v.Init()
	press(v, tea.WindowSizeMsg{Width: 100, Height: 40})
	return v
}

func TestCreateCampaignThroughForm(t *testing.T) {
	deps := testDeps(t)
	v := newListView(t, deps)

	press(v, runes("n"), runes("Q1 Launch"), tab, runes("2024-01-01"), tab, runes("2024-03-31"), tab)
	// Tradedesk, then Meta four rows down
	press(v, space, down, down, down, down, space)

	msg := submit(t, v)
	assert.Equal(t, Notice{Text: `Saved "Q1 Launch"`}, msg)
	assert.False(t, v.editing)

	active := deps.Store.Active()
	require.Len(t, active, 1)
	assert.Equal(t, "Q1 Launch", active[0].Name)
	assert.Equal(t, "2024-03-31", active[0].EndDate.Format(models.DateLayout))
	assert.Equal(t, []models.Platform{models.PlatformTradedesk, models.PlatformMeta}, active[0].Platforms)
	assert.Contains(t, v.View(), "Q1 Launch")
}

func TestFormShowsMissingFields(t *testing.T) {
	deps := testDeps(t)
	v := newListView(t, deps)

	press(v, runes("n"))
	assert.Nil(t, submit(t, v))

	assert.True(t, v.editing)
	assert.Empty(t, deps.Store.Active())
	assert.Contains(t, v.View(), "Required: Name, StartDate, EndDate")
}

func TestFormRejectsBadDate(t *testing.T) {
	deps := testDeps(t)
	v := newListView(t, deps)

	press(v, runes("n"), runes("Q1"), tab, runes("2024-13-01"))
	assert.Nil(t, submit(t, v))
	assert.Contains(t, v.form.err, "start date")
	assert.Empty(t, deps.Store.Active())

	cmd := press(v, esc)
	require.NotNil(t, cmd)
	press(v, cmd())
	assert.False(t, v.editing)
}

func TestEditKeepsIdentity(t *testing.T) {
	deps := testDeps(t)
	c := addCampaign(t, deps, "Q1", models.PlatformMeta)
	v := newListView(t, deps)

	press(v, runes("e"), runes(" revised"), tab, tab, tab, space)
	submit(t, v)

	got, ok := deps.Store.Get(c.ID)
	require.True(t, ok)
	assert.Equal(t, "Q1 revised", got.Name)
	assert.Equal(t, []models.Platform{models.PlatformMeta, models.PlatformTradedesk}, got.Platforms)
}

func TestArchiveAsksFirst(t *testing.T) {
	deps := testDeps(t)
	addCampaign(t, deps, "A")
	b := addCampaign(t, deps, "B")
	v := newListView(t, deps)

	press(v, down, runes("a"))
	assert.True(t, v.confirmingArchive)
	press(v, runes("n"))
	assert.Len(t, deps.Store.Active(), 2)

	cmd := press(v, runes("a"), runes("y"))
	require.NotNil(t, cmd)
	assert.Equal(t, Notice{Text: `Archived "B"`}, cmd())

	require.Len(t, deps.Store.Archived(), 1)
	assert.Equal(t, b.ID, deps.Store.Archived()[0].ID)
	assert.Len(t, v.campaigns, 1)
}

func TestSearchAndPlatformFilter(t *testing.T) {
	deps := testDeps(t)
	addCampaign(t, deps, "Spring Launch", models.PlatformMeta)
	addCampaign(t, deps, "Summer Sale", models.PlatformReddit)
	addCampaign(t, deps, "LAUNCH recap", models.PlatformReddit)
	v := newListView(t, deps)

	press(v, runes("/"), runes("launch"))
	assert.Equal(t, []string{"Spring Launch", "LAUNCH recap"}, campaignNames(v.campaigns))
	press(v, enter)
	assert.Equal(t, FocusCampaignList, v.focus)

	// Reddit is the eighth platform; row 0 is "All Platforms"
	press(v, runes("f"))
	for i := 0; i < 8; i++ {
		press(v, down)
	}
	press(v, enter)
	assert.Equal(t, models.PlatformReddit, deps.Filter.Platform())
	assert.Equal(t, []string{"LAUNCH recap"}, campaignNames(v.campaigns))

	press(v, runes("f"), runes("k"), runes("k"), runes("k"), runes("k"), runes("k"), runes("k"), runes("k"), runes("k"), enter)
	assert.Equal(t, models.Platform(""), deps.Filter.Platform())
	assert.Len(t, v.campaigns, 2)
}

func campaignNames(list []models.Campaign) []string {
	out := []string{}
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestExportKeys(t *testing.T) {
	deps := testDeps(t)
	addCampaign(t, deps, "Q1 Launch", models.PlatformMeta)
	v := newListView(t, deps)

	cmd := press(v, runes("c"))
	require.NotNil(t, cmd)
	path := filepath.Join(deps.ExportDir, "campaigns.csv")
	assert.Equal(t, Notice{Text: "Exported to " + path}, cmd())
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Q1 Launch","2024-01-01","2024-03-31","Meta",""`)

	cmd = press(v, runes("p"))
	require.NotNil(t, cmd)
	notice, ok := cmd().(Notice)
	require.True(t, ok)
	assert.True(t, notice.Failed)
	assert.Contains(t, notice.Text, "unsupported export format")
}

func TestStatusBadges(t *testing.T) {
	deps := testDeps(t)
	start, _ := time.Parse(models.DateLayout, "2024-01-01")
	for name, end := range map[string]string{"soon": "2024-01-15", "done": "2024-01-05", "live": "2024-06-01"} {
		e, _ := time.Parse(models.DateLayout, end)
		_, err := deps.Store.Add(models.Campaign{Name: name, StartDate: start, EndDate: e})
		require.NoError(t, err)
	}
	v := newListView(t, deps)

	out := v.View()
	assert.Contains(t, out, "Ending Soon")
	assert.Contains(t, out, "Completed")
	assert.Contains(t, out, "Live")
}

func TestArchiveViewInsightNotes(t *testing.T) {
	deps := testDeps(t)
	c := addCampaign(t, deps, "Q1")
	_, err := deps.Store.Archive(c.ID)
	require.NoError(t, err)

	v := NewArchiveListView(deps)
	v.Init()
	press(v, tea.WindowSizeMsg{Width: 100, Height: 40})

	press(v, enter)
	require.True(t, v.viewing)

	press(v, runes("i"), runes("CTR doubled"))
	cmd := press(v, save)
	require.NotNil(t, cmd)
	assert.Equal(t, Notice{Text: "Insight note added"}, cmd())

	press(v, runes("i"), runes("second"), save)
	got, _ := deps.Store.Get(c.ID)
	require.Len(t, got.InsightNotes, 2)
	assert.Equal(t, 1, v.noteCursor)
	assert.Contains(t, v.View(), "CTR doubled")

	// blank notes are refused
	cmd = press(v, runes("i"), save)
	notice := cmd().(Notice)
	assert.True(t, notice.Failed)
	press(v, esc)

	press(v, runes("k"), runes("d"))
	got, _ = deps.Store.Get(c.ID)
	require.Len(t, got.InsightNotes, 1)
	assert.Equal(t, "second", got.InsightNotes[0].Content)

	press(v, esc)
	assert.False(t, v.viewing)
}

func TestArchiveViewFollowsSharedFilter(t *testing.T) {
	deps := testDeps(t)
	for _, name := range []string{"Spring", "Summer"} {
		c := addCampaign(t, deps, name)
		_, err := deps.Store.Archive(c.ID)
		require.NoError(t, err)
	}

	v := NewArchiveListView(deps)
	v.Init()
	assert.Len(t, v.list.Items(), 2)

	press(v, runes("/"), runes("sum"), enter)
	require.Len(t, v.list.Items(), 1)
	c, ok := v.Selected()
	require.True(t, ok)
	assert.Equal(t, "Summer", c.Name)
}

func TestListKeysWorkAfterPlatformDropdown(t *testing.T) {
	deps := testDeps(t)
	addCampaign(t, deps, "Q1", models.PlatformMeta)
	v := newListView(t, deps)

	press(v, runes("f"), enter)
	assert.Equal(t, FocusCampaignList, v.focus)
	press(v, runes("a"))
	assert.True(t, v.confirmingArchive)
	press(v, esc)

	press(v, runes("f"), esc)
	assert.False(t, deps.Filter.DropdownOpen())
	assert.Equal(t, FocusCampaignList, v.focus)
	press(v, runes("e"))
	assert.True(t, v.editing)
}

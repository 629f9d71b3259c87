package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/ctrack/internal/models"
	"github.com/tgienger/ctrack/internal/store"
)

func openTestDB(t *testing.T) *DB {
	t.Helper()
	database, err := New(filepath.Join(t.TempDir(), "data", "ctrack.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func seededStore(t *testing.T) *store.Store {
	t.Helper()
	now := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	s := store.New(store.State{})
	s.SetClock(func() time.Time { return now })

	start, _ := time.Parse(models.DateLayout, "2024-01-01")
	end, _ := time.Parse(models.DateLayout, "2024-03-31")

	a, err := s.Add(models.Campaign{Name: "Q1 Launch", StartDate: start, EndDate: end,
		Platforms: []models.Platform{models.PlatformReddit, models.PlatformMeta}, Notes: "test"})
	require.NoError(t, err)
	_, err = s.Add(models.Campaign{Name: "Q2", StartDate: start, EndDate: end})
	require.NoError(t, err)
	_, err = s.Archive(a.ID)
	require.NoError(t, err)
	_, err = s.AddInsightNote(a.ID, "CTR doubled on Reddit")
	require.NoError(t, err)
	_, err = s.AddInsightNote(a.ID, "Meta underdelivered")
	require.NoError(t, err)
	return s
}

func TestSaveLoadRoundTrip(t *testing.T) {
	database := openTestDB(t)
	s := seededStore(t)

	require.NoError(t, database.SaveState(s.State()))

	loaded, err := database.LoadState()
	require.NoError(t, err)
	assert.Equal(t, s.State(), loaded)

	count, err := database.CampaignCount()
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSaveReplacesPreviousSnapshot(t *testing.T) {
	database := openTestDB(t)
	s := seededStore(t)
	require.NoError(t, database.SaveState(s.State()))

	require.NoError(t, database.SaveState(store.State{}))

	loaded, err := database.LoadState()
	require.NoError(t, err)
	assert.Empty(t, loaded.Active)
	assert.Empty(t, loaded.Archived)

	notes, err := database.GetInsightNotes("anything")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestLoadEmpty(t *testing.T) {
	database := openTestDB(t)

	loaded, err := database.LoadState()
	require.NoError(t, err)
	assert.Equal(t, store.State{}, loaded)
}

func TestSettings(t *testing.T) {
	database := openTestDB(t)

	v, err := database.GetSetting("view")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, database.SetSetting("view", "archived"))
	require.NoError(t, database.SetSetting("view", "active"))

	v, err = database.GetSetting("view")
	require.NoError(t, err)
	assert.Equal(t, "active", v)
}

func TestArchivedWithoutNotesRoundTrip(t *testing.T) {
	database := openTestDB(t)
	now := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	s := store.New(store.State{})
	s.SetClock(func() time.Time { return now })

	start, _ := time.Parse(models.DateLayout, "2024-01-01")
	end, _ := time.Parse(models.DateLayout, "2024-03-31")
	c, err := s.Add(models.Campaign{Name: "Quiet", StartDate: start, EndDate: end})
	require.NoError(t, err)
	_, err = s.Add(models.Campaign{Name: "Still running", StartDate: start, EndDate: end})
	require.NoError(t, err)
	_, err = s.Archive(c.ID)
	require.NoError(t, err)

	require.NoError(t, database.SaveState(s.State()))
	loaded, err := database.LoadState()
	require.NoError(t, err)
	assert.Equal(t, s.State(), loaded)
}

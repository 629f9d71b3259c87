package export

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tgienger/ctrack/internal/models"
	"github.com/xuri/excelize/v2"
)

func q1Launch(t *testing.T) models.Campaign {
	t.Helper()
	start, err := time.Parse(models.DateLayout, "2024-01-01")
	require.NoError(t, err)
	end, err := time.Parse(models.DateLayout, "2024-03-31")
	require.NoError(t, err)
	return models.Campaign{
		Name:      "Q1 Launch",
		StartDate: start,
		EndDate:   end,
		Platforms: []models.Platform{models.PlatformMeta, models.PlatformReddit},
		Notes:     "test",
	}
}

func TestCSVExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, CSV{}.Export(&buf, []models.Campaign{q1Launch(t)}))

	want := "Name,Start Date,End Date,Platforms,Notes\n" +
		`"Q1 Launch","2024-01-01","2024-03-31","Meta, Reddit","test"`
	assert.Equal(t, want, buf.String())
}

func TestCSVExportMultipleAndEmpty(t *testing.T) {
	second := q1Launch(t)
	second.Name = "Q2"
	second.Platforms = nil
	second.Notes = ""

	var buf bytes.Buffer
	require.NoError(t, CSV{}.Export(&buf, []models.Campaign{q1Launch(t), second}))
	assert.Equal(t, "Name,Start Date,End Date,Platforms,Notes\n"+
		`"Q1 Launch","2024-01-01","2024-03-31","Meta, Reddit","test"`+"\n"+
		`"Q2","2024-01-01","2024-03-31","",""`, buf.String())

	buf.Reset()
	require.NoError(t, CSV{}.Export(&buf, nil))
	assert.Equal(t, "Name,Start Date,End Date,Platforms,Notes\n", buf.String())
}

func TestCSVDoublesEmbeddedQuotes(t *testing.T) {
	c := q1Launch(t)
	c.Name = `The "Big" one, again`

	var buf bytes.Buffer
	require.NoError(t, CSV{}.Export(&buf, []models.Campaign{c}))
	assert.Contains(t, buf.String(), `"The ""Big"" one, again"`)
}

func TestXLSXExport(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, XLSX{}.Export(&buf, []models.Campaign{q1Launch(t)}))

	xl, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer xl.Close()

	rows, err := xl.GetRows(SheetName)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, Header, rows[0])
	assert.Equal(t, []string{"Q1 Launch", "2024-01-01", "2024-03-31", "Meta, Reddit", "test"}, rows[1])
}

func TestPDFUnsupported(t *testing.T) {
	var buf bytes.Buffer
	err := PDF{}.Export(&buf, []models.Campaign{q1Launch(t)})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	assert.Zero(t, buf.Len())
}

func TestForFormat(t *testing.T) {
	e, err := ForFormat("CSV")
	require.NoError(t, err)
	assert.Equal(t, "campaigns.csv", e.Filename())

	e, err = ForFormat(FormatXLSX)
	require.NoError(t, err)
	assert.Equal(t, FormatXLSX, e.Format())

	_, err = ForFormat("docx")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := WriteFile(dir, CSV{}, []models.Campaign{q1Launch(t)})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "campaigns.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Q1 Launch"`)

	_, err = WriteFile(dir, PDF{}, nil)
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, statErr := os.Stat(filepath.Join(dir, "campaigns.pdf"))
	assert.True(t, os.IsNotExist(statErr))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must be cleaned up")
}

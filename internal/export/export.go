package export

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tgienger/ctrack/internal/models"
)

// ErrUnsupportedFormat is returned for formats that have no writer
var ErrUnsupportedFormat = errors.New("unsupported export format")

// Format names an export file format
type Format string

const (
	FormatCSV  Format = "csv"
	FormatXLSX Format = "xlsx"
	FormatPDF  Format = "pdf"
)

// Header is the column order shared by every tabular export
var Header = []string{"Name", "Start Date", "End Date", "Platforms", "Notes"}

// Exporter serializes a campaign list to an external format
type Exporter interface {
	Format() Format
	Filename() string
	Export(w io.Writer, campaigns []models.Campaign) error
}

// ForFormat returns the exporter registered for f
func ForFormat(f Format) (Exporter, error) {
	switch Format(strings.ToLower(string(f))) {
	case FormatCSV:
		return CSV{}, nil
	case FormatXLSX:
		return XLSX{}, nil
	case FormatPDF:
		return PDF{}, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, f)
}

// row returns the display values of c in Header order
func row(c models.Campaign) []string {
	return []string{
		c.Name,
		c.StartDate.Format(models.DateLayout),
		c.EndDate.Format(models.DateLayout),
		models.JoinPlatforms(c.Platforms),
		c.Notes,
	}
}

// WriteFile exports campaigns into dir using e's filename and returns the file path.
// Nothing is written if the exporter fails.
func WriteFile(dir string, e Exporter, campaigns []models.Campaign) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	path := filepath.Join(dir, e.Filename())
	tmp, err := os.CreateTemp(dir, "."+e.Filename()+"-*")
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := e.Export(tmp, campaigns); err != nil {
		tmp.Close()
		return "", fmt.Errorf("export %s: %w", e.Format(), err)
	}
	if err := tmp.Close(); err != nil {
		return "", fmt.Errorf("close export file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return "", fmt.Errorf("move export file: %w", err)
	}
	return path, nil
}

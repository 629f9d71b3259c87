package export

import (
	"io"

	"github.com/tgienger/ctrack/internal/models"
)

// PDF is listed in the UI but has no writer yet
type PDF struct{}

func (PDF) Format() Format   { return FormatPDF }
func (PDF) Filename() string { return "campaigns.pdf" }

func (PDF) Export(io.Writer, []models.Campaign) error {
	return ErrUnsupportedFormat
}

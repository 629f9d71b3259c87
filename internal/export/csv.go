package export

import (
	"bufio"
	"io"
	"strings"

	"github.com/tgienger/ctrack/internal/models"
)

// CSV writes every field double-quoted, lines joined by "\n" with no trailing newline.
// Embedded double quotes are doubled.
type CSV struct{}

func (CSV) Format() Format   { return FormatCSV }
func (CSV) Filename() string { return "campaigns.csv" }

func (CSV) Export(w io.Writer, campaigns []models.Campaign) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(strings.Join(Header, ","))
	bw.WriteString("\n")

	for i, c := range campaigns {
		if i > 0 {
			bw.WriteString("\n")
		}
		for j, field := range row(c) {
			if j > 0 {
				bw.WriteByte(',')
			}
			bw.WriteString(quote(field))
		}
	}
	return bw.Flush()
}

func quote(field string) string {
	return `"` + strings.ReplaceAll(field, `"`, `""`) + `"`
}

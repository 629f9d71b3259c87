package store

import (
	"strings"

	"github.com/tgienger/ctrack/internal/models"
	"golang.org/x/text/cases"
)

// Filter returns, in order, the campaigns whose name contains search
// (case-insensitively) and which target platform. An empty platform matches all.
func Filter(list []models.Campaign, search string, platform models.Platform) []models.Campaign {
	fold := cases.Fold()
	needle := fold.String(search)

	out := make([]models.Campaign, 0, len(list))
	for _, c := range list {
		if !strings.Contains(fold.String(c.Name), needle) {
			continue
		}
		if platform != "" && !c.HasPlatform(platform) {
			continue
		}
		out = append(out, c.Clone())
	}
	return out
}

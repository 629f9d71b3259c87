package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/tgienger/ctrack/internal/models"
)

func names(list []models.Campaign) []string {
	out := []string{}
	for _, c := range list {
		out = append(out, c.Name)
	}
	return out
}

func TestFilter(t *testing.T) {
	list := []models.Campaign{
		{ID: "1", Name: "Spring Launch", Platforms: []models.Platform{models.PlatformMeta}},
		{ID: "2", Name: "Summer Sale", Platforms: []models.Platform{models.PlatformReddit, models.PlatformMeta}},
		{ID: "3", Name: "LAUNCH recap", Platforms: []models.Platform{models.PlatformSnapchat}},
		{ID: "4", Name: "Été Promo"},
	}

	tests := []struct {
		name     string
		search   string
		platform models.Platform
		want     []string
	}{
		{"no filter", "", "", []string{"Spring Launch", "Summer Sale", "LAUNCH recap", "Été Promo"}},
		{"case insensitive", "launch", "", []string{"Spring Launch", "LAUNCH recap"}},
		{"platform only", "", models.PlatformMeta, []string{"Spring Launch", "Summer Sale"}},
		{"both", "launch", models.PlatformMeta, []string{"Spring Launch"}},
		{"unicode folding", "ÉTÉ", "", []string{"Été Promo"}},
		{"no match", "winter", "", []string{}},
		{"platform nobody has", "", models.PlatformTwitter, []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, names(Filter(list, tt.search, tt.platform)))
		})
	}
}

func TestFilterDoesNotAliasInput(t *testing.T) {
	list := []models.Campaign{{Name: "A", Platforms: []models.Platform{models.PlatformMeta}}}
	out := Filter(list, "", "")
	out[0].Platforms[0] = models.PlatformReddit
	out[0].Name = "B"
	assert.Equal(t, "A", list[0].Name)
	assert.Equal(t, models.PlatformMeta, list[0].Platforms[0])
}

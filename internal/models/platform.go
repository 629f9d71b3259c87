package models

import (
	"fmt"
	"strings"
)

// Platform is an advertising channel a campaign can target
type Platform string

const (
	PlatformTradedesk           Platform = "Tradedesk"
	PlatformYouTubeSkippable    Platform = "YouTube Skippable"
	PlatformYouTubeNonSkippable Platform = "YouTube NonSkippable"
	PlatformPaidSearch          Platform = "Paid Search"
	PlatformMeta                Platform = "Meta"
	PlatformLinkedin            Platform = "Linkedin"
	PlatformTwitter             Platform = "Twitter"
	PlatformReddit              Platform = "Reddit"
	PlatformSnapchat            Platform = "Snapchat"
)

// Platforms is the fixed catalog, in display order
var Platforms = []Platform{
	PlatformTradedesk,
	PlatformYouTubeSkippable,
	PlatformYouTubeNonSkippable,
	PlatformPaidSearch,
	PlatformMeta,
	PlatformLinkedin,
	PlatformTwitter,
	PlatformReddit,
	PlatformSnapchat,
}

// ParsePlatform returns the catalog platform matching name (case-insensitive)
func ParsePlatform(name string) (Platform, error) {
	name = strings.TrimSpace(name)
	for _, p := range Platforms {
		if strings.EqualFold(string(p), name) {
			return p, nil
		}
	}
	return "", fmt.Errorf("unknown platform %q", name)
}

// TogglePlatform removes p from set if present, otherwise appends it.
// The input slice is never modified.
func TogglePlatform(set []Platform, p Platform) []Platform {
	out := make([]Platform, 0, len(set)+1)
	found := false
	for _, existing := range set {
		if existing == p {
			found = true
			continue
		}
		out = append(out, existing)
	}
	if !found {
		out = append(out, p)
	}
	return out
}

// JoinPlatforms joins platform names the way they are displayed and exported
func JoinPlatforms(set []Platform) string {
	names := make([]string, len(set))
	for i, p := range set {
		names[i] = string(p)
	}
	return strings.Join(names, ", ")
}

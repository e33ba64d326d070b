package menu

import (
	"strings"

	"github.com/menuplan/menuplan/pkg/models"
)

// Calorie bounds, inclusive.
const (
	MinCalories = 1200
	MaxCalories = 4000
)

// DefaultSettings is the fallback record used by Normalize.
var DefaultSettings = models.Settings{
	Profile:   Balanced,
	Calories:  2300,
	Exclude:   []string{},
	DailyMode: models.DailyOn,
}

// Normalize coerces raw input into valid Settings. It never fails: unknown
// profiles fall back to defaults.Profile, calories are clamped, exclusion terms
// are trimmed and lowercased, and any daily mode other than "on" or "off"
// becomes "on".
func Normalize(raw models.RawSettings, defaults models.Settings) models.Settings {
	profile := raw.Profile
	if !IsProfile(profile) {
		profile = defaults.Profile
	}

	mode := models.DailyMode(raw.DailyMode)
	if mode != models.DailyOn && mode != models.DailyOff {
		mode = models.DailyOn
	}

	return models.Settings{
		Profile:   profile,
		Calories:  min(MaxCalories, max(MinCalories, raw.Calories)),
		Exclude:   normalizeTerms(raw.Exclude),
		DailyMode: mode,
	}
}

// ParseExclude splits a comma-separated exclusion list.
func ParseExclude(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ",")
}

func normalizeTerms(terms []string) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		t = strings.ToLower(strings.TrimSpace(t))
		if t != "" {
			out = append(out, t)
		}
	}
	return out
}

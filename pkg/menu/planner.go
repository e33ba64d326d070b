package menu

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/menuplan/menuplan/pkg/models"
)

// StaticKey is the cache key used when daily mode is off.
const StaticKey = "static"

// DateLayout is the ISO 8601 calendar date format used in cache keys.
const DateLayout = "2006-01-02"

// CacheKey returns the week cache key for s on date ref: StaticKey when daily
// mode is off, "<YYYY-MM-DD>-<profile>" otherwise.
func CacheKey(s models.Settings, ref time.Time) string {
	if s.DailyMode == models.DailyOff {
		return StaticKey
	}
	return ref.Format(DateLayout) + "-" + s.Profile
}

// WeekdayIndex returns the Monday-based index (0..6) of t.
func WeekdayIndex(t time.Time) int {
	return (int(t.Weekday()) + 6) % 7
}

// Planner builds week plans and memoizes them in a Document.
type Planner struct {
	defaults models.Settings
	logger   zerolog.Logger
	hits     int64
	misses   int64
}

// NewPlanner creates a Planner that normalizes against defaults.
func NewPlanner(defaults models.Settings, logger zerolog.Logger) *Planner {
	return &Planner{
		defaults: defaults,
		logger:   logger.With().Str("component", "planner").Logger(),
	}
}

// Generate returns the week plan for raw settings on date ref. A plan already
// cached in doc under the same key is returned as is; otherwise a new plan is
// built and stored in doc.Weeks.
func (p *Planner) Generate(raw models.RawSettings, ref time.Time, doc *models.Document) models.WeekPlan {
	s := Normalize(raw, p.defaults)
	key := CacheKey(s, ref)

	if doc.Weeks == nil {
		doc.Weeks = make(map[string]models.WeekPlan)
	}
	if week, ok := doc.Weeks[key]; ok && ValidWeek(week) {
		p.hits++
		p.logger.Debug().Str("key", key).Msg("week cache hit")
		return week
	}
	p.misses++

	week := BuildWeek(s)
	doc.Weeks[key] = week
	p.logger.Debug().
		Str("key", key).
		Str("profile", s.Profile).
		Int("calories", s.Calories).
		Int("excluded", len(s.Exclude)).
		Msg("week generated")
	return week
}

// Stats reports cache hits and misses seen by this planner and the entries in doc.
func (p *Planner) Stats(doc models.Document) models.CacheStats {
	return models.CacheStats{
		Entries: int64(len(doc.Weeks)),
		Hits:    p.hits,
		Misses:  p.misses,
	}
}

// ValidWeek reports whether week has the seven weekdays in order, each with a
// dish for every meal slot.
func ValidWeek(week models.WeekPlan) bool {
	if len(week) != len(Days) {
		return false
	}
	for i, day := range week {
		if day.Day != Days[i] || len(day.Meals) != len(MealSlots) {
			return false
		}
		for _, slot := range MealSlots {
			if day.Meals[slot] == "" {
				return false
			}
		}
	}
	return true
}

// BuildWeek selects every meal of the week for normalized settings s.
func BuildWeek(s models.Settings) models.WeekPlan {
	pool := Pools[s.Profile]
	week := make(models.WeekPlan, 0, len(Days))
	for dayIdx, day := range Days {
		seed := dayIdx + s.Calories%11
		meals := make(map[string]string, len(MealSlots))
		for _, slot := range MealSlots {
			dish := Pick(pool[slot], seed+len(slot))
			meals[slot] = ApplyExclusions(dish, s.Exclude)
		}
		week = append(week, models.DayPlan{Day: day, Meals: meals})
	}
	return week
}

package menu

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/menuplan/menuplan/pkg/models"
)

func TestPoolsComplete(t *testing.T) {
	for _, profile := range Profiles {
		slots, ok := Pools[profile]
		if !assert.True(t, ok, "missing profile %s", profile) {
			continue
		}
		assert.Len(t, slots, len(MealSlots), "profile %s", profile)
		for _, slot := range MealSlots {
			assert.NotEmpty(t, slots[slot], "profile %s slot %s", profile, slot)
			assert.NotEmpty(t, MealLabels[slot], "label for %s", slot)
		}
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		raw  models.RawSettings
		want models.Settings
	}{
		{
			name: "valid input kept",
			raw:  models.RawSettings{Profile: Vegetarian, Calories: 1800, DailyMode: "off"},
			want: models.Settings{Profile: Vegetarian, Calories: 1800, Exclude: []string{}, DailyMode: models.DailyOff},
		},
		{
			name: "calories below range",
			raw:  models.RawSettings{Profile: Balanced, Calories: 50, DailyMode: "on"},
			want: models.Settings{Profile: Balanced, Calories: MinCalories, Exclude: []string{}, DailyMode: models.DailyOn},
		},
		{
			name: "calories above range",
			raw:  models.RawSettings{Profile: Balanced, Calories: 9999, DailyMode: "on"},
			want: models.Settings{Profile: Balanced, Calories: MaxCalories, Exclude: []string{}, DailyMode: models.DailyOn},
		},
		{
			name: "bounds are inclusive",
			raw:  models.RawSettings{Profile: Quick, Calories: MaxCalories, DailyMode: "on"},
			want: models.Settings{Profile: Quick, Calories: MaxCalories, Exclude: []string{}, DailyMode: models.DailyOn},
		},
		{
			name: "unknown profile falls back",
			raw:  models.RawSettings{Profile: "keto", Calories: 2300, DailyMode: "on"},
			want: models.Settings{Profile: Balanced, Calories: 2300, Exclude: []string{}, DailyMode: models.DailyOn},
		},
		{
			name: "unknown daily mode becomes on",
			raw:  models.RawSettings{Profile: HighProtein, Calories: 2300, DailyMode: "sometimes"},
			want: models.Settings{Profile: HighProtein, Calories: 2300, Exclude: []string{}, DailyMode: models.DailyOn},
		},
		{
			name: "exclude terms trimmed and lowercased",
			raw:  models.RawSettings{Profile: Balanced, Calories: 2300, Exclude: []string{" Лук ", "", "  ", "ГРИБЫ"}, DailyMode: "on"},
			want: models.Settings{Profile: Balanced, Calories: 2300, Exclude: []string{"лук", "грибы"}, DailyMode: models.DailyOn},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.raw, DefaultSettings))
		})
	}
}

func TestNormalizeUsesGivenDefaults(t *testing.T) {
	defaults := DefaultSettings
	defaults.Profile = Quick

	got := Normalize(models.RawSettings{Profile: "paleo", Calories: 2000}, defaults)
	assert.Equal(t, Quick, got.Profile)
}

func TestParseExclude(t *testing.T) {
	assert.Nil(t, ParseExclude(""))
	assert.Equal(t, []string{"лук", " грибы"}, ParseExclude("лук, грибы"))
}

func TestPick(t *testing.T) {
	pool := []string{"a", "b", "c"}
	assert.Equal(t, "a", Pick(pool, 0))
	assert.Equal(t, "c", Pick(pool, 2))
	assert.Equal(t, "b", Pick(pool, 4))
	assert.Equal(t, Pick(pool, 7), Pick(pool, 7))
	assert.Equal(t, 30, Pick([]int{10, 20, 30}, 5))
}

func TestPickNegativeSeed(t *testing.T) {
	pool := []string{"a", "b", "c"}
	assert.Equal(t, "c", Pick(pool, -1))
	assert.Equal(t, "a", Pick(pool, -3))
	assert.Equal(t, "b", Pick(pool, -5))
}

func TestApplyExclusions(t *testing.T) {
	dish := "Курица в духовке + салат"

	assert.Equal(t, dish, ApplyExclusions(dish, nil))
	assert.Equal(t, dish, ApplyExclusions(dish, []string{"грибы"}))
	assert.Equal(t, FilteredDish, ApplyExclusions(dish, []string{"грибы", "курица"}))
	assert.Equal(t, FilteredDish, ApplyExclusions(dish, []string{"салат"}))
}

func TestApplyExclusionsIgnoresCase(t *testing.T) {
	dish := "Курица в духовке + салат"

	assert.Equal(t, FilteredDish, ApplyExclusions(dish, []string{"КУРИЦА"}))
	assert.Equal(t, FilteredDish, ApplyExclusions(dish, []string{"Салат"}))
	assert.Equal(t, dish, ApplyExclusions(dish, []string{""}))
}

// Substring matching over-matches short terms. Kept intentionally; a "сыр"
// exclusion also drops cottage-cheese pancakes.
func TestApplyExclusionsSubstringMatch(t *testing.T) {
	assert.Equal(t, FilteredDish, ApplyExclusions("Сырники без сахара", []string{"сыр"}))
	assert.Equal(t, FilteredDish, ApplyExclusions("Куриная грудка с рисом и овощами", []string{"рис"}))
}

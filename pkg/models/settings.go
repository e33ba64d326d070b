package models

// DailyMode controls whether the weekly plan is regenerated per calendar date.
type DailyMode string

const (
	DailyOn  DailyMode = "on"
	DailyOff DailyMode = "off"
)

// Settings is a normalized planner configuration.
type Settings struct {
	Profile   string    `json:"profile" yaml:"profile"`
	Calories  int       `json:"calories" yaml:"calories"`
	Exclude   []string  `json:"exclude" yaml:"exclude"`
	DailyMode DailyMode `json:"daily_mode" yaml:"daily_mode"`
}

// RawSettings is user input before normalization. Any field may be out of range.
type RawSettings struct {
	Profile   string
	Calories  int
	Exclude   []string
	DailyMode string
}

package models

// DayPlan holds the selected dish for every meal slot of one weekday.
type DayPlan struct {
	Day   string            `json:"day"`
	Meals map[string]string `json:"meals"`
}

// WeekPlan is the seven day plans of a week, Monday first.
type WeekPlan []DayPlan

// Document is the persisted planner state.
type Document struct {
	Settings *Settings           `json:"settings,omitempty"`
	Weeks    map[string]WeekPlan `json:"weeks"`
}

// NewDocument returns an empty document with an initialized week cache.
func NewDocument() Document {
	return Document{Weeks: make(map[string]WeekPlan)}
}

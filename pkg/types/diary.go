// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DateFormat is the civil-date layout used throughout the tracker: in file
// formats, on the CLI, and as the diary map key.
const DateFormat = "2006-01-02"

// TimestampFormat is the layout for log entry timestamps in logs.txt.
const TimestampFormat = "2006-01-02T15:04:05"

// LogEntry records one consumption event: a catalog food and how many
// servings of it were eaten.
type LogEntry struct {
	// FoodID references a catalog entry. The reference is not enforced;
	// entries whose food has since been removed render as "Unknown".
	FoodID string `json:"food_id" yaml:"food_id"`

	// Servings is the quantity consumed, in the food's serving units.
	Servings float64 `json:"servings" yaml:"servings"`

	// LoggedAt is the wall-clock time the entry was recorded.
	LoggedAt time.Time `json:"logged_at" yaml:"logged_at"`
}

// DayLog holds the ordered consumption entries for a single date.
type DayLog struct {
	// Date is the civil date in DateFormat.
	Date string `json:"date" yaml:"date"`

	// Entries are kept in insertion order; the diary addresses them by index.
	Entries []LogEntry `json:"entries" yaml:"entries"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package diary maintains the per-date consumption log persisted to a
// pipe-delimited text file, one entry per line.
package diary

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/diet-tracker/pkg/types"
)

// ErrNoEntry is returned when an entry index does not exist for a date.
var ErrNoEntry = errors.New("no such log entry")

// Repository holds the consumption diary and its backing file.
type Repository struct {
	path string
	days map[string]*types.DayLog
	log  *zap.SugaredLogger

	// now is the timestamp source for new entries; tests override it.
	now func() time.Time
}

// Open creates a repository backed by the given file and loads it if the
// file exists. A missing file is not an error; the diary starts empty.
func Open(path string, log *zap.SugaredLogger) (*Repository, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	r := &Repository{
		path: path,
		days: make(map[string]*types.DayLog),
		log:  log,
		now:  time.Now,
	}
	if _, err := os.Stat(path); err == nil {
		if err := r.Load(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Day returns the log for the given civil date, or nil when nothing has
// been logged for it.
func (r *Repository) Day(date string) *types.DayLog {
	return r.days[date]
}

// Dates returns every date with at least one entry, sorted ascending.
func (r *Repository) Dates() []string {
	out := make([]string, 0, len(r.days))
	for d := range r.days {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Append records a consumption entry for the date and returns it.
func (r *Repository) Append(date, foodID string, servings float64) types.LogEntry {
	day, ok := r.days[date]
	if !ok {
		day = &types.DayLog{Date: date}
		r.days[date] = day
	}
	entry := types.LogEntry{FoodID: foodID, Servings: servings, LoggedAt: r.now()}
	day.Entries = append(day.Entries, entry)
	return entry
}

// RemoveAt deletes the entry at index (0-based) for the date and returns it.
func (r *Repository) RemoveAt(date string, index int) (types.LogEntry, error) {
	day := r.days[date]
	if day == nil || index < 0 || index >= len(day.Entries) {
		return types.LogEntry{}, fmt.Errorf("removing entry %d on %s: %w", index, date, ErrNoEntry)
	}
	entry := day.Entries[index]
	day.Entries = append(day.Entries[:index], day.Entries[index+1:]...)
	return entry, nil
}

// InsertAt restores an entry at index for the date. An index at or past the
// end appends. Used by undo to return a removed entry to its original slot.
func (r *Repository) InsertAt(date string, index int, entry types.LogEntry) {
	day, ok := r.days[date]
	if !ok {
		day = &types.DayLog{Date: date}
		r.days[date] = day
	}
	if index < 0 {
		index = 0
	}
	if index >= len(day.Entries) {
		day.Entries = append(day.Entries, entry)
		return
	}
	day.Entries = append(day.Entries[:index],
		append([]types.LogEntry{entry}, day.Entries[index:]...)...)
}

// RemoveLast deletes the most recent entry for the given food on the date
// and returns whether one was found. Used by undo of an append.
func (r *Repository) RemoveLast(date, foodID string) bool {
	day := r.days[date]
	if day == nil {
		return false
	}
	for i := len(day.Entries) - 1; i >= 0; i-- {
		if day.Entries[i].FoodID == foodID {
			day.Entries = append(day.Entries[:i], day.Entries[i+1:]...)
			return true
		}
	}
	return false
}

// TotalCalories sums calories for the date using lookup to resolve food
// calorie values. Entries whose food cannot be resolved contribute nothing.
func (r *Repository) TotalCalories(date string, lookup func(id string) *types.Food) float64 {
	day := r.days[date]
	if day == nil {
		return 0
	}
	var total float64
	for _, e := range day.Entries {
		if f := lookup(e.FoodID); f != nil {
			total += f.Calories * e.Servings
		}
	}
	return total
}

// Save writes the diary to the backing file sorted by date, preserving
// entry order within each day. The file is written to a temp path and
// renamed into place.
func (r *Repository) Save() error {
	tmp := r.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating diary file: %w", err)
	}

	w := bufio.NewWriter(file)
	for _, date := range r.Dates() {
		for _, e := range r.days[date].Entries {
			line := fmt.Sprintf("%s|%s|%s|%s\n",
				date, e.FoodID,
				strconv.FormatFloat(e.Servings, 'f', -1, 64),
				e.LoggedAt.Format(types.TimestampFormat))
			if _, err := w.WriteString(line); err != nil {
				file.Close()
				os.Remove(tmp)
				return fmt.Errorf("writing diary: %w", err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("flushing diary: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing diary file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing diary file: %w", err)
	}
	return nil
}

// Load replaces the in-memory diary with the contents of the backing file.
// Malformed lines are skipped.
func (r *Repository) Load() error {
	file, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("opening diary file: %w", err)
	}
	defer file.Close()

	r.days = make(map[string]*types.DayLog)

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		date, entry, err := decodeEntry(line, r.now)
		if err != nil {
			r.log.Debugw("skipping malformed diary line", "line", lineNo, "err", err)
			continue
		}
		day, ok := r.days[date]
		if !ok {
			day = &types.DayLog{Date: date}
			r.days[date] = day
		}
		day.Entries = append(day.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading diary file: %w", err)
	}
	return nil
}

// decodeEntry parses one diary line: date|food_id|servings|timestamp.
// An unparseable timestamp falls back to the current time rather than
// dropping the entry.
func decodeEntry(line string, now func() time.Time) (string, types.LogEntry, error) {
	parts := strings.Split(line, "|")
	if len(parts) != 4 {
		return "", types.LogEntry{}, fmt.Errorf("want 4 fields, got %d", len(parts))
	}
	if _, err := time.Parse(types.DateFormat, parts[0]); err != nil {
		return "", types.LogEntry{}, fmt.Errorf("invalid date %q: %w", parts[0], err)
	}
	servings, err := strconv.ParseFloat(parts[2], 64)
	if err != nil {
		return "", types.LogEntry{}, fmt.Errorf("invalid servings %q: %w", parts[2], err)
	}
	loggedAt, err := time.ParseInLocation(types.TimestampFormat, parts[3], time.Local)
	if err != nil {
		loggedAt = now()
	}
	return parts[0], types.LogEntry{FoodID: parts[1], Servings: servings, LoggedAt: loggedAt}, nil
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profile maintains the single user profile persisted to a
// pipe-delimited text file: one PROFILE header line followed by one DAILY
// line per weight/activity snapshot.
package profile

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pdiddy/diet-tracker/pkg/types"
)

// ErrNoProfile is returned when an operation requires a profile and none exists.
var ErrNoProfile = errors.New("no user profile")

// Repository holds the user profile and its backing file.
type Repository struct {
	path    string
	profile *types.Profile
	log     *zap.SugaredLogger
}

// Open creates a repository backed by the given file and loads it if the
// file exists. A missing file is not an error; the profile starts unset.
func Open(path string, log *zap.SugaredLogger) (*Repository, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	r := &Repository{path: path, log: log}
	if _, err := os.Stat(path); err == nil {
		if err := r.Load(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Get returns the profile, or nil when none has been created.
func (r *Repository) Get() *types.Profile {
	return r.profile
}

// Set replaces the profile.
func (r *Repository) Set(p types.Profile) {
	r.profile = &p
}

// SetSnapshot adds or replaces the snapshot for its date.
func (r *Repository) SetSnapshot(s types.DailySnapshot) error {
	if r.profile == nil {
		return ErrNoProfile
	}
	r.profile.SetSnapshot(s)
	return nil
}

// Save writes the profile to the backing file. With no profile set the
// file is written empty. The file is written to a temp path and renamed
// into place.
func (r *Repository) Save() error {
	tmp := r.path + ".tmp"
	file, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("creating profile file: %w", err)
	}

	w := bufio.NewWriter(file)
	if p := r.profile; p != nil {
		header := fmt.Sprintf("PROFILE|%s|%s|%s|%s\n",
			encodeGender(p.Gender),
			strconv.FormatFloat(p.HeightCm, 'f', -1, 64),
			p.BirthDate.Format(types.DateFormat),
			p.Method)
		if _, err := w.WriteString(header); err != nil {
			file.Close()
			os.Remove(tmp)
			return fmt.Errorf("writing profile: %w", err)
		}
		for _, s := range p.Snapshots {
			line := fmt.Sprintf("DAILY|%s|%s|%s\n",
				s.Date,
				strconv.FormatFloat(s.WeightKg, 'f', -1, 64),
				encodeActivity(s.Activity))
			if _, err := w.WriteString(line); err != nil {
				file.Close()
				os.Remove(tmp)
				return fmt.Errorf("writing profile: %w", err)
			}
		}
	}
	if err := w.Flush(); err != nil {
		file.Close()
		os.Remove(tmp)
		return fmt.Errorf("flushing profile: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing profile file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replacing profile file: %w", err)
	}
	return nil
}

// Load replaces the in-memory profile with the contents of the backing
// file. DAILY lines before the PROFILE header and malformed lines are
// skipped.
func (r *Repository) Load() error {
	file, err := os.Open(r.path)
	if err != nil {
		return fmt.Errorf("opening profile file: %w", err)
	}
	defer file.Close()

	var loaded *types.Profile

	scanner := bufio.NewScanner(file)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		parts := strings.Split(line, "|")

		switch parts[0] {
		case "PROFILE":
			if len(parts) != 5 {
				r.log.Debugw("skipping malformed profile header", "line", lineNo)
				continue
			}
			height, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				r.log.Debugw("skipping profile header with bad height", "line", lineNo, "err", err)
				continue
			}
			birth, err := time.Parse(types.DateFormat, parts[3])
			if err != nil {
				r.log.Debugw("skipping profile header with bad birth date", "line", lineNo, "err", err)
				continue
			}
			loaded = &types.Profile{
				Gender:    decodeGender(parts[1]),
				HeightCm:  height,
				BirthDate: birth,
				Method:    parts[4],
			}

		case "DAILY":
			if len(parts) != 4 || loaded == nil {
				r.log.Debugw("skipping orphan or malformed snapshot line", "line", lineNo)
				continue
			}
			if _, err := time.Parse(types.DateFormat, parts[1]); err != nil {
				r.log.Debugw("skipping snapshot with bad date", "line", lineNo, "err", err)
				continue
			}
			weight, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				r.log.Debugw("skipping snapshot with bad weight", "line", lineNo, "err", err)
				continue
			}
			loaded.SetSnapshot(types.DailySnapshot{
				Date:     parts[1],
				WeightKg: weight,
				Activity: decodeActivity(parts[3]),
			})

		default:
			r.log.Debugw("skipping unknown profile record", "line", lineNo, "kind", parts[0])
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading profile file: %w", err)
	}

	r.profile = loaded
	return nil
}

func encodeGender(g types.Gender) string {
	switch g {
	case types.GenderMale:
		return "M"
	case types.GenderFemale:
		return "F"
	default:
		return "O"
	}
}

func decodeGender(s string) types.Gender {
	switch s {
	case "M":
		return types.GenderMale
	case "F":
		return types.GenderFemale
	default:
		return types.GenderOther
	}
}

func encodeActivity(a types.ActivityLevel) string {
	switch a {
	case types.ActivityLight:
		return "L"
	case types.ActivityModerate:
		return "M"
	case types.ActivityVery:
		return "V"
	case types.ActivityExtreme:
		return "E"
	default:
		return "S"
	}
}

func decodeActivity(s string) types.ActivityLevel {
	switch s {
	case "L":
		return types.ActivityLight
	case "M":
		return types.ActivityModerate
	case "V":
		return types.ActivityVery
	case "E":
		return types.ActivityExtreme
	default:
		return types.ActivitySedentary
	}
}

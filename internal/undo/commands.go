// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package undo

import (
	"fmt"

	"github.com/pdiddy/diet-tracker/internal/catalog"
	"github.com/pdiddy/diet-tracker/internal/diary"
	"github.com/pdiddy/diet-tracker/internal/profile"
	"github.com/pdiddy/diet-tracker/pkg/types"
)

// AddFood inserts a food into the catalog; revert removes it.
type AddFood struct {
	Catalog *catalog.Repository
	Food    types.Food
}

func (c *AddFood) Apply() error {
	return c.Catalog.Add(c.Food)
}

func (c *AddFood) Revert() error {
	c.Catalog.Remove(c.Food.ID)
	return nil
}

func (c *AddFood) Description() string {
	return fmt.Sprintf("add food %q", c.Food.Name)
}

// UpdateFood replaces a catalog entry; revert restores the previous value,
// captured at first Apply.
type UpdateFood struct {
	Catalog *catalog.Repository
	Food    types.Food

	previous *types.Food
}

func (c *UpdateFood) Apply() error {
	if c.previous == nil {
		if prev := c.Catalog.Get(c.Food.ID); prev != nil {
			copied := *prev
			c.previous = &copied
		}
	}
	return c.Catalog.Update(c.Food)
}

func (c *UpdateFood) Revert() error {
	if c.previous == nil {
		c.Catalog.Remove(c.Food.ID)
		return nil
	}
	return c.Catalog.Update(*c.previous)
}

func (c *UpdateFood) Description() string {
	return fmt.Sprintf("update food %q", c.Food.Name)
}

// AppendLogEntry records a consumption entry; revert removes the most
// recent entry for the same food and date.
type AppendLogEntry struct {
	Diary    *diary.Repository
	Date     string
	FoodID   string
	Servings float64
}

func (c *AppendLogEntry) Apply() error {
	c.Diary.Append(c.Date, c.FoodID, c.Servings)
	return nil
}

func (c *AppendLogEntry) Revert() error {
	if !c.Diary.RemoveLast(c.Date, c.FoodID) {
		return fmt.Errorf("no entry for %s on %s to remove", c.FoodID, c.Date)
	}
	return nil
}

func (c *AppendLogEntry) Description() string {
	return fmt.Sprintf("log %g servings of %s on %s", c.Servings, c.FoodID, c.Date)
}

// RemoveLogEntry deletes the entry at Index for the date; revert reinserts
// it at its original position.
type RemoveLogEntry struct {
	Diary *diary.Repository
	Date  string
	Index int

	removed *types.LogEntry
}

func (c *RemoveLogEntry) Apply() error {
	entry, err := c.Diary.RemoveAt(c.Date, c.Index)
	if err != nil {
		return err
	}
	c.removed = &entry
	return nil
}

func (c *RemoveLogEntry) Revert() error {
	if c.removed == nil {
		return fmt.Errorf("no removed entry to restore")
	}
	c.Diary.InsertAt(c.Date, c.Index, *c.removed)
	return nil
}

func (c *RemoveLogEntry) Description() string {
	if c.removed != nil {
		return fmt.Sprintf("remove %g servings of %s on %s", c.removed.Servings, c.removed.FoodID, c.Date)
	}
	return fmt.Sprintf("remove log entry %d on %s", c.Index+1, c.Date)
}

// SetProfile replaces the user profile; revert restores the previous one,
// captured at first Apply. Reverting a first-time profile creation leaves
// the profile in place, since the repository cannot return to "unset".
type SetProfile struct {
	Profiles *profile.Repository
	Profile  types.Profile

	previous *types.Profile
	captured bool
}

func (c *SetProfile) Apply() error {
	if !c.captured {
		if prev := c.Profiles.Get(); prev != nil {
			copied := *prev
			copied.Snapshots = append([]types.DailySnapshot(nil), prev.Snapshots...)
			c.previous = &copied
		}
		c.captured = true
	}
	c.Profiles.Set(c.Profile)
	return nil
}

func (c *SetProfile) Revert() error {
	if c.previous != nil {
		c.Profiles.Set(*c.previous)
	}
	return nil
}

func (c *SetProfile) Description() string {
	return "update user profile"
}

// SetSnapshot adds or replaces the day's weight/activity snapshot; revert
// restores the previous snapshot or removes it when the day had none.
type SetSnapshot struct {
	Profiles *profile.Repository
	Snapshot types.DailySnapshot

	previous *types.DailySnapshot
	captured bool
}

func (c *SetSnapshot) Apply() error {
	p := c.Profiles.Get()
	if p == nil {
		return profile.ErrNoProfile
	}
	if !c.captured {
		if prev := p.Snapshot(c.Snapshot.Date); prev != nil {
			copied := *prev
			c.previous = &copied
		}
		c.captured = true
	}
	p.SetSnapshot(c.Snapshot)
	return nil
}

func (c *SetSnapshot) Revert() error {
	p := c.Profiles.Get()
	if p == nil {
		return profile.ErrNoProfile
	}
	if c.previous != nil {
		p.SetSnapshot(*c.previous)
	} else {
		p.RemoveSnapshot(c.Snapshot.Date)
	}
	return nil
}

func (c *SetSnapshot) Description() string {
	return fmt.Sprintf("update daily data for %s", c.Snapshot.Date)
}

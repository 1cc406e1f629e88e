// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package menu implements the interactive numbered-menu session: a
// synchronous loop over one reader and writer, dispatching to the
// repositories through the undo stack.
package menu

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pdiddy/diet-tracker/internal/catalog"
	"github.com/pdiddy/diet-tracker/internal/diary"
	"github.com/pdiddy/diet-tracker/internal/energy"
	"github.com/pdiddy/diet-tracker/internal/profile"
	"github.com/pdiddy/diet-tracker/internal/undo"
	"github.com/pdiddy/diet-tracker/pkg/types"
)

// Session holds the state of one interactive run: the repositories, the
// undo stack, and the working date all operations apply to.
type Session struct {
	Catalog  *catalog.Repository
	Diary    *diary.Repository
	Profiles *profile.Repository
	Energy   *energy.Registry
	Undo     *undo.Stack

	// Date is the working civil date; log, stats, and snapshot operations
	// target it. Starts at today.
	Date string

	in  *bufio.Scanner
	out io.Writer
	now func() time.Time
}

// New builds a session reading prompts from in and writing to out.
func New(cat *catalog.Repository, d *diary.Repository, prof *profile.Repository,
	reg *energy.Registry, stack *undo.Stack, in io.Reader, out io.Writer) *Session {

	s := &Session{
		Catalog:  cat,
		Diary:    d,
		Profiles: prof,
		Energy:   reg,
		Undo:     stack,
		in:       bufio.NewScanner(in),
		out:      out,
		now:      time.Now,
	}
	s.Date = s.now().Format(types.DateFormat)
	return s
}

// Run executes the main menu loop until the user exits or input ends.
// Data is saved on exit either way.
func (s *Session) Run() error {
	fmt.Fprintln(s.out, "Welcome to diet-tracker!")

	if s.Catalog.Len() == 0 {
		n := s.Catalog.Seed()
		fmt.Fprintf(s.out, "Initialized food catalog with %d starter foods.\n", n)
		if err := s.Catalog.Save(); err != nil {
			fmt.Fprintf(s.out, "Warning: could not save seeded catalog: %v\n", err)
		}
	}

	if s.Profiles.Get() == nil {
		fmt.Fprintln(s.out, "No user profile found. Let's create one!")
		if !s.createProfile() {
			// Input ended mid-creation; save what we have and stop.
			return s.saveAll()
		}
	}

	for {
		fmt.Fprintln(s.out, "\n------ Main Menu ------")
		fmt.Fprintf(s.out, "Current date: %s\n", s.Date)
		fmt.Fprintln(s.out, "1. Manage Foods")
		fmt.Fprintln(s.out, "2. View Foods")
		fmt.Fprintln(s.out, "3. Log Food Consumption")
		fmt.Fprintln(s.out, "4. View Food Log")
		fmt.Fprintln(s.out, "5. Manage Profile")
		fmt.Fprintln(s.out, "6. View Statistics")
		fmt.Fprintln(s.out, "7. Change Current Date")
		fmt.Fprintln(s.out, "8. Save Data")
		fmt.Fprintln(s.out, "9. Undo Last Action")
		fmt.Fprintln(s.out, "10. Redo")
		fmt.Fprintln(s.out, "11. Exit")

		choice, ok := s.promptChoice("Enter your choice (1-11): ", 11)
		if !ok {
			return s.saveAll()
		}

		switch choice {
		case 1:
			s.manageFoods()
		case 2:
			s.viewFoods()
		case 3:
			s.logFood()
		case 4:
			s.viewLog()
		case 5:
			s.manageProfile()
		case 6:
			s.viewStats()
		case 7:
			s.changeDate()
		case 8:
			s.saveData()
		case 9:
			s.undoLast()
		case 10:
			s.redoLast()
		case 11:
			s.saveData()
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
	}
}

// changeDate sets the working date from user input; "today" resets it.
func (s *Session) changeDate() {
	fmt.Fprintln(s.out, "\n------ Change Current Date ------")
	fmt.Fprintf(s.out, "Current date: %s\n", s.Date)

	for {
		input, ok := s.readLine("Enter new date (YYYY-MM-DD) or 'today': ")
		if !ok {
			return
		}
		if strings.EqualFold(input, "today") {
			s.Date = s.now().Format(types.DateFormat)
			fmt.Fprintf(s.out, "Date set to today: %s\n", s.Date)
			return
		}
		if _, err := time.Parse(types.DateFormat, input); err != nil {
			fmt.Fprintln(s.out, "Invalid date format. Please use YYYY-MM-DD.")
			continue
		}
		s.Date = input
		fmt.Fprintf(s.out, "Date changed to: %s\n", s.Date)
		return
	}
}

// saveData persists every repository, reporting each outcome.
func (s *Session) saveData() {
	fmt.Fprintln(s.out, "Saving data...")
	if err := s.Catalog.Save(); err != nil {
		fmt.Fprintf(s.out, "Error saving food data: %v\n", err)
	} else {
		fmt.Fprintln(s.out, "Food data saved.")
	}
	if err := s.Diary.Save(); err != nil {
		fmt.Fprintf(s.out, "Error saving log data: %v\n", err)
	} else {
		fmt.Fprintln(s.out, "Log data saved.")
	}
	if err := s.Profiles.Save(); err != nil {
		fmt.Fprintf(s.out, "Error saving profile data: %v\n", err)
	} else {
		fmt.Fprintln(s.out, "Profile data saved.")
	}
}

// saveAll persists everything and returns the first error. Used on
// unexpected end of input.
func (s *Session) saveAll() error {
	if err := s.Catalog.Save(); err != nil {
		return err
	}
	if err := s.Diary.Save(); err != nil {
		return err
	}
	return s.Profiles.Save()
}

func (s *Session) undoLast() {
	if !s.Undo.CanUndo() {
		fmt.Fprintln(s.out, "No commands to undo.")
		return
	}
	cmd, err := s.Undo.Undo()
	if err != nil {
		fmt.Fprintf(s.out, "Error undoing command: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Undid: %s\n", cmd.Description())
}

func (s *Session) redoLast() {
	if !s.Undo.CanRedo() {
		fmt.Fprintln(s.out, "No commands to redo.")
		return
	}
	cmd, err := s.Undo.Redo()
	if err != nil {
		fmt.Fprintf(s.out, "Error redoing command: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Redid: %s\n", cmd.Description())
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package undo implements a bounded undo/redo stack over reversible
// commands. Every mutation in the interactive session goes through a
// Command so it can be reverted and re-applied.
package undo

import (
	"errors"

	"go.uber.org/zap"
)

// Sentinel errors for empty stacks.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)

// Command is a reversible operation. Apply performs it; Revert restores the
// state Apply observed. A command is only Reverted after a successful Apply
// and only re-Applied after a successful Revert.
type Command interface {
	Apply() error
	Revert() error
	Description() string
}

// Stack tracks executed commands up to a fixed depth. Executing a new
// command clears the redo side; exceeding the depth evicts the oldest
// undoable command.
type Stack struct {
	depth int
	done  []Command
	redo  []Command
	log   *zap.SugaredLogger
}

// NewStack returns a stack retaining at most depth commands. Non-positive
// depths fall back to 100.
func NewStack(depth int, log *zap.SugaredLogger) *Stack {
	if depth <= 0 {
		depth = 100
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Stack{depth: depth, log: log}
}

// Do applies the command and, on success, pushes it for undo. The redo
// stack is cleared: a fresh mutation invalidates any redoable history.
func (s *Stack) Do(cmd Command) error {
	if err := cmd.Apply(); err != nil {
		return err
	}
	s.log.Debugw("command applied", "description", cmd.Description())

	s.done = append(s.done, cmd)
	if len(s.done) > s.depth {
		s.done = s.done[1:]
	}
	s.redo = nil
	return nil
}

// Undo reverts the most recent command and moves it to the redo stack.
func (s *Stack) Undo() (Command, error) {
	if len(s.done) == 0 {
		return nil, ErrNothingToUndo
	}
	cmd := s.done[len(s.done)-1]
	if err := cmd.Revert(); err != nil {
		return nil, err
	}
	s.log.Debugw("command reverted", "description", cmd.Description())

	s.done = s.done[:len(s.done)-1]
	s.redo = append(s.redo, cmd)
	return cmd, nil
}

// Redo re-applies the most recently undone command and moves it back to
// the undo stack.
func (s *Stack) Redo() (Command, error) {
	if len(s.redo) == 0 {
		return nil, ErrNothingToRedo
	}
	cmd := s.redo[len(s.redo)-1]
	if err := cmd.Apply(); err != nil {
		return nil, err
	}
	s.log.Debugw("command re-applied", "description", cmd.Description())

	s.redo = s.redo[:len(s.redo)-1]
	s.done = append(s.done, cmd)
	return cmd, nil
}

// CanUndo reports whether an undoable command exists.
func (s *Stack) CanUndo() bool { return len(s.done) > 0 }

// CanRedo reports whether a redoable command exists.
func (s *Stack) CanRedo() bool { return len(s.redo) > 0 }

// Len returns the number of undoable commands.
func (s *Stack) Len() int { return len(s.done) }

// History returns the descriptions of undoable commands, oldest first.
func (s *Stack) History() []string {
	out := make([]string, len(s.done))
	for i, cmd := range s.done {
		out[i] = cmd.Description()
	}
	return out
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package menu

import (
	"fmt"
	"strconv"
	"strings"
)

// readLine prints the prompt and returns the next trimmed input line.
// ok is false when input has ended.
func (s *Session) readLine(prompt string) (line string, ok bool) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(s.in.Text()), true
}

// promptChoice re-prompts until the user enters an integer in [1, max].
// ok is false when input has ended.
func (s *Session) promptChoice(prompt string, max int) (choice int, ok bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > max {
			fmt.Fprintf(s.out, "Invalid choice. Please enter a number between 1 and %d.\n", max)
			continue
		}
		return n, true
	}
}

// promptFloat re-prompts until the user enters a number accepted by valid.
func (s *Session) promptFloat(prompt, invalidMsg string, valid func(float64) bool) (v float64, ok bool) {
	for {
		line, ok := s.readLine(prompt)
		if !ok {
			return 0, false
		}
		f, err := strconv.ParseFloat(line, 64)
		if err != nil || !valid(f) {
			fmt.Fprintln(s.out, invalidMsg)
			continue
		}
		return f, true
	}
}

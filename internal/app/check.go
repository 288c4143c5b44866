package app

import (
	"fmt"
	"unicode/utf8"
)

// Violation describes a stored event that breaks a collection invariant
type Violation struct {
	Index   int
	EventID string
	Problem string
}

func (v Violation) String() string {
	return fmt.Sprintf("#%d (id %q): %s", v.Index, v.EventID, v.Problem)
}

// CheckEvents reports every invariant the stored collection breaks:
// invalid dates, over-length fields, and duplicate dates or ids.
func CheckEvents(events []Event) []Violation {
	var violations []Violation
	seenDates := make(map[string]int)
	seenIDs := make(map[string]int)

	for i, e := range events {
		add := func(format string, args ...any) {
			violations = append(violations, Violation{Index: i, EventID: e.ID, Problem: fmt.Sprintf(format, args...)})
		}

		if e.ID == "" {
			add("missing id")
		} else if first, ok := seenIDs[e.ID]; ok {
			add("duplicate id, first used by #%d", first)
		} else {
			seenIDs[e.ID] = i
		}

		if !ValidDate(e.Date) {
			add("invalid date %q", e.Date)
		} else if first, ok := seenDates[e.Date]; ok {
			add("date %s already used by #%d", e.Date, first)
		} else {
			seenDates[e.Date] = i
		}

		if n := utf8.RuneCountInString(e.Title); n > MaxTitleLen {
			add("title has %d characters (max %d)", n, MaxTitleLen)
		}
		if n := utf8.RuneCountInString(e.Text); n > MaxTextLen {
			add("text has %d characters (max %d)", n, MaxTextLen)
		}
	}
	return violations
}

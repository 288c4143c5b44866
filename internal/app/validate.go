package app

import (
	"regexp"
	"time"
)

const (
	dateLayout  = "2006-01-02"
	MaxTitleLen = 30
	MaxTextLen  = 200

	minYear = 1
)

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
// The pattern and the calendar parse must both pass, and year 0 is out of
// range.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	t, err := time.Parse(dateLayout, s)
	return err == nil && t.Year() >= minYear
}

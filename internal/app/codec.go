package app

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const recordSeparator = "|"

// DecodeRecord parses a date|title|text string. Only the first two
// separators count; the text keeps any further "|" verbatim.
func DecodeRecord(s string) (Record, error) {
	parts := strings.SplitN(s, recordSeparator, 3)
	if len(parts) != 3 {
		return Record{}, ErrMalformed
	}
	return Record{
		Date:  trimField(parts[0]),
		Title: trimField(parts[1]),
		Text:  trimField(parts[2]),
	}, nil
}

// trimField strips surrounding whitespace, counting the ASCII file, group,
// record and unit separators (U+001C..U+001F) as whitespace too.
func trimField(s string) string {
	return strings.TrimFunc(s, isFieldSpace)
}

func isFieldSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Encode returns the date|title|text form of the record
func (r Record) Encode() string {
	return r.Date + recordSeparator + r.Title + recordSeparator + r.Text
}

// Validate checks the date, then the title and text lengths
func (r Record) Validate() error {
	if !ValidDate(r.Date) {
		return ErrInvalidDate
	}
	if utf8.RuneCountInString(r.Title) > MaxTitleLen {
		return ErrTitleTooLong
	}
	if utf8.RuneCountInString(r.Text) > MaxTextLen {
		return ErrTextTooLong
	}
	return nil
}

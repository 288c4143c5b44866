package app

import (
	"errors"
	"net/http"
)

// Error messages returned in {"error": ...} bodies
const (
	ErrMsgInvalidData    = "Invalid data format"
	ErrMsgInvalidDate    = "Invalid date format"
	ErrMsgTitleTooLong   = "Title too long (max 30)"
	ErrMsgTextTooLong    = "Text too long (max 200)"
	ErrMsgDateTaken      = "Event already exists for this date"
	ErrMsgNotFound       = "Event not found"
	ErrMsgInvalidFormat  = "Invalid format"
	ErrMsgInternalServer = "Internal server error"
)

var (
	ErrMalformed    = errors.New("record must have the form date|title|text")
	ErrInvalidDate  = errors.New("invalid date")
	ErrTitleTooLong = errors.New("title too long")
	ErrTextTooLong  = errors.New("text too long")
	ErrDateTaken    = errors.New("date already in use")
	ErrNotFound     = errors.New("event not found")
)

// httpError maps a service error to a status code and client message.
// Anything unknown is reported as an internal error.
func httpError(err error) (int, string) {
	switch {
	case errors.Is(err, ErrMalformed):
		return http.StatusBadRequest, ErrMsgInvalidData
	case errors.Is(err, ErrInvalidDate):
		return http.StatusBadRequest, ErrMsgInvalidDate
	case errors.Is(err, ErrTitleTooLong):
		return http.StatusBadRequest, ErrMsgTitleTooLong
	case errors.Is(err, ErrTextTooLong):
		return http.StatusBadRequest, ErrMsgTextTooLong
	case errors.Is(err, ErrDateTaken):
		return http.StatusConflict, ErrMsgDateTaken
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound, ErrMsgNotFound
	default:
		return http.StatusInternalServerError, ErrMsgInternalServer
	}
}

package app

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/emersion/go-ical"
)

// Export formats
const (
	FormatICS  = "ics"
	FormatCSV  = "csv"
	FormatJSON = "json"
)

// HandleDownload exports the whole calendar as ICS, CSV or JSON.
// Query param: format
func (s *Server) HandleDownload(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")

	var contentType string
	switch format {
	case FormatICS:
		contentType = "text/calendar; charset=utf-8"
	case FormatCSV:
		contentType = "text/csv; charset=utf-8"
	case FormatJSON:
		contentType = "application/json; charset=utf-8"
	default:
		writeError(w, http.StatusBadRequest, ErrMsgInvalidFormat)
		return
	}

	events, err := s.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	var buf bytes.Buffer
	switch format {
	case FormatICS:
		err = GenerateICS(&buf, s.cfg.ICSDomain, events, time.Now().UTC())
	case FormatCSV:
		err = GenerateCSV(&buf, events)
	case FormatJSON:
		err = GenerateJSON(&buf, events)
	}
	if err != nil {
		writeServiceError(w, r, fmt.Errorf("export %s: %w", format, err))
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=calendar.%s", format))
	writeCacheable(w, r, contentType, buf.Bytes())
}

// GenerateICS writes the events as an iCalendar with one all-day VEVENT each.
// stamp is used for DTSTAMP.
func GenerateICS(w io.Writer, domain string, events []Event, stamp time.Time) error {
	cal := ical.NewCalendar()
	cal.Props.SetText(ical.PropVersion, "2.0")
	cal.Props.SetText(ical.PropProductID, ICSProductID)
	cal.Props.SetText(ical.PropCalendarScale, "GREGORIAN")

	for _, e := range events {
		day, err := time.Parse(dateLayout, e.Date)
		if err != nil {
			continue
		}

		event := ical.NewEvent()
		event.Props.SetText(ical.PropUID, e.ID+"@"+domain)
		event.Props.SetDateTime(ical.PropDateTimeStamp, stamp)
		event.Props.SetDate(ical.PropDateTimeStart, day)
		event.Props.SetDate(ical.PropDateTimeEnd, day.AddDate(0, 0, 1))
		event.Props.SetText(ical.PropSummary, e.Title)
		if e.Text != "" {
			event.Props.SetText(ical.PropDescription, e.Text)
		}
		cal.Children = append(cal.Children, event.Component)
	}

	return ical.NewEncoder(w).Encode(cal)
}

// GenerateCSV writes a date,title,text row per event
func GenerateCSV(w io.Writer, events []Event) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"date", "title", "text"}); err != nil {
		return err
	}
	for _, e := range events {
		if err := cw.Write([]string{e.Date, e.Title, e.Text}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// GenerateJSON writes {"events": [...]} including ids
func GenerateJSON(w io.Writer, events []Event) error {
	return json.NewEncoder(w).Encode(map[string][]Event{"events": events})
}

package app

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strings"
)

// Route paths
const (
	ItemsPath    = "/api/v1/calendar/items"
	DownloadPath = "/api/v1/calendar/download"
)

// Server exposes the calendar service over HTTP
type Server struct {
	svc *Service
	cfg Config
}

// NewServer returns a server for svc
func NewServer(svc *Service, cfg Config) *Server {
	return &Server{svc: svc, cfg: cfg}
}

// Routes returns the HTTP handler with all routes and the access log
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST "+ItemsPath, s.CreateEvent)
	mux.HandleFunc("GET "+ItemsPath, s.ListEvents)
	mux.HandleFunc("GET "+ItemsPath+"/{id}", s.ReadEvent)
	mux.HandleFunc("PUT "+ItemsPath+"/{id}", s.UpdateEvent)
	mux.HandleFunc("DELETE "+ItemsPath+"/{id}", s.DeleteEvent)
	mux.HandleFunc("GET "+DownloadPath, s.HandleDownload)
	return AccessLog(mux)
}

// CreateEvent adds a new event from a date|title|text body
func (s *Server) CreateEvent(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.readRecord(w, r)
	if !ok {
		return
	}

	id, err := s.svc.Create(r.Context(), rec)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// ListEvents returns every event as an encoded record, in storage order
func (s *Server) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := s.svc.List(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	records := make([]string, 0, len(events))
	for _, e := range events {
		records = append(records, e.Record().Encode())
	}

	payload, err := json.Marshal(records)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeCacheable(w, r, "application/json", append(payload, '\n'))
}

// ReadEvent returns a single event as an encoded record
func (s *Server) ReadEvent(w http.ResponseWriter, r *http.Request) {
	event, err := s.svc.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, event.Record().Encode())
}

// UpdateEvent replaces an event's date, title and text
func (s *Server) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	rec, ok := s.readRecord(w, r)
	if !ok {
		return
	}

	if err := s.svc.Update(r.Context(), r.PathValue("id"), rec); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// DeleteEvent removes an event
func (s *Server) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Delete(r.Context(), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "success"})
}

// readRecord reads and decodes the raw request body. On failure it writes
// the 400 response and returns false.
func (s *Server) readRecord(w http.ResponseWriter, r *http.Request) (Record, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, s.cfg.MaxBodyBytes))
	if err != nil {
		slog.WarnContext(r.Context(), "error reading request body", "error", err)
		writeError(w, http.StatusBadRequest, ErrMsgInvalidData)
		return Record{}, false
	}

	rec, err := DecodeRecord(strings.ToValidUTF8(string(body), "\uFFFD"))
	if err != nil {
		writeServiceError(w, r, err)
		return Record{}, false
	}
	return rec, true
}

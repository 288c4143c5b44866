package app

import (
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// writeJSON encodes v as the response body with the given status
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("error encoding response", "error", err)
	}
}

// writeError writes an {"error": msg} body
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeServiceError maps err to a response, logging anything unexpected
func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status, msg := httpError(err)
	if status == http.StatusInternalServerError {
		slog.ErrorContext(r.Context(), "calendar request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
	}
	writeError(w, status, msg)
}

// contentETag returns a strong ETag for a response payload
func contentETag(payload []byte) string {
	sum := blake2b.Sum256(payload)
	return `"` + hex.EncodeToString(sum[:16]) + `"`
}

// writeCacheable writes payload with an ETag, or 304 when the client
// already holds the same representation
func writeCacheable(w http.ResponseWriter, r *http.Request, contentType string, payload []byte) {
	etag := contentETag(payload)
	w.Header().Set("ETag", etag)
	if etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", contentType)
	if _, err := w.Write(payload); err != nil {
		slog.Error("error writing response", "error", err)
	}
}

// etagMatches applies the weak comparison used for If-None-Match: "*" or
// any listed tag equal to etag once a W/ prefix is dropped.
func etagMatches(header, etag string) bool {
	for _, tag := range strings.Split(header, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "*" || strings.TrimPrefix(tag, "W/") == etag {
			return true
		}
	}
	return false
}

package http

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"tally/internal/core"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// decodeJSON parses the request body into v, rejecting unknown fields.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}

// parseDateRange reads the optional startDate/endDate query parameters
// (YYYY-MM-DD). Both must be present for a range; a lone bound is an error,
// as is a malformed date or an inverted range.
func parseDateRange(r *http.Request) (*core.DateRange, error) {
	startStr := strings.TrimSpace(r.URL.Query().Get("startDate"))
	endStr := strings.TrimSpace(r.URL.Query().Get("endDate"))

	if startStr == "" && endStr == "" {
		return nil, nil
	}
	if startStr == "" || endStr == "" {
		return nil, core.ErrInvalidDateRange
	}

	start, err := time.Parse("2006-01-02", startStr)
	if err != nil {
		return nil, core.ErrInvalidDateRange
	}
	end, err := time.Parse("2006-01-02", endStr)
	if err != nil {
		return nil, core.ErrInvalidDateRange
	}

	rng, err := core.NewDateRange(start.UTC(), end.UTC())
	if err != nil {
		return nil, err
	}
	return &rng, nil
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/TimonStadelmann/polymarket-analyzer/internal/domain"
)

// listResponse is the success envelope for every aggregation endpoint:
// {success, count, filters?, data}.
type listResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
	Filters any  `json:"filters,omitempty"`
	Data    any  `json:"data"`
}

// writeJSON marshals v as JSON and writes it to the response with the given
// HTTP status code. If marshaling fails, it falls back to a plain-text 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"success":false,"error":"internal server error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	w.Write(data)
}

// writeError sends a {success:false, error} response.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}

// writeList sends the standard list envelope with count set to len(data).
func writeList[T any](w http.ResponseWriter, filters any, data []T) {
	// JSON null for an empty result set confuses the dashboard; always emit
	// an array.
	if data == nil {
		data = []T{}
	}
	writeJSON(w, http.StatusOK, listResponse{
		Success: true,
		Count:   len(data),
		Filters: filters,
		Data:    data,
	})
}

// failQuery maps a service error to the transport response: ValidationError
// becomes 400, everything else (DataAccessError included) a generic 500. The
// underlying error is logged, never serialized.
func failQuery(w http.ResponseWriter, r *http.Request, logger *slog.Logger, op string, err error) {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	}

	logger.ErrorContext(r.Context(), "handler: "+op+" failed",
		slog.String("error", err.Error()),
	)
	writeError(w, http.StatusInternalServerError, "failed to fetch "+op)
}

// intParam parses an integer query parameter, returning def when absent.
// Values below min (or above max, when max > 0) are rejected with a
// ValidationError.
func intParam(q url.Values, name string, def, min, max int) (int, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	if n < min || (max > 0 && n > max) {
		if max > 0 {
			return 0, domain.NewValidationError(name, fmt.Sprintf("must be between %d and %d", min, max))
		}
		return 0, domain.NewValidationError(name, fmt.Sprintf("must be at least %d", min))
	}
	return n, nil
}

// floatParam parses a float query parameter, returning def when absent.
// Values outside [min, max] are rejected (max is ignored when negative).
func floatParam(q url.Values, name string, def, min, max float64) (float64, error) {
	v := q.Get(name)
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be a number")
	}
	if f < min || (max >= 0 && f > max) {
		if max >= 0 {
			return 0, domain.NewValidationError(name, fmt.Sprintf("must be between %g and %g", min, max))
		}
		return 0, domain.NewValidationError(name, fmt.Sprintf("must be at least %g", min))
	}
	return f, nil
}

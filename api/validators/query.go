package validators

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	pkgerrors "github.com/angelmondragon/cornerstore-backend/pkg/errors"
)

const (
	dateLayout      = "2006-01-02"
	localTimeLayout = "2006-01-02T15:04:05.999999999"
)

// timestampLayouts are tried in order. Values without an offset are read as UTC.
var timestampLayouts = []string{dateLayout, localTimeLayout, time.RFC3339Nano}

// ParseQueryInt reads an optional integer query parameter. Values are not range
// checked; callers decide what a zero or negative value means.
func ParseQueryInt(r *http.Request, key string, defaultVal int) (int, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return defaultVal, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

// ParseQueryDate reads an optional calendar date. Anything ParseTimestamp accepts
// is allowed; a timestamp contributes only its date part.
func ParseQueryDate(r *http.Request, key string) (*time.Time, error) {
	raw := strings.TrimSpace(r.URL.Query().Get(key))
	if raw == "" {
		return nil, nil
	}
	ts, err := ParseTimestamp(raw)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "query parameter must be a date").WithDetails(map[string]any{"field": key, "format": dateLayout})
	}
	day := time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, time.UTC)
	return &day, nil
}

// ParseTimestamp reads a date or timestamp sent by a client: 2024-09-03,
// 2024-09-03T15:04:05 or a full RFC 3339 value.
func ParseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range timestampLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts, nil
		}
	}
	return time.Time{}, fmt.Errorf("%q is not a date or timestamp", raw)
}

// PathInt reads a numeric chi URL parameter.
func PathInt(r *http.Request, key string) (int, error) {
	raw := strings.TrimSpace(chi.URLParam(r, key))
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, pkgerrors.New(pkgerrors.CodeValidation, "path parameter must be numeric").WithDetails(map[string]any{"field": key})
	}
	return value, nil
}

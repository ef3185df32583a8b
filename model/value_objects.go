package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// DateBound represents an optional calendar date bound.
type DateBound struct {
	value *time.Time
}

// NewDateBound creates a date bound value object. An empty string leaves
// the bound unset.
func NewDateBound(param, dateStr string) (*DateBound, error) {
	if dateStr == "" {
		return &DateBound{}, nil
	}

	t, err := parseDate(dateStr)
	if err != nil {
		return nil, fmt.Errorf("invalid %s parameter. Use ISO8601 format (YYYY-MM-DD)", param)
	}

	return &DateBound{value: &t}, nil
}

// Ptr returns the bound, or nil when unset.
func (d *DateBound) Ptr() *time.Time {
	return d.value
}

// parseDate parses a date string with flexible format support.
func parseDate(dateStr string) (time.Time, error) {
	// Try date-only format (YYYY-MM-DD)
	if t, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC); err == nil {
		return t, nil
	}

	// Try RFC3339 format, truncated to its UTC date
	if t, err := time.Parse(time.RFC3339, dateStr); err == nil {
		y, m, d := t.UTC().Date()
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("unable to parse date")
}

// FloatBound represents an optional numeric bound.
type FloatBound struct {
	value *float64
}

// NewFloatBound creates a numeric bound value object.
func NewFloatBound(param, valueStr string) (*FloatBound, error) {
	if valueStr == "" {
		return &FloatBound{}, nil
	}

	v, err := strconv.ParseFloat(strings.TrimSpace(valueStr), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, fmt.Errorf("invalid %s parameter: must be a finite number", param)
	}

	return &FloatBound{value: &v}, nil
}

// Ptr returns the bound, or nil when unset.
func (f *FloatBound) Ptr() *float64 {
	return f.value
}

// HazardFlag represents an optional hazardous flag.
type HazardFlag struct {
	value *bool
}

// NewHazardFlag creates a hazardous flag value object.
func NewHazardFlag(flagStr string) (*HazardFlag, error) {
	if flagStr == "" {
		return &HazardFlag{}, nil
	}

	v, err := strconv.ParseBool(flagStr)
	if err != nil {
		return nil, fmt.Errorf("invalid hazardous parameter: must be true or false")
	}

	return &HazardFlag{value: &v}, nil
}

// Ptr returns the flag, or nil when unset.
func (h *HazardFlag) Ptr() *bool {
	return h.value
}

// Limit represents a maximum result count; zero means unlimited.
type Limit struct {
	value int
}

// NewLimit creates a limit value object.
func NewLimit(limitStr string) (*Limit, error) {
	if limitStr == "" {
		return &Limit{value: 0}, nil
	}

	parsed, err := parseInt(limitStr)
	if err != nil {
		return nil, fmt.Errorf("invalid limit parameter: must be a non-negative integer")
	}
	if parsed < 0 {
		return nil, fmt.Errorf("limit must be non-negative")
	}

	return &Limit{value: parsed}, nil
}

// Int returns the limit.
func (l *Limit) Int() int {
	return l.value
}

// parseInt converts a string to an integer and handles errors.
func parseInt(s string) (int, error) {
	value, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, err
	}
	return value, nil
}

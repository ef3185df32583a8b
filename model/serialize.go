package model

import (
	"math"
	"strconv"
	"strings"
)

// TabularHeader is the fixed column order of tabular output.
var TabularHeader = []string{
	"designation",
	"name",
	"diameter_km",
	"potentially_hazardous",
	"datetime_utc",
	"distance_au",
	"velocity_km_s",
}

// ApproachRecord is the structured form of a close approach.
type ApproachRecord struct {
	DatetimeUTC string    `json:"datetime_utc"`
	DistanceAU  float64   `json:"distance_au"`
	VelocityKmS float64   `json:"velocity_km_s"`
	NEO         NEOFields `json:"neo"`
}

// TabularRow flattens an approach and its NEO into TabularHeader order.
// For an unlinked approach only the designation of the NEO half is filled.
func TabularRow(a *CloseApproach) []string {
	neo := []string{a.designation, "", "", ""}
	if a.neo != nil {
		neo = a.neo.TabularFields()
	}
	return append(neo,
		a.TimeString(),
		formatFloat(a.Distance),
		formatFloat(a.Velocity),
	)
}

// StructuredRecord nests the NEO fields under "neo". For an unlinked
// approach the nested object carries the designation only.
func StructuredRecord(a *CloseApproach) ApproachRecord {
	neo := NEOFields{Designation: a.designation}
	if a.neo != nil {
		neo = a.neo.StructuredFields()
	}
	return ApproachRecord{
		DatetimeUTC: a.TimeString(),
		DistanceAU:  a.Distance,
		VelocityKmS: a.Velocity,
		NEO:         neo,
	}
}

// formatFloat renders the shortest decimal that round-trips, switching to
// exponent form for very small or very large magnitudes and always keeping
// a fractional part otherwise ("38.5", "1.0", "1e-05").
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

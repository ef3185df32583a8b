package model

import (
	"math"
	"strconv"
)

// Diameter is an NEO diameter in kilometers that may be unknown.
// The zero value is unknown.
type Diameter struct {
	km    float64
	known bool
}

// KnownDiameter returns a known diameter. NaN is treated as unknown.
func KnownDiameter(km float64) Diameter {
	if math.IsNaN(km) {
		return Diameter{}
	}
	return Diameter{km: km, known: true}
}

// UnknownDiameter returns the unknown diameter.
func UnknownDiameter() Diameter {
	return Diameter{}
}

// ParseDiameter parses a diameter column value; the empty string is unknown.
func ParseDiameter(s string) (Diameter, error) {
	if s == "" {
		return UnknownDiameter(), nil
	}
	km, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return Diameter{}, NewFormatError("diameter", "%q is not a number", s)
	}
	return KnownDiameter(km), nil
}

// Km returns the diameter and whether it is known.
func (d Diameter) Km() (float64, bool) {
	return d.km, d.known
}

// IsKnown reports whether the diameter is known.
func (d Diameter) IsKnown() bool {
	return d.known
}

// Float64 returns the diameter, or NaN when unknown.
func (d Diameter) Float64() float64 {
	if !d.known {
		return math.NaN()
	}
	return d.km
}

func (d Diameter) String() string {
	if !d.known {
		return "unknown"
	}
	return strconv.FormatFloat(d.km, 'f', 3, 64)
}

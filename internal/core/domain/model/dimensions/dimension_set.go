package dimensions

import (
	"errors"
	"fmt"
	"math"
)

// ErrIncompleteDimensions is returned when an operation that requires a
// complete dimension tuple is attempted with an incomplete one. It is a
// "not ready" signal, not a validation failure: callers surface it to the
// user instead of treating it as an internal error.
var ErrIncompleteDimensions = errors.New("dimensions are incomplete")

// DimensionSet is the length/width/height/weight tuple of a shipment.
// Values are unit-less from the engine's perspective; callers supply them
// consistently (inches and pounds in the surrounding system).
//
// The zero value is valid and meaningful: it represents a shipment whose
// dimensions are not yet known. Computations that need a full tuple check
// IsComplete first and treat an incomplete set as "not ready to rate".
type DimensionSet struct {
	Length float64
	Width  float64
	Height float64
	Weight float64
}

// NewDimensionSet builds a DimensionSet, coercing negative and non-finite
// inputs to zero. It never fails: a nonsensical source value degrades the
// tuple to incomplete instead of raising.
func NewDimensionSet(length, width, height, weight float64) DimensionSet {
	return DimensionSet{
		Length: sanitizeDimension(length),
		Width:  sanitizeDimension(width),
		Height: sanitizeDimension(height),
		Weight: sanitizeDimension(weight),
	}
}

// IsComplete reports whether all four fields are present and positive.
// An incomplete set disables any computation depending on it.
func (d DimensionSet) IsComplete() bool {
	return d.Length > 0 && d.Width > 0 && d.Height > 0 && d.Weight > 0
}

// CubicSize returns length x width x height, the proxy used for
// dimensional-weight billing risk. Zero when any side is missing.
func (d DimensionSet) CubicSize() float64 {
	return d.Length * d.Width * d.Height
}

// String returns a compact "LxWxH @ W" representation for logs.
func (d DimensionSet) String() string {
	return fmt.Sprintf("%gx%gx%g @ %g", d.Length, d.Width, d.Height, d.Weight)
}

// sanitizeDimension maps NaN, infinities and negative values to zero so they
// propagate as "missing" rather than poisoning downstream arithmetic.
func sanitizeDimension(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return 0
	}
	return v
}

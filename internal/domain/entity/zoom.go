package entity

import "math"

// Default board zoom constants.
const (
	ZoomDefault = 1.0
	ZoomMin     = 0.5 // 50%
	ZoomMax     = 2.0 // 200%
	ZoomStep    = 0.1 // 10% increments
)

// ZoomRange bounds a zoom factor and defines its step.
type ZoomRange struct {
	Min  float64
	Max  float64
	Step float64
}

// DefaultZoomRange returns the stock 50%..200% range in 10% steps.
func DefaultZoomRange() ZoomRange {
	return ZoomRange{Min: ZoomMin, Max: ZoomMax, Step: ZoomStep}
}

// ZoomLevel is the uniform display scale of the whole board.
type ZoomLevel struct {
	Factor float64
	Range  ZoomRange
}

// NewZoomLevel creates a zoom level clamped to the given range.
func NewZoomLevel(factor float64, r ZoomRange) *ZoomLevel {
	z := &ZoomLevel{Range: r}
	z.SetFactor(factor)
	return z
}

// SetFactor updates the zoom factor, clamping to the valid range.
func (z *ZoomLevel) SetFactor(factor float64) {
	z.Factor = clampZoom(factor, z.Range)
}

// ZoomIn increases the zoom factor by one step.
func (z *ZoomLevel) ZoomIn() {
	z.SetFactor(z.Factor + z.Range.Step)
}

// ZoomOut decreases the zoom factor by one step.
func (z *ZoomLevel) ZoomOut() {
	z.SetFactor(z.Factor - z.Range.Step)
}

// Percentage returns the zoom factor as a percentage (e.g., 150 for 1.5).
func (z *ZoomLevel) Percentage() int {
	return int(math.Round(z.Factor * 100))
}

// clampZoom constrains a zoom factor to the valid range.
func clampZoom(factor float64, r ZoomRange) float64 {
	if factor < r.Min {
		return r.Min
	}
	if factor > r.Max {
		return r.Max
	}
	return factor
}

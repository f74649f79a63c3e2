package render

import (
	"github.com/gogpu/gg"

	"InkBoard/internal/state"
)

// Options are the global rendering switches of a canvas.
type Options struct {
	// Debug colors each segment by the status of its end point and draws the
	// stylus orientation.
	Debug bool
	// Precise draws at the precise location instead of the location.
	Precise bool
}

var (
	black  = gg.Black
	red    = gg.Red
	green  = gg.Green
	blue   = gg.Blue
	purple = gg.RGB(0.5, 0, 0.5)
	orange = gg.RGB(1, 0.5, 0)
)

// StrokeColor is the color of the segment ending at a point of type typ.
func StrokeColor(typ state.PointType, debug bool) gg.RGBA {
	if debug {
		switch {
		case typ.Contains(state.Cancelled):
			return red
		case typ.Contains(state.NeedsUpdate):
			return orange
		case typ.Contains(state.Coalesced):
			return green
		case typ.Contains(state.Predicted):
			return blue
		case typ.Contains(state.NonPrimary):
			return purple
		}
		return black
	}

	if typ.Contains(state.Cancelled) {
		return gg.Transparent
	}
	c := black
	if typ.Contains(state.NonPrimary) {
		c = purple
	}
	if typ.Contains(state.Predicted) {
		c.A = 0.5
	}
	return c
}

package state

import (
	"image"
	"math"

	"github.com/gogpu/gg"
)

const (
	// LineWidth is the width, in points, of every rendered segment.
	LineWidth = 15.0

	// minMagnitude is the smallest force used for sizing.
	minMagnitude = 0.025

	// forceScale grows the influence of a sample with its force.
	forceScale = 3.0

	// tickReach covers the orientation tick drawn in debug mode.
	tickReach = 10.5 + 1

	// edgeMargin covers anti-aliased edges.
	edgeMargin = 2.0
)

// Rect is a dirty region in canvas points. The zero Rect is empty and
// is the identity for Union.
type Rect struct {
	gg.Rect
	valid bool
}

// PointRect returns the degenerate rectangle holding only p.
func PointRect(p gg.Point) Rect {
	return Rect{Rect: gg.Rect{Min: p, Max: p}, valid: true}
}

// IsEmpty reports whether r covers nothing.
func (r Rect) IsEmpty() bool { return !r.valid }

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if !o.valid {
		return r
	}
	if !r.valid {
		return o
	}
	return Rect{Rect: r.Rect.Union(o.Rect), valid: true}
}

// Outset grows r by d on every side.
func (r Rect) Outset(d float64) Rect {
	if !r.valid {
		return r
	}
	r.Min = gg.Pt(r.Min.X-d, r.Min.Y-d)
	r.Max = gg.Pt(r.Max.X+d, r.Max.Y+d)
	return r
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	if !r.valid || !o.valid {
		return false
	}
	return !(r.Max.X < o.Min.X || o.Max.X < r.Min.X ||
		r.Max.Y < o.Min.Y || o.Max.Y < r.Min.Y)
}

// Pixels converts r to a pixel rectangle at the given scale, rounding outward.
func (r Rect) Pixels(scale float64) image.Rectangle {
	if !r.valid {
		return image.Rectangle{}
	}
	return image.Rect(
		int(math.Floor(r.Min.X*scale)), int(math.Floor(r.Min.Y*scale)),
		int(math.Ceil(r.Max.X*scale)), int(math.Ceil(r.Max.Y*scale)),
	)
}

// influence is how far a sample of the given magnitude can paint from its
// position.
func influence(magnitude float64) float64 {
	return math.Max(forceScale*magnitude, math.Max(LineWidth/2, tickReach)) + edgeMargin
}

// positions covers both the location and the precise location of s, since
// either may be the one rendered.
func positions(s *Sample) Rect {
	return PointRect(s.Location).Union(PointRect(s.PreciseLocation))
}

// sampleRect is the region a single sample can paint.
func sampleRect(s *Sample) Rect {
	return positions(s).Outset(influence(s.Magnitude()))
}

// segmentRect is the region of the segment joining prev and s.
func segmentRect(s, prev *Sample) Rect {
	if prev == nil {
		return sampleRect(s)
	}
	r := positions(s).Union(positions(prev))
	return r.Outset(influence(math.Max(s.Magnitude(), prev.Magnitude())))
}

// SamplesRect is the region the segments joining pts can paint.
func SamplesRect(pts []*Sample) Rect {
	var r Rect
	var prev *Sample
	for _, p := range pts {
		r = r.Union(segmentRect(p, prev))
		prev = p
	}
	return r
}

package state

import (
	"math"
	"time"

	"github.com/gogpu/gg"
)

// Sample is one normalized reading stored in a Stroke.
type Sample struct {
	Seq             int
	Timestamp       time.Duration
	Kind            ContactKind
	Location        gg.Point
	PreciseLocation gg.Point
	Force           float64
	Altitude        float64
	Azimuth         float64

	Estimated        Properties
	ExpectingUpdates Properties
	EstimationIndex  uint64

	Type PointType
}

// NewSample builds the sample for t. A finger reading without force is
// stored at full force so it stays visible.
func NewSample(t Touch, seq int, typ PointType) *Sample {
	s := &Sample{
		Seq:              seq,
		Timestamp:        t.Timestamp,
		Kind:             t.Kind,
		Location:         t.Location,
		PreciseLocation:  t.PreciseLocation,
		Force:            t.Force,
		Altitude:         t.Altitude,
		Azimuth:          t.Azimuth,
		Estimated:        t.Estimated,
		ExpectingUpdates: t.ExpectingUpdates,
		EstimationIndex:  t.EstimationIndex,
		Type:             typ,
	}
	if t.Kind != Stylus && t.Force <= 0 {
		s.Force = 1.0
	}
	if !s.ExpectingUpdates.Empty() {
		s.Type = s.Type.Union(NeedsUpdate)
	}
	return s
}

// Magnitude is the force clamped to a minimum visual size.
func (s *Sample) Magnitude() float64 {
	return math.Max(s.Force, minMagnitude)
}

// Position returns the location used for rendering.
func (s *Sample) Position(precise bool) gg.Point {
	if precise {
		return s.PreciseLocation
	}
	return s.Location
}

// Pending reports whether the sample still waits for a correction.
func (s *Sample) Pending() bool {
	return s.EstimationIndex != 0 && !s.ExpectingUpdates.Empty()
}

// Update applies the corrected values carried by t. It returns whether any
// field or status bit changed; a touch for another estimation index is
// ignored.
func (s *Sample) Update(t Touch) bool {
	if t.EstimationIndex == 0 || t.EstimationIndex != s.EstimationIndex {
		return false
	}
	before := *s
	for _, prop := range correctable {
		if !s.ExpectingUpdates.Has(prop) {
			continue
		}
		switch prop {
		case PropForce:
			s.Force = t.Force
		case PropAzimuth:
			s.Azimuth = t.Azimuth
		case PropAltitude:
			s.Altitude = t.Altitude
		case PropLocation:
			s.Location = t.Location
			s.PreciseLocation = t.PreciseLocation
		}
		if !t.Estimated.Has(prop) {
			s.Estimated &^= prop
		}
		if !t.ExpectingUpdates.Has(prop) {
			s.ExpectingUpdates &^= prop
			if s.ExpectingUpdates.Empty() {
				s.Type = s.Type.Subtract(NeedsUpdate).Union(Updated)
			}
		}
	}
	return *s != before
}

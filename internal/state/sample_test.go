package state

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSample_FingerWithoutForce(t *testing.T) {
	tc := stylusTouch(0, 0, 0)
	tc.Kind = Finger
	s := NewSample(tc, 0, Standard)
	assert.Equal(t, 1.0, s.Force)

	stylus := NewSample(stylusTouch(0, 0, 0), 0, Standard)
	assert.Equal(t, 0.0, stylus.Force)
	assert.Equal(t, minMagnitude, stylus.Magnitude())
}

func TestSample_ExpectingUpdatesNeedsUpdate(t *testing.T) {
	s := NewSample(estimatedTouch(0, 0, 5), 0, Coalesced)
	assert.True(t, s.Type.Contains(NeedsUpdate|Coalesced))
	assert.True(t, s.Pending())
}

func TestSample_UpdateIgnoresOtherIndex(t *testing.T) {
	s := NewSample(estimatedTouch(0, 0, 5), 0, Standard)
	fix := stylusTouch(0, 0, 1)
	fix.EstimationIndex = 6
	assert.False(t, s.Update(fix))
	assert.Equal(t, 0.1, s.Force)
}

func TestSample_UpdateLocation(t *testing.T) {
	assert := assert.New(t)

	tc := stylusTouch(0, 0, 0.5)
	tc.Estimated = PropLocation
	tc.ExpectingUpdates = PropLocation
	tc.EstimationIndex = 2
	s := NewSample(tc, 0, Standard)

	fix := stylusTouch(4, 5, 0.9)
	fix.EstimationIndex = 2
	assert.True(s.Update(fix))
	assert.Equal(4.0, s.Location.X)
	assert.Equal(5.0, s.PreciseLocation.Y)
	assert.Equal(0.5, s.Force, "force was never estimated")
	assert.Equal(Updated, s.Type)
	assert.Equal(Properties(0), s.Estimated)
}

func TestPointType_Sets(t *testing.T) {
	assert := assert.New(t)

	typ := Coalesced.Union(NonPrimary)
	assert.True(typ.Contains(Coalesced))
	assert.False(typ.Contains(Coalesced | Predicted))
	assert.True(typ.Intersects(Predicted | NonPrimary))
	assert.Equal(NonPrimary, typ.Subtract(Coalesced))
	assert.Equal("coalesced|non-primary", typ.String())
	assert.Equal("standard", Standard.String())
}

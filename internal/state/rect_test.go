package state

import (
	"image"
	"testing"

	"github.com/gogpu/gg"
	"github.com/stretchr/testify/assert"
)

func TestRect_EmptyIsUnionIdentity(t *testing.T) {
	assert := assert.New(t)

	var empty Rect
	assert.True(empty.IsEmpty())
	assert.True(empty.Union(Rect{}).IsEmpty())
	assert.True(empty.Outset(5).IsEmpty())
	assert.Equal(image.Rectangle{}, empty.Pixels(2))

	r := PointRect(gg.Pt(3, 4))
	assert.Equal(r, empty.Union(r))
	assert.Equal(r, r.Union(empty))
}

func TestRect_UnionAndOutset(t *testing.T) {
	assert := assert.New(t)

	r := PointRect(gg.Pt(0, 0)).Union(PointRect(gg.Pt(10, 20))).Outset(1)
	assert.Equal(gg.Pt(-1, -1), r.Min)
	assert.Equal(gg.Pt(11, 21), r.Max)
	assert.True(r.Overlaps(PointRect(gg.Pt(5, 5))))
	assert.False(r.Overlaps(PointRect(gg.Pt(50, 5))))
	assert.False(r.Overlaps(Rect{}))
}

func TestRect_PixelsRoundsOutward(t *testing.T) {
	r := PointRect(gg.Pt(1.2, 1.7)).Union(PointRect(gg.Pt(3.1, 4.5)))
	assert.Equal(t, image.Rect(2, 3, 7, 9), r.Pixels(2))
}

func TestSampleRect_NeverSmallerThanStroke(t *testing.T) {
	s := NewSample(stylusTouch(100, 100, 0), 0, Standard)
	r := sampleRect(s)
	assert.True(t, r.Contains(gg.Pt(100+LineWidth/2+edgeMargin, 100)))

	heavy := NewSample(stylusTouch(100, 100, 8), 0, Standard)
	assert.Greater(t, sampleRect(heavy).Width(), r.Width())
}

func TestSamplesRect(t *testing.T) {
	assert.True(t, SamplesRect(nil).IsEmpty())

	a := NewSample(stylusTouch(10, 10, 0.5), 0, Standard)
	b := NewSample(stylusTouch(90, 40, 0.5), 1, Standard)
	r := SamplesRect([]*Sample{a, b})
	assert.True(t, r.Contains(gg.Pt(10-LineWidth/2, 10)))
	assert.True(t, r.Contains(gg.Pt(90, 40+LineWidth/2)))
}

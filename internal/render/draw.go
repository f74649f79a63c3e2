package render

import (
	"math"

	"github.com/gogpu/gg"

	"InkBoard/internal/state"
)

const (
	tickWidth  = 2.0
	tickLength = 10.0
)

// DrawSamples strokes the segments joining pts onto dc. Coordinates are in
// canvas points and are multiplied by scale. Each segment takes the style of
// the point it ends at. It returns the first error reported by dc.
func DrawSamples(dc *gg.Context, pts []*state.Sample, opts Options, scale float64) error {
	var firstErr error
	keep := func(err error) {
		if err != nil && firstErr == nil {
			firstErr = err
		}
	}

	dc.SetLineCap(gg.LineCapRound)
	for i := 1; i < len(pts); i++ {
		prior, p := pts[i-1], pts[i]
		from := prior.Position(opts.Precise).Mul(scale)
		to := p.Position(opts.Precise).Mul(scale)

		c := StrokeColor(p.Type, opts.Debug)
		dc.SetRGBA(c.R, c.G, c.B, c.A)
		dc.SetLineWidth(state.LineWidth * scale)
		dc.DrawLine(from.X, from.Y, to.X, to.Y)
		keep(dc.Stroke())

		if opts.Debug && p.Kind == state.Stylus && !p.Type.Intersects(state.Coalesced|state.Predicted) {
			keep(drawTick(dc, p, to, scale))
		}
	}
	return firstErr
}

// drawTick draws the azimuth of p as a red line whose length shrinks as the
// stylus stands up.
func drawTick(dc *gg.Context, p *state.Sample, at gg.Point, scale float64) error {
	tip := gg.Pt(0.5+tickLength*math.Cos(p.Altitude), 0).Rotate(p.Azimuth).Mul(scale).Add(at)
	dc.SetRGBA(red.R, red.G, red.B, red.A)
	dc.SetLineWidth(tickWidth * scale)
	dc.DrawLine(at.X, at.Y, tip.X, tip.Y)
	return dc.Stroke()
}

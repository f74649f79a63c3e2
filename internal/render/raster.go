package render

import (
	"image"
	"math"

	"github.com/gogpu/gg"
	xdraw "golang.org/x/image/draw"

	"InkBoard/internal/state"
)

// Raster is the frozen image that settled segments are baked into. Its
// pixel size is the canvas size in points times Scale.
type Raster struct {
	dc    *gg.Context
	scale float64

	// img caches dc's pixels until the next draw.
	img *image.RGBA

	// live is a transparent layer the unbaked segments are drawn on; drawn
	// is the part of it the last Live call may have painted.
	live  *gg.Context
	drawn image.Rectangle

	// frame is reused by Compose.
	frame *image.RGBA
}

// NewRaster allocates a transparent raster for a width x height point canvas.
func NewRaster(width, height int, scale float64) *Raster {
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Ceil(float64(width) * scale))
	h := int(math.Ceil(float64(height) * scale))
	return &Raster{dc: gg.NewContext(w, h), scale: scale}
}

// Scale is the number of pixels per canvas point.
func (r *Raster) Scale() float64 { return r.scale }

// Bounds is the raster's pixel rectangle.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.dc.Width(), r.dc.Height())
}

// Draw bakes the segments joining pts.
func (r *Raster) Draw(pts []*state.Sample, opts Options) error {
	if len(pts) < 2 {
		return nil
	}
	r.img = nil
	return DrawSamples(r.dc, pts, opts, r.scale)
}

// Clear erases everything baked so far.
func (r *Raster) Clear() {
	r.img = nil
	r.dc.Clear()
}

// Image returns the baked pixels. The image is rebuilt only after a draw or
// clear, so callers may compare it by identity to spot changes.
func (r *Raster) Image() *image.RGBA {
	if r.img == nil {
		r.img = r.dc.ResizeTarget().ToImage()
	}
	return r.img
}

// Valid reports whether the cached image is current.
func (r *Raster) Valid() bool { return r.img != nil }

// Live draws the unbaked segments on a transparent layer the size of the
// raster. Only the region painted by the previous call is erased first. The
// returned image shares the layer's buffer and is valid until the next call.
func (r *Raster) Live(live [][]*state.Sample, opts Options) (*image.RGBA, error) {
	if r.live == nil {
		r.live = gg.NewContext(r.dc.Width(), r.dc.Height())
	}
	layer := pixels(r.live)
	erase(layer, r.drawn)
	r.drawn = image.Rectangle{}

	var firstErr error
	for _, pts := range live {
		r.drawn = r.drawn.Union(state.SamplesRect(pts).Pixels(r.scale))
		if err := DrawSamples(r.live, pts, opts, r.scale); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	r.drawn = r.drawn.Intersect(layer.Rect)
	return layer, firstErr
}

// Compose draws live on top of the frozen image and returns the frame scaled
// to width x height pixels. Zero sizes keep the raster's size; the frame is
// then reused by the next call.
func (r *Raster) Compose(live [][]*state.Sample, opts Options, width, height int) (image.Image, error) {
	layer, err := r.Live(live, opts)

	frozen := r.Image()
	if r.frame == nil {
		r.frame = image.NewRGBA(frozen.Rect)
	}
	copy(r.frame.Pix, frozen.Pix)
	xdraw.Draw(r.frame, r.drawn, layer, r.drawn.Min, xdraw.Over)

	if width <= 0 || height <= 0 || r.frame.Rect.Dx() == width && r.frame.Rect.Dy() == height {
		return r.frame, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), r.frame, r.frame.Bounds(), xdraw.Over, nil)
	return dst, err
}

// pixels views dc's buffer as an image without copying it.
func pixels(dc *gg.Context) *image.RGBA {
	pm := dc.ResizeTarget()
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: 4 * pm.Width(),
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}

// erase makes area of img transparent.
func erase(img *image.RGBA, area image.Rectangle) {
	area = area.Intersect(img.Rect)
	if area.Empty() {
		return
	}
	for y := area.Min.Y; y < area.Max.Y; y++ {
		clear(img.Pix[img.PixOffset(area.Min.X, y):img.PixOffset(area.Max.X, y)])
	}
}

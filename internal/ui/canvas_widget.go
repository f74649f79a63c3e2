package ui

import (
	"image"
	"image/color"
	"math"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"InkBoard/internal/board"
	"InkBoard/internal/state"
)

// estimatedForce is the force reported before the correction arrives.
const estimatedForce = 0.5

// CanvasWidget feeds mouse input to a board.Session and shows its frames.
// Each mouse button is one contact; every move is delivered as a single
// coalesced reading, optionally followed by a linear forecast.
type CanvasWidget struct {
	widget.BaseWidget

	session  *board.Session
	contacts *state.Contacts[desktop.MouseButton]
	size     fyne.Size
	started  time.Time

	// Kind is the contact kind the mouse stands in for.
	Kind state.ContactKind
	// Predict adds a forecast reading to every move.
	Predict bool
	// EstimateForce reports force as estimated and corrects it one event
	// later.
	EstimateForce bool

	last      map[state.ContactID]state.Touch
	owed      map[state.ContactID]state.Touch
	lastIndex uint64

	// OnTouch is called with every primary reading; OnLift when a contact
	// ends.
	OnTouch func(state.Touch)
	OnLift  func()
}

var _ fyne.Widget = (*CanvasWidget)(nil)
var _ fyne.Draggable = (*CanvasWidget)(nil)
var _ desktop.Mouseable = (*CanvasWidget)(nil)
var _ desktop.Hoverable = (*CanvasWidget)(nil)

// NewCanvasWidget wraps session, whose canvas is size points large.
func NewCanvasWidget(session *board.Session, size fyne.Size) *CanvasWidget {
	c := &CanvasWidget{
		session:  session,
		contacts: state.NewContacts[desktop.MouseButton](),
		size:     size,
		started:  time.Now(),
		Kind:     state.Stylus,
		last:     make(map[state.ContactID]state.Touch),
		owed:     make(map[state.ContactID]state.Touch),
	}
	session.OnNeedsRepaint = func(state.Rect) { c.Refresh() }
	c.ExtendBaseWidget(c)
	return c
}

// Session returns the wrapped session.
func (c *CanvasWidget) Session() *board.Session { return c.session }

func (c *CanvasWidget) MouseDown(e *desktop.MouseEvent) {
	if _, down := c.contacts.Lookup(e.Button); down {
		return
	}
	id := c.contacts.ID(e.Button)
	c.move(id, e.Position)
}

func (c *CanvasWidget) Dragged(e *fyne.DragEvent) {
	id, ok := c.contacts.Lookup(desktop.MouseButtonPrimary)
	if !ok {
		return
	}
	c.move(id, e.Position)
}

func (c *CanvasWidget) MouseUp(e *desktop.MouseEvent) {
	id, ok := c.contacts.Release(e.Button)
	if !ok {
		return
	}
	c.move(id, e.Position)
	c.end(id, false)
}

func (c *CanvasWidget) DragEnd() {
	if id, ok := c.contacts.Release(desktop.MouseButtonPrimary); ok {
		c.end(id, false)
	}
}

// MouseOut interrupts every contact, the way a system gesture cancels touches.
func (c *CanvasWidget) MouseOut() {
	for _, b := range []desktop.MouseButton{desktop.MouseButtonPrimary, desktop.MouseButtonSecondary, desktop.MouseButtonTertiary} {
		if id, ok := c.contacts.Release(b); ok {
			c.end(id, true)
		}
	}
}

func (c *CanvasWidget) MouseIn(*desktop.MouseEvent)    {}
func (c *CanvasWidget) MouseMoved(*desktop.MouseEvent) {}

func (c *CanvasWidget) MinSize() fyne.Size {
	c.ExtendBaseWidget(c)
	return c.size
}

func (c *CanvasWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &canvasWidgetRenderer{canvasWidget: c}
	r.background = canvas.NewRectangle(color.White)
	r.shown = c.session.FrozenImage()
	r.frozen = canvas.NewImageFromImage(r.shown)
	r.frozen.FillMode = canvas.ImageFillStretch
	r.frozen.ScaleMode = canvas.ImageScaleSmooth
	r.live = canvas.NewRaster(func(int, int) image.Image {
		return c.session.LiveImage()
	})
	return r
}

// move delivers one reading at pos for contact id.
func (c *CanvasWidget) move(id state.ContactID, pos fyne.Position) {
	t := c.touch(id, pos)
	c.settle(id)

	if c.EstimateForce {
		c.lastIndex++
		owed := t
		owed.EstimationIndex = c.lastIndex
		c.owed[id] = owed

		t.Force = estimatedForce
		t.Estimated = state.PropForce
		t.ExpectingUpdates = state.PropForce
		t.EstimationIndex = c.lastIndex
	}

	ev := board.Event{
		Touches:   []state.Touch{t},
		Coalesced: map[state.ContactID][]state.Touch{id: {t}},
		Predicted: map[state.ContactID][]state.Touch{},
	}
	if prev, ok := c.last[id]; ok && c.Predict {
		ev.Predicted[id] = []state.Touch{forecast(prev, t)}
	}
	c.last[id] = t
	c.session.Ingest(ev)

	if c.OnTouch != nil {
		c.OnTouch(t)
	}
}

// end lifts contact id and then settles its outstanding correction, so a
// stroke waiting for it is finished from the pending set.
func (c *CanvasWidget) end(id state.ContactID, cancel bool) {
	c.session.EndContacts([]state.ContactID{id}, cancel)
	c.settle(id)
	delete(c.last, id)
	if c.OnLift != nil {
		c.OnLift()
	}
}

// settle delivers the correction owed to contact id, if any.
func (c *CanvasWidget) settle(id state.ContactID) {
	owed, ok := c.owed[id]
	if !ok {
		return
	}
	delete(c.owed, id)
	c.session.ApplyCorrections([]state.Touch{owed})
}

func (c *CanvasWidget) touch(id state.ContactID, pos fyne.Position) state.Touch {
	p := gg.Pt(float64(pos.X), float64(pos.Y))
	t := state.Touch{
		Contact:         id,
		Kind:            c.Kind,
		Timestamp:       time.Since(c.started),
		Location:        p,
		PreciseLocation: p,
		Force:           1,
		Altitude:        math.Pi / 2,
	}
	if prev, ok := c.last[id]; ok && c.Kind == state.Stylus {
		// Lean the emulated stylus along the direction of travel.
		d := p.Sub(prev.Location)
		if d.Length() > 0 {
			t.Azimuth = math.Atan2(d.Y, d.X)
			t.Altitude = math.Pi / 4
		}
	}
	return t
}

// forecast extrapolates the motion from prev to t by one more step.
func forecast(prev, t state.Touch) state.Touch {
	f := t
	d := t.Location.Sub(prev.Location)
	f.Location = t.Location.Add(d)
	f.PreciseLocation = t.PreciseLocation.Add(d)
	f.Timestamp = t.Timestamp + (t.Timestamp - prev.Timestamp)
	f.Estimated, f.ExpectingUpdates, f.EstimationIndex = 0, 0, 0
	return f
}

// canvasWidgetRenderer stacks the live layer over the frozen image. The
// frozen image is only uploaded again after a bake replaced it.
type canvasWidgetRenderer struct {
	canvasWidget *CanvasWidget
	background   *canvas.Rectangle
	frozen       *canvas.Image
	live         *canvas.Raster

	// shown is the frozen image currently held by frozen.
	shown image.Image
}

func (r *canvasWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.background, r.frozen, r.live}
}

func (r *canvasWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.frozen.Resize(r.canvasWidget.size)
	r.live.Resize(r.canvasWidget.size)
}

func (r *canvasWidgetRenderer) MinSize() fyne.Size {
	return r.canvasWidget.size
}

func (r *canvasWidgetRenderer) Refresh() {
	if img := r.canvasWidget.session.FrozenImage(); img != r.shown {
		r.shown = img
		r.frozen.Image = img
		r.frozen.Refresh()
	}
	r.live.Refresh()
}

func (r *canvasWidgetRenderer) Destroy() {}

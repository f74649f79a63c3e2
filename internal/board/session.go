package board

import (
	"image"
	"slices"

	"github.com/gogpu/gg"

	"InkBoard/internal/render"
	"InkBoard/internal/state"
)

// Event is one delivery of pointer input. Touches holds the primary reading
// of every contact that moved; the maps hold the sub-frame and forecast
// readings of each contact. The last coalesced reading of a contact carries
// the same data as its primary reading.
type Event struct {
	Touches   []state.Touch
	Coalesced map[state.ContactID][]state.Touch
	Predicted map[state.ContactID][]state.Touch
}

// Option configures a Session.
type Option func(*Session)

// WithScale sets the raster's pixels per canvas point.
func WithScale(scale float64) Option {
	return func(s *Session) { s.scale = scale }
}

// WithPrimaryKind sets the contact kind drawn in the normal color. Other
// kinds are flagged state.NonPrimary.
func WithPrimaryKind(kind state.ContactKind) Option {
	return func(s *Session) { s.primary = kind }
}

// WithRenderOptions sets the initial rendering switches.
func WithRenderOptions(opts render.Options) Option {
	return func(s *Session) { s.opts = opts }
}

// Session turns pointer input into strokes on a canvas. It routes readings
// to one Stroke per contact, bakes settled segments into a frozen raster and
// reports the regions that need repainting.
//
// A Session is not safe for concurrent use; the host calls it from its event
// loop.
type Session struct {
	width, height int
	scale         float64
	primary       state.ContactKind
	opts          render.Options

	raster *render.Raster

	// active maps contacts still down to their stroke.
	active map[state.ContactID]*state.Stroke
	// pending maps lifted contacts to strokes still waiting for corrections.
	pending map[state.ContactID]*state.Stroke

	// lines are the strokes with live points, oldest first.
	lines []*state.Stroke
	// finished are fully baked strokes, kept for full redraws.
	finished []*state.Stroke

	// OnNeedsRepaint is called with every non-empty dirty region.
	OnNeedsRepaint func(state.Rect)
}

// NewSession creates a session for a width x height point canvas.
func NewSession(width, height int, opts ...Option) *Session {
	s := &Session{
		width:   width,
		height:  height,
		scale:   1,
		primary: state.Stylus,
		active:  make(map[state.ContactID]*state.Stroke),
		pending: make(map[state.ContactID]*state.Stroke),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.raster = render.NewRaster(width, height, s.scale)
	return s
}

// Ingest adds the readings of ev to their strokes and returns the region
// they dirtied. Forecasts added by the previous event of a contact are
// dropped first.
func (s *Session) Ingest(ev Event) state.Rect {
	var dirty state.Rect
	for _, t := range ev.Touches {
		line, ok := s.active[t.Contact]
		if !ok {
			if stale, waiting := s.pending[t.Contact]; waiting {
				// The id is back in use, so the old stroke's corrections
				// can no longer be told apart from the new one's.
				Logger().Warn("contact reused before its corrections arrived", "contact", t.Contact, "stroke", stale.ID, "waiting", stale.Waiting())
				delete(s.pending, t.Contact)
				s.finishLine(stale)
				dirty = dirty.Union(stale.Bounds())
			}
			line = s.addActiveLine(t.Contact)
		}
		dirty = dirty.Union(line.RemoveType(state.Predicted))
		dirty = dirty.Union(s.addSamples(line, state.Coalesced, ev.Coalesced[t.Contact]))
		dirty = dirty.Union(s.addSamples(line, state.Predicted, ev.Predicted[t.Contact]))

		Logger().Debug("ingest",
			"contact", t.Contact,
			"coalesced", len(ev.Coalesced[t.Contact]),
			"predicted", len(ev.Predicted[t.Contact]),
			"live", line.Len())
	}
	s.repaint(dirty)
	return dirty
}

// ApplyCorrections applies late property values to the points waiting for
// them. Touches for unknown contacts and replayed corrections are ignored.
// It returns the region repainted.
func (s *Session) ApplyCorrections(touches []state.Touch) state.Rect {
	var dirty state.Rect
	for _, t := range touches {
		line, isPending := s.active[t.Contact], false
		if line == nil {
			line, isPending = s.pending[t.Contact]
		}
		if line == nil {
			continue
		}

		if changed, r := line.Update(t); changed {
			Logger().Debug("correction", "contact", t.Contact, "index", t.EstimationIndex, "waiting", line.Waiting())
			dirty = dirty.Union(r)
		}

		if isPending && line.IsComplete() {
			s.finishLine(line)
			delete(s.pending, t.Contact)
		} else {
			s.commitLine(line)
		}
	}
	s.repaint(dirty)
	return dirty
}

// EndContacts ends the given contacts. Their remaining forecasts are
// dropped and, with cancel set, their strokes are marked cancelled. A stroke
// with no point waiting for a correction is baked and archived; the others
// wait in the pending set.
func (s *Session) EndContacts(ids []state.ContactID, cancel bool) state.Rect {
	var dirty state.Rect
	for _, id := range ids {
		line, ok := s.active[id]
		if !ok {
			continue
		}
		// No real reading follows a lift, so the last forecast is stale.
		dirty = dirty.Union(line.RemoveType(state.Predicted))
		if cancel {
			dirty = dirty.Union(line.Cancel())
		}
		if line.IsComplete() {
			s.finishLine(line)
		} else {
			s.pending[id] = line
			Logger().Debug("stroke pending", "stroke", line.ID, "waiting", line.Waiting())
		}
		delete(s.active, id)
	}
	s.repaint(dirty)
	return dirty
}

// Clear discards every stroke and erases the canvas.
func (s *Session) Clear() {
	clear(s.active)
	clear(s.pending)
	s.lines = nil
	s.finished = nil
	s.raster.Clear()
	Logger().Info("canvas cleared")
	s.repaint(s.Bounds())
}

// SetPreciseLocation switches between locations and precise locations and
// redraws the whole canvas.
func (s *Session) SetPreciseLocation(on bool) {
	if s.opts.Precise == on {
		return
	}
	s.opts.Precise = on
	Logger().Info("precise location", "enabled", on)
	s.redraw()
}

// SetDebug switches the debug colors and orientation ticks and redraws the
// whole canvas.
func (s *Session) SetDebug(on bool) {
	if s.opts.Debug == on {
		return
	}
	s.opts.Debug = on
	Logger().Info("debug drawing", "enabled", on)
	s.redraw()
}

// Options returns the current rendering switches.
func (s *Session) Options() render.Options { return s.opts }

// Bounds is the whole canvas in points.
func (s *Session) Bounds() state.Rect {
	return state.PointRect(gg.Pt(0, 0)).Union(state.PointRect(gg.Pt(float64(s.width), float64(s.height))))
}

// FrozenImage returns the baked part of the canvas.
func (s *Session) FrozenImage() image.Image {
	return s.raster.Image()
}

// Scale is the number of raster pixels per canvas point.
func (s *Session) Scale() float64 { return s.raster.Scale() }

// DrawLive draws the segments not baked yet onto dc, in raster pixels.
func (s *Session) DrawLive(dc *gg.Context) {
	for _, line := range s.lines {
		if err := render.DrawSamples(dc, line.Points(), s.opts, s.raster.Scale()); err != nil {
			Logger().Warn("live stroke not drawn", "stroke", line.ID, "err", err)
		}
	}
}

// LiveImage draws the segments not baked yet on a transparent layer the
// size of the frozen image. The layer is reused by the next call.
func (s *Session) LiveImage() image.Image {
	img, err := s.raster.Live(s.livePoints(), s.opts)
	if err != nil {
		Logger().Warn("live layer partially drawn", "err", err)
	}
	return img
}

// Compose returns the frozen image with the live segments on top, scaled to
// width x height pixels. Zero sizes keep the raster's size.
func (s *Session) Compose(width, height int) image.Image {
	img, err := s.raster.Compose(s.livePoints(), s.opts, width, height)
	if err != nil {
		Logger().Warn("frame partially drawn", "err", err)
	}
	return img
}

func (s *Session) livePoints() [][]*state.Sample {
	live := make([][]*state.Sample, 0, len(s.lines))
	for _, line := range s.lines {
		live = append(live, line.Points())
	}
	return live
}

// Stroke returns the active or pending stroke of a contact.
func (s *Session) Stroke(id state.ContactID) (*state.Stroke, bool) {
	if line, ok := s.active[id]; ok {
		return line, true
	}
	line, ok := s.pending[id]
	return line, ok
}

// ActiveCount is the number of contacts down.
func (s *Session) ActiveCount() int { return len(s.active) }

// PendingCount is the number of lifted strokes waiting for corrections.
func (s *Session) PendingCount() int { return len(s.pending) }

// LiveCount is the number of strokes with segments not baked yet.
func (s *Session) LiveCount() int { return len(s.lines) }

// Archived returns the fully baked strokes, oldest first.
func (s *Session) Archived() []*state.Stroke {
	return slices.Clone(s.finished)
}

func (s *Session) addActiveLine(id state.ContactID) *state.Stroke {
	line := state.NewStroke(id)
	s.active[id] = line
	s.lines = append(s.lines, line)
	Logger().Debug("stroke started", "contact", id, "stroke", line.ID)
	return line
}

// addSamples appends touches to line as points of type base. The last
// coalesced touch is the event's own reading and is stored as standard.
func (s *Session) addSamples(line *state.Stroke, base state.PointType, touches []state.Touch) state.Rect {
	var dirty state.Rect
	for i, t := range touches {
		typ := base
		if t.Kind != s.primary {
			typ = typ.Union(state.NonPrimary)
		}
		if base == state.Coalesced && i == len(touches)-1 {
			typ = typ.Subtract(state.Coalesced)
		}
		dirty = dirty.Union(line.AddSample(t, typ))
		s.commitLine(line)
	}
	return dirty
}

// commitLine bakes the settled segments of line into the frozen raster.
func (s *Session) commitLine(line *state.Stroke) {
	s.bake(line, line.Settle(false))
}

// finishLine bakes all of line and moves it to the archive.
func (s *Session) finishLine(line *state.Stroke) {
	s.bake(line, line.Settle(true))
	if i := slices.Index(s.lines, line); i >= 0 {
		s.lines = slices.Delete(s.lines, i, i+1)
	}
	s.finished = append(s.finished, line)
	Logger().Info("stroke archived", "stroke", line.ID, "contact", line.Contact, "points", len(line.Committed()))
}

func (s *Session) bake(line *state.Stroke, batch []*state.Sample) {
	if len(batch) == 0 {
		return
	}
	if err := s.raster.Draw(batch, s.opts); err != nil {
		Logger().Warn("segment not baked", "stroke", line.ID, "err", err)
	}
	Logger().Debug("baked", "stroke", line.ID, "points", len(batch), "live", line.Len())
}

// redraw rebuilds the frozen raster from the committed points of every
// stroke with the current options.
func (s *Session) redraw() {
	s.raster.Clear()
	for _, group := range [][]*state.Stroke{s.finished, s.lines} {
		for _, line := range group {
			if err := s.raster.Draw(line.Committed(), s.opts); err != nil {
				Logger().Warn("stroke not redrawn", "stroke", line.ID, "err", err)
			}
		}
	}
	s.repaint(s.Bounds())
}

func (s *Session) repaint(r state.Rect) {
	if r.IsEmpty() || s.OnNeedsRepaint == nil {
		return
	}
	s.OnNeedsRepaint(r)
}

package state

import (
	"github.com/google/uuid"
)

// Stroke is the live point list of one contact, from its first sample
// until every point has been baked.
type Stroke struct {
	ID      string
	Contact ContactID

	// points is the live part of the stroke, oldest first.
	points []*Sample

	// waiting indexes points awaiting a correction by estimation index.
	waiting map[uint64]*Sample

	// committed holds every point already baked, kept for full redraws.
	committed []*Sample
}

// NewStroke starts an empty stroke for contact.
func NewStroke(contact ContactID) *Stroke {
	return &Stroke{
		ID:      uuid.NewString(),
		Contact: contact,
		waiting: make(map[uint64]*Sample),
	}
}

// IsComplete reports whether no point is waiting for a correction.
func (s *Stroke) IsComplete() bool {
	return len(s.waiting) == 0
}

// Len is the number of live points.
func (s *Stroke) Len() int { return len(s.points) }

// Count is the number of distinct points in the stroke, baked or live.
func (s *Stroke) Count() int {
	n := len(s.committed) + len(s.points)
	if len(s.committed) > 0 && len(s.points) > 0 && s.committed[len(s.committed)-1] == s.points[0] {
		n--
	}
	return n
}

// All returns every distinct point of the stroke, oldest first.
func (s *Stroke) All() []*Sample {
	all := s.Committed()
	live := s.points
	if len(all) > 0 && len(live) > 0 && all[len(all)-1] == live[0] {
		live = live[1:]
	}
	return append(all, live...)
}

// Waiting is the number of points awaiting a correction.
func (s *Stroke) Waiting() int { return len(s.waiting) }

// Points returns the live points, oldest first.
func (s *Stroke) Points() []*Sample {
	return append([]*Sample(nil), s.points...)
}

// Committed returns the points already baked.
func (s *Stroke) Committed() []*Sample {
	return append([]*Sample(nil), s.committed...)
}

// Last returns the newest live point, or nil.
func (s *Stroke) Last() *Sample {
	if len(s.points) == 0 {
		return nil
	}
	return s.points[len(s.points)-1]
}

// AddSample appends a sample built from t and returns the region it dirties.
func (s *Stroke) AddSample(t Touch, typ PointType) Rect {
	prev := s.Last()
	seq := 0
	if prev != nil {
		seq = prev.Seq + 1
	} else if n := len(s.committed); n > 0 {
		seq = s.committed[n-1].Seq + 1
	}
	p := NewSample(t, seq, typ)
	if p.Pending() {
		s.waiting[p.EstimationIndex] = p
	}
	s.points = append(s.points, p)
	return segmentRect(p, prev)
}

// RemoveType drops every live point whose type contains typ and returns the
// region they covered, including the segments leading into them.
func (s *Stroke) RemoveType(typ PointType) Rect {
	var dirty Rect
	var prior *Sample
	kept := s.points[:0]
	for _, p := range s.points {
		if p.Type.Contains(typ) {
			r := sampleRect(p)
			if prior != nil {
				r = r.Union(sampleRect(prior))
			}
			dirty = dirty.Union(r)
			if p.Pending() {
				delete(s.waiting, p.EstimationIndex)
			}
		} else {
			kept = append(kept, p)
		}
		prior = p
	}
	for i := len(kept); i < len(s.points); i++ {
		s.points[i] = nil
	}
	s.points = kept
	return dirty
}

// Update applies a correction to the point waiting on t's estimation index.
// It reports whether anything changed and the region to repaint; an unknown
// or replayed correction changes nothing and returns an empty Rect.
func (s *Stroke) Update(t Touch) (bool, Rect) {
	p, ok := s.waiting[t.EstimationIndex]
	if !ok || t.EstimationIndex == 0 {
		return false, Rect{}
	}
	dirty := s.existingRect(p)
	changed := p.Update(t)
	if p.ExpectingUpdates.Empty() {
		delete(s.waiting, t.EstimationIndex)
	}
	if !changed {
		return false, Rect{}
	}
	return true, dirty.Union(s.existingRect(p))
}

// Cancel marks every live point cancelled and returns the whole stroke's
// region.
func (s *Stroke) Cancel() Rect {
	var dirty Rect
	for _, p := range s.points {
		p.Type = p.Type.Union(Cancelled)
		dirty = dirty.Union(sampleRect(p))
	}
	return dirty
}

// Settle moves the leading run of settled points out of the live list and
// returns them as a batch to bake. A point is settled once it neither waits
// for a correction nor is predicted, and it is not one of the two newest
// points. The last point of the batch stays live since the next segment
// starts from it. With all set, every live point is returned.
//
// A batch of fewer than two points draws nothing and is not returned.
func (s *Stroke) Settle(all bool) []*Sample {
	var batch []*Sample
	if all {
		batch = s.points
		s.points = nil
		s.waiting = make(map[uint64]*Sample)
	} else {
		n := 0
		for n < len(s.points)-2 && !s.points[n].Type.Intersects(NeedsUpdate|Predicted) {
			n++
		}
		if n < 2 {
			// Only the first point qualifies: there is no segment yet.
			return nil
		}
		batch = append([]*Sample(nil), s.points[:n]...)
		s.points = append(s.points[:0:0], s.points[n-1:]...)
	}
	if len(batch) < 2 {
		return nil
	}
	if len(s.committed) > 0 {
		// The previous batch ended on the point this one starts from.
		s.committed = s.committed[:len(s.committed)-1]
	}
	s.committed = append(s.committed, batch...)
	return batch
}

// Bounds is the region covered by the live and committed points.
func (s *Stroke) Bounds() Rect {
	var r Rect
	for _, p := range s.committed {
		r = r.Union(sampleRect(p))
	}
	for _, p := range s.points {
		r = r.Union(sampleRect(p))
	}
	return r
}

// existingRect covers p and the segments to its live neighbours.
func (s *Stroke) existingRect(p *Sample) Rect {
	r := sampleRect(p)
	if len(s.points) == 0 {
		return r
	}
	i := p.Seq - s.points[0].Seq
	if i < 0 || i >= len(s.points) || s.points[i] != p {
		return r
	}
	if i > 0 {
		r = r.Union(segmentRect(p, s.points[i-1]))
	}
	if i+1 < len(s.points) {
		r = r.Union(segmentRect(p, s.points[i+1]))
	}
	return r
}

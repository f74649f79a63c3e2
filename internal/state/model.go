package state

import (
	"strings"
	"time"

	"github.com/gogpu/gg"
)

// ContactID identifies one physical touch or stylus placement for its lifetime.
type ContactID uint64

// ContactKind is the input device behind a contact.
type ContactKind uint8

const (
	Finger ContactKind = iota
	Stylus
)

func (k ContactKind) String() string {
	if k == Stylus {
		return "stylus"
	}
	return "finger"
}

// Properties is a set of touch properties whose values may arrive late.
type Properties uint8

const (
	PropForce Properties = 1 << iota
	PropAzimuth
	PropAltitude
	PropLocation
)

// correctable lists the properties in the order corrections are applied.
var correctable = [...]Properties{PropAltitude, PropAzimuth, PropForce, PropLocation}

func (p Properties) Has(q Properties) bool { return p&q == q }
func (p Properties) Empty() bool          { return p == 0 }

// Touch is one raw pointer reading as delivered by the host.
type Touch struct {
	Contact         ContactID
	Kind            ContactKind
	Timestamp       time.Duration
	Location        gg.Point
	PreciseLocation gg.Point
	Force           float64
	Altitude        float64
	Azimuth         float64

	// Estimated holds the properties whose values are not final yet.
	Estimated Properties
	// ExpectingUpdates holds the estimated properties the host will correct.
	ExpectingUpdates Properties
	// EstimationIndex links a reading to its later correction. Zero means the
	// reading will never be corrected.
	EstimationIndex uint64
}

// PointType is the status bit set of a Sample.
type PointType uint8

const (
	Coalesced PointType = 1 << iota
	Predicted
	NeedsUpdate
	Updated
	Cancelled
	NonPrimary

	// Standard is the empty set: the authoritative reading of an event.
	Standard PointType = 0
)

func (t PointType) Contains(o PointType) bool      { return t&o == o }
func (t PointType) Intersects(o PointType) bool    { return t&o != 0 }
func (t PointType) Union(o PointType) PointType    { return t | o }
func (t PointType) Subtract(o PointType) PointType { return t &^ o }

var pointTypeNames = [...]string{"coalesced", "predicted", "needs-update", "updated", "cancelled", "non-primary"}

func (t PointType) String() string {
	if t == Standard {
		return "standard"
	}
	var names []string
	for i, name := range pointTypeNames {
		if t&(1<<i) != 0 {
			names = append(names, name)
		}
	}
	return strings.Join(names, "|")
}

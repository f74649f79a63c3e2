package ui

import (
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/gogpu/gg"

	"InkBoard/internal/state"
)

// Gauges shows the readings of the most recent primary touch.
type Gauges struct {
	Location     *widget.Label
	Force        *widget.Label
	AzimuthAngle *widget.Label
	AzimuthUnit  *widget.Label
	Altitude     *widget.Label
}

func NewGauges() *Gauges {
	g := &Gauges{
		Location:     widget.NewLabel(""),
		Force:        widget.NewLabel(""),
		AzimuthAngle: widget.NewLabel(""),
		AzimuthUnit:  widget.NewLabel(""),
		Altitude:     widget.NewLabel(""),
	}
	g.Clear()
	return g
}

// Update shows t. Angles only mean something for a stylus.
func (g *Gauges) Update(t state.Touch) {
	g.Location.SetText(formatPoint(t.Location))
	g.Force.SetText(formatValue(t.Force))
	if t.Kind != state.Stylus {
		g.AzimuthAngle.SetText("")
		g.AzimuthUnit.SetText("")
		g.Altitude.SetText("")
		return
	}
	g.AzimuthAngle.SetText(formatValue(t.Azimuth))
	g.AzimuthUnit.SetText(formatVector(gg.Pt(math.Cos(t.Azimuth), math.Sin(t.Azimuth))))
	g.Altitude.SetText(formatValue(t.Altitude))
}

func (g *Gauges) Clear() {
	for _, l := range []*widget.Label{g.Location, g.Force, g.AzimuthAngle, g.AzimuthUnit, g.Altitude} {
		l.SetText("")
	}
}

func (g *Gauges) Container() fyne.CanvasObject {
	return container.NewHBox(
		widget.NewLabel("Location:"), g.Location,
		widget.NewLabel("Force:"), g.Force,
		widget.NewLabel("Azimuth:"), g.AzimuthAngle, g.AzimuthUnit,
		widget.NewLabel("Altitude:"), g.Altitude,
	)
}

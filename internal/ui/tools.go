package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"InkBoard/internal/board"
	"InkBoard/internal/render"
	"InkBoard/internal/state"
)

// --- Legend swatch for the debug colors ---
type colorSwatch struct {
	widget.BaseWidget
	Color color.Color
	Label string
}

func newColorSwatch(c color.Color, label string) *colorSwatch {
	s := &colorSwatch{Color: c, Label: label}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(16, 16))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewHBox(
		container.NewStack(rect, border),
		widget.NewLabel(s.Label),
	))
}

// legend lists the point types the debug palette distinguishes.
var legend = []struct {
	typ   state.PointType
	label string
}{
	{state.Standard, "standard"},
	{state.Coalesced, "coalesced"},
	{state.Predicted, "predicted"},
	{state.NeedsUpdate, "needs update"},
	{state.NonPrimary, "non-primary"},
	{state.Cancelled, "cancelled"},
}

func newLegend() *fyne.Container {
	box := container.NewHBox()
	for _, e := range legend {
		box.Add(newColorSwatch(render.StrokeColor(e.typ, true).Color(), e.label))
	}
	return box
}

// --- The Main Toolbar ---
func NewToolbar(session *board.Session) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DeleteIcon(), session.Clear), // Clear
	)

	opts := session.Options()
	legendBox := newLegend()
	if !opts.Debug {
		legendBox.Hide()
	}

	debug := widget.NewCheck("Debug", func(on bool) {
		session.SetDebug(on)
		if on {
			legendBox.Show()
		} else {
			legendBox.Hide()
		}
	})
	debug.SetChecked(opts.Debug)

	precise := widget.NewCheck("Precise", session.SetPreciseLocation)
	precise.SetChecked(opts.Precise)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		debug,
		precise,
		widget.NewSeparator(),
		legendBox,
		layout.NewSpacer(),
	)
}

package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"InkBoard/internal/board"
	"InkBoard/internal/config"
	"InkBoard/internal/render"
)

// NewSession builds the drawing session described by cfg.
func NewSession(cfg config.Config) *board.Session {
	return board.NewSession(cfg.Width, cfg.Height,
		board.WithScale(cfg.Scale),
		board.WithPrimaryKind(cfg.Primary()),
		board.WithRenderOptions(render.Options{Debug: cfg.Debug, Precise: cfg.PreciseLocation}),
	)
}

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("InkBoard")
	myWindow.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	session := NewSession(cfg)

	// The interactive canvas feeds the session and the gauges
	inkCanvas := NewCanvasWidget(session, fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	inkCanvas.Kind = cfg.Pointer()
	inkCanvas.Predict = cfg.Predict
	inkCanvas.EstimateForce = cfg.EstimateForce

	gauges := NewGauges()
	inkCanvas.OnTouch = gauges.Update
	inkCanvas.OnLift = gauges.Clear

	toolbar := NewToolbar(session)

	content := container.NewBorder(toolbar, gauges.Container(), nil, nil, inkCanvas)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"InkBoard/internal/board"
	"InkBoard/internal/config"
	"InkBoard/internal/ui"
)

var (
	configPath = flag.String("config", config.Path(), "Path to the settings file")
	debug      = flag.Bool("debug", false, "Color points by type and draw stylus angles")
	precise    = flag.Bool("precise", false, "Draw at the precise location")
	verbose    = flag.Bool("v", false, "Log every event")
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Error loading settings: %v", err)
	}

	// Flags given on the command line win over the file.
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "debug":
			cfg.Debug = *debug
		case "precise":
			cfg.PreciseLocation = *precise
		}
	})

	level := cfg.Level()
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	board.SetLogger(logger)
	gg.SetLogger(logger)

	logger.Info("starting", "config", *configPath, "size", []int{cfg.Width, cfg.Height}, "scale", cfg.Scale)
	ui.RunApp(cfg)
}

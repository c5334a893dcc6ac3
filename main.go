package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"piclabel/app"
	"piclabel/config"
	"piclabel/debug"
	"piclabel/domain/classify"
)

func main() {
	cfgPath := flag.String("config", "piclabel.json", "path to JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if *debugFlag {
		cfg.Debug = true
	}

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	logger := NewLogger(level)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	if cfg.Debug {
		debug.StartGoroutineLogger(2*time.Second, logger)
		debug.StartMemLogger(2*time.Second, logger)
	}

	// The pipeline is built before any UI exists: a model that fails to load
	// leaves no valid state to run in.
	pipeline, err := classify.NewPipeline(cfg.ModelPath, cfg.MetadataPath, logger)
	if err != nil {
		logger.Error("classifier pipeline init failed", "model", cfg.ModelPath, "error", err)
		os.Exit(1)
	}
	defer pipeline.Close()

	application := app.NewApp("piclabel", 900, 700, cfg, *cfgPath, logger, pipeline)
	application.Start()
}

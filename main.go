package main

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	log := newLogger()
	defer log.Sync()

	if err := run(log); err != nil {
		log.Error("workshop build failed", zap.Error(err))
		os.Exit(1)
	}
}

func run(log *zap.Logger) error {
	d, err := buildWorkshopDeck()
	if err != nil {
		return WrapError("content", "build", err)
	}
	log.Info("assembled workshop deck", zap.Int("slides", d.SlideCount()))

	return NewExportManager(log).ExportAll(d, outputDir)
}

// newLogger builds a console logger for one-shot batch runs.
func newLogger() *zap.Logger {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	log, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return log
}

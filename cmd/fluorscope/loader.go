package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/cwbudde/algo-fluor/ingest"
	"github.com/cwbudde/algo-fluor/internal/config"
)

// loader reads spectra tables with the configured ingest settings.
type loader struct {
	cfg    *config.Config
	logger *slog.Logger
}

func (l loader) load(path string, req ingest.Request, waveCol int) (ingest.Result, error) {
	file, err := os.Open(path)
	if err != nil {
		return ingest.Result{}, fmt.Errorf("open spectra: %w", err)
	}
	defer file.Close()

	if waveCol < 0 {
		waveCol = l.cfg.Ingest.WaveColumn
	}
	t, err := ingest.ParseText(file, waveCol)
	if err != nil {
		return ingest.Result{}, fmt.Errorf("%s: %w", path, err)
	}
	if req.Clip == [2]float64{} {
		req.Clip = [2]float64{l.cfg.Ingest.MinWave, l.cfg.Ingest.MaxWave}
	}
	res, err := ingest.Import(t, req,
		ingest.WithResampleOptions(l.cfg.ResampleOptions()...),
		ingest.WithNormalizeOptions(l.cfg.NormalizeOptions()...),
		ingest.WithLogger(l.logger.With("file", path)),
	)
	if err != nil {
		return ingest.Result{}, fmt.Errorf("%s: %w", path, err)
	}
	return res, nil
}

package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hollyschr/StitchMatch-sub000/internal/config"
	"github.com/hollyschr/StitchMatch-sub000/internal/match/loader"
	"github.com/hollyschr/StitchMatch-sub000/internal/match/service"
)

// Пакетный прогон: стэш против всех паттернов из выгрузки,
// отчёт в JSON (stdout или OUT_FILE).
func main() {
	cfg := config.Load()
	logger := config.SetupLogger(cfg)

	tax, err := service.LoadTaxonomy(cfg.TaxonomyFile)
	if err != nil {
		logger.Fatal().Err(err).Msg("taxonomy")
	}

	sm := loader.DefaultStashMapping()
	sm.HeaderRow = cfg.StashHeaderRow
	inventory, err := loader.LoadInventoryFile(cfg.StashFile, sm)
	if err != nil {
		logger.Fatal().Err(err).Msg("load stash")
	}

	pm := loader.DefaultPatternMapping()
	pm.HeaderRow = cfg.PatternsHeaderRow
	reqs, err := loader.LoadRequirementsFile(cfg.PatternsFile, pm)
	if err != nil {
		logger.Fatal().Err(err).Msg("load patterns")
	}

	logger.Info().
		Int("stash_items", len(inventory)).
		Int("patterns", len(reqs)).
		Msg("loaded")

	// Ctrl+C обрывает раздачу оставшихся паттернов, посчитанное выводим
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	start := time.Now()
	ev := service.NewEvaluator(tax)
	results, ctxErr := service.EvaluateAll(ctx, ev, inventory, reqs, cfg.Workers)
	report := service.BuildReport(results)

	matched := 0
	for _, r := range report {
		if r.Matched {
			matched++
		}
	}

	var out io.Writer = os.Stdout
	if cfg.OutFile != "" {
		f, err := os.Create(cfg.OutFile)
		if err != nil {
			logger.Fatal().Err(err).Msg("create out file")
		}
		defer f.Close()
		out = f
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		logger.Fatal().Err(err).Msg("write report")
	}

	evt := logger.Info().
		Int("matched", matched).
		Int("total", len(report)).
		Dur("elapsed", time.Since(start))
	if ctxErr != nil {
		evt = evt.AnErr("aborted", ctxErr)
	}
	evt.Msg("match done")
}

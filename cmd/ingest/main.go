package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/riskibarqy/football-live/internal/app"
	"github.com/riskibarqy/football-live/internal/config"
	"github.com/riskibarqy/football-live/internal/observability"
	"github.com/riskibarqy/football-live/internal/platform/logging"
	"github.com/riskibarqy/football-live/internal/usecase"
)

// ingest walks one or more competitions and prints the per-competition summary as JSON.
func main() {
	var (
		tournaments   = flag.String("tournaments", "", "comma separated unique-tournament ids")
		season        = flag.Int64("season", 0, "season id; defaults to the current season of each tournament")
		workers       = flag.Int("workers", 0, "match workers per competition; defaults to INGEST_MAX_WORKERS")
		skipCupTree   = flag.Bool("skip-cup-tree", false, "skip knockout bracket ingestion")
		skipStandings = flag.Bool("skip-standings", false, "skip standings ingestion")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := logging.NewJSON(cfg.LogLevel).With("process", "ingest")
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	inputs, err := buildInputs(*tournaments, *season, *workers, *skipCupTree, *skipStandings)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		flag.Usage()
		os.Exit(2)
	}

	shutdownTracing, err := observability.InitUptrace(cfg, logger)
	if err != nil {
		logger.Error("init uptrace", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	container, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("build app", "error", err)
		os.Exit(1)
	}

	started := time.Now()
	results := container.Ingestion.IngestCompetitions(ctx, inputs)
	failed := 0
	for _, res := range results {
		if res.Error != "" {
			failed++
		}
	}
	logger.Info("ingestion finished", "competitions", len(results), "failed", failed, "duration", time.Since(started))

	out, err := sonic.ConfigStd.MarshalIndent(results, "", "  ")
	if err == nil {
		fmt.Println(string(out))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := container.Close(); err != nil {
		logger.Error("close app", "error", err)
	}
	if err := shutdownTracing(shutdownCtx); err != nil {
		logger.Error("shutdown uptrace", "error", err)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func buildInputs(rawTournaments string, season int64, workers int, skipCupTree, skipStandings bool) ([]usecase.IngestCompetitionInput, error) {
	var inputs []usecase.IngestCompetitionInput
	for _, raw := range strings.Split(rawTournaments, ",") {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid tournament id %q: %w", raw, err)
		}
		inputs = append(inputs, usecase.IngestCompetitionInput{
			TournamentID:  id,
			SeasonID:      season,
			MaxWorkers:    workers,
			SkipCupTree:   skipCupTree,
			SkipStandings: skipStandings,
		})
	}
	if len(inputs) == 0 {
		return nil, fmt.Errorf("-tournaments is required")
	}
	if season > 0 && len(inputs) > 1 {
		return nil, fmt.Errorf("-season can only be used with a single tournament")
	}

	v := validator.New()
	for _, in := range inputs {
		if err := v.Struct(in); err != nil {
			return nil, fmt.Errorf("invalid input for tournament %d: %w", in.TournamentID, err)
		}
	}
	return inputs, nil
}

package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/riskibarqy/football-live/external/sofascore"
	"github.com/riskibarqy/football-live/internal/config"
	"github.com/riskibarqy/football-live/internal/interfaces/httpapi"
	idgen "github.com/riskibarqy/football-live/internal/platform/id"
	"github.com/riskibarqy/football-live/internal/platform/logging"
	"github.com/riskibarqy/football-live/internal/platform/resilience"
	"github.com/riskibarqy/football-live/internal/usecase"
)

// Container holds the services shared by the api, livetracker and ingest
// processes. Close releases the store and cache connections.
type Container struct {
	Config    config.Config
	Logger    *logging.Logger
	Provider  *sofascore.Client
	Tracker   *usecase.LiveTrackerService
	Ingestion *usecase.CompetitionIngestionService

	closers []func() error
}

func Build(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Container, error) {
	if logger == nil {
		logger = logging.Default()
	}
	c := &Container{Config: cfg, Logger: logger}

	repos, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	c.closers = append(c.closers, closeStore)

	snapshots, closeCache, err := openSnapshotCache(ctx, cfg, logger)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.closers = append(c.closers, closeCache)

	c.Provider = sofascore.NewClient(sofascore.ClientConfig{
		BaseURL:    cfg.SofascoreBaseURL,
		UserAgent:  cfg.SofascoreUserAgent,
		Timeout:    cfg.SofascoreTimeout,
		MaxRetries: cfg.SofascoreMaxRetries,
		Logger:     logger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SofascoreCircuitEnabled,
			FailureThreshold: cfg.SofascoreCircuitFailureCount,
			OpenTimeout:      cfg.SofascoreCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SofascoreCircuitHalfOpenMaxReq,
		},
	})

	c.Tracker = usecase.NewLiveTrackerService(usecase.LiveTrackerConfig{
		PollInterval: cfg.LivePollInterval,
		MatchDelay:   cfg.LiveMatchDelay,
		ErrorBackoff: cfg.LiveErrorBackoff,
		SnapshotTTL:  cfg.LiveSnapshotTTL,
		WindowBefore: cfg.LiveWindowBefore,
		WindowAfter:  cfg.LiveWindowAfter,
		LineupLead:   cfg.LiveLineupLead,

		FinishDeadline: cfg.LiveFinishDeadline,
	}, c.Provider, snapshots, repos, logger)

	c.Ingestion = usecase.NewCompetitionIngestionService(usecase.CompetitionIngestionConfig{
		MaxWorkers:         cfg.IngestMaxWorkers,
		CompetitionWorkers: cfg.IngestCompetitionWorkers,
	}, c.Provider, repos, logger)

	return c, nil
}

// Close runs the closers in reverse order and returns the first error.
func (c *Container) Close() error {
	var first error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	c.closers = nil
	return first
}

func NewHTTPServer(c *Container) (*http.Server, error) {
	cfg := c.Config
	if cfg.HTTPAddr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	handler := httpapi.NewHandler(c.Tracker, c.Ingestion, idgen.NewRunIDGenerator("ingest"), c.Logger)
	router := httpapi.NewRouter(handler, c.Logger, cfg.SwaggerEnabled, cfg.CORSAllowedOrigins, cfg.InternalJobToken)

	return &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      cfg.WriteTimeout,
	}, nil
}

package sofascore

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/riskibarqy/football-live/internal/domain/livematch"
	"github.com/riskibarqy/football-live/internal/platform/logging"
	"github.com/riskibarqy/football-live/internal/platform/resilience"
	"github.com/riskibarqy/football-live/internal/usecase"
)

const (
	defaultBaseURL   = "https://api.sofascore.com/api/v1"
	defaultUserAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0 Safari/537.36"
	maxBodyBytes     = 6 << 20
)

type ClientConfig struct {
	HTTPClient     *http.Client
	BaseURL        string
	UserAgent      string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client reads the public Sofascore JSON API. It satisfies
// usecase.CompetitionDataProvider.
type Client struct {
	httpClient *http.Client
	baseURL    string
	userAgent  string
	maxRetries int
	backoff    time.Duration
	logger     *logging.Logger
	breaker    *resilience.CircuitBreaker
	flight     resilience.SingleFlight[[]byte]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout:   cfg.Timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}
	if httpClient.Timeout <= 0 {
		httpClient.Timeout = 20 * time.Second
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	userAgent := strings.TrimSpace(cfg.UserAgent)
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}

	return &Client{
		httpClient: httpClient,
		baseURL:    baseURL,
		userAgent:  userAgent,
		maxRetries: max(cfg.MaxRetries, 0),
		backoff:    backoff,
		logger:     logger,
		breaker: resilience.NewCircuitBreaker(cfg.CircuitBreaker,
			resilience.OnStateChange(func(from, to resilience.CircuitState) {
				logger.Warn("sofascore circuit breaker state changed", "from", from, "to", to)
			}),
		),
	}
}

func (c *Client) FetchMatch(ctx context.Context, sofascoreID int64) (livematch.EventEnvelope, error) {
	var env livematch.EventEnvelope
	if err := c.getJSON(ctx, eventPath(sofascoreID, ""), &env); err != nil {
		return livematch.EventEnvelope{}, err
	}
	if env.Event == nil {
		return livematch.EventEnvelope{}, malformed("event", sofascoreID)
	}
	return env, nil
}

func (c *Client) FetchIncidents(ctx context.Context, sofascoreID int64) (livematch.IncidentsEnvelope, error) {
	var env livematch.IncidentsEnvelope
	if err := c.getJSON(ctx, eventPath(sofascoreID, "/incidents"), &env); err != nil {
		return livematch.IncidentsEnvelope{}, err
	}
	if env.Incidents == nil {
		return livematch.IncidentsEnvelope{}, malformed("incidents", sofascoreID)
	}
	return env, nil
}

func (c *Client) FetchStatistics(ctx context.Context, sofascoreID int64) (livematch.StatisticsEnvelope, error) {
	var env livematch.StatisticsEnvelope
	if err := c.getJSON(ctx, eventPath(sofascoreID, "/statistics"), &env); err != nil {
		return livematch.StatisticsEnvelope{}, err
	}
	if env.Statistics == nil {
		return livematch.StatisticsEnvelope{}, malformed("statistics", sofascoreID)
	}
	return env, nil
}

// FetchLineups returns nil when the provider has no lineup for side yet. Home
// and away requests issued together share one upstream call.
func (c *Client) FetchLineups(ctx context.Context, sofascoreID int64, side livematch.Side) (*livematch.RawTeamLineup, error) {
	var env livematch.LineupsEnvelope
	if err := c.getJSON(ctx, eventPath(sofascoreID, "/lineups"), &env); err != nil {
		return nil, err
	}
	switch side {
	case livematch.SideHome:
		return env.Home, nil
	case livematch.SideAway:
		return env.Away, nil
	default:
		return nil, fmt.Errorf("%w: unknown lineup side %q", usecase.ErrInvalidInput, side)
	}
}

func (c *Client) ListLiveMatchIDs(ctx context.Context) ([]int64, error) {
	var env livematch.EventsEnvelope
	if err := c.getJSON(ctx, "/sport/football/events/live", &env); err != nil {
		return nil, err
	}
	ids := make([]int64, 0, len(env.Events))
	for _, item := range env.Events {
		if item.ID > 0 {
			ids = append(ids, item.ID)
		}
	}
	return ids, nil
}

func (c *Client) ListSeasons(ctx context.Context, tournamentID int64) ([]livematch.RawSeason, error) {
	var env livematch.SeasonsEnvelope
	if err := c.getJSON(ctx, tournamentPath(tournamentID, 0, "/seasons"), &env); err != nil {
		return nil, err
	}
	if env.Seasons == nil {
		return nil, malformed("seasons", tournamentID)
	}
	return env.Seasons, nil
}

func (c *Client) ListRounds(ctx context.Context, tournamentID, seasonID int64) ([]livematch.RawRoundInfo, error) {
	var env livematch.RoundsEnvelope
	if err := c.getJSON(ctx, tournamentPath(tournamentID, seasonID, "/rounds"), &env); err != nil {
		return nil, err
	}
	if env.Rounds == nil {
		return nil, malformed("rounds", seasonID)
	}
	return env.Rounds, nil
}

func (c *Client) ListRoundEvents(ctx context.Context, tournamentID, seasonID int64, round int) ([]livematch.RawEvent, error) {
	var env livematch.EventsEnvelope
	path := tournamentPath(tournamentID, seasonID, "/events/round/"+strconv.Itoa(round))
	if err := c.getJSON(ctx, path, &env); err != nil {
		return nil, err
	}
	if env.Events == nil {
		return nil, malformed("events", seasonID)
	}
	return env.Events, nil
}

func (c *Client) FetchCupTrees(ctx context.Context, tournamentID, seasonID int64) ([]livematch.RawCupTree, error) {
	var env livematch.CupTreesEnvelope
	if err := c.getJSON(ctx, tournamentPath(tournamentID, seasonID, "/cuptrees"), &env); err != nil {
		return nil, err
	}
	if env.CupTrees == nil {
		return nil, malformed("cupTrees", seasonID)
	}
	return env.CupTrees, nil
}

func (c *Client) FetchStandings(ctx context.Context, tournamentID, seasonID int64) ([]livematch.RawStandingTable, error) {
	var env livematch.StandingsEnvelope
	if err := c.getJSON(ctx, tournamentPath(tournamentID, seasonID, "/standings/total"), &env); err != nil {
		return nil, err
	}
	if env.Standings == nil {
		return nil, malformed("standings", seasonID)
	}
	return env.Standings, nil
}

func (c *Client) ListTeamPlayers(ctx context.Context, teamID int64) ([]livematch.RawPlayer, error) {
	var env livematch.TeamPlayersEnvelope
	if err := c.getJSON(ctx, "/team/"+strconv.FormatInt(teamID, 10)+"/players", &env); err != nil {
		return nil, err
	}
	if env.Players == nil {
		return nil, malformed("players", teamID)
	}
	out := make([]livematch.RawPlayer, 0, len(env.Players))
	for _, item := range env.Players {
		if item.Player.ID > 0 {
			out = append(out, item.Player)
		}
	}
	return out, nil
}

func (c *Client) FetchMatchManagers(ctx context.Context, sofascoreID int64) (livematch.ManagersEnvelope, error) {
	var env livematch.ManagersEnvelope
	if err := c.getJSON(ctx, eventPath(sofascoreID, "/managers"), &env); err != nil {
		return livematch.ManagersEnvelope{}, err
	}
	return env, nil
}

func (c *Client) FetchManager(ctx context.Context, managerID int64) (livematch.RawManager, error) {
	var env livematch.ManagerEnvelope
	if err := c.getJSON(ctx, "/manager/"+strconv.FormatInt(managerID, 10), &env); err != nil {
		return livematch.RawManager{}, err
	}
	if env.Manager == nil {
		return livematch.RawManager{}, malformed("manager", managerID)
	}
	return *env.Manager, nil
}

func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	raw, err, _ := c.flight.Do(path, func() ([]byte, error) {
		var body []byte
		err := c.breaker.Execute(func() error {
			var reqErr error
			body, reqErr = c.executeRequest(ctx, c.baseURL+path)
			return reqErr
		}, isCircuitFailure)
		if errors.Is(err, resilience.ErrCircuitOpen) {
			c.logger.WarnContext(ctx, "sofascore circuit breaker rejected request", "path", path, "state", c.breaker.State())
			return nil, crerr.Wrapf(usecase.ErrDependencyUnavailable, "sofascore %s", path)
		}
		return body, err
	})
	if err != nil {
		return err
	}

	if err := sonic.Unmarshal(raw, target); err != nil {
		return crerr.Wrapf(usecase.ErrMalformedPayload, "decode %s: %v", path, err)
	}
	return nil
}

func (c *Client) executeRequest(ctx context.Context, fullURL string) ([]byte, error) {
	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}
		req.Header.Set("Accept", "application/json")
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			lastErr = crerr.Wrapf(usecase.ErrTransientFetch, "send request: %v", err)
		} else {
			raw, readErr := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
			_ = resp.Body.Close()
			switch {
			case readErr != nil:
				lastErr = crerr.Wrapf(usecase.ErrTransientFetch, "read response body: %v", readErr)
			case resp.StatusCode >= 200 && resp.StatusCode < 300:
				return raw, nil
			case resp.StatusCode == http.StatusNotFound:
				return nil, crerr.Wrapf(usecase.ErrNotFound, "sofascore status=404 url=%s", fullURL)
			case isRetryableStatus(resp.StatusCode):
				lastErr = crerr.WithDetailf(
					crerr.Wrapf(usecase.ErrTransientFetch, "sofascore status=%d", resp.StatusCode),
					"body=%s", abbreviateBody(raw),
				)
			default:
				return nil, crerr.WithDetailf(
					crerr.Newf("sofascore status=%d url=%s", resp.StatusCode, fullURL),
					"body=%s", abbreviateBody(raw),
				)
			}
		}

		if attempt == c.maxRetries {
			break
		}
		timer := time.NewTimer(time.Duration(attempt+1) * c.backoff)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	c.logger.WarnContext(ctx, "sofascore request failed", "url", fullURL, "error", lastErr)
	return nil, lastErr
}

func malformed(container string, id int64) error {
	return crerr.Wrapf(usecase.ErrMalformedPayload, "missing %q container for id=%d", container, id)
}

func eventPath(id int64, suffix string) string {
	return "/event/" + strconv.FormatInt(id, 10) + suffix
}

func tournamentPath(tournamentID, seasonID int64, suffix string) string {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	_, _ = buf.WriteString("/unique-tournament/")
	_, _ = buf.WriteString(strconv.FormatInt(tournamentID, 10))
	if seasonID > 0 {
		_, _ = buf.WriteString("/season/")
		_, _ = buf.WriteString(strconv.FormatInt(seasonID, 10))
	}
	_, _ = buf.WriteString(suffix)
	return buf.String()
}

func isCircuitFailure(err error) bool {
	return errors.Is(err, usecase.ErrTransientFetch)
}

func isRetryableStatus(code int) bool {
	return code == http.StatusTooManyRequests || code >= 500
}

func abbreviateBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if len(text) > 240 {
		return text[:240] + "..."
	}
	return text
}

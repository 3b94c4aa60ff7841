// Package sleeperapi reads league data from the public Sleeper API.
package sleeperapi

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/panjf2000/ants/v2"
	"github.com/valyala/fasthttp"
	"golang.org/x/sync/singleflight"

	"github.com/binetime/binetime/internal/domain/sleeper"
	"github.com/binetime/binetime/internal/platform/logging"
	"github.com/binetime/binetime/internal/platform/resilience"
	"github.com/binetime/binetime/internal/usecase"
)

const (
	DefaultBaseURL      = "https://api.sleeper.app/v1"
	DefaultSeasonWeeks  = 17
	maxResponseBodySize = 6 << 20
)

var errSleeperTransient = crerr.New("sleeper transient failure")

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	Timeout        time.Duration
	MaxRetries     int
	RetryBackoff   time.Duration
	Workers        int
	Logger         *logging.Logger
	CircuitBreaker resilience.BreakerConfig
}

type Client struct {
	http       *fasthttp.Client
	baseURL    string
	timeout    time.Duration
	maxRetries int
	backoff    time.Duration
	workers    int
	logger     *logging.Logger
	breaker    *resilience.Breaker
	flight     singleflight.Group
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{
			Name:                "binetime",
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
			MaxResponseBodySize: maxResponseBodySize,
		}
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	backoff := cfg.RetryBackoff
	if backoff <= 0 {
		backoff = time.Second
	}
	workers := cfg.Workers
	if workers <= 0 {
		workers = 6
	}

	return &Client{
		http:       httpClient,
		baseURL:    baseURL,
		timeout:    timeout,
		maxRetries: max(cfg.MaxRetries, 0),
		backoff:    backoff,
		workers:    workers,
		logger:     logger,
		breaker:    resilience.NewBreaker(cfg.CircuitBreaker),
	}
}

func (c *Client) GetLeague(ctx context.Context, leagueID string) (sleeper.League, error) {
	var out sleeper.League
	if err := c.getJSON(ctx, "/league/"+url.PathEscape(leagueID), &out); err != nil {
		return sleeper.League{}, fmt.Errorf("get sleeper league %s: %w", leagueID, err)
	}
	return out, nil
}

func (c *Client) GetRosters(ctx context.Context, leagueID string) ([]sleeper.Roster, error) {
	var out []sleeper.Roster
	if err := c.getJSON(ctx, "/league/"+url.PathEscape(leagueID)+"/rosters", &out); err != nil {
		return nil, fmt.Errorf("get sleeper rosters %s: %w", leagueID, err)
	}
	return out, nil
}

func (c *Client) GetUsers(ctx context.Context, leagueID string) ([]sleeper.LeagueUser, error) {
	var out []sleeper.LeagueUser
	if err := c.getJSON(ctx, "/league/"+url.PathEscape(leagueID)+"/users", &out); err != nil {
		return nil, fmt.Errorf("get sleeper users %s: %w", leagueID, err)
	}
	return out, nil
}

func (c *Client) GetMatchups(ctx context.Context, leagueID string, week int) (sleeper.Week, error) {
	if week < 1 {
		return nil, fmt.Errorf("%w: week must be >= 1", usecase.ErrInvalidInput)
	}
	var out sleeper.Week
	path := "/league/" + url.PathEscape(leagueID) + "/matchups/" + strconv.Itoa(week)
	if err := c.getJSON(ctx, path, &out); err != nil {
		return nil, fmt.Errorf("get sleeper matchups %s week=%d: %w", leagueID, week, err)
	}
	return out, nil
}

func (c *Client) GetNFLState(ctx context.Context) (sleeper.NFLState, error) {
	var out sleeper.NFLState
	if err := c.getJSON(ctx, "/state/nfl", &out); err != nil {
		return sleeper.NFLState{}, fmt.Errorf("get sleeper nfl state: %w", err)
	}
	return out, nil
}

// GetSeasonMatchups loads weeks 1..weeks concurrently. A week that fails is
// logged and left empty so one bad week never sinks the season.
func (c *Client) GetSeasonMatchups(ctx context.Context, leagueID string, weeks int) (sleeper.Season, error) {
	if weeks <= 0 {
		weeks = DefaultSeasonWeeks
	}

	pool, err := ants.NewPool(min(c.workers, weeks))
	if err != nil {
		return nil, fmt.Errorf("create week pool: %w", err)
	}
	defer pool.Release()

	season := make(sleeper.Season, weeks)
	var wg sync.WaitGroup
	for week := 1; week <= weeks; week++ {
		wg.Add(1)
		submitErr := pool.Submit(func() {
			defer wg.Done()
			records, err := c.GetMatchups(ctx, leagueID, week)
			if err != nil {
				c.logger.WarnContext(ctx, "sleeper week unavailable, using empty week",
					"sleeper_league_id", leagueID,
					"week", week,
					"error", err,
				)
				records = sleeper.Week{}
			}
			season[week-1] = records
		})
		if submitErr != nil {
			wg.Done()
			season[week-1] = sleeper.Week{}
			c.logger.WarnContext(ctx, "submit sleeper week failed", "week", week, "error", submitErr)
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return season, nil
}

// getJSON shares one upstream fetch between concurrent callers of the same
// path. The breaker admits the shared fetch, not each caller, so every Allow
// is paired with exactly one Record. The fetch outlives a canceled caller;
// each caller stops waiting on its own context.
func (c *Client) getJSON(ctx context.Context, path string, target any) error {
	ch := c.flight.DoChan(path, func() (any, error) {
		if err := c.breaker.Allow(); err != nil {
			return nil, err
		}
		fetchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.fetchBudget())
		defer cancel()

		raw, err := c.fetch(fetchCtx, path)
		c.breaker.Record(isCircuitFailure(err))
		return raw, err
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return ctx.Err()
	case res = <-ch:
	}

	out, err := res.Val, res.Err
	if err != nil {
		switch {
		case crerr.Is(err, resilience.ErrCircuitOpen):
			c.logger.WarnContext(ctx, "sleeper circuit breaker rejected request", "state", c.breaker.State(), "path", path)
			return fmt.Errorf("%w: sleeper is temporarily unavailable", usecase.ErrDependencyUnavailable)
		case crerr.Is(err, errSleeperTransient), crerr.Is(err, context.DeadlineExceeded):
			return fmt.Errorf("%w: %v", usecase.ErrDependencyUnavailable, err)
		}
		return err
	}

	raw, ok := out.([]byte)
	if !ok {
		return fmt.Errorf("unexpected response payload type %T", out)
	}
	if len(raw) == 0 || bytes.Equal(bytes.TrimSpace(raw), []byte("null")) {
		return fmt.Errorf("%w: sleeper returned no data for %s", usecase.ErrNotFound, path)
	}
	if err := sonic.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("decode sleeper payload: %w", err)
	}
	return nil
}

// fetch issues GET baseURL+path with linear backoff between attempts.
// Transport errors, 429 and 5xx are retried; other statuses fail fast.
func (c *Client) fetch(ctx context.Context, path string) ([]byte, error) {
	fullURL := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		status, body, err := c.do(ctx, fullURL)
		switch {
		case err != nil:
			lastErr = crerr.Wrapf(errSleeperTransient, "send request: %v", err)
		case status >= 200 && status < 300:
			return body, nil
		case status == fasthttp.StatusNotFound:
			return nil, fmt.Errorf("%w: sleeper resource %s", usecase.ErrNotFound, path)
		case isRetryableStatus(status):
			lastErr = crerr.Wrapf(errSleeperTransient, "sleeper status=%d body=%s", status, abbreviate(body))
		default:
			return nil, fmt.Errorf("sleeper status=%d body=%s", status, abbreviate(body))
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

	c.logger.WarnContext(ctx, "sleeper request failed", "url", fullURL, "attempts", c.maxRetries+1, "error", lastErr)
	return nil, lastErr
}

func (c *Client) do(ctx context.Context, fullURL string) (int, []byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(fullURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set(fasthttp.HeaderAccept, "application/json")

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.http.DoDeadline(req, resp, deadline); err != nil {
		return 0, nil, err
	}

	body := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), body, nil
}

// fetchBudget bounds a shared fetch: every attempt at full timeout plus the
// linear backoff between them.
func (c *Client) fetchBudget() time.Duration {
	retries := time.Duration(c.maxRetries)
	return (retries+1)*c.timeout + retries*(retries+1)/2*c.backoff
}

func isRetryableStatus(status int) bool {
	return status == fasthttp.StatusTooManyRequests || status >= 500
}

func isCircuitFailure(err error) bool {
	return err != nil && (crerr.Is(err, errSleeperTransient) || crerr.Is(err, context.DeadlineExceeded))
}

func abbreviate(body []byte) string {
	const limit = 256
	s := strings.TrimSpace(string(body))
	if len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}

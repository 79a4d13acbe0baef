// Package postgrest reads the team strength view through a Supabase PostgREST
// endpoint. It is the alternative to the direct postgres reader for
// deployments where the service only gets API-level access.
package postgrest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"

	"github.com/fplstack/companion/internal/domain/team"
	"github.com/fplstack/companion/internal/platform/logging"
	"github.com/fplstack/companion/internal/platform/resilience"
	"github.com/fplstack/companion/internal/usecase"
)

const (
	strengthViewPath = "/rest/v1/v_team_calculated_strength"
	teamsTablePath   = "/rest/v1/teams"

	strengthColumns = "id,short_name,name,strength," +
		"strength_overall_home,strength_overall_away," +
		"strength_attack_home,strength_attack_away," +
		"strength_defence_home,strength_defence_away"
	reducedColumns = "id,short_name,name,strength"

	defaultTimeout = 10 * time.Second
	retryDelay     = 500 * time.Millisecond
)

var errPostgRESTTransient = crerr.New("postgrest transient failure")

type teamRow struct {
	ID        int    `json:"id"`
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
	Strength  int    `json:"strength"`

	StrengthOverallHome *int `json:"strength_overall_home"`
	StrengthOverallAway *int `json:"strength_overall_away"`
	StrengthAttackHome  *int `json:"strength_attack_home"`
	StrengthAttackAway  *int `json:"strength_attack_away"`
	StrengthDefenceHome *int `json:"strength_defence_home"`
	StrengthDefenceAway *int `json:"strength_defence_away"`
}

type ClientConfig struct {
	HTTPClient     *fasthttp.Client
	BaseURL        string
	APIKey         string
	Timeout        time.Duration
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// TeamReader implements team.Repository over PostgREST. When the strength
// view no longer carries the expected columns it falls back to the reduced
// column set from the base teams table and leaves the facets nil.
type TeamReader struct {
	httpClient     *fasthttp.Client
	baseURL        string
	apiKey         string
	timeout        time.Duration
	logger         *logging.Logger
	breaker        *resilience.CircuitBreaker
	circuitEnabled bool
	flight         resilience.SingleFlight
}

func NewTeamReader(cfg ClientConfig) *TeamReader {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &fasthttp.Client{}
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	breakerCfg := resilience.NormalizeCircuitBreakerConfig(cfg.CircuitBreaker)

	return &TeamReader{
		httpClient:     httpClient,
		baseURL:        strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/"),
		apiKey:         strings.TrimSpace(cfg.APIKey),
		timeout:        timeout,
		logger:         logger,
		breaker:        resilience.NewCircuitBreaker(breakerCfg.FailureThreshold, breakerCfg.OpenTimeout, breakerCfg.HalfOpenMaxReq),
		circuitEnabled: breakerCfg.Enabled,
	}
}

func (c *TeamReader) ListTeams(ctx context.Context) ([]team.Team, error) {
	rows, err := c.fetchRows(ctx, strengthViewPath, strengthColumns)
	if err != nil {
		if !isMissingColumn(err) {
			return nil, fmt.Errorf("fetch strength view: %w", err)
		}
		c.logger.WarnContext(ctx, "strength view schema drift, using reduced columns", "error", err)
		rows, err = c.fetchRows(ctx, teamsTablePath, reducedColumns)
		if err != nil {
			return nil, fmt.Errorf("fetch reduced teams: %w", err)
		}
	}

	out := make([]team.Team, 0, len(rows))
	for _, row := range rows {
		out = append(out, team.Team{
			ID:                  row.ID,
			ShortName:           row.ShortName,
			FullName:            row.Name,
			Strength:            row.Strength,
			StrengthOverallHome: row.StrengthOverallHome,
			StrengthOverallAway: row.StrengthOverallAway,
			StrengthAttackHome:  row.StrengthAttackHome,
			StrengthAttackAway:  row.StrengthAttackAway,
			StrengthDefenceHome: row.StrengthDefenceHome,
			StrengthDefenceAway: row.StrengthDefenceAway,
		})
	}
	return out, nil
}

func (c *TeamReader) fetchRows(ctx context.Context, path, columns string) ([]teamRow, error) {
	if c.circuitEnabled {
		if err := c.breaker.Allow(); err != nil {
			c.logger.WarnContext(ctx, "postgrest circuit breaker rejected request", "state", c.breaker.State())
			return nil, fmt.Errorf("%w: team data provider is temporarily unavailable", usecase.ErrDependencyUnavailable)
		}
	}

	key := path + "?" + columns
	out, err, _ := c.flight.Do(key, func() (any, error) {
		var raw []byte
		reqErr := resilience.RetryOnce(ctx, retryDelay, isTransient, func(ctx context.Context) error {
			var err error
			raw, err = c.execute(ctx, path, columns)
			return err
		})
		if c.circuitEnabled {
			if reqErr != nil && isTransient(reqErr) {
				c.breaker.RecordFailure()
			} else {
				c.breaker.RecordSuccess()
			}
		}
		if reqErr != nil {
			return nil, reqErr
		}

		var rows []teamRow
		if err := sonic.Unmarshal(raw, &rows); err != nil {
			return nil, fmt.Errorf("decode team rows: %w", err)
		}
		return rows, nil
	})
	if err != nil {
		return nil, err
	}

	rows, _ := out.([]teamRow)
	return rows, nil
}

func (c *TeamReader) execute(ctx context.Context, path, columns string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	uri := bytebufferpool.Get()
	defer bytebufferpool.Put(uri)
	uri.WriteString(c.baseURL)
	uri.WriteString(path)
	uri.WriteString("?select=")
	uri.WriteString(columns)
	uri.WriteString("&order=id.asc")

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(uri.String())
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("apikey", c.apiKey)
		req.Header.Set("authorization", "Bearer "+c.apiKey)
	}

	if err := c.httpClient.DoTimeout(req, resp, c.timeout); err != nil {
		return nil, fmt.Errorf("%w: send request: %v", errPostgRESTTransient, err)
	}

	status := resp.StatusCode()
	body := append([]byte(nil), resp.Body()...)
	switch {
	case status >= 200 && status < 300:
		return body, nil
	case status == fasthttp.StatusBadRequest || status == fasthttp.StatusNotFound:
		return nil, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(body))
	case isRetryableStatus(status):
		return nil, fmt.Errorf("%w: provider status=%d body=%s", errPostgRESTTransient, status, abbreviateBody(body))
	default:
		return nil, fmt.Errorf("provider status=%d body=%s", status, abbreviateBody(body))
	}
}

func isTransient(err error) bool {
	return crerr.Is(err, errPostgRESTTransient)
}

// isMissingColumn matches the PostgREST undefined-column error shape so the
// reader can degrade to the reduced schema.
func isMissingColumn(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	if !strings.Contains(msg, "status=400") && !strings.Contains(msg, "status=404") {
		return false
	}
	return strings.Contains(msg, "column") || strings.Contains(msg, "42703") || strings.Contains(msg, "status=404")
}

func isRetryableStatus(status int) bool {
	switch status {
	case fasthttp.StatusTooManyRequests,
		fasthttp.StatusInternalServerError,
		fasthttp.StatusBadGateway,
		fasthttp.StatusServiceUnavailable,
		fasthttp.StatusGatewayTimeout:
		return true
	default:
		return false
	}
}

func abbreviateBody(raw []byte) string {
	const maxLen = 256
	body := strings.TrimSpace(string(raw))
	if len(body) > maxLen {
		return body[:maxLen] + "..."
	}
	return body
}

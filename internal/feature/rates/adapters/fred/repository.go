package fred

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"econ_backend/internal/feature/rates/adapters/fred/dto"
	"econ_backend/internal/feature/rates/domain"
	"econ_backend/internal/feature/rates/domain/entity"
	"econ_backend/internal/feature/rates/usecase"
)

// FredSeries is a SeriesRepository implementation backed by the FRED API.
type FredSeries struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that FredSeries implements SeriesRepository.
var _ usecase.SeriesRepository = (*FredSeries)(nil)

// NewFredSeries creates a new FredSeries with the given configuration and HTTP client.
func NewFredSeries(cfg Config, client *http.Client) *FredSeries {
	return &FredSeries{cfg: cfg, client: client}
}

// GetObservations fetches the observations of a single series from the
// FRED series/observations endpoint. The API key is validated before any
// network call. A value FRED reports as "." (or any other non-numeric
// token) becomes a nil Value rather than an error; an unparseable date
// becomes a zero Date. Both are dropped later by normalization.
func (f *FredSeries) GetObservations(ctx context.Context, seriesID, observationStart string) ([]entity.Observation, error) {
	if f.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: FRED_API_KEY", domain.ErrMissingAPIKey)
	}

	q := url.Values{}
	q.Set("series_id", seriesID)
	q.Set("api_key", f.cfg.APIKey)
	q.Set("file_type", "json")
	if observationStart != "" {
		q.Set("observation_start", observationStart)
	}

	u := fmt.Sprintf("%s/series/observations?%s", f.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteService, err)
	}

	res, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteService, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: fred http %d", domain.ErrRemoteService, res.StatusCode)
	}

	var body dto.ObservationsResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrRemoteService, err)
	}
	if body.ErrorMessage != "" {
		return nil, fmt.Errorf("%w: fred: %s", domain.ErrRemoteService, body.ErrorMessage)
	}

	obs := make([]entity.Observation, 0, len(body.Observations))
	for _, v := range body.Observations {
		o := entity.Observation{SeriesID: seriesID}

		// Malformed dates are kept as zero and filtered downstream
		if tm, err := time.Parse(entity.DateLayout, v.Date); err == nil {
			o.Date = tm
		}
		// "." means no reported value for that date
		if val, err := strconv.ParseFloat(v.Value, 64); err == nil {
			o.Value = &val
		}

		obs = append(obs, o)
	}
	return obs, nil
}

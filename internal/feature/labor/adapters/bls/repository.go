package bls

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"econ_backend/internal/feature/labor/adapters/bls/dto"
	"econ_backend/internal/feature/labor/usecase"
	"econ_backend/internal/feature/rates/domain"
	"econ_backend/internal/feature/rates/domain/entity"
)

// BLSLabor is a LaborRepository implementation backed by the BLS public API.
type BLSLabor struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that BLSLabor implements LaborRepository.
var _ usecase.LaborRepository = (*BLSLabor)(nil)

// NewBLSLabor creates a new BLSLabor with the given configuration and HTTP client.
func NewBLSLabor(cfg Config, client *http.Client) *BLSLabor {
	return &BLSLabor{cfg: cfg, client: client}
}

// GetSeries fetches the observations of a single series from the BLS
// timeseries/data endpoint via one POST request. Monthly periods map to the
// first day of the month; the annual-average period "M13" is skipped. A
// non-numeric value becomes a nil Value rather than an error.
func (b *BLSLabor) GetSeries(ctx context.Context, seriesID, startYear, endYear string) ([]entity.Observation, error) {
	if b.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: BLS_API_KEY", domain.ErrMissingAPIKey)
	}

	payload, err := json.Marshal(dto.TimeseriesRequest{
		SeriesID:        []string{seriesID},
		StartYear:       startYear,
		EndYear:         endYear,
		RegistrationKey: b.cfg.APIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteService, err)
	}

	u := fmt.Sprintf("%s/timeseries/data/", b.cfg.BaseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteService, err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := b.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteService, err)
	}
	defer func() {
		if err := res.Body.Close(); err != nil {
			slog.Warn("failed to close response body", "error", err)
		}
	}()

	if res.StatusCode >= 400 {
		return nil, fmt.Errorf("%w: bls http %d", domain.ErrRemoteService, res.StatusCode)
	}

	var body dto.TimeseriesResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrRemoteService, err)
	}
	if body.Status != "REQUEST_SUCCEEDED" {
		return nil, fmt.Errorf("%w: bls: %s", domain.ErrRemoteService, strings.Join(body.Message, "; "))
	}

	var obs []entity.Observation
	for _, s := range body.Results.Series {
		for _, d := range s.Data {
			month, ok := monthOf(d.Period)
			if !ok {
				continue
			}
			year, err := strconv.Atoi(d.Year)
			if err != nil {
				continue
			}

			o := entity.Observation{
				SeriesID: seriesID,
				Date:     time.Date(year, month, 1, 0, 0, 0, 0, time.UTC),
			}
			if v, err := strconv.ParseFloat(d.Value, 64); err == nil {
				o.Value = &v
			}
			obs = append(obs, o)
		}
	}
	return obs, nil
}

// monthOf maps a BLS monthly period code ("M01".."M12") to its month.
// Any other period (annual averages, quarterly codes) reports !ok.
func monthOf(period string) (time.Month, bool) {
	if len(period) != 3 || period[0] != 'M' {
		return 0, false
	}
	n, err := strconv.Atoi(period[1:])
	if err != nil || n < 1 || n > 12 {
		return 0, false
	}
	return time.Month(n), true
}

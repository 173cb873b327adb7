package beaapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"econ_backend/internal/feature/bea/adapters/beaapi/dto"
	"econ_backend/internal/feature/bea/usecase"
	"econ_backend/internal/feature/rates/domain"
	"econ_backend/internal/feature/rates/domain/entity"
)

// BEATables is a NIPARepository implementation backed by the BEA API.
type BEATables struct {
	cfg    Config
	client *http.Client
}

// Compile-time check that BEATables implements NIPARepository.
var _ usecase.NIPARepository = (*BEATables)(nil)

// NewBEATables creates a new BEATables with the given configuration and HTTP client.
func NewBEATables(cfg Config, client *http.Client) *BEATables {
	return &BEATables{cfg: cfg, client: client}
}

// GetNIPATable fetches one NIPA table from the BEA GetData method via one
// GET request. Unrecognized time periods become a zero Date and non-numeric
// data values a nil Value; both are dropped later by normalization.
func (b *BEATables) GetNIPATable(ctx context.Context, table, frequency, year string) ([]entity.Observation, error) {
	if b.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: BEA_API_KEY", domain.ErrMissingAPIKey)
	}

	q := url.Values{}
	q.Set("UserID", b.cfg.APIKey)
	q.Set("method", "GetData")
	q.Set("datasetname", "NIPA")
	q.Set("TableName", table)
	q.Set("Frequency", frequency)
	q.Set("Year", year)
	q.Set("ResultFormat", "json")

	u := fmt.Sprintf("%s?%s", b.cfg.BaseURL, q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrRemoteService, err)
	}

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
		return nil, fmt.Errorf("%w: bea http %d", domain.ErrRemoteService, res.StatusCode)
	}

	var body dto.DataResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("%w: decode response: %v", domain.ErrRemoteService, err)
	}
	if body.BEAAPI.Results.Error != nil {
		return nil, fmt.Errorf("%w: bea: %s", domain.ErrRemoteService, body.BEAAPI.Results.Error.APIErrorDescription)
	}

	obs := make([]entity.Observation, 0, len(body.BEAAPI.Results.Data))
	for _, d := range body.BEAAPI.Results.Data {
		o := entity.Observation{SeriesID: table}

		if tm, ok := parsePeriod(d.TimePeriod); ok {
			o.Date = tm
		}
		// BEA formats values with thousands separators
		raw := strings.ReplaceAll(d.DataValue, ",", "")
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			o.Value = &v
		}

		obs = append(obs, o)
	}
	return obs, nil
}

// parsePeriod maps a BEA time period to the first day it covers:
// "2023" to Jan 1, "2023Q3" to Jul 1, "2023M07" to Jul 1.
func parsePeriod(period string) (time.Time, bool) {
	if len(period) < 4 {
		return time.Time{}, false
	}
	year, err := strconv.Atoi(period[:4])
	if err != nil {
		return time.Time{}, false
	}

	switch {
	case len(period) == 4:
		return time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC), true
	case len(period) == 6 && period[4] == 'Q':
		q, err := strconv.Atoi(period[5:])
		if err != nil || q < 1 || q > 4 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month((q-1)*3+1), 1, 0, 0, 0, 0, time.UTC), true
	case len(period) == 7 && period[4] == 'M':
		m, err := strconv.Atoi(period[5:])
		if err != nil || m < 1 || m > 12 {
			return time.Time{}, false
		}
		return time.Date(year, time.Month(m), 1, 0, 0, 0, 0, time.UTC), true
	}
	return time.Time{}, false
}
